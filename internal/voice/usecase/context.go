package usecase

import (
	"encoding/json"
	"slices"

	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice/codec"
)

// snapshot is the per-command view of the inventory handed to the interpreter.
type snapshot struct {
	codec          *codec.Codec
	context        string
	defaultShelfID int
}

type contextContainer struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Shelves []contextShelf `json:"shelves"`
}

type contextShelf struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Position int           `json:"position"`
	Items    []contextItem `json:"items"`
}

type contextItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// buildSnapshot numbers the whole tree with one fresh codec and serialises it.
// Containers keep repository order, shelves are visited by position, items keep
// repository order. defaultShelfID is durable; it maps to 0 when the shelf is
// not part of the tree.
func buildSnapshot(trees []model.ContainerTree, defaultShelfID string) (snapshot, error) {
	c := codec.New()

	containers := make([]contextContainer, 0, len(trees))
	for _, tree := range trees {
		cc := contextContainer{
			ID:      c.Assign(tree.ID, codec.Container),
			Name:    tree.Name,
			Kind:    string(tree.Kind),
			Shelves: make([]contextShelf, 0, len(tree.Shelves)),
		}

		shelves := slices.Clone(tree.Shelves)
		slices.SortStableFunc(shelves, func(a, b model.ShelfWithItems) int {
			return a.Position - b.Position
		})

		for _, shelf := range shelves {
			cs := contextShelf{
				ID:       c.Assign(shelf.ID, codec.Shelf),
				Name:     shelf.Name,
				Position: shelf.Position,
				Items:    make([]contextItem, 0, len(shelf.Items)),
			}
			for _, item := range shelf.Items {
				cs.Items = append(cs.Items, contextItem{
					ID:       c.Assign(item.ID, codec.Item),
					Name:     item.Name,
					Quantity: item.Quantity,
				})
			}
			cc.Shelves = append(cc.Shelves, cs)
		}
		containers = append(containers, cc)
	}

	raw, err := json.Marshal(struct {
		Containers []contextContainer `json:"containers"`
	}{Containers: containers})
	if err != nil {
		return snapshot{}, err
	}

	snap := snapshot{codec: c, context: string(raw)}
	if defaultShelfID != "" {
		if v, ok := c.Lookup(defaultShelfID, codec.Shelf); ok {
			snap.defaultShelfID = v
		}
	}
	return snap, nil
}
