package usecase

import (
	"context"
	"fmt"
	"strings"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
)

// ProcessQuery answers where an item is and how much of it there is.
func (uc *implUseCase) ProcessQuery(ctx context.Context, sc model.Scope, input voice.QueryInput) (voice.QueryOutput, error) {
	term := strings.TrimSpace(input.Term)
	if term == "" {
		return voice.QueryOutput{}, voice.ErrEmptyQuery
	}

	rows, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{
		UserID:       sc.UserID,
		Term:         term,
		ContainerIDs: input.ContainerIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.ProcessQuery SearchItems: %v", err)
		return voice.QueryOutput{}, err
	}

	items := aggregate(rows)
	out := voice.QueryOutput{
		Found:   len(items) > 0,
		Items:   items,
		Message: uc.queryMessage(term, items),
	}
	uc.metrics.ObserveQuery(out.Found)
	return out, nil
}

// aggregate groups rows by lower-cased trimmed name, summing quantities and
// collecting distinct (shelf, container) locations. Groups and locations keep
// the order in which they first appear.
func aggregate(rows []model.ItemWithLocation) []voice.AggregatedItem {
	type locationKey struct{ shelf, container string }

	items := make([]voice.AggregatedItem, 0)
	groupIdx := make(map[string]int)
	seen := make(map[string]map[locationKey]struct{})

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		key := strings.ToLower(name)

		idx, ok := groupIdx[key]
		if !ok {
			idx = len(items)
			groupIdx[key] = idx
			seen[key] = make(map[locationKey]struct{})
			items = append(items, voice.AggregatedItem{Name: name, Locations: make([]voice.ItemLocation, 0, 1)})
		}

		items[idx].TotalQuantity += row.Quantity

		lk := locationKey{shelf: row.ShelfName, container: row.ContainerName}
		if _, dup := seen[key][lk]; dup {
			continue
		}
		seen[key][lk] = struct{}{}
		items[idx].Locations = append(items[idx].Locations, voice.ItemLocation{
			ShelfName:     row.ShelfName,
			ContainerName: row.ContainerName,
			ShelfPosition: row.ShelfPosition,
		})
	}
	return items
}

func (uc *implUseCase) queryMessage(term string, items []voice.AggregatedItem) string {
	switch len(items) {
	case 0:
		return fmt.Sprintf(uc.msg.queryNothing, term)
	case 1:
		it := items[0]
		if len(it.Locations) == 1 {
			loc := it.Locations[0]
			return fmt.Sprintf(uc.msg.querySingle, it.TotalQuantity, it.Name, loc.ShelfName, loc.ContainerName)
		}
		return fmt.Sprintf(uc.msg.queryManyPlaces, it.TotalQuantity, it.Name, len(it.Locations))
	default:
		return fmt.Sprintf(uc.msg.queryManyDistinct, len(items))
	}
}
