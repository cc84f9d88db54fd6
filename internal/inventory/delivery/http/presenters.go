package http

import (
	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/model"
	"fridge-inventory/pkg/response"
)

// --- Request DTOs ---

type createContainerReq struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=freezer fridge"`
}

func (r createContainerReq) toInput() inventory.CreateContainerInput {
	return inventory.CreateContainerInput{
		Name: r.Name,
		Kind: model.ContainerKind(r.Kind),
	}
}

// ---

type updateContainerReq struct {
	ID   string `json:"-"`
	Name string `json:"name"`
	Kind string `json:"kind" binding:"omitempty,oneof=freezer fridge"`
}

func (r updateContainerReq) toInput() inventory.UpdateContainerInput {
	return inventory.UpdateContainerInput{
		ID:   r.ID,
		Name: r.Name,
		Kind: model.ContainerKind(r.Kind),
	}
}

// ---

type createShelfReq struct {
	ContainerID string `json:"-"`
	Name        string `json:"name"     binding:"required"`
	Position    int    `json:"position" binding:"required,min=1"`
}

func (r createShelfReq) toInput() inventory.CreateShelfInput {
	return inventory.CreateShelfInput{
		ContainerID: r.ContainerID,
		Name:        r.Name,
		Position:    r.Position,
	}
}

// ---

type updateShelfReq struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Position int    `json:"position" binding:"omitempty,min=1"`
}

func (r updateShelfReq) toInput() inventory.UpdateShelfInput {
	return inventory.UpdateShelfInput{
		ID:       r.ID,
		Name:     r.Name,
		Position: r.Position,
	}
}

// ---

type addItemReq struct {
	ShelfID  string `json:"-"`
	Name     string `json:"name"     binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (r addItemReq) toInput() inventory.AddItemInput {
	return inventory.AddItemInput{
		ShelfID:  r.ShelfID,
		Name:     r.Name,
		Quantity: r.Quantity,
	}
}

// ---

type updateItemReq struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity" binding:"omitempty,min=0"`
}

func (r updateItemReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
	}
}

// ---

type moveItemReq struct {
	ID            string `json:"-"`
	TargetShelfID string `json:"target_shelf_id" binding:"required"`
}

func (r moveItemReq) toInput() inventory.MoveItemInput {
	return inventory.MoveItemInput{
		ID:            r.ID,
		TargetShelfID: r.TargetShelfID,
	}
}

// ---

type setDefaultShelfReq struct {
	ShelfID string `json:"shelf_id"`
}

// --- Response DTOs ---

type itemResp struct {
	ID        string            `json:"id"`
	ShelfID   string            `json:"shelf_id"`
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:        item.ID,
		ShelfID:   item.ShelfID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		CreatedAt: response.DateTime(item.CreatedAt),
	}
}

type shelfResp struct {
	ID          string            `json:"id"`
	ContainerID string            `json:"container_id"`
	Name        string            `json:"name"`
	Position    int               `json:"position"`
	CreatedAt   response.DateTime `json:"created_at"`
	Items       []itemResp        `json:"items,omitempty"`
}

func newShelfResp(s model.Shelf) shelfResp {
	return shelfResp{
		ID:          s.ID,
		ContainerID: s.ContainerID,
		Name:        s.Name,
		Position:    s.Position,
		CreatedAt:   response.DateTime(s.CreatedAt),
	}
}

type containerResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Kind      string            `json:"kind"`
	CreatedAt response.DateTime `json:"created_at"`
	Shelves   []shelfResp       `json:"shelves,omitempty"`
}

func newContainerResp(c model.Container) containerResp {
	return containerResp{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		CreatedAt: response.DateTime(c.CreatedAt),
	}
}

func newContainerTreeResp(tree model.ContainerTree) containerResp {
	resp := newContainerResp(tree.Container)
	resp.Shelves = make([]shelfResp, len(tree.Shelves))
	for i, s := range tree.Shelves {
		sr := newShelfResp(s.Shelf)
		sr.Items = make([]itemResp, len(s.Items))
		for j, item := range s.Items {
			sr.Items[j] = newItemResp(item)
		}
		resp.Shelves[i] = sr
	}
	return resp
}

type listContainersResp struct {
	Containers []containerResp `json:"containers"`
}

func (h *handler) newListContainersResp(trees []model.ContainerTree) listContainersResp {
	out := make([]containerResp, len(trees))
	for i, tree := range trees {
		out[i] = newContainerTreeResp(tree)
	}
	return listContainersResp{Containers: out}
}

type addItemResp struct {
	Item   itemResp `json:"item"`
	Merged bool     `json:"merged"`
}

func (h *handler) newAddItemResp(out inventory.AddItemOutput) addItemResp {
	return addItemResp{Item: newItemResp(out.Item), Merged: out.Merged}
}

type updateItemResp struct {
	Item    itemResp `json:"item"`
	Deleted bool     `json:"deleted"`
}

func (h *handler) newUpdateItemResp(out inventory.UpdateItemOutput) updateItemResp {
	return updateItemResp{Item: newItemResp(out.Item), Deleted: out.Deleted}
}

type defaultShelfResp struct {
	Shelf     *shelfResp     `json:"shelf"`
	Container *containerResp `json:"container"`
}

func (h *handler) newDefaultShelfResp(out inventory.DefaultShelfOutput) defaultShelfResp {
	if out.Shelf == nil {
		return defaultShelfResp{}
	}
	s := newShelfResp(out.Shelf.Shelf)
	c := newContainerResp(out.Shelf.Container)
	return defaultShelfResp{Shelf: &s, Container: &c}
}
