package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fridge-inventory/pkg/errors"
	"fridge-inventory/pkg/response"
)

// CreateContainer godoc
// @Summary     Create a container
// @Description Creates a fridge or freezer for the current user.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createContainerReq true "Container data"
// @Success     200 {object} containerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers [POST]
func (h *handler) CreateContainer(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateContainerReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.CreateContainer(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateContainer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newContainerResp(output))
}

// ListContainers godoc
// @Summary     List containers
// @Description Returns every container with its shelves ordered by position and their items.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Success     200 {object} listContainersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers [GET]
func (h *handler) ListContainers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.ListContainers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListContainers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListContainersResp(output))
}

// DetailContainer godoc
// @Summary     Get container detail
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Container ID"
// @Success     200 {object} containerResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers/{id} [GET]
func (h *handler) DetailContainer(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DetailContainer(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailContainer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newContainerTreeResp(output))
}

// UpdateContainer godoc
// @Summary     Update a container
// @Description Empty fields are left unchanged.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Container ID"
// @Param       body body updateContainerReq true "Fields to update"
// @Success     200 {object} containerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers/{id} [PUT]
func (h *handler) UpdateContainer(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateContainerReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.UpdateContainer(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateContainer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newContainerResp(output))
}

// DeleteContainer godoc
// @Summary     Delete a container
// @Description Only empty containers can be deleted.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Container ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers/{id} [DELETE]
func (h *handler) DeleteContainer(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteContainer(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteContainer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateShelf godoc
// @Summary     Create a shelf
// @Description Adds a shelf at a position that is unique within the container.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Container ID"
// @Param       body body createShelfReq true "Shelf data"
// @Success     200 {object} shelfResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/containers/{id}/shelves [POST]
func (h *handler) CreateShelf(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateShelfReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.CreateShelf(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateShelf: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newShelfResp(output))
}

// UpdateShelf godoc
// @Summary     Update a shelf
// @Description Empty fields are left unchanged.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Shelf ID"
// @Param       body body updateShelfReq true "Fields to update"
// @Success     200 {object} shelfResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shelves/{id} [PUT]
func (h *handler) UpdateShelf(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateShelfReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.UpdateShelf(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateShelf: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newShelfResp(output))
}

// DeleteShelf godoc
// @Summary     Delete a shelf
// @Description Only empty shelves can be deleted. Clears the default shelf when it pointed here.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Shelf ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shelves/{id} [DELETE]
func (h *handler) DeleteShelf(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteShelf(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteShelf: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddItem godoc
// @Summary     Add an item to a shelf
// @Description Merges into an existing item with the same name on the shelf.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Shelf ID"
// @Param       body body addItemReq true "Item data"
// @Success     200 {object} addItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/shelves/{id}/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAddItemReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.AddItem(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddItemResp(output))
}

// UpdateItem godoc
// @Summary     Update an item
// @Description Quantity 0 deletes the item. Renaming onto an existing name merges both.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Param       body body updateItemReq true "Fields to update"
// @Success     200 {object} updateItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.UpdateItem(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateItemResp(output))
}

// DeleteItem godoc
// @Summary     Delete an item
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteItem(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// MoveItem godoc
// @Summary     Move an item to another shelf
// @Description Merges into a same-named item on the target shelf.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Param       body body moveItemReq true "Target shelf"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/move [POST]
func (h *handler) MoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processMoveItemReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.MoveItem(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MoveItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output))
}

// GetDefaultShelf godoc
// @Summary     Get the default shelf
// @Description Shelf used by voice commands that name no destination. Null when unset.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Success     200 {object} defaultShelfResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/default-shelf [GET]
func (h *handler) GetDefaultShelf(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.GetDefaultShelf(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetDefaultShelf: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDefaultShelfResp(output))
}

// SetDefaultShelf godoc
// @Summary     Set the default shelf
// @Description An empty shelf_id clears the preference.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body setDefaultShelfReq true "Shelf ID"
// @Success     200 {object} defaultShelfResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/default-shelf [PUT]
func (h *handler) SetDefaultShelf(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSetDefaultShelfReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.SetDefaultShelf(ctx, sc, req.ShelfID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetDefaultShelf: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDefaultShelfResp(output))
}

// renderBindError renders HTTPErrors as they are and binding failures as 400.
func (h *handler) renderBindError(c *gin.Context, err error) {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}
