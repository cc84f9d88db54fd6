package http

import (
	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/model"
	"fridge-inventory/pkg/scope"
)

// processScope returns the caller's scope set by middleware.Auth.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.IsAnonymous() {
		return model.Scope{}, false
	}
	return sc, true
}

// processID reads the :id path parameter.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func (h *handler) processCreateContainerReq(c *gin.Context) (createContainerReq, error) {
	var req createContainerReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processUpdateContainerReq(c *gin.Context) (updateContainerReq, error) {
	var req updateContainerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ID = id
	return req, err
}

func (h *handler) processCreateShelfReq(c *gin.Context) (createShelfReq, error) {
	var req createShelfReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ContainerID = id
	return req, err
}

func (h *handler) processUpdateShelfReq(c *gin.Context) (updateShelfReq, error) {
	var req updateShelfReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ID = id
	return req, err
}

func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ShelfID = id
	return req, err
}

func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ID = id
	return req, err
}

func (h *handler) processMoveItemReq(c *gin.Context) (moveItemReq, error) {
	var req moveItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	req.ID = id
	return req, err
}

func (h *handler) processSetDefaultShelfReq(c *gin.Context) (setDefaultShelfReq, error) {
	var req setDefaultShelfReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
