package http

import (
	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	CreateContainer(c *gin.Context)
	ListContainers(c *gin.Context)
	DetailContainer(c *gin.Context)
	UpdateContainer(c *gin.Context)
	DeleteContainer(c *gin.Context)
	CreateShelf(c *gin.Context)
	UpdateShelf(c *gin.Context)
	DeleteShelf(c *gin.Context)
	AddItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
	MoveItem(c *gin.Context)
	GetDefaultShelf(c *gin.Context)
	SetDefaultShelf(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
