package http

import (
	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	containers := rg.Group("/containers", mw.Auth())
	{
		containers.POST("", h.CreateContainer)
		containers.GET("", h.ListContainers)
		containers.GET("/:id", h.DetailContainer)
		containers.PUT("/:id", h.UpdateContainer)
		containers.DELETE("/:id", h.DeleteContainer)
		containers.POST("/:id/shelves", h.CreateShelf)
	}

	shelves := rg.Group("/shelves", mw.Auth())
	{
		shelves.PUT("/:id", h.UpdateShelf)
		shelves.DELETE("/:id", h.DeleteShelf)
		shelves.POST("/:id/items", h.AddItem)
	}

	items := rg.Group("/items", mw.Auth())
	{
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
		items.POST("/:id/move", h.MoveItem)
	}

	prefs := rg.Group("/preferences", mw.Auth())
	{
		prefs.GET("/default-shelf", h.GetDefaultShelf)
		prefs.PUT("/default-shelf", h.SetDefaultShelf)
	}
}
