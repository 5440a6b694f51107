package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/optombazar7-cpu/SportZone/controllers/cart"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupCartRoutes(r *gin.Engine, st *store.Store) {
	cart := r.Group("/api/cart")
	{
		cart.GET("/:sessionId", cartControllers.GetCartItems(st))
		cart.POST("", cartControllers.AddCartItem(st))
		cart.PUT("/:id", cartControllers.UpdateCartItem(st))
		cart.DELETE("/:id", cartControllers.DeleteCartItem(st))
		cart.DELETE("/session/:sessionId", cartControllers.ClearCart(st))
	}
}
