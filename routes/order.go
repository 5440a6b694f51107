package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/optombazar7-cpu/SportZone/controllers/order"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupOrderRoutes(r *gin.Engine, st *store.Store) {
	orders := r.Group("/api/orders")
	{
		// Create a new order with its line items
		orders.POST("", orderControllers.PlaceOrderHandler(st))

		// websocket endpoint for real-time order notifications
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:id", orderControllers.GetOrderHandler(st))
	}
}
