package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/optombazar7-cpu/SportZone/controllers/product"
	"github.com/optombazar7-cpu/SportZone/middleware"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupAdminRoutes(r *gin.Engine, st *store.Store) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/products", productcontroller.CreateProduct(st))
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(st))
	}
}
