package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/optombazar7-cpu/SportZone/controllers/product"
	"github.com/optombazar7-cpu/SportZone/store"
)

func SetupProductRoutes(r *gin.Engine, st *store.Store) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(st))
		products.GET("/search", productcontroller.SearchProducts(st))
		products.GET("/special/offers", productcontroller.GetSpecialOffers(st))
		products.GET("/special/bestsellers", productcontroller.GetBestSellers(st))
		products.GET("/special/newarrivals", productcontroller.GetNewArrivals(st))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(st))
		products.GET("/:id", productcontroller.GetProductByID(st))
	}
}
