package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
)

// Merchandising sections of the storefront home page.

// GET /api/products/special/offers
func GetSpecialOffers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.SpecialOffers())
	}
}

// GET /api/products/special/bestsellers
func GetBestSellers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.BestSellers())
	}
}

// GET /api/products/special/newarrivals
func GetNewArrivals(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.NewArrivals())
	}
}
