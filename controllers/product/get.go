package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
)

// GetProductByID returns a single product.
// URL param: /api/products/:id
func GetProductByID(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := st.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProductsByCategory filters on an exact, case-sensitive category match.
// URL param: /api/products/category/:category
func GetProductsByCategory(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := st.ProductsByCategory(c.Param("category"))
		c.JSON(http.StatusOK, products)
	}
}
