package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
)

// SearchProducts matches ?q= case-insensitively against product name,
// description and category. An empty query is a validation error.
// GET /api/products/search?q=nike
func SearchProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}
		c.JSON(http.StatusOK, st.SearchProducts(query))
	}
}
