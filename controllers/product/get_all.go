package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/store"
)

// GET /api/products
func GetProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Products())
	}
}
