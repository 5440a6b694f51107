package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/models"
	"github.com/optombazar7-cpu/SportZone/store"
)

type AddCartItemInput struct {
	SessionID string  `json:"sessionId" binding:"required"`
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1"`
	Size      *string `json:"size"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCartItems returns every row for the session, each joined with its
// product. A row pointing at a vanished product means the cart and the
// catalog have diverged; that is logged as an integrity failure, never
// hidden behind a plain not-found.
// GET /api/cart/:sessionId
func GetCartItems(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := st.CartLines(c.Param("sessionId"))
		if err != nil {
			if errors.Is(err, store.ErrProductMissing) {
				log.Printf("❌ Cart integrity failure: %v", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}
		if lines == nil {
			lines = []models.CartLine{}
		}
		c.JSON(http.StatusOK, lines)
	}
}

// AddCartItem appends a new row to the session's cart. Adding the same
// product twice keeps two rows; quantities are never merged.
// POST /api/cart
func AddCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item data: " + err.Error()})
			return
		}

		if _, ok := st.ProductByID(input.ProductID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item := st.AddCartItem(models.CartItem{
			SessionID: input.SessionID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Size:      input.Size,
		})
		c.JSON(http.StatusCreated, item)
	}
}

// UpdateCartItem replaces the quantity of one row. Quantities below 1 are
// rejected here and the stored row stays untouched.
// PUT /api/cart/:id
func UpdateCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		item, ok := st.UpdateCartQuantity(c.Param("id"), input.Quantity)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func DeleteCartItem(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !st.RemoveCartItem(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
	}
}

// ClearCart drops every row for the session. Clearing an unknown session
// is a no-op and still succeeds.
// DELETE /api/cart/session/:sessionId
func ClearCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		st.ClearCart(c.Param("sessionId"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
