package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/models"
	"github.com/optombazar7-cpu/SportZone/store"
)

type ProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Price          int      `json:"price" binding:"required,min=1"`
	OriginalPrice  *int     `json:"originalPrice" binding:"omitempty,min=1"`
	Category       string   `json:"category" binding:"required"`
	Subcategory    *string  `json:"subcategory"`
	ImageURL       string   `json:"imageUrl" binding:"required"`
	Images         []string `json:"images"`
	VideoURL       *string  `json:"videoUrl"`
	Sizes          []string `json:"sizes"`
	InStock        *bool    `json:"inStock"`
	IsSpecialOffer bool     `json:"isSpecialOffer"`
	IsBestSeller   bool     `json:"isBestSeller"`
	IsNewArrival   bool     `json:"isNewArrival"`
}

// CreateProduct inserts a new catalog entry. Unset optional fields get
// their defaults here; inStock in particular defaults to true.
// POST /api/admin/products
func CreateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data: " + err.Error()})
			return
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := st.CreateProduct(models.Product{
			Name:           input.Name,
			Description:    input.Description,
			Price:          input.Price,
			OriginalPrice:  input.OriginalPrice,
			Category:       input.Category,
			Subcategory:    input.Subcategory,
			ImageURL:       input.ImageURL,
			Images:         input.Images,
			VideoURL:       input.VideoURL,
			Sizes:          input.Sizes,
			InStock:        inStock,
			IsSpecialOffer: input.IsSpecialOffer,
			IsBestSeller:   input.IsBestSeller,
			IsNewArrival:   input.IsNewArrival,
		})
		c.JSON(http.StatusCreated, product)
	}
}
