package models

import "time"

// Product is a catalog entry. Prices are stored in so'm (no fractional
// unit), OriginalPrice is only set for discounted items so the storefront
// can render the strike-through price.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          int       `json:"price"`
	OriginalPrice  *int      `json:"originalPrice"`
	Category       string    `json:"category"`
	Subcategory    *string   `json:"subcategory"`
	ImageURL       string    `json:"imageUrl"`
	Images         []string  `json:"images"`
	VideoURL       *string   `json:"videoUrl"`
	Sizes          []string  `json:"sizes"`
	InStock        bool      `json:"inStock"`
	IsSpecialOffer bool      `json:"isSpecialOffer"`
	IsBestSeller   bool      `json:"isBestSeller"`
	IsNewArrival   bool      `json:"isNewArrival"`
	CreatedAt      time.Time `json:"createdAt"`
}
