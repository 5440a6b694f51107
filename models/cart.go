package models

import "time"

// CartItem is one row in a session's cart. SessionID is an opaque token
// generated by the client; it is not tied to a User, so a cart survives
// login and logout.
type CartItem struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      *string   `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartLine is a cart row joined with its referenced product, the shape
// the cart endpoints return.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}
