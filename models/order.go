package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Orders are created pending; no further transitions happen in this
	// service.
	OrderStatusPending OrderStatus = "pending"

	// Payment methods accepted at checkout.
	PaymentMethodClick  PaymentMethod = "click"
	PaymentMethodPayme  PaymentMethod = "payme"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodUzcard PaymentMethod = "uzcard"
)

type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   *string       `json:"customerEmail"`
	DeliveryAddress string        `json:"deliveryAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	TotalAmount     int           `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// OrderItem snapshots the unit price at order time, so later catalog price
// changes never rewrite the history of a placed order.
type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size"`
	Price     int     `json:"price"`
}
