package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/optombazar7-cpu/SportZone/models"
	"github.com/optombazar7-cpu/SportZone/notify"
	"github.com/optombazar7-cpu/SportZone/store"
)

// -------- Request Structs --------

type OrderInput struct {
	CustomerName    string  `json:"customerName" binding:"required"`
	CustomerPhone   string  `json:"customerPhone" binding:"required"`
	CustomerEmail   *string `json:"customerEmail" binding:"omitempty,email"`
	DeliveryAddress string  `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
	TotalAmount     int     `json:"totalAmount" binding:"required,min=1"`
}

type OrderItemInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     int     `json:"price" binding:"required,min=1"`
	Size      *string `json:"size"`
}

type PlaceOrderRequest struct {
	Order OrderInput       `json:"order" binding:"required"`
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// -------- Helpers --------

// Map string to PaymentMethod. Exact match: the accepted values are an
// enumerated set, not case-normalized.
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch method {
	case string(models.PaymentMethodClick):
		return models.PaymentMethodClick, nil
	case string(models.PaymentMethodPayme):
		return models.PaymentMethodPayme, nil
	case string(models.PaymentMethodCash):
		return models.PaymentMethodCash, nil
	case string(models.PaymentMethodUzcard):
		return models.PaymentMethodUzcard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

func orderConfirmationEmail(order models.Order, items []models.OrderItem) (string, string) {
	subject := fmt.Sprintf("SportZone - Buyurtma tasdigi #%s", order.ID)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hurmatli %s,\n\n", order.CustomerName)
	sb.WriteString("Sizning buyurtmangiz muvaffaqiyatli qabul qilindi!\n\n")
	fmt.Fprintf(&sb, "Buyurtma raqami: %s\n", order.ID)
	fmt.Fprintf(&sb, "Jami summa: %d so'm\n", order.TotalAmount)
	fmt.Fprintf(&sb, "To'lov usuli: %s\n", order.PaymentMethod)
	fmt.Fprintf(&sb, "Yetkazib berish manzili: %s\n\n", order.DeliveryAddress)
	sb.WriteString("Buyurtma tarkibi:\n")
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. Mahsulot ID: %s, Miqdor: %d, Narx: %d so'm\n",
			i+1, item.ProductID, item.Quantity, item.Price)
	}
	sb.WriteString("\nYetkazib berish haqida telefon orqali xabar beriladi.\n\nRahmat,\nSportZone jamoasi")

	return subject, sb.String()
}

// -------- Handlers --------

// PlaceOrderHandler persists a checkout as one order plus its line items.
// The order is created first, then the items with the fresh order id as
// their foreign key. Item prices come from the cart at checkout time and
// are stored as-is. Any status supplied by the client is ignored; new
// orders are always pending.
// POST /api/orders
func PlaceOrderHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data: " + err.Error()})
			return
		}

		method, err := mapPaymentMethod(req.Order.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := st.CreateOrder(models.Order{
			CustomerName:    req.Order.CustomerName,
			CustomerPhone:   req.Order.CustomerPhone,
			CustomerEmail:   req.Order.CustomerEmail,
			DeliveryAddress: req.Order.DeliveryAddress,
			PaymentMethod:   method,
			TotalAmount:     req.Order.TotalAmount,
		})

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, in := range req.Items {
			item := st.CreateOrderItem(models.OrderItem{
				OrderID:   order.ID,
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Size:      in.Size,
				Price:     in.Price,
			})
			items = append(items, item)
		}

		// Confirmation email is fire-and-forget; a send failure never
		// fails the order.
		if order.CustomerEmail != nil {
			to := *order.CustomerEmail
			subject, content := orderConfirmationEmail(order, items)
			go func() {
				if _, err := notify.SendEmail(to, subject, content); err != nil {
					log.Printf("❌ Order confirmation email failed: %v", err)
				}
			}()
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"order": order, "items": items})
	}
}

// GET /api/orders/:id
func GetOrderHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := st.OrderByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
