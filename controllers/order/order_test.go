package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/optombazar7-cpu/SportZone/models"
	"github.com/optombazar7-cpu/SportZone/routes"
	"github.com/optombazar7-cpu/SportZone/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, st)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validOrderPayload() gin.H {
	return gin.H{
		"order": gin.H{
			"customerName":    "Aziz Karimov",
			"customerPhone":   "+998901234567",
			"deliveryAddress": "Toshkent, Chilonzor 5",
			"paymentMethod":   "payme",
			"totalAmount":     985000,
		},
		"items": []gin.H{
			{"productId": "1", "quantity": 2, "price": 450000, "size": "41"},
			{"productId": "2", "quantity": 1, "price": 85000},
		},
	}
}

type placeOrderResponse struct {
	Order models.Order       `json:"order"`
	Items []models.OrderItem `json:"items"`
}

func TestPlaceOrderAndFetch(t *testing.T) {
	r := newRouter(store.New())

	payload := validOrderPayload()
	// A client-supplied status must be ignored.
	payload["order"].(gin.H)["status"] = "shipped"

	w := doJSON(t, r, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp placeOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Order.ID)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, models.PaymentMethodPayme, resp.Order.PaymentMethod)
	assert.Equal(t, 985000, resp.Order.TotalAmount)

	require.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.Equal(t, resp.Order.ID, item.OrderID)
		assert.NotEmpty(t, item.ID)
	}
	// Snapshot prices are the caller-supplied values.
	assert.Equal(t, 450000, resp.Items[0].Price)
	assert.Equal(t, 85000, resp.Items[1].Price)

	w = doJSON(t, r, http.MethodGet, "/api/orders/"+resp.Order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, resp.Order, fetched)
}

func TestPlaceOrderRejectsInvalidPaymentMethod(t *testing.T) {
	r := newRouter(store.New())

	// Exact matching: the uppercase variants are not in the enumerated set.
	for _, bad := range []string{"bitcoin", "PAYME", "Cash"} {
		payload := validOrderPayload()
		payload["order"].(gin.H)["paymentMethod"] = bad

		w := doJSON(t, r, http.MethodPost, "/api/orders", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payment method %q", bad)
	}
}

func TestNewOrderReachesWebSocketClients(t *testing.T) {
	r := newRouter(store.New())
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handshake completes before the server registers the client;
	// give the handler a moment to catch up.
	time.Sleep(100 * time.Millisecond)

	raw, err := json.Marshal(validOrderPayload())
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/orders", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)

	var order models.Order
	require.NoError(t, json.Unmarshal(data, &order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Aziz Karimov", order.CustomerName)
}

func TestPlaceOrderRejectsMalformedInput(t *testing.T) {
	r := newRouter(store.New())

	// Missing customer name
	payload := validOrderPayload()
	delete(payload["order"].(gin.H), "customerName")
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Empty item list
	payload = validOrderPayload()
	payload["items"] = []gin.H{}
	w = doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero-quantity item
	payload = validOrderPayload()
	payload["items"] = []gin.H{{"productId": "1", "quantity": 0, "price": 450000}}
	w = doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	r := newRouter(store.New())

	w := doJSON(t, r, http.MethodGet, "/api/orders/no-such-order", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
