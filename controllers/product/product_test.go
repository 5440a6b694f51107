package productcontroller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProducts(t *testing.T) {
	r := newRouter(store.New())

	w := get(r, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeProducts(t, w), 11)
}

func TestGetProductByID(t *testing.T) {
	r := newRouter(store.New())

	w := get(r, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Nike Air Max", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 600000, *p.OriginalPrice)

	w = get(r, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductsByCategory(t *testing.T) {
	r := newRouter(store.New())

	w := get(r, "/api/products/category/poyabzal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "poyabzal", p.Category)
	}
}

func TestSearchProducts(t *testing.T) {
	r := newRouter(store.New())

	// Empty query is a validation error.
	w := get(r, "/api/products/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/api/products/search?q=nike", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lower := decodeProducts(t, w)
	require.Len(t, lower, 1)
	assert.Equal(t, "Nike Air Max", lower[0].Name)

	w = get(r, "/api/products/search?q=NIKE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	upper := decodeProducts(t, w)
	require.Len(t, upper, 1)
	assert.Equal(t, lower[0].ID, upper[0].ID)
}

func TestMerchandisingSections(t *testing.T) {
	r := newRouter(store.New())

	w := get(r, "/api/products/special/offers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	offers := decodeProducts(t, w)
	ids := make([]string, 0, len(offers))
	for _, p := range offers {
		require.True(t, p.IsSpecialOffer)
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "1")

	w = get(r, "/api/products/special/bestsellers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decodeProducts(t, w) {
		assert.True(t, p.IsBestSeller)
	}

	w = get(r, "/api/products/special/newarrivals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decodeProducts(t, w) {
		assert.True(t, p.IsNewArrival)
	}
}

func TestCreateProductRequiresAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "sekret-kalit")
	r := newRouter(store.New())

	body := gin.H{
		"name":        "Velosiped Shlemi",
		"description": "Yengil va mustahkam himoya shlemi",
		"price":       320000,
		"category":    "aksessuarlar",
		"imageUrl":    "https://example.com/helmet.jpg",
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "sekret-kalit")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	// Unset optionals get their defaults.
	assert.True(t, created.InStock)
	assert.Nil(t, created.OriginalPrice)
	assert.False(t, created.IsSpecialOffer)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestExportProductsToExcel(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "sekret-kalit")
	r := newRouter(store.New())

	w := get(r, "/api/admin/products/export", map[string]string{"X-API-KEY": "sekret-kalit"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
