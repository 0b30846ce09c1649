package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-service/internal/models"
	"bakery-service/internal/service"
	"bakery-service/internal/session"
	"bakery-service/internal/store"
)

type sequenceIDs struct {
	prefix string
	n      int
}

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

type testClient struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(func() store.AppState {
		return store.NewState(models.SeedProducts(), models.DefaultSiteSettings())
	})
	checkout := service.NewCheckoutService(&sequenceIDs{prefix: "order"}, nil)
	auth := service.NewAuthService("admin@gebolos.com", "admin123")

	h := NewHandler(sessions, checkout, auth, &sequenceIDs{prefix: "product"}, 7)
	h.countdownInterval = 2 * time.Millisecond

	router := gin.New()
	h.SetupRoutes(router)

	return &testClient{t: t, router: router}
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			c.cookie = cookie
		}
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (c *testClient) login(t *testing.T) {
	w := c.do(http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    "admin@gebolos.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestViewDefaultsToHome(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/view", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "home", body["section"])
	assert.Equal(t, float64(0), body["cart_count"])
	assert.Equal(t, false, body["is_admin_logged_in"])
}

func TestUnknownSectionFallsBackToHome(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/section", gin.H{"section": "no-such-view"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", decode(t, w)["section"])
}

func TestAdminDashboardResolvesToLoginWhenLoggedOut(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/section", gin.H{"section": "admin-dashboard"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin-login", decode(t, w)["section"])
}

func TestListProductsByCategory(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/products?category=casamento", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := decode(t, w)["products"].([]interface{})
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "casamento", p.(map[string]interface{})["category"])
	}
}

func TestCartFlow(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]interface{})["quantity"])
	assert.Equal(t, "179.8", body["total"])

	// quantity zero removes the entry
	w = c.do(http.MethodPatch, "/api/v1/cart/items/1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestAddUnknownProductToCart(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newTestClient(t)
	// second browser against the same server: same router, no cookie yet
	b := &testClient{t: t, router: a.router}

	w := a.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = b.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "9"})

	w := c.do(http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Maria Silva",
		"email":          "maria@example.com",
		"phone":          "11 99999-0000",
		"address":        "Rua das Flores, 100",
		"payment_method": "pix",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	order := decode(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "order-1", order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "174.9", order["total"])

	w = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decode(t, w)["items"])

	w = c.do(http.MethodGet, "/api/v1/view", nil)
	assert.Equal(t, "order-confirmation", decode(t, w)["section"])
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Maria Silva",
		"email":          "maria@example.com",
		"phone":          "11 99999-0000",
		"address":        "Rua das Flores, 100",
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConfirmationCountdownRedirectsHome(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/confirmation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), decode(t, w)["redirect_seconds"])

	require.Eventually(t, func() bool {
		w := c.do(http.MethodGet, "/api/v1/view", nil)
		return decode(t, w)["section"] == "home"
	}, 2*time.Second, 5*time.Millisecond, "countdown never redirected home")
}

func TestNavigatingAwayCancelsCountdown(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/confirmation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/v1/section", gin.H{"section": "cart"})
	require.Equal(t, http.StatusOK, w.Code)

	// countdown would have fired well within this window
	time.Sleep(50 * time.Millisecond)

	w = c.do(http.MethodGet, "/api/v1/view", nil)
	assert.Equal(t, "cart", decode(t, w)["section"])
}

func TestAdminEndpointsRequireLogin(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/admin/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    "admin@gebolos.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodGet, "/api/v1/view", nil)
	assert.Equal(t, false, decode(t, w)["is_admin_logged_in"])
}

func TestAdminOrderStatusFlow(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	c.do(http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Maria Silva",
		"email":          "maria@example.com",
		"phone":          "11 99999-0000",
		"address":        "Rua das Flores, 100",
		"payment_method": "cash",
	})
	c.login(t)

	w := c.do(http.MethodPatch, "/api/v1/admin/orders/order-1/status", gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	order := decode(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "accepted", order["status"])

	// unknown id is a no-op, not an error
	w = c.do(http.MethodPatch, "/api/v1/admin/orders/missing/status", gin.H{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["order"])

	w = c.do(http.MethodGet, "/api/v1/admin/orders", nil)
	orders := decode(t, w)["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, "accepted", orders[0].(map[string]interface{})["status"])
}

func TestAdminProductCRUD(t *testing.T) {
	c := newTestClient(t)
	c.login(t)

	w := c.do(http.MethodPost, "/api/v1/admin/products", gin.H{
		"name":        "Bolo de Cenoura",
		"description": "Bolo de cenoura com cobertura de brigadeiro",
		"price":       "35.50",
		"image":       "https://images.pexels.com/photos/1998634/cake.jpeg",
		"category":    "festa",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	product := decode(t, w)["product"].(map[string]interface{})
	assert.Equal(t, "product-1", product["id"])

	w = c.do(http.MethodGet, "/api/v1/products", nil)
	assert.Len(t, decode(t, w)["products"].([]interface{}), 10)

	w = c.do(http.MethodDelete, "/api/v1/admin/products/product-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["products"].([]interface{}), 9)
}

func TestAdminAddProductRejectsUnknownCategory(t *testing.T) {
	c := newTestClient(t)
	c.login(t)

	w := c.do(http.MethodPost, "/api/v1/admin/products", gin.H{
		"name":        "Bolo de Cenoura",
		"description": "Bolo de cenoura",
		"price":       "35.50",
		"image":       "https://example.com/cake.jpeg",
		"category":    "salgados",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAnalytics(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "1"})
	c.do(http.MethodPost, "/api/v1/checkout", gin.H{
		"name":           "Maria Silva",
		"email":          "maria@example.com",
		"phone":          "11 99999-0000",
		"address":        "Rua das Flores, 100",
		"payment_method": "pix",
	})
	c.login(t)

	w := c.do(http.MethodGet, "/api/v1/admin/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "0", body["realized_revenue"])
	assert.Equal(t, "89.9", body["pending_revenue"])
	assert.NotContains(t, body, "best_seller")

	c.do(http.MethodPatch, "/api/v1/admin/orders/order-1/status", gin.H{"status": "delivered"})

	w = c.do(http.MethodGet, "/api/v1/admin/analytics", nil)
	body = decode(t, w)
	assert.Equal(t, "89.9", body["realized_revenue"])
	assert.Equal(t, "0", body["pending_revenue"])
	best := body["best_seller"].(map[string]interface{})
	assert.Equal(t, "Bolo Red Velvet Premium", best["name"])
}

func TestAdminUpdateSettingsPartialMerge(t *testing.T) {
	c := newTestClient(t)
	c.login(t)

	w := c.do(http.MethodPut, "/api/v1/admin/settings", gin.H{"site_name": "Confeitaria da Ana"})
	require.Equal(t, http.StatusOK, w.Code)

	settings := decode(t, w)["site_settings"].(map[string]interface{})
	assert.Equal(t, "Confeitaria da Ana", settings["site_name"])
	assert.Equal(t, "#8B4513", settings["primary_color"], "unspecified fields retained")
}

func TestLogoutClosesDashboard(t *testing.T) {
	c := newTestClient(t)
	c.login(t)

	w := c.do(http.MethodPost, "/api/v1/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/v1/admin/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodGet, "/api/v1/view", nil)
	assert.Equal(t, "home", decode(t, w)["section"])
}
