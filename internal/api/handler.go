// Package api is the HTTP rendition of the storefront's view layer: every
// handler reads a state snapshot and dispatches actions, nothing more. Each
// browser session is bound to its own dispatcher via a session cookie.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"bakery-service/internal/models"
	"bakery-service/internal/service"
	"bakery-service/internal/session"
	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

const sessionCookie = "bakery_session"

// Handler contains HTTP handlers
type Handler struct {
	sessions *session.Manager
	checkout *service.CheckoutService
	auth     *service.AuthService
	ids      service.IDGenerator

	confirmationSeconds int
	countdownInterval   time.Duration
}

// NewHandler creates a new HTTP handler
func NewHandler(
	sessions *session.Manager,
	checkout *service.CheckoutService,
	auth *service.AuthService,
	ids service.IDGenerator,
	confirmationSeconds int,
) *Handler {
	return &Handler{
		sessions:            sessions,
		checkout:            checkout,
		auth:                auth,
		ids:                 ids,
		confirmationSeconds: confirmationSeconds,
		countdownInterval:   time.Second,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(h.sessionMiddleware())
	{
		v1.GET("/view", h.currentView)
		v1.POST("/section", h.setSection)

		v1.GET("/products", h.listProducts)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addToCart)
		v1.PATCH("/cart/items/:id", h.updateCartQuantity)
		v1.DELETE("/cart/items/:id", h.removeFromCart)
		v1.DELETE("/cart", h.clearCart)

		v1.POST("/checkout", h.placeOrder)
		v1.GET("/confirmation", h.confirmation)

		v1.POST("/admin/login", h.adminLogin)
		v1.POST("/admin/logout", h.adminLogout)

		admin := v1.Group("/admin")
		admin.Use(h.adminRequired())
		{
			admin.GET("/orders", h.listOrders)
			admin.PATCH("/orders/:id/status", h.updateOrderStatus)
			admin.POST("/products", h.addProduct)
			admin.DELETE("/products/:id", h.removeProduct)
			admin.GET("/analytics", h.analytics)
			admin.PUT("/settings", h.updateSettings)
		}
	}
}

// sessionMiddleware binds the request to its session, creating one (and
// setting the cookie) on first contact
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess := h.sessions.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		}
		c.Set("session", sess)
		c.Next()
	}
}

// adminRequired rejects requests from sessions that are not logged in
func (h *Handler) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.session(c).Dispatcher.State().IsAdminLoggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "admin login required",
			})
			return
		}
		c.Next()
	}
}

func (h *Handler) session(c *gin.Context) *session.Session {
	return c.MustGet("session").(*session.Session)
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"sessions": h.sessions.Len(),
		"time":     time.Now().Unix(),
	})
}

// currentView returns what the top-level view selector would render
func (h *Handler) currentView(c *gin.Context) {
	state := h.session(c).Dispatcher.State()

	cartCount := 0
	for _, item := range state.Cart {
		cartCount += item.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"section":            resolveSection(state),
		"site_settings":      state.SiteSettings,
		"cart_count":         cartCount,
		"is_admin_logged_in": state.IsAdminLoggedIn,
	})
}

type setSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// setSection navigates the session. Leaving the confirmation view cancels
// its countdown.
func (h *Handler) setSection(c *gin.Context) {
	var req setSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sess := h.session(c)
	target := models.Section(req.Section)
	if target != models.SectionOrderConfirmation {
		sess.StopCountdown()
	}

	state := sess.Dispatcher.Dispatch(store.SetSection{Section: target})
	c.JSON(http.StatusOK, gin.H{"section": resolveSection(state)})
}

// listProducts returns the catalog, optionally filtered by category
func (h *Handler) listProducts(c *gin.Context) {
	state := h.session(c).Dispatcher.State()

	products := state.Products
	if category := c.Query("category"); category != "" {
		products = state.ProductsByCategory(models.Category(category))
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// getCart returns the cart contents and the running total
func (h *Handler) getCart(c *gin.Context) {
	state := h.session(c).Dispatcher.State()
	c.JSON(http.StatusOK, gin.H{
		"items": state.Cart,
		"total": models.CartTotal(state.Cart),
	})
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// addToCart adds one unit of a catalog product to the cart
func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sess := h.session(c)
	product, ok := sess.Dispatcher.State().Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	state := sess.Dispatcher.Dispatch(store.AddToCart{Product: product})
	c.JSON(http.StatusOK, gin.H{"items": state.Cart, "total": models.CartTotal(state.Cart)})
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// updateCartQuantity sets the quantity on a cart entry; zero or below
// removes it
func (h *Handler) updateCartQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	state := h.session(c).Dispatcher.Dispatch(store.UpdateCartQuantity{
		ProductID: c.Param("id"),
		Quantity:  *req.Quantity,
	})
	c.JSON(http.StatusOK, gin.H{"items": state.Cart, "total": models.CartTotal(state.Cart)})
}

// removeFromCart drops a cart entry; an unknown id is a no-op
func (h *Handler) removeFromCart(c *gin.Context) {
	state := h.session(c).Dispatcher.Dispatch(store.RemoveFromCart{ProductID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"items": state.Cart, "total": models.CartTotal(state.Cart)})
}

// clearCart empties the cart
func (h *Handler) clearCart(c *gin.Context) {
	state := h.session(c).Dispatcher.Dispatch(store.ClearCart{})
	c.JSON(http.StatusOK, gin.H{"items": state.Cart})
}

type checkoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// placeOrder runs checkout for the session's cart
func (h *Handler) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), h.session(c), models.Customer{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) || errors.Is(err, service.ErrInvalidPaymentMethod) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// confirmation renders the order-confirmation view and arms its redirect
// countdown. Re-entering restarts the countdown from the top. The countdown
// outlives the request, so it runs on the background context; navigating
// away is what cancels it.
func (h *Handler) confirmation(c *gin.Context) {
	sess := h.session(c)
	sess.Dispatcher.Dispatch(store.SetSection{Section: models.SectionOrderConfirmation})

	countdown := session.NewCountdown(sess.Dispatcher, h.confirmationSeconds, h.countdownInterval)
	countdown.Start(context.Background())
	sess.SetCountdown(countdown)

	c.JSON(http.StatusOK, gin.H{
		"section":          models.SectionOrderConfirmation,
		"redirect_seconds": h.confirmationSeconds,
		"redirect_section": models.SectionHome,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// adminLogin checks the credential pair and opens the dashboard
func (h *Handler) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sess := h.session(c)
	if err := h.auth.Login(sess, req.Email, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": models.SectionAdminDashboard})
}

// adminLogout drops the admin flag and navigates home
func (h *Handler) adminLogout(c *gin.Context) {
	h.auth.Logout(h.session(c))
	c.JSON(http.StatusOK, gin.H{"section": models.SectionHome})
}

// listOrders returns every order of the session, newest state included
func (h *Handler) listOrders(c *gin.Context) {
	state := h.session(c).Dispatcher.State()
	c.JSON(http.StatusOK, gin.H{"orders": state.Orders})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateOrderStatus writes any status value onto the matching order. An
// unknown order id leaves the state untouched, mirroring the store's no-op.
func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	state := h.session(c).Dispatcher.Dispatch(store.UpdateOrderStatus{
		OrderID: c.Param("id"),
		Status:  models.OrderStatus(req.Status),
	})

	if order, ok := state.Order(c.Param("id")); ok {
		c.JSON(http.StatusOK, gin.H{"order": order})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": nil})
}

type addProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image" binding:"required"`
	Category    string          `json:"category" binding:"required"`
}

// addProduct appends a product to the catalog with a generated id
func (h *Handler) addProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category := models.Category(req.Category)
	switch category {
	case models.CategoryConfeitados, models.CategoryCasamento, models.CategoryFesta:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	product := models.Product{
		ID:          h.ids.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    category,
	}

	h.session(c).Dispatcher.Dispatch(store.AddProduct{Product: product})
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// removeProduct drops a catalog entry; cart and orders keep their copies
func (h *Handler) removeProduct(c *gin.Context) {
	state := h.session(c).Dispatcher.Dispatch(store.RemoveProduct{ProductID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"products": state.Products})
}

// analytics returns the dashboard projections, recomputed on demand
func (h *Handler) analytics(c *gin.Context) {
	state := h.session(c).Dispatcher.State()

	resp := gin.H{
		"realized_revenue": store.RealizedRevenue(state.Orders),
		"pending_revenue":  store.PendingRevenue(state.Orders),
		"units_sold":       store.UnitsSoldByProduct(state.Orders),
	}
	if best, ok := store.BestSeller(state.Orders); ok {
		resp["best_seller"] = best
	}
	if worst, ok := store.WorstSeller(state.Orders); ok {
		resp["worst_seller"] = worst
	}

	c.JSON(http.StatusOK, resp)
}

// updateSettings shallow-merges a branding patch; absent fields are retained
func (h *Handler) updateSettings(c *gin.Context) {
	var patch models.SiteSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	state := h.session(c).Dispatcher.Dispatch(store.UpdateSiteSettings{Patch: patch})
	c.JSON(http.StatusOK, gin.H{"site_settings": state.SiteSettings})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
