package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    Category        `json:"category"`
}

// CartItem is a product plus the selected quantity. It exists only in the
// cart; orders carry their own snapshotted copies.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Customer holds the checkout form data attached to an order
type Customer struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Order is created from a cart snapshot at checkout. Items and Total never
// change after creation; only Status does.
type Order struct {
	ID        string          `json:"id"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Customer  Customer        `json:"customer"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// SiteSettings holds the branding fields editable from the admin panel
type SiteSettings struct {
	SiteName       string `json:"site_name"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// SiteSettingsPatch is a partial update; nil fields are left untouched
type SiteSettingsPatch struct {
	SiteName       *string `json:"site_name"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
}

// Category of a catalog product
type Category string

// Product categories
const (
	CategoryConfeitados Category = "confeitados"
	CategoryCasamento   Category = "casamento"
	CategoryFesta       Category = "festa"
)

// OrderStatus tracks an order through the delivery pipeline
type OrderStatus string

// Order statuses, in pipeline order. The store does not enforce the
// progression; the admin panel advances orders one column at a time.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Payment methods offered at checkout. Selection only; no payment is
// actually processed.
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
	PaymentMethodPix  = "pix"
)

// ValidPaymentMethod reports whether m is one of the offered methods
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodPix:
		return true
	}
	return false
}

// Section identifies the active view. The store accepts any value; unknown
// sections resolve to home at render time.
type Section string

// Known sections
const (
	SectionHome              Section = "home"
	SectionConfeitados       Section = "confeitados"
	SectionCasamento         Section = "casamento"
	SectionFesta             Section = "festa"
	SectionCart              Section = "cart"
	SectionCheckout          Section = "checkout"
	SectionOrderConfirmation Section = "order-confirmation"
	SectionAdminLogin        Section = "admin-login"
	SectionAdminDashboard    Section = "admin-dashboard"
)

// CartTotal sums price * quantity over the given items
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
