package store

import "bakery-service/internal/models"

// Action describes a state change intent. The set of implementations below is
// the full interface surface the view layer may invoke.
type Action interface {
	// Kind returns a stable name for logging and metrics
	Kind() string
}

// AddToCart appends the product with quantity 1, or increments the existing
// entry's quantity by 1 if the product is already in the cart
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart removes the cart entry with the given product id
type RemoveFromCart struct {
	ProductID string
}

// UpdateCartQuantity sets the quantity on the matching cart entry. A quantity
// of zero or below removes the entry.
type UpdateCartQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart
type ClearCart struct{}

// SetSection replaces the current section. The value is not validated;
// unknown sections resolve to home at render time.
type SetSection struct {
	Section models.Section
}

// AddOrder appends the order. The caller is responsible for the order's id
// and for having computed its total from the snapshotted items.
type AddOrder struct {
	Order models.Order
}

// UpdateOrderStatus replaces the status on the matching order. Any status
// value is accepted; an unknown order id is a no-op.
type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

// LoginAdmin marks the session as admin
type LoginAdmin struct{}

// LogoutAdmin clears the admin flag. It does not touch the current section;
// callers navigate away separately.
type LogoutAdmin struct{}

// AddProduct appends the product to the catalog. Id uniqueness is the
// caller's responsibility.
type AddProduct struct {
	Product models.Product
}

// RemoveProduct removes the catalog entry with the given id. Existing cart
// entries and orders referencing the product are left as they are.
type RemoveProduct struct {
	ProductID string
}

// UpdateSiteSettings shallow-merges the patch into the current settings
type UpdateSiteSettings struct {
	Patch models.SiteSettingsPatch
}

func (AddToCart) Kind() string          { return "add_to_cart" }
func (RemoveFromCart) Kind() string     { return "remove_from_cart" }
func (UpdateCartQuantity) Kind() string { return "update_cart_quantity" }
func (ClearCart) Kind() string          { return "clear_cart" }
func (SetSection) Kind() string         { return "set_section" }
func (AddOrder) Kind() string           { return "add_order" }
func (UpdateOrderStatus) Kind() string  { return "update_order_status" }
func (LoginAdmin) Kind() string         { return "login_admin" }
func (LogoutAdmin) Kind() string        { return "logout_admin" }
func (AddProduct) Kind() string         { return "add_product" }
func (RemoveProduct) Kind() string      { return "remove_product" }
func (UpdateSiteSettings) Kind() string { return "update_site_settings" }
