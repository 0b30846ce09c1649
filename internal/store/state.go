// Package store holds the application state and the pure transition function
// that applies dispatched actions to it. Nothing in this package logs, ticks
// or generates identifiers; those concerns live with the callers.
package store

import "bakery-service/internal/models"

// AppState is the single source of truth for one storefront session.
// Transitions replace it wholesale; the previous value is never mutated.
type AppState struct {
	Products        []models.Product    `json:"products"`
	Cart            []models.CartItem   `json:"cart"`
	Orders          []models.Order      `json:"orders"`
	CurrentSection  models.Section      `json:"current_section"`
	IsAdminLoggedIn bool                `json:"is_admin_logged_in"`
	SiteSettings    models.SiteSettings `json:"site_settings"`
}

// NewState returns the initial state for a fresh session
func NewState(products []models.Product, settings models.SiteSettings) AppState {
	return AppState{
		Products:       products,
		Cart:           []models.CartItem{},
		Orders:         []models.Order{},
		CurrentSection: models.SectionHome,
		SiteSettings:   settings,
	}
}

// CartItem returns the cart entry for the given product id, if present
func (s AppState) CartItem(productID string) (models.CartItem, bool) {
	for _, item := range s.Cart {
		if item.ID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// Product returns the catalog entry for the given id, if present
func (s AppState) Product(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Order returns the order with the given id, if present
func (s AppState) Order(id string) (models.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ProductsByCategory returns the catalog entries in the given category,
// preserving catalog order
func (s AppState) ProductsByCategory(category models.Category) []models.Product {
	out := make([]models.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
