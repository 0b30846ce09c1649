package store

import "bakery-service/internal/models"

// Transition applies an action to the state and returns the next state. It is
// a total function: every action either applies or is a no-op, and an action
// of an unknown kind returns the state unchanged. The input state is never
// modified; changed collections are rebuilt, unchanged ones are shared.
func Transition(state AppState, action Action) AppState {
	switch a := action.(type) {
	case AddToCart:
		return addToCart(state, a.Product)

	case RemoveFromCart:
		cart := make([]models.CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ID != a.ProductID {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case UpdateCartQuantity:
		cart := make([]models.CartItem, 0, len(state.Cart))
		for _, item := range state.Cart {
			if item.ID == a.ProductID {
				item.Quantity = a.Quantity
			}
			if item.Quantity > 0 {
				cart = append(cart, item)
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = []models.CartItem{}
		return state

	case SetSection:
		state.CurrentSection = a.Section
		return state

	case AddOrder:
		orders := make([]models.Order, len(state.Orders), len(state.Orders)+1)
		copy(orders, state.Orders)
		state.Orders = append(orders, a.Order)
		return state

	case UpdateOrderStatus:
		orders := make([]models.Order, len(state.Orders))
		copy(orders, state.Orders)
		for i := range orders {
			if orders[i].ID == a.OrderID {
				orders[i].Status = a.Status
			}
		}
		state.Orders = orders
		return state

	case LoginAdmin:
		state.IsAdminLoggedIn = true
		return state

	case LogoutAdmin:
		state.IsAdminLoggedIn = false
		return state

	case AddProduct:
		products := make([]models.Product, len(state.Products), len(state.Products)+1)
		copy(products, state.Products)
		state.Products = append(products, a.Product)
		return state

	case RemoveProduct:
		products := make([]models.Product, 0, len(state.Products))
		for _, p := range state.Products {
			if p.ID != a.ProductID {
				products = append(products, p)
			}
		}
		state.Products = products
		return state

	case UpdateSiteSettings:
		state.SiteSettings = mergeSettings(state.SiteSettings, a.Patch)
		return state

	default:
		return state
	}
}

func addToCart(state AppState, product models.Product) AppState {
	for i, item := range state.Cart {
		if item.ID == product.ID {
			cart := make([]models.CartItem, len(state.Cart))
			copy(cart, state.Cart)
			cart[i].Quantity++
			state.Cart = cart
			return state
		}
	}
	cart := make([]models.CartItem, len(state.Cart), len(state.Cart)+1)
	copy(cart, state.Cart)
	state.Cart = append(cart, models.CartItem{Product: product, Quantity: 1})
	return state
}

func mergeSettings(settings models.SiteSettings, patch models.SiteSettingsPatch) models.SiteSettings {
	if patch.SiteName != nil {
		settings.SiteName = *patch.SiteName
	}
	if patch.LogoURL != nil {
		settings.LogoURL = *patch.LogoURL
	}
	if patch.PrimaryColor != nil {
		settings.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		settings.SecondaryColor = *patch.SecondaryColor
	}
	return settings
}
