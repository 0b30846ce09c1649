package api

import (
	"bakery-service/internal/models"
	"bakery-service/internal/store"
)

// resolveSection maps the stored section to the view that actually renders.
// The store accepts any section value, so unknown ones fall through to home
// here, and the dashboard resolves to the login view for non-admin sessions.
func resolveSection(state store.AppState) models.Section {
	switch state.CurrentSection {
	case models.SectionHome,
		models.SectionConfeitados,
		models.SectionCasamento,
		models.SectionFesta,
		models.SectionCart,
		models.SectionCheckout,
		models.SectionOrderConfirmation,
		models.SectionAdminLogin:
		return state.CurrentSection

	case models.SectionAdminDashboard:
		if state.IsAdminLoggedIn {
			return models.SectionAdminDashboard
		}
		return models.SectionAdminLogin

	default:
		return models.SectionHome
	}
}
