package store

import (
	"github.com/shopspring/decimal"

	"bakery-service/internal/models"
)

// Analytics are pure projections over the order list, recomputed on demand.
// They mirror what the admin dashboard shows; nothing is cached.

// RealizedRevenue sums the totals of delivered orders
func RealizedRevenue(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == models.OrderStatusDelivered {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// PendingRevenue sums the totals of orders not yet delivered
func PendingRevenue(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status != models.OrderStatusDelivered {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// UnitsSoldByProduct sums item quantities across delivered orders, grouped by
// product NAME. Two distinct products sharing a name merge into one bucket;
// this matches the dashboard's behavior and is kept as is.
func UnitsSoldByProduct(orders []models.Order) map[string]int {
	sold := make(map[string]int)
	for _, o := range orders {
		if o.Status != models.OrderStatusDelivered {
			continue
		}
		for _, item := range o.Items {
			sold[item.Name] += item.Quantity
		}
	}
	return sold
}

// SellerRank names a product and the units it sold
type SellerRank struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// BestSeller returns the product with the most units sold across delivered
// orders. ok is false when no delivered order exists. Ties break toward the
// lexicographically smaller name so the result is deterministic.
func BestSeller(orders []models.Order) (SellerRank, bool) {
	return pickSeller(UnitsSoldByProduct(orders), func(units, best int) bool {
		return units > best
	})
}

// WorstSeller returns the product with the fewest units sold across delivered
// orders, with the same tie-breaking as BestSeller
func WorstSeller(orders []models.Order) (SellerRank, bool) {
	return pickSeller(UnitsSoldByProduct(orders), func(units, best int) bool {
		return units < best
	})
}

func pickSeller(sold map[string]int, better func(units, best int) bool) (SellerRank, bool) {
	var rank SellerRank
	found := false
	for name, units := range sold {
		if !found || better(units, rank.Units) || (units == rank.Units && name < rank.Name) {
			rank = SellerRank{Name: name, Units: units}
			found = true
		}
	}
	return rank, found
}
