package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"bakery-service/internal/models"
	"bakery-service/internal/session"
	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in
	// the cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidPaymentMethod is returned when no offered payment method
	// was selected
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// CheckoutService turns the current cart into an order. Payment is selection
// only: the chosen method is recorded on the order and nothing is charged.
type CheckoutService struct {
	ids    IDGenerator
	now    func() time.Time
	logger *zap.Logger
}

// NewCheckoutService creates a checkout service. now may be nil, in which
// case the wall clock is used.
func NewCheckoutService(ids IDGenerator, now func() time.Time) *CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &CheckoutService{
		ids:    ids,
		now:    now,
		logger: util.GetLogger(),
	}
}

// PlaceOrder snapshots the session's cart into a new pending order and
// dispatches the three actions checkout consists of: AddOrder, ClearCart and
// the navigation to the confirmation view. The store never auto-clears the
// cart; the separate ClearCart dispatch here is what empties it.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess *session.Session, customer models.Customer) (models.Order, error) {
	_, span := util.StartSpan(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	state := sess.Dispatcher.State()

	if len(state.Cart) == 0 {
		util.CheckoutFailedTotal.WithLabelValues("empty_cart").Inc()
		return models.Order{}, ErrEmptyCart
	}
	if !models.ValidPaymentMethod(customer.PaymentMethod) {
		util.CheckoutFailedTotal.WithLabelValues("invalid_payment_method").Inc()
		return models.Order{}, ErrInvalidPaymentMethod
	}

	items := make([]models.CartItem, len(state.Cart))
	copy(items, state.Cart)

	order := models.Order{
		ID:        s.ids.NewID(),
		Items:     items,
		Total:     models.CartTotal(items),
		Customer:  customer,
		Status:    models.OrderStatusPending,
		CreatedAt: s.now(),
	}

	sess.Dispatcher.Dispatch(store.AddOrder{Order: order})
	sess.Dispatcher.Dispatch(store.ClearCart{})
	sess.Dispatcher.Dispatch(store.SetSection{Section: models.SectionOrderConfirmation})

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("payment_method", customer.PaymentMethod),
		zap.String("total", order.Total.String()))

	return order, nil
}
