package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_dispatched_total",
		Help: "Total number of state actions dispatched",
	}, []string{"kind"})

	SessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sessions_created_total",
		Help: "Total number of storefront sessions created",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed at checkout",
	})

	CheckoutFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failed_total",
		Help: "Total number of rejected checkout attempts",
	}, []string{"reason"})

	AdminLoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_logins_total",
		Help: "Total number of successful admin logins",
	})

	AdminLoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_login_failures_total",
		Help: "Total number of rejected admin logins",
	})

	ConfirmationRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confirmation_redirects_total",
		Help: "Total number of countdown-driven redirects to home",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
