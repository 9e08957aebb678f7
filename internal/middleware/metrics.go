package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Роли в метках: покупатели и администраторы нагружают разные маршруты
const (
	roleAnonymous = "anonymous"
	roleCustomer  = "customer"
	roleAdmin     = "admin"
)

type httpMetrics struct {
	inFlight     prometheus.Gauge
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	accessDenied *prometheus.CounterVec
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	factory := promauto.With(reg)
	return &httpMetrics{
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, caller role and status.",
		}, []string{"method", "route", "role", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "role"}),
		accessDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "access_denied_total",
			Help:      "Requests rejected with 401 or 403.",
		}, []string{"route", "role"}),
	}
}

var defaultHTTPMetrics = newHTTPMetrics(prometheus.DefaultRegisterer)

// Metrics считает запросы к API заказов в разрезе маршрута и роли вызывающего
func Metrics(next http.Handler) http.Handler {
	return defaultHTTPMetrics.middleware(next)
}

func (m *httpMetrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		m.observe(routePattern(r), callerRole(r), r.Method, rw.status, time.Since(start))
	})
}

func (m *httpMetrics) observe(route, role, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, role, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route, role).Observe(elapsed.Seconds())

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		m.accessDenied.WithLabelValues(route, role).Inc()
	}
}

// routePattern - шаблон маршрута вместо пути, чтобы id заказа не раздувал кардинальность
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
}

func callerRole(r *http.Request) string {
	req, ok := requesterFromHeaders(r)
	switch {
	case !ok:
		return roleAnonymous
	case req.IsAdmin:
		return roleAdmin
	default:
		return roleCustomer
	}
}
