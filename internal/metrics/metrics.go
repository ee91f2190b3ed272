package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 注文まわりのカウンタ
type OrderMetrics struct {
	Placed      prometheus.Counter
	Rejected    *prometheus.CounterVec
	Transitions *prometheus.CounterVec
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vendhub",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendhub",
		Subsystem: "orders",
		Name:      "rejected_total",
		Help:      "Total number of rejected order placements.",
	}, []string{"reason"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vendhub",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions.",
	}, []string{"to"})

	reg.MustRegister(placed, rejected, transitions)
	return &OrderMetrics{Placed: placed, Rejected: rejected, Transitions: transitions}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
