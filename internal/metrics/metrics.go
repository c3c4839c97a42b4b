package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrdersAssignedTotal returns a Prometheus counter for orders handed to couriers by the batch assigner
func NewOrdersAssignedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_assigned_total",
		Help: "Total number of orders handed to couriers by the batch assigner",
	})
}

// NewOrdersCompletedTotal returns a Prometheus counter for orders marked complete
func NewOrdersCompletedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Total number of orders marked complete",
	})
}
