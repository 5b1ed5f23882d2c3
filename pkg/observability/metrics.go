package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for gateway transactions.
const (
	ResultApproved = "approved"
	ResultDeclined = "declined"
	ResultError    = "error"
)

var (
	// Gateway transaction metrics
	transactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vanco_transactions_total",
			Help: "Total number of gateway transactions",
		},
		[]string{"operation", "result"},
	)

	transactionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vanco_transaction_duration_seconds",
			Help:    "Duration of gateway transactions in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	transactionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vanco_transactions_in_flight",
			Help: "Number of gateway transactions currently being processed",
		},
	)
)

// ObserveTransaction records one completed gateway transaction.
// Both round trips of a call (login plus operation) count as one
// transaction; result is one of the Result* labels.
func ObserveTransaction(operation, result string, duration time.Duration) {
	transactionsTotal.WithLabelValues(operation, result).Inc()
	transactionDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// TrackInFlight marks a transaction as started and returns the function
// that marks it finished.
func TrackInFlight() func() {
	transactionsInFlight.Inc()
	return transactionsInFlight.Dec
}
