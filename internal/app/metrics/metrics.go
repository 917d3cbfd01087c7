// Package metrics exposes Prometheus collectors for the dashboard core.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Registry holds the dashboard-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total number of mock backend operations.",
		},
		[]string{"op", "status"},
	)

	benefitClaims = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "benefits",
			Name:      "claims_total",
			Help:      "Total number of first-time benefit claims.",
		},
	)

	pointsEarned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "rewards",
			Name:      "points_earned_total",
			Help:      "Total points credited to the ledger.",
		},
	)

	pointsRedeemed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "rewards",
			Name:      "points_redeemed_total",
			Help:      "Total points redeemed from the ledger.",
		},
	)

	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "stores",
			Name:      "errors_total",
			Help:      "Backend failures recorded by client stores.",
		},
		[]string{"store"},
	)
)

func init() {
	Registry.MustRegister(
		backendRequests,
		benefitClaims,
		pointsEarned,
		pointsRedeemed,
		storeErrors,
	)
}

// ObserveBackendRequest records the outcome of a backend operation.
func ObserveBackendRequest(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	backendRequests.WithLabelValues(op, status).Inc()
}

// BenefitClaimed counts a first-time claim.
func BenefitClaimed() {
	benefitClaims.Inc()
}

// PointsEarned adds to the earned-points total.
func PointsEarned(amount int) {
	pointsEarned.Add(float64(amount))
}

// PointsRedeemed adds to the redeemed-points total.
func PointsRedeemed(amount int) {
	pointsRedeemed.Add(float64(amount))
}

// StoreError counts a failure retained by a client store.
func StoreError(store string) {
	storeErrors.WithLabelValues(store).Inc()
}
