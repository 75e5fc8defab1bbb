// Package metrics registers the gateway's Prometheus counters and
// histograms and exposes them over /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SubsystemsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nvmeof_subsystems_total",
			Help: "Total number of subsystems in the cluster state map",
		},
	)

	NamespacesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nvmeof_namespaces_total",
			Help: "Total number of namespaces in the cluster state map",
		},
	)

	ListenersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nvmeof_listeners_total",
			Help: "Total number of listeners by owning gateway",
		},
		[]string{"gateway"},
	)

	ANAGroupsOptimized = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nvmeof_ana_groups_optimized",
			Help: "ANA groups this gateway currently advertises as optimized",
		},
		[]string{"gateway"},
	)

	GatewayHealthy = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nvmeof_gateway_healthy",
			Help: "Whether this gateway's reconciler reports converged state (1 = healthy, 0 = degraded)",
		},
	)

	TGTRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nvmeof_tgt_request_duration_seconds",
			Help:    "TGT adapter JSON-RPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	TGTRequestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nvmeof_tgt_request_errors_total",
			Help: "Total TGT adapter JSON-RPC errors by method",
		},
		[]string{"method"},
	)

	StateMapCASConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nvmeof_statemap_cas_conflicts_total",
			Help: "Total state map compare-and-set conflicts observed",
		},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nvmeof_reconcile_duration_seconds",
			Help:    "Time taken to apply a state-map change to local TGT",
			Buckets: prometheus.DefBuckets,
		},
	)

	ReconcileErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nvmeof_reconcile_errors_total",
			Help: "Total reconciliation attempts that ended in a TGT error",
		},
	)

	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nvmeof_api_requests_total",
			Help: "Total number of gRPC requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nvmeof_api_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		SubsystemsTotal,
		NamespacesTotal,
		ListenersTotal,
		ANAGroupsOptimized,
		GatewayHealthy,
		TGTRequestDuration,
		TGTRequestErrors,
		StateMapCASConflicts,
		ReconcileDuration,
		ReconcileErrorsTotal,
		APIRequestsTotal,
		APIRequestDuration,
	)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// NewTimer starts timing a block of work against h; call Stop on the
// result when the work completes.
func NewTimer(h prometheus.Observer) *prometheus.Timer {
	return prometheus.NewTimer(h)
}
