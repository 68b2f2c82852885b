// Package metrics provides Prometheus instrumentation for the bot.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommandsTotal counts executed commands by outcome.
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shoplist",
			Name:      "commands_total",
			Help:      "Total commands executed by outcome.",
		},
		[]string{"outcome"},
	)

	// RejectedTotal counts command messages that arrived without a tenant.
	RejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoplist",
			Name:      "rejected_messages_total",
			Help:      "Command messages rejected because they carry no tenant.",
		},
	)

	// PresentationFailuresTotal counts results that could not be shown to the user.
	PresentationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shoplist",
			Name:      "presentation_failures_total",
			Help:      "Results whose reply could not be delivered.",
		},
	)
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		CommandsTotal,
		RejectedTotal,
		PresentationFailuresTotal,
		collectors.NewGoCollector(),
	)
}

// RegisterTenantGauge exposes the number of tenants with a list. fn is
// evaluated on every scrape.
func RegisterTenantGauge(fn func() int) error {
	return registry.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "shoplist",
			Name:      "tenants",
			Help:      "Tenants with a list in memory.",
		},
		func() float64 { return float64(fn()) },
	))
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
