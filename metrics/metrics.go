package metrics

import "github.com/prometheus/client_golang/prometheus"

type Observer interface {
	Observe(val float64, labels ...string)

	// for now we will tightly couple to the prometheus collector type
	// the go otel metrics sdk also has a prometheus adapter that implements this interface.
	prometheus.Collector
}

type Metrics struct {
	// MsgsCount counts messages received from the gateway.
	MsgsCount Observer
	// CommandCount counts dispatched command invocations, labeled by bot
	// and command name.
	CommandCount Observer
	// DeniedCount counts invocations rejected by the access policy.
	DeniedCount Observer
	// UnknownCount counts invocations of unrecognized commands.
	UnknownCount Observer
	// HandlerErrorCount counts handler failures converted to error replies.
	HandlerErrorCount Observer
	// EvictedCount counts sessions removed by idle sweeps.
	EvictedCount Observer
	// DispatchLatency observes seconds from parse to response, labeled by
	// bot and category.
	DispatchLatency Observer
}

func (m Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MsgsCount,
		m.CommandCount,
		m.DeniedCount,
		m.UnknownCount,
		m.HandlerErrorCount,
		m.EvictedCount,
		m.DispatchLatency,
	}
}
