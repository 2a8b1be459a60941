package webhook

import (
	"github.com/rcrowley/go-metrics"
)

// Counter names registered by the webhook pipeline.
const (
	MetricEventsReceived     = "webhook.events.received"
	MetricEventsUnhandled    = "webhook.events.unhandled"
	MetricHandlerErrors      = "webhook.handler.errors"
	MetricRejectedDeliveries = "webhook.deliveries.rejected"
)

func counter(registry metrics.Registry, name string) metrics.Counter {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return metrics.GetOrRegisterCounter(name, registry)
}
