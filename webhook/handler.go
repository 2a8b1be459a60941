package webhook

import (
	"context"
	"io"
	"net/http"
	"time"

	ghlib "github.com/AbelHristodor/octofer/github"
	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog/hlog"
)

const (
	eventTypeHeader  = "X-GitHub-Event"
	deliveryIDHeader = "X-GitHub-Delivery"
)

// HandlerConfig encapsulates Handler configuration.
type HandlerConfig struct {
	// GitHub is the client handlers reach the GitHub API through. It may
	// be nil, in which case dispatched events carry no API access.
	GitHub *ghlib.Client
	// HandlerTimeout optionally bounds the total time spent invoking the
	// handlers registered for a single event. Zero disables the bound.
	HandlerTimeout time.Duration
	// Metrics is the registry dispatch counts are reported to. When nil,
	// the process-wide default registry is used.
	Metrics metrics.Registry
}

// Handler is an implementation of the http.Handler interface that classifies
// webhook deliveries from GitHub and dispatches them to the handlers
// registered for their event kind. It expects payloads whose signatures have
// already been verified; mount it behind a signature verification filter.
type Handler struct {
	registry *Registry
	config   HandlerConfig
}

// NewHandler returns a Handler dispatching into the provided Registry.
func NewHandler(registry *Registry, config HandlerConfig) *Handler {
	return &Handler{
		registry: registry,
		config:   config,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck

	body, err := io.ReadAll(r.Body)
	if err != nil {
		hlog.FromRequest(r).Warn().
			Err(err).
			Msg("Error reading webhook payload")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := ParseEvent(
		r.Header.Get(eventTypeHeader),
		r.Header.Get(deliveryIDHeader),
		body,
	)
	if err != nil {
		hlog.FromRequest(r).Warn().
			Err(err).
			Msg("Error classifying webhook payload")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logCtx := hlog.FromRequest(r).With().
		Str("event_kind", event.Kind).
		Str("delivery_id", event.DeliveryID)
	if installationID, ok := event.Installation(); ok {
		logCtx = logCtx.Int64("installation_id", installationID)
	}
	logger := logCtx.Logger()
	logger.Info().Msg("Received webhook event")
	counter(h.config.Metrics, MetricEventsReceived).Inc(1)

	registrations := h.registry.registrations(event.Kind)
	// Absence of handlers is not an error; the delivery simply has no
	// audience.
	if len(registrations) == 0 {
		counter(h.config.Metrics, MetricEventsUnhandled).Inc(1)
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := logger.WithContext(r.Context())
	if h.config.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.HandlerTimeout)
		defer cancel()
	}

	eventCtx := NewContext(event, h.config.GitHub)
	// Handlers run sequentially in registration order. The first failure
	// fails the dispatch and skips the handlers after it, so GitHub sees
	// a non-2xx status and retries the delivery.
	for i, registration := range registrations {
		if err := registration.fn(ctx, eventCtx, registration.extra); err != nil {
			logger.Error().
				Err(err).
				Int("handler", i).
				Msg("Event handler failed")
			counter(h.config.Metrics, MetricHandlerErrors).Inc(1)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
