package webhook

import (
	"context"
	"sync"
)

// HandlerFunc is a callback invoked once per matching event. It receives the
// dispatch context (carrying the event-scoped logger and any configured
// deadline), the event context, and the extra value bound at registration.
// A non-nil error fails the dispatch and prevents invocation of any handler
// registered after this one.
type HandlerFunc func(ctx context.Context, c *Context, extra interface{}) error

// registration binds a handler to the extra value supplied when it was
// registered.
type registration struct {
	fn    HandlerFunc
	extra interface{}
}

// Registry maps event kinds to the handlers registered for them, in
// registration order. Registration typically happens sequentially at
// startup, but the Registry is safe for concurrent registration and lookup.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]registration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: map[string][]registration{},
	}
}

// Register appends a handler for the specified event kind. Handlers for a
// kind are invoked in the order they were registered.
func (r *Registry) Register(
	event string,
	fn HandlerFunc,
	extra interface{},
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[event] = append(r.handlers[event], registration{
		fn:    fn,
		extra: extra,
	})
}

// registrations returns a snapshot of the handlers registered for the
// specified event kind. The snapshot is safe to iterate while other
// goroutines register handlers.
func (r *Registry) registrations(event string) []registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]registration(nil), r.handlers[event]...)
}

// Len returns the number of handlers registered for the specified event
// kind.
func (r *Registry) Len(event string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[event])
}

// Clear removes every registration. It exists for tests and for apps that
// rebuild their handler set wholesale.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = map[string][]registration{}
}
