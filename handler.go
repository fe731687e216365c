package pagelink

import "context"

// Handler extracts link data for one supported site family.
// Handlers are stateless; one instance exists per site family.
type Handler interface {
	// Name returns the handler's identifier (e.g., "docs", "pipelines").
	Name() string

	// Recognize reports whether the handler supports the address.
	// It is a pure predicate over the address string; no DOM access.
	Recognize(url string) bool

	// Extract scrapes a PageInfo from the page snapshot. Missing DOM nodes
	// degrade to best-effort labels; Extract fails with EEXTRACT only when
	// the page, despite matching the address pattern, lacks the data needed
	// to produce a meaningful link.
	Extract(ctx context.Context, page *Page) (*PageInfo, error)
}

// Registry is an ordered collection of site handlers. Selection is
// first-match-wins, so recognition predicates should be mutually exclusive;
// since disjointness of arbitrary predicates cannot be enforced at
// registration, Matches exposes every matching handler for diagnostics.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates a Registry with handlers in selection order.
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

// Register appends a handler to the end of the selection order.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Select returns the first handler in registration order that recognizes
// the address, or nil if none does.
func (r *Registry) Select(url string) Handler {
	for _, h := range r.handlers {
		if h.Recognize(url) {
			return h
		}
	}
	return nil
}

// Matches returns every handler that recognizes the address, in registration
// order. More than one element indicates overlapping recognition predicates.
func (r *Registry) Matches(url string) []Handler {
	var matched []Handler
	for _, h := range r.handlers {
		if h.Recognize(url) {
			matched = append(matched, h)
		}
	}
	return matched
}

// Handlers returns the registered handlers in selection order.
func (r *Registry) Handlers() []Handler {
	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}
