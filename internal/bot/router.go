package bot

import "context"

// Message is one inbound text event, reduced to what routing and reply
// delivery need. It carries no state across messages.
type Message struct {
	ChatID int64
	Text   string
}

// Handler processes one routed message.
type Handler func(ctx context.Context, msg Message)

// Route pairs a predicate with a handler.
type Route struct {
	Match  func(text string) bool
	Handle Handler
}

// Router evaluates an explicit, ordered list of routes per inbound event.
// First match wins; no match means the event is dropped. Routes are
// registered once at construction, so Dispatch needs no locking.
type Router struct {
	routes []Route
}

// Add appends a route. Registration order is evaluation order.
func (r *Router) Add(match func(text string) bool, handle Handler) {
	r.routes = append(r.routes, Route{Match: match, Handle: handle})
}

// Dispatch routes one message. Returns false when no route matched.
func (r *Router) Dispatch(ctx context.Context, msg Message) bool {
	for _, route := range r.routes {
		if route.Match(msg.Text) {
			route.Handle(ctx, msg)
			return true
		}
	}
	return false
}
