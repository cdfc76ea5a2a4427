package domain

import (
	"context"
	"time"
)

// RouteEvent describes the outcome of one resolution attempt.
type RouteEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Intent    string        `json:"intent"`
	Platform  string        `json:"platform,omitempty"`
	Route     *Route        `json:"route,omitempty"`
	Err       error         `json:"-"`
	Duration  time.Duration `json:"duration"`
}

// Matched reports whether the attempt produced a route.
func (e *RouteEvent) Matched() bool {
	return e.Route != nil
}

// RoutingHooks defines callbacks for router observability.
// Nil hooks are skipped.
type RoutingHooks struct {
	// OnRouted fires after every resolution attempt, whether it matched,
	// found no route, or failed.
	OnRouted func(context.Context, *RouteEvent)
}
