package switchboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/switchboard/internal/logging"
	"github.com/aretw0/switchboard/internal/routing"
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// Request carries one resolution attempt's inputs.
type Request struct {
	// Intent is the classified intent name. Empty short-circuits to
	// "no route" without touching any collaborator.
	Intent string

	// Platform is the active platform tag, e.g. "alexa". Handlers with a
	// platform allow-list only match when their list contains it.
	Platform string

	// Stack is the conversational call stack; the last entry anchors
	// local search. Empty means stateless resolution.
	Stack []domain.StateEntry
}

// Router is the high-level entry point for the Switchboard library.
// It is safe for concurrent use as long as the collaborators it reads
// are not mutated mid-resolution.
type Router struct {
	aliases   domain.AliasMap
	logger    *slog.Logger
	hooks     domain.RoutingHooks
	collector *routing.Collector
	resolver  *routing.Resolver
}

// Option defines a functional option for configuring the Router.
type Option func(*Router)

// WithAliases sets the intent alias map consulted before membership tests.
func WithAliases(aliases domain.AliasMap) Option {
	return func(r *Router) {
		r.aliases = aliases
	}
}

// WithLogger sets a custom structured logger for the router.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.RoutingHooks) Option {
	return func(r *Router) {
		r.hooks = hooks
	}
}

// New initializes a Router over the host-owned registry and descriptor
// store. Both are treated as read-only.
func New(registry ports.ComponentRegistry, store ports.DescriptorStore, opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	r.collector = routing.NewCollector(registry, store, r.aliases, r.logger)
	r.resolver = routing.NewResolver(r.logger)
	return r
}

// Route determines the single handler for the request.
//
// It returns (nil, nil) when no handler applies — callers must distinguish
// that from an error. Errors are fatal resolution failures: an unresolvable
// state-stack path or a failing guard predicate. There are no retries here;
// retry policy, if any, belongs to the caller.
func (r *Router) Route(ctx context.Context, req Request) (*domain.Route, error) {
	started := time.Now()

	if req.Intent == "" {
		r.logger.Debug("empty intent, skipping resolution")
		r.emit(ctx, req, nil, nil, started)
		return nil, nil
	}

	matches, err := r.collector.Collect(routing.Input{
		Intent:   req.Intent,
		Platform: req.Platform,
		Stack:    req.Stack,
	})
	if err != nil {
		r.emit(ctx, req, nil, err, started)
		return nil, err
	}

	winner, err := r.resolver.Resolve(ctx, matches)
	if err != nil {
		r.emit(ctx, req, nil, err, started)
		return nil, err
	}
	if winner == nil {
		r.logger.Debug("no route", "intent", req.Intent)
		r.emit(ctx, req, nil, nil, started)
		return nil, nil
	}

	route := &domain.Route{
		Path:       winner.Path,
		HandlerKey: winner.Descriptor.Key,
		SubState:   winner.SubState,
	}
	r.logger.Debug("routed",
		"intent", req.Intent,
		"component", route.ComponentPath(),
		"handler", route.HandlerKey,
	)
	r.emit(ctx, req, route, nil, started)
	return route, nil
}

func (r *Router) emit(ctx context.Context, req Request, route *domain.Route, err error, started time.Time) {
	if r.hooks.OnRouted == nil {
		return
	}
	r.hooks.OnRouted(ctx, &domain.RouteEvent{
		Timestamp: started,
		Intent:    req.Intent,
		Platform:  req.Platform,
		Route:     route,
		Err:       err,
		Duration:  time.Since(started),
	})
}
