package routing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/switchboard/pkg/domain"
)

// Resolver selects a single winner from a candidate set using guard
// predicates and a fixed priority lattice.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve picks the best candidate, or nil when no tier yields one.
// Callers treat nil as "no handler applies", not an error.
//
// Tier order, first hit wins:
//  1. conditional candidates with a platform allow-list
//  2. conditional candidates without one
//  3. unconditional candidates with a platform allow-list
//  4. unconditional candidates without one
//
// Guards are evaluated lazily, strictly sequentially, in candidate-list
// order within each tier. A guard error aborts the resolution.
func (r *Resolver) Resolve(ctx context.Context, candidates []domain.Match) (*domain.Match, error) {
	var conditionalScoped, conditionalFree, plainScoped, plainFree []domain.Match
	for _, m := range candidates {
		switch {
		case m.Descriptor.Conditional() && m.Descriptor.PlatformScoped():
			conditionalScoped = append(conditionalScoped, m)
		case m.Descriptor.Conditional():
			conditionalFree = append(conditionalFree, m)
		case m.Descriptor.PlatformScoped():
			plainScoped = append(plainScoped, m)
		default:
			plainFree = append(plainFree, m)
		}
	}

	winner, err := scanFirst(
		func() ([]domain.Match, error) { return r.firstTruthy(ctx, conditionalScoped) },
		func() ([]domain.Match, error) { return r.firstTruthy(ctx, conditionalFree) },
		func() ([]domain.Match, error) { return head(plainScoped), nil },
		func() ([]domain.Match, error) { return head(plainFree), nil },
	)
	if err != nil {
		return nil, err
	}
	if len(winner) == 0 {
		r.logger.Debug("no candidate survived resolution", "candidates", len(candidates))
		return nil, nil
	}
	return &winner[0], nil
}

// firstTruthy evaluates guards in list order until one resolves truthy.
// A falsy guard is skipped; a guard error is fatal.
func (r *Resolver) firstTruthy(ctx context.Context, candidates []domain.Match) ([]domain.Match, error) {
	for i := range candidates {
		ok, err := candidates[i].Descriptor.If(ctx)
		if err != nil {
			return nil, fmt.Errorf("guard for handler %q at %s: %w",
				candidates[i].Descriptor.Key, domain.JoinPath(candidates[i].Path), err)
		}
		if ok {
			return candidates[i : i+1], nil
		}
	}
	return nil, nil
}

// head keeps only the first candidate: list order is the tie-break for
// unconditional tiers.
func head(candidates []domain.Match) []domain.Match {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[:1]
}
