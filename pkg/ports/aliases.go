package ports

import (
	"context"

	"github.com/aretw0/switchboard/pkg/domain"
)

// AliasStore manages the externally owned intent alias map.
// The router itself consumes a flat domain.AliasMap snapshot; this port
// exists for adapters (and tooling) that keep the map somewhere durable.
type AliasStore interface {
	// Load returns the full alias map.
	Load(ctx context.Context) (domain.AliasMap, error)

	// Set maps an incoming intent name to a canonical one.
	Set(ctx context.Context, from, to string) error

	// Remove deletes a mapping. Removing an absent mapping is not an error.
	Remove(ctx context.Context, from string) error
}
