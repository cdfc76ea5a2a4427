package memory

import (
	"context"
	"sync"

	"github.com/aretw0/switchboard/pkg/domain"
)

// AliasStore implements ports.AliasStore in memory.
// Safe for concurrent use.
type AliasStore struct {
	mu      sync.RWMutex
	aliases domain.AliasMap
}

// NewAliasStore creates an alias store seeded with the given map.
func NewAliasStore(seed domain.AliasMap) *AliasStore {
	store := &AliasStore{aliases: make(domain.AliasMap)}
	for k, v := range seed {
		store.aliases[k] = v
	}
	return store
}

// Load returns a copy so the caller can't mutate store state directly.
func (s *AliasStore) Load(ctx context.Context) (domain.AliasMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aliases.Clone(), nil
}

// Set maps an incoming intent name to a canonical one.
func (s *AliasStore) Set(ctx context.Context, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases[from] = to
	return nil
}

// Remove deletes a mapping.
func (s *AliasStore) Remove(ctx context.Context, from string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.aliases, from)
	return nil
}
