package redis

import (
	"context"
	"fmt"

	"github.com/aretw0/switchboard/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// AliasStore implements ports.AliasStore using a Redis hash.
type AliasStore struct {
	client *backend.Client
	key    string
}

type Option func(*AliasStore)

// WithKey overrides the hash key the aliases live under.
func WithKey(key string) Option {
	return func(s *AliasStore) {
		s.key = key
	}
}

// New creates a new Redis alias store with options.
func New(address, password string, db int, opts ...Option) *AliasStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis alias store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *AliasStore {
	store := &AliasStore{
		client: client,
		key:    "switchboard:aliases",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load returns the full alias map.
func (s *AliasStore) Load(ctx context.Context) (domain.AliasMap, error) {
	entries, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}
	aliases := make(domain.AliasMap, len(entries))
	for from, to := range entries {
		aliases[from] = to
	}
	return aliases, nil
}

// Set maps an incoming intent name to a canonical one.
func (s *AliasStore) Set(ctx context.Context, from, to string) error {
	if err := s.client.HSet(ctx, s.key, from, to).Err(); err != nil {
		return fmt.Errorf("failed to set alias %s: %w", from, err)
	}
	return nil
}

// Remove deletes a mapping. Removing an absent mapping is not an error.
func (s *AliasStore) Remove(ctx context.Context, from string) error {
	if err := s.client.HDel(ctx, s.key, from).Err(); err != nil {
		return fmt.Errorf("failed to remove alias %s: %w", from, err)
	}
	return nil
}
