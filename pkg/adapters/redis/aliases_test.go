package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/switchboard/pkg/adapters/redis"
	"github.com/aretw0/switchboard/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestAliasStore_Contract(t *testing.T) {
	client := newTestClient(t)
	tests.AliasStoreContractTest(t, redis.NewFromClient(client))
}

func TestAliasStore_KeyIsolation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	english := redis.NewFromClient(client, redis.WithKey("switchboard:aliases:en"))
	german := redis.NewFromClient(client, redis.WithKey("switchboard:aliases:de"))

	require.NoError(t, english.Set(ctx, "HelpMeIntent", "HelpIntent"))

	aliases, err := german.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, aliases)

	aliases, err = english.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HelpIntent", aliases["HelpMeIntent"])
}
