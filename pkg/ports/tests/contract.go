package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// RegistryContractTest is a reusable suite that verifies an adapter complies
// with ports.ComponentRegistry. The registry must contain a root component
// named "root" with a child "nested".
func RegistryContractTest(t *testing.T, registry ports.ComponentRegistry) {
	t.Helper()

	t.Run("Components_Ordered", func(t *testing.T) {
		roots := registry.Components()
		if len(roots) == 0 {
			t.Fatal("expected at least one root component")
		}
		if roots[0].Name != "root" {
			t.Errorf("expected first root %q, got %q", "root", roots[0].Name)
		}
	})

	t.Run("Resolve_Success", func(t *testing.T) {
		comp, err := registry.Resolve([]string{"root", "nested"})
		if err != nil {
			t.Fatalf("unexpected error resolving root.nested: %v", err)
		}
		if comp.Name != "nested" {
			t.Errorf("resolved wrong component: got %q", comp.Name)
		}
	})

	t.Run("Resolve_NotFound", func(t *testing.T) {
		_, err := registry.Resolve([]string{"root", "missing"})
		if err == nil {
			t.Fatal("expected error for unknown path, got nil")
		}
		if !errors.Is(err, domain.ErrComponentNotFound) {
			t.Errorf("expected ErrComponentNotFound, got %v", err)
		}
	})
}

// AliasStoreContractTest is a reusable suite that verifies an adapter
// complies with ports.AliasStore. The store must start empty.
func AliasStoreContractTest(t *testing.T, store ports.AliasStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Empty", func(t *testing.T) {
		aliases, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading aliases: %v", err)
		}
		if len(aliases) != 0 {
			t.Errorf("expected empty alias map, got %d entries", len(aliases))
		}
	})

	t.Run("Set_Load", func(t *testing.T) {
		if err := store.Set(ctx, "HelpMeIntent", "HelpIntent"); err != nil {
			t.Fatalf("unexpected error setting alias: %v", err)
		}
		aliases, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading aliases: %v", err)
		}
		if aliases["HelpMeIntent"] != "HelpIntent" {
			t.Errorf("alias not persisted: got %q", aliases["HelpMeIntent"])
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := store.Remove(ctx, "HelpMeIntent"); err != nil {
			t.Fatalf("unexpected error removing alias: %v", err)
		}
		// Removing an absent mapping must be a no-op.
		if err := store.Remove(ctx, "HelpMeIntent"); err != nil {
			t.Fatalf("remove of absent alias should not error: %v", err)
		}
		aliases, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading aliases: %v", err)
		}
		if _, ok := aliases["HelpMeIntent"]; ok {
			t.Error("alias still present after remove")
		}
	})
}
