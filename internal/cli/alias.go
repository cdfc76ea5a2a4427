package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/switchboard/pkg/ports"
)

// AliasList prints the store's mappings sorted by incoming name.
func AliasList(ctx context.Context, store ports.AliasStore) error {
	aliases, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(aliases) == 0 {
		fmt.Println("no aliases")
		return nil
	}

	froms := make([]string, 0, len(aliases))
	for from := range aliases {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	for _, from := range froms {
		fmt.Printf("%s -> %s\n", from, aliases[from])
	}
	return nil
}

// AliasSet maps an incoming intent name to a canonical one.
func AliasSet(ctx context.Context, store ports.AliasStore, from, to string) error {
	if err := store.Set(ctx, from, to); err != nil {
		return err
	}
	fmt.Printf("%s -> %s\n", from, to)
	return nil
}

// AliasRemove deletes a mapping.
func AliasRemove(ctx context.Context, store ports.AliasStore, from string) error {
	return store.Remove(ctx, from)
}
