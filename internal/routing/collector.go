package routing

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// Input carries the per-request parameters of one resolution attempt.
// The state stack is a read-only snapshot owned by the session layer.
type Input struct {
	Intent   string
	Platform string
	Stack    []domain.StateEntry
}

// Collector produces the candidate set of handlers whose static criteria
// (intent name, sub-state, platform) are satisfied.
type Collector struct {
	registry ports.ComponentRegistry
	store    ports.DescriptorStore
	aliases  domain.AliasMap
	logger   *slog.Logger
}

// NewCollector creates a collector over the host-owned collaborators.
func NewCollector(registry ports.ComponentRegistry, store ports.DescriptorStore, aliases domain.AliasMap, logger *slog.Logger) *Collector {
	return &Collector{
		registry: registry,
		store:    store,
		aliases:  aliases,
		logger:   logger,
	}
}

// Collect runs the state-dependent fallback search and returns the first
// non-empty candidate set.
//
// Without an active state stack the search is global, retried once with the
// reserved UNHANDLED intent. With a stack it is a four-stage fallback:
// local intent, global intent, local UNHANDLED, global UNHANDLED — prefer
// the most specific active context, only then widen scope, only then fall
// back to the catch-all.
func (c *Collector) Collect(in Input) ([]domain.Match, error) {
	if len(in.Stack) == 0 {
		return scanFirst(
			func() ([]domain.Match, error) { return c.global(in.Intent, in.Platform) },
			func() ([]domain.Match, error) { return c.global(domain.IntentUnhandled, in.Platform) },
		)
	}

	anchor := in.Stack[len(in.Stack)-1]
	return scanFirst(
		func() ([]domain.Match, error) { return c.local(anchor, in.Intent, in.Platform) },
		func() ([]domain.Match, error) { return c.global(in.Intent, in.Platform) },
		func() ([]domain.Match, error) { return c.local(anchor, domain.IntentUnhandled, in.Platform) },
		func() ([]domain.Match, error) { return c.global(domain.IntentUnhandled, in.Platform) },
	)
}

// global searches the entire component tree depth-first for handlers whose
// global intent list contains the intent. Traversal continues into children
// regardless of whether the current node matched: a component and its
// descendants may both register global handlers for the same intent.
func (c *Collector) global(intent, platform string) ([]domain.Match, error) {
	var out []domain.Match
	for _, root := range c.registry.Components() {
		if err := c.walk(root, []string{root.Name}, intent, platform, &out); err != nil {
			return nil, err
		}
	}
	c.logger.Debug("global search", "intent", intent, "candidates", len(out))
	return out, nil
}

func (c *Collector) walk(node *domain.Component, path []string, intent, platform string, out *[]domain.Match) error {
	descriptors, err := c.store.Descriptors(path)
	if err != nil {
		return fmt.Errorf("descriptors for %s: %w", domain.JoinPath(path), err)
	}

	for _, d := range descriptors {
		if c.responds(d.GlobalIntents, intent) && d.AllowsPlatform(platform) {
			*out = append(*out, domain.Match{
				Path:       clonePath(path),
				Descriptor: d,
				SubState:   d.SubState,
			})
		}
	}

	for _, child := range node.Components {
		if err := c.walk(child, append(path, child.Name), intent, platform, out); err != nil {
			return err
		}
	}
	return nil
}

// local searches from the anchor component towards the root. At each level,
// sub-state-scoped handlers are tried first (when the anchor requests a
// sub-state), then sub-state-less handlers on the same component; only after
// both passes come up empty does the search move to the parent.
//
// A path that cannot be resolved in the registry is a fatal lookup error,
// not a routing miss.
func (c *Collector) local(anchor domain.StateEntry, intent, platform string) ([]domain.Match, error) {
	segments := anchor.Segments()

	for len(segments) > 0 {
		if _, err := c.registry.Resolve(segments); err != nil {
			return nil, fmt.Errorf("state path %q: %w", domain.JoinPath(segments), err)
		}

		descriptors, err := c.store.Descriptors(segments)
		if err != nil {
			return nil, fmt.Errorf("descriptors for %s: %w", domain.JoinPath(segments), err)
		}

		matches, err := scanFirst(
			func() ([]domain.Match, error) {
				if anchor.SubState == "" {
					return nil, nil
				}
				return c.filterLocal(descriptors, segments, intent, platform, anchor.SubState), nil
			},
			func() ([]domain.Match, error) {
				return c.filterLocal(descriptors, segments, intent, platform, ""), nil
			},
		)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			c.logger.Debug("local search", "intent", intent, "component", domain.JoinPath(segments), "candidates", len(matches))
			return matches, nil
		}

		segments = segments[:len(segments)-1]
	}

	return nil, nil
}

// filterLocal selects the descriptors at one component level that respond to
// the intent on the required sub-state and platform.
func (c *Collector) filterLocal(descriptors []domain.HandlerDescriptor, path []string, intent, platform, subState string) []domain.Match {
	var out []domain.Match
	for _, d := range descriptors {
		if d.SubState != subState {
			continue
		}
		if !c.responds(d.Intents, intent) || !d.AllowsPlatform(platform) {
			continue
		}
		out = append(out, domain.Match{
			Path:       clonePath(path),
			Descriptor: d,
			SubState:   d.SubState,
		})
	}
	return out
}

// responds checks intent membership. The aliased name, when present, is
// checked before the incoming name.
func (c *Collector) responds(names []string, intent string) bool {
	if mapped, ok := c.aliases.Resolve(intent); ok && contains(names, mapped) {
		return true
	}
	return contains(names, intent)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// clonePath detaches a path from the traversal's shared backing array.
func clonePath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}
