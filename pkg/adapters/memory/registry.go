package memory

import (
	"fmt"

	"github.com/aretw0/switchboard/pkg/domain"
)

// Registry implements ports.ComponentRegistry and ports.DescriptorStore
// over an in-memory component tree.
//
// It is meant to be populated once at startup and treated as immutable
// afterwards; resolution never mutates it, so concurrent Route calls are
// safe without locking.
type Registry struct {
	roots       []*domain.Component
	descriptors map[string][]domain.HandlerDescriptor
}

// NewRegistry creates a registry over the given root components.
func NewRegistry(roots ...*domain.Component) *Registry {
	return &Registry{
		roots:       roots,
		descriptors: make(map[string][]domain.HandlerDescriptor),
	}
}

// Register declares handlers for the component at the dotted path.
// Successive calls for the same path append, mirroring how a component's
// merged descriptor list is flattened at startup.
func (r *Registry) Register(path string, handlers ...domain.HandlerDescriptor) {
	r.descriptors[path] = append(r.descriptors[path], handlers...)
}

// Components returns the root components in declaration order.
func (r *Registry) Components() []*domain.Component {
	return r.roots
}

// Resolve walks the tree along the path segments.
func (r *Registry) Resolve(path []string) (*domain.Component, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path: %w", domain.ErrComponentNotFound)
	}

	var current *domain.Component
	for _, root := range r.roots {
		if root.Name == path[0] {
			current = root
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("%s: %w", domain.JoinPath(path), domain.ErrComponentNotFound)
	}

	for _, segment := range path[1:] {
		child, ok := current.Child(segment)
		if !ok {
			return nil, fmt.Errorf("%s: %w", domain.JoinPath(path), domain.ErrComponentNotFound)
		}
		current = child
	}
	return current, nil
}

// Descriptors returns the handlers registered for the component at path.
func (r *Registry) Descriptors(path []string) ([]domain.HandlerDescriptor, error) {
	return r.descriptors[domain.JoinPath(path)], nil
}
