package ports

import "github.com/aretw0/switchboard/pkg/domain"

// ComponentRegistry exposes the application's component tree.
// The tree is built at startup and must not change during a resolution.
type ComponentRegistry interface {
	// Components returns the root components in declaration order.
	Components() []*domain.Component

	// Resolve returns the component at the given path segments.
	// It returns an error wrapping domain.ErrComponentNotFound when the
	// path does not exist.
	Resolve(path []string) (*domain.Component, error)
}

// DescriptorStore exposes the merged handler descriptors declared by a
// component, looked up by the component's path.
type DescriptorStore interface {
	// Descriptors returns the handlers for the component at path, in
	// declaration order. An unknown path yields an empty list, not an
	// error; path existence is the registry's concern.
	Descriptors(path []string) ([]domain.HandlerDescriptor, error)
}
