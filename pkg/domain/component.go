package domain

// Component represents a named node in the application's component tree.
// A parent exclusively owns its children; the tree is built once at startup
// and treated as immutable for the lifetime of the process.
//
// Children are kept in declaration order so that tree traversal (and
// therefore routing) is deterministic. Handler descriptors are not embedded
// here; they are looked up by component path through a DescriptorStore.
type Component struct {
	// Name is the path segment identifying this component under its parent.
	Name string `json:"name" yaml:"name"`

	// Description holds optional markdown documentation for tooling.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Components are the owned child components, in declaration order.
	Components []*Component `json:"components,omitempty" yaml:"components,omitempty"`
}

// Child returns the direct child with the given name.
func (c *Component) Child(name string) (*Component, bool) {
	for _, child := range c.Components {
		if child.Name == name {
			return child, true
		}
	}
	return nil, false
}
