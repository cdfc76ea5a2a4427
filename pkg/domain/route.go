package domain

// Match is a routing candidate: a handler whose static criteria (intent,
// sub-state, platform) were satisfied during collection. Matches are created
// per resolution attempt and discarded once routing completes.
type Match struct {
	// Path locates the owning component in the tree.
	Path []string

	// Descriptor is the matched handler declaration.
	Descriptor HandlerDescriptor

	// SubState is the resolved sub-state, taken from the descriptor
	// (not from the search context).
	SubState string
}

// Route is the minimal addressable locator for the chosen handler.
// It is constructed fresh per successful resolution.
type Route struct {
	// Path is the ordered list of component-name segments.
	Path []string `json:"path"`

	// HandlerKey names the handler within the component.
	HandlerKey string `json:"handler_key"`

	// SubState is the handler's sub-state, if any.
	SubState string `json:"sub_state,omitempty"`
}

// ComponentPath renders the route's path in dotted form.
func (r Route) ComponentPath() string {
	return JoinPath(r.Path)
}
