package domain

import "context"

// Condition is a guard predicate a handler declares to further restrict its
// applicability. It is supplied by the host application, may read ambient
// request/session data from the context, and must be side-effect free from
// the router's perspective.
//
// Returning (false, nil) means the guard does not apply and resolution moves
// on. A non-nil error aborts the resolution entirely.
type Condition func(ctx context.Context) (bool, error)

// HandlerDescriptor declares a single handler owned by a component.
// Descriptors are registered once at startup and immutable thereafter.
type HandlerDescriptor struct {
	// Key uniquely identifies the handler within its component.
	Key string

	// Intents are the intent names this handler responds to locally, i.e.
	// only while the state stack anchors at (or beneath) its component.
	Intents []string

	// GlobalIntents are the intent names this handler responds to
	// regardless of the current conversational state.
	GlobalIntents []string

	// SubState optionally narrows the handler to a finer-grained state
	// label. A handler without a SubState only matches when the search
	// context requires none, and vice versa.
	SubState string

	// Platforms optionally restricts the handler to the listed platform
	// tags. Empty means any platform.
	Platforms []string

	// If is the optional guard predicate.
	If Condition
}

// Conditional reports whether the handler declares a guard predicate.
func (h HandlerDescriptor) Conditional() bool {
	return h.If != nil
}

// PlatformScoped reports whether the handler declares a platform allow-list.
func (h HandlerDescriptor) PlatformScoped() bool {
	return len(h.Platforms) > 0
}

// AllowsPlatform reports whether the handler may run on the given platform.
// An empty allow-list admits every platform.
func (h HandlerDescriptor) AllowsPlatform(platform string) bool {
	if len(h.Platforms) == 0 {
		return true
	}
	for _, p := range h.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}
