package domain

import "strings"

// PathSeparator joins component names into dotted state paths.
const PathSeparator = "."

// StateEntry is one frame of the conversational call stack. The stack is
// owned by the surrounding session layer and treated as a read-only snapshot
// during a single resolution; only the last entry anchors local search.
type StateEntry struct {
	// Path is the dotted path into the component tree, e.g. "order.payment".
	Path string `json:"path" yaml:"path"`

	// SubState optionally narrows which handlers at the component apply.
	SubState string `json:"sub_state,omitempty" yaml:"sub_state,omitempty"`
}

// Segments splits the dotted path into component name segments.
func (e StateEntry) Segments() []string {
	if e.Path == "" {
		return nil
	}
	return strings.Split(e.Path, PathSeparator)
}

// JoinPath renders path segments back into dotted form.
func JoinPath(segments []string) string {
	return strings.Join(segments, PathSeparator)
}
