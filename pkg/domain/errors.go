package domain

import "errors"

// ErrComponentNotFound is returned when a state-stack path references a
// component that does not exist in the registry. This is a fatal lookup
// error, never a routing miss.
var ErrComponentNotFound = errors.New("component not found")
