package domain

// IntentUnhandled is the reserved fallback intent name. When a search stage
// finds nothing for the real intent, the same search is retried with this
// name so that a registered catch-all handler is never silently skipped.
const IntentUnhandled = "UNHANDLED"
