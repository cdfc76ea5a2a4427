package switchboard

// Version is the library version. Overridden at build time via
// -ldflags "-X github.com/aretw0/switchboard.Version=...".
var Version = "dev"
