package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/switchboard/pkg/domain"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal. Colors and markdown styling
// are disabled for piped output.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ParseStateFlags converts repeated --state values ("a.b" or
// "a.b:SubState") into a state stack, last value on top.
func ParseStateFlags(values []string) ([]domain.StateEntry, error) {
	var stack []domain.StateEntry
	for _, v := range values {
		path, subState, _ := strings.Cut(v, ":")
		if path == "" {
			return nil, fmt.Errorf("invalid --state value %q (want path[:sub-state])", v)
		}
		stack = append(stack, domain.StateEntry{Path: path, SubState: subState})
	}
	return stack, nil
}
