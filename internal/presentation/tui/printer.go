package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/muesli/termenv"
)

// Printer renders routes and component trees for the terminal.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPrinter creates a printer. When color is false, output degrades to
// plain ASCII (piped output, dumb terminals).
func NewPrinter(out io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	return &Printer{out: out, profile: profile}
}

// PrintRoute writes a human-readable summary of a resolved route.
func (p *Printer) PrintRoute(route *domain.Route) {
	component := p.profile.String(route.ComponentPath()).Foreground(p.profile.Color("#818cf8"))
	handler := p.profile.String(route.HandlerKey).Foreground(p.profile.Color("#34d399")).Bold()

	fmt.Fprintf(p.out, "%s -> %s", component, handler)
	if route.SubState != "" {
		fmt.Fprintf(p.out, " (sub-state %s)", p.profile.String(route.SubState).Foreground(p.profile.Color("#fbbf24")))
	}
	fmt.Fprintln(p.out)
}

// PrintNoRoute writes the "no handler applies" outcome.
func (p *Printer) PrintNoRoute() {
	fmt.Fprintln(p.out, p.profile.String("no route").Foreground(p.profile.Color("#f87171")))
}

// PrintTree writes the component tree with per-component handler summaries.
func (p *Printer) PrintTree(registry ports.ComponentRegistry, store ports.DescriptorStore) error {
	for _, root := range registry.Components() {
		if err := p.printComponent(root, []string{root.Name}, 0, store); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printComponent(node *domain.Component, path []string, depth int, store ports.DescriptorStore) error {
	indent := strings.Repeat("  ", depth)
	name := p.profile.String(node.Name).Foreground(p.profile.Color("#818cf8")).Bold()
	fmt.Fprintf(p.out, "%s%s\n", indent, name)

	descriptors, err := store.Descriptors(path)
	if err != nil {
		return err
	}
	for _, d := range descriptors {
		fmt.Fprintf(p.out, "%s  %s %s\n", indent,
			p.profile.String(d.Key).Foreground(p.profile.Color("#34d399")),
			describeHandler(d))
	}

	for _, child := range node.Components {
		if err := p.printComponent(child, append(path, child.Name), depth+1, store); err != nil {
			return err
		}
	}
	return nil
}

func describeHandler(d domain.HandlerDescriptor) string {
	var parts []string
	if len(d.Intents) > 0 {
		parts = append(parts, "intents="+strings.Join(d.Intents, ","))
	}
	if len(d.GlobalIntents) > 0 {
		parts = append(parts, "global="+strings.Join(d.GlobalIntents, ","))
	}
	if d.SubState != "" {
		parts = append(parts, "sub-state="+d.SubState)
	}
	if len(d.Platforms) > 0 {
		parts = append(parts, "platforms="+strings.Join(d.Platforms, ","))
	}
	if len(parts) == 0 {
		return "[unreachable: no intents]"
	}
	return "[" + strings.Join(parts, " ") + "]"
}
