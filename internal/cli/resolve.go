package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/internal/logging"
	"github.com/aretw0/switchboard/internal/presentation/tui"
	"github.com/aretw0/switchboard/pkg/adapters/file"
)

// ResolveOptions carries the resolve command's flags.
type ResolveOptions struct {
	ProjectPath string
	Intent      string
	Platform    string
	States      []string
	JSON        bool
	Verbose     bool
}

// Resolve loads a project file and resolves a single intent against it.
// This is a dry-run surface for flow authors; the library is the real API.
func Resolve(ctx context.Context, opts ResolveOptions) error {
	project, err := file.Load(opts.ProjectPath)
	if err != nil {
		return err
	}

	stack, err := ParseStateFlags(opts.States)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}

	router := switchboard.New(project.Registry, project.Registry,
		switchboard.WithAliases(project.Aliases),
		switchboard.WithLogger(logging.New(level)),
	)

	route, err := router.Route(ctx, switchboard.Request{
		Intent:   opts.Intent,
		Platform: opts.Platform,
		Stack:    stack,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if route == nil {
			return encoder.Encode(map[string]any{"route": nil})
		}
		return encoder.Encode(route)
	}

	printer := tui.NewPrinter(os.Stdout, IsTTY())
	if route == nil {
		printer.PrintNoRoute()
		return nil
	}
	printer.PrintRoute(route)
	return nil
}
