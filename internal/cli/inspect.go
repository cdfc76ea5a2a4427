package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/switchboard/internal/presentation/tui"
	"github.com/aretw0/switchboard/pkg/adapters/file"
	"github.com/aretw0/switchboard/pkg/domain"
)

// Inspect prints a project's component tree and handler summaries.
// With docs enabled, component markdown descriptions are rendered too.
func Inspect(projectPath string, docs bool) error {
	project, err := file.Load(projectPath)
	if err != nil {
		return err
	}

	printer := tui.NewPrinter(os.Stdout, IsTTY())
	if err := printer.PrintTree(project.Registry, project.Registry); err != nil {
		return err
	}

	if !docs {
		return nil
	}

	render := tui.NewRenderer()
	for _, root := range project.Registry.Components() {
		if err := printDocs(root, []string{root.Name}, render); err != nil {
			return err
		}
	}
	return nil
}

func printDocs(node *domain.Component, path []string, render func(string) (string, error)) error {
	if node.Description != "" {
		out, err := render(node.Description)
		if err != nil {
			return fmt.Errorf("failed to render docs for %s: %w", domain.JoinPath(path), err)
		}
		fmt.Printf("--- %s ---\n%s\n", domain.JoinPath(path), out)
	}
	for _, child := range node.Components {
		if err := printDocs(child, append(path, child.Name), render); err != nil {
			return err
		}
	}
	return nil
}
