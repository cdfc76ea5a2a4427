// Package file loads Switchboard project definitions from YAML files and
// materializes them as in-memory collaborators.
package file

import (
	"fmt"
	"os"

	"github.com/aretw0/switchboard/internal/dto"
	"github.com/aretw0/switchboard/pkg/adapters/memory"
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Project is a fully loaded routing definition.
type Project struct {
	// Registry serves as both ComponentRegistry and DescriptorStore.
	Registry *memory.Registry

	// Aliases is the project's intent alias map.
	Aliases domain.AliasMap
}

// Load reads and parses a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return project, nil
}

// Parse decodes a YAML project definition.
// The YAML is unmarshalled into a generic map first and then decoded via
// mapstructure, so unknown keys are tolerated and nested handler metadata
// stays loosely typed on disk.
func Parse(data []byte) (*Project, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	var def dto.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &def,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid project definition: %w", err)
	}

	if len(def.Components) == 0 {
		return nil, fmt.Errorf("project declares no components")
	}

	roots := make([]*domain.Component, 0, len(def.Components))
	handlers := make(map[string][]domain.HandlerDescriptor)
	for _, c := range def.Components {
		root, err := buildComponent(c, nil, handlers)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}

	registry := memory.NewRegistry(roots...)
	for path, descriptors := range handlers {
		registry.Register(path, descriptors...)
	}

	return &Project{
		Registry: registry,
		Aliases:  domain.AliasMap(def.Aliases),
	}, nil
}

func buildComponent(def dto.ComponentDef, parent []string, handlers map[string][]domain.HandlerDescriptor) (*domain.Component, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("component under %q is missing a name", domain.JoinPath(parent))
	}

	path := append(append([]string{}, parent...), def.Name)
	dotted := domain.JoinPath(path)

	seen := make(map[string]bool, len(def.Handlers))
	for _, h := range def.Handlers {
		if h.Key == "" {
			return nil, fmt.Errorf("handler in component %s is missing a key", dotted)
		}
		if seen[h.Key] {
			return nil, fmt.Errorf("duplicate handler key %q in component %s", h.Key, dotted)
		}
		seen[h.Key] = true

		handlers[dotted] = append(handlers[dotted], domain.HandlerDescriptor{
			Key:           h.Key,
			Intents:       h.Intents,
			GlobalIntents: h.GlobalIntents,
			SubState:      h.SubState,
			Platforms:     h.Platforms,
		})
	}

	component := &domain.Component{
		Name:        def.Name,
		Description: def.Description,
	}
	for _, child := range def.Components {
		built, err := buildComponent(child, path, handlers)
		if err != nil {
			return nil, err
		}
		component.Components = append(component.Components, built)
	}
	return component, nil
}
