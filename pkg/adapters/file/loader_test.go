package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/pkg/adapters/file"
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectYAML = `
components:
  - name: root
    description: |
      # Pizza Bot
      Entry point of the ordering flow.
    handlers:
      - key: Welcome
        global_intents: [LAUNCH]
      - key: Fallback
        global_intents: [UNHANDLED]
  - name: order
    handlers:
      - key: Cancel
        intents: [CancelIntent]
    components:
      - name: toppings
        handlers:
          - key: Add
            intents: [AddToppingIntent]
            sub_state: Choosing
            platforms: [alexa, google]
aliases:
  StopIntent: CancelIntent
`

func TestParse(t *testing.T) {
	project, err := file.Parse([]byte(projectYAML))
	require.NoError(t, err)

	t.Run("Tree", func(t *testing.T) {
		roots := project.Registry.Components()
		require.Len(t, roots, 2)
		assert.Equal(t, "root", roots[0].Name)
		assert.Contains(t, roots[0].Description, "Pizza Bot")

		comp, err := project.Registry.Resolve([]string{"order", "toppings"})
		require.NoError(t, err)
		assert.Equal(t, "toppings", comp.Name)
	})

	t.Run("Descriptors", func(t *testing.T) {
		descriptors, err := project.Registry.Descriptors([]string{"order", "toppings"})
		require.NoError(t, err)
		require.Len(t, descriptors, 1)
		assert.Equal(t, "Add", descriptors[0].Key)
		assert.Equal(t, "Choosing", descriptors[0].SubState)
		assert.Equal(t, []string{"alexa", "google"}, descriptors[0].Platforms)
		assert.False(t, descriptors[0].Conditional())
	})

	t.Run("Aliases", func(t *testing.T) {
		assert.Equal(t, domain.AliasMap{"StopIntent": "CancelIntent"}, project.Aliases)
	})

	t.Run("Routes", func(t *testing.T) {
		router := switchboard.New(project.Registry, project.Registry,
			switchboard.WithAliases(project.Aliases),
		)

		route, err := router.Route(context.Background(), switchboard.Request{
			Intent: "StopIntent",
			Stack:  []domain.StateEntry{{Path: "order.toppings"}},
		})
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, "Cancel", route.HandlerKey)
		assert.Equal(t, "order", route.ComponentPath())
	})
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "NotYAML",
			yaml: "{{nope",
			want: "invalid YAML",
		},
		{
			name: "NoComponents",
			yaml: "aliases: {}",
			want: "no components",
		},
		{
			name: "MissingComponentName",
			yaml: "components:\n  - description: anonymous\n",
			want: "missing a name",
		},
		{
			name: "MissingHandlerKey",
			yaml: "components:\n  - name: root\n    handlers:\n      - intents: [X]\n",
			want: "missing a key",
		},
		{
			name: "DuplicateHandlerKey",
			yaml: "components:\n  - name: root\n    handlers:\n      - key: A\n      - key: A\n",
			want: "duplicate handler key",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := file.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0o644))

	project, err := file.Load(path)
	require.NoError(t, err)
	assert.Len(t, project.Registry.Components(), 2)

	_, err = file.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
