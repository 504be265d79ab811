package projectconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cmskit/pkg/projectconfig"
)

func TestExtractDependencies(t *testing.T) {
	t.Parallel()

	t.Run("scalar and list values in traversal order", func(t *testing.T) {
		t.Parallel()
		data := map[string]any{
			"a": map[string]any{"dependsOn": "x"},
			"b": map[string]any{"dependsOn": []any{"y", "z"}},
		}
		assert.Equal(t, []string{"x", "y", "z"}, projectconfig.ExtractDependencies(data))
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()
		data := map[string]any{
			"a": map[string]any{"dependsOn": []string{"x", "x"}},
			"b": map[string]any{"dependsOn": "x"},
		}
		assert.Equal(t, []string{"x", "x", "x"}, projectconfig.ExtractDependencies(data))
	})

	t.Run("top level and deep nesting", func(t *testing.T) {
		t.Parallel()
		data := map[string]any{
			"dependsOn": "root",
			"fields": map[string]any{
				"body": map[string]any{
					"settings": map[any]any{"dependsOn": []any{"deep", 42, nil}},
				},
			},
		}
		assert.Equal(t, []string{"root", "deep"}, projectconfig.ExtractDependencies(data))
	})

	t.Run("recurses into map valued dependsOn", func(t *testing.T) {
		t.Parallel()
		data := map[string]any{
			"dependsOn": map[string]any{"dependsOn": "inner"},
		}
		assert.Equal(t, []string{"inner"}, projectconfig.ExtractDependencies(data))
	})

	t.Run("tolerates any shape", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, projectconfig.ExtractDependencies(nil))
		assert.Empty(t, projectconfig.ExtractDependencies(map[string]any{
			"list":  []any{map[string]any{"dependsOn": "ignored-in-list"}},
			"int":   1,
			"empty": map[string]any{},
		}))
	})
}

func TestExtractDependenciesNode_DocumentOrder(t *testing.T) {
	t.Parallel()

	src := `
zeta:
  dependsOn: first
alpha:
  dependsOn: [second, third]
  nested:
    dependsOn: &shared fourth
beta:
  dependsOn: *shared
count:
  dependsOn: 7
`
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))

	assert.Equal(t,
		[]string{"first", "second", "third", "fourth", "fourth"},
		projectconfig.ExtractDependenciesNode(&node),
	)
	assert.Empty(t, projectconfig.ExtractDependenciesNode(nil))
}
