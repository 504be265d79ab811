package projectconfig

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// DependsOnKey is the key whose values ExtractDependencies collects.
const DependsOnKey = "dependsOn"

// ExtractDependencies returns every value declared under a "dependsOn" key at
// any depth of data, in depth-first sorted-key order. List values are
// flattened; non-string items are skipped. Duplicates are kept.
func ExtractDependencies(data map[string]any) []string {
	var deps []string
	extractDependencies(data, &deps)
	return deps
}

func extractDependencies(value any, deps *[]string) {
	node, ok := asMap(value)
	if !ok {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(node)) {
		child := node[key]
		if key == DependsOnKey {
			appendDependency(child, deps)
		}
		extractDependencies(child, deps)
	}
}

func appendDependency(value any, deps *[]string) {
	switch v := value.(type) {
	case string:
		*deps = append(*deps, v)
	case []string:
		*deps = append(*deps, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				*deps = append(*deps, s)
			}
		}
	}
}

// ExtractDependenciesNode is ExtractDependencies over a YAML node tree,
// visiting keys in document order.
func ExtractDependenciesNode(node *yaml.Node) []string {
	var deps []string
	extractNode(node, &deps)
	return deps
}

func extractNode(node *yaml.Node, deps *[]string) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			extractNode(child, deps)
		}
	case yaml.AliasNode:
		extractNode(node.Alias, deps)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == DependsOnKey {
				appendNodeDependency(value, deps)
			}
			extractNode(value, deps)
		}
	}
}

func appendNodeDependency(value *yaml.Node, deps *[]string) {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!str" {
			*deps = append(*deps, value.Value)
		}
	case yaml.SequenceNode:
		for _, item := range value.Content {
			if item.Kind == yaml.ScalarNode && item.ShortTag() == "!!str" {
				*deps = append(*deps, item.Value)
			}
		}
	}
}
