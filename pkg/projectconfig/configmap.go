package projectconfig

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ImportsKey is the top-level directive that is never reported as a node.
const ImportsKey = "imports"

// Document is one parsed project-config file.
type Document struct {
	ID      string
	Content map[string]any
}

// ConfigMap locates sections and UID-keyed entities across documents.
type ConfigMap struct {
	// Nodes maps a top-level key to the document that owns it.
	Nodes map[string]string `json:"nodes"`
	// Map maps a UID to "<documentId>/.<dot.path>".
	Map map[string]string `json:"map"`
}

// BuildConfigMap flattens docs into a ConfigMap. Later documents win when a
// top-level key or a UID appears more than once.
func BuildConfigMap(docs []Document) ConfigMap {
	cm := ConfigMap{
		Nodes: make(map[string]string),
		Map:   make(map[string]string),
	}

	for _, doc := range docs {
		for key := range doc.Content {
			cm.Nodes[key] = doc.ID
		}
		collectUIDs(doc.ID, "", doc.Content, cm.Map)
	}

	delete(cm.Nodes, ImportsKey)

	return cm
}

// Lookup splits the Map entry for uid into its document id and dot path
// (without the leading dot).
func (cm ConfigMap) Lookup(uid string) (docID, path string, ok bool) {
	location, ok := cm.Map[uid]
	if !ok {
		return "", "", false
	}
	i := strings.LastIndex(location, "/.")
	if i < 0 {
		return "", "", false
	}
	return location[:i], location[i+2:], true
}

// collectUIDs walks value depth-first in sorted key order recording
// UID-shaped keys into out.
func collectUIDs(docID, path string, value any, out map[string]string) {
	node, ok := asMap(value)
	if !ok {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(node)) {
		childPath := path + "." + key
		if IsUID(key) {
			out[key] = docID + "/" + childPath
		}
		collectUIDs(docID, childPath, node[key], out)
	}
}

// asMap normalizes the map shapes produced by YAML decoders. Non-string keys
// are stringified.
func asMap(value any) (map[string]any, bool) {
	switch node := value.(type) {
	case map[string]any:
		return node, true
	case map[any]any:
		m := make(map[string]any, len(node))
		for key, child := range node {
			m[keyString(key)] = child
		}
		return m, true
	}
	return nil, false
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
