// Package projectconfig flattens project-config YAML documents into lookup
// maps used by the configuration sync layer, and extracts dependency
// declarations from parsed config subtrees.
//
// A project config is split across several YAML files. Each top-level key of a
// file is a configuration section owned by that file, and configuration
// entities are keyed by UIDs (8-4-4-4-12 hexadecimal identifiers) at any depth.
//
// # Config map
//
// BuildConfigMap produces two lookups:
//
//   - Nodes maps every top-level key to the id of the document that declares it.
//     When several documents declare the same key the last one wins. The
//     "imports" directive is never reported as a node.
//   - Map maps every UID-shaped key found anywhere in the tree to
//     "<documentId>/.<key1>.<key2>...<uid>". UIDs nested under "imports" are
//     still collected; only the top-level node is dropped.
//
//	docs := []projectconfig.Document{
//	    {ID: "sections.yaml", Content: map[string]any{
//	        "sections": map[string]any{
//	            "11111111-1111-1111-1111-111111111111": map[string]any{"name": "News"},
//	        },
//	    }},
//	}
//	cm := projectconfig.BuildConfigMap(docs)
//	// cm.Nodes["sections"] == "sections.yaml"
//	// cm.Map["11111111-1111-1111-1111-111111111111"] == "sections.yaml/.sections.11111111-1111-1111-1111-111111111111"
//
// LoadDocuments and BuildConfigMapFromFS read documents from an fs.FS with
// gopkg.in/yaml.v3. A single unparseable file aborts the whole call; no partial
// map is returned.
//
// # Dependencies
//
// ExtractDependencies walks a nested mapping and collects the values of every
// "dependsOn" key, flattening lists. Decoded Go maps carry no key order, so the
// walk visits keys in sorted order; ExtractDependenciesNode walks a *yaml.Node
// tree and preserves document order.
//
// # Schema versions
//
// SchemaCompatible compares a stored project-config schema version with the
// installed one using github.com/Masterminds/semver/v3.
//
// All functions are pure and safe for concurrent use.
package projectconfig
