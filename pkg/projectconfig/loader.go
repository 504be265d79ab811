package projectconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOption configures LoadDocuments.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report loaded documents.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// ParseDocument decodes a YAML project-config file. An empty file yields an
// empty document.
func ParseDocument(id string, data []byte) (Document, error) {
	var content map[string]any
	if err := yaml.Unmarshal(data, &content); err != nil {
		return Document{}, fmt.Errorf("%w %q: %w", ErrParseDocument, id, err)
	}
	if content == nil {
		content = make(map[string]any)
	}
	return Document{ID: id, Content: content}, nil
}

// LoadDocuments parses every .yaml and .yml file under root in lexical order.
// Document ids are slash-separated paths relative to root. The first file that
// cannot be read or parsed aborts the call.
func LoadDocuments(ctx context.Context, fsys fs.FS, root string, opts ...LoadOption) ([]Document, error) {
	o := &loadOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}
	if root == "" {
		root = "."
	}

	var docs []Document
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.Join(ErrReadDocument, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isYAML(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrReadDocument, p, err)
		}

		doc, err := ParseDocument(documentID(root, p), data)
		if err != nil {
			return err
		}

		o.logger.DebugContext(ctx, "project config document loaded",
			slog.String("document", doc.ID),
			slog.Int("sections", len(doc.Content)),
		)
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// BuildConfigMapFromFS loads all documents under root and flattens them.
func BuildConfigMapFromFS(ctx context.Context, fsys fs.FS, root string, opts ...LoadOption) (ConfigMap, error) {
	docs, err := LoadDocuments(ctx, fsys, root, opts...)
	if err != nil {
		return ConfigMap{}, err
	}
	return BuildConfigMap(docs), nil
}

func isYAML(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func documentID(root, p string) string {
	if root == "." {
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
}
