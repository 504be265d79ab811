package jsonutil_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/pkg/jsonutil"
)

type siteSettings struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes struct", func(t *testing.T) {
		t.Parallel()
		var s siteSettings
		require.NoError(t, jsonutil.Decode([]byte(`{"name":"Blog","language":"en"}`), &s))
		assert.Equal(t, siteSettings{Name: "Blog", Language: "en"}, s)
	})

	t.Run("unknown fields allowed by default", func(t *testing.T) {
		t.Parallel()
		var s siteSettings
		require.NoError(t, jsonutil.Decode([]byte(`{"name":"Blog","extra":1}`), &s))
		assert.Equal(t, "Blog", s.Name)
	})

	t.Run("strict rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		var s siteSettings
		err := jsonutil.Decode([]byte(`{"name":"Blog","extra":1}`), &s, jsonutil.Strict())
		assert.ErrorIs(t, err, jsonutil.ErrInvalidJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		var v any
		err := jsonutil.Decode([]byte(`{"a":1} {"b":2}`), &v)
		assert.ErrorIs(t, err, jsonutil.ErrInvalidJSON)
	})

	t.Run("allows trailing whitespace", func(t *testing.T) {
		t.Parallel()
		var v any
		assert.NoError(t, jsonutil.Decode([]byte("[1]\n\t "), &v))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		var v any
		assert.ErrorIs(t, jsonutil.Decode([]byte("   "), &v), jsonutil.ErrEmptyInput)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		var v any
		assert.ErrorIs(t, jsonutil.Decode([]byte(`{"a":`), &v), jsonutil.ErrInvalidJSON)
	})
}

func TestDecodeString_Numbers(t *testing.T) {
	t.Parallel()

	v, err := jsonutil.DecodeString(`{"id": 9007199254740993}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": json.Number("9007199254740993")}, v)

	v, err = jsonutil.DecodeString(`{"id": 2}`, jsonutil.WithFloats())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(2)}, v)
}

func TestDecodeIfJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"a": json.Number("1")}, jsonutil.DecodeIfJSON(` {"a":1}`))
	assert.Equal(t, []any{"x", "y"}, jsonutil.DecodeIfJSON(`["x","y"]`))
	assert.Equal(t, "plain text", jsonutil.DecodeIfJSON("plain text"))
	assert.Equal(t, "42", jsonutil.DecodeIfJSON("42"))
	assert.Equal(t, `"quoted"`, jsonutil.DecodeIfJSON(`"quoted"`))
	assert.Equal(t, "{broken", jsonutil.DecodeIfJSON("{broken"))
	assert.Equal(t, "", jsonutil.DecodeIfJSON(""))
}

func TestIsJSON(t *testing.T) {
	t.Parallel()

	assert.True(t, jsonutil.IsJSON(`{"a":1}`))
	assert.True(t, jsonutil.IsJSON(" 42 "))
	assert.True(t, jsonutil.IsJSON("null"))
	assert.False(t, jsonutil.IsJSON(""))
	assert.False(t, jsonutil.IsJSON("{a:1}"))
	assert.False(t, jsonutil.IsJSON("1 2"))
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Docs"}`), 0o644))

	var s siteSettings
	require.NoError(t, jsonutil.DecodeFile(path, &s))
	assert.Equal(t, "Docs", s.Name)

	err := jsonutil.DecodeFile(filepath.Join(dir, "missing.json"), &s)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))
	err = jsonutil.DecodeFile(bad, &s)
	assert.ErrorIs(t, err, jsonutil.ErrInvalidJSON)
	assert.Contains(t, err.Error(), "bad.json")
}
