package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Option configures Decode.
type Option func(*decodeOptions)

type decodeOptions struct {
	strict    bool
	useNumber bool
}

// Strict rejects object fields that do not map to the destination struct.
func Strict() Option {
	return func(o *decodeOptions) {
		o.strict = true
	}
}

// WithFloats decodes numbers in interface values as float64 instead of
// json.Number.
func WithFloats() Option {
	return func(o *decodeOptions) {
		o.useNumber = false
	}
}

// Decode unmarshals exactly one JSON value from data into v. Trailing
// non-whitespace data is an error.
func Decode(data []byte, v any, opts ...Option) error {
	o := &decodeOptions{useNumber: true}
	for _, opt := range opts {
		opt(o)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if o.strict {
		dec.DisallowUnknownFields()
	}
	if o.useNumber {
		dec.UseNumber()
	}

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}
	return nil
}

// DecodeString decodes s into a generic value.
func DecodeString(s string, opts ...Option) (any, error) {
	var v any
	if err := Decode([]byte(s), &v, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeIfJSON returns the decoded value when s holds a JSON object or array,
// otherwise s itself.
func DecodeIfJSON(s string, opts ...Option) any {
	if !looksLikeJSON(s) {
		return s
	}
	v, err := DecodeString(s, opts...)
	if err != nil {
		return s
	}
	return v
}

// IsJSON reports whether s is a single valid JSON value.
func IsJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && json.Valid([]byte(trimmed))
}

// DecodeFile reads the file at path and decodes it into v.
func DecodeFile(path string, v any, opts ...Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := Decode(data, v, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func looksLikeJSON(s string) bool {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
