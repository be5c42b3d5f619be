//go:build unit || e2e

// Package testutil builds request bodies that deviate from a valid DTO in one field.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can drop or override single fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, mutate := range muts {
		mutate(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies muts to the object stored under key, creating it if absent.
func Nested(key string, muts ...func(map[string]any)) func(map[string]any) {
	return func(m map[string]any) {
		inner, _ := m[key].(map[string]any)
		if inner == nil {
			inner = map[string]any{}
		}
		for _, mutate := range muts {
			mutate(inner)
		}
		m[key] = inner
	}
}
