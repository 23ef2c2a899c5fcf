// File: appconf/normalize_test.go
package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeCharset tests alias canonicalization for the charset rule.
func TestNormalizeCharset(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected any
	}{
		{"UppercaseAlias", "UTF-8", "utf-8"},
		{"AlreadyCanonical", "utf-8", "utf-8"},
		{"StrictAlias", "utf-8-strict", "utf-8"},
		{"StrictAliasUppercase", "UTF-8-STRICT", "utf-8"},
		{"Latin1Alias", "latin1", "windows-1252"},
		{"Nil", nil, nil},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := normalizeSetting("charset", tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}

// TestNormalizeCharsetErrors tests structurally invalid charset values.
func TestNormalizeCharsetErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"UnknownName", "no-such-encoding"},
		{"NonString", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeSetting("charset", tt.value)

			var verr *ValueError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "charset", verr.Key)
		})
	}
}

// TestNormalizeEngines verifies the engines rule accepts category mappings,
// stringifies non-string keys, and rejects malformed shapes.
func TestNormalizeEngines(t *testing.T) {
	t.Run("CategoryBlocks", func(t *testing.T) {
		value := map[string]any{
			"logger": map[string]any{"console": map[string]any{"level": "debug"}},
		}
		normalized, err := normalizeSetting("engines", value)
		require.NoError(t, err)
		assert.Equal(t, value, normalized)
	})

	t.Run("NonStringKeysStringified", func(t *testing.T) {
		value := map[any]any{"logger": map[any]any{"console": map[any]any{"level": "debug"}}}
		normalized, err := normalizeSetting("engines", value)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"logger": map[string]any{"console": map[string]any{"level": "debug"}},
		}, normalized)
	})

	t.Run("NilCategoryAllowed", func(t *testing.T) {
		value := map[string]any{"template": nil}
		normalized, err := normalizeSetting("engines", value)
		require.NoError(t, err)
		assert.Equal(t, value, normalized)
	})

	t.Run("Nil", func(t *testing.T) {
		normalized, err := normalizeSetting("engines", nil)
		require.NoError(t, err)
		assert.Nil(t, normalized)
	})
}

// TestNormalizeEnginesErrors rejects engines blocks that are not mappings of
// category mappings instead of letting them fall through to bare defaults.
func TestNormalizeEnginesErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"Scalar", "console"},
		{"List", []any{"logger", "session"}},
		{"ScalarCategory", map[string]any{"logger": "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeSetting("engines", tt.value)

			var verr *ValueError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "engines", verr.Key)
		})
	}
}

// TestNormalizeIdempotence verifies normalize(normalize(v)) == normalize(v)
// for every registered rule.
func TestNormalizeIdempotence(t *testing.T) {
	samples := map[string][]any{
		"charset": {"UTF-8", "utf-8-strict", "ISO-8859-1", "koi8-r"},
		"engines": {
			nil,
			map[string]any{"logger": map[string]any{"console": map[string]any{"level": "info"}}},
			map[any]any{"session": map[any]any{"simple": map[any]any{}}},
		},
	}

	for key := range normalizers {
		values, ok := samples[key]
		require.True(t, ok, "no idempotence samples for rule %q", key)

		for _, value := range values {
			once, err := normalizeSetting(key, value)
			require.NoError(t, err)

			twice, err := normalizeSetting(key, once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "rule %q not idempotent for %v", key, value)
		}
	}
}

// TestNormalizeUnruledKey ensures keys without a rule pass through unchanged.
func TestNormalizeUnruledKey(t *testing.T) {
	value := map[string]any{"anything": []any{1, 2}}
	normalized, err := normalizeSetting("custom_key", value)
	require.NoError(t, err)
	assert.Equal(t, value, normalized)
}
