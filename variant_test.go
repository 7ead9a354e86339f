package uikitscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIconVariantConfig(t *testing.T) {
	library := map[string]any{
		"library": "@material-symbols",
		"weight":  "500",
		"style":   "outlined",
		"fill":    false,
	}

	tests := []struct {
		name     string
		global   map[string]any
		expected IconVariantConfig
	}{
		{
			name:     "library defaults",
			global:   nil,
			expected: IconVariantConfig{Library: "@material-symbols", Weight: "500", Style: "outlined"},
		},
		{
			name:     "project overrides",
			global:   map[string]any{"style": "rounded", "fill": true},
			expected: IconVariantConfig{Library: "@material-symbols", Weight: "500", Style: "rounded", Fill: true},
		},
		{
			name:     "numeric weight is decoded as text",
			global:   map[string]any{"weight": 300},
			expected: IconVariantConfig{Library: "@material-symbols", Weight: "300", Style: "outlined"},
		},
		{
			name:     "unknown project keys are ignored",
			global:   map[string]any{"size": "lg"},
			expected: IconVariantConfig{Library: "@material-symbols", Weight: "500", Style: "outlined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveIconVariantConfig(tt.global, library)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveIconVariantConfig_NoLibraryDefault(t *testing.T) {
	got, ok := ResolveIconVariantConfig(map[string]any{"library": "heroicons"}, nil)
	assert.False(t, ok)
	assert.Equal(t, IconVariantConfig{}, got)
}

func TestMergeConfig(t *testing.T) {
	base := map[string]any{
		"library": "bootstrap-icons",
		"nested":  map[string]any{"a": 1, "b": 2},
	}
	override := map[string]any{
		"library": "heroicons",
		"nested":  map[any]any{"b": 3},
		"extra":   true,
	}

	got := mergeConfig(base, override)
	assert.Equal(t, map[string]any{
		"library": "heroicons",
		"nested":  map[string]any{"a": 1, "b": 3},
	}, got)

	// Inputs are untouched
	assert.Equal(t, "bootstrap-icons", base["library"])
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, base["nested"])
}

func TestMergeConfig_NilOverrideKeepsBase(t *testing.T) {
	base := map[string]any{"fill": true}
	assert.Equal(t, base, mergeConfig(base, map[string]any{"fill": nil}))
	assert.Equal(t, base, mergeConfig(base, nil))
}
