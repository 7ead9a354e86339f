package uikitscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePatterns(t *testing.T) {
	tests := []struct {
		name     string
		input    []SafelistPatternItem
		expected []SafelistPatternItem
	}{
		{
			name: "overlapping colors fold into one pattern",
			input: []SafelistPatternItem{
				{Pattern: "bg-(red)-500"},
				{Pattern: "bg-(red|blue)-600"},
				{Pattern: "text-(green)-500"},
			},
			expected: []SafelistPatternItem{
				{Pattern: "bg-(red|blue)-(500|600)"},
				{Pattern: "text-(green)-(500)"},
			},
		},
		{
			name: "disjoint colors stay apart",
			input: []SafelistPatternItem{
				{Pattern: "bg-(red)-500"},
				{Pattern: "bg-(blue)-600"},
			},
			expected: []SafelistPatternItem{
				{Pattern: "bg-(red)-(500)"},
				{Pattern: "bg-(blue)-(600)"},
			},
		},
		{
			name: "different variants do not fold by color",
			input: []SafelistPatternItem{
				{Pattern: "bg-(red)-500", Variants: []string{"hover"}},
				{Pattern: "bg-(red)-600"},
			},
			expected: []SafelistPatternItem{
				{Pattern: "bg-(red)-(500)", Variants: []string{"hover"}},
				{Pattern: "bg-(red)-(600)"},
			},
		},
		{
			name: "identical colors and shades fold variants",
			input: []SafelistPatternItem{
				{Pattern: "bg-(red|blue)-500", Variants: []string{"hover"}},
				{Pattern: "bg-(blue|red)-500", Variants: []string{"focus"}},
			},
			expected: []SafelistPatternItem{
				{Pattern: "bg-(red|blue)-(500)", Variants: []string{"hover", "focus"}},
			},
		},
		{
			name: "same shade is not repeated",
			input: []SafelistPatternItem{
				{Pattern: "ring-(amber)-200"},
				{Pattern: "ring-(amber|lime)-200"},
			},
			expected: []SafelistPatternItem{
				{Pattern: "ring-(amber|lime)-(200)"},
			},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []SafelistPatternItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergePatterns(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergePatterns_Deterministic(t *testing.T) {
	input := []SafelistPatternItem{
		{Pattern: "bg-(red)-500"},
		{Pattern: "text-(red|blue)-600", Variants: []string{"hover"}},
		{Pattern: "bg-(red|green)-400"},
		{Pattern: "border-(gray)-200"},
	}

	first, err := MergePatterns(input)
	require.NoError(t, err)
	for range 10 {
		again, err := MergePatterns(input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMergePatterns_DoesNotAliasInput(t *testing.T) {
	variants := []string{"hover"}
	input := []SafelistPatternItem{
		{Pattern: "bg-(red)-500", Variants: variants},
		{Pattern: "bg-(red)-500", Variants: []string{"focus"}},
	}

	_, err := MergePatterns(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"hover"}, variants)
}

func TestMergePatterns_Malformed(t *testing.T) {
	_, err := MergePatterns([]SafelistPatternItem{{Pattern: "bg-red-500"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPattern)
}
