package uikitscan

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
		wantErr    bool
	}{
		{name: "default is text", formatFlag: "", expected: OutputText},
		{name: "explicit text", formatFlag: "text", expected: OutputText},
		{name: "summary", formatFlag: "summary", expected: OutputSummary},
		{name: "json", formatFlag: "json", expected: OutputJSON},
		{name: "markdown", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "quiet wins", formatFlag: "json", quiet: true, expected: OutputSummary},
		{name: "unknown", formatFlag: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetermineOutputFormat(tt.formatFlag, tt.quiet)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func sampleIconResult() *IconResult {
	return &IconResult{
		CacheDir:   "/app/cache",
		Variant:    IconVariantConfig{Library: "@material-symbols", Weight: "500", Style: "outlined"},
		References: []ExtractedIconReference{{Name: "home"}, {Name: "gone", Fill: true}},
		Files: []CachedIconFile{
			{Name: "home", Source: "/icons/home.svg", Destination: "/app/cache/home.svg", Copied: true},
			{Name: "gone", Fill: true, Source: "/icons/gone-fill.svg", Destination: "/app/cache/gone-fill.svg"},
		},
		Copied: 1,
		Stats:  ScanStats{FilesDiscovered: 3, FilesScanned: 2, FilesSkipped: 1},
		Diagnostics: []Diagnostic{
			{Kind: DiagUnresolvedAsset, Path: "/icons/gone-fill.svg", Icon: "gone", Err: errors.New("no such file")},
		},
	}
}

func sampleSafelistResult() *SafelistResult {
	return &SafelistResult{
		Patterns: []SafelistPatternItem{
			{Pattern: "text-(red)-(500)"},
			{Pattern: "bg-(red|blue)-(500|600)", Variants: []string{"hover"}},
			{Pattern: "stroke-(red)-(400)"},
		},
		Components: []ComponentColors{{Component: "UButton", Colors: []string{"red", "blue"}, Present: true}},
		Generated:  5,
		Palette:    PaletteSignal{Brand: "blue", Colors: []string{"red", "blue"}},
		Stats:      ScanStats{FilesScanned: 4},
	}
}

func TestWriteIconOutput(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		contains []string
		excludes []string
	}{
		{
			format:   OutputText,
			contains: []string{"Icons", "+ home.svg", "= gone-fill.svg", "Problems", "2 files, 2 icons (1 copied)", "1 problem"},
		},
		{
			format:   OutputSummary,
			contains: []string{"2 files, 2 icons (1 copied)"},
			excludes: []string{"home.svg", "Problems"},
		},
		{
			format:   OutputMarkdown,
			contains: []string{"# Icon cache", "| home | false | `/app/cache/home.svg` |", "## Problems"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteIconOutput(&buf, sampleIconResult(), tt.format, false))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteIconOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIconOutput(&buf, sampleIconResult(), OutputJSON, false))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "icons", out.Kind)
	assert.Equal(t, JSONSummary{FilesDiscovered: 3, FilesScanned: 2, FilesSkipped: 1, Diagnostics: 1}, out.Summary)
	require.NotNil(t, out.Icons)
	assert.Nil(t, out.Safelist)
	assert.Len(t, out.Icons.Files, 2)
	assert.Equal(t, []JSONDiagnostic{{
		Kind:    DiagUnresolvedAsset,
		Path:    "/icons/gone-fill.svg",
		Icon:    "gone",
		Message: "no such file",
	}}, out.Icons.Problems)
}

func TestWriteSafelistOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSafelistOutput(&buf, sampleSafelistResult(), OutputText, false))
	text := buf.String()

	assert.Contains(t, text, "UButton")
	assert.Contains(t, text, "bg-(red|blue)-(500|600) [hover]")
	assert.Contains(t, text, "4 files, 1 component, 3 patterns merged from 5")

	// Categories are printed in order
	bg := bytes.Index(buf.Bytes(), []byte("background:"))
	txt := bytes.Index(buf.Bytes(), []byte("text:"))
	svg := bytes.Index(buf.Bytes(), []byte("fill & stroke:"))
	assert.Less(t, bg, txt)
	assert.Less(t, txt, svg)
}

func TestWriteSafelistOutput_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSafelistOutput(&buf, &SafelistResult{}, OutputJSON, false))

	assert.Contains(t, buf.String(), `"patterns": []`)
	assert.Contains(t, buf.String(), `"components": []`)
	assert.Contains(t, buf.String(), `"problems": []`)
}

func TestWriteSafelistOutput_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSafelistOutput(&buf, sampleSafelistResult(), OutputMarkdown, false))

	assert.Contains(t, buf.String(), "| UButton | red, blue |")
	assert.Contains(t, buf.String(), "## background")
	assert.Contains(t, buf.String(), "- `bg-(red|blue)-(500|600)` [hover]")
}

func TestCategorizePattern(t *testing.T) {
	tests := []struct {
		pattern  string
		expected UtilityCategory
	}{
		{"bg-(red)-(500)", CategoryBackground},
		{"from-(red)-(500)", CategoryBackground},
		{"text-(red)-(500)", CategoryText},
		{"border-t-(red)-(500)", CategoryBorder},
		{"!border-(red)-(500)", CategoryBorder},
		{"ring-offset-(red)-(500)", CategoryRing},
		{"outline-(red)-(500)", CategoryOutline},
		{"fill-(red)-(500)", CategorySVG},
		{"shadow-(red)-(500)", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizePattern(tt.pattern))
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 icon", pluralizeCount(1, "icon", "icons"))
	assert.Equal(t, "0 icons", pluralizeCount(0, "icon", "icons"))
	assert.Equal(t, "3 icons", pluralizeCount(3, "icon", "icons"))
}
