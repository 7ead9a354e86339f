package uikitscan

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the envelope of every --output-format json document.
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Kind      string        `json:"kind"` // "icons" or "safelist"
	Summary   JSONSummary   `json:"summary"`
	Icons     *JSONIcons    `json:"icons,omitempty"`
	Safelist  *JSONSafelist `json:"safelist,omitempty"`
}

// JSONSummary holds the counts shared by both scans.
type JSONSummary struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
	Diagnostics     int `json:"diagnostics"`
}

// JSONIcons is the icon scan part of the document.
type JSONIcons struct {
	CacheDir   string                   `json:"cache_dir"`
	Variant    IconVariantConfig        `json:"variant"`
	References []ExtractedIconReference `json:"references"`
	Files      []CachedIconFile         `json:"files"`
	Copied     int                      `json:"copied"`
	Problems   []JSONDiagnostic         `json:"problems"`
}

// JSONSafelist is the safelist part of the document.
type JSONSafelist struct {
	Patterns   []SafelistPatternItem `json:"patterns"`
	Generated  int                   `json:"generated"`
	Components []ComponentColors     `json:"components"`
	Palette    PaletteSignal         `json:"palette"`
	Strategy   string                `json:"strategy,omitempty"`
	Problems   []JSONDiagnostic      `json:"problems"`
}

// JSONDiagnostic is a Diagnostic with its error flattened to text.
type JSONDiagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Path    string         `json:"path"`
	Icon    string         `json:"icon,omitempty"`
	Message string         `json:"message,omitempty"`
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newJSONOutput(kind string, stats ScanStats, diags []Diagnostic) JSONOutput {
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Kind:      kind,
		Summary: JSONSummary{
			FilesDiscovered: stats.FilesDiscovered,
			FilesScanned:    stats.FilesScanned,
			FilesSkipped:    stats.FilesSkipped,
			Diagnostics:     len(diags),
		},
	}
}

func buildIconJSON(result *IconResult) JSONOutput {
	out := newJSONOutput("icons", result.Stats, result.Diagnostics)
	out.Icons = &JSONIcons{
		CacheDir:   result.CacheDir,
		Variant:    result.Variant,
		References: nonNil(result.References),
		Files:      nonNil(result.Files),
		Copied:     result.Copied,
		Problems:   jsonDiagnostics(result.Diagnostics),
	}
	return out
}

func buildSafelistJSON(result *SafelistResult) JSONOutput {
	out := newJSONOutput("safelist", result.Stats, result.Diagnostics)
	out.Safelist = &JSONSafelist{
		Patterns:   nonNil(result.Patterns),
		Generated:  result.Generated,
		Components: nonNil(result.Components),
		Palette:    result.Palette,
		Strategy:   result.Strategy,
		Problems:   jsonDiagnostics(result.Diagnostics),
	}
	return out
}

func jsonDiagnostics(diags []Diagnostic) []JSONDiagnostic {
	out := make([]JSONDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = JSONDiagnostic{Kind: d.Kind, Path: d.Path, Icon: d.Icon}
		if d.Err != nil {
			out[i].Message = d.Err.Error()
		}
	}
	return out
}

// nonNil keeps empty lists as [] instead of null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
