package uikitscan

import (
	"io"

	"gitlab.com/tozd/go/errors"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

// Output formats
const (
	OutputText     OutputFormat = "text"     // styled report
	OutputSummary  OutputFormat = "summary"  // counts only
	OutputJSON     OutputFormat = "json"     // machine readable
	OutputMarkdown OutputFormat = "markdown" // for CI job summaries
)

// DetermineOutputFormat maps the --output-format flag to an OutputFormat.
// quiet forces the summary; an empty flag means text.
func DetermineOutputFormat(flag string, quiet bool) (OutputFormat, error) {
	if quiet {
		return OutputSummary, nil
	}
	switch flag {
	case "", "text":
		return OutputText, nil
	case "summary":
		return OutputSummary, nil
	case "json":
		return OutputJSON, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	}
	return OutputText, errors.Errorf("unknown output format %q (want text, summary, json or markdown)", flag)
}

// WriteIconOutput writes an icon scan result in the given format.
func WriteIconOutput(w io.Writer, result *IconResult, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, buildIconJSON(result))
	case OutputMarkdown:
		return writeIconMarkdown(w, result)
	}

	r := NewReporter(w, useColors)
	if format == OutputText {
		r.PrintIcons(result)
		r.PrintDiagnostics(result.Diagnostics)
	}
	r.PrintIconSummary(result)
	return r.Err()
}

// WriteSafelistOutput writes a safelist result in the given format.
func WriteSafelistOutput(w io.Writer, result *SafelistResult, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, buildSafelistJSON(result))
	case OutputMarkdown:
		return writeSafelistMarkdown(w, result)
	}

	r := NewReporter(w, useColors)
	if format == OutputText {
		r.PrintComponents(result.Components)
		r.PrintPatterns(result.Patterns)
		r.PrintDiagnostics(result.Diagnostics)
	}
	r.PrintSafelistSummary(result)
	return r.Err()
}
