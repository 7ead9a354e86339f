package uikitscan

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yacobolo/uikitscan/internal/style"
)

// Reporter prints scan results for humans.
type Reporter struct {
	w         io.Writer
	useColors bool
	err       error
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// Err returns the first write error.
func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) header(s string) {
	r.printf("\n%s\n%s\n", style.Render(style.Cyan, s, r.useColors), strings.Repeat("-", len(s)))
}

// PrintIcons lists every cached icon file.
func (r *Reporter) PrintIcons(result *IconResult) {
	r.header("Icons")
	if len(result.Files) == 0 {
		r.printf("%s\n", style.Render(style.Gray, "no icon references found", r.useColors))
		return
	}

	for _, f := range result.Files {
		mark := style.Render(style.Gray, "=", r.useColors)
		if f.Copied {
			mark = style.Render(style.Green, "+", r.useColors)
		}
		r.printf("%s %s\n", mark, r.relative(result.CacheDir, f.Destination))
	}
}

// PrintIconSummary prints the icon scan counts.
func (r *Reporter) PrintIconSummary(result *IconResult) {
	r.printf("\n%s, %s (%d copied) into %s\n",
		pluralizeCount(result.Stats.FilesScanned, "file", "files"),
		pluralizeCount(len(result.Files), "icon", "icons"),
		result.Copied,
		result.CacheDir)
	r.printf("variant: %s weight=%s style=%s fill=%t\n",
		result.Variant.Library, result.Variant.Weight, result.Variant.Style, result.Variant.Fill)
	r.printDiagnosticCount(result.Diagnostics)
}

// PrintComponents lists the components that contributed to the safelist.
func (r *Reporter) PrintComponents(components []ComponentColors) {
	r.header("Components")
	if len(components) == 0 {
		r.printf("%s\n", style.Render(style.Gray, "no color-aware components found", r.useColors))
		return
	}
	for _, c := range components {
		r.printf("%-22s %s\n", c.Component, strings.Join(c.Colors, " "))
	}
}

// PrintPatterns prints the merged safelist grouped by utility category.
func (r *Reporter) PrintPatterns(patterns []SafelistPatternItem) {
	r.header("Safelist")
	if len(patterns) == 0 {
		r.printf("%s\n", style.Render(style.Gray, "empty", r.useColors))
		return
	}
	for _, group := range groupPatterns(patterns) {
		r.printf("%s\n", style.Render(style.Gray, string(group.Category)+":", r.useColors))
		for _, p := range group.Patterns {
			r.printf("  %s%s\n", p.Pattern, variantSuffix(p.Variants))
		}
	}
}

// PrintSafelistSummary prints the safelist counts.
func (r *Reporter) PrintSafelistSummary(result *SafelistResult) {
	r.printf("\n%s, %s, %s merged from %d\n",
		pluralizeCount(result.Stats.FilesScanned, "file", "files"),
		pluralizeCount(len(result.Components), "component", "components"),
		pluralizeCount(len(result.Patterns), "pattern", "patterns"),
		result.Generated)
	r.printDiagnosticCount(result.Diagnostics)
}

// PrintDiagnostics lists non-fatal problems.
func (r *Reporter) PrintDiagnostics(diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.header("Problems")
	for _, d := range diags {
		r.printf("%s %s\n", style.Render(style.Yellow, "!", r.useColors), d.String())
	}
}

func (r *Reporter) printDiagnosticCount(diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.printf("%s\n", style.Render(style.Yellow, pluralizeCount(len(diags), "problem", "problems"), r.useColors))
}

func (r *Reporter) relative(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}

func variantSuffix(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return " [" + strings.Join(variants, ", ") + "]"
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func writeIconMarkdown(w io.Writer, result *IconResult) error {
	var b strings.Builder
	b.WriteString("# Icon cache\n\n")
	fmt.Fprintf(&b, "- Cache: `%s`\n", result.CacheDir)
	fmt.Fprintf(&b, "- Variant: `%s` weight `%s` style `%s`\n", result.Variant.Library, result.Variant.Weight, result.Variant.Style)
	fmt.Fprintf(&b, "- Files scanned: %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(&b, "- Icons: %d (%d copied)\n", len(result.Files), result.Copied)

	if len(result.Files) > 0 {
		b.WriteString("\n| Icon | Fill | File |\n|---|---|---|\n")
		for _, f := range result.Files {
			fmt.Fprintf(&b, "| %s | %t | `%s` |\n", f.Name, f.Fill, filepath.ToSlash(f.Destination))
		}
	}
	writeMarkdownDiagnostics(&b, result.Diagnostics)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSafelistMarkdown(w io.Writer, result *SafelistResult) error {
	var b strings.Builder
	b.WriteString("# Safelist\n\n")
	fmt.Fprintf(&b, "- Files scanned: %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(&b, "- Patterns: %d (merged from %d)\n", len(result.Patterns), result.Generated)

	if len(result.Components) > 0 {
		b.WriteString("\n## Components\n\n| Component | Colors |\n|---|---|\n")
		for _, c := range result.Components {
			fmt.Fprintf(&b, "| %s | %s |\n", c.Component, strings.Join(c.Colors, ", "))
		}
	}

	for _, group := range groupPatterns(result.Patterns) {
		fmt.Fprintf(&b, "\n## %s\n\n", group.Category)
		for _, p := range group.Patterns {
			fmt.Fprintf(&b, "- `%s`%s\n", p.Pattern, variantSuffix(p.Variants))
		}
	}
	writeMarkdownDiagnostics(&b, result.Diagnostics)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownDiagnostics(b *strings.Builder, diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	b.WriteString("\n## Problems\n\n")
	for _, d := range diags {
		fmt.Fprintf(b, "- %s\n", d.String())
	}
}
