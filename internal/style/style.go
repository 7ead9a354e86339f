// Package style holds the terminal styles shared by the uikitscan reports.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Lipgloss degrades colors to what the terminal supports.
var (
	// Cyan is used for section headers and file locations.
	Cyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// Red is used for fatal errors.
	Red = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// Yellow is used for diagnostics.
	Yellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// Green is used for copied icons and success lines.
	Green = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// Gray is used for hints and already cached entries.
	Gray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render applies style to text when colors are enabled.
func Render(s lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return s.Render(text)
}

// UseColors reports whether output written to f should be colored.
// force wins; NO_COLOR disables colors otherwise.
func UseColors(force bool, f *os.File) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if f == nil {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
