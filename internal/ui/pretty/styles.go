// Package pretty provides Lipgloss-based styled output utilities for the
// markdoc CLI: query match rendering and fmt-check summaries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Node rendering
	Kind       lipgloss.Style
	Title      lipgloss.Style
	Preview    lipgloss.Style
	Index      lipgloss.Style
	FilePath   lipgloss.Style
	Dim        lipgloss.Style
	Bold       lipgloss.Style
	Success    lipgloss.Style
	Failure    lipgloss.Style
	Separator  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Kind:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Title:     lipgloss.NewStyle().Bold(true),
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Index:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath:  lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:      lipgloss.NewStyle().Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Kind:      plain,
		Title:     plain,
		Preview:   plain,
		Index:     plain,
		FilePath:  plain,
		Dim:       plain,
		Bold:      plain,
		Success:   plain,
		Failure:   plain,
		Separator: plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
