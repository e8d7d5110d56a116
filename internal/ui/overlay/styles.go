package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Section is the style for binding group headers
	Section lipgloss.Style
	// Key is the style for keybinding hints
	Key lipgloss.Style
	// Desc is the style for binding descriptions
	Desc lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Section: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Desc: lipgloss.NewStyle().
			Foreground(styles.Text),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}
