package dropdown

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/ui/styles"
)

// Styles holds the widget styles
type Styles struct {
	// Trigger is the closed trigger box
	Trigger lipgloss.Style
	// TriggerOpen is the trigger box while the overlay is open
	TriggerOpen lipgloss.Style
	// Placeholder is the trigger label when nothing is selected
	Placeholder lipgloss.Style
	// Label is the trigger label showing the selected option
	Label lipgloss.Style
	// Caret is the open/closed indicator
	Caret lipgloss.Style
	// Overlay is the option list container
	Overlay lipgloss.Style
	// Option is the default option row style
	Option lipgloss.Style
	// OptionSelected is applied to the selected option
	OptionSelected lipgloss.Style
	// OptionHighlighted is applied to the highlighted option
	OptionHighlighted lipgloss.Style
	// Cursor marks the option holding focus
	Cursor lipgloss.Style
}

// DefaultStyles returns styles using the Catppuccin Macchiato theme
func DefaultStyles() *Styles {
	return &Styles{
		Trigger: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Padding(0, 1),

		TriggerOpen: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Lavender).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Text),

		Caret: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2),

		Option: lipgloss.NewStyle().
			Foreground(styles.Text).
			Padding(0, 1),

		OptionSelected: lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true).
			Padding(0, 1),

		OptionHighlighted: lipgloss.NewStyle().
			Foreground(styles.Base).
			Background(styles.Blue).
			Padding(0, 1),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),
	}
}

// optionStyle composes the row style for the selected and highlighted flags
func (s *Styles) optionStyle(selected, highlighted bool) lipgloss.Style {
	switch {
	case highlighted && selected:
		return s.OptionHighlighted.Bold(true)
	case highlighted:
		return s.OptionHighlighted
	case selected:
		return s.OptionSelected
	default:
		return s.Option
	}
}
