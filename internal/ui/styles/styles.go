package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/types"
)

// Styles holds the application chrome styles. Widget styles live with the
// widget in the dropdown package.
type Styles struct {
	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Result line
	Result      lipgloss.Style
	ResultValue lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuKey      lipgloss.Style
	MenuItem     lipgloss.Style
	Footer       lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(Overlay1),

		Result: lipgloss.NewStyle().
			Foreground(Subtext0),

		ResultValue: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		Footer: lipgloss.NewStyle().
			Foreground(Subtext0).
			MarginTop(1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// ModeBadge returns the status bar badge style for a mode
func (s *Styles) ModeBadge(mode types.Mode) lipgloss.Style {
	color, ok := ModeColors[mode.String()]
	if !ok {
		return s.StatusMode
	}
	return s.StatusMode.Background(color)
}
