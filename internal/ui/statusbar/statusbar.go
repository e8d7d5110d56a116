package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/types"
	"github.com/riordanpawley/selectmenu/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode     types.Mode
	width    int
	styles   *styles.Styles
	bindings []key.Binding
	help     help.Model
}

// New creates a new StatusBar with the given mode, width, styles and hints
func New(mode types.Mode, width int, s *styles.Styles, bindings []key.Binding) StatusBar {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = s.MenuKey
	h.Styles.ShortDesc = s.StatusHint
	h.Styles.ShortSeparator = s.StatusHint

	return StatusBar{
		mode:     mode,
		width:    width,
		styles:   s,
		bindings: bindings,
		help:     h,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.ModeBadge(sb.mode).Render(sb.mode.String())

	content := modeBadge
	if len(sb.bindings) > 0 {
		// Leave room for the badge, the separator and the bar padding
		sb.help.Width = max(0, sb.width-lipgloss.Width(modeBadge)-5)
		hints := sb.help.ShortHelpView(sb.bindings)
		if hints != "" {
			separator := sb.styles.StatusHint.Render(" │ ")
			content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hints)
		}
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
