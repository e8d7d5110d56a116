package statusbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/selectmenu/internal/types"
	"github.com/riordanpawley/selectmenu/internal/ui/dropdown"
)

// Hints returns the keybinding hints for the given mode. Host bindings such
// as help and quit are appended while the menu is closed.
func Hints(mode types.Mode, widget dropdown.KeyMap, host ...key.Binding) []key.Binding {
	switch mode {
	case types.ModeClosed:
		return append(widget.TriggerHelp(), host...)
	case types.ModeOpen:
		return widget.ListHelp()
	case types.ModeHelp:
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc/?", "close help")),
		}
	default:
		return nil
	}
}
