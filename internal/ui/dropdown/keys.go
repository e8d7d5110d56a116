package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a logical key the state machine understands, independent of how the
// terminal reports it
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeySpace
	KeyDown
	KeyUp
	KeyEscape
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// KeyMap binds terminal keys to logical keys
type KeyMap struct {
	Enter  key.Binding
	Space  key.Binding
	Down   key.Binding
	Up     key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "open")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Extend returns a copy of the key map with extra terminal keys added to each
// binding. Help text is kept.
func (km KeyMap) Extend(enter, space, down, up, escape []string) KeyMap {
	km.Enter = extend(km.Enter, enter)
	km.Space = extend(km.Space, space)
	km.Down = extend(km.Down, down)
	km.Up = extend(km.Up, up)
	km.Escape = extend(km.Escape, escape)
	return km
}

func extend(b key.Binding, extra []string) key.Binding {
	if len(extra) == 0 {
		return b
	}
	keys := append(append([]string{}, b.Keys()...), extra...)
	help := b.Help()
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help.Key, help.Desc))
}

// Resolve maps a terminal key message to a logical key
func (km KeyMap) Resolve(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, km.Escape):
		return KeyEscape
	case key.Matches(msg, km.Enter):
		return KeyEnter
	case key.Matches(msg, km.Space):
		return KeySpace
	case key.Matches(msg, km.Down):
		return KeyDown
	case key.Matches(msg, km.Up):
		return KeyUp
	default:
		return KeyUnknown
	}
}

// TriggerHelp returns the bindings that act on the closed trigger
func (km KeyMap) TriggerHelp() []key.Binding {
	keys := append([]string{}, km.Enter.Keys()...)
	keys = append(keys, km.Space.Keys()...)
	keys = append(keys, km.Down.Keys()...)
	open := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp("enter/space/↓", "open"),
	)
	return []key.Binding{open}
}

// ListHelp returns the bindings that act on the open option list
func (km KeyMap) ListHelp() []key.Binding {
	return []key.Binding{km.Down, km.Up, km.Enter, km.Escape}
}

// ShortHelp implements help.KeyMap
func (km KeyMap) ShortHelp() []key.Binding {
	return km.ListHelp()
}

// FullHelp implements help.KeyMap
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.TriggerHelp(), km.ListHelp()}
}
