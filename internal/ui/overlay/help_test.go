package overlay

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func sections() []Section {
	return []Section{
		{Name: "Menu", Bindings: []key.Binding{binding("enter", "select"), binding("esc", "close")}},
		{Name: "App", Bindings: []key.Binding{binding("q", "quit")}},
	}
}

func longSections(n int) []Section {
	var bindings []key.Binding
	for i := 0; i < n; i++ {
		bindings = append(bindings, binding(fmt.Sprintf("f%d", i), fmt.Sprintf("action %d", i)))
	}
	return []Section{{Name: "Many", Bindings: bindings}}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHelpOverlay_Basics(t *testing.T) {
	help := NewHelpOverlay(sections()...)

	assert.Equal(t, "Help", help.Title())
	assert.Nil(t, help.Init())
	w, h := help.Size()
	assert.Greater(t, w, 0)
	assert.Greater(t, h, help.viewHeight)
}

func TestHelpOverlay_View_ContainsBindings(t *testing.T) {
	help := NewHelpOverlay(sections()...)

	view := help.View()

	for _, want := range []string{"Menu:", "App:", "enter", "select", "esc", "close", "q", "quit"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "to scroll", "short content has no scroll hint")
}

func TestHelpOverlay_SkipsDisabledBindings(t *testing.T) {
	disabled := binding("x", "hidden action")
	disabled.SetEnabled(false)
	help := NewHelpOverlay(Section{Name: "Menu", Bindings: []key.Binding{disabled, binding("enter", "select")}})

	assert.NotContains(t, help.View(), "hidden action")
}

func TestHelpOverlay_CloseKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, runes("q"), runes("?")} {
		t.Run(msg.String(), func(t *testing.T) {
			help := NewHelpOverlay(sections()...)

			_, cmd := help.Update(msg)

			require.NotNil(t, cmd)
			assert.Equal(t, CloseOverlayMsg{}, cmd())
		})
	}
}

func TestHelpOverlay_Scroll(t *testing.T) {
	help := NewHelpOverlay(longSections(30)...)
	// 1 header line plus 30 bindings
	maxScroll := 31 - help.viewHeight

	assert.Contains(t, help.View(), "to scroll")

	help.Update(runes("j"))
	help.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, help.scroll)

	help.Update(runes("k"))
	assert.Equal(t, 1, help.scroll)

	help.Update(runes("G"))
	assert.Equal(t, maxScroll, help.scroll)
	assert.Contains(t, help.View(), "action 29")

	help.Update(runes("j"))
	assert.Equal(t, maxScroll, help.scroll, "scroll stops at the bottom")

	help.Update(runes("g"))
	assert.Equal(t, 0, help.scroll)
	assert.NotContains(t, help.View(), "action 29")

	help.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, help.scroll, "scroll stops at the top")
}

func TestHelpOverlay_IgnoresOtherMessages(t *testing.T) {
	help := NewHelpOverlay(sections()...)

	model, cmd := help.Update(tea.WindowSizeMsg{Width: 10, Height: 10})

	assert.Same(t, help, model)
	assert.Nil(t, cmd)
}
