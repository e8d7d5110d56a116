package statusbar

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/types"
	"github.com/riordanpawley/selectmenu/internal/ui/dropdown"
	"github.com/riordanpawley/selectmenu/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

var quit = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

func TestStatusBar_RenderClosedMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeClosed, 80, style, Hints(types.ModeClosed, dropdown.DefaultKeyMap(), quit))

	result := sb.Render()

	assert.Contains(t, result, "CLOSED")
	assert.Contains(t, result, "enter/space/↓")
	assert.Contains(t, result, "open")
	assert.Contains(t, result, "quit")
}

func TestStatusBar_RenderOpenMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeOpen, 80, style, Hints(types.ModeOpen, dropdown.DefaultKeyMap(), quit))

	result := sb.Render()

	assert.Contains(t, result, "OPEN")
	assert.Contains(t, result, "next")
	assert.Contains(t, result, "previous")
	assert.Contains(t, result, "select")
	assert.Contains(t, result, "close")
	assert.NotContains(t, result, "quit", "host keys are not live while the list has focus")
}

func TestStatusBar_RenderHelpMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeHelp, 80, style, Hints(types.ModeHelp, dropdown.DefaultKeyMap()))

	result := sb.Render()

	assert.Contains(t, result, "HELP")
	assert.Contains(t, result, "close help")
}

func TestStatusBar_NoHints(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeClosed, 80, style, nil)

	result := sb.Render()

	assert.Contains(t, result, "CLOSED")
	assert.NotContains(t, result, "│")
}

func TestStatusBar_FillsWidth(t *testing.T) {
	style := styles.New()

	for _, width := range []int{40, 80, 120} {
		sb := New(types.ModeClosed, width, style, Hints(types.ModeClosed, dropdown.DefaultKeyMap(), quit))
		assert.Equal(t, width, lipgloss.Width(sb.Render()), "width %d", width)
	}
}

func TestHints(t *testing.T) {
	km := dropdown.DefaultKeyMap()

	tests := []struct {
		name string
		mode types.Mode
		want int
	}{
		{"closed with host keys", types.ModeClosed, 2},
		{"open", types.ModeOpen, 4},
		{"help", types.ModeHelp, 1},
		{"unknown", types.Mode(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Hints(tt.mode, km, quit), tt.want)
		})
	}
}
