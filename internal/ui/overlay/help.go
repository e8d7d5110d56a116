package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section is a named group of bindings shown in the help overlay
type Section struct {
	Name     string
	Bindings []key.Binding
}

type helpKeys struct {
	Close  key.Binding
	Down   key.Binding
	Up     key.Binding
	Top    key.Binding
	Bottom key.Binding
}

var defaultHelpKeys = helpKeys{
	Close:  key.NewBinding(key.WithKeys("esc", "q", "?"), key.WithHelp("esc", "close")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	styles     *Styles
	keys       helpKeys
	sections   []Section
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing the given sections
func NewHelpOverlay(sections ...Section) *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		keys:       defaultHelpKeys,
		sections:   sections,
		viewHeight: 14,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch {
	case key.Matches(keyMsg, h.keys.Close):
		return h, closeOverlay
	case key.Matches(keyMsg, h.keys.Down):
		h.scroll = min(h.scroll+1, h.maxScroll())
	case key.Matches(keyMsg, h.keys.Up):
		h.scroll = max(h.scroll-1, 0)
	case key.Matches(keyMsg, h.keys.Top):
		h.scroll = 0
	case key.Matches(keyMsg, h.keys.Bottom):
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n" + h.styles.Footer.Render(
			"["+h.styles.Key.Render("j/k")+" to scroll, "+h.styles.Key.Render("g/G")+" to jump]",
		)
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 48, h.viewHeight + 4
}

func (h *HelpOverlay) lines() []string {
	keyWidth := 0
	for _, sec := range h.sections {
		for _, b := range sec.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	var lines []string
	for i, sec := range h.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.Section.Render(sec.Name+":"))
		for _, b := range sec.Bindings {
			if !b.Enabled() {
				continue
			}
			k := b.Help().Key
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(k))
			lines = append(lines, "  "+h.styles.Key.Render(k)+pad+"  "+h.styles.Desc.Render(b.Help().Desc))
		}
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}
