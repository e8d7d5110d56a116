package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/domain"
)

// Accessibility roles
const (
	RoleMenu          = "menu"
	RoleMenuItemRadio = "menuitemradio"
)

const checkmark = "✓"

const (
	classLabel   = "select__label"
	classOverlay = "select__overlay"
	classOption  = "select__option"
)

// OptionProps is the bundle of interactive properties recommended for an
// option row. Renderers that draw their own rows apply it (optionally
// overridden) to keep the row reachable by pointer and keyboard.
type OptionProps struct {
	Key       string
	Role      string
	Checked   bool
	AriaLabel string
	Handle    FocusHandle
	// TabIndex is -1 for the highlighted option, taking it out of the natural
	// tab order, and 0 otherwise
	TabIndex int
	Class    string
	Style    lipgloss.Style

	OnClick      func()
	OnMouseEnter func()
	OnMouseLeave func()
	OnKeyDown    func(Key) bool
}

// PropsOverride adjusts recommended props after the defaults are applied
type PropsOverride func(*OptionProps)

// RenderOptionProps is passed to a custom option renderer
type RenderOptionProps struct {
	Option     domain.Option
	IsSelected bool
	// GetOptionRecommendedProps returns the row's props with overrides applied.
	// The props from the last call are what pointer and key events use.
	GetOptionRecommendedProps func(overrides ...PropsOverride) OptionProps
}

// RenderOptionFunc renders one option row
type RenderOptionFunc func(RenderOptionProps) string

// TriggerProps describes the trigger element
type TriggerProps struct {
	AriaHasPopup bool
	AriaExpanded bool
	AriaControls string
	Label        string
	Class        string
}

// ListProps describes the overlay list element
type ListProps struct {
	ID    string
	Role  string
	Top   int
	Open  bool
	Class string
}

// OptionClass composes the class of an option row
func OptionClass(selected, highlighted bool) string {
	classes := []string{classOption}
	if selected {
		classes = append(classes, classOption+"--selected")
	}
	if highlighted {
		classes = append(classes, classOption+"--highlighted")
	}
	return strings.Join(classes, " ")
}

func overlayClass(open bool) string {
	if open {
		return classOverlay + " " + classOverlay + "--open"
	}
	return classOverlay
}

// recommendedProps builds the default props for the option at index
func (m *Model) recommendedProps(s State, index int, opt domain.Option) OptionProps {
	selected := s.SelectedIndex == index
	highlighted := s.HighlightedIndex == index

	tabIndex := 0
	if highlighted {
		tabIndex = -1
	}

	var handle FocusHandle
	if h, ok := m.handles.Get(opt.Value); ok {
		handle = h
	}

	return OptionProps{
		Key:          opt.Value,
		Role:         RoleMenuItemRadio,
		Checked:      selected,
		AriaLabel:    opt.Label,
		Handle:       handle,
		TabIndex:     tabIndex,
		Class:        OptionClass(selected, highlighted),
		Style:        m.styles.optionStyle(selected, highlighted),
		OnClick:      func() { m.input.ClickOption(index) },
		OnMouseEnter: func() { m.input.PointerEnter(index) },
		OnMouseLeave: func() { m.input.PointerLeave(index) },
		OnKeyDown:    m.input.OptionKeyDown,
	}
}

// defaultRenderOption draws the label, a checkmark when selected and a cursor
// when the row holds focus
func (m *Model) defaultRenderOption(p RenderOptionProps) string {
	props := p.GetOptionRecommendedProps()

	content := p.Option.Label
	if props.Checked {
		content += " " + checkmark
	}

	cursor := "  "
	if props.Handle != nil && props.Handle.Focused() {
		cursor = m.styles.Cursor.Render("›") + " "
	}

	return cursor + props.Style.Render(content)
}
