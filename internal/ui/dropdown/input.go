package dropdown

// InputMapper turns logical keys and pointer events into store transitions
type InputMapper struct {
	store *Store
}

// NewInputMapper creates a mapper driving store
func NewInputMapper(store *Store) *InputMapper {
	return &InputMapper{store: store}
}

// TriggerKeyDown handles a key pressed on the trigger. The key is always
// consumed, so the returned preventDefault is always true.
func (m *InputMapper) TriggerKeyDown(k Key) (preventDefault bool) {
	switch k {
	case KeyEnter, KeySpace, KeyDown:
		m.store.Open()
		// An empty list has no option 0 to highlight
		if len(m.store.State().Options) > 0 {
			m.store.Highlight(0)
		}
	}
	return true
}

// OptionKeyDown handles a key pressed while an option holds focus. It reports
// whether the key caused a transition; unhandled keys may bubble to the host.
func (m *InputMapper) OptionKeyDown(k Key) (handled bool) {
	s := m.store.State()

	switch k {
	case KeyEscape:
		m.store.Close()
		return true
	case KeyDown:
		m.store.Highlight(NextIndex(s.HighlightedIndex, s.Options))
		return true
	case KeyUp:
		m.store.Highlight(PrevIndex(s.HighlightedIndex, s.Options))
		return true
	case KeyEnter:
		// No-op when nothing is highlighted
		return m.store.SelectOption(s.HighlightedIndex)
	}
	return false
}

// ClickTrigger toggles the overlay
func (m *InputMapper) ClickTrigger() {
	m.store.Toggle()
}

// ClickOption commits the option at index
func (m *InputMapper) ClickOption(index int) {
	m.store.SelectOption(index)
}

// PointerEnter highlights the option under the pointer
func (m *InputMapper) PointerEnter(index int) {
	m.store.Highlight(index)
}

// PointerLeave clears the highlight when the pointer leaves an option
func (m *InputMapper) PointerLeave(int) {
	m.store.Highlight(NoIndex)
}
