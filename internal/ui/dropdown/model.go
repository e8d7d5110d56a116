// Package dropdown implements a keyboard and mouse driven select menu for
// Bubble Tea programs.
//
// The widget is built from three parts: a Store holding the interaction
// state, an InputMapper turning keys and pointer events into store
// transitions, and a FocusSynchronizer that keeps focus on the highlighted
// option while the overlay is open. Model wires them into a tea.Model and
// renders the trigger and the option list.
package dropdown

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/riordanpawley/selectmenu/internal/domain"
)

// DefaultLabel is shown on the trigger while nothing is selected
const DefaultLabel = "Please select an option ..."

// Config configures a Model. Every field is optional.
type Config struct {
	Options          []domain.Option
	Label            string
	OnOptionSelected SelectFunc
	RenderOption     RenderOptionFunc
	OnFocus          FocusFunc
	KeyMap           *KeyMap
	Styles           *Styles
	// OverlayOffset is the number of rows between the trigger and the list
	OverlayOffset int
	Logger        *slog.Logger
}

// SelectedMsg is emitted as a command for every committed selection
type SelectedMsg struct {
	Option domain.Option
	Index  int
}

type row struct {
	view   string
	height int
	props  *OptionProps
}

// Model is the select menu widget
type Model struct {
	id string

	store   *Store
	input   *InputMapper
	handles *HandleTable
	focus   *FocusSynchronizer

	keys         KeyMap
	styles       *Styles
	label        string
	renderOption RenderOptionFunc
	onSelect     SelectFunc
	logger       *slog.Logger

	overlayOffset int
	triggerHeight int
	overlayTop    int

	originX, originY int
	hovered          int

	triggerView string
	listView    string
	rows        []row

	pending []SelectedMsg
}

// New creates a closed select menu
func New(cfg Config) *Model {
	m := &Model{
		id:            "selectmenu-" + uuid.NewString(),
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		label:         cfg.Label,
		renderOption:  cfg.RenderOption,
		onSelect:      cfg.OnOptionSelected,
		logger:        cfg.Logger,
		overlayOffset: cfg.OverlayOffset,
		hovered:       NoIndex,
	}
	if m.label == "" {
		m.label = DefaultLabel
	}
	if cfg.KeyMap != nil {
		m.keys = *cfg.KeyMap
	}
	if cfg.Styles != nil {
		m.styles = cfg.Styles
	}
	if m.logger == nil {
		m.logger = discardLogger()
	}
	m.logger = m.logger.With("widget", m.id)

	m.store = NewStore(cfg.Options, m.commit, m.logger)
	m.input = NewInputMapper(m.store)
	m.handles = NewHandleTable()
	m.handles.Sync(m.store.State().Options)
	m.focus = NewFocusSynchronizer(m.handles, cfg.OnFocus, m.logger)
	m.store.Subscribe(m.focus.Observe)

	m.refresh()
	return m
}

// ID returns the widget instance ID
func (m *Model) ID() string {
	return m.id
}

// State returns the current state snapshot
func (m *Model) State() State {
	return m.store.State()
}

// Subscribe registers fn to receive every state snapshot
func (m *Model) Subscribe(fn func(State)) (unsubscribe func()) {
	return m.store.Subscribe(fn)
}

// IsOpen reports whether the overlay is visible
func (m *Model) IsOpen() bool {
	return m.store.State().Open
}

// Selected returns the selected option and its index
func (m *Model) Selected() (domain.Option, int, bool) {
	s := m.store.State()
	opt, ok := s.Selected()
	if !ok {
		return domain.Option{}, NoIndex, false
	}
	return opt, s.SelectedIndex, true
}

// KeyMap returns the active key bindings
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// FocusedIndex returns the index of the option holding focus. ok is false
// when focus is on the trigger.
func (m *Model) FocusedIndex() (int, bool) {
	value, ok := m.focus.Focused()
	if !ok {
		return NoIndex, false
	}
	idx := domain.IndexOf(m.store.State().Options, value)
	return idx, idx != NoIndex
}

// OverlayTop returns the row, relative to the widget, where the list starts
func (m *Model) OverlayTop() int {
	return m.overlayTop
}

// SetOrigin tells the widget where its top-left corner is drawn, so mouse
// coordinates can be mapped onto it
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetOptions replaces the option list
func (m *Model) SetOptions(options []domain.Option) {
	m.handles.Sync(options)
	m.store.SetOptions(options)
	m.refresh()
}

// TriggerProps describes the trigger for assistive technology
func (m *Model) TriggerProps() TriggerProps {
	s := m.store.State()
	return TriggerProps{
		AriaHasPopup: true,
		AriaExpanded: s.Open,
		AriaControls: m.listID(),
		Label:        m.triggerLabel(s),
		Class:        classLabel,
	}
}

// ListProps describes the option list for assistive technology
func (m *Model) ListProps() ListProps {
	open := m.store.State().Open
	return ListProps{
		ID:    m.listID(),
		Role:  RoleMenu,
		Top:   m.overlayTop,
		Open:  open,
		Class: overlayClass(open),
	}
}

// RowProps returns the props the renderer applied to the option at index
func (m *Model) RowProps(index int) (OptionProps, bool) {
	if index < 0 || index >= len(m.rows) || m.rows[index].props == nil {
		return OptionProps{}, false
	}
	return *m.rows[index].props, true
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.HandleKey(msg)
	case tea.MouseMsg:
		m.HandleMouse(msg)
	default:
		return m, nil
	}

	m.refresh()
	return m, m.drainSelections()
}

// HandleKey routes a key to the focused option, or to the trigger when no
// option holds focus. It reports whether the key was consumed.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	k := m.keys.Resolve(msg)

	if idx, ok := m.FocusedIndex(); ok {
		if props, ok := m.RowProps(idx); ok && props.OnKeyDown != nil {
			return props.OnKeyDown(k)
		}
		return m.input.OptionKeyDown(k)
	}
	return m.input.TriggerKeyDown(k)
}

// HandleMouse hit-tests a mouse event against the trigger and the option rows
func (m *Model) HandleMouse(msg tea.MouseMsg) {
	x, y := msg.X-m.originX, msg.Y-m.originY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.inTrigger(x, y) {
			m.input.ClickTrigger()
			return
		}
		if idx, ok := m.optionAt(x, y); ok {
			if props, ok := m.RowProps(idx); ok && props.OnClick != nil {
				props.OnClick()
			}
		}

	case tea.MouseActionMotion:
		idx, ok := m.optionAt(x, y)
		if !ok {
			idx = NoIndex
		}
		if idx == m.hovered {
			return
		}

		prev := m.hovered
		m.hovered = idx
		if prev != NoIndex {
			if props, ok := m.RowProps(prev); ok && props.OnMouseLeave != nil {
				props.OnMouseLeave()
			}
		}
		if idx != NoIndex {
			if props, ok := m.RowProps(idx); ok && props.OnMouseEnter != nil {
				props.OnMouseEnter()
			}
		}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.store.State().Open {
		return m.triggerView
	}

	blocks := []string{m.triggerView}
	for i := 0; i < m.overlayOffset; i++ {
		blocks = append(blocks, "")
	}
	blocks = append(blocks, m.listView)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// commit is the store's selection callback
func (m *Model) commit(option domain.Option, index int) {
	if m.onSelect != nil {
		m.onSelect(option, index)
	}
	m.pending = append(m.pending, SelectedMsg{Option: option, Index: index})
}

func (m *Model) drainSelections() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, sel := range m.pending {
		sel := sel
		cmds = append(cmds, func() tea.Msg { return sel })
	}
	m.pending = nil

	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// refresh rebuilds the render cache from the current snapshot and recomputes
// the overlay position when the trigger height changed
func (m *Model) refresh() {
	s := m.store.State()
	if !s.Open {
		m.hovered = NoIndex
	}

	m.triggerView = m.renderTrigger(s)
	if h := lipgloss.Height(m.triggerView); h != m.triggerHeight {
		m.triggerHeight = h
		m.overlayTop = h + m.overlayOffset
	}

	m.rows = m.renderRows(s)
	m.listView = m.renderList(s)
}

func (m *Model) renderTrigger(s State) string {
	label := m.triggerLabel(s)
	text := m.styles.Label.Render(label)
	if _, ok := s.Selected(); !ok {
		text = m.styles.Placeholder.Render(label)
	}

	caret := "▾"
	box := m.styles.Trigger
	if s.Open {
		caret = "▴"
		box = m.styles.TriggerOpen
	}

	// Keep the trigger as wide as the widest label so it does not jump
	pad := m.contentWidth(s) - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}

	return box.Render(text + strings.Repeat(" ", pad+1) + m.styles.Caret.Render(caret))
}

func (m *Model) triggerLabel(s State) string {
	if opt, ok := s.Selected(); ok {
		return opt.Label
	}
	return m.label
}

func (m *Model) contentWidth(s State) int {
	w := lipgloss.Width(m.label)
	for _, opt := range s.Options {
		w = max(w, lipgloss.Width(opt.Label))
	}
	return w
}

func (m *Model) renderRows(s State) []row {
	rows := make([]row, len(s.Options))
	render := m.renderOption
	if render == nil {
		render = m.defaultRenderOption
	}

	for i, opt := range s.Options {
		i, opt := i, opt
		view := render(RenderOptionProps{
			Option:     opt,
			IsSelected: s.SelectedIndex == i,
			GetOptionRecommendedProps: func(overrides ...PropsOverride) OptionProps {
				props := m.recommendedProps(s, i, opt)
				for _, override := range overrides {
					override(&props)
				}
				rows[i].props = &props
				return props
			},
		})
		rows[i].view = view
		rows[i].height = lipgloss.Height(view)
	}
	return rows
}

func (m *Model) renderList(s State) string {
	if len(m.rows) == 0 {
		return m.styles.Overlay.Render(m.styles.Placeholder.Render("no options"))
	}

	views := make([]string, len(m.rows))
	for i, r := range m.rows {
		views[i] = r.view
	}
	return m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

func (m *Model) inTrigger(x, y int) bool {
	return x >= 0 && y >= 0 &&
		y < m.triggerHeight &&
		x < lipgloss.Width(m.triggerView)
}

// optionAt returns the index of the option row under (x, y), relative to the
// widget origin
func (m *Model) optionAt(x, y int) (int, bool) {
	if !m.store.State().Open || len(m.rows) == 0 {
		return NoIndex, false
	}

	left := m.styles.Overlay.GetBorderLeftSize() + m.styles.Overlay.GetPaddingLeft()
	right := lipgloss.Width(m.listView) - m.styles.Overlay.GetBorderRightSize() - m.styles.Overlay.GetPaddingRight()
	if x < left || x >= right {
		return NoIndex, false
	}

	rowY := y - m.overlayTop - m.styles.Overlay.GetBorderTopSize() - m.styles.Overlay.GetPaddingTop()
	if rowY < 0 {
		return NoIndex, false
	}
	for i, r := range m.rows {
		if rowY < r.height {
			return i, true
		}
		rowY -= r.height
	}
	return NoIndex, false
}

func (m *Model) listID() string {
	return m.id + "-list"
}
