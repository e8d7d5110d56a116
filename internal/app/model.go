// Package app is the host program around the select menu: a header, the
// widget, a result line, a status bar, toasts and a help overlay.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/selectmenu/internal/domain"
	"github.com/riordanpawley/selectmenu/internal/types"
	"github.com/riordanpawley/selectmenu/internal/ui/dropdown"
	"github.com/riordanpawley/selectmenu/internal/ui/overlay"
	"github.com/riordanpawley/selectmenu/internal/ui/statusbar"
	"github.com/riordanpawley/selectmenu/internal/ui/styles"
	"github.com/riordanpawley/selectmenu/internal/ui/toast"
)

// DefaultTitle is shown above the menu
const DefaultTitle = "selectmenu"

const toastTTL = 3 * time.Second

// KeyMap holds the host bindings. They are live only while the menu is
// closed, except ForceQuit.
type KeyMap struct {
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard host bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Options configures the host program
type Options struct {
	Title         string
	Label         string
	Options       []domain.Option
	KeyMap        *dropdown.KeyMap
	OverlayOffset int
	// ExitOnSelect quits the program after the first committed selection
	ExitOnSelect bool
	Logger       *slog.Logger
}

// Model is the main application state
type Model struct {
	menu         *dropdown.Model
	overlayStack *overlay.Stack
	keys         KeyMap

	title        string
	exitOnSelect bool
	result       *domain.Option

	toasts []types.Toast

	width  int
	height int

	styles *styles.Styles
	logger *slog.Logger
}

// New creates a new application model
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	m := Model{
		overlayStack: overlay.NewStack(),
		keys:         DefaultKeyMap(),
		title:        title,
		exitOnSelect: opts.ExitOnSelect,
		toasts:       []types.Toast{},
		styles:       styles.New(),
		logger:       logger,
	}

	m.menu = dropdown.New(dropdown.Config{
		Options:       opts.Options,
		Label:         opts.Label,
		KeyMap:        opts.KeyMap,
		OverlayOffset: opts.OverlayOffset,
		Logger:        logger,
		OnFocus: func(o domain.Option, i int) {
			logger.Debug("option focused", "value", o.Value, "index", i)
		},
	})
	m.menu.SetOrigin(0, lipgloss.Height(m.header())+1)

	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.overlayStack.IsEmpty() {
			return m, nil
		}
		_, cmd := m.menu.Update(msg)
		return m, cmd

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case dropdown.SelectedMsg:
		return m.handleSelected(msg)

	case tickMsg:
		m.expireToasts(time.Time(msg))
		if len(m.toasts) > 0 {
			return m, tickEvery(time.Second)
		}
		return m, nil
	}

	return m, nil
}

// handleKey applies host bindings while the menu is closed and hands every
// other key to the menu
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.menu.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Help):
			return m, m.overlayStack.Push(m.helpOverlay())
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	_, cmd := m.menu.Update(msg)
	return m, cmd
}

func (m Model) handleSelected(msg dropdown.SelectedMsg) (tea.Model, tea.Cmd) {
	opt := msg.Option
	m.result = &opt
	m.logger.Info("selection committed", "value", opt.Value, "index", msg.Index)

	if m.exitOnSelect {
		return m, tea.Quit
	}

	// A live toast means a tick is already pending
	ticking := len(m.toasts) > 0
	m.toasts = append(m.toasts, types.NewToast(
		types.ToastSuccess,
		fmt.Sprintf("Selected %s", opt.Label),
		toastTTL,
	))
	if ticking {
		return m, nil
	}
	return m, tickEvery(time.Second)
}

// Result returns the last committed option
func (m Model) Result() (domain.Option, bool) {
	if m.result == nil {
		return domain.Option{}, false
	}
	return *m.result, true
}

// Menu returns the embedded select menu
func (m Model) Menu() *dropdown.Model {
	return m.menu
}

// Mode returns the interaction mode shown in the status bar
func (m Model) Mode() types.Mode {
	switch {
	case !m.overlayStack.IsEmpty():
		return types.ModeHelp
	case m.menu.IsOpen():
		return types.ModeOpen
	default:
		return types.ModeClosed
	}
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mode := m.Mode()
	sb := statusbar.New(mode, m.width, m.styles,
		statusbar.Hints(mode, m.menu.KeyMap(), m.keys.Help, m.keys.Quit))
	statusBarView := sb.Render()

	toastView := toast.New(m.styles).Render(m.toasts, m.width)

	mainHeight := m.height - lipgloss.Height(statusBarView)
	if toastView != "" {
		mainHeight -= lipgloss.Height(toastView)
	}
	mainHeight = max(mainHeight, 0)

	var mainView string
	if !m.overlayStack.IsEmpty() {
		mainView = m.overlayStack.View(m.width, mainHeight)
	} else {
		mainView = lipgloss.NewStyle().
			Width(m.width).
			Height(mainHeight).
			MaxHeight(mainHeight).
			Render(m.body())
	}

	blocks := []string{mainView}
	if toastView != "" {
		blocks = append(blocks, toastView)
	}
	blocks = append(blocks, statusBarView)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m Model) header() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.title),
		m.styles.Subtitle.Render("Choose an option with the keyboard or the mouse"),
	)
}

func (m Model) body() string {
	result := m.styles.Result.Render("Nothing selected yet")
	if opt, ok := m.Result(); ok {
		result = m.styles.Result.Render("Selected: ") +
			m.styles.ResultValue.Render(opt.Label) +
			m.styles.Result.Render(" ("+opt.Value+")")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		"",
		m.menu.View(),
		"",
		result,
	)
}

func (m Model) helpOverlay() *overlay.HelpOverlay {
	widget := m.menu.KeyMap()
	return overlay.NewHelpOverlay(
		overlay.Section{Name: "Menu closed", Bindings: widget.TriggerHelp()},
		overlay.Section{Name: "Menu open", Bindings: widget.ListHelp()},
		overlay.Section{Name: "Application", Bindings: []key.Binding{m.keys.Help, m.keys.Quit, m.keys.ForceQuit}},
	)
}

// expireToasts drops toasts that expired at now
func (m *Model) expireToasts(now time.Time) {
	filtered := make([]types.Toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if !t.Expired(now) {
			filtered = append(filtered, t)
		}
	}
	m.toasts = filtered
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
