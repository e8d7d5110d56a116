package dropdown

import (
	"log/slog"

	"github.com/riordanpawley/selectmenu/internal/domain"
)

// FocusHandle moves input focus to one rendered option
type FocusHandle interface {
	Focus()
	Blur()
	Focused() bool
}

// Handle is the default FocusHandle for an option row
type Handle struct {
	value   string
	focused bool
}

// Value returns the value of the option the handle belongs to
func (h *Handle) Value() string { return h.value }

// Focus implements FocusHandle
func (h *Handle) Focus() { h.focused = true }

// Blur implements FocusHandle
func (h *Handle) Blur() { h.focused = false }

// Focused implements FocusHandle
func (h *Handle) Focused() bool { return h.focused }

// HandleTable maps option values to focus handles. Handles are keyed by value,
// so a handle survives reordering and is dropped only when its option is.
type HandleTable struct {
	handles map[string]FocusHandle
	newFunc func(domain.Option) FocusHandle
}

// NewHandleTable creates an empty table that creates *Handle values
func NewHandleTable() *HandleTable {
	return &HandleTable{
		handles: make(map[string]FocusHandle),
		newFunc: func(o domain.Option) FocusHandle {
			return &Handle{value: o.Value}
		},
	}
}

// Sync makes the table match options: handles for surviving values are kept,
// new values get fresh handles and handles for removed values are blurred and
// dropped
func (t *HandleTable) Sync(options []domain.Option) {
	next := make(map[string]FocusHandle, len(options))
	for _, opt := range options {
		if h, ok := t.handles[opt.Value]; ok {
			next[opt.Value] = h
			continue
		}
		next[opt.Value] = t.newFunc(opt)
	}

	for value, h := range t.handles {
		if _, ok := next[value]; !ok {
			h.Blur()
		}
	}
	t.handles = next
}

// Get returns the handle for an option value
func (t *HandleTable) Get(value string) (FocusHandle, bool) {
	h, ok := t.handles[value]
	return h, ok
}

// Len returns the number of handles
func (t *HandleTable) Len() int {
	return len(t.handles)
}

// FocusFunc is notified when an option receives focus
type FocusFunc func(option domain.Option, index int)

// FocusSynchronizer observes state snapshots and keeps focus on the
// highlighted option while the overlay is open. It acts when the (open,
// highlighted) pair changes, or when a replaced option list puts a different
// option at the highlighted index.
type FocusSynchronizer struct {
	table   *HandleTable
	onFocus FocusFunc
	logger  *slog.Logger

	lastOpen      bool
	lastHighlight int

	current      FocusHandle
	currentValue string
}

// NewFocusSynchronizer creates a synchronizer over table
func NewFocusSynchronizer(table *HandleTable, onFocus FocusFunc, logger *slog.Logger) *FocusSynchronizer {
	if logger == nil {
		logger = discardLogger()
	}
	return &FocusSynchronizer{
		table:         table,
		onFocus:       onFocus,
		logger:        logger,
		lastHighlight: NoIndex,
	}
}

// Observe handles a published snapshot
func (f *FocusSynchronizer) Observe(s State) {
	if f.current != nil {
		if h, ok := f.table.Get(f.currentValue); !ok || h != f.current {
			f.current = nil
			f.currentValue = ""
		}
	}

	changed := s.Open != f.lastOpen || s.HighlightedIndex != f.lastHighlight
	f.lastOpen = s.Open
	f.lastHighlight = s.HighlightedIndex

	// Closing returns focus to the trigger
	if !s.Open {
		if changed {
			f.blur()
		}
		return
	}

	opt, ok := s.Highlighted()
	if !ok {
		return
	}
	if !changed && f.current != nil && f.currentValue == opt.Value {
		return
	}
	h, ok := f.table.Get(opt.Value)
	if !ok {
		f.logger.Debug("no focus handle for option", "value", opt.Value)
		return
	}

	f.blur()
	h.Focus()
	f.current = h
	f.currentValue = opt.Value
	f.logger.Debug("focus moved", "index", s.HighlightedIndex, "value", opt.Value)

	if f.onFocus != nil {
		f.onFocus(opt, s.HighlightedIndex)
	}
}

// Focused returns the value of the focused option. ok is false when focus is
// on the trigger.
func (f *FocusSynchronizer) Focused() (value string, ok bool) {
	if f.current == nil || !f.current.Focused() {
		return "", false
	}
	return f.currentValue, true
}

func (f *FocusSynchronizer) blur() {
	if f.current != nil {
		f.current.Blur()
	}
	f.current = nil
	f.currentValue = ""
}
