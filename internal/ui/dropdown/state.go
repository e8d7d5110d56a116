package dropdown

import (
	"log/slog"

	"github.com/riordanpawley/selectmenu/internal/domain"
)

// SelectFunc is called once for every committed selection
type SelectFunc func(option domain.Option, index int)

// State is an immutable snapshot of the widget's interaction state.
// Options is shared between snapshots and must not be modified.
type State struct {
	Open             bool
	SelectedIndex    int
	HighlightedIndex int
	Options          []domain.Option
}

// Selected returns the selected option, if any
func (s State) Selected() (domain.Option, bool) {
	if !inRange(s.SelectedIndex, s.Options) {
		return domain.Option{}, false
	}
	return s.Options[s.SelectedIndex], true
}

// Highlighted returns the highlighted option, if any
func (s State) Highlighted() (domain.Option, bool) {
	if !inRange(s.HighlightedIndex, s.Options) {
		return domain.Option{}, false
	}
	return s.Options[s.HighlightedIndex], true
}

// Store owns the interaction state. Every transition replaces the current
// snapshot and publishes it to subscribers synchronously, in subscription order.
type Store struct {
	state       State
	onSelect    SelectFunc
	subscribers []*subscriber
	logger      *slog.Logger
}

type subscriber struct {
	fn func(State)
}

// NewStore creates a closed store with nothing selected or highlighted
func NewStore(options []domain.Option, onSelect SelectFunc, logger *slog.Logger) *Store {
	if logger == nil {
		logger = discardLogger()
	}
	return &Store{
		state: State{
			SelectedIndex:    NoIndex,
			HighlightedIndex: NoIndex,
			Options:          cloneOptions(options),
		},
		onSelect: onSelect,
		logger:   logger,
	}
}

// State returns the current snapshot
func (s *Store) State() State {
	return s.state
}

// Subscribe registers fn to receive every published snapshot and returns a
// function that removes it
func (s *Store) Subscribe(fn func(State)) func() {
	sub := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, sub)

	return func() {
		for i, existing := range s.subscribers {
			if existing == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Open shows the overlay
func (s *Store) Open() {
	next := s.state
	next.Open = true
	s.publish(next, "open")
}

// Close hides the overlay. The highlight is left as it is.
func (s *Store) Close() {
	next := s.state
	next.Open = false
	s.publish(next, "close")
}

// Toggle flips the open state
func (s *Store) Toggle() {
	if s.state.Open {
		s.Close()
		return
	}
	s.Open()
}

// Highlight sets the highlighted index. No bounds check is made; callers pass
// NoIndex to clear the highlight.
func (s *Store) Highlight(index int) {
	next := s.state
	next.HighlightedIndex = index
	s.publish(next, "highlight")
}

// SelectOption commits the option at index: the selection callback fires once,
// the selection is recorded and the overlay closes. An index outside the
// option list (NoIndex included) is ignored and false is returned.
func (s *Store) SelectOption(index int) bool {
	if !inRange(index, s.state.Options) {
		s.logger.Debug("ignoring selection outside option list", "index", index, "count", len(s.state.Options))
		return false
	}

	option := s.state.Options[index]
	if s.onSelect != nil {
		s.onSelect(option, index)
	}

	next := s.state
	next.SelectedIndex = index
	next.Open = false
	s.logger.Info("option selected", "index", index, "value", option.Value)
	s.publish(next, "select")
	return true
}

// SetOptions replaces the option list. Selected and highlighted indexes that
// no longer address an option are reset to NoIndex.
func (s *Store) SetOptions(options []domain.Option) {
	next := s.state
	next.Options = cloneOptions(options)
	if !inRange(next.SelectedIndex, next.Options) {
		next.SelectedIndex = NoIndex
	}
	if !inRange(next.HighlightedIndex, next.Options) {
		next.HighlightedIndex = NoIndex
	}
	s.publish(next, "options")
}

func (s *Store) publish(next State, op string) {
	s.state = next
	s.logger.Debug("state transition",
		"op", op,
		"open", next.Open,
		"selected", next.SelectedIndex,
		"highlighted", next.HighlightedIndex,
	)

	// Copy so a subscriber may unsubscribe while being notified
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(next)
	}
}

func cloneOptions(options []domain.Option) []domain.Option {
	if options == nil {
		return []domain.Option{}
	}
	out := make([]domain.Option, len(options))
	copy(out, options)
	return out
}
