// Package store combines the UI-mode and task list slices behind one state
// tree and a single dispatch entry point.
//
// A Store is built explicitly with New and passed to whoever needs it; there
// is no package-level instance. Dispatch is synchronous: the transition runs
// to completion, the new State is published, then subscribers are called in
// registration order before Dispatch returns.
//
// Transitions are serialized by the store's lock, but subscribers run after
// it is released. When several goroutines dispatch at once, a subscriber may
// therefore see their states out of order, or see a state older than
// Snapshot. Callers that need notifications in dispatch order must dispatch
// from a single goroutine, as the terminal view does.
package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/tasks"
	"github.com/Makepad-fr/tada/internal/store/uimode"
)

// ErrNoHandler is returned by Dispatch and DecodeIntent for intents no
// slice handles.
var ErrNoHandler = errors.New("no matching handler")

// State is the full state tree. Values returned by Snapshot are never
// modified afterwards and are safe to read from any goroutine.
type State struct {
	UI    uimode.State `json:"ui"`
	Tasks tasks.State  `json:"tasks"`
}

// ActiveTasks returns unfinished items, newest first.
func (s State) ActiveTasks() []model.Item { return tasks.Active(s.Tasks) }

// FinishedTasks returns finished items, newest first.
func (s State) FinishedTasks() []model.Item { return tasks.Finished(s.Tasks) }

// Store owns the state tree.
type Store struct {
	log     *slog.Logger
	reducer *tasks.Reducer

	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger dispatches are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithReducer sets the task list reducer.
func WithReducer(r *tasks.Reducer) Option {
	return func(s *Store) { s.reducer = r }
}

// WithDarkMode sets the initial theme.
func WithDarkMode(dark bool) Option {
	return func(s *Store) { s.state.UI = uimode.Initial(dark) }
}

// New returns a Store with an empty task list and a hidden banner.
func New(opts ...Option) *Store {
	s := &Store{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		reducer: tasks.NewReducer(),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch routes in to the slice that owns it. The only error is
// ErrNoHandler; unknown todo ids are not errors.
//
// Subscribers are called outside the lock so they may dispatch. Their view
// of the sequence of states is ordered only for serialized callers.
func (s *Store) Dispatch(in Intent) error {
	s.mu.Lock()
	next, err := s.reduce(s.state, in)
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("intent rejected", "intent", fmt.Sprintf("%T", in))
		return err
	}
	s.state = next
	subs := s.subscribers()
	s.mu.Unlock()

	s.log.Debug("intent dispatched", "intent", in.Name(), "items", len(next.Tasks.Items))
	for _, fn := range subs {
		fn(next)
	}
	return nil
}

func (s *Store) reduce(st State, in Intent) (State, error) {
	switch in := in.(type) {
	case ToggleDarkMode:
		st.UI = uimode.ToggleDarkMode(st.UI)
	case ShowBanner:
		st.UI = uimode.ShowBanner(st.UI, in.Message)
	case DismissBanner:
		st.UI = uimode.DismissBanner(st.UI)
	case AddTodo:
		st.Tasks = s.reducer.Add(st.Tasks, in.Title)
	case ToggleTodo:
		st.Tasks = s.reducer.Toggle(st.Tasks, in.ID)
	case RemoveTodo:
		st.Tasks = s.reducer.Remove(st.Tasks, in.ID)
	case ClearTodos:
		st.Tasks = s.reducer.Clear(st.Tasks)
	default:
		return st, fmt.Errorf("dispatch %T: %w", in, ErrNoHandler)
	}
	return st, nil
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActiveTasks returns the unfinished items of the current state.
func (s *Store) ActiveTasks() []model.Item { return s.Snapshot().ActiveTasks() }

// FinishedTasks returns the finished items of the current state.
func (s *Store) FinishedTasks() []model.Item { return s.Snapshot().FinishedTasks() }

// DarkMode reports the current theme flag.
func (s *Store) DarkMode() bool { return s.Snapshot().UI.DarkMode }

// Banner reports the banner's visibility and message.
func (s *Store) Banner() (visible bool, message string) {
	ui := s.Snapshot().UI
	return ui.BannerVisible, ui.BannerMessage
}

// Subscribe registers fn to be called with the new state after every
// successful dispatch. The returned func removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// subscribers returns the registered callbacks in registration order.
// Callers hold s.mu.
func (s *Store) subscribers() []func(State) {
	out := make([]func(State), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
