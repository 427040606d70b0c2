// Package tasks holds the todo list slice: its transitions and the
// active/finished selectors.
//
// Transitions never modify the slice they are given. Each one that changes
// the list allocates a new backing array, so a State handed to a reader
// earlier stays valid.
package tasks

import (
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada/internal/model"
)

// State is the task list slice of the store. Items are newest first.
type State struct {
	Items []model.Item `json:"items"`
}

// Reducer applies task list transitions. It carries the sources of
// nondeterminism an add needs (clock, id generator, time formatter) so
// that tests can pin them.
type Reducer struct {
	now    func() time.Time
	newID  func() string
	format Formatter
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Reducer) { r.now = now }
}

// WithIDGenerator replaces the uuid generator. Generated ids must be unique
// for the life of the process.
func WithIDGenerator(gen func() string) Option {
	return func(r *Reducer) { r.newID = gen }
}

// WithFormatter sets how DisplayTime is rendered.
func WithFormatter(f Formatter) Option {
	return func(r *Reducer) { r.format = f }
}

// NewReducer returns a Reducer using the wall clock, random uuids and the
// en-US formatter in the local time zone unless overridden.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		now:    time.Now,
		newID:  uuid.NewString,
		format: LocaleFormatter(DefaultLocale, time.Local),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add prepends a new, unfinished item titled title.
//
// The title is not validated; callers reject blank input before
// dispatching.
func (r *Reducer) Add(s State, title string) State {
	at := r.now()
	it := model.Item{
		ID:          r.newID(),
		Title:       title,
		CreatedAt:   at.UnixMilli(),
		DisplayTime: r.format(at),
	}
	items := make([]model.Item, 0, len(s.Items)+1)
	items = append(items, it)
	items = append(items, s.Items...)
	return State{Items: items}
}

// Toggle flips Done on the item with the given id. Unknown ids leave the
// state as is.
func (r *Reducer) Toggle(s State, id string) State {
	idx := indexOf(s.Items, id)
	if idx < 0 {
		return s
	}
	items := make([]model.Item, len(s.Items))
	copy(items, s.Items)
	items[idx].Done = !items[idx].Done
	return State{Items: items}
}

// Remove drops the item with the given id. Unknown ids leave the state as is.
func (r *Reducer) Remove(s State, id string) State {
	idx := indexOf(s.Items, id)
	if idx < 0 {
		return s
	}
	items := make([]model.Item, 0, len(s.Items)-1)
	items = append(items, s.Items[:idx]...)
	items = append(items, s.Items[idx+1:]...)
	return State{Items: items}
}

// Clear keeps only the finished items and discards every unfinished one.
// It does not empty the list.
func (r *Reducer) Clear(s State) State {
	return State{Items: Finished(s)}
}

// Active returns the items that are not done, in list order.
func Active(s State) []model.Item {
	return filter(s.Items, false)
}

// Finished returns the items that are done, in list order.
func Finished(s State) []model.Item {
	return filter(s.Items, true)
}

// Counts returns how many items are done and how many are pending.
func Counts(s State) (done, pending int) {
	for _, it := range s.Items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func filter(items []model.Item, done bool) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.Done == done {
			out = append(out, it)
		}
	}
	return out
}

func indexOf(items []model.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
