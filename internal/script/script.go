// Package script replays a YAML list of intents against a store.
//
// A script looks like:
//
//	steps:
//	  - action: addTodo
//	    payload: {title: Buy milk}
//	  - action: toggleTodo
//	    payload: {ref: 0}
//
// Ids are generated when items are added, so steps that target an item
// may name it by payload ref: the 0-based position of the addTodo step that
// created it, counting only addTodo steps.
package script

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/store"
)

// Script is a decoded replay file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one intent record: the action name and its payload.
type Step struct {
	Action  string  `yaml:"action"`
	Payload Payload `yaml:"payload,omitempty"`
}

// Payload carries the intent's arguments. Ref, when set, wins over ID.
type Payload struct {
	Title   string `yaml:"title,omitempty"`
	Message string `yaml:"message,omitempty"`
	ID      string `yaml:"id,omitempty"`
	Ref     *int   `yaml:"ref,omitempty"`
}

// ErrBadRef is returned for refs that do not name an added item.
var ErrBadRef = errors.New("unresolved ref")

// Parse decodes a script. Unknown fields are rejected.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

// Run dispatches every step in order and stops at the first failure.
// It returns the number of steps applied.
func Run(st *store.Store, s Script) (int, error) {
	var added []string
	for i, step := range s.Steps {
		in, err := step.intent(added)
		if err != nil {
			return i, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		if err := st.Dispatch(in); err != nil {
			return i, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		if _, ok := in.(store.AddTodo); ok {
			added = append(added, st.Snapshot().Tasks.Items[0].ID)
		}
	}
	return len(s.Steps), nil
}

func (s Step) intent(added []string) (store.Intent, error) {
	p := s.Payload
	id := p.ID
	if p.Ref != nil {
		ref := *p.Ref
		if ref < 0 || ref >= len(added) {
			return nil, fmt.Errorf("%w: %d (have %d added items)", ErrBadRef, ref, len(added))
		}
		id = added[ref]
	}
	return store.DecodeIntent(s.Action, map[string]string{
		store.KeyTitle:   p.Title,
		store.KeyMessage: p.Message,
		store.KeyID:      id,
	})
}
