package store

import (
	"fmt"
	"sort"
)

// Payload keys understood by DecodeIntent.
const (
	KeyMessage = "message"
	KeyTitle   = "title"
	KeyID      = "id"
)

var decoders = map[string]func(p map[string]string) Intent{
	NameToggleDarkMode: func(map[string]string) Intent { return ToggleDarkMode{} },
	NameShowBanner:     func(p map[string]string) Intent { return ShowBanner{Message: p[KeyMessage]} },
	NameDismissBanner:  func(map[string]string) Intent { return DismissBanner{} },
	NameAddTodo:        func(p map[string]string) Intent { return AddTodo{Title: p[KeyTitle]} },
	NameToggleTodo:     func(p map[string]string) Intent { return ToggleTodo{ID: p[KeyID]} },
	NameRemoveTodo:     func(p map[string]string) Intent { return RemoveTodo{ID: p[KeyID]} },
	NameClearTodos:     func(map[string]string) Intent { return ClearTodos{} },
}

// DecodeIntent builds the intent tagged name from its payload. Missing
// payload keys decode to empty strings. Unknown names wrap ErrNoHandler.
func DecodeIntent(name string, payload map[string]string) (Intent, error) {
	dec, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoHandler, name)
	}
	return dec(payload), nil
}

// IntentNames lists every name DecodeIntent accepts, sorted.
func IntentNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
