package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
		want    Intent
	}{
		{NameToggleDarkMode, nil, ToggleDarkMode{}},
		{NameShowBanner, map[string]string{KeyMessage: "hi"}, ShowBanner{Message: "hi"}},
		{NameDismissBanner, nil, DismissBanner{}},
		{NameAddTodo, map[string]string{KeyTitle: "Buy milk"}, AddTodo{Title: "Buy milk"}},
		{NameToggleTodo, map[string]string{KeyID: "abc"}, ToggleTodo{ID: "abc"}},
		{NameRemoveTodo, map[string]string{KeyID: "abc"}, RemoveTodo{ID: "abc"}},
		{NameClearTodos, nil, ClearTodos{}},
		{NameShowBanner, nil, ShowBanner{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeIntent(tt.name, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestDecodeIntent_Unknown(t *testing.T) {
	got, err := DecodeIntent("editTodo", map[string]string{KeyID: "x"})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoHandler)
	assert.Contains(t, err.Error(), "editTodo")
}

func TestIntentNames(t *testing.T) {
	assert.Equal(t, []string{
		"addTodo",
		"clearTodos",
		"dismissBanner",
		"removeTodo",
		"showBanner",
		"toggleDarkMode",
		"toggleTodo",
	}, IntentNames())
}

func TestDecodedIntentsDispatch(t *testing.T) {
	s := newTestStore()
	for _, name := range IntentNames() {
		in, err := DecodeIntent(name, map[string]string{KeyTitle: "t", KeyID: "id-1", KeyMessage: "m"})
		require.NoError(t, err)
		assert.NoError(t, s.Dispatch(in), name)
	}
}
