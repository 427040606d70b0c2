package uimode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitial(t *testing.T) {
	assert.Equal(t, State{}, Initial(false))
	assert.Equal(t, State{DarkMode: true}, Initial(true))
}

func TestToggleDarkMode(t *testing.T) {
	s := Initial(false)

	s = ToggleDarkMode(s)
	assert.True(t, s.DarkMode)

	s = ToggleDarkMode(s)
	assert.False(t, s.DarkMode)
}

func TestToggleDarkMode_LeavesBannerAlone(t *testing.T) {
	s := ShowBanner(Initial(false), "hello")
	s = ToggleDarkMode(s)

	assert.True(t, s.BannerVisible)
	assert.Equal(t, "hello", s.BannerMessage)
}

func TestShowBanner(t *testing.T) {
	s := ShowBanner(Initial(true), "Added \"Buy milk\"")

	assert.True(t, s.BannerVisible)
	assert.Equal(t, "Added \"Buy milk\"", s.BannerMessage)
	assert.True(t, s.DarkMode, "theme is untouched")
}

func TestShowBanner_EmptyMessage(t *testing.T) {
	s := ShowBanner(Initial(false), "")

	assert.True(t, s.BannerVisible)
	assert.Empty(t, s.BannerMessage)
}

func TestShowBanner_ReplacesMessage(t *testing.T) {
	s := ShowBanner(Initial(false), "first")
	s = ShowBanner(s, "second")

	assert.Equal(t, "second", s.BannerMessage)
}

func TestDismissBanner(t *testing.T) {
	s := ShowBanner(Initial(false), "hello")
	s = DismissBanner(s)

	assert.False(t, s.BannerVisible)
	assert.Empty(t, s.BannerMessage)
}

func TestDismissBanner_Idempotent(t *testing.T) {
	once := DismissBanner(ShowBanner(Initial(true), "hello"))
	twice := DismissBanner(once)

	assert.Equal(t, once, twice)
}

func TestTransitions_DoNotMutateInput(t *testing.T) {
	orig := Initial(false)

	_ = ToggleDarkMode(orig)
	_ = ShowBanner(orig, "x")

	assert.Equal(t, Initial(false), orig)
}

func TestHiddenBannerHasNoMessage(t *testing.T) {
	steps := []func(State) State{
		ToggleDarkMode,
		func(s State) State { return ShowBanner(s, "one") },
		DismissBanner,
		ToggleDarkMode,
		func(s State) State { return ShowBanner(s, "two") },
		DismissBanner,
		DismissBanner,
	}

	s := Initial(false)
	for i, step := range steps {
		s = step(s)
		if !s.BannerVisible {
			assert.Empty(t, s.BannerMessage, "step %d", i)
		}
	}
}
