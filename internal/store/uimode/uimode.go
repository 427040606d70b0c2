// Package uimode holds the theme flag and the informational banner.
//
// Every transition takes the current State by value and returns the next
// one; the package has no other state.
package uimode

// State is the UI-mode slice of the store.
// BannerMessage is empty whenever BannerVisible is false.
type State struct {
	DarkMode      bool   `json:"darkMode"`
	BannerVisible bool   `json:"bannerVisible"`
	BannerMessage string `json:"bannerMessage"`
}

// Initial returns the starting state with the given theme.
func Initial(dark bool) State {
	return State{DarkMode: dark}
}

// ToggleDarkMode flips the theme flag.
func ToggleDarkMode(s State) State {
	s.DarkMode = !s.DarkMode
	return s
}

// ShowBanner makes the banner visible with msg. Empty messages are accepted.
func ShowBanner(s State, msg string) State {
	s.BannerVisible = true
	s.BannerMessage = msg
	return s
}

// DismissBanner hides the banner and clears its message.
func DismissBanner(s State) State {
	s.BannerVisible = false
	s.BannerMessage = ""
	return s
}
