package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles palette + symbols + borders.
// The view picks one per frame from the store's dark-mode flag.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Selected, Done, Help, Banner                  lipgloss.Style
	Border                                        lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// ThemeFor returns the dark or the light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

var lightTheme = Theme{
	Name:     "light",
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
	Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
	Help:     lipgloss.NewStyle().Faint(true),
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("153")).
		Padding(0, 1),
	Border:       lipgloss.Color("248"),
	BoxUnchecked: "☐", BoxChecked: "☑",
	SymDone: "✔", SymPending: "•",
}

var darkTheme = Theme{
	Name:     "dark",
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
	Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
	Help:     lipgloss.NewStyle().Faint(true),
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("24")).
		Padding(0, 1),
	Border:       lipgloss.Color("8"),
	BoxUnchecked: "◻", BoxChecked: "◼",
	SymDone: "✔", SymPending: "•",
}
