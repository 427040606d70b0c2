package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/tasks"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// Fail prints msg as an error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}

// writeText prints a plain-text summary of st, without colors.
func writeText(w io.Writer, st store.State, group bool) error {
	done, pending := tasks.Counts(st.Tasks)
	theme := "light"
	if st.UI.DarkMode {
		theme = "dark"
	}
	banner := "(hidden)"
	if st.UI.BannerVisible {
		banner = st.UI.BannerMessage
	}

	lines := []string{
		fmt.Sprintf("Todos  done %d  pending %d  total %d", done, pending, done+pending),
		"theme: " + theme,
		"banner: " + banner,
		"",
	}
	if group {
		lines = append(lines, groupLines(st)...)
	} else {
		lines = append(lines, flatLines(st.Tasks.Items)...)
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{"no items"}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		box := "[ ]"
		if it.Done {
			box = "[x]"
		}
		// Cut by display cells so multi-byte titles stay valid UTF-8.
		title := ansi.Truncate(it.Title, 80, "...")
		out = append(out, fmt.Sprintf("%2d. %s %s  (%s)", i+1, box, title, it.DisplayTime))
	}
	return out
}

func groupLines(st store.State) []string {
	var lines []string
	lines = append(lines, "Pending")
	if pend := st.ActiveTasks(); len(pend) == 0 {
		lines = append(lines, "(none)")
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, "Done")
	if done := st.FinishedTasks(); len(done) == 0 {
		lines = append(lines, "(none)")
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
