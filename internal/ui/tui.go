package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/tasks"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options tune the view.
type Options struct {
	// BannerTemplate formats the banner shown after an add; %s is the title.
	BannerTemplate string
	Logger         *slog.Logger
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Title }

// itemDelegate renders one item per line using the current theme.
type itemDelegate struct {
	theme Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.Title
	if it.Done {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, d.theme.Muted.Render(it.DisplayTime))
}

// Model is the bubbletea model for the todo screen. It keeps no task or
// theme state of its own: every frame is derived from the store, and every
// change goes through Store.Dispatch.
type Model struct {
	store *store.Store
	opts  Options
	log   *slog.Logger
	keys  keyMap
	theme Theme

	list list.Model
	ti   textinput.Model

	adding bool
	addErr string

	width, height int
}

// NewModel builds the view over st.
func NewModel(st *store.Store, opts Options) Model {
	if opts.BannerTemplate == "" {
		opts.BannerTemplate = `Added "%s"`
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		store:  st,
		opts:   opts,
		log:    log,
		keys:   defaultKeys(),
		width:  defaultWidth,
		height: defaultHeight,
	}

	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = m.keys.help
	l.AdditionalFullHelpKeys = m.keys.help
	// Quitting is handled here so the list never sees q.
	l.KeyMap.Quit.SetEnabled(false)
	m.list = l

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item title..."
	m.ti.CharLimit = 200

	m.sync()
	m.resize()
	return m
}

// Run starts the program on the terminal and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, st *store.Store, opts Options) error {
	p := tea.NewProgram(NewModel(st, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// BannerText replaces the first %s in template with title. The template is
// not a format string: other verbs and further %s are printed as is.
func BannerText(template, title string) string {
	return strings.Replace(template, "%s", title, 1)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(keyMsg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		cmd := m.dispatch(store.ToggleTodo{ID: it.ID})
		return m, cmd
	case key.Matches(keyMsg, m.keys.Remove):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		cmd := m.dispatch(store.RemoveTodo{ID: it.ID})
		return m, cmd
	case key.Matches(keyMsg, m.keys.Clear):
		cmd := m.dispatch(store.ClearTodos{})
		return m, cmd
	case key.Matches(keyMsg, m.keys.Theme):
		cmd := m.dispatch(store.ToggleDarkMode{})
		return m, cmd
	case key.Matches(keyMsg, m.keys.Dismiss):
		cmd := m.dispatch(store.DismissBanner{})
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Submit):
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			// Two dispatches, in order: the store never shows a banner on its own.
			addCmd := m.dispatch(store.AddTodo{Title: title})
			bannerCmd := m.dispatch(store.ShowBanner{Message: BannerText(m.opts.BannerTemplate, title)})
			m.list.Select(0)
			m.stopAdding()
			return m, tea.Batch(addCmd, bannerCmd)
		case key.Matches(keyMsg, m.keys.Cancel):
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// dispatch sends in to the store and resyncs the list. The returned command
// refilters the list when a filter is applied and must reach the program.
func (m *Model) dispatch(in store.Intent) tea.Cmd {
	if err := m.store.Dispatch(in); err != nil {
		m.log.Error("dispatch", "intent", in.Name(), "err", err)
		return nil
	}
	return m.sync()
}

// sync copies the store's current state into the list and theme.
func (m *Model) sync() tea.Cmd {
	st := m.store.Snapshot()
	m.theme = ThemeFor(st.UI.DarkMode)
	m.list.SetDelegate(itemDelegate{theme: m.theme})
	m.list.Styles.HelpStyle = m.theme.Help
	m.list.Styles.PaginationStyle = m.theme.Help

	items := make([]list.Item, 0, len(st.Tasks.Items))
	for _, it := range st.Tasks.Items {
		items = append(items, listItem{Item: it})
	}
	return m.list.SetItems(items)
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}

// resize fits the list between the header and the optional input box.
func (m *Model) resize() {
	chrome := 7 // border, header, progress, banner, blank line
	if m.adding {
		chrome += 4
	}
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	st := m.store.Snapshot()
	t := m.theme
	done, pending := tasks.Counts(st.Tasks)

	lines := []string{
		Header(t, done, pending),
		t.Muted.Render(ProgressBar(done, done+pending, 28)),
	}
	if st.UI.BannerVisible {
		lines = append(lines, t.Banner.Render(st.UI.BannerMessage)+" "+t.Help.Render("(x to dismiss)"))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, m.list.View())

	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " - " + t.Error.Render(m.addErr)
		}
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
		lines = append(lines, bar.Render(title+"\n"+m.ti.View()))
	}
	return Panel(t, strings.Join(lines, "\n"))
}
