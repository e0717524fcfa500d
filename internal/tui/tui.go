// Package tui is the interactive "today" list: space checks the selected
// item, a adds one, q quits. Changes stay in the store; the caller saves.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/today/internal/model"
	"github.com/idilsaglam/today/internal/store/jsonstore"
	"github.com/idilsaglam/today/internal/ui"
)

// listItem adapts a record to bubbles/list.Item. pos is its index in the
// store's today view.
type listItem struct {
	rec *model.Record
	pos int
}

func (i listItem) Title() string       { return i.rec.Content }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.rec.Content }

// Custom delegate to control how items render (single line)
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+d.theme.RecordLine(it.rec, it.pos))
}

type keyMap struct {
	check, add key.Binding
}

var keys = keyMap{
	check: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
	add:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
}

type modelTUI struct {
	store *jsonstore.Store
	theme ui.Theme
	list  list.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	changed bool
}

func newModel(s *jsonstore.Store, theme ui.Theme) modelTUI {
	today := s.Today()
	items := make([]list.Item, 0, len(today))
	for i, r := range today {
		items = append(items, listItem{rec: r, pos: i})
	}

	l := list.New(items, itemDelegate{theme: theme}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.check, keys.add} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.check, keys.add} }

	m := modelTUI{store: s, theme: theme, list: l}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item..."
	m.ti.CharLimit = 200
	m.refreshTitle()
	return m
}

// Run blocks until the user quits. It reports whether anything changed.
func Run(s *jsonstore.Store, theme ui.Theme) (bool, error) {
	p := tea.NewProgram(newModel(s, theme), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(modelTUI)
	if !ok {
		return false, nil
	}
	return fm.changed, nil
}

func (m *modelTUI) refreshTitle() {
	m.list.Title = m.theme.Header("Today", m.store.Today())
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	// While filtering, keys belong to the filter input.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.String() == "q" || msg.String() == "esc":
			return m, tea.Quit
		case key.Matches(msg, keys.check):
			cmd := m.checkSelected()
			return m, cmd
		case key.Matches(msg, keys.add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *modelTUI) checkSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	today := m.store.Today()
	if it.pos >= len(today) || today[it.pos] != it.rec {
		return m.list.NewStatusMessage(m.theme.Error.Render("the day changed; restart to refresh"))
	}
	if _, err := m.store.CheckAt(it.pos); err != nil {
		if errors.Is(err, model.ErrAlreadyChecked) {
			return m.list.NewStatusMessage(m.theme.Muted.Render("already checked"))
		}
		return m.list.NewStatusMessage(m.theme.Error.Render(err.Error()))
	}
	m.changed = true
	m.refreshTitle()
	return nil
}

func (m modelTUI) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			r, err := m.store.Add(m.ti.Value())
			if err != nil {
				m.addErr = "Item cannot be empty"
				return m, nil
			}
			pos := len(m.store.Today()) - 1
			if pos >= 0 && m.store.Today()[pos] == r {
				m.list.InsertItem(len(m.list.Items()), listItem{rec: r, pos: pos})
			}
			m.changed = true
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			m.refreshTitle()
			return m, nil
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += ": " + m.theme.Error.Render(m.addErr)
		}
		content += "\n" + m.theme.PanelString([]string{title, m.ti.View()})
	}
	return m.theme.PanelString(strings.Split(content, "\n"))
}
