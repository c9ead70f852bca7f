package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sahilm/fuzzy"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

type multiSelectCancelMsg struct{}

type multiSelectDoneMsg struct {
	key    prefs.Key
	values []string
}

type multiSelectRow struct {
	value    string
	label    string
	selected bool
}

func (r multiSelectRow) Title() string       { return r.label }
func (r multiSelectRow) Description() string { return "" }
func (r multiSelectRow) FilterValue() string { return r.label }

type multiSelectDelegate struct{}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(multiSelectRow)
	if !ok {
		fmt.Fprint(w, item.FilterValue())
		return
	}
	fmt.Fprint(w, renderCheckRow(m.Width(), index == m.Index(), row.selected, row.label))
}

// multiSelectModel picks a subset of a widget's entries. It does not write
// anything: the chosen values go back to the form in multiSelectDoneMsg.
type multiSelectModel struct {
	width  int
	height int

	key         prefs.Key
	title       string
	parentCrumb string

	entries  prefs.Entries
	selected map[string]bool

	list      list.Model
	filter    textinput.Model
	filtering bool

	keymap keyMap
}

func newMultiSelectModel(k prefs.Key, parentCrumb, title string, entries prefs.Entries, current []string) *multiSelectModel {
	sel := make(map[string]bool, len(current))
	for _, v := range current {
		sel[v] = true
	}

	l := list.New(nil, multiSelectDelegate{}, 0, 0)
	configureList(&l)

	in := textinput.New()
	in.CharLimit = 64
	in.Prompt = "/ "
	in.Placeholder = "filter"
	configureSearch(&in)
	setSearchFocused(&in, false)

	m := &multiSelectModel{
		key:         k,
		title:       title,
		parentCrumb: parentCrumb,
		entries:     entries,
		selected:    sel,
		list:        l,
		filter:      in,
		keymap:      defaultKeyMap(),
	}
	m.applyFilter("")
	return m
}

func (m *multiSelectModel) Init() tea.Cmd { return nil }

func (m *multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		innerW, innerH := frameInnerSize(msg.Width, msg.Height)
		listH := innerH - 4 // header + filter + spacer + footer
		m.list.SetSize(innerW, max(1, listH))
		m.filter.Width = max(10, innerW-len(m.filter.Prompt))
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				setSearchFocused(&m.filter, false)
				m.applyFilter("")
				return m, nil
			case "enter", "down", "up":
				m.filtering = false
				m.filter.Blur()
				setSearchFocused(&m.filter, false)
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter(m.filter.Value())
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keymap.Esc):
			return m, func() tea.Msg { return multiSelectCancelMsg{} }
		case key.Matches(msg, m.keymap.Filter):
			m.filtering = true
			setSearchFocused(&m.filter, true)
			return m, m.filter.Focus()
		case key.Matches(msg, m.keymap.Toggle):
			row, ok := m.list.SelectedItem().(multiSelectRow)
			if !ok {
				return m, nil
			}
			m.selected[row.value] = !m.selected[row.value]
			m.refreshRows()
			return m, nil
		case key.Matches(msg, m.keymap.Confirm):
			k, vals := m.key, m.values()
			return m, func() tea.Msg { return multiSelectDoneMsg{key: k, values: vals} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// values returns the checked values in entry order.
func (m *multiSelectModel) values() []string {
	out := make([]string, 0, len(m.selected))
	for _, e := range m.entries {
		if m.selected[e.Value] {
			out = append(out, e.Value)
		}
	}
	return out
}

func (m *multiSelectModel) applyFilter(query string) {
	query = strings.TrimSpace(query)
	rows := make([]list.Item, 0, len(m.entries))
	if query == "" {
		for _, e := range m.entries {
			rows = append(rows, multiSelectRow{value: e.Value, label: e.Label, selected: m.selected[e.Value]})
		}
	} else {
		labels := make([]string, len(m.entries))
		for i, e := range m.entries {
			labels[i] = e.Label
		}
		for _, match := range fuzzy.Find(query, labels) {
			e := m.entries[match.Index]
			rows = append(rows, multiSelectRow{value: e.Value, label: e.Label, selected: m.selected[e.Value]})
		}
	}
	m.list.SetItems(rows)
	if len(rows) > 0 {
		m.list.Select(0)
	}
}

func (m *multiSelectModel) refreshRows() {
	items := m.list.Items()
	for i := range items {
		row, ok := items[i].(multiSelectRow)
		if !ok {
			continue
		}
		row.selected = m.selected[row.value]
		items[i] = row
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	m.list.Select(idx)
}

func (m *multiSelectModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var body strings.Builder
	body.WriteString(m.filter.View())
	body.WriteString("\n\n")
	if len(m.list.Items()) == 0 {
		body.WriteString(dim.Render("no match"))
	} else {
		body.WriteString(strings.TrimRight(m.list.View(), "\n"))
	}

	headerRight := badgeSelStyle.Render(fmt.Sprintf("%d/%d", len(m.values()), len(m.entries)))

	footer := "␣ toggle  / filter  ⏎ confirm  Esc cancel"
	if m.filtering {
		footer = "⏎ done  Esc clear"
	}

	title := breadcrumbTitle(m.parentCrumb, m.title)
	return renderFrame(m.width, m.height, title, headerRight, strings.TrimRight(body.String(), "\n"), styledFooter(footer))
}
