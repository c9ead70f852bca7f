package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/settings"
	"github.com/emaiannone/network-monitor/internal/summary"
)

type openEmailMsg struct{}

// homeModel is the monitor overview. It shows the report status and hosts
// the info dialogs requested by the settings screen.
type homeModel struct {
	store *prefs.Store
	email *email.Preferences
	loc   *i18n.Localizer

	schema prefs.Schema

	width  int
	height int

	dialogs []settings.InfoDialogRequest

	toast toast

	keymap keyMap
	help   helpOverlay
}

func newHomeModel(store *prefs.Store, emailPrefs *email.Preferences, loc *i18n.Localizer) *homeModel {
	return &homeModel{
		store:  store,
		email:  emailPrefs,
		loc:    loc,
		schema: prefs.EmailSchema(),
		keymap: defaultKeyMap(),
		help:   newHelpOverlay(loc.Label("Monitor")),
	}
}

func (m *homeModel) Init() tea.Cmd { return nil }

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case infoDialogMsg:
		m.dialogs = append(m.dialogs, msg.req)
		return m, nil
	case tea.KeyMsg:
		if len(m.dialogs) > 0 {
			switch msg.String() {
			case "enter", "esc", " ":
				m.dialogs = m.dialogs[1:]
			}
			return m, nil
		}

		if m.help.open {
			m.help.update(msg, m.keymap.Help)
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keymap.Open), key.Matches(msg, m.keymap.SwitchTab):
			return m, func() tea.Msg { return openEmailMsg{} }
		case key.Matches(msg, m.keymap.Help):
			m.help.show(m.width, m.height, m.helpKeys())
			return m, nil
		case key.Matches(msg, m.keymap.Quit):
			return m, func() tea.Msg { return requestQuitMsg{} }
		}
	}
	return m, nil
}

func (m *homeModel) helpKeys() helpMap {
	return helpMap{
		short: []key.Binding{m.keymap.Open, m.keymap.SwitchTab, m.keymap.Help, m.keymap.Quit},
		full:  [][]key.Binding{{m.keymap.Open, m.keymap.SwitchTab}, {m.keymap.Help, m.keymap.Quit}},
	}
}

// summaryLine renders the summary of key the same way the settings screen
// does.
func (m *homeModel) summaryLine(k prefs.Key) string {
	def, ok := m.schema.Lookup(k)
	if !ok || def.Summary == "" {
		return ""
	}
	entries := make(prefs.Entries, len(def.Entries))
	for i, e := range def.Entries {
		entries[i] = prefs.Entry{Value: e.Value, Label: m.loc.Label(e.Label)}
	}
	v, _ := m.store.Get(k)
	s, ok, err := summary.Format(def.Kind, v, entries)
	if err != nil {
		return statusErr.Render(err.Error())
	}
	if !ok {
		return ""
	}
	return m.loc.Summary(def.Summary, s)
}

func (m *homeModel) View() string {
	if len(m.dialogs) > 0 {
		return renderInfoDialog(m.width, m.height, m.dialogs[0])
	}
	if m.help.open {
		return m.help.view(m.width, m.height)
	}

	innerW := max(0, m.width-2)
	enabled := m.email.ReportInterval() > 0
	cfg := m.email.Config()
	problems := cfg.Validate()

	lines := []string{formSection(m.loc.Label("E-mail reports"), innerW)}
	status := m.loc.Text(i18n.ReportsDisabled)
	if enabled {
		status = m.loc.Text(i18n.ReportsEnabled)
	}
	lines = append(lines, statusDot(enabled, problems == nil)+" "+status)
	for _, k := range []prefs.Key{prefs.KeyReportInterval, prefs.KeyReportFormats, prefs.KeyRecipients} {
		if s := m.summaryLine(k); s != "" {
			lines = append(lines, "  "+s)
		}
	}
	if problems != nil {
		lines = append(lines, "")
		for _, p := range strings.Split(problems.Error(), "\n") {
			lines = append(lines, "  "+statusWarn.Render("! ")+dim.Render(p))
		}
	}
	if !m.toast.empty() {
		lines = append(lines, "", renderToast(m.toast))
	}

	footer := styledFooter("e settings  ⇥ switch tab  ? help  q quit")
	headLeft := headerStyle.Render("netmon")
	return renderMainTabBox(m.width, m.height, localTabs(m.loc.Label), tabMonitor, headLeft, "", strings.Join(lines, "\n"), footer)
}
