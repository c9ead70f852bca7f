package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/settings"
	"github.com/emaiannone/network-monitor/internal/summary"
)

// emailFormCloseMsg asks the app to leave the settings screen.
type emailFormCloseMsg struct{}

// emailFormModel is the e-mail settings screen: one row per widget of the
// controller's screen, with the widget's summary line beneath it.
//
// Choices are committed as soon as they change; text is committed when the
// user leaves insert mode.
type emailFormModel struct {
	ctrl  *settings.Controller
	store *prefs.Store
	email *email.Preferences
	loc   *i18n.Localizer

	width  int
	height int

	focus   int
	editing bool // true when editing a text field (insert mode)

	inputs map[prefs.Key]textinput.Model
	picker *multiSelectModel

	toast toast

	keymap keyMap
	help   helpOverlay
}

func newEmailFormModel(ctrl *settings.Controller, store *prefs.Store, emailPrefs *email.Preferences, loc *i18n.Localizer) *emailFormModel {
	m := &emailFormModel{
		ctrl:   ctrl,
		store:  store,
		email:  emailPrefs,
		loc:    loc,
		inputs: map[prefs.Key]textinput.Model{},
		keymap: defaultKeyMap(),
		help:   newHelpOverlay(loc.Label("E-mail reports")),
	}
	for _, w := range m.widgets() {
		if w.Kind != prefs.KindText && w.Kind != prefs.KindPassword {
			continue
		}
		in := textinput.New()
		in.CharLimit = 256
		in.Prompt = ""
		in.SetValue(store.Text(w.Key))
		in.Placeholder = placeholderFor(w.Key)
		if w.Kind == prefs.KindPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		configureSearch(&in)
		setSearchFocused(&in, false)
		m.inputs[w.Key] = in
	}
	m.setFocus(0)
	return m
}

func placeholderFor(k prefs.Key) string {
	switch k {
	case prefs.KeyRecipients:
		return "ops@example.com, noc@example.com"
	case prefs.KeyServer:
		return "smtp.example.com"
	case prefs.KeyPort:
		return prefs.DefaultPort
	case prefs.KeyUser:
		return "login name"
	}
	return ""
}

func (m *emailFormModel) widgets() []*settings.Widget {
	if s := m.ctrl.Screen(); s != nil {
		return s.Widgets()
	}
	return nil
}

func (m *emailFormModel) focused() *settings.Widget {
	ws := m.widgets()
	if m.focus < 0 || m.focus >= len(ws) {
		return nil
	}
	return ws[m.focus]
}

func (m *emailFormModel) Init() tea.Cmd { return nil }

func (m *emailFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case multiSelectCancelMsg:
		m.picker = nil
		return m, nil
	case multiSelectDoneMsg:
		m.picker = nil
		m.commit(msg.key, prefs.StringSet(msg.values...))
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, fieldW := m.columns()
		for k, in := range m.inputs {
			in.Width = fieldW
			if k == prefs.KeyPort {
				in.Width = min(8, fieldW)
			}
			m.inputs[k] = in
		}
		if m.picker != nil {
			mw, mh := pickerModalSize(msg.Width, msg.Height)
			_, _ = m.picker.Update(tea.WindowSizeMsg{Width: mw, Height: mh})
		}
		return m, nil
	case tea.KeyMsg:
		if m.picker != nil {
			model, cmd := m.picker.Update(msg)
			if pm, ok := model.(*multiSelectModel); ok {
				m.picker = pm
			}
			return m, cmd
		}

		if m.help.open {
			m.help.update(msg, m.keymap.Help)
			return m, nil
		}

		// Insert mode: route keys to the text input.
		if m.editing {
			switch msg.String() {
			case "esc":
				m.exitEdit()
				return m, nil
			case "enter":
				m.exitEdit()
				m.moveFocus(1)
				return m, nil
			}
			return m, m.updateFocusedInput(msg)
		}

		w := m.focused()
		switch {
		case key.Matches(msg, m.keymap.Esc):
			return m, func() tea.Msg { return emailFormCloseMsg{} }
		case key.Matches(msg, m.keymap.Quit):
			return m, func() tea.Msg { return requestQuitMsg{} }
		case key.Matches(msg, m.keymap.Help):
			m.help.show(m.width, m.height, m.helpKeys())
			return m, nil
		case w != nil && w.Kind == prefs.KindMultiList &&
			(key.Matches(msg, m.keymap.Confirm) || key.Matches(msg, m.keymap.Toggle) || key.Matches(msg, m.keymap.Next)):
			m.openPicker(w)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keymap.Edit), key.Matches(msg, m.keymap.Confirm):
			if m.isTextField() {
				m.enterEdit()
				return m, textinput.Blink
			}
			if key.Matches(msg, m.keymap.Confirm) {
				m.moveFocus(1)
			}
			return m, nil
		case key.Matches(msg, m.keymap.Prev), key.Matches(msg, m.keymap.Next), key.Matches(msg, m.keymap.Toggle):
			if w == nil || w.Kind != prefs.KindList {
				return m, nil
			}
			delta := 1
			if key.Matches(msg, m.keymap.Prev) {
				delta = -1
			}
			next := cycleChoice(m.store.Text(w.Key), w.Entries.Values(), delta)
			m.commit(w.Key, prefs.Text(next))
			return m, nil
		}
	}
	return m, nil
}

// cycleChoice steps through vals from cur, wrapping at both ends. An unknown
// cur counts as the first value.
func cycleChoice(cur string, vals []string, delta int) string {
	if len(vals) == 0 {
		return cur
	}
	cur = strings.TrimSpace(cur)
	idx := 0
	for i := range vals {
		if strings.TrimSpace(vals[i]) == cur {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(vals) - 1
	}
	if idx >= len(vals) {
		idx = 0
	}
	return vals[idx]
}

func (m *emailFormModel) commit(k prefs.Key, v prefs.Value) {
	ok, err := m.ctrl.Commit(k, v)
	switch {
	case err != nil:
		m.toast = toast{text: err.Error(), level: toastErr}
	case !ok:
		m.toast = toast{text: "change not applied", level: toastInfo}
	}
}

func (m *emailFormModel) openPicker(w *settings.Widget) {
	m.picker = newMultiSelectModel(w.Key, m.loc.Label("E-mail reports"), w.Title, w.Entries, m.store.Members(w.Key))
	if m.width > 0 && m.height > 0 {
		mw, mh := pickerModalSize(m.width, m.height)
		_, _ = m.picker.Update(tea.WindowSizeMsg{Width: mw, Height: mh})
	}
}

func (m *emailFormModel) moveFocus(delta int) {
	n := len(m.widgets())
	if n == 0 {
		return
	}
	pos := m.focus + delta
	if pos < 0 {
		pos = n - 1
	}
	if pos >= n {
		pos = 0
	}
	m.setFocus(pos)
}

func (m *emailFormModel) setFocus(pos int) {
	m.focus = pos
	m.editing = false

	// Blur all text inputs, then highlight the focused one without a cursor.
	for k, in := range m.inputs {
		in.Blur()
		setSearchFocused(&in, false)
		m.inputs[k] = in
	}
	if w := m.focused(); w != nil {
		if in, ok := m.inputs[w.Key]; ok {
			setSearchFocused(&in, true)
			m.inputs[w.Key] = in
		}
	}
}

func (m *emailFormModel) isTextField() bool {
	w := m.focused()
	if w == nil {
		return false
	}
	_, ok := m.inputs[w.Key]
	return ok
}

func (m *emailFormModel) enterEdit() {
	w := m.focused()
	in, ok := m.inputs[w.Key]
	if !ok {
		return
	}
	m.editing = true
	_ = in.Focus()
	m.inputs[w.Key] = in
}

// exitEdit leaves insert mode and commits the edited text.
func (m *emailFormModel) exitEdit() {
	m.editing = false
	w := m.focused()
	if w == nil {
		return
	}
	in, ok := m.inputs[w.Key]
	if !ok {
		return
	}
	in.Blur()
	v := in.Value()
	if w.Kind == prefs.KindText {
		v = strings.TrimSpace(v)
		in.SetValue(v)
	}
	m.inputs[w.Key] = in
	m.commit(w.Key, prefs.Text(v))
}

func (m *emailFormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	w := m.focused()
	if w == nil {
		return nil
	}
	in, ok := m.inputs[w.Key]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.inputs[w.Key] = in
	return cmd
}

func (m *emailFormModel) helpKeys() helpMap {
	return helpMap{
		short: []key.Binding{m.keymap.Down, m.keymap.Up, m.keymap.Prev, m.keymap.Next, m.keymap.Edit, m.keymap.Esc, m.keymap.Help, m.keymap.Quit},
		full: [][]key.Binding{
			{m.keymap.Down, m.keymap.Up},
			{m.keymap.Prev, m.keymap.Next, m.keymap.Toggle},
			{m.keymap.Edit, m.keymap.Confirm, m.keymap.Esc},
			{m.keymap.Help, m.keymap.Quit},
		},
	}
}

// columns returns the label and field widths.
func (m *emailFormModel) columns() (labelW, fieldW int) {
	labelW = 12
	for _, w := range m.widgets() {
		labelW = max(labelW, lipgloss.Width(w.Title)+2)
	}
	labelW = min(labelW, 26)
	innerW := max(0, m.width-2)
	fieldW = max(10, innerW-labelW-1)
	return labelW, fieldW
}

func (m *emailFormModel) View() string {
	if m.picker != nil {
		return placeCentered(m.width, m.height, m.picker.View())
	}
	if m.help.open {
		return m.help.view(m.width, m.height)
	}

	innerW := max(0, m.width-2)
	innerH := max(0, m.height-2)
	footerH := 1
	contentH := max(0, innerH-4-1-footerH)
	labelW, fieldW := m.columns()

	label := func(s string, focused bool) string {
		padded := padVisible(s+":", labelW)
		if focused {
			return headerStyle.Render(padded)
		}
		return padded
	}

	seg := func(cur, val, text string, focused bool) string {
		if strings.TrimSpace(cur) == strings.TrimSpace(val) {
			box := "[" + text + "]"
			if focused {
				return segFocusedStyle.Render(box)
			}
			return checkedStyle.Render(box)
		}
		return tabInactiveStyle.Render(text)
	}

	indent := strings.Repeat(" ", labelW+1)
	var lines []string
	focusLine := 0
	for i, w := range m.widgets() {
		switch w.Key {
		case prefs.KeyReportInterval:
			lines = append(lines, formSection(m.loc.Label("Reports"), innerW))
		case prefs.KeyServer:
			lines = append(lines, formSection(m.loc.Label("SMTP"), innerW))
		}
		focused := i == m.focus
		if focused {
			focusLine = len(lines)
		}
		switch w.Kind {
		case prefs.KindText, prefs.KindPassword:
			in := m.inputs[w.Key]
			lines = append(lines, label(w.Title, focused)+" "+underlineInput(in, focused, in.Width))
		case prefs.KindList:
			cur := m.store.Text(w.Key)
			rows := packSegments(w.Entries, fieldW, func(e prefs.Entry) string { return seg(cur, e.Value, e.Label, focused) })
			for j, r := range rows {
				if j == 0 {
					lines = append(lines, label(w.Title, focused)+" "+r)
				} else {
					lines = append(lines, indent+r)
				}
			}
		case prefs.KindMultiList:
			text, err := summary.Labels(m.store.Members(w.Key), w.Entries)
			if err != nil {
				text = m.store.Text(w.Key)
			}
			if text == "" {
				text = "-"
			}
			lines = append(lines, label(w.Title, focused)+" "+underlineText(text, focused, fieldW))
		}
		if w.HasSummary() {
			lines = append(lines, indent+dim.Render(truncateTail(w.Summary, fieldW)))
		}
	}

	visibleH := max(1, contentH)
	if !m.toast.empty() {
		visibleH = max(1, visibleH-1)
	}
	start, end := formScrollWindow(len(lines), visibleH, focusLine)
	content := append([]string(nil), lines[start:end]...)
	for len(content) < visibleH {
		content = append(content, "")
	}
	if !m.toast.empty() {
		content = append(content, renderToast(m.toast))
	}

	fieldPos := fmt.Sprintf("%d/%d", m.focus+1, len(m.widgets()))
	footer := dim.Render(fieldPos) + "  " + styledFooter("j/k move  h/l choice  i edit  ⏎ open  Esc back  ? help")
	if m.editing {
		footer = dim.Render(fieldPos) + "  " + headerStyle.Render("INSERT") + "  " + styledFooter("⏎ save  Esc done")
	}

	cfg := m.email.Config()
	headLeft := headerStyle.Render(m.loc.Label("E-mail reports"))
	headRight := statusDot(m.email.ReportInterval() > 0, cfg.IsValid())
	return renderMainTabBox(m.width, m.height, localTabs(m.loc.Label), tabEmail, headLeft, headRight, strings.Join(content, "\n"), footer)
}

// packSegments lays the rendered entries out on as many lines as width needs.
func packSegments(entries prefs.Entries, width int, render func(prefs.Entry) string) []string {
	var out []string
	cur := ""
	for _, e := range entries {
		s := render(e)
		switch {
		case cur == "":
			cur = s
		case width > 0 && lipgloss.Width(cur)+2+lipgloss.Width(s) > width:
			out = append(out, cur)
			cur = s
		default:
			cur += "  " + s
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
