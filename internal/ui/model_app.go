package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/settings"
	"github.com/emaiannone/network-monitor/internal/summary"
)

type screen int

const (
	screenHome screen = iota
	screenEmail
)

type requestQuitMsg struct{}

// infoDialogMsg carries a dialog request from the settings controller to
// the home screen.
type infoDialogMsg struct {
	req settings.InfoDialogRequest
}

type toastDismissMsg struct {
	token int
}

// dialogQueue collects the requests made while the controller runs inside
// Update; they are turned into messages once Update returns.
type dialogQueue struct {
	reqs []settings.InfoDialogRequest
}

func (q *dialogQueue) RequestInfoDialog(req settings.InfoDialogRequest) {
	q.reqs = append(q.reqs, req)
}

func (q *dialogQueue) take() []settings.InfoDialogRequest {
	reqs := q.reqs
	q.reqs = nil
	return reqs
}

func (q *dialogQueue) cmd() tea.Cmd {
	reqs := q.take()
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, r := range reqs {
		cmds = append(cmds, func() tea.Msg { return infoDialogMsg{req: r} })
	}
	return tea.Batch(cmds...)
}

type appModel struct {
	opts Options

	width  int
	height int

	screen screen
	home   *homeModel
	form   *emailFormModel

	ctrl    *settings.Controller
	email   *email.Preferences
	dialogs *dialogQueue

	confirmQuit bool
	toastToken  int

	quitting    bool
	err         error
	undelivered []settings.InfoDialogRequest
}

func newAppModel(opts Options) *appModel {
	if opts.Localizer == nil {
		opts.Localizer = i18n.New(opts.Config.UI.Language)
	}
	emailPrefs := email.NewPreferences(opts.Store)
	q := &dialogQueue{}
	return &appModel{
		opts:    opts,
		screen:  screenHome,
		home:    newHomeModel(opts.Store, emailPrefs, opts.Localizer),
		ctrl:    settings.New(opts.Store, emailPrefs, opts.Localizer, q, opts.Logger),
		email:   emailPrefs,
		dialogs: q,
	}
}

func (m *appModel) Init() tea.Cmd {
	return m.home.Init()
}

func (m *appModel) applyWindowSize(ws tea.WindowSizeMsg) {
	m.width = ws.Width
	m.height = ws.Height
	_, _ = m.home.Update(ws)
	if m.form != nil {
		_, _ = m.form.Update(ws)
	}
}

func (m *appModel) collectToastKey() string {
	var b strings.Builder
	if !m.home.toast.empty() {
		b.WriteString(m.home.toast.text)
	}
	if m.form != nil && !m.form.toast.empty() {
		b.WriteString("|")
		b.WriteString(m.form.toast.text)
	}
	return b.String()
}

func (m *appModel) clearToasts() {
	m.home.toast = toast{}
	if m.form != nil {
		m.form.toast = toast{}
	}
}

func (m *appModel) maxToastLevel() toastLevel {
	lvl := m.home.toast.level
	if m.form != nil && !m.form.toast.empty() && m.form.toast.level > lvl {
		lvl = m.form.toast.level
	}
	return lvl
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Auto-dismiss toasts.
	if tdm, ok := msg.(toastDismissMsg); ok {
		if tdm.token == m.toastToken {
			m.clearToasts()
		}
		return m, nil
	}

	prev := m.collectToastKey()
	result, cmd := m.doUpdate(msg)

	// A summary that cannot be rendered means the stored value and the
	// widget disagree; stop instead of showing stale text.
	if err := m.ctrl.Err(); err != nil && m.err == nil {
		m.err = err
		return result, tea.Quit
	}

	cur := m.collectToastKey()
	if cur != "" && cur != prev {
		m.toastToken++
		token := m.toastToken
		dismiss := tea.Tick(toastDuration(m.maxToastLevel()), func(time.Time) tea.Msg {
			return toastDismissMsg{token: token}
		})
		return result, tea.Batch(cmd, dismiss)
	}
	return result, cmd
}

func (m *appModel) doUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.applyWindowSize(msg)
		return m, nil
	case openEmailMsg:
		return m, m.openEmail()
	case emailFormCloseMsg:
		return m, m.leaveEmail()
	case infoDialogMsg:
		_, _ = m.home.Update(msg)
		return m, nil
	case requestQuitMsg:
		if m.opts.Config.UI.ConfirmQuit {
			m.confirmQuit = true
			return m, nil
		}
		return m, m.quit()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.confirmQuit {
			switch msg.String() {
			case "y", "Y", "enter":
				m.confirmQuit = false
				return m, m.quit()
			case "n", "N", "esc":
				m.confirmQuit = false
			}
			return m, nil
		}
	}

	switch m.screen {
	case screenEmail:
		model, cmd := m.form.Update(msg)
		if fm, ok := model.(*emailFormModel); ok {
			m.form = fm
		}
		return m, cmd
	default:
		model, cmd := m.home.Update(msg)
		if hm, ok := model.(*homeModel); ok {
			m.home = hm
		}
		return m, cmd
	}
}

func (m *appModel) openEmail() tea.Cmd {
	if err := m.ctrl.OnShow(); err != nil {
		var uv *summary.UnknownValueError
		if errors.As(err, &uv) {
			m.err = err
			return tea.Quit
		}
		m.home.toast = toast{text: err.Error(), level: toastErr}
		return nil
	}
	m.form = newEmailFormModel(m.ctrl, m.opts.Store, m.email, m.opts.Localizer)
	if m.width > 0 && m.height > 0 {
		_, _ = m.form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	m.screen = screenEmail
	return nil
}

// leaveEmail closes the settings screen and hands any dialog request to the
// home screen.
func (m *appModel) leaveEmail() tea.Cmd {
	m.closeEmail()
	return m.dialogs.cmd()
}

// closeEmail pauses and hides the settings screen.
func (m *appModel) closeEmail() {
	if m.form == nil {
		return
	}
	if m.form.editing {
		m.form.exitEdit()
	}
	err := m.ctrl.OnPause()
	m.ctrl.OnHide()
	m.form = nil
	m.screen = screenHome
	if err != nil {
		m.home.toast = toast{text: err.Error(), level: toastErr}
	}
}

func (m *appModel) quit() tea.Cmd {
	m.closeEmail()
	m.undelivered = append(m.undelivered, m.dialogs.take()...)
	m.quitting = true
	return tea.Quit
}

func (m *appModel) View() string {
	if m.confirmQuit {
		return renderQuitConfirm(m.width, m.height)
	}
	if m.screen == screenEmail && m.form != nil {
		return m.form.View()
	}
	return m.home.View()
}

func (m *appModel) IsQuitting() bool { return m.quitting }
func (m *appModel) Err() error       { return m.err }

// Undelivered returns dialog requests made while quitting.
func (m *appModel) Undelivered() []settings.InfoDialogRequest { return m.undelivered }
