package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emaiannone/network-monitor/internal/config"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
)

func newTestApp(t *testing.T) (*appModel, *prefs.Store) {
	t.Helper()
	store := prefs.NewMemoryStore()
	m := newAppModel(Options{
		Config:    config.DefaultConfig(),
		Store:     store,
		Localizer: i18n.New("en"),
	})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, store
}

// drain runs cmd and every command batched inside it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasMsg[T any](msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			return true
		}
	}
	return false
}

func TestLeavingIncompleteSettingsShowsDialog(t *testing.T) {
	m, store := newTestApp(t)
	require.NoError(t, store.Set(prefs.KeyReportInterval, prefs.Text("6")))

	_, cmd := m.Update(openEmailMsg{})
	assert.Nil(t, drain(cmd))
	require.Equal(t, screenEmail, m.screen)

	_, cmd = m.Update(emailFormCloseMsg{})
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	require.True(t, hasMsg[infoDialogMsg](msgs))
	assert.Equal(t, screenHome, m.screen)
	assert.Equal(t, "0", store.Text(prefs.KeyReportInterval))

	_, _ = m.Update(msgs[0])
	require.Len(t, m.home.dialogs, 1)
	assert.Equal(t, "Missing e-mail settings", m.home.dialogs[0].Title)

	_, _ = m.Update(keyPress("enter"))
	assert.Empty(t, m.home.dialogs)
}

func TestLeavingDisabledSettingsIsSilent(t *testing.T) {
	m, store := newTestApp(t)

	_, _ = m.Update(openEmailMsg{})
	_, cmd := m.Update(keyPress("esc"))
	msgs := drain(cmd)
	require.True(t, hasMsg[emailFormCloseMsg](msgs))

	_, cmd = m.Update(emailFormCloseMsg{})
	assert.False(t, hasMsg[infoDialogMsg](drain(cmd)))
	assert.Equal(t, "0", store.Text(prefs.KeyReportInterval))
	assert.Empty(t, m.home.dialogs)
}

func TestUnknownStoredFormatStopsTheProgram(t *testing.T) {
	m, store := newTestApp(t)
	require.NoError(t, store.Set(prefs.KeyReportFormats, prefs.StringSet("pdf")))

	_, cmd := m.Update(openEmailMsg{})
	assert.True(t, hasMsg[tea.QuitMsg](drain(cmd)))
	require.Error(t, m.Err())
	assert.Equal(t, screenHome, m.screen)
}

func TestQuitFromSettingsKeepsDialog(t *testing.T) {
	m, store := newTestApp(t)
	require.NoError(t, store.Set(prefs.KeyReportInterval, prefs.Text("24")))

	_, _ = m.Update(openEmailMsg{})
	_, cmd := m.Update(keyPress("ctrl+c"))
	assert.True(t, hasMsg[tea.QuitMsg](drain(cmd)))

	assert.True(t, m.IsQuitting())
	require.Len(t, m.Undelivered(), 1)
	assert.Equal(t, "0", store.Text(prefs.KeyReportInterval))
}

func TestConfirmQuit(t *testing.T) {
	m, _ := newTestApp(t)
	m.opts.Config.UI.ConfirmQuit = true

	_, cmd := m.Update(keyPress("q"))
	msgs := drain(cmd)
	require.True(t, hasMsg[requestQuitMsg](msgs))
	_, _ = m.Update(msgs[0])
	require.True(t, m.confirmQuit)

	_, _ = m.Update(keyPress("n"))
	assert.False(t, m.confirmQuit)
	assert.False(t, m.IsQuitting())

	_, _ = m.Update(requestQuitMsg{})
	_, cmd = m.Update(keyPress("y"))
	assert.True(t, hasMsg[tea.QuitMsg](drain(cmd)))
	assert.True(t, m.IsQuitting())
}

func TestTextFieldCommitsOnLeavingInsertMode(t *testing.T) {
	m, store := newTestApp(t)
	_, _ = m.Update(openEmailMsg{})

	for i, w := range m.form.widgets() {
		if w.Key == prefs.KeyServer {
			m.form.setFocus(i)
		}
	}
	_, _ = m.Update(keyPress("i"))
	require.True(t, m.form.editing)
	_, _ = m.Update(keyPress("mail.example.org"))
	assert.Empty(t, store.Text(prefs.KeyServer))

	_, _ = m.Update(keyPress("esc"))
	assert.False(t, m.form.editing)
	assert.Equal(t, "mail.example.org", store.Text(prefs.KeyServer))
	assert.Equal(t, "SMTP server: mail.example.org", m.ctrl.Screen().Widget(prefs.KeyServer).Summary)
}

func TestChoiceCyclesAndCommits(t *testing.T) {
	m, store := newTestApp(t)
	_, _ = m.Update(openEmailMsg{})

	for i, w := range m.form.widgets() {
		if w.Key == prefs.KeySecurity {
			m.form.setFocus(i)
		}
	}
	before := store.Text(prefs.KeySecurity)
	_, _ = m.Update(keyPress("l"))
	assert.NotEqual(t, before, store.Text(prefs.KeySecurity))
	_, _ = m.Update(keyPress("h"))
	assert.Equal(t, before, store.Text(prefs.KeySecurity))
}

func TestCycleChoice(t *testing.T) {
	vals := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycleChoice("a", vals, 1))
	assert.Equal(t, "a", cycleChoice("c", vals, 1))
	assert.Equal(t, "c", cycleChoice("a", vals, -1))
	assert.Equal(t, "b", cycleChoice("zzz", vals, 1))
	assert.Equal(t, "x", cycleChoice("x", nil, 1))
}

func TestPackSegmentsWraps(t *testing.T) {
	entries := prefs.Entries{{Value: "a", Label: "aaaa"}, {Value: "b", Label: "bbbb"}, {Value: "c", Label: "cccc"}}
	plain := func(e prefs.Entry) string { return e.Label }

	assert.Equal(t, []string{"aaaa  bbbb  cccc"}, packSegments(entries, 40, plain))
	assert.Equal(t, []string{"aaaa  bbbb", "cccc"}, packSegments(entries, 10, plain))
	assert.Nil(t, packSegments(nil, 10, plain))
}

func focusKey(m *appModel, k prefs.Key) {
	for i, w := range m.form.widgets() {
		if w.Key == k {
			m.form.setFocus(i)
		}
	}
}

func TestPickerCommitsInEntryOrder(t *testing.T) {
	m, store := newTestApp(t)
	_, _ = m.Update(openEmailMsg{})
	focusKey(m, prefs.KeyReportFormats)

	_, _ = m.Update(keyPress("enter"))
	require.NotNil(t, m.form.picker)

	// csv, html, excel, kml
	for range 3 {
		_, _ = m.Update(keyPress("j"))
	}
	_, _ = m.Update(keyPress(" "))
	assert.Equal(t, []string{"csv"}, store.Members(prefs.KeyReportFormats))

	_, cmd := m.Update(keyPress("enter"))
	msgs := drain(cmd)
	require.True(t, hasMsg[multiSelectDoneMsg](msgs))
	for _, msg := range msgs {
		_, _ = m.Update(msg)
	}

	assert.Nil(t, m.form.picker)
	assert.Equal(t, []string{"csv", "kml"}, store.Members(prefs.KeyReportFormats))
	assert.Equal(t, "Attach: CSV, KML", m.ctrl.Screen().Widget(prefs.KeyReportFormats).Summary)
}

func TestPickerCancelCommitsNothing(t *testing.T) {
	m, store := newTestApp(t)
	_, _ = m.Update(openEmailMsg{})
	focusKey(m, prefs.KeyReportFormats)

	_, _ = m.Update(keyPress("enter"))
	require.NotNil(t, m.form.picker)
	_, _ = m.Update(keyPress(" "))

	_, cmd := m.Update(keyPress("esc"))
	msgs := drain(cmd)
	require.True(t, hasMsg[multiSelectCancelMsg](msgs))
	for _, msg := range msgs {
		_, _ = m.Update(msg)
	}

	assert.Nil(t, m.form.picker)
	assert.Equal(t, []string{"csv"}, store.Members(prefs.KeyReportFormats))
	assert.Equal(t, "Attach: CSV", m.ctrl.Screen().Widget(prefs.KeyReportFormats).Summary)
	assert.Equal(t, screenEmail, m.screen)
}
