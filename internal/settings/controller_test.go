package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/summary"
)

type dialogSpy struct {
	reqs []InfoDialogRequest
}

func (d *dialogSpy) RequestInfoDialog(req InfoDialogRequest) { d.reqs = append(d.reqs, req) }

func newController(t *testing.T, lang string) (*Controller, *prefs.Store, *dialogSpy) {
	t.Helper()
	store := prefs.NewMemoryStore()
	spy := &dialogSpy{}
	c := New(store, email.NewPreferences(store), i18n.New(lang), spy, nil)
	return c, store, spy
}

func set(t *testing.T, store *prefs.Store, key prefs.Key, v prefs.Value) {
	t.Helper()
	require.NoError(t, store.Set(key, v))
}

func fillComplete(t *testing.T, store *prefs.Store) {
	set(t, store, prefs.KeyServer, prefs.Text("smtp.example.com"))
	set(t, store, prefs.KeyUser, prefs.Text("monitor"))
	set(t, store, prefs.KeyRecipients, prefs.Text("ops@example.com"))
	set(t, store, prefs.KeyReportFormats, prefs.StringSet("html", "csv"))
}

func TestOnShowDisplaysEverySummary(t *testing.T) {
	c, store, _ := newController(t, "en")
	fillComplete(t, store)
	set(t, store, prefs.KeyReportInterval, prefs.Text("24"))

	require.NoError(t, c.OnShow())
	assert.Equal(t, StateShown, c.State())

	want := map[prefs.Key]string{
		prefs.KeyReportInterval: "Send reports: Every day",
		prefs.KeyReportFormats:  "Attach: CSV, HTML",
		prefs.KeyRecipients:     "Send to: ops@example.com",
		prefs.KeyServer:         "SMTP server: smtp.example.com",
		prefs.KeyPort:           "Port: 587",
		prefs.KeySecurity:       "Security: STARTTLS",
		prefs.KeyUser:           "Log in as: monitor",
	}
	for key, s := range want {
		w := c.Screen().Widget(key)
		require.NotNil(t, w, key)
		assert.Equal(t, s, w.Summary, key)
	}
	assert.Empty(t, c.Screen().Widget(prefs.KeyPassword).Summary)
}

func TestOnShowLocalizesTitlesAndEntries(t *testing.T) {
	c, _, _ := newController(t, "fr")
	require.NoError(t, c.OnShow())

	w := c.Screen().Widget(prefs.KeyReportInterval)
	assert.Equal(t, "Fréquence des rapports", w.Title)
	assert.Equal(t, "Envoyer les rapports : Désactivé", w.Summary)
}

func TestSummaryFollowsChanges(t *testing.T) {
	c, store, _ := newController(t, "en")
	require.NoError(t, c.OnShow())

	set(t, store, prefs.KeyServer, prefs.Text("mail.example.org"))
	assert.Equal(t, "SMTP server: mail.example.org", c.Screen().Widget(prefs.KeyServer).Summary)

	before := c.Screen().Widget(prefs.KeyServer).Summary
	c.PreferenceChanged(prefs.KeyServer)
	c.PreferenceChanged(prefs.KeyServer)
	assert.Equal(t, before, c.Screen().Widget(prefs.KeyServer).Summary)
	require.NoError(t, c.Err())
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	c, store, _ := newController(t, "en")
	require.NoError(t, c.OnShow())

	c.PreferenceChanged("theme")
	set(t, store, prefs.KeyPassword, prefs.Text("secret"))
	assert.NoError(t, c.Err())
	assert.Empty(t, c.Screen().Widget(prefs.KeyPassword).Summary)
}

func TestFormatsInterceptAndListenerAgree(t *testing.T) {
	c, store, _ := newController(t, "en")
	require.NoError(t, c.OnShow())

	w := c.Screen().Widget(prefs.KeyReportFormats)
	proposed := prefs.StringSet("kml", "csv")
	require.True(t, w.ProposeChange(proposed))
	fromIntercept := w.Summary
	assert.Equal(t, "Attach: CSV, KML", fromIntercept)

	ok, err := c.Commit(prefs.KeyReportFormats, proposed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fromIntercept, w.Summary)
	assert.Equal(t, []string{"csv", "kml"}, store.Members(prefs.KeyReportFormats))
}

func TestUnknownFormatIsFatalOnShow(t *testing.T) {
	c, store, _ := newController(t, "en")
	set(t, store, prefs.KeyReportFormats, prefs.StringSet("csv", "pdf"))

	err := c.OnShow()
	require.Error(t, err)
	var uv *summary.UnknownValueError
	require.True(t, errors.As(err, &uv))
	assert.Equal(t, "pdf", uv.Value)
}

func TestUnknownFormatIsFatalOnChange(t *testing.T) {
	c, store, _ := newController(t, "en")
	require.NoError(t, c.OnShow())

	set(t, store, prefs.KeyReportFormats, prefs.StringSet("pdf"))
	var uv *summary.UnknownValueError
	require.True(t, errors.As(c.Err(), &uv))
}

func TestOnPauseDisablesIncompleteReports(t *testing.T) {
	c, store, spy := newController(t, "en")
	set(t, store, prefs.KeyReportInterval, prefs.Text("6"))
	require.NoError(t, c.OnShow())

	require.NoError(t, c.OnPause())
	c.OnHide()

	assert.Equal(t, "0", store.Text(prefs.KeyReportInterval))
	require.Len(t, spy.reqs, 1)
	assert.Equal(t, "Missing e-mail settings", spy.reqs[0].Title)
	assert.Equal(t, i18n.New("en").Text(i18n.MissingSettingsMessage), spy.reqs[0].Message)
	assert.Equal(t, "Send reports: Disabled", c.Screen().Widget(prefs.KeyReportInterval).Summary)
}

func TestOnPauseLeavesDisabledReportsAlone(t *testing.T) {
	c, store, spy := newController(t, "en")
	require.NoError(t, c.OnShow())
	require.NoError(t, c.OnPause())
	c.OnHide()

	assert.Equal(t, "0", store.Text(prefs.KeyReportInterval))
	assert.Empty(t, spy.reqs)
}

func TestOnPauseLeavesValidReportsAlone(t *testing.T) {
	c, store, spy := newController(t, "en")
	fillComplete(t, store)
	set(t, store, prefs.KeyReportInterval, prefs.Text("168"))
	require.NoError(t, c.OnShow())

	require.NoError(t, c.OnPause())
	c.OnHide()

	assert.Equal(t, "168", store.Text(prefs.KeyReportInterval))
	assert.Empty(t, spy.reqs)
}

func TestHiddenControllerStopsListening(t *testing.T) {
	c, store, spy := newController(t, "en")
	require.NoError(t, c.OnShow())
	c.OnHide()
	assert.Equal(t, StateHidden, c.State())

	set(t, store, prefs.KeyServer, prefs.Text("late.example.com"))
	assert.Equal(t, "SMTP server: ", c.Screen().Widget(prefs.KeyServer).Summary)

	set(t, store, prefs.KeyReportInterval, prefs.Text("1"))
	require.NoError(t, c.OnPause())
	assert.Empty(t, spy.reqs)
	assert.Equal(t, "1", store.Text(prefs.KeyReportInterval))
}

func TestCommitRejectsUnknownKey(t *testing.T) {
	c, _, _ := newController(t, "en")
	require.NoError(t, c.OnShow())
	_, err := c.Commit("theme", prefs.Text("dark"))
	assert.Error(t, err)
}

func TestFailedCommitKeepsStoredSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "netmon")
	store, err := prefs.Open(filepath.Join(dir, "email.toml"))
	require.NoError(t, err)
	c := New(store, email.NewPreferences(store), i18n.New("en"), nil, nil)
	require.NoError(t, c.OnShow())

	// A regular file where the directory was makes the next save fail.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, nil, 0o600))

	ok, err := c.Commit(prefs.KeyReportFormats, prefs.StringSet("csv", "kml"))
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"csv"}, store.Members(prefs.KeyReportFormats))
	assert.Equal(t, "Attach: CSV", c.Screen().Widget(prefs.KeyReportFormats).Summary)
	assert.NoError(t, c.Err())
}

func TestCommitNeedsShownScreen(t *testing.T) {
	c, store, _ := newController(t, "en")
	_, err := c.Commit(prefs.KeyServer, prefs.Text("early.example.com"))
	require.ErrorIs(t, err, ErrHidden)

	require.NoError(t, c.OnShow())
	c.OnHide()
	_, err = c.Commit(prefs.KeyReportFormats, prefs.StringSet("kml"))
	require.ErrorIs(t, err, ErrHidden)
	assert.Equal(t, []string{"csv"}, store.Members(prefs.KeyReportFormats))
	assert.Equal(t, "Attach: CSV", c.Screen().Widget(prefs.KeyReportFormats).Summary)
	assert.Empty(t, store.Text(prefs.KeyServer))
}
