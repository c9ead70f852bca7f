// Package settings drives the e-mail report settings screen: it keeps the
// summary lines in sync with the preference store and disables reports when
// the screen is left with incomplete settings.
package settings

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/summary"
)

type State int

const (
	StateHidden State = iota
	StateShown
)

func (s State) String() string {
	if s == StateShown {
		return "shown"
	}
	return "hidden"
}

type Controller struct {
	store   *prefs.Store
	email   *email.Preferences
	loc     *i18n.Localizer
	dialogs DialogRequester
	log     *slog.Logger

	schema prefs.Schema
	screen *Screen
	state  State
	err    error
}

// New returns a hidden controller. A nil logger discards.
func New(store *prefs.Store, emailPrefs *email.Preferences, loc *i18n.Localizer, dialogs DialogRequester, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if loc == nil {
		loc = i18n.New("")
	}
	return &Controller{
		store:   store,
		email:   emailPrefs,
		loc:     loc,
		dialogs: dialogs,
		log:     logger.With("component", "email-settings"),
		schema:  prefs.EmailSchema(),
	}
}

func (c *Controller) State() State { return c.state }

// Screen returns the widget set loaded by the last OnShow, or nil.
func (c *Controller) Screen() *Screen { return c.screen }

// Err returns the first fatal error met while handling change
// notifications. The host must stop once it is non-nil.
func (c *Controller) Err() error { return c.err }

// OnShow applies the defaults, loads the widgets with their summaries and
// starts listening for changes. Calling it on a shown screen is a no-op.
func (c *Controller) OnShow() error {
	if c.state == StateShown {
		return nil
	}
	added, err := c.store.SetDefaults(c.schema)
	if err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	if added > 0 {
		c.log.Debug("applied defaults", "count", added)
	}

	c.screen = c.loadScreen()
	for _, w := range c.screen.widgets {
		if !w.HasSummary() {
			continue
		}
		v, _ := c.store.Get(w.Key)
		if err := c.setSummary(w, v); err != nil {
			return err
		}
	}

	c.store.Subscribe(c)
	if w := c.screen.Widget(prefs.KeyReportFormats); w != nil {
		w.SetOnPreferenceChange(func(proposed prefs.Value) bool {
			if err := c.setSummary(w, proposed); err != nil {
				c.fail(err)
			}
			return true
		})
	}

	c.state = StateShown
	c.log.Debug("screen shown")
	return nil
}

// OnPause runs when the screen loses the foreground. Enabled reports with an
// invalid e-mail configuration are switched off and the user is told why.
func (c *Controller) OnPause() error {
	if c.state != StateShown {
		return nil
	}
	hours := c.email.ReportInterval()
	if hours <= 0 {
		return nil
	}
	invalid := c.email.Config().Validate()
	if invalid == nil {
		return nil
	}
	c.log.Debug("disabling e-mail reports", "interval", hours, "reason", invalid)

	if err := c.email.SetReportInterval(0); err != nil {
		return fmt.Errorf("disable reports: %w", err)
	}
	if c.dialogs != nil {
		c.dialogs.RequestInfoDialog(InfoDialogRequest{
			Title:   c.loc.Text(i18n.MissingSettingsTitle),
			Message: c.loc.Text(i18n.MissingSettingsMessage),
		})
	}
	return nil
}

// OnHide stops listening for changes.
func (c *Controller) OnHide() {
	if c.state != StateShown {
		return
	}
	c.store.Unsubscribe(c)
	c.state = StateHidden
	c.log.Debug("screen hidden")
}

// PreferenceChanged refreshes the summary of key. Keys without a summary
// line are ignored.
func (c *Controller) PreferenceChanged(key prefs.Key) {
	w := c.screen.Widget(key)
	if w == nil || !w.HasSummary() {
		c.log.Debug("ignoring change", "key", key)
		return
	}
	v, _ := c.store.Get(key)
	if err := c.setSummary(w, v); err != nil {
		c.fail(err)
	}
}

// ErrHidden is returned by Commit when the screen is not shown.
var ErrHidden = errors.New("settings screen is not shown")

// Commit writes v for key the way the widget would: the change hook runs
// first and may reject it, then set values are put in entry order. When the
// write fails the summary is reloaded from the store.
func (c *Controller) Commit(key prefs.Key, v prefs.Value) (bool, error) {
	if c.state != StateShown {
		return false, ErrHidden
	}
	def, ok := c.schema.Lookup(key)
	if !ok {
		return false, fmt.Errorf("unknown preference %q", key)
	}
	if w := c.screen.Widget(key); w != nil && !w.ProposeChange(v) {
		return false, nil
	}
	if err := c.store.Set(key, def.Normalize(v)); err != nil {
		c.PreferenceChanged(key)
		return false, err
	}
	return true, nil
}

func (c *Controller) loadScreen() *Screen {
	s := &Screen{widgets: make([]*Widget, 0, len(c.schema))}
	for _, def := range c.schema {
		var entries prefs.Entries
		if len(def.Entries) > 0 {
			entries = make(prefs.Entries, len(def.Entries))
			for i, e := range def.Entries {
				entries[i] = prefs.Entry{Value: e.Value, Label: c.loc.Label(e.Label)}
			}
		}
		s.widgets = append(s.widgets, &Widget{
			Key:       def.Key,
			Kind:      def.Kind,
			Title:     c.loc.Label(def.Title),
			Entries:   entries,
			summaryID: def.Summary,
		})
	}
	return s
}

func (c *Controller) setSummary(w *Widget, v prefs.Value) error {
	s, ok, err := summary.Format(w.Kind, v, w.Entries)
	if err != nil {
		return fmt.Errorf("summary of %s: %w", w.Key, err)
	}
	if !ok {
		return nil
	}
	w.Summary = c.loc.Summary(w.summaryID, s)
	return nil
}

func (c *Controller) fail(err error) {
	c.log.Error("summary update failed", "err", err)
	if c.err == nil {
		c.err = err
	}
}
