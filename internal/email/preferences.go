// Package email reads the e-mail report settings out of the preference store.
package email

import (
	"strconv"
	"strings"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

// Preferences is a typed view over the preference store.
type Preferences struct {
	store *prefs.Store
}

func NewPreferences(store *prefs.Store) *Preferences {
	return &Preferences{store: store}
}

// ReportInterval returns the report interval in hours. Missing or malformed
// values read as 0 (disabled).
func (p *Preferences) ReportInterval() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.store.Text(prefs.KeyReportInterval)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetReportInterval commits the interval. Listeners are notified when the
// stored value changes.
func (p *Preferences) SetReportInterval(hours int) error {
	return p.store.Set(prefs.KeyReportInterval, prefs.Text(strconv.Itoa(hours)))
}

func (p *Preferences) Config() Config {
	sec, err := ParseSecurity(p.store.Text(prefs.KeySecurity))
	if err != nil {
		sec = SecurityStartTLS
	}
	return Config{
		Formats:    p.store.Members(prefs.KeyReportFormats),
		Server:     strings.TrimSpace(p.store.Text(prefs.KeyServer)),
		Port:       strings.TrimSpace(p.store.Text(prefs.KeyPort)),
		Security:   sec,
		User:       strings.TrimSpace(p.store.Text(prefs.KeyUser)),
		Password:   p.store.Text(prefs.KeyPassword),
		Recipients: p.store.Text(prefs.KeyRecipients),
	}
}
