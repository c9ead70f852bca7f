package settings

import "github.com/emaiannone/network-monitor/internal/prefs"

// Widget is the view state of one preference row: localized title and
// entries, and the summary line shown under it.
type Widget struct {
	Key     prefs.Key
	Kind    prefs.Kind
	Title   string
	Entries prefs.Entries
	Summary string

	summaryID string
	onChange  func(proposed prefs.Value) bool
}

// SetOnPreferenceChange installs the hook run with the proposed value before
// it is committed. Returning false rejects the change.
func (w *Widget) SetOnPreferenceChange(fn func(proposed prefs.Value) bool) {
	w.onChange = fn
}

// ProposeChange runs the change hook, if any.
func (w *Widget) ProposeChange(v prefs.Value) bool {
	if w.onChange == nil {
		return true
	}
	return w.onChange(v)
}

// HasSummary reports whether the widget shows a summary line.
func (w *Widget) HasSummary() bool { return w.summaryID != "" }

// Screen is the ordered widget set of the e-mail settings screen.
type Screen struct {
	widgets []*Widget
}

func (s *Screen) Widgets() []*Widget { return s.widgets }

// Widget returns the widget for key, or nil.
func (s *Screen) Widget(key prefs.Key) *Widget {
	if s == nil {
		return nil
	}
	for _, w := range s.widgets {
		if w.Key == key {
			return w
		}
	}
	return nil
}
