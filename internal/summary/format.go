// Package summary turns stored preference values into the text shown under
// each setting.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

// Separator joins the labels of a multi-choice value.
const Separator = ", "

// UnknownValueError reports a set member that has no label. It means the
// stored value and the widget's entries disagree, so it is fatal.
type UnknownValueError struct {
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("value %q has no label", e.Value)
}

// Format returns the display string of value for a widget of the given kind.
//
// ok is false when nothing should be displayed: a single choice with no
// matching entry, or a widget kind without summary support.
func Format(kind prefs.Kind, value prefs.Value, entries prefs.Entries) (s string, ok bool, err error) {
	switch kind {
	case prefs.KindList:
		label, found := entries.Label(value.Text())
		if !found {
			return "", false, nil
		}
		return label, true, nil
	case prefs.KindText:
		return value.Text(), true, nil
	case prefs.KindMultiList:
		s, err := Labels(value.Members(), entries)
		if err != nil {
			return "", false, err
		}
		return s, true, nil
	}
	return "", false, nil
}

// Labels joins the labels of values in entry order.
func Labels(values []string, entries prefs.Entries) (string, error) {
	idx := make([]int, 0, len(values))
	for _, v := range values {
		i := entries.IndexOf(v)
		if i < 0 {
			return "", &UnknownValueError{Value: v}
		}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	labels := make([]string, 0, len(idx))
	prev := -1
	for _, i := range idx {
		if i == prev {
			continue
		}
		prev = i
		labels = append(labels, entries[i].Label)
	}
	return strings.Join(labels, Separator), nil
}
