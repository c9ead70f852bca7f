package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastErr
)

// toast is a one-line notice shown at the bottom of a screen until it is
// dismissed by a timer.
type toast struct {
	text  string
	level toastLevel
}

func (t toast) empty() bool {
	return strings.TrimSpace(t.text) == ""
}

func toastDuration(l toastLevel) time.Duration {
	if l == toastErr {
		return 8 * time.Second
	}
	return 3 * time.Second
}

var (
	toastInfoStyle = lipgloss.NewStyle().Foreground(cMuted)
	toastErrStyle  = lipgloss.NewStyle().Foreground(cErr)
)

func renderToast(t toast) string {
	switch {
	case t.empty():
		return ""
	case t.level == toastErr:
		return toastErrStyle.Render(t.text)
	}
	return toastInfoStyle.Render(t.text)
}

// breadcrumbTitle renders "parent > leaf" with the parent dimmed.
func breadcrumbTitle(parent, leaf string) string {
	parent = strings.TrimSpace(parent)
	leaf = strings.TrimSpace(leaf)
	if parent == "" {
		return leaf
	}
	return dim.Render(parent+" >") + " " + headerStyle.Render(leaf)
}
