package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncateTail cuts s to n cells, ending with an ellipsis.
func truncateTail(s string, n int) string {
	switch {
	case n <= 0:
		return ""
	case lipgloss.Width(s) <= n:
		return s
	case n == 1:
		return "…"
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// truncateFade is truncateTail with the last kept rune and the ellipsis
// dimmed.
func truncateFade(s string, n int) string {
	switch {
	case n <= 0:
		return ""
	case lipgloss.Width(s) <= n:
		return s
	case n <= 2:
		return dim.Render("…") + strings.Repeat(" ", n-1)
	}
	r := []rune(s)
	cut := min(n-2, len(r))
	tail := ""
	if cut < len(r) {
		tail = string(r[cut])
	}
	return string(r[:cut]) + dim.Render(tail+"…")
}

// renderCheckRow renders one picker row: cursor, checkbox, label. The
// active row is a solid bar, so it carries no inner styling.
func renderCheckRow(width int, active, selected bool, label string) string {
	box := "◻"
	if selected {
		box = "◼"
	}
	if active {
		prefix := "▸ " + box + " "
		line := prefix + label
		if width > 0 {
			line = prefix + truncateTail(label, max(0, width-lipgloss.Width(prefix)))
			line = padVisible(line, width)
		}
		return rowActiveStyle.Render(line)
	}

	if selected {
		box = checkedStyle.Render(box)
	} else {
		box = uncheckedStyle.Render(box)
	}
	prefix := "  " + box + " "
	if width <= 0 {
		return prefix + label
	}
	return prefix + truncateFade(label, max(0, width-lipgloss.Width(prefix)))
}
