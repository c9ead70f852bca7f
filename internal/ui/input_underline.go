package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// underlineInput draws a text input padded with an underscore rule up to
// width.
func underlineInput(in textinput.Model, focused bool, width int) string {
	s := clipTo(strings.TrimRight(in.View(), "\n"), width)
	return s + fieldRule(width-lipgloss.Width(s), focused)
}

// underlineText draws a read-only value the same way as underlineInput.
func underlineText(s string, focused bool, width int) string {
	s = clipTo(strings.TrimRight(s, "\n"), width)
	style := dim
	if focused {
		style = checkedStyle
	}
	return style.Render(s) + fieldRule(width-lipgloss.Width(s), focused)
}

func clipTo(s string, width int) string {
	if width > 0 && lipgloss.Width(s) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s
}

func fieldRule(n int, focused bool) string {
	if n <= 0 {
		return ""
	}
	if focused {
		return checkedStyle.Render(strings.Repeat("_", n))
	}
	return dim.Render(strings.Repeat("_", n))
}
