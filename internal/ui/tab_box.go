package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	tabMonitor = iota
	tabEmail
)

var mainTabs = []string{"Monitor", "E-mail reports"}

// localTabs translates the tab labels.
func localTabs(label func(string) string) []string {
	out := make([]string, len(mainTabs))
	for i, t := range mainTabs {
		out[i] = label(t)
	}
	return out
}

// boxRule draws a horizontal border row from left to right corner.
func boxRule(w int, left, right string) string {
	if w <= 1 {
		return ""
	}
	return left + strings.Repeat("─", w-2) + right
}

func boxTop(w int) string    { return boxRule(w, "┌", "┐") }
func boxBottom(w int) string { return boxRule(w, "└", "┘") }
func boxSep(w int) string    { return boxRule(w, "├", "┤") }

// boxTitleTop is boxTop with title embedded after the corner.
func boxTitleTop(w int, title string) string {
	title = strings.TrimSpace(title)
	if title == "" || w <= 2 {
		return boxTop(w)
	}
	innerW := w - 2
	seg := " " + title + " "
	if lipgloss.Width(seg) > innerW {
		seg = " " + truncateTail(title, max(0, innerW-2)) + " "
	}
	return "┌" + seg + strings.Repeat("─", max(0, innerW-lipgloss.Width(seg))) + "┐"
}

func boxLine(w int, content string) string {
	if w <= 1 {
		return ""
	}
	return "│" + padVisible(content, w-2) + "│"
}

// padVisible clips or pads s to exactly width cells. A width <= 0 leaves s
// untouched.
func padVisible(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = clipTo(strings.TrimRight(s, "\n"), width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func renderTabsLine(active int, tabs []string) string {
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		if i == active {
			parts = append(parts, tabActiveStyle.Render(t))
		} else {
			parts = append(parts, tabInactiveStyle.Render(t))
		}
	}
	return strings.Join(parts, "  ")
}

// renderMainTabBox draws the full-screen box: tabs, header, content and an
// optional footer separated by rules.
func renderMainTabBox(width, height int, tabs []string, activeTab int, headerLeft, headerRight, body, footer string) string {
	if width <= 0 || height <= 0 {
		return strings.TrimRight(renderTabsLine(activeTab, tabs)+"\n"+headerLeft+"\n"+body, "\n")
	}
	if height < 3 {
		return boxTop(width)
	}
	innerW := max(0, width-2)
	innerH := max(0, height-2)

	var footerLines []string
	if strings.TrimSpace(footer) != "" {
		footerLines = strings.Split(strings.TrimRight(footer, "\n"), "\n")
	}
	// tabs, rule, header, rule; then a rule above the footer.
	fixed := 4
	if len(footerLines) > 0 {
		fixed += 1 + len(footerLines)
	}
	contentH := max(0, innerH-fixed)

	var bodyLines []string
	if b := strings.TrimRight(body, "\n"); strings.TrimSpace(b) != "" {
		bodyLines = strings.Split(b, "\n")
	}

	out := make([]string, 0, height)
	out = append(out,
		boxTop(width),
		boxLine(width, renderTabsLine(activeTab, tabs)),
		boxSep(width),
		boxLine(width, joinHeader(innerW, headerLeft, headerRight)),
		boxSep(width),
	)
	for i := 0; i < contentH; i++ {
		line := ""
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		out = append(out, boxLine(width, line))
	}
	if len(footerLines) > 0 {
		out = append(out, boxSep(width))
		for _, fl := range footerLines {
			out = append(out, boxLine(width, fl))
		}
	}
	out = append(out, boxBottom(width))
	return strings.Join(out, "\n")
}
