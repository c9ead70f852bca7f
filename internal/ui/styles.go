package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

var (
	cAccent = accents["default"].fg
	cMuted  = lipgloss.AdaptiveColor{Light: "242", Dark: "242"}
	cOK     = lipgloss.AdaptiveColor{Light: "28", Dark: "35"}
	cWarn   = lipgloss.AdaptiveColor{Light: "166", Dark: "214"}
	cErr    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}

	cSearchDim   = lipgloss.AdaptiveColor{Light: "247", Dark: "246"}
	cFrameBorder = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}

	cRowActiveBG = lipgloss.AdaptiveColor{Light: "253", Dark: "238"}
	cRowActiveFG = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}

	// Focused choice in a form row.
	cSegFocusedBG = accents["default"].focusBG
	cSegFocusedFG = lipgloss.AdaptiveColor{Light: "17", Dark: "231"}
)

// accent is one named color scheme: the accent itself and the background of
// the focused choice in a form row.
type accent struct {
	fg      lipgloss.AdaptiveColor
	focusBG lipgloss.AdaptiveColor
}

var accents = map[string]accent{
	"default": {fg: lipgloss.AdaptiveColor{Light: "25", Dark: "39"}, focusBG: lipgloss.AdaptiveColor{Light: "153", Dark: "24"}},
	"blue":    {fg: lipgloss.AdaptiveColor{Light: "25", Dark: "39"}, focusBG: lipgloss.AdaptiveColor{Light: "153", Dark: "24"}},
	"cyan":    {fg: lipgloss.AdaptiveColor{Light: "30", Dark: "45"}, focusBG: lipgloss.AdaptiveColor{Light: "159", Dark: "30"}},
	"teal":    {fg: lipgloss.AdaptiveColor{Light: "29", Dark: "43"}, focusBG: lipgloss.AdaptiveColor{Light: "158", Dark: "23"}},
	"green":   {fg: lipgloss.AdaptiveColor{Light: "28", Dark: "35"}, focusBG: lipgloss.AdaptiveColor{Light: "157", Dark: "22"}},
	"amber":   {fg: lipgloss.AdaptiveColor{Light: "166", Dark: "214"}, focusBG: lipgloss.AdaptiveColor{Light: "229", Dark: "94"}},
	"red":     {fg: lipgloss.AdaptiveColor{Light: "160", Dark: "203"}, focusBG: lipgloss.AdaptiveColor{Light: "224", Dark: "88"}},
	"magenta": {fg: lipgloss.AdaptiveColor{Light: "127", Dark: "213"}, focusBG: lipgloss.AdaptiveColor{Light: "225", Dark: "90"}},
}

var (
	statusOK   = lipgloss.NewStyle().Foreground(cOK)
	statusWarn = lipgloss.NewStyle().Foreground(cWarn)
	statusErr  = lipgloss.NewStyle().Foreground(cErr)
	dim        = lipgloss.NewStyle().Foreground(cMuted)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(cFrameBorder).
			Padding(0, 1)

	uncheckedStyle   = lipgloss.NewStyle().Foreground(cMuted)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(cMuted)

	// The active row is a solid bar and must not contain inner styles.
	rowActiveStyle = lipgloss.NewStyle().Background(cRowActiveBG).Foreground(cRowActiveFG).Bold(true)

	// Accent-dependent; rebuilt by applyAccent.
	headerStyle     lipgloss.Style
	checkedStyle    lipgloss.Style
	segFocusedStyle lipgloss.Style
	badgeSelStyle   lipgloss.Style
	footerKeyStyle  lipgloss.Style
	tabActiveStyle  lipgloss.Style
)

func init() { applyAccent() }

// SetAccentColor switches the accent to a preset name or any lipgloss color
// ("#RRGGBB", "34", ...). Empty means the default preset.
func SetAccentColor(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}
	if a, ok := accents[name]; ok {
		cAccent, cSegFocusedBG = a.fg, a.focusBG
	} else {
		cAccent = lipgloss.AdaptiveColor{Light: name, Dark: name}
		cSegFocusedBG = cAccent
	}
	applyAccent()
}

func applyAccent() {
	bold := lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headerStyle = bold
	checkedStyle = bold
	tabActiveStyle = bold
	footerKeyStyle = bold
	helpTitleStyle = bold
	segFocusedStyle = lipgloss.NewStyle().Background(cSegFocusedBG).Foreground(cSegFocusedFG).Bold(true)
	badgeSelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "255", Dark: "16"}).
		Background(cAccent).
		Padding(0, 1).
		Bold(true)
}

func frameInnerSize(w, h int) (innerW, innerH int) {
	// frameStyle has 1-char border on each side + horizontal padding=1.
	innerW = w - 2 - 2
	innerH = h - 2
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	return innerW, innerH
}

func joinHeader(width int, left, right string) string {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if width <= 0 {
		if right == "" {
			return left
		}
		if left == "" {
			return right
		}
		return left + " " + right
	}
	if right == "" {
		return left
	}

	rw := lipgloss.Width(right)
	if rw >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(right)
	}

	if left == "" {
		return strings.Repeat(" ", width-rw) + right
	}

	leftAvail := width - rw - 1
	if leftAvail <= 0 {
		return strings.Repeat(" ", width-rw) + right
	}
	left = lipgloss.NewStyle().MaxWidth(leftAvail).Render(left)
	lw := lipgloss.Width(left)
	gap := width - lw - rw
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFrame draws a bordered panel with a header line, body and footer.
func renderFrame(w, h int, title, headerRight, body, footer string) string {
	if w <= 0 || h <= 0 {
		parts := []string{headerStyle.Render(strings.TrimSpace(title + " " + headerRight)), strings.TrimSpace(body)}
		if strings.TrimSpace(footer) != "" {
			parts = append(parts, footer)
		}
		return strings.TrimSpace(strings.Join(parts, "\n"))
	}

	innerW, _ := frameInnerSize(w, h)
	content := strings.TrimRight(headerStyle.Render(joinHeader(innerW, title, headerRight))+"\n"+body, "\n")
	if strings.TrimSpace(footer) != "" {
		content += "\n" + footer
	}
	return frameStyle.Width(w).Height(h).Render(content)
}

func configureSearch(m *textinput.Model) {
	m.PromptStyle = lipgloss.NewStyle().Foreground(cAccent).Bold(true)
	m.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "255"})
	m.Cursor.Style = lipgloss.NewStyle().Foreground(cAccent)
}

var searchUnfocused = lipgloss.NewStyle().Foreground(cSearchDim)

func setSearchFocused(m *textinput.Model, focused bool) {
	if focused {
		configureSearch(m)
		return
	}
	m.PromptStyle = searchUnfocused
	m.TextStyle = searchUnfocused
	m.Cursor.Style = searchUnfocused
}

// styledFooter renders a footer string with keys in accent and actions dimmed.
// Input format: "⏎ open  ␣ toggle  / filter" (double-space separated hints).
func styledFooter(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "  ")
		styled := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if p == "·" {
				styled = append(styled, dim.Render("·"))
				continue
			}
			idx := strings.IndexByte(p, ' ')
			if idx < 0 {
				styled = append(styled, footerKeyStyle.Render(p))
				continue
			}
			k := p[:idx]
			a := p[idx:] // includes leading space
			styled = append(styled, footerKeyStyle.Render(k)+dim.Render(a))
		}
		out = append(out, strings.Join(styled, "  "))
	}
	return strings.Join(out, "\n")
}


// formScrollWindow returns the slice of lines to display, scrolled so that
// focusLine is visible within visibleH lines. Returns (start, end) indices.
func formScrollWindow(totalLines, visibleH, focusLine int) (int, int) {
	if totalLines <= visibleH {
		return 0, totalLines
	}
	// Center focused line in the window.
	start := focusLine - visibleH/2
	if start < 0 {
		start = 0
	}
	end := start + visibleH
	if end > totalLines {
		end = totalLines
		start = end - visibleH
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// formSection renders a lightweight section divider: "── Label ──────"
func formSection(label string, width int) string {
	label = strings.TrimSpace(label)
	seg := "── " + label + " "
	segW := lipgloss.Width(seg)
	fill := width - segW
	if fill < 0 {
		fill = 0
	}
	return dim.Render(seg + strings.Repeat("─", fill))
}

// statusDot returns a colored dot: green when reports are on and the
// settings are complete, orange when incomplete, gray when off.
func statusDot(enabled bool, valid bool) string {
	switch {
	case enabled && valid:
		return statusOK.Render("●")
	case !valid:
		return statusWarn.Render("●")
	}
	return dim.Render("●")
}
