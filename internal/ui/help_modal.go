package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(cFrameBorder).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

type helpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpMap) ShortHelp() []key.Binding  { return h.short }
func (h helpMap) FullHelp() [][]key.Binding { return h.full }

// helpOverlay is the scrollable key help box shared by the screens.
type helpOverlay struct {
	open  bool
	title string
	keys  helpMap
	model help.Model
	vp    viewport.Model
	sized bool
}

func newHelpOverlay(title string) helpOverlay {
	return helpOverlay{title: title, model: help.New()}
}

// show opens the overlay. Before the first window size only the plain
// key list is drawn.
func (o *helpOverlay) show(width, height int, keys helpMap) {
	o.open = true
	o.keys = keys
	o.sized = width > 0 && height > 0
	if !o.sized {
		return
	}
	boxW := helpBoxWidth(width)
	content := o.content(helpInnerWidth(boxW))

	// borders (2) + padding (2)
	vpH := min(strings.Count(content, "\n")+1, max(3, height-4))
	o.vp = viewport.New(helpInnerWidth(boxW), vpH)
	o.vp.SetContent(content)
}

// update handles a key while the overlay is open: Esc or toggle close it,
// the rest scroll.
func (o *helpOverlay) update(msg tea.KeyMsg, toggle key.Binding) {
	switch msg.String() {
	case "esc":
		o.open = false
	case "j", "down":
		o.vp.ScrollDown(1)
	case "k", "up":
		o.vp.ScrollUp(1)
	case "pgdown", "ctrl+d":
		o.vp.HalfPageDown()
	case "pgup", "ctrl+u":
		o.vp.HalfPageUp()
	default:
		if key.Matches(msg, toggle) {
			o.open = false
		}
	}
}

func (o *helpOverlay) content(innerW int) string {
	hh := o.model
	hh.ShowAll = true
	hh.Width = innerW
	keyStyle := lipgloss.NewStyle().Foreground(cAccent).Bold(true)
	hh.Styles.ShortKey = keyStyle
	hh.Styles.FullKey = keyStyle

	header := helpTitleStyle.Render(o.title + " keybindings")
	body := strings.TrimSpace(hh.View(o.keys))
	return header + "\n\n" + body + "\n\n" + dim.Render("Esc or ? to close  j/k scroll")
}

func (o *helpOverlay) view(width, height int) string {
	if !o.sized || width <= 0 || height <= 0 {
		hh := o.model
		hh.ShowAll = true
		return helpTitleStyle.Render(o.title) + "\n\n" + hh.View(o.keys)
	}

	content := o.vp.View()
	if o.vp.TotalLineCount() > o.vp.VisibleLineCount() {
		pct := o.vp.ScrollPercent()
		arrows := ""
		if pct > 0 {
			arrows += "▲ "
		}
		if pct < 1 {
			arrows += "▼ "
		}
		content += "\n" + dim.Render(fmt.Sprintf("%s%d%%", arrows, int(pct*100)))
	}
	box := helpBoxStyle.Width(helpBoxWidth(width)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func helpBoxWidth(termW int) int {
	boxW := min(88, termW-4)
	if boxW < 30 {
		boxW = min(termW, 30)
	}
	return boxW
}

func helpInnerWidth(boxW int) int {
	if innerW := boxW - 6; innerW >= 20 {
		return innerW
	}
	return 0
}
