package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emaiannone/network-monitor/internal/settings"
)

var (
	confirmTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(cErr)
	infoTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
)

func renderQuitConfirm(width, height int) string {
	footer := footerKeyStyle.Render("[y/↵]") + dim.Render(" quit") +
		"     " + footerKeyStyle.Render("[n/Esc]") + dim.Render(" cancel")
	box := renderDialogBox(min(58, dialogWidth(width)), confirmTitleStyle.Render("Quit?"), "Exit netmon?", footer)
	return placeCentered(width, height, box)
}

func renderInfoDialog(width, height int, req settings.InfoDialogRequest) string {
	footer := footerKeyStyle.Render("[↵/Esc]") + dim.Render(" ok")
	box := renderDialogBox(dialogWidth(width), infoTitleStyle.Render(req.Title), req.Message, footer)
	return placeCentered(width, height, box)
}

// renderDialogBox draws a box of totalW cells with title in the top border,
// the body wrapped to fit and a footer line. Content is indented 2 cells.
func renderDialogBox(totalW int, title, body, footer string) string {
	wrapped := lipgloss.NewStyle().Width(max(10, totalW-6)).Render(body)
	parts := []string{boxTitleTop(totalW, title), boxLine(totalW, "")}
	for _, l := range strings.Split(wrapped, "\n") {
		parts = append(parts, boxLine(totalW, "  "+strings.TrimRight(l, " ")))
	}
	parts = append(parts,
		boxLine(totalW, ""),
		boxLine(totalW, "  "+footer),
		boxLine(totalW, ""),
		boxBottom(totalW),
	)
	return strings.Join(parts, "\n")
}
