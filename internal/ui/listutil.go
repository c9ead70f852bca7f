package ui

import "github.com/charmbracelet/bubbles/list"

// configureList strips a bubbles list down to cursor movement: the screens
// draw their own title, filter and footer, and letter keys belong to the
// app.
func configureList(m *list.Model) {
	km := list.DefaultKeyMap()
	km.NextPage.SetKeys("pgdown")
	km.PrevPage.SetKeys("pgup")
	km.GoToStart.SetKeys("home", "g")
	km.GoToEnd.SetKeys("end", "G")
	m.KeyMap = km

	m.SetShowTitle(false)
	m.SetShowPagination(false)
	m.SetShowHelp(false)
	m.SetShowStatusBar(false)
	m.SetFilteringEnabled(false)
	m.DisableQuitKeybindings()
}
