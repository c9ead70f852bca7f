package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emaiannone/network-monitor/internal/config"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/settings"
)

var ErrQuit = errors.New("quit")

type Options struct {
	ConfigPath string
	Config     config.Config
	Store      *prefs.Store
	Localizer  *i18n.Localizer
	Logger     *slog.Logger
}

type exitState interface {
	IsQuitting() bool
	Err() error
	Undelivered() []settings.InfoDialogRequest
}

func Run(opts Options) error {
	if opts.Store == nil {
		return errors.New("ui: no preference store")
	}
	SetAccentColor(opts.Config.UI.AccentColor)

	m := newAppModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return err
	}
	if st, ok := model.(exitState); ok {
		if err := st.Err(); err != nil {
			return err
		}
		// The alt screen is gone by now; surface what the home screen
		// never got to show.
		for _, req := range st.Undelivered() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", req.Title, req.Message)
		}
		if st.IsQuitting() {
			return ErrQuit
		}
	}
	return nil
}
