// Package logging builds the application logger. The terminal belongs to the
// TUI, so debug logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultFile = "netmon-debug.log"

// New returns a logger and a closer for its sink. When debug is off the
// logger discards everything.
func New(debug bool, path string) (*slog.Logger, io.Closer, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if path == "" {
		path = DefaultFile
	}
	f, err := tea.LogToFile(path, "netmon")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
