package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Version int `toml:"version"`
	UI      UI  `toml:"ui"`
}

// UI holds the terminal front-end settings. The e-mail report preferences
// live in their own file (see prefs).
//
// Example TOML:
//
//	[ui]
//	accent_color = "teal"
//	language = "fr"
//	confirm_quit = true
type UI struct {
	AccentColor string `toml:"accent_color"` // preset name or color code; empty means default
	Language    string `toml:"language"`     // BCP 47 tag; empty means $LANG
	ConfirmQuit bool   `toml:"confirm_quit"`
}

func DefaultConfig() Config {
	return Config{
		Version: 1,
		UI: UI{
			AccentColor: "",
			Language:    "",
			ConfirmQuit: false,
		},
	}
}

// Validate checks values that would otherwise be silently ignored.
func (c Config) Validate() error {
	if strings.ContainsAny(c.UI.Language, " \t") {
		return fmt.Errorf("ui.language %q is invalid", c.UI.Language)
	}
	return nil
}
