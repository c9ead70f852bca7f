package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

// legacyConfig is the old single-file format that kept the e-mail report
// settings in an [email] table of config.toml.
type legacyConfig struct {
	Version int            `toml:"version"`
	UI      UI             `toml:"ui"`
	Email   map[string]any `toml:"email"`
}

// legacyKeys maps the [email] table keys to preference keys.
var legacyKeys = map[string]prefs.Key{
	"report_interval": prefs.KeyReportInterval,
	"report_formats":  prefs.KeyReportFormats,
	"recipients":      prefs.KeyRecipients,
	"server":          prefs.KeyServer,
	"port":            prefs.KeyPort,
	"security":        prefs.KeySecurity,
	"user":            prefs.KeyUser,
	"password":        prefs.KeyPassword,
}

// Migrate checks whether the e-mail settings still live in config.toml and,
// if so, moves them into email.toml. The migration is skipped when
// email.toml already exists. Both files are written atomically.
//
// configPath and prefsPath must be resolved (non-empty).
func Migrate(configPath, prefsPath string) error {
	configPath = filepath.Clean(configPath)
	prefsPath = filepath.Clean(prefsPath)

	if _, err := os.Stat(prefsPath); err == nil {
		return nil
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}

	var legacy legacyConfig
	if _, err := toml.DecodeFile(configPath, &legacy); err != nil {
		return err
	}
	if len(legacy.Email) == 0 {
		return nil
	}

	values := make(map[prefs.Key]prefs.Value, len(legacy.Email))
	for name, raw := range legacy.Email {
		key, ok := legacyKeys[name]
		if !ok {
			continue
		}
		v, err := legacyValue(key, raw)
		if err != nil {
			return fmt.Errorf("migrate email.%s: %w", name, err)
		}
		values[key] = v
	}

	store, err := prefs.Open(prefsPath)
	if err != nil {
		return err
	}
	if err := store.Import(values); err != nil {
		return err
	}

	cfg := Config{
		Version: 1,
		UI:      legacy.UI,
	}
	if _, err := Save(configPath, cfg); err != nil {
		return err
	}
	return nil
}

func legacyValue(key prefs.Key, raw any) (prefs.Value, error) {
	var s string
	switch t := raw.(type) {
	case string:
		s = t
	case int64, float64, bool:
		s = fmt.Sprint(t)
	case []any:
		if key != prefs.KeyReportFormats {
			return prefs.Value{}, fmt.Errorf("unexpected list")
		}
		members := make([]string, 0, len(t))
		for _, m := range t {
			members = append(members, fmt.Sprint(m))
		}
		return prefs.StringSet(members...), nil
	default:
		return prefs.Value{}, fmt.Errorf("unsupported type %T", raw)
	}

	if key != prefs.KeyReportFormats {
		return prefs.Text(s), nil
	}
	// Formats used to be one comma-separated string.
	var members []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			members = append(members, f)
		}
	}
	return prefs.StringSet(members...), nil
}
