package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "missing.toml")

	cfg, used, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if used != p {
		t.Fatalf("used=%q, want %q", used, p)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("cfg=%#v, want defaults", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "config.toml")

	cfg := DefaultConfig()
	cfg.UI.AccentColor = "teal"
	cfg.UI.Language = "fr"
	cfg.UI.ConfirmQuit = true

	if _, err := Save(p, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	st, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("mode=%o, want 600", st.Mode().Perm())
	}

	got, used, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if used != p {
		t.Fatalf("used=%q, want %q", used, p)
	}

	cfg.Version = 1
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("got=%#v\nwant=%#v", got, cfg)
	}
}

func TestLoadRejectsBadLanguage(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "config.toml")
	if err := os.WriteFile(p, []byte("[ui]\nlanguage = \"en US\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := Load(p); err == nil {
		t.Fatalf("Load should reject a language with spaces")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	d := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", d)

	cfgPath, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(d, "netmon", "config.toml"); cfgPath != want {
		t.Fatalf("DefaultPath=%q, want %q", cfgPath, want)
	}
	prefsPath, err := DefaultPrefsPath()
	if err != nil {
		t.Fatalf("DefaultPrefsPath: %v", err)
	}
	if got := PrefsPathFromConfigPath(cfgPath); got != prefsPath {
		t.Fatalf("PrefsPathFromConfigPath=%q, want %q", got, prefsPath)
	}
}
