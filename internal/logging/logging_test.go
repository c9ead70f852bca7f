package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDisabledDiscards(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "debug.log")

	log, c, err := New(false, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hello")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("disabled logger created %s", p)
	}
}

func TestNewDebugWritesFile(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "debug.log")

	log, c, err := New(true, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("screen shown", "key", "email_server")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "screen shown") || !strings.Contains(string(b), "key=email_server") {
		t.Fatalf("log=%q", b)
	}
}
