package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/i18n"
	"github.com/emaiannone/network-monitor/internal/prefs"
)

// runCheck reports whether the stored settings can send reports. It exits 1
// only when reports are enabled and the settings are incomplete.
func runCheck(args []string, e *env) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	quiet := fs.Bool("q", false, "print nothing, only set the exit status")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}

	if _, err := e.store.SetDefaults(prefs.EmailSchema()); err != nil {
		fatal(err)
	}
	p := email.NewPreferences(e.store)
	enabled := p.ReportInterval() > 0
	problems := p.Config().Validate()

	if !*quiet {
		if enabled {
			fmt.Println(e.loc.Text(i18n.ReportsEnabled))
		} else {
			fmt.Println(e.loc.Text(i18n.ReportsDisabled))
		}
		if problems == nil {
			fmt.Println("settings: ok")
		} else {
			fmt.Println("settings: incomplete")
			for _, line := range strings.Split(problems.Error(), "\n") {
				fmt.Printf("  - %s\n", line)
			}
		}
	}
	if enabled && problems != nil {
		os.Exit(1)
	}
}
