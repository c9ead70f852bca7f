package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/emaiannone/network-monitor/internal/email"
	"github.com/emaiannone/network-monitor/internal/prefs"
	"github.com/emaiannone/network-monitor/internal/settings"
)

const maskedPassword = "********"

// openScreen shows the settings screen without a terminal: defaults are
// applied and every summary is computed. Dialog requests go to stderr.
func openScreen(e *env) *settings.Controller {
	ctrl := settings.New(e.store, email.NewPreferences(e.store), e.loc, settings.DialogFunc(printDialog), e.logger)
	if err := ctrl.OnShow(); err != nil {
		fatal(err)
	}
	return ctrl
}

func printDialog(req settings.InfoDialogRequest) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", req.Title, req.Message)
}

func lookupKey(name string) prefs.Definition {
	schema := prefs.EmailSchema()
	name = strings.TrimSpace(name)
	if def, ok := schema.Lookup(prefs.Key(name)); ok {
		return def
	}
	// Accept the key without its "email_" prefix.
	if def, ok := schema.Lookup(prefs.Key("email_" + name)); ok {
		return def
	}
	names := make([]string, 0, len(schema))
	for _, k := range schema.Keys() {
		names = append(names, string(k))
	}
	fatal(unknownError("key", name, names))
	return prefs.Definition{}
}

func displayValue(def prefs.Definition, v prefs.Value) string {
	if def.Kind == prefs.KindPassword {
		if v.Text() == "" {
			return ""
		}
		return maskedPassword
	}
	return v.Text()
}

func runList(args []string, e *env) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "output as JSON")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}

	ctrl := openScreen(e)
	defer ctrl.OnHide()

	schema := prefs.EmailSchema()
	if *jsonOut {
		type settingJSON struct {
			Key     string `json:"key"`
			Title   string `json:"title"`
			Value   any    `json:"value"`
			Summary string `json:"summary,omitempty"`
		}
		out := make([]settingJSON, 0, len(schema))
		for _, w := range ctrl.Screen().Widgets() {
			def, _ := schema.Lookup(w.Key)
			v, _ := e.store.Get(w.Key)
			var val any = displayValue(def, v)
			if def.Kind == prefs.KindMultiList {
				members := v.Members()
				if members == nil {
					members = []string{}
				}
				val = members
			}
			out = append(out, settingJSON{Key: string(w.Key), Title: w.Title, Value: val, Summary: w.Summary})
		}
		printJSON(out)
		return
	}

	for _, w := range ctrl.Screen().Widgets() {
		def, _ := schema.Lookup(w.Key)
		v, _ := e.store.Get(w.Key)
		fmt.Printf("%-22s %-24s %s\n", w.Key, displayValue(def, v), w.Summary)
	}
}

func runGet(args []string, e *env) {
	if len(args) != 1 {
		fatal(fmt.Errorf("get requires a key\nUsage: netmon get KEY"))
	}
	def := lookupKey(args[0])

	ctrl := openScreen(e)
	defer ctrl.OnHide()

	v, _ := e.store.Get(def.Key)
	fmt.Println(displayValue(def, v))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err)
	}
}
