package main

import (
	"fmt"
	"strings"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

func runSet(args []string, e *env) {
	if len(args) < 1 {
		fatal(fmt.Errorf("set requires a key and a value\nUsage: netmon set KEY VALUE..."))
	}
	def := lookupKey(args[0])
	v, err := parseValue(def, args[1:])
	if err != nil {
		fatal(err)
	}

	ctrl := openScreen(e)
	ok, err := ctrl.Commit(def.Key, v)
	if err != nil {
		ctrl.OnHide()
		fatal(err)
	}
	if err := ctrl.Err(); err != nil {
		ctrl.OnHide()
		fatal(err)
	}
	if !ok {
		ctrl.OnHide()
		fatal(fmt.Errorf("%s: change rejected", def.Key))
	}
	if w := ctrl.Screen().Widget(def.Key); w != nil && w.Summary != "" {
		fmt.Println(w.Summary)
	}

	// Leaving the screen may switch reports off; the reason goes to stderr.
	err = ctrl.OnPause()
	ctrl.OnHide()
	if err != nil {
		fatal(err)
	}
}

// parseValue turns command line words into a value for def. Choices must be
// one of the entries; multi-choices take one or more words, each of which
// may be a comma-separated list.
func parseValue(def prefs.Definition, words []string) (prefs.Value, error) {
	switch def.Kind {
	case prefs.KindMultiList:
		var members []string
		for _, w := range words {
			for _, m := range strings.Split(w, ",") {
				m = strings.TrimSpace(m)
				if m == "" {
					continue
				}
				if def.Entries.IndexOf(m) < 0 {
					return prefs.Value{}, unknownError(string(def.Key)+" value", m, def.Entries.Values())
				}
				members = append(members, m)
			}
		}
		return prefs.StringSet(members...), nil
	case prefs.KindList:
		if len(words) != 1 {
			return prefs.Value{}, fmt.Errorf("%s takes exactly one value: %s", def.Key, strings.Join(def.Entries.Values(), ", "))
		}
		v := strings.TrimSpace(words[0])
		if def.Entries.IndexOf(v) < 0 {
			return prefs.Value{}, unknownError(string(def.Key)+" value", v, def.Entries.Values())
		}
		return prefs.Text(v), nil
	case prefs.KindPassword:
		return prefs.Text(strings.Join(words, " ")), nil
	}
	return prefs.Text(strings.TrimSpace(strings.Join(words, " "))), nil
}
