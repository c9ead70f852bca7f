// Package i18n resolves summary templates, labels and dialog texts.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var cat = mustCatalog(translations)

func mustCatalog(tr map[language.Tag]map[string]string) *catalog.Builder {
	b, err := buildCatalog(tr)
	if err != nil {
		panic(err)
	}
	return b
}

func buildCatalog(tr map[language.Tag]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range tr {
		for id, msg := range msgs {
			if err := b.SetString(tag, id, msg); err != nil {
				return nil, fmt.Errorf("catalog %s %q: %w", tag, id, err)
			}
		}
	}
	return b, nil
}

// Localizer formats messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for lang ("fr", "fr_CA.UTF-8", ...). Unknown or
// empty languages fall back to English.
func New(lang string) *Localizer {
	tag := Match(lang)
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Match picks the supported language closest to lang.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return language.English
	}
	t, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	supported := cat.Languages()
	_, idx, conf := language.NewMatcher(supported).Match(t)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return language.English
	}
	return supported[idx]
}

func (l *Localizer) Tag() language.Tag { return l.tag }

// Summary interpolates arg into the summary template id.
func (l *Localizer) Summary(id string, arg string) string {
	return l.printer.Sprintf(id, arg)
}

// Text returns the static text id.
func (l *Localizer) Text(id string) string {
	return l.printer.Sprintf(id)
}

// Label translates an English label or title. Untranslated labels are
// returned unchanged.
func (l *Localizer) Label(label string) string {
	if strings.Contains(label, "%") {
		return label
	}
	return l.printer.Sprintf(label)
}
