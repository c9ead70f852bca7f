package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

func TestMatch(t *testing.T) {
	cases := map[string]language.Tag{
		"":            language.English,
		"C":           language.English,
		"en":          language.English,
		"fr":          language.French,
		"fr_CA.UTF-8": language.French,
		"de":          language.English,
		"not a tag!":  language.English,
	}
	for in, want := range cases {
		got := Match(in)
		base, _ := got.Base()
		wantBase, _ := want.Base()
		assert.Equal(t, wantBase, base, "Match(%q)", in)
	}
}

func TestSummaryInterpolates(t *testing.T) {
	en := New("en")
	assert.Equal(t, "SMTP server: smtp.example.com", en.Summary(prefs.SummaryServer, "smtp.example.com"))
	assert.Equal(t, "Attach: CSV, HTML", en.Summary(prefs.SummaryReportFormats, "CSV, HTML"))

	fr := New("fr")
	assert.Equal(t, "Serveur SMTP : smtp.example.com", fr.Summary(prefs.SummaryServer, "smtp.example.com"))
}

func TestEverySummaryIDHasEnglishText(t *testing.T) {
	en := New("en")
	for _, def := range prefs.EmailSchema() {
		if def.Summary == "" {
			continue
		}
		got := en.Summary(def.Summary, "x")
		assert.NotContains(t, got, def.Summary, "missing English text for %s", def.Summary)
		assert.Contains(t, got, "x")
	}
}

func TestLabelFallsBackToInput(t *testing.T) {
	fr := New("fr")
	assert.Equal(t, "Toutes les heures", fr.Label("Every hour"))
	assert.Equal(t, "CSV", fr.Label("CSV"))
	assert.Equal(t, "100% sure", fr.Label("100% sure"))

	en := New("en")
	assert.Equal(t, "Every hour", en.Label("Every hour"))
}

func TestDialogText(t *testing.T) {
	assert.Equal(t, "Missing e-mail settings", New("").Text(MissingSettingsTitle))
	assert.Equal(t, "Paramètres de courriel manquants", New("fr").Text(MissingSettingsTitle))
}

func TestCatalogCompiles(t *testing.T) {
	b, err := buildCatalog(translations)
	require.NoError(t, err)
	assert.Len(t, b.Languages(), len(translations))
}
