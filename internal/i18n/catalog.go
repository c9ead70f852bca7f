package i18n

import (
	"github.com/emaiannone/network-monitor/internal/prefs"

	"golang.org/x/text/language"
)

const (
	MissingSettingsTitle   = "dialog.missing_email_settings.title"
	MissingSettingsMessage = "dialog.missing_email_settings.message"
	ReportsDisabled        = "home.reports_disabled"
	ReportsEnabled         = "home.reports_enabled"
)

// English is complete: every id used by the app must be listed here, since a
// missing id would be printed as its own key.
var english = map[string]string{
	prefs.SummaryReportInterval: "Send reports: %s",
	prefs.SummaryReportFormats:  "Attach: %s",
	prefs.SummaryRecipients:     "Send to: %s",
	prefs.SummaryServer:         "SMTP server: %s",
	prefs.SummaryPort:           "Port: %s",
	prefs.SummarySecurity:       "Security: %s",
	prefs.SummaryUser:           "Log in as: %s",

	MissingSettingsTitle:   "Missing e-mail settings",
	MissingSettingsMessage: "E-mail reports have been disabled because the e-mail settings are incomplete. Enter the SMTP server, port, user and recipients, pick at least one report format, then enable the reports again.",
	ReportsDisabled:        "E-mail reports are disabled",
	ReportsEnabled:         "E-mail reports are enabled",
}

// Labels and titles are keyed by their English text.
var french = map[string]string{
	prefs.SummaryReportInterval: "Envoyer les rapports : %s",
	prefs.SummaryReportFormats:  "Joindre : %s",
	prefs.SummaryRecipients:     "Destinataires : %s",
	prefs.SummaryServer:         "Serveur SMTP : %s",
	prefs.SummaryPort:           "Port : %s",
	prefs.SummarySecurity:       "Sécurité : %s",
	prefs.SummaryUser:           "Connexion en tant que : %s",

	MissingSettingsTitle:   "Paramètres de courriel manquants",
	MissingSettingsMessage: "Les rapports par courriel ont été désactivés car les paramètres de courriel sont incomplets. Indiquez le serveur SMTP, le port, l'utilisateur et les destinataires, choisissez au moins un format de rapport, puis réactivez les rapports.",
	ReportsDisabled:        "Les rapports par courriel sont désactivés",
	ReportsEnabled:         "Les rapports par courriel sont activés",

	"Report interval": "Fréquence des rapports",
	"Report formats":  "Formats des rapports",
	"Recipients":      "Destinataires",
	"SMTP server":     "Serveur SMTP",
	"Security":        "Sécurité",
	"User":            "Utilisateur",
	"Password":        "Mot de passe",

	"Disabled":        "Désactivé",
	"Every hour":      "Toutes les heures",
	"Every 6 hours":   "Toutes les 6 heures",
	"Every 12 hours":  "Toutes les 12 heures",
	"Every day":       "Tous les jours",
	"Every week":      "Toutes les semaines",
	"SQLite database": "Base de données SQLite",
	"Summary":         "Résumé",
	"None":            "Aucune",

	"Monitor":        "Surveillance",
	"E-mail reports": "Rapports par courriel",
	"Reports":        "Rapports",
}

var translations = map[language.Tag]map[string]string{
	language.English: english,
	language.French:  french,
}
