package prefs

import "sort"

// Kind is the widget kind a preference is edited with.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindList
	KindMultiList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPassword:
		return "password"
	case KindList:
		return "list"
	case KindMultiList:
		return "multi-list"
	}
	return "unknown"
}

// Entry is one (value, label) pair of a choice widget.
type Entry struct {
	Value string
	Label string
}

// Entries is the ordered choice list of a list or multi-list widget.
type Entries []Entry

// IndexOf returns the position of value, or -1.
func (e Entries) IndexOf(value string) int {
	for i := range e {
		if e[i].Value == value {
			return i
		}
	}
	return -1
}

// Label returns the label for value.
func (e Entries) Label(value string) (string, bool) {
	i := e.IndexOf(value)
	if i < 0 {
		return "", false
	}
	return e[i].Label, true
}

func (e Entries) Values() []string {
	out := make([]string, 0, len(e))
	for _, en := range e {
		out = append(out, en.Value)
	}
	return out
}

// Definition describes one preference: its widget and default value.
//
// Summary is the message id of the localized summary template. Preferences
// without a summary line leave it empty.
type Definition struct {
	Key     Key
	Kind    Kind
	Title   string
	Summary string
	Entries Entries
	Default Value
}

// Normalize orders set members by entry position. Members missing from the
// entries are kept (sorted, after the known ones) so callers still see them.
func (d Definition) Normalize(v Value) Value {
	if d.Kind != KindMultiList || !v.IsSet() {
		return v
	}
	members := v.Members()
	sort.SliceStable(members, func(i, j int) bool {
		a, b := d.Entries.IndexOf(members[i]), d.Entries.IndexOf(members[j])
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		case b >= 0:
			return false
		}
		return members[i] < members[j]
	})
	return StringSet(members...)
}

type Schema []Definition

func (s Schema) Lookup(key Key) (Definition, bool) {
	for _, d := range s {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

func (s Schema) Keys() []Key {
	out := make([]Key, 0, len(s))
	for _, d := range s {
		out = append(out, d.Key)
	}
	return out
}

// Summary template ids, resolved by the i18n catalog.
const (
	SummaryReportInterval = "summary.email_report_interval"
	SummaryReportFormats  = "summary.email_report_formats"
	SummaryRecipients     = "summary.email_recipients"
	SummaryServer         = "summary.email_server"
	SummaryPort           = "summary.email_port"
	SummarySecurity       = "summary.email_security"
	SummaryUser           = "summary.email_user"
)

const DefaultPort = "587"

// EmailSchema is the e-mail report preference screen, in display order.
func EmailSchema() Schema {
	return Schema{
		{
			Key:     KeyReportInterval,
			Kind:    KindList,
			Title:   "Report interval",
			Summary: SummaryReportInterval,
			Entries: Entries{
				{Value: "0", Label: "Disabled"},
				{Value: "1", Label: "Every hour"},
				{Value: "6", Label: "Every 6 hours"},
				{Value: "12", Label: "Every 12 hours"},
				{Value: "24", Label: "Every day"},
				{Value: "168", Label: "Every week"},
			},
			Default: Text("0"),
		},
		{
			Key:     KeyReportFormats,
			Kind:    KindMultiList,
			Title:   "Report formats",
			Summary: SummaryReportFormats,
			Entries: Entries{
				{Value: "csv", Label: "CSV"},
				{Value: "html", Label: "HTML"},
				{Value: "excel", Label: "Excel"},
				{Value: "kml", Label: "KML"},
				{Value: "db", Label: "SQLite database"},
				{Value: "summary", Label: "Summary"},
			},
			Default: StringSet("csv"),
		},
		{
			Key:     KeyRecipients,
			Kind:    KindText,
			Title:   "Recipients",
			Summary: SummaryRecipients,
			Default: Text(""),
		},
		{
			Key:     KeyServer,
			Kind:    KindText,
			Title:   "SMTP server",
			Summary: SummaryServer,
			Default: Text(""),
		},
		{
			Key:     KeyPort,
			Kind:    KindText,
			Title:   "Port",
			Summary: SummaryPort,
			Default: Text(DefaultPort),
		},
		{
			Key:     KeySecurity,
			Kind:    KindList,
			Title:   "Security",
			Summary: SummarySecurity,
			Entries: Entries{
				{Value: "none", Label: "None"},
				{Value: "ssl", Label: "SSL"},
				{Value: "tls", Label: "STARTTLS"},
			},
			Default: Text("tls"),
		},
		{
			Key:     KeyUser,
			Kind:    KindText,
			Title:   "User",
			Summary: SummaryUser,
			Default: Text(""),
		},
		{
			Key:     KeyPassword,
			Kind:    KindPassword,
			Title:   "Password",
			Default: Text(""),
		},
	}
}
