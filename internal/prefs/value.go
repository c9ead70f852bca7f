package prefs

import "strings"

// Key addresses a stored preference. Keys are the TOML keys of email.toml.
type Key string

const (
	KeyReportInterval Key = "email_report_interval"
	KeyReportFormats  Key = "email_report_formats"
	KeyRecipients     Key = "email_recipients"
	KeyServer         Key = "email_server"
	KeyPort           Key = "email_port"
	KeySecurity       Key = "email_security"
	KeyUser           Key = "email_user"
	KeyPassword       Key = "email_password"
)

// Value is either a single string or a set of strings.
type Value struct {
	text    string
	members []string
	isSet   bool
}

// Text returns a single-string value.
func Text(s string) Value {
	return Value{text: s}
}

// StringSet returns a set value. Duplicates are dropped, first occurrence wins.
func StringSet(members ...string) Value {
	out := make([]string, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return Value{members: out, isSet: true}
}

func (v Value) IsSet() bool { return v.isSet }

// Text returns the string form. For sets it is the comma-joined member list.
func (v Value) Text() string {
	if v.isSet {
		return strings.Join(v.members, ",")
	}
	return v.text
}

// Members returns a copy of the set members. A single-string value yields
// one member, or none when empty.
func (v Value) Members() []string {
	if !v.isSet {
		if v.text == "" {
			return nil
		}
		return []string{v.text}
	}
	return append([]string(nil), v.members...)
}

func (v Value) Equal(o Value) bool {
	if v.isSet != o.isSet {
		return false
	}
	if !v.isSet {
		return v.text == o.text
	}
	if len(v.members) != len(o.members) {
		return false
	}
	for i := range v.members {
		if v.members[i] != o.members[i] {
			return false
		}
	}
	return true
}

// encode returns the TOML representation.
func (v Value) encode() any {
	if v.isSet {
		if v.members == nil {
			return []string{}
		}
		return append([]string(nil), v.members...)
	}
	return v.text
}
