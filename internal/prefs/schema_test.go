package prefs

import (
	"reflect"
	"testing"
)

func TestEntriesLookup(t *testing.T) {
	e := Entries{{Value: "csv", Label: "CSV"}, {Value: "html", Label: "HTML"}}
	if e.IndexOf("html") != 1 {
		t.Fatalf("IndexOf(html)=%d, want 1", e.IndexOf("html"))
	}
	if e.IndexOf("json") != -1 {
		t.Fatalf("IndexOf(json)=%d, want -1", e.IndexOf("json"))
	}
	if l, ok := e.Label("csv"); !ok || l != "CSV" {
		t.Fatalf("Label(csv)=%q,%v", l, ok)
	}
}

func TestNormalizeOrdersByEntries(t *testing.T) {
	d, ok := EmailSchema().Lookup(KeyReportFormats)
	if !ok {
		t.Fatalf("formats definition missing")
	}
	got := d.Normalize(StringSet("zzz", "html", "csv", "aaa", "html")).Members()
	want := []string{"csv", "html", "aaa", "zzz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v, want %v", got, want)
	}
}

func TestNormalizeLeavesTextAlone(t *testing.T) {
	d, _ := EmailSchema().Lookup(KeyServer)
	v := d.Normalize(Text("smtp"))
	if v.IsSet() || v.Text() != "smtp" {
		t.Fatalf("got=%#v", v)
	}
}

func TestEmailSchemaDefaultsAreValidChoices(t *testing.T) {
	for _, d := range EmailSchema() {
		switch d.Kind {
		case KindList:
			if d.Entries.IndexOf(d.Default.Text()) < 0 {
				t.Fatalf("%s: default %q not an entry", d.Key, d.Default.Text())
			}
		case KindMultiList:
			for _, m := range d.Default.Members() {
				if d.Entries.IndexOf(m) < 0 {
					t.Fatalf("%s: default member %q not an entry", d.Key, m)
				}
			}
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !StringSet("a", "b").Equal(StringSet("a", "b", "a")) {
		t.Fatalf("sets with duplicates should be equal")
	}
	if StringSet("a").Equal(Text("a")) {
		t.Fatalf("set and text must differ")
	}
	if StringSet("a", "b").Equal(StringSet("b", "a")) {
		t.Fatalf("member order is significant")
	}
}
