package summary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

var formatEntries = prefs.Entries{
	{Value: "csv", Label: "CSV"},
	{Value: "html", Label: "HTML"},
	{Value: "json", Label: "JSON"},
}

func TestFormatMultiChoice(t *testing.T) {
	s, ok, err := Format(prefs.KindMultiList, prefs.StringSet("csv", "html"), formatEntries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CSV, HTML", s)
	assert.NotContains(t, s, "JSON")
}

func TestFormatMultiChoiceUsesEntryOrder(t *testing.T) {
	s, _, err := Format(prefs.KindMultiList, prefs.StringSet("json", "csv"), formatEntries)
	require.NoError(t, err)
	assert.Equal(t, "CSV, JSON", s)
}

func TestFormatMultiChoiceEmpty(t *testing.T) {
	s, ok, err := Format(prefs.KindMultiList, prefs.StringSet(), formatEntries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestFormatMultiChoiceUnknownValueIsFatal(t *testing.T) {
	s, ok, err := Format(prefs.KindMultiList, prefs.StringSet("csv", "pdf"), formatEntries)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, s)

	var uv *UnknownValueError
	require.True(t, errors.As(err, &uv))
	assert.Equal(t, "pdf", uv.Value)
}

func TestFormatSingleChoice(t *testing.T) {
	s, ok, err := Format(prefs.KindList, prefs.Text("html"), formatEntries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HTML", s)

	_, ok, err = Format(prefs.KindList, prefs.Text(""), formatEntries)
	require.NoError(t, err)
	assert.False(t, ok, "no selection must not update the summary")

	_, ok, err = Format(prefs.KindList, prefs.Text("pdf"), formatEntries)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFormatTextIsVerbatim(t *testing.T) {
	s, ok, err := Format(prefs.KindText, prefs.Text("  a@b.c, d@e.f "), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "  a@b.c, d@e.f ", s)

	s, ok, err = Format(prefs.KindText, prefs.Value{}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestFormatUnsupportedKindIsNoop(t *testing.T) {
	_, ok, err := Format(prefs.KindPassword, prefs.Text("secret"), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Format(prefs.Kind(99), prefs.Text("x"), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
