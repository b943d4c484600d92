package editorconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
)

func TestProperties_Set(t *testing.T) {
	t.Parallel()

	props := editorconfig.NewProperties()
	props.Set("Indent_Style", "TAB")
	props.Set("charset", "UTF-8")
	props.Set("End_Of_Line", "CRLF")
	props.Set("INDENT_STYLE", "Space")

	assert.Equal(t, []editorconfig.Property{
		{Name: "indent_style", Value: "space"},
		{Name: "charset", Value: "UTF-8"},
		{Name: "end_of_line", Value: "crlf"},
	}, props.Entries())
	assert.Equal(t, 3, props.Len())
}

func TestProperties_Get(t *testing.T) {
	t.Parallel()

	props := editorconfig.NewProperties()
	props.Set("indent_size", "4")

	got, ok := props.Get("INDENT_SIZE")
	require.True(t, ok)
	assert.Equal(t, "4", got)

	_, ok = props.Get("tab_width")
	assert.False(t, ok)
	assert.False(t, props.Has("tab_width"))
}

func TestProperties_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	props := editorconfig.NewProperties()
	props.Set("charset", "utf-8")

	entries := props.Entries()
	entries[0].Value = "latin1"

	got, _ := props.Get("charset")
	assert.Equal(t, "utf-8", got)
}

func TestProperties_AllStopsEarly(t *testing.T) {
	t.Parallel()

	props := editorconfig.NewProperties()
	props.Set("a", "1")
	props.Set("b", "2")
	props.Set("c", "3")

	var seen []string
	for name := range props.All() {
		seen = append(seen, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestProperties_String(t *testing.T) {
	t.Parallel()

	props := editorconfig.NewProperties()
	assert.Empty(t, props.String())

	props.Set("indent_style", "tab")
	props.Set("tab_width", "8")
	assert.Equal(t, "indent_style=tab\ntab_width=8\n", props.String())
}
