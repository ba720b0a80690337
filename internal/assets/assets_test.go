package assets

import (
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_FixedOrder(t *testing.T) {
	entries := Entries()
	require.Len(t, entries, 7)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Path)
	}
	assert.Equal(t, []string{
		"views/layout.ejs",
		"views/index.ejs",
		"views/member-register.ejs",
		"views/member-login.ejs",
		"views/admin-login.ejs",
		"views/admin-dashboard.ejs",
		"public/css/style.css",
	}, got)
}

func TestEntries_ValidContent(t *testing.T) {
	for _, e := range Entries() {
		t.Run(e.Path, func(t *testing.T) {
			assert.NotEmpty(t, e.Content)
			assert.True(t, utf8.ValidString(e.Content), "content must be UTF-8")
			assert.False(t, strings.HasPrefix(e.Path, "/"))
			assert.False(t, strings.HasSuffix(e.Content, "\n"), "contents carry no trailing newline")
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	first := Entries()
	first[0].Content = "mutated"
	first[1].Path = "elsewhere"

	second := Entries()
	assert.Equal(t, "views/index.ejs", second[1].Path)
	assert.NotEqual(t, "mutated", second[0].Content)

	p := Paths()
	p[0] = "mutated"
	assert.Equal(t, "views/layout.ejs", Paths()[0])
}

func TestEmbeddedFilesMatchPaths(t *testing.T) {
	embedded, err := embeddedPaths()
	require.NoError(t, err)

	listed := Paths()
	sort.Strings(embedded)
	sort.Strings(listed)
	assert.Equal(t, listed, embedded)
}

func TestLookup(t *testing.T) {
	layout, ok := Lookup("views/layout.ejs")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(layout.Content, "<!DOCTYPE html>\n<html lang=\"zh-Hant\">"))
	assert.Contains(t, layout.Content, `<link rel="stylesheet" href="/css/style.css">`)
	assert.Contains(t, layout.Content, "<%- body %>")
	assert.True(t, strings.HasSuffix(layout.Content, "</html>"))

	css, ok := Lookup("public/css/style.css")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(css.Content, "body {\n  font-family: Arial, sans-serif;"))
	assert.True(t, strings.HasSuffix(css.Content, "  margin-top: 20px;\n}"))

	_, ok = Lookup("views/missing.ejs")
	assert.False(t, ok)
}

func TestPages_UseLayout(t *testing.T) {
	for _, e := range Entries() {
		if e.Path == "views/layout.ejs" || !strings.HasSuffix(e.Path, ".ejs") {
			continue
		}
		assert.True(t, strings.HasPrefix(e.Content, "<% layout('layout') -%>\n"), e.Path)
	}
}
