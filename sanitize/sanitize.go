// Package sanitize cleans server-supplied strings before they reach a page. Templates escape
// plain values on their own; this package covers the places that need more: rich text from
// the backend, strings handed to non-HTML sinks, and display truncation.
package sanitize

import (
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()

	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
)

// Escape replaces & < > " ' with their entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// RichText returns backend markup with scripts, handlers and unsafe URLs removed, typed so
// html/template emits it as-is.
func RichText(s string) template.HTML {
	return template.HTML(ugc.Sanitize(s))
}

// PlainText strips every tag and leaves the text content, unescaped, for terminals and
// other non-HTML sinks.
func PlainText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

// Truncate shortens s to at most n runes, adding "..." when anything was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
