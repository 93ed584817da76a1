// Package render turns extracted articles into Markdown and PDF documents.
package render

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/newsscraper/internal/extract"
)

// Markdown renders a as a Markdown document. sourceURL, when non-empty, is
// linked at the end. Failed records render as a short notice carrying the
// error message.
func Markdown(a extract.ArticleContent, sourceURL string) string {
	var b strings.Builder
	if a.Failed() {
		b.WriteString("# Article unavailable\n\n")
		b.WriteString(escapeLine(*a.Error))
		b.WriteString("\n\n")
		writeSource(&b, sourceURL)
		return strings.TrimRight(b.String(), "\n") + "\n"
	}

	title := extract.NoTitleFound
	if a.Title != nil && *a.Title != "" {
		title = *a.Title
	}
	fmt.Fprintf(&b, "# %s\n\n", escapeLine(title))

	var byline []string
	if a.Author != nil && *a.Author != "" {
		byline = append(byline, "By "+escapeLine(*a.Author))
	}
	if a.Date != nil && *a.Date != "" {
		byline = append(byline, escapeLine(*a.Date))
	}
	if len(byline) > 0 {
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(byline, ", "))
	}

	for _, p := range a.Content {
		b.WriteString(escapeLine(p))
		b.WriteString("\n\n")
	}
	writeSource(&b, sourceURL)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSource(b *strings.Builder, sourceURL string) {
	if sourceURL == "" {
		return
	}
	fmt.Fprintf(b, "Source: [%s](%s)\n", sourceURL, sourceURL)
}

// escapeLine keeps paragraph text from being read as Markdown block syntax.
func escapeLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	switch s[0] {
	case '#', '>', '-', '+', '*', '_':
		return `\` + s
	}
	return s
}
