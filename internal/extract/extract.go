package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Parse parses raw markup into a queryable document. Empty input yields an
// empty tree.
func Parse(input []byte) (*goquery.Document, error) {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}

// first returns the first descendant of s matching sel, in document order.
func first(s *goquery.Selection, sel string) *goquery.Selection {
	return s.Find(sel).First()
}

func found(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0
}

// text returns the concatenated descendant text of s with surrounding
// whitespace removed. Internal whitespace is kept as-is.
func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

// paragraphs returns the trimmed text of every <p> under s, skipping the
// ones that are blank.
func paragraphs(s *goquery.Selection) []string {
	out := []string{}
	s.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := text(p); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// collect runs fn over every element of items and keeps the records it
// reports. A panic inside fn drops that element only; it is logged and the
// remaining elements are still processed.
func collect[T any](kind string, items *goquery.Selection, fn func(*goquery.Selection) (T, bool)) []T {
	out := make([]T, 0, items.Length())
	items.Each(func(i int, s *goquery.Selection) {
		rec, ok, err := attempt(s, fn)
		if err != nil {
			log.Error().Err(err).Str("kind", kind).Int("index", i).Msg("skipping malformed entry")
			return
		}
		if ok {
			out = append(out, rec)
		}
	})
	return out
}

func attempt[T any](s *goquery.Selection, fn func(*goquery.Selection) (T, bool)) (rec T, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			rec, ok, err = zero, false, fmt.Errorf("extract: %v", r)
		}
	}()
	rec, ok = fn(s)
	return rec, ok, nil
}
