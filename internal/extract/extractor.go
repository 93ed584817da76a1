package extract

import "github.com/PuerkitoBio/goquery"

// Extractor pulls headline and article records out of parsed pages using a
// selector table. The zero value uses DefaultSelectors.
type Extractor struct {
	sel Selectors
}

// New returns an Extractor for the given selectors.
func New(sel Selectors) *Extractor {
	return &Extractor{sel: sel}
}

// Selectors returns the table in use.
func (e *Extractor) Selectors() Selectors {
	if e == nil || e.sel == (Selectors{}) {
		return DefaultSelectors()
	}
	return e.sel
}

// Headlines assembles the homepage list: main headline, secondary
// headlines, card articles, then timeline events, each in document order.
// Entries are not de-duplicated across categories.
func (e *Extractor) Headlines(doc *goquery.Document) []Item {
	items := []Item{}
	if doc == nil {
		return items
	}
	if main, ok := e.MainHeadline(doc); ok {
		items = append(items, main)
	}
	for _, h := range e.SecondaryHeadlines(doc) {
		items = append(items, h)
	}
	for _, c := range e.CardArticles(doc) {
		items = append(items, c)
	}
	for _, t := range e.TimelineEvents(doc) {
		items = append(items, t)
	}
	return items
}

// HeadlinesFromHTML parses input and assembles the headline list.
func (e *Extractor) HeadlinesFromHTML(input []byte) ([]Item, error) {
	doc, err := Parse(input)
	if err != nil {
		return []Item{}, err
	}
	return e.Headlines(doc), nil
}

// ArticleFromHTML parses input and extracts the article. Parse failures yield
// the error-flagged record.
func (e *Extractor) ArticleFromHTML(input []byte) ArticleContent {
	doc, err := Parse(input)
	if err != nil {
		return FailedArticle(err)
	}
	return e.Article(doc)
}

// LatestHeadline renders the first entry of items as a single line, adding
// the subtitle when the entry carries one.
func LatestHeadline(items []Item) string {
	if len(items) == 0 {
		return NoHeadlinesFound
	}
	if h, ok := items[0].(Headline); ok && h.Subtitle != "" {
		return h.Title + " - " + h.Subtitle
	}
	return items[0].ItemTitle()
}
