package extract

import "github.com/PuerkitoBio/goquery"

// MainHeadline finds the lead story in the main teaser region. The anchor
// inside the first top-level heading supplies title (from its title
// attribute) and URL. A subtitle is attached when the teaser also holds a
// paragraph with a non-empty anchor.
func (e *Extractor) MainHeadline(doc *goquery.Document) (Headline, bool) {
	sel := e.Selectors()
	teaser := first(doc.Selection, sel.MainTeaser)
	if !found(teaser) {
		return Headline{}, false
	}
	heading := first(teaser, sel.MainHeading)
	if !found(heading) {
		return Headline{}, false
	}
	link := first(heading, "a")
	if !found(link) {
		return Headline{}, false
	}
	h := Headline{Title: attr(link, "title"), URL: attr(link, "href"), IsMain: true}
	if h.Title == "" || h.URL == "" {
		return Headline{}, false
	}
	if p := first(teaser, sel.MainSubtitle); found(p) {
		if a := first(p, "a"); found(a) {
			h.Subtitle = text(a)
		}
	}
	return h, true
}

// SecondaryHeadlines returns one headline per article container that sits
// outside the popular section and holds an anchor with a title attribute.
func (e *Extractor) SecondaryHeadlines(doc *goquery.Document) []Headline {
	sel := e.Selectors()
	return collect(KindHeadline, doc.Find(sel.ArticleContainer), func(c *goquery.Selection) (Headline, bool) {
		if c.ParentsFiltered(sel.PopularSection).Length() > 0 {
			return Headline{}, false
		}
		link := c.Find(sel.TitledAnchor).FilterFunction(func(_ int, a *goquery.Selection) bool {
			v, _ := a.Attr("title")
			return v != ""
		}).First()
		if !found(link) {
			return Headline{}, false
		}
		h := Headline{Title: attr(link, "title"), URL: attr(link, "href")}
		if h.Title == "" || h.URL == "" {
			return Headline{}, false
		}
		return h, true
	})
}
