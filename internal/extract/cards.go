package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CardArticles extracts teaser cards from the recent-event list. A card
// without a heading is skipped; missing body or time stamp leave the
// corresponding field empty.
func (e *Extractor) CardArticles(doc *goquery.Document) []CardArticle {
	sel := e.Selectors()
	return collect(KindCard, doc.Find(sel.CardItem), func(card *goquery.Selection) (CardArticle, bool) {
		content := first(card, sel.CardContent)
		if !found(content) {
			return CardArticle{}, false
		}
		heading := first(content, sel.CardHeading)
		if !found(heading) {
			return CardArticle{}, false
		}
		c := CardArticle{Title: text(heading), IsCard: true}
		if body := first(content, sel.CardBody); found(body) {
			c.Content = strings.Join(paragraphs(body), " ")
		}
		if ts := first(card, sel.CardTime); found(ts) {
			c.Timestamp = text(ts)
		}
		return c, true
	})
}
