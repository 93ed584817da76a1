package extract

import "github.com/PuerkitoBio/goquery"

// Article extracts title, paragraphs, author and date from an article-detail
// page. Every part is optional; a missing title becomes NoTitleFound.
func (e *Extractor) Article(doc *goquery.Document) ArticleContent {
	sel := e.Selectors()
	out := ArticleContent{Title: strPtr(NoTitleFound), Content: []string{}}
	if doc == nil {
		return out
	}
	if t := first(doc.Selection, sel.ArticleTitle); found(t) {
		out.Title = strPtr(text(t))
	}
	if body := first(doc.Selection, sel.ArticleBody); found(body) {
		out.Content = paragraphs(body)
	}
	if details := first(doc.Selection, sel.ArticleDetails); found(details) {
		if name := first(details, sel.ArticleAuthor); found(name) {
			out.Author = strPtr(text(name))
		}
	}
	if d := first(doc.Selection, sel.ArticleDate); found(d) {
		out.Date = strPtr(text(d))
	}
	return out
}
