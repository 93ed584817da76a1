package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TimelineEvents extracts live-coverage entries. Each card needs a title row
// with a heading anchor; the time stamp is optional.
func (e *Extractor) TimelineEvents(doc *goquery.Document) []TimelineEvent {
	sel := e.Selectors()
	return collect(KindTimeline, doc.Find(sel.TimelineCard), func(card *goquery.Selection) (TimelineEvent, bool) {
		row := first(card, sel.TimelineTitleRow)
		if !found(row) {
			return TimelineEvent{}, false
		}
		heading := first(row, sel.TimelineHeading)
		if !found(heading) {
			return TimelineEvent{}, false
		}
		link := first(heading, "a")
		if !found(link) {
			return TimelineEvent{}, false
		}
		href, _ := link.Attr("href")
		return TimelineEvent{
			Title:      text(link),
			Timestamp:  timelineStamp(row, sel),
			EventID:    strings.TrimPrefix(href, "#"),
			IsTimeline: true,
		}, true
	})
}

// timelineStamp joins the time-of-day and date spans, or returns "" when
// either is missing.
func timelineStamp(row *goquery.Selection, sel Selectors) string {
	stamp := first(row, sel.TimelineStamp)
	if !found(stamp) {
		return ""
	}
	tm := first(stamp, sel.TimelineTime)
	date := first(stamp, sel.TimelineDate)
	if !found(tm) || !found(date) {
		return ""
	}
	return text(tm) + " " + text(date)
}
