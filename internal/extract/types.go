package extract

// Placeholders returned in place of missing data.
const (
	NoHeadlinesFound = "No headlines found"
	NoTitleFound     = "No title found"
)

// Item kinds, as reported by Item.Kind.
const (
	KindHeadline = "headline"
	KindCard     = "card"
	KindTimeline = "timeline"
)

// Item is one entry of a homepage headline list: a Headline, a CardArticle
// or a TimelineEvent.
type Item interface {
	ItemTitle() string
	Kind() string
}

// Headline is a title and URL pair from the homepage. IsMain marks the lead
// story, which may carry a Subtitle.
type Headline struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	IsMain   bool   `json:"is_main"`
	Subtitle string `json:"subtitle,omitempty"`
}

func (h Headline) ItemTitle() string { return h.Title }
func (h Headline) Kind() string      { return KindHeadline }

// CardArticle is a teaser entry whose summary paragraphs are inlined on the
// homepage.
type CardArticle struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	IsCard    bool   `json:"is_card"`
}

func (c CardArticle) ItemTitle() string { return c.Title }
func (c CardArticle) Kind() string      { return KindCard }

// TimelineEvent is a dated entry of a live-coverage story. EventID is the
// in-page fragment the entry links to, without the leading '#'.
type TimelineEvent struct {
	Title      string `json:"title"`
	Timestamp  string `json:"timestamp"`
	EventID    string `json:"event_id"`
	IsTimeline bool   `json:"is_timeline"`
}

func (e TimelineEvent) ItemTitle() string { return e.Title }
func (e TimelineEvent) Kind() string      { return KindTimeline }

// ArticleContent is the body of an article-detail page. Absent values encode
// as JSON null. When Error is set every other field is cleared.
type ArticleContent struct {
	Title   *string  `json:"title"`
	Content []string `json:"content"`
	Author  *string  `json:"author"`
	Date    *string  `json:"date"`
	Error   *string  `json:"error"`
}

// FailedArticle returns the error-flagged record for err.
func FailedArticle(err error) ArticleContent {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return ArticleContent{Content: []string{}, Error: &msg}
}

// Failed reports whether the record carries an error.
func (a ArticleContent) Failed() bool { return a.Error != nil }

func strPtr(s string) *string { return &s }
