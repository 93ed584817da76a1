package extract

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustParse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := Parse([]byte(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func loadHomepage(t *testing.T) *goquery.Document {
	t.Helper()
	b, err := os.ReadFile("testdata/homepage.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return mustParse(t, string(b))
}

func TestHeadlines_FullHomepageOrder(t *testing.T) {
	doc := loadHomepage(t)
	items := New(DefaultSelectors()).Headlines(doc)

	want := []Item{
		Headline{Title: "Lead story title", URL: "/uae/lead-story", IsMain: true, Subtitle: "The lead story subtitle"},
		Headline{Title: "First secondary", URL: "/world/first"},
		Headline{Title: "Second secondary", URL: "/business/second"},
		Headline{Title: "Third secondary", URL: "https://www.khaleejtimes.com/third"},
		CardArticle{Title: "Card one", Content: "First paragraph. Second paragraph.", Timestamp: "10:15 AM", IsCard: true},
		CardArticle{Title: "Card without body", IsCard: true},
		TimelineEvent{Title: "Timeline one", Timestamp: "09:00 19 Oct", EventID: "event-1", IsTimeline: true},
		TimelineEvent{Title: "Timeline two", EventID: "event-2", IsTimeline: true},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items:\n got: %#v\nwant: %#v", items, want)
	}
}

func TestHeadlines_Idempotent(t *testing.T) {
	doc := loadHomepage(t)
	e := New(DefaultSelectors())
	first := e.Headlines(doc)
	for i := 0; i < 5; i++ {
		if again := e.Headlines(doc); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestMainHeadline_MinimalFixture(t *testing.T) {
	doc := mustParse(t, `<div class="main-top-teaser-content"><h1><a title="A" href="/a">A</a></h1></div>`)
	var e Extractor
	items := e.Headlines(doc)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	h, ok := items[0].(Headline)
	if !ok || h != (Headline{Title: "A", URL: "/a", IsMain: true}) {
		t.Fatalf("unexpected first item: %#v", items[0])
	}
	if got := LatestHeadline(items); got != "A" {
		t.Fatalf("LatestHeadline = %q, want %q", got, "A")
	}
}

func TestMainHeadline_MissingPieces(t *testing.T) {
	cases := map[string]string{
		"no teaser":         `<div><h1><a title="A" href="/a">A</a></h1></div>`,
		"no heading":        `<div class="main-top-teaser-content"><h2><a title="A" href="/a">A</a></h2></div>`,
		"no anchor":         `<div class="main-top-teaser-content"><h1>A</h1></div>`,
		"blank title":       `<div class="main-top-teaser-content"><h1><a title="   " href="/a">A</a></h1></div>`,
		"blank href":        `<div class="main-top-teaser-content"><h1><a title="A" href=" ">A</a></h1></div>`,
		"subtitle only":     `<div class="main-top-teaser-content"><p><a href="/s">Sub</a></p></div>`,
		"title attr absent": `<div class="main-top-teaser-content"><h1><a href="/a">A</a></h1></div>`,
	}
	var e Extractor
	for name, markup := range cases {
		t.Run(name, func(t *testing.T) {
			if h, ok := e.MainHeadline(mustParse(t, markup)); ok {
				t.Fatalf("expected no main headline, got %#v", h)
			}
		})
	}
}

func TestMainHeadline_SubtitleRequiresAnchorText(t *testing.T) {
	doc := mustParse(t, `<div class="main-top-teaser-content">
		<h1><a title="A" href="/a">A</a></h1>
		<p>Plain text, no link</p>
	</div>`)
	var e Extractor
	h, ok := e.MainHeadline(doc)
	if !ok {
		t.Fatalf("expected main headline")
	}
	if h.Subtitle != "" {
		t.Fatalf("expected no subtitle, got %q", h.Subtitle)
	}
}

func TestSecondaryHeadlines_ExcludesPopularAtAnyDepth(t *testing.T) {
	doc := mustParse(t, `
		<div class="rendered_board_article"><a title="Before" href="/before">x</a></div>
		<div class="most-popuplar-ongoing-viral-outer"><section><div><div class="rendered_board_article"><a title="Deep" href="/deep">x</a></div></div></section></div>
		<div class="rendered_board_article"><a title="After" href="/after">x</a></div>`)
	var e Extractor
	got := e.SecondaryHeadlines(doc)
	want := []Headline{{Title: "Before", URL: "/before"}, {Title: "After", URL: "/after"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestCardArticles_ContentAndTimestamp(t *testing.T) {
	doc := mustParse(t, `<ul>
		<li class="rcnt-evntPost">
			<div class="evnt-content">
				<h2>Title</h2>
				<div><p> a </p><p></p><p>b</p></div>
			</div>
		</li>
	</ul>`)
	var e Extractor
	cards := e.CardArticles(doc)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	c := cards[0]
	if c.Title != "Title" || c.Content != "a b" || c.Timestamp != "" || !c.IsCard {
		t.Fatalf("unexpected card: %#v", c)
	}
}

func TestTimelineEvents_StripsSingleLeadingHash(t *testing.T) {
	doc := mustParse(t, `<div class="card-box"><div class="post-title-rows"><h4><a href="##x">T</a></h4></div></div>`)
	var e Extractor
	events := e.TimelineEvents(doc)
	if len(events) != 1 || events[0].EventID != "#x" {
		t.Fatalf("unexpected events: %#v", events)
	}
}

func TestTimelineEvents_StampNeedsBothParts(t *testing.T) {
	doc := mustParse(t, `
		<div class="card-box"><div class="post-title-rows">
			<div class="time-stmp"><span class="date-evnt">19 Oct</span></div>
			<h4><a href="#a">A</a></h4>
		</div></div>
		<div class="card-box"><div class="post-title-rows">
			<h4><a href="#b">B</a></h4>
		</div></div>`)
	var e Extractor
	events := e.TimelineEvents(doc)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Timestamp != "" {
			t.Fatalf("expected empty timestamp, got %q", ev.Timestamp)
		}
	}
}

func TestCollect_OneBadEntryDoesNotPoisonBatch(t *testing.T) {
	doc := mustParse(t, `<ul><li>one</li><li>boom</li><li>three</li></ul>`)
	got := collect(KindCard, doc.Find("li"), func(s *goquery.Selection) (string, bool) {
		if text(s) == "boom" {
			panic("malformed entry")
		}
		return text(s), true
	})
	want := []string{"one", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHeadlines_MalformedDocumentsNeverPanic(t *testing.T) {
	inputs := []string{
		`<html>`,
		`<div class="main-top-teaser-content"><h1><a`,
		`<li class="rcnt-evntPost"><div class="evnt-content"><h2>`,
		`<div class="card-box"><div class="post-title-rows"><h4><a href="#`,
		`<div class="rendered_board_article"><a title="x" href="/y"`,
		`<<<>>>`,
	}
	var e Extractor
	for _, in := range inputs {
		items, err := e.HeadlinesFromHTML([]byte(in))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if items == nil {
			t.Fatalf("expected non-nil list for %q", in)
		}
	}
}

func TestHeadlinesFromHTML_EmptyInput(t *testing.T) {
	e := New(DefaultSelectors())
	for _, in := range [][]byte{nil, []byte(" \n\t")} {
		items, err := e.HeadlinesFromHTML(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("%q: expected empty non-nil list, got %#v", in, items)
		}
	}
}

func TestArticle_Scenario(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<h1 class="article-title"> Big News </h1>
		<div class="article-center-wrap-nf"><p>Hello</p><p>  </p></div>
	</body></html>`)
	var e Extractor
	a := e.Article(doc)
	if a.Title == nil || *a.Title != "Big News" {
		t.Fatalf("unexpected title: %v", a.Title)
	}
	if !reflect.DeepEqual(a.Content, []string{"Hello"}) {
		t.Fatalf("unexpected content: %#v", a.Content)
	}
	if a.Author != nil || a.Date != nil || a.Error != nil {
		t.Fatalf("expected absent author/date/error, got %#v", a)
	}
}

func TestArticle_AllFields(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<h1 class="article-title">Title</h1>
		<div class="details"><span>By</span><h4> Jane Reporter </h4></div>
		<time datetime="2026-10-19"> October 19, 2026 </time>
		<div class="article-center-wrap-nf">
			<p>One</p>
			<div><p> Two </p></div>
			<p></p>
		</div>
		<p>Outside body</p>
	</body></html>`)
	var e Extractor
	a := e.Article(doc)
	if *a.Title != "Title" || *a.Author != "Jane Reporter" || *a.Date != "October 19, 2026" {
		t.Fatalf("unexpected article: %#v", a)
	}
	if !reflect.DeepEqual(a.Content, []string{"One", "Two"}) {
		t.Fatalf("unexpected content: %#v", a.Content)
	}
}

func TestArticle_PlaceholderTitleAndEmptyContent(t *testing.T) {
	var e Extractor
	a := e.ArticleFromHTML([]byte(`<html><body><h1>Not the article title</h1><div class="details"></div></body></html>`))
	if a.Title == nil || *a.Title != NoTitleFound {
		t.Fatalf("expected placeholder title, got %v", a.Title)
	}
	if a.Content == nil || len(a.Content) != 0 {
		t.Fatalf("expected empty content, got %#v", a.Content)
	}
	if a.Author != nil {
		t.Fatalf("expected no author without heading, got %q", *a.Author)
	}
}

func TestArticleFromHTML_EmptyInputIsPlaceholderRecord(t *testing.T) {
	e := New(DefaultSelectors())
	for _, in := range [][]byte{nil, []byte(""), []byte("   \n")} {
		a := e.ArticleFromHTML(in)
		if a.Failed() {
			t.Fatalf("%q: unexpected error %q", in, *a.Error)
		}
		b, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"title":"No title found","content":[],"author":null,"date":null,"error":null}`
		if string(b) != want {
			t.Fatalf("%q: got %s, want %s", in, b, want)
		}
	}
}

func TestArticleContent_JSONShape(t *testing.T) {
	b, err := json.Marshal(FailedArticle(os.ErrNotExist))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":null,"content":[],"author":null,"date":null,"error":"file does not exist"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestItems_JSONFlags(t *testing.T) {
	items := []Item{
		Headline{Title: "A", URL: "/a", IsMain: true},
		CardArticle{Title: "C", IsCard: true},
		TimelineEvent{Title: "T", EventID: "e", IsTimeline: true},
	}
	b, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, frag := range []string{`"is_main":true`, `"is_card":true`, `"is_timeline":true`, `"event_id":"e"`} {
		if !strings.Contains(s, frag) {
			t.Fatalf("expected %s in %s", frag, s)
		}
	}
	if strings.Contains(s, "subtitle") {
		t.Fatalf("subtitle should be omitted when empty: %s", s)
	}
}

func TestLatestHeadline(t *testing.T) {
	cases := []struct {
		name  string
		items []Item
		want  string
	}{
		{"empty", nil, NoHeadlinesFound},
		{"with subtitle", []Item{Headline{Title: "A", URL: "/a", IsMain: true, Subtitle: "S"}}, "A - S"},
		{"secondary first", []Item{Headline{Title: "B", URL: "/b"}}, "B"},
		{"card first", []Item{CardArticle{Title: "C", IsCard: true}}, "C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LatestHeadline(tc.items); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
