package llmtools

import (
    "context"
    "encoding/json"
    "errors"
    "testing"

    "github.com/hyperifyio/newsscraper/internal/extract"
)

type fakeSource struct {
    headline string
    items    []extract.Item
    lastURL  string
}

func (f *fakeSource) Headline(context.Context) string { return f.headline }
func (f *fakeSource) Headlines(context.Context) []extract.Item { return f.items }
func (f *fakeSource) Article(_ context.Context, url string) extract.ArticleContent {
    f.lastURL = url
    title := "Title"
    return extract.ArticleContent{Title: &title, Content: []string{"p1"}}
}

func newTestRegistry(t *testing.T, src *fakeSource) *Registry {
    t.Helper()
    r, err := NewNewsRegistry(src)
    if err != nil {
        t.Fatalf("NewNewsRegistry: %v", err)
    }
    return r
}

func TestNewsRegistry_ListsAllTools(t *testing.T) {
    r := newTestRegistry(t, &fakeSource{})
    var names []string
    for _, s := range r.Specs() {
        names = append(names, s.Name)
    }
    want := []string{ToolHeadline, ToolHeadlines, ToolArticle, ToolPing}
    if len(names) != len(want) {
        t.Fatalf("got %v", names)
    }
    for _, w := range want {
        if _, ok := r.Get(w); !ok {
            t.Fatalf("missing tool %s in %v", w, names)
        }
    }
}

func TestNewsRegistry_Headline(t *testing.T) {
    r := newTestRegistry(t, &fakeSource{headline: "Lead - More"})
    res, err := r.Call(context.Background(), ToolHeadline, nil)
    if err != nil {
        t.Fatalf("Call: %v", err)
    }
    if string(res) != `"Lead - More"` {
        t.Fatalf("unexpected result %s", res)
    }
}

func TestNewsRegistry_HeadlinesNeverNull(t *testing.T) {
    r := newTestRegistry(t, &fakeSource{})
    res, err := r.Call(context.Background(), ToolHeadlines, json.RawMessage(`{}`))
    if err != nil {
        t.Fatalf("Call: %v", err)
    }
    if string(res) != `[]` {
        t.Fatalf("unexpected result %s", res)
    }
}

func TestNewsRegistry_HeadlinesOrderAndKinds(t *testing.T) {
    src := &fakeSource{items: []extract.Item{
        extract.Headline{Title: "A", URL: "/a", IsMain: true},
        extract.TimelineEvent{Title: "T", EventID: "e1", IsTimeline: true},
    }}
    res, err := newTestRegistry(t, src).Call(context.Background(), ToolHeadlines, nil)
    if err != nil {
        t.Fatalf("Call: %v", err)
    }
    var out []map[string]any
    if err := json.Unmarshal(res, &out); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if len(out) != 2 || out[0]["is_main"] != true || out[1]["is_timeline"] != true {
        t.Fatalf("unexpected headlines: %s", res)
    }
}

func TestNewsRegistry_ArticleRequiresURL(t *testing.T) {
    r := newTestRegistry(t, &fakeSource{})
    for _, args := range []string{``, `{}`, `{"url":"  "}`} {
        _, err := r.Call(context.Background(), ToolArticle, json.RawMessage(args))
        if !errors.Is(err, ErrURLRequired) {
            t.Fatalf("%q: expected ErrURLRequired, got %v", args, err)
        }
    }
    if _, err := r.Call(context.Background(), ToolArticle, json.RawMessage(`{"url":5}`)); !errors.Is(err, ErrInvalidArgs) {
        t.Fatalf("expected ErrInvalidArgs for non-string url, got %v", err)
    }
}

func TestNewsRegistry_ArticlePassesThrough(t *testing.T) {
    src := &fakeSource{}
    res, err := newTestRegistry(t, src).Call(context.Background(), ToolArticle, json.RawMessage(`{"url":"https://x/story"}`))
    if err != nil {
        t.Fatalf("Call: %v", err)
    }
    if src.lastURL != "https://x/story" {
        t.Fatalf("url not forwarded: %q", src.lastURL)
    }
    if string(res) != `{"title":"Title","content":["p1"],"author":null,"date":null,"error":null}` {
        t.Fatalf("unexpected article JSON %s", res)
    }
}

func TestNewsRegistry_Ping(t *testing.T) {
    res, err := newTestRegistry(t, &fakeSource{}).Call(context.Background(), ToolPing, nil)
    if err != nil || string(res) != `"pong"` {
        t.Fatalf("ping = %s, %v", res, err)
    }
}

func TestNewNewsRegistry_NilSource(t *testing.T) {
    if _, err := NewNewsRegistry(nil); err == nil {
        t.Fatalf("expected error for nil source")
    }
}
