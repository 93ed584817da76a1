package llmtools

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "strings"

    "github.com/hyperifyio/newsscraper/internal/extract"
)

// Tool names exposed by the news server. They are part of the wire contract.
const (
    ToolHeadline    = "get_khaleej_times"
    ToolHeadlines   = "get_khaleej_times_all"
    ToolArticle     = "get_khaleej_times_article"
    ToolPing        = "ping"
    toolsSemVer     = "v1.0.0"
    noArgsSchema    = `{"type":"object","properties":{},"additionalProperties":false}`
    articleArgsJSON = `{"type":"object","properties":{"url":{"type":"string","description":"Absolute article URL"}},"required":["url"],"additionalProperties":false}`
)

// ErrURLRequired is returned by the article tool when no url is supplied.
var ErrURLRequired = fmt.Errorf("%w: url is required", ErrInvalidArgs)

// NewsSource is the behavior the news tools need. *news.KhaleejTimes
// implements it.
type NewsSource interface {
    Headline(ctx context.Context) string
    Headlines(ctx context.Context) []extract.Item
    Article(ctx context.Context, url string) extract.ArticleContent
}

// ArticleArgs are the arguments of get_khaleej_times_article.
type ArticleArgs struct {
    URL string `json:"url"`
}

// NewNewsRegistry registers the news tools and ping against src.
func NewNewsRegistry(src NewsSource) (*Registry, error) {
    if src == nil {
        return nil, errors.New("news source must not be nil")
    }
    r := NewRegistry()
    defs := []ToolDefinition{
        {
            StableName:   ToolHeadline,
            SemVer:       toolsSemVer,
            Description:  "Return the latest Khaleej Times lead headline",
            JSONSchema:   json.RawMessage(noArgsSchema),
            Capabilities: []string{"headlines"},
            Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
                return json.Marshal(src.Headline(ctx))
            },
        },
        {
            StableName:   ToolHeadlines,
            SemVer:       toolsSemVer,
            Description:  "Return every headline, card article and timeline event on the Khaleej Times homepage",
            JSONSchema:   json.RawMessage(noArgsSchema),
            Capabilities: []string{"headlines"},
            Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
                items := src.Headlines(ctx)
                if items == nil {
                    items = []extract.Item{}
                }
                return json.Marshal(items)
            },
        },
        {
            StableName:   ToolArticle,
            SemVer:       toolsSemVer,
            Description:  "Fetch a Khaleej Times article and return its title, paragraphs, author and date",
            JSONSchema:   json.RawMessage(articleArgsJSON),
            Capabilities: []string{"article"},
            Handler: func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
                var in ArticleArgs
                if err := json.Unmarshal(args, &in); err != nil {
                    return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
                }
                in.URL = strings.TrimSpace(in.URL)
                if in.URL == "" {
                    return nil, ErrURLRequired
                }
                return json.Marshal(src.Article(ctx, in.URL))
            },
        },
        {
            StableName:   ToolPing,
            SemVer:       toolsSemVer,
            Description:  "Liveness probe that answers pong",
            JSONSchema:   json.RawMessage(noArgsSchema),
            Capabilities: []string{"health"},
            Handler: func(context.Context, json.RawMessage) (json.RawMessage, error) {
                return json.RawMessage(`"pong"`), nil
            },
        },
    }
    for _, d := range defs {
        if err := r.Register(d); err != nil {
            return nil, fmt.Errorf("register %s: %w", d.StableName, err)
        }
    }
    return r, nil
}
