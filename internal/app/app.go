// Package app wires configuration into the news source, the tool server and
// the HTTP wrapper.
package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hyperifyio/newsscraper/internal/api"
	"github.com/hyperifyio/newsscraper/internal/fetch"
	"github.com/hyperifyio/newsscraper/internal/llmtools"
	"github.com/hyperifyio/newsscraper/internal/news"
	"github.com/hyperifyio/newsscraper/internal/rpc"
)

// MCPPath is where the tool server is mounted.
const MCPPath = "/mcp/"

type App struct {
	cfg    Config
	Source *news.KhaleejTimes
	Tools  *llmtools.Registry
}

// New validates cfg and builds the source and tool registry.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	sel, err := cfg.ExtractSelectors()
	if err != nil {
		return nil, err
	}

	backstop := cfg.ListingTimeout
	if cfg.ArticleTimeout > backstop {
		backstop = cfg.ArticleTimeout
	}
	client := &fetch.Client{
		HTTPClient:  newFetchHTTPClient(backstop + 5*time.Second),
		UserAgent:   cfg.UserAgent,
		MaxAttempts: cfg.MaxAttempts,
	}
	src := news.New(client, news.Options{
		HomepageURL:    cfg.HomepageURL,
		ListingTimeout: cfg.ListingTimeout,
		ArticleTimeout: cfg.ArticleTimeout,
		Selectors:      sel,
	})

	tools, err := llmtools.NewNewsRegistry(src)
	if err != nil {
		return nil, err
	}
	tools.PerToolTimeout = cfg.ToolTimeout
	return &App{cfg: cfg, Source: src, Tools: tools}, nil
}

func (a *App) Config() Config { return a.cfg }

// MCPHandler serves the tool registry over JSON-RPC at MCPPath. The path
// without the trailing slash is accepted too, so POSTs are never redirected.
func (a *App) MCPHandler() http.Handler {
	srv := rpc.NewServer(a.Tools)
	mux := http.NewServeMux()
	mux.Handle(MCPPath, srv)
	mux.Handle("/mcp", srv)
	return mux
}

// APIHandler returns the HTTP wrapper. It talks to the tool server at
// cfg.MCPServerURL; it does not use a.Tools directly.
func APIHandler(cfg Config) *gin.Engine {
	client := rpc.NewClient(cfg.MCPServerURL)
	client.Timeout = cfg.EffectiveRPCTimeout()
	return api.NewServer(client, api.Options{})
}
