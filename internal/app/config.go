package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hyperifyio/newsscraper/internal/extract"
	"github.com/hyperifyio/newsscraper/internal/news"
	"github.com/hyperifyio/newsscraper/internal/rpc"
)

// Defaults for the listen addresses and the tool server URL.
const (
	DefaultMCPAddr      = ":8000"
	DefaultMCPServerURL = "http://localhost:8000/mcp/"
	DefaultAPIAddr      = ":5000"
	DefaultToolTimeout  = 30 * time.Second

	// rpcTimeoutMargin is added on top of the slower fetch timeout when the
	// wrapper's RPC timeout is derived.
	rpcTimeoutMargin = 5 * time.Second
)

// Config holds runtime configuration for the application.
type Config struct {
	// Source
	HomepageURL    string
	UserAgent      string
	ListingTimeout time.Duration
	ArticleTimeout time.Duration
	MaxAttempts    int
	// Selectors overrides entries of the selector table by key.
	Selectors map[string]string

	// Tool server
	MCPAddr     string
	ToolTimeout time.Duration

	// HTTP wrapper
	APIAddr      string
	MCPServerURL string
	// RPCTimeout bounds wrapper calls to the tool server. Zero derives it
	// from the fetch timeouts, see EffectiveRPCTimeout.
	RPCTimeout time.Duration

	// Behavior
	Verbose bool
	LogJSON bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HomepageURL:    news.DefaultHomepageURL,
		ListingTimeout: news.DefaultListingTimeout,
		ArticleTimeout: news.DefaultArticleTimeout,
		MaxAttempts:    1,
		MCPAddr:        DefaultMCPAddr,
		ToolTimeout:    DefaultToolTimeout,
		APIAddr:        DefaultAPIAddr,
		MCPServerURL:   DefaultMCPServerURL,
	}
}

// EffectiveRPCTimeout returns RPCTimeout when set. Otherwise it returns the
// slower of the listing and article timeouts plus a margin, so a slow but
// successful fetch reaches the wrapper before its own call gives up.
func (c Config) EffectiveRPCTimeout() time.Duration {
	if c.RPCTimeout > 0 {
		return c.RPCTimeout
	}
	d := c.ListingTimeout
	if c.ArticleTimeout > d {
		d = c.ArticleTimeout
	}
	if d <= 0 {
		return rpc.DefaultClientTimeout
	}
	return d + rpcTimeoutMargin
}

// ExtractSelectors returns the default selector table with cfg's overrides
// applied and validated.
func (c Config) ExtractSelectors() (extract.Selectors, error) {
	sel, err := extract.DefaultSelectors().WithOverrides(c.Selectors)
	if err != nil {
		return extract.Selectors{}, err
	}
	if err := sel.Validate(); err != nil {
		return extract.Selectors{}, err
	}
	return sel, nil
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if err := validateHTTPURL("homepage url", cfg.HomepageURL); err != nil {
		return err
	}
	if err := validateHTTPURL("mcp server url", cfg.MCPServerURL); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.MCPAddr) == "" || strings.TrimSpace(cfg.APIAddr) == "" {
		return errors.New("config: listen addresses must not be empty")
	}
	if cfg.ListingTimeout <= 0 || cfg.ArticleTimeout <= 0 || cfg.ToolTimeout <= 0 {
		return errors.New("config: timeouts must be positive")
	}
	if cfg.RPCTimeout < 0 {
		return errors.New("config: rpc timeout must not be negative")
	}
	if cfg.MaxAttempts < 1 {
		return errors.New("config: max attempts must be at least 1")
	}
	if _, err := cfg.ExtractSelectors(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: %s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
