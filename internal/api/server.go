// Package api serves the news tools over a small JSON HTTP API. Every route
// forwards to the tool server through a Caller.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ServiceName    = "News Scraper API"
	ServiceVersion = "1.0.0"
)

// Caller invokes a tool by method name. *rpc.Client implements it.
type Caller interface {
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// Options tunes the server. Zero values are usable.
type Options struct {
	// Mode is the gin mode; empty means release.
	Mode string
	// Now overrides the clock used for /ping timestamps.
	Now func() time.Time
}

// NewServer creates a gin engine with all routes configured.
func NewServer(caller Caller, opts Options) *gin.Engine {
	if opts.Mode == "" {
		opts.Mode = gin.ReleaseMode
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	gin.SetMode(opts.Mode)

	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	r.Use(cors())

	h := &Handler{caller: caller, now: opts.Now}
	r.GET("/", h.Home)
	r.GET("/ping", h.Ping)
	r.GET("/khaleej-times", h.Headline)
	r.GET("/khaleej-times/all", h.Headlines)
	r.POST("/khaleej-times/article", h.Article)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
