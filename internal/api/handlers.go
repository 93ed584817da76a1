package api

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/newsscraper/internal/llmtools"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
	msgURLRequired  = "URL parameter is required"
)

// Handler holds the route handlers.
type Handler struct {
	caller Caller
	now    func() time.Time
}

// PingResponse is the body of GET /ping.
type PingResponse struct {
	Status         string            `json:"status"`
	Timestamp      string            `json:"timestamp"`
	Components     map[string]string `json:"components"`
	ResponseTimeMS float64           `json:"response_time_ms"`
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"version": ServiceVersion,
		"endpoints": map[string]string{
			"/":                      "This help message",
			"/ping":                  "Health check endpoint to verify service status",
			"/khaleej-times":         "Get latest headline from Khaleej Times",
			"/khaleej-times/all":     "Get all main headlines from Khaleej Times",
			"/khaleej-times/article": "Get full article content (POST with url parameter)",
		},
	})
}

// Ping reports the health of this API and of the tool server behind it. It
// always answers 200; a failing tool server only degrades the status.
func (h *Handler) Ping(c *gin.Context) {
	start := time.Now()
	resp := PingResponse{
		Status:    statusHealthy,
		Timestamp: h.now().Format("2006-01-02 15:04:05"),
		Components: map[string]string{
			"api":        statusHealthy,
			"mcp_server": statusUnhealthy,
		},
	}

	res, err := h.caller.Call(c.Request.Context(), llmtools.ToolPing, nil)
	if err != nil {
		log.Error().Err(err).Msg("tool server health check failed")
	} else {
		var pong string
		if json.Unmarshal(res, &pong) == nil && pong == "pong" {
			resp.Components["mcp_server"] = statusHealthy
		}
	}
	if resp.Components["mcp_server"] != statusHealthy {
		resp.Status = statusDegraded
	}
	ms := float64(time.Since(start).Microseconds()) / 1000
	resp.ResponseTimeMS = math.Round(ms*100) / 100
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Headline(c *gin.Context) {
	res, ok := h.call(c, llmtools.ToolHeadline, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"headline": res})
}

func (h *Handler) Headlines(c *gin.Context) {
	res, ok := h.call(c, llmtools.ToolHeadlines, nil)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"headlines": res})
}

// Article expects {"url": "..."}. A missing body or url is a client error;
// the tool's record is passed through unchanged otherwise.
func (h *Handler) Article(c *gin.Context) {
	var body struct {
		URL *string `json:"url"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("article request body rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgURLRequired})
		return
	}
	if body.URL == nil || strings.TrimSpace(*body.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgURLRequired})
		return
	}
	res, ok := h.call(c, llmtools.ToolArticle, llmtools.ArticleArgs{URL: *body.URL})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// call forwards to the tool server and writes the 500 response on failure.
func (h *Handler) call(c *gin.Context, method string, params any) (json.RawMessage, bool) {
	res, err := h.caller.Call(c.Request.Context(), method, params)
	if err != nil {
		log.Error().Err(err).Str("tool", method).Msg("tool call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}
