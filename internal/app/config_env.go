package app

import (
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/rs/zerolog/log"
)

// ApplyEnvToConfig overrides cfg fields with environment variables when the
// corresponding variables are set. Unparseable values are logged and ignored.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if v := os.Getenv("NEWS_HOMEPAGE_URL"); v != "" { cfg.HomepageURL = v }
    if v := os.Getenv("NEWS_USER_AGENT"); v != "" { cfg.UserAgent = v }
    if v := os.Getenv("MCP_ADDR"); v != "" { cfg.MCPAddr = v }
    if v := os.Getenv("MCP_SERVER_URL"); v != "" { cfg.MCPServerURL = v }
    if v := os.Getenv("API_ADDR"); v != "" { cfg.APIAddr = v }

    setDuration := func(dst *time.Duration, envKey string) {
        s := strings.TrimSpace(os.Getenv(envKey))
        if s == "" { return }
        d, err := time.ParseDuration(s)
        if err != nil || d <= 0 {
            log.Warn().Str("env", envKey).Str("value", s).Msg("ignoring invalid duration")
            return
        }
        *dst = d
    }
    setDuration(&cfg.ListingTimeout, "NEWS_LISTING_TIMEOUT")
    setDuration(&cfg.ArticleTimeout, "NEWS_ARTICLE_TIMEOUT")
    setDuration(&cfg.ToolTimeout, "MCP_TOOL_TIMEOUT")
    setDuration(&cfg.RPCTimeout, "MCP_TIMEOUT")

    if s := strings.TrimSpace(os.Getenv("NEWS_MAX_ATTEMPTS")); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 {
            cfg.MaxAttempts = n
        } else {
            log.Warn().Str("env", "NEWS_MAX_ATTEMPTS").Str("value", s).Msg("ignoring invalid attempt count")
        }
    }

    // Booleans override when env present and truthy/falsey
    setBool := func(dst *bool, envKey string) {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
            switch s {
            case "1", "true", "yes", "on":
                *dst = true
            case "0", "false", "no", "off":
                *dst = false
            }
        }
    }
    setBool(&cfg.Verbose, "VERBOSE")
    setBool(&cfg.LogJSON, "LOG_JSON")
}
