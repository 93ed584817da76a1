package app

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

// LoadEnvFiles reads KEY=VALUE pairs and populates the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("FOO", "")
    t.Setenv("BAR", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# sample dotenv file\nFOO=alpha\nBAR=\"beta\"\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("FOO"); got != "alpha" {
        t.Fatalf("FOO=%q, want alpha", got)
    }
    if got := os.Getenv("BAR"); got != "beta" {
        t.Fatalf("BAR=%q, want beta", got)
    }
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil { t.Fatalf("write a: %v", err) }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil { t.Fatalf("write b: %v", err) }

    if err := LoadEnvFiles(a, b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

func TestLoadEnvFiles_MissingFileIgnored(t *testing.T) {
    if err := LoadEnvFiles(filepath.Join(t.TempDir(), "nope.env"), ""); err != nil {
        t.Fatalf("missing file should be skipped: %v", err)
    }
}

func TestApplyEnvToConfig_FromEnv(t *testing.T) {
    t.Setenv("NEWS_HOMEPAGE_URL", "http://mirror.example/")
    t.Setenv("NEWS_USER_AGENT", "test-agent")
    t.Setenv("NEWS_LISTING_TIMEOUT", "3s")
    t.Setenv("NEWS_ARTICLE_TIMEOUT", "bogus")
    t.Setenv("NEWS_MAX_ATTEMPTS", "3")
    t.Setenv("MCP_ADDR", ":9000")
    t.Setenv("MCP_SERVER_URL", "http://tools:9000/mcp/")
    t.Setenv("MCP_TIMEOUT", "7s")
    t.Setenv("API_ADDR", ":9001")
    t.Setenv("VERBOSE", "yes")
    t.Setenv("LOG_JSON", "0")

    cfg := DefaultConfig()
    cfg.LogJSON = true
    ApplyEnvToConfig(&cfg)

    if cfg.HomepageURL != "http://mirror.example/" || cfg.UserAgent != "test-agent" {
        t.Fatalf("source env not applied: %+v", cfg)
    }
    if cfg.ListingTimeout != 3*time.Second {
        t.Fatalf("listing timeout = %v", cfg.ListingTimeout)
    }
    if cfg.ArticleTimeout != DefaultConfig().ArticleTimeout {
        t.Fatalf("invalid duration should be ignored, got %v", cfg.ArticleTimeout)
    }
    if cfg.MaxAttempts != 3 || cfg.MCPAddr != ":9000" || cfg.APIAddr != ":9001" {
        t.Fatalf("unexpected cfg %+v", cfg)
    }
    if cfg.MCPServerURL != "http://tools:9000/mcp/" || cfg.RPCTimeout != 7*time.Second {
        t.Fatalf("wrapper env not applied: %+v", cfg)
    }
    if !cfg.Verbose || cfg.LogJSON {
        t.Fatalf("booleans not applied: verbose=%v logJSON=%v", cfg.Verbose, cfg.LogJSON)
    }
}
