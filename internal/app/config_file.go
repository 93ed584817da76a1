package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// Duration accepts "10s"-style strings in YAML and JSON config files.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
    var s string
    if err := value.Decode(&s); err != nil {
        return err
    }
    return d.set(s)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
    var s string
    if err := json.Unmarshal(b, &s); err != nil {
        return fmt.Errorf("duration must be a string like \"10s\": %w", err)
    }
    return d.set(s)
}

func (d *Duration) set(s string) error {
    v, err := time.ParseDuration(s)
    if err != nil {
        return err
    }
    *d = Duration(v)
    return nil
}

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to flags/env.
type FileConfig struct {
    Source struct {
        HomepageURL    string   `yaml:"homepage" json:"homepage"`
        UserAgent      string   `yaml:"userAgent" json:"userAgent"`
        ListingTimeout Duration `yaml:"listingTimeout" json:"listingTimeout"`
        ArticleTimeout Duration `yaml:"articleTimeout" json:"articleTimeout"`
        MaxAttempts    int      `yaml:"maxAttempts" json:"maxAttempts"`
    } `yaml:"source" json:"source"`

    Selectors map[string]string `yaml:"selectors" json:"selectors"`

    MCP struct {
        Addr        string   `yaml:"addr" json:"addr"`
        ToolTimeout Duration `yaml:"toolTimeout" json:"toolTimeout"`
    } `yaml:"mcp" json:"mcp"`

    API struct {
        Addr       string   `yaml:"addr" json:"addr"`
        MCPURL     string   `yaml:"mcpURL" json:"mcpURL"`
        RPCTimeout Duration `yaml:"rpcTimeout" json:"rpcTimeout"`
    } `yaml:"api" json:"api"`

    Verbose bool `yaml:"verbose" json:"verbose"`
    LogJSON bool `yaml:"logJSON" json:"logJSON"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays every value the file sets onto cfg. It runs before
// the environment and flag overlays, so the file only replaces defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if fc.Source.HomepageURL != "" { cfg.HomepageURL = fc.Source.HomepageURL }
    if fc.Source.UserAgent != "" { cfg.UserAgent = fc.Source.UserAgent }
    if fc.Source.ListingTimeout > 0 { cfg.ListingTimeout = time.Duration(fc.Source.ListingTimeout) }
    if fc.Source.ArticleTimeout > 0 { cfg.ArticleTimeout = time.Duration(fc.Source.ArticleTimeout) }
    if fc.Source.MaxAttempts > 0 { cfg.MaxAttempts = fc.Source.MaxAttempts }

    if len(fc.Selectors) > 0 {
        merged := make(map[string]string, len(cfg.Selectors)+len(fc.Selectors))
        for k, v := range cfg.Selectors { merged[k] = v }
        for k, v := range fc.Selectors { merged[k] = v }
        cfg.Selectors = merged
    }

    if fc.MCP.Addr != "" { cfg.MCPAddr = fc.MCP.Addr }
    if fc.MCP.ToolTimeout > 0 { cfg.ToolTimeout = time.Duration(fc.MCP.ToolTimeout) }

    if fc.API.Addr != "" { cfg.APIAddr = fc.API.Addr }
    if fc.API.MCPURL != "" { cfg.MCPServerURL = fc.API.MCPURL }
    if fc.API.RPCTimeout > 0 { cfg.RPCTimeout = time.Duration(fc.API.RPCTimeout) }

    if fc.Verbose { cfg.Verbose = true }
    if fc.LogJSON { cfg.LogJSON = true }
}
