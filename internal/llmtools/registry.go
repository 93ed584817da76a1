package llmtools

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "regexp"
    "sort"
    "strings"
    "time"
)

// ToolHandler executes a tool using the provided raw JSON arguments and returns
// a raw JSON result or an error. Errors are surfaced to remote callers as-is,
// so their messages must be safe to expose.
type ToolHandler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// ToolDefinition describes a callable tool with stable identity and metadata.
// StableName must be lowercase snake_case and never change across versions.
type ToolDefinition struct {
    StableName   string          // stable, lowercase snake_case identifier
    SemVer       string          // semantic version (e.g., v1.2.3)
    Description  string          // concise, imperative description
    JSONSchema   json.RawMessage // JSON Schema for arguments
    Capabilities []string        // capability tags (e.g., "headlines", "article")
    Handler      ToolHandler
}

// ToolMeta is a minimal, serializable view for listings and logs.
type ToolMeta struct {
    StableName   string   `json:"stable_name"`
    SemVer       string   `json:"semver"`
    Description  string   `json:"description"`
    Capabilities []string `json:"capabilities"`
}

var (
    // ErrUnknownTool is returned by Call for names that are not registered.
    ErrUnknownTool = errors.New("unknown tool")
    // ErrInvalidArgs marks handler errors caused by the caller's arguments.
    ErrInvalidArgs = errors.New("invalid arguments")
)

// Registry holds the set of available tools keyed by stable name.
type Registry struct {
    nameToDef map[string]ToolDefinition
    // PerToolTimeout bounds each Call. Zero means no extra bound.
    PerToolTimeout time.Duration
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
    return &Registry{nameToDef: make(map[string]ToolDefinition)}
}

var (
    nameRe   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
    semverRe = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)
)

// Register adds or replaces a tool definition by stable name after validation.
func (r *Registry) Register(def ToolDefinition) error {
    if def.StableName == "" || !nameRe.MatchString(def.StableName) {
        return fmt.Errorf("invalid stable name %q: must be lowercase snake_case starting with a letter", def.StableName)
    }
    if def.SemVer == "" || !semverRe.MatchString(def.SemVer) {
        return fmt.Errorf("invalid semver %q: must follow semantic versioning", def.SemVer)
    }
    if len(def.JSONSchema) == 0 || !isJSONObject(def.JSONSchema) {
        return errors.New("json schema must be a non-empty JSON object")
    }
    if def.Handler == nil {
        return errors.New("handler must not be nil")
    }
    cleanedCaps := make([]string, 0, len(def.Capabilities))
    for _, c := range def.Capabilities {
        c = strings.TrimSpace(c)
        if c != "" {
            cleanedCaps = append(cleanedCaps, c)
        }
    }
    def.Capabilities = cleanedCaps
    if r.nameToDef == nil {
        r.nameToDef = make(map[string]ToolDefinition)
    }
    r.nameToDef[def.StableName] = def
    return nil
}

// Get returns a tool definition by stable name if present.
func (r *Registry) Get(stableName string) (ToolDefinition, bool) {
    def, ok := r.nameToDef[stableName]
    return def, ok
}

// Call runs the named tool. Empty or null args are passed as "{}".
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
    def, ok := r.Get(name)
    if !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
    }
    trimmed := strings.TrimSpace(string(args))
    if trimmed == "" || trimmed == "null" {
        args = json.RawMessage(`{}`)
    }
    if r.PerToolTimeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, r.PerToolTimeout)
        defer cancel()
    }
    return def.Handler(ctx, args)
}

// names returns registered names sorted for reproducible listings.
func (r *Registry) names() []string {
    names := make([]string, 0, len(r.nameToDef))
    for name := range r.nameToDef {
        names = append(names, name)
    }
    sort.Strings(names)
    return names
}

// Specs returns tool specs derived from the registered tools, sorted by name.
func (r *Registry) Specs() []ToolSpec {
    names := r.names()
    specs := make([]ToolSpec, 0, len(names))
    for _, name := range names {
        def := r.nameToDef[name]
        // Include version hint in description tail to aid humans; name remains stable.
        description := def.Description
        if def.SemVer != "" {
            description = fmt.Sprintf("%s (version %s)", description, def.SemVer)
        }
        specs = append(specs, ToolSpec{
            Name:        def.StableName,
            Description: description,
            JSONSchema:  def.JSONSchema,
        })
    }
    return specs
}

// Catalog returns a deterministic, sorted slice of ToolMeta.
func (r *Registry) Catalog() []ToolMeta {
    names := r.names()
    out := make([]ToolMeta, 0, len(names))
    for _, name := range names {
        def := r.nameToDef[name]
        out = append(out, ToolMeta{
            StableName:   def.StableName,
            SemVer:       def.SemVer,
            Description:  def.Description,
            Capabilities: append([]string(nil), def.Capabilities...),
        })
    }
    return out
}

// isJSONObject returns true if the raw JSON represents a JSON object.
func isJSONObject(raw json.RawMessage) bool {
    var any interface{}
    if err := json.Unmarshal(raw, &any); err != nil {
        return false
    }
    _, ok := any.(map[string]interface{})
    return ok
}
