package llmtools

import (
    "context"
    "encoding/json"
    "errors"
    "testing"
    "time"
)

func mustRaw(t *testing.T, v any) json.RawMessage {
    t.Helper()
    b, err := json.Marshal(v)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    return b
}

func noop(context.Context, json.RawMessage) (json.RawMessage, error) { return nil, nil }

func TestRegistry_RegisterAndSpecsAndCatalog(t *testing.T) {
    r := NewRegistry()

    def := ToolDefinition{
        StableName:  "echo_url",
        SemVer:      "v1.0.0",
        Description: "echo the url argument",
        JSONSchema: mustRaw(t, map[string]any{
            "type":       "object",
            "properties": map[string]any{"url": map[string]any{"type": "string"}},
            "required":   []string{"url"},
        }),
        Capabilities: []string{"article", "  ", "debug"},
        Handler: func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
            var a ArticleArgs
            _ = json.Unmarshal(args, &a)
            return mustRaw(t, map[string]any{"echo": a.URL}), nil
        },
    }
    if err := r.Register(def); err != nil {
        t.Fatalf("Register: %v", err)
    }

    specs := r.Specs()
    if len(specs) != 1 || specs[0].Name != "echo_url" {
        t.Fatalf("unexpected specs: %+v", specs)
    }
    if specs[0].Description != "echo the url argument (version v1.0.0)" {
        t.Fatalf("expected description to include version suffix, got: %q", specs[0].Description)
    }

    tools := EncodeTools(specs)
    if tools[0].Function == nil || tools[0].Function.Name != "echo_url" {
        t.Fatalf("EncodeTools: wrong function mapping")
    }

    meta := r.Catalog()
    if len(meta) != 1 || meta[0].StableName != "echo_url" || meta[0].SemVer != "v1.0.0" {
        t.Fatalf("unexpected meta: %+v", meta)
    }
    if len(meta[0].Capabilities) != 2 {
        t.Fatalf("blank capabilities should be dropped: %+v", meta[0].Capabilities)
    }

    res, err := r.Call(context.Background(), "echo_url", mustRaw(t, map[string]any{"url": "https://x"}))
    if err != nil {
        t.Fatalf("Call: %v", err)
    }
    var out map[string]any
    _ = json.Unmarshal(res, &out)
    if out["echo"] != "https://x" {
        t.Fatalf("unexpected handler output: %v", out)
    }
}

func TestRegistry_RegisterValidation(t *testing.T) {
    obj := mustRaw(t, map[string]any{"type": "object"})
    cases := []struct {
        name string
        def  ToolDefinition
    }{
        {"invalid name", ToolDefinition{StableName: "Invalid-Name", SemVer: "v0.1.0", JSONSchema: obj, Handler: noop}},
        {"invalid semver", ToolDefinition{StableName: "fetch_url", SemVer: "1.0", JSONSchema: obj, Handler: noop}},
        {"non-object schema", ToolDefinition{StableName: "fetch_url", SemVer: "v0.1.0", JSONSchema: mustRaw(t, []any{"x"}), Handler: noop}},
        {"nil handler", ToolDefinition{StableName: "fetch_url", SemVer: "v0.1.0", JSONSchema: obj}},
    }
    for _, tc := range cases {
        if err := NewRegistry().Register(tc.def); err == nil {
            t.Fatalf("%s: expected error", tc.name)
        }
    }
}

func TestRegistry_DeterministicOrdering(t *testing.T) {
    r := NewRegistry()
    for _, name := range []string{"zeta", "alpha", "mid"} {
        if err := r.Register(ToolDefinition{StableName: name, SemVer: "v1.0.0", JSONSchema: json.RawMessage(`{}`), Handler: noop}); err != nil {
            t.Fatalf("Register %s: %v", name, err)
        }
    }
    specs := r.Specs()
    if specs[0].Name != "alpha" || specs[1].Name != "mid" || specs[2].Name != "zeta" {
        t.Fatalf("specs not sorted: %+v", specs)
    }
}

func TestRegistry_CallUnknownTool(t *testing.T) {
    _, err := NewRegistry().Call(context.Background(), "nope", nil)
    if !errors.Is(err, ErrUnknownTool) {
        t.Fatalf("expected ErrUnknownTool, got %v", err)
    }
}

func TestRegistry_CallNormalizesEmptyArgs(t *testing.T) {
    r := NewRegistry()
    var seen string
    _ = r.Register(ToolDefinition{StableName: "t", SemVer: "v1.0.0", JSONSchema: json.RawMessage(`{}`),
        Handler: func(_ context.Context, args json.RawMessage) (json.RawMessage, error) {
            seen = string(args)
            return nil, nil
        }})
    for _, in := range []json.RawMessage{nil, json.RawMessage(" null ")} {
        if _, err := r.Call(context.Background(), "t", in); err != nil {
            t.Fatalf("Call: %v", err)
        }
        if seen != "{}" {
            t.Fatalf("args not normalized: %q", seen)
        }
    }
}

func TestRegistry_PerToolTimeout(t *testing.T) {
    r := NewRegistry()
    r.PerToolTimeout = 20 * time.Millisecond
    _ = r.Register(ToolDefinition{StableName: "slow", SemVer: "v1.0.0", JSONSchema: json.RawMessage(`{}`),
        Handler: func(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
            <-ctx.Done()
            return nil, ctx.Err()
        }})
    _, err := r.Call(context.Background(), "slow", nil)
    if !errors.Is(err, context.DeadlineExceeded) {
        t.Fatalf("expected deadline exceeded, got %v", err)
    }
}
