package llmtools

import (
    "encoding/json"

    openai "github.com/sashabaranov/go-openai"
)

// ToolSpec captures a single callable tool exposed to clients.
// JSONSchema must be a valid JSON Schema object encoded as raw JSON.
type ToolSpec struct {
    Name        string          `json:"name"`
    Description string          `json:"description"`
    JSONSchema  json.RawMessage `json:"inputSchema"`
}

// EncodeTools converts ToolSpec entries into OpenAI-compatible tools array,
// so the news tools can be offered to function-calling models directly.
func EncodeTools(specs []ToolSpec) []openai.Tool {
    out := make([]openai.Tool, 0, len(specs))
    for _, s := range specs {
        out = append(out, openai.Tool{
            Type: openai.ToolTypeFunction,
            Function: &openai.FunctionDefinition{
                Name:        s.Name,
                Description: s.Description,
                Parameters:  s.JSONSchema,
            },
        })
    }
    return out
}
