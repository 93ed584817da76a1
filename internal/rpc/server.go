package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/newsscraper/internal/llmtools"
)

const maxRequestBytes = 1 << 20

// Server answers JSON-RPC requests by dispatching to a tool registry. The
// method is either a tool's stable name, with params as its arguments, or one
// of tools/list and tools/call. Per-call deadlines come from the registry's
// PerToolTimeout.
type Server struct {
	Registry *llmtools.Registry
}

// NewServer returns a Server for reg.
func NewServer(reg *llmtools.Registry) *Server {
	return &Server{Registry: reg}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		writeResponse(w, Response{JSONRPC: Version, Error: newError(CodeParseError, "read request: %v", err)})
		return
	}
	writeResponse(w, s.Handle(r.Context(), body))
}

// Handle decodes one request body and produces its response.
func (s *Server) Handle(ctx context.Context, body []byte) Response {
	start := time.Now()
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return Response{JSONRPC: Version, Error: newError(CodeInvalidRequest, "batch requests are not supported")}
	}
	var req Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return Response{JSONRPC: Version, Error: newError(CodeParseError, "parse error: %v", err)}
	}
	resp := Response{JSONRPC: Version, ID: req.ID}
	if req.JSONRPC != Version || req.Method == "" {
		resp.Error = newError(CodeInvalidRequest, "invalid request: jsonrpc must be %q and method set", Version)
		return resp
	}

	result, rpcErr := s.dispatch(ctx, req.Method, req.Params)
	if rpcErr != nil {
		log.Warn().Str("tool", req.Method).Int("code", rpcErr.Code).Str("error", rpcErr.Message).Dur("latency", time.Since(start)).Msg("rpc call failed")
		resp.Error = rpcErr
		return resp
	}
	log.Debug().Str("tool", req.Method).Dur("latency", time.Since(start)).Msg("rpc call")
	resp.Result = result
	return resp
}

func (s *Server) dispatch(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, *Error) {
	switch method {
	case MethodToolsList:
		b, err := json.Marshal(map[string]any{"tools": s.Registry.Specs()})
		if err != nil {
			return nil, newError(CodeInternalError, "%v", err)
		}
		return b, nil
	case MethodToolsCall:
		var p CallParams
		if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
			return nil, newError(CodeInvalidParams, "tools/call requires params {\"name\", \"arguments\"}")
		}
		return s.call(ctx, p.Name, p.Arguments)
	default:
		return s.call(ctx, method, params)
	}
}

func (s *Server) call(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, *Error) {
	if a := bytes.TrimSpace(args); len(a) > 0 && a[0] != '{' && !bytes.Equal(a, []byte("null")) {
		return nil, newError(CodeInvalidParams, "params must be an object")
	}
	out, err := s.Registry.Call(ctx, name, args)
	switch {
	case err == nil:
		if len(out) == 0 {
			out = json.RawMessage("null")
		}
		return out, nil
	case errors.Is(err, llmtools.ErrUnknownTool):
		return nil, newError(CodeMethodNotFound, "method not found: %s", name)
	case errors.Is(err, llmtools.ErrInvalidArgs):
		return nil, newError(CodeInvalidParams, "%v", err)
	default:
		return nil, newError(CodeInternalError, "%v", err)
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	if resp.ID == nil {
		resp.ID = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("write rpc response")
	}
}
