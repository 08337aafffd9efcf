package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/photo-editor-mcp/internal/canvas"
	"github.com/ironsheep/photo-editor-mcp/internal/config"
	"github.com/ironsheep/photo-editor-mcp/internal/editor"
	"github.com/ironsheep/photo-editor-mcp/internal/imaging"
)

// Version is reported in the initialize handshake; main overrides it from ldflags.
var Version = "dev"

// Server handles MCP protocol communication for one editing session.
type Server struct {
	session    *editor.Session
	canvas     *canvas.Canvas
	logger     *zap.Logger
	defaultExt string
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server with an empty session on a canvas sized and colored
// from cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	background, err := imaging.ParseHexColor(cfg.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas background: %w", err)
	}
	outline, err := imaging.ParseHexColor(cfg.Canvas.Outline)
	if err != nil {
		return nil, fmt.Errorf("selection outline: %w", err)
	}

	cv := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height,
		canvas.WithBackground(background),
		canvas.WithOutline(outline, cfg.Canvas.OutlineWidth))
	backend := imaging.NewBackend(cfg.Output.JPEGQuality)

	return &Server{
		session:    editor.New(backend, cv, editor.WithLogger(logger.Named("editor"))),
		canvas:     cv,
		logger:     logger,
		defaultExt: cfg.Output.DefaultExtension,
	}, nil
}

// Run serves requests from stdin and writes responses to stdout until stdin closes.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes each response
// as one line to w. Requests are handled strictly one at a time.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("failed to parse request", zap.Error(err))
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("failed to encode response", zap.Error(err))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.logger.Debug("request", zap.String("method", req.Method), zap.Any("id", req.ID))

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "photo-editor-mcp",
				"version": Version,
			},
		},
	}
}
