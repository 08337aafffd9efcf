package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/photo-editor-mcp/internal/editor"
	"github.com/ironsheep/photo-editor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_open", "editor_undo").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Notice is the message the editor shows the user after an action.
type Notice struct {
	// Level is "info", "warning" or "error".
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ActionResult is returned by every editing tool.
type ActionResult struct {
	Notice  *Notice              `json:"notice,omitempty"`
	Cropped *bool                `json:"cropped,omitempty"`
	Color   *imaging.ColorResult `json:"color,omitempty"`
	Status  editor.Status        `json:"status"`
}

// ViewResult carries a rendering of the editor canvas.
type ViewResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	ImageBase64 string        `json:"image_base64"`
	MimeType    string        `json:"mime_type"`
	Status      editor.Status `json:"status"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// editor_view additionally returns the canvas as an image content block.
// Rejected actions (nothing loaded, nothing to undo, cancelled dialogs) are
// successful calls carrying a warning notice. Failed loads and saves return a
// JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if notice, ok := warningNotice(err); ok {
			s.logger.Debug("action rejected", zap.String("tool", params.Name), zap.Error(err))
			result = &ActionResult{Notice: notice, Status: s.session.Status()}
		} else {
			s.logger.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
			return s.errorResponse(req.ID, -32000, failureTitle(err), failureMessage(err))
		}
	}

	content := []map[string]interface{}{
		{
			"type": "text",
			"text": mustMarshalJSON(result),
		},
	}
	if view, ok := result.(*ViewResult); ok {
		content = append(content, map[string]interface{}{
			"type":     "image",
			"data":     view.ImageBase64,
			"mimeType": view.MimeType,
		})
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// File
	case "editor_open":
		return s.handleOpen(args)
	case "editor_save":
		return s.handleSave(args)

	// Edits
	case "editor_brightness":
		return s.action(s.session.Brighten)
	case "editor_contrast":
		return s.action(s.session.IncreaseContrast)
	case "editor_rotate":
		return s.action(s.session.Rotate90)
	case "editor_grayscale":
		return s.action(s.session.Grayscale)
	case "editor_flip":
		return s.action(s.session.FlipHorizontal)

	// Crop gesture
	case "editor_crop_begin":
		return s.handleCropBegin()
	case "editor_pointer":
		return s.handlePointer(args)

	// History
	case "editor_undo":
		return s.action(s.session.Undo)
	case "editor_reset":
		return s.action(s.session.Reset)

	// Inspection
	case "editor_view":
		return s.handleView()
	case "editor_status":
		return &ActionResult{Status: s.session.Status()}, nil
	case "editor_sample_color":
		return s.handleSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v; absent arguments leave v zero.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// action runs a no-argument session action and reports the resulting status.
func (s *Server) action(fn func() error) (interface{}, error) {
	if err := fn(); err != nil {
		return nil, err
	}
	return &ActionResult{Status: s.session.Status()}, nil
}

// === File Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleOpen(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	path, err := chooseOpenPath(a.Path)
	if err != nil {
		return nil, err
	}
	if err := s.session.Open(path); err != nil {
		return nil, err
	}
	return &ActionResult{Status: s.session.Status()}, nil
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	if !s.session.Status().Loaded {
		return nil, editor.ErrNoImageLoaded
	}
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	path, err := chooseSavePath(a.Path, s.defaultExt)
	if err != nil {
		return nil, err
	}
	if err := s.session.Save(path); err != nil {
		return nil, err
	}
	return &ActionResult{
		Notice: &Notice{Level: "info", Title: "Success", Message: fmt.Sprintf("Image saved as %s", path)},
		Status: s.session.Status(),
	}, nil
}

// === Crop Handlers ===

func (s *Server) handleCropBegin() (interface{}, error) {
	if err := s.session.BeginCrop(); err != nil {
		return nil, err
	}
	return &ActionResult{
		Notice: &Notice{Level: "info", Title: "Crop", Message: "Press, drag and release on the canvas to select the crop area"},
		Status: s.session.Status(),
	}, nil
}

type pointerArgs struct {
	Action string `json:"action"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

func (s *Server) handlePointer(args json.RawMessage) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	p := image.Pt(a.X, a.Y)

	switch a.Action {
	case "press":
		s.session.Press(p)
	case "drag":
		s.session.Drag(p)
	case "release":
		cropped, err := s.session.Release(p)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Cropped: &cropped, Status: s.session.Status()}, nil
	default:
		return nil, fmt.Errorf("unknown pointer action %q (want press, drag or release)", a.Action)
	}
	return &ActionResult{Status: s.session.Status()}, nil
}

// === Inspection Handlers ===

func (s *Server) handleView() (interface{}, error) {
	data, err := s.canvas.EncodePNG()
	if err != nil {
		return nil, err
	}
	w, h := s.canvas.Size()
	return &ViewResult{
		Width:       w,
		Height:      h,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
		Status:      s.session.Status(),
	}, nil
}

type pointArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// handleSampleColor reads the color shown on the canvas at (x, y), including
// the background around the image and any selection outline.
func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	if s.session.Image() == nil {
		return nil, editor.ErrNoImageLoaded
	}
	var a pointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(s.canvas.Snapshot(), a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &ActionResult{Color: c, Status: s.session.Status()}, nil
}

// === Notices ===

// warningNotice translates a rejected action into the warning shown to the user.
func warningNotice(err error) (*Notice, bool) {
	var msg string
	switch {
	case errors.Is(err, errNoFileSelected):
		msg = "No file selected"
	case errors.Is(err, editor.ErrNoImageLoaded):
		msg = "No image loaded"
	case errors.Is(err, editor.ErrNoOriginalImage):
		msg = "No image loaded"
	case errors.Is(err, editor.ErrNoHistoryToUndo):
		msg = "No action to undo"
	case errors.Is(err, editor.ErrEmptySelection):
		msg = "Selection is empty; drag across the image to choose an area"
	default:
		return nil, false
	}
	return &Notice{Level: "warning", Title: "Warning", Message: msg}, true
}

func failureTitle(err error) string {
	var loadErr *editor.LoadError
	var saveErr *editor.SaveError
	switch {
	case errors.As(err, &loadErr):
		return "Failed to open image"
	case errors.As(err, &saveErr):
		return "Failed to save image"
	default:
		return "Tool execution failed"
	}
}

func failureMessage(err error) string {
	var loadErr *editor.LoadError
	var saveErr *editor.SaveError
	switch {
	case errors.As(err, &loadErr):
		return fmt.Sprintf("Failed to open image: %v", loadErr.Err)
	case errors.As(err, &saveErr):
		return fmt.Sprintf("Failed to save image: %v", saveErr.Err)
	default:
		return err.Error()
	}
}
