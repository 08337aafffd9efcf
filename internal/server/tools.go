package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArguments is the input schema of the button-style tools.
func noArguments() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// File
		{
			Name:        "editor_open",
			Description: "Open an image file (PNG, JPEG, BMP, GIF, WebP, TIFF) for editing. Replaces the current document, clears the undo history and fits the image to the canvas.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file. An empty path cancels the dialog.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "editor_save",
			Description: "Save the current image. The format follows the extension (.jpg or .png); a path without extension gets .jpg.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path. An empty path cancels the dialog.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Edits
		{
			Name:        "editor_brightness",
			Description: "Increase brightness by a factor of 1.2.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_contrast",
			Description: "Increase contrast by a factor of 1.3.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_rotate",
			Description: "Rotate the image 90 degrees counter-clockwise, expanding the canvas to keep the whole image.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_grayscale",
			Description: "Convert the image to grayscale.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_flip",
			Description: "Mirror the image left to right.",
			InputSchema: noArguments(),
		},

		// Crop gesture
		{
			Name:        "editor_crop_begin",
			Description: "Arm the crop tool. Then send editor_pointer press, drag and release events to select the area to keep.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_pointer",
			Description: "Send a pointer event to the canvas. While cropping: press sets one corner, drag outlines the selection, release crops to the selection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"action": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"press", "drag", "release"},
						"description": "Pointer event type",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas X coordinate (0 = left edge)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas Y coordinate (0 = top edge)",
					},
				},
				"required": []string{"action", "x", "y"},
			},
		},

		// History
		{
			Name:        "editor_undo",
			Description: "Undo the last edit.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_reset",
			Description: "Restore the image as it was opened. The undo history is kept.",
			InputSchema: noArguments(),
		},

		// Inspection
		{
			Name:        "editor_view",
			Description: "Render the editor canvas (image plus any crop outline) as a base64-encoded PNG.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_status",
			Description: "Report whether an image is loaded, its size, the undo depth and the crop state.",
			InputSchema: noArguments(),
		},
		{
			Name:        "editor_sample_color",
			Description: "Get the color shown on the canvas at a coordinate (eyedropper). The image is drawn unscaled at the top-left corner.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
