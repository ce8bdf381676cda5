package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Canvas
		{
			Name:        "canvas_add_point",
			Description: "Add a point to the drawing canvas, as if the user clicked there. Clears previously detected segments.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost pixel)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = topmost pixel)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "canvas_clear",
			Description: "Remove all points, lines and detected segments from the canvas.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "canvas_paint_lines",
			Description: "Connect the canvas points in pairs (1st-2nd, 3rd-4th, ...) with red lines. Returns each line's length and angle.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "canvas_detect_segments",
			Description: "Render the canvas, scan every interior pixel's 3x3 neighborhood against the pattern catalog and mark the matches. Returns the matches and window counts.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "canvas_render",
			Description: "Render the canvas (points, lines, purple markers at detected segments) as a base64-encoded PNG.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "canvas_state",
			Description: "Get the canvas size, points, line state and detected segments.",
			InputSchema: noArgsSchema(),
		},

		// Patterns
		{
			Name:        "pattern_list",
			Description: "List the 3x3 segment patterns in match order. Each row is three cells, 1 = foreground.",
			InputSchema: noArgsSchema(),
		},

		// Image files
		{
			Name:        "image_scan_segments",
			Description: "Scan an image file for 3x3 segment patterns. Any pixel that is not opaque pure white counts as foreground.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to scan; x2/y2 are exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"policy": map[string]interface{}{
						"type":        "string",
						"description": "Match policy. Defaults to the server's configured policy",
						"enum":        []string{"first-match", "first-template-only"},
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_pixel",
			Description: "Get the color of a pixel and whether the segment scanner treats it as foreground.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost pixel)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = topmost pixel)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_cache_clear",
			Description: "Drop decoded image files from the cache. Changed files are re-read automatically; use this to free memory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Image file to drop. Omit to drop every cached image",
					},
				},
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
