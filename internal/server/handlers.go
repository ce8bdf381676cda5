package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/segment-canvas-mcp/internal/detection"
	"github.com/ironsheep/segment-canvas-mcp/internal/imaging"
)

// errInvalidArgs marks argument decoding and validation failures so they are
// reported as JSON-RPC invalid params instead of tool failures.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "canvas_add_point", "image_scan_segments").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed arguments return -32602; other tool errors return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Canvas
	case "canvas_add_point":
		return s.handleCanvasAddPoint(args)
	case "canvas_clear":
		return s.handleCanvasClear()
	case "canvas_paint_lines":
		return s.handleCanvasPaintLines()
	case "canvas_detect_segments":
		return s.handleCanvasDetectSegments()
	case "canvas_render":
		return s.handleCanvasRender()
	case "canvas_state":
		return s.canvas.State(), nil

	// Patterns
	case "pattern_list":
		return s.handlePatternList()

	// Image files
	case "image_scan_segments":
		return s.handleImageScanSegments(args)
	case "image_sample_pixel":
		return s.handleImageSamplePixel(args)
	case "image_cache_clear":
		return s.handleImageCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// decodeArgs unmarshals tool arguments into v. Missing arguments decode as
// an empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Canvas Handlers ===

type canvasAddPointArgs struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

func (s *Server) handleCanvasAddPoint(args json.RawMessage) (interface{}, error) {
	var a canvasAddPointArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.X == nil || a.Y == nil {
		return nil, fmt.Errorf("%w: x and y are required", errInvalidArgs)
	}

	p := imaging.Point{X: *a.X, Y: *a.Y}
	if p.X < 0 || p.Y < 0 || p.X >= s.canvas.Width() || p.Y >= s.canvas.Height() {
		return nil, fmt.Errorf("%w: point (%d,%d) outside canvas %dx%d",
			errInvalidArgs, p.X, p.Y, s.canvas.Width(), s.canvas.Height())
	}

	s.canvas.AddPoint(p)
	return s.canvas.State(), nil
}

func (s *Server) handleCanvasClear() (interface{}, error) {
	s.canvas.Clear()
	return s.canvas.State(), nil
}

type paintLinesResult struct {
	Lines []imaging.Line `json:"lines"`
}

func (s *Server) handleCanvasPaintLines() (interface{}, error) {
	return &paintLinesResult{Lines: s.canvas.PaintLines()}, nil
}

func (s *Server) handleCanvasDetectSegments() (interface{}, error) {
	result, err := s.canvas.DetectSegments()
	if err != nil {
		return nil, fmt.Errorf("segment detection failed: %w", err)
	}
	return result, nil
}

func (s *Server) handleCanvasRender() (interface{}, error) {
	img, err := s.canvas.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render canvas: %w", err)
	}
	return imaging.EncodePNG(img)
}

// === Pattern Handlers ===

type patternInfo struct {
	Name string    `json:"name"`
	Rows [3]string `json:"rows"`
}

type patternListResult struct {
	Policy   string        `json:"policy"`
	Patterns []patternInfo `json:"patterns"`
}

func (s *Server) handlePatternList() (interface{}, error) {
	templates := detection.Templates()
	patterns := make([]patternInfo, 0, len(templates))
	for _, t := range templates {
		patterns = append(patterns, patternInfo{Name: t.Name, Rows: t.Matrix.Rows()})
	}
	return &patternListResult{
		Policy:   s.scanner.Policy().String(),
		Patterns: patterns,
	}, nil
}

// === Image File Handlers ===

type imageScanSegmentsArgs struct {
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`
	Policy string          `json:"policy,omitempty"`
}

func (s *Server) handleImageScanSegments(args json.RawMessage) (interface{}, error) {
	var a imageScanSegmentsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}

	scanner := s.scanner
	if a.Policy != "" {
		policy, err := detection.ParsePolicy(a.Policy)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
		}
		if policy != scanner.Policy() {
			scanner = s.newScanner(policy)
		}
	}

	raster, err := s.cache.LoadRaster(a.Path, a.Region)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(raster), nil
}

type imageSamplePixelArgs struct {
	Path string `json:"path"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
}

func (s *Server) handleImageSamplePixel(args json.RawMessage) (interface{}, error) {
	var a imageSamplePixelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	if a.X == nil || a.Y == nil {
		return nil, fmt.Errorf("%w: x and y are required", errInvalidArgs)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(img, *a.X, *a.Y)
}

type imageCacheClearArgs struct {
	Path string `json:"path,omitempty"`
}

type imageCacheClearResult struct {
	Evicted int `json:"evicted"`
	Cached  int `json:"cached"`
}

// handleImageCacheClear drops one cached image, or all of them when no path
// is given.
func (s *Server) handleImageCacheClear(args json.RawMessage) (interface{}, error) {
	var a imageCacheClearArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var evicted int
	if a.Path != "" {
		if s.cache.Evict(a.Path) {
			evicted = 1
		}
	} else {
		evicted = s.cache.Clear()
	}
	return &imageCacheClearResult{Evicted: evicted, Cached: s.cache.Len()}, nil
}
