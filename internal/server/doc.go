// Package server implements the MCP (Model Context Protocol) server for the
// segment canvas.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Canvas:
//   - canvas_add_point: Add a point (clears detected segments)
//   - canvas_clear: Remove points, lines and segments
//   - canvas_paint_lines: Join points in pairs
//   - canvas_detect_segments: Scan the rendered canvas for 3x3 patterns
//   - canvas_render: Render the canvas as PNG
//   - canvas_state: Points, line state and segments
//
// Patterns:
//   - pattern_list: The pattern catalog in match order
//
// Image files:
//   - image_scan_segments: Scan an image file (optionally a region of it)
//   - image_sample_pixel: Color and foreground flag of one pixel
//   - image_cache_clear: Drop one or all cached images
//
// # State
//
// The server owns one canvas and handles requests one at a time, so the
// canvas is never shared between goroutines. Decoded image files are kept in
// a path-keyed cache and decoded again when the file's size or modification
// time changes.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32601: unknown method
//   - -32602: malformed params or tool arguments
//   - -32000: tool execution failure, with the Go error string as data
//
// # Usage
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
