package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/segment-canvas-mcp/internal/config"
	"github.com/ironsheep/segment-canvas-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("segment-canvas-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("segment-canvas-mcp - MCP server for drawing and 3x3 segment detection")
			fmt.Println()
			fmt.Println("Usage: segment-canvas-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SEGMENT_MCP_LOG_LEVEL=debug                    Enable debug logging and scan reports")
			fmt.Println("  SEGMENT_MCP_CANVAS_WIDTH=600                   Canvas width in pixels")
			fmt.Println("  SEGMENT_MCP_CANVAS_HEIGHT=400                  Canvas height in pixels")
			fmt.Println("  SEGMENT_MCP_MATCH_POLICY=first-match           Or first-template-only")
			fmt.Println("  SEGMENT_MCP_DUMP_WINDOWS=false                 Dump non-empty windows in scan reports")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it as a stdio server in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Segment Canvas MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Canvas %dx%d, match policy %s", cfg.CanvasWidth, cfg.CanvasHeight, cfg.Policy())
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
