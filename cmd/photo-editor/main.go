package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/photo-editor-mcp/internal/config"
	"github.com/ironsheep/photo-editor-mcp/internal/logging"
	"github.com/ironsheep/photo-editor-mcp/internal/server"
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
			fmt.Printf("photo-editor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("photo-editor-mcp - MCP server for interactive photo editing")
			fmt.Println()
			fmt.Println("Usage: photo-editor-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from .env):")
			fmt.Println("  PHOTO_EDITOR_LOG_LEVEL=info           debug, info, warn or error")
			fmt.Println("  PHOTO_EDITOR_CANVAS_WIDTH=980         Canvas width in pixels")
			fmt.Println("  PHOTO_EDITOR_CANVAS_HEIGHT=680        Canvas height in pixels")
			fmt.Println("  PHOTO_EDITOR_BACKGROUND=#808080       Canvas background color")
			fmt.Println("  PHOTO_EDITOR_OUTLINE_COLOR=#ff0000    Crop selection color")
			fmt.Println("  PHOTO_EDITOR_OUTLINE_WIDTH=2          Crop selection stroke")
			fmt.Println("  PHOTO_EDITOR_JPEG_QUALITY=75          JPEG save quality (1-100)")
			fmt.Println("  PHOTO_EDITOR_DEFAULT_EXTENSION=.jpg   Extension added to bare save paths")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting photo editor",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit),
		zap.Int("canvas_width", cfg.Canvas.Width),
		zap.Int("canvas_height", cfg.Canvas.Height))

	server.Version = Version
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
