// This defines an HTTP server that generates a new maze for every request.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yalue/dfs_maze/api"
	"github.com/yalue/dfs_maze/config"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var logger *slog.Logger
	if cfg.GinMode == gin.DebugMode {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	controller := api.NewMazeController(api.MazeControllerConfig{
		DefaultHeight: cfg.Height,
		DefaultWidth:  cfg.Width,
		MaxDimension:  cfg.MaxDimension,
		MaxPixels:     cfg.MaxPixels,
		Logger:        logger,
	})
	router := api.NewRouter(api.Config{
		Addr:        cfg.ListenAddr,
		BaseURL:     "/api",
		Controllers: []api.Controller{controller},
	})

	log.Printf("[APP] [INFO] Serving mazes on %s", cfg.ListenAddr)
	if err := router.Run(); err != nil {
		log.Fatalf("[APP] [FATAL] Server stopped: %v", err)
	}
}
