package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Marlon154/boardgame-search/internal/config"
	"github.com/Marlon154/boardgame-search/internal/constants"
	"github.com/Marlon154/boardgame-search/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	initializeLogger(cfg)
	initializeDatabase(cfg)
	defer db.Close()
	initializeServices(cfg)

	if !strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())
	r.Use(middleware.Logger(appLogger))

	handler.RegisterRoutes(r)

	// Periodic cleanup of expired search cache entries
	go func() {
		ticker := time.NewTicker(constants.CachePruneInterval)
		defer ticker.Stop()
		for range ticker.C {
			searchCache.CleanExpired()
		}
	}()

	appLogger.Infof("[App] starting HTTP server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Fatalf("[App] server error: %v", err)
	}
}
