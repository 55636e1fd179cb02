package main

import (
	"github.com/Marlon154/boardgame-search/internal/cache"
	"github.com/Marlon154/boardgame-search/internal/config"
	"github.com/Marlon154/boardgame-search/internal/database"
	"github.com/Marlon154/boardgame-search/internal/handlers"
	"github.com/Marlon154/boardgame-search/internal/services"
	"github.com/Marlon154/boardgame-search/pkg/logger"
)

var (
	appLogger        logger.Logger
	db               database.Database
	searchCache      *cache.SearchCache
	serviceContainer *services.Container
	handler          *handlers.Handler
)

func initializeLogger(cfg *config.Config) {
	appLogger = logger.NewWithLevel(cfg.LogLevel)
}

func initializeDatabase(cfg *config.Config) {
	var err error
	db, err = database.NewBolt(cfg.DatabasePath)
	if err != nil {
		appLogger.Fatalf("[App] failed to initialize database: %v", err)
	}

	appLogger.Infof("[App] saved-games database opened at %s", cfg.DatabasePath)
}

func initializeServices(cfg *config.Config) {
	searchCache = cache.New(cfg.CacheSize, cfg.CacheTTL())

	bggService := services.NewBGG(cfg, searchCache, appLogger)

	serviceContainer = &services.Container{
		BGG:    bggService,
		Cache:  searchCache,
		DB:     db,
		Logger: appLogger,
	}

	handler = handlers.New(serviceContainer, cfg)

	appLogger.Infof("[App] services initialized successfully")
}
