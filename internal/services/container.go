// Package services provides the catalog service implementations and their
// dependency injection container.
package services

import (
	"github.com/Marlon154/boardgame-search/internal/cache"
	"github.com/Marlon154/boardgame-search/internal/database"
	"github.com/Marlon154/boardgame-search/internal/models"
	"github.com/Marlon154/boardgame-search/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	BGG    BGGService
	Cache  *cache.SearchCache
	DB     database.Database
	Logger logger.Logger
}

// BGGService defines the interface for BoardGameGeek catalog operations.
type BGGService interface {
	Search(query string, exact bool) ([]models.SearchResult, error)
	GetGameDetails(id string) (*models.GameDetails, error)
}
