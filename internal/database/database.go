// Package database provides persistence for the saved-games collection.
package database

import "github.com/Marlon154/boardgame-search/internal/models"

// Database defines the interface for saved-game persistence operations.
type Database interface {
	// SaveGame stores or replaces a saved game keyed by its ID
	SaveGame(game *models.SavedGame) error
	// GetSavedGame retrieves a saved game by ID, nil if absent
	GetSavedGame(id string) (*models.SavedGame, error)
	// ListSavedGames retrieves all saved games
	ListSavedGames() ([]models.SavedGame, error)
	// DeleteSavedGame removes a saved game by ID
	DeleteSavedGame(id string) error
	// Close closes the database connection
	Close() error
}
