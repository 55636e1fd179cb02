package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Marlon154/boardgame-search/internal/models"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "games.db"
)

var bucketSavedGames = []byte("saved_games")

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db *bolt.DB
}

// NewBolt creates a new BoltDB database instance.
// If dbPath is empty, uses the default database file in the current directory.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSavedGames)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// SaveGame stores or replaces a saved game keyed by its ID.
func (b *BoltDB) SaveGame(game *models.SavedGame) error {
	if game == nil || game.ID == "" {
		return fmt.Errorf("saved game must have an ID")
	}

	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to encode game %s: %w", game.ID, err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSavedGames).Put([]byte(game.ID), data)
	})
}

// GetSavedGame retrieves a saved game by ID. Returns nil without error
// when the game is not in the store.
func (b *BoltDB) GetSavedGame(id string) (*models.SavedGame, error) {
	var game *models.SavedGame

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSavedGames).Get([]byte(id))
		if data == nil {
			return nil
		}

		var g models.SavedGame
		if err := json.Unmarshal(data, &g); err != nil {
			return fmt.Errorf("failed to decode game %s: %w", id, err)
		}
		game = &g
		return nil
	})
	if err != nil {
		return nil, err
	}

	return game, nil
}

// ListSavedGames retrieves all saved games in key order.
func (b *BoltDB) ListSavedGames() ([]models.SavedGame, error) {
	games := []models.SavedGame{}

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSavedGames).ForEach(func(k, v []byte) error {
			var g models.SavedGame
			if err := json.Unmarshal(v, &g); err != nil {
				return fmt.Errorf("failed to decode game %s: %w", string(k), err)
			}
			games = append(games, g)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return games, nil
}

// DeleteSavedGame removes a saved game by ID. Deleting an absent game is
// not an error.
func (b *BoltDB) DeleteSavedGame(id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSavedGames).Delete([]byte(id))
	})
}

// Close closes the database connection.
func (b *BoltDB) Close() error {
	return b.db.Close()
}
