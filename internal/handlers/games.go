package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Marlon154/boardgame-search/internal/errors"
	"github.com/Marlon154/boardgame-search/internal/models"
)

// gameID validates the :id path parameter. BGG identifiers are numeric.
func gameID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if _, err := strconv.Atoi(id); err != nil {
		return "", apperrors.NewInvalidIDError(id)
	}
	return id, nil
}

func (h *Handler) handleGameDetails(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	details, err := h.services.BGG.GetGameDetails(id)
	if err != nil {
		h.services.Logger.Errorf("[GamesHandler] details fetch for %s failed: %v", id, err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) handleSaveGame(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	details, err := h.services.BGG.GetGameDetails(id)
	if err != nil {
		h.services.Logger.Errorf("[GamesHandler] details fetch for %s failed: %v", id, err)
		h.respondError(c, err)
		return
	}

	saved := &models.SavedGame{
		GameDetails: *details,
		SavedAt:     time.Now(),
	}
	if err := h.services.DB.SaveGame(saved); err != nil {
		h.services.Logger.Errorf("[GamesHandler] failed to save game %s: %v", id, err)
		h.respondError(c, apperrors.NewDatabaseError("failed to save game", err))
		return
	}

	h.services.Logger.Infof("[GamesHandler] saved game %s (%s)", id, details.Name)
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) handleListSaved(c *gin.Context) {
	games, err := h.services.DB.ListSavedGames()
	if err != nil {
		h.services.Logger.Errorf("[GamesHandler] failed to list saved games: %v", err)
		h.respondError(c, apperrors.NewDatabaseError("failed to list saved games", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(games),
		"games": games,
	})
}

func (h *Handler) handleDeleteSaved(c *gin.Context) {
	id, err := gameID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	game, err := h.services.DB.GetSavedGame(id)
	if err != nil {
		h.services.Logger.Errorf("[GamesHandler] failed to read saved game %s: %v", id, err)
		h.respondError(c, apperrors.NewDatabaseError("failed to read saved game", err))
		return
	}
	if game == nil {
		h.respondError(c, apperrors.NewGameNotFoundError(id))
		return
	}

	if err := h.services.DB.DeleteSavedGame(id); err != nil {
		h.services.Logger.Errorf("[GamesHandler] failed to delete saved game %s: %v", id, err)
		h.respondError(c, apperrors.NewDatabaseError("failed to delete saved game", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
