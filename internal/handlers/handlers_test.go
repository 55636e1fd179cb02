package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Marlon154/boardgame-search/internal/errors"
	"github.com/Marlon154/boardgame-search/internal/models"
	"github.com/Marlon154/boardgame-search/internal/services"
	"github.com/Marlon154/boardgame-search/pkg/logger"
)

type fakeBGG struct {
	searchFn  func(query string, exact bool) ([]models.SearchResult, error)
	detailsFn func(id string) (*models.GameDetails, error)
}

func (f *fakeBGG) Search(query string, exact bool) ([]models.SearchResult, error) {
	return f.searchFn(query, exact)
}

func (f *fakeBGG) GetGameDetails(id string) (*models.GameDetails, error) {
	return f.detailsFn(id)
}

type fakeDB struct {
	games map[string]*models.SavedGame
}

func newFakeDB() *fakeDB {
	return &fakeDB{games: make(map[string]*models.SavedGame)}
}

func (f *fakeDB) SaveGame(game *models.SavedGame) error {
	f.games[game.ID] = game
	return nil
}

func (f *fakeDB) GetSavedGame(id string) (*models.SavedGame, error) {
	return f.games[id], nil
}

func (f *fakeDB) ListSavedGames() ([]models.SavedGame, error) {
	games := []models.SavedGame{}
	for _, g := range f.games {
		games = append(games, *g)
	}
	return games, nil
}

func (f *fakeDB) DeleteSavedGame(id string) error {
	delete(f.games, id)
	return nil
}

func (f *fakeDB) Close() error { return nil }

func setupRouter(bgg services.BGGService, db *fakeDB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	container := &services.Container{
		BGG:    bgg,
		DB:     db,
		Logger: logger.NewWithLevel("error"),
	}
	h := New(container, nil)

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(&fakeBGG{}, newFakeDB())

	w := doRequest(r, "GET", "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	bgg := &fakeBGG{
		searchFn: func(query string, exact bool) ([]models.SearchResult, error) {
			assert.Equal(t, "catan", query)
			assert.False(t, exact)
			return []models.SearchResult{{ID: "13", Name: "Catan"}}, nil
		},
	}
	r := setupRouter(bgg, newFakeDB())

	w := doRequest(r, "GET", "/api/search?query=catan")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count   int                   `json:"count"`
		Results []models.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Catan", body.Results[0].Name)
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	r := setupRouter(&fakeBGG{}, newFakeDB())

	w := doRequest(r, "GET", "/api/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpointProviderBusy(t *testing.T) {
	bgg := &fakeBGG{
		searchFn: func(query string, exact bool) ([]models.SearchResult, error) {
			return nil, apperrors.NewProviderBusyError("search", nil)
		},
	}
	r := setupRouter(bgg, newFakeDB())

	w := doRequest(r, "GET", "/api/search?query=catan")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearchEndpointUpstreamFailure(t *testing.T) {
	bgg := &fakeBGG{
		searchFn: func(query string, exact bool) ([]models.SearchResult, error) {
			return nil, apperrors.NewSearchError("boom", nil)
		},
	}
	r := setupRouter(bgg, newFakeDB())

	w := doRequest(r, "GET", "/api/search?query=catan")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGameDetailsEndpoint(t *testing.T) {
	bgg := &fakeBGG{
		detailsFn: func(id string) (*models.GameDetails, error) {
			return &models.GameDetails{ID: id, Name: "Catan"}, nil
		},
	}
	r := setupRouter(bgg, newFakeDB())

	w := doRequest(r, "GET", "/api/games/13")
	require.Equal(t, http.StatusOK, w.Code)

	var details models.GameDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, "13", details.ID)
}

func TestGameDetailsEndpointRejectsBadID(t *testing.T) {
	r := setupRouter(&fakeBGG{}, newFakeDB())

	w := doRequest(r, "GET", "/api/games/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveListDeleteFlow(t *testing.T) {
	bgg := &fakeBGG{
		detailsFn: func(id string) (*models.GameDetails, error) {
			return &models.GameDetails{ID: id, Name: "Catan"}, nil
		},
	}
	db := newFakeDB()
	r := setupRouter(bgg, db)

	w := doRequest(r, "POST", "/api/games/13/save")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, db.games, "13")
	assert.False(t, db.games["13"].SavedAt.IsZero())

	w = doRequest(r, "GET", "/api/games/saved")
	require.Equal(t, http.StatusOK, w.Code)
	var listBody struct {
		Count int                `json:"count"`
		Games []models.SavedGame `json:"games"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listBody))
	assert.Equal(t, 1, listBody.Count)

	w = doRequest(r, "DELETE", "/api/games/saved/13")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, db.games, "13")
}

func TestDeleteAbsentGameReturnsNotFound(t *testing.T) {
	r := setupRouter(&fakeBGG{}, newFakeDB())

	w := doRequest(r, "DELETE", "/api/games/saved/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
