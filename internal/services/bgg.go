package services

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/Marlon154/boardgame-search/internal/cache"
	"github.com/Marlon154/boardgame-search/internal/config"
	"github.com/Marlon154/boardgame-search/internal/constants"
	apperrors "github.com/Marlon154/boardgame-search/internal/errors"
	"github.com/Marlon154/boardgame-search/internal/models"
	"github.com/Marlon154/boardgame-search/pkg/httputil"
	"github.com/Marlon154/boardgame-search/pkg/logger"
	"github.com/Marlon154/boardgame-search/pkg/throttle"
)

// BGG talks to the BoardGameGeek XML API 2. All upstream traffic goes
// through a single throttler; search results are cached.
type BGG struct {
	baseURL   string
	cache     *cache.SearchCache
	throttler *throttle.Throttler
	logger    logger.Logger
}

// NewBGG creates a BGG service with the default HTTP fetcher. Throttle
// tuning comes from the configuration; a nil logger falls back to one
// built from the configured level.
func NewBGG(cfg *config.Config, searchCache *cache.SearchCache, log logger.Logger) *BGG {
	if log == nil {
		log = logger.NewWithLevel(cfg.LogLevel)
	}
	fetch := newFetcher(cfg.BGGAPIToken)

	return &BGG{
		baseURL: cfg.BGGBaseURL,
		cache:   searchCache,
		throttler: throttle.New(throttle.Config{
			MinInterval: cfg.ThrottleInterval(),
			RetryDelay:  cfg.ThrottleRetryDelay(),
			MaxRetries:  cfg.ThrottleMaxRetries,
		}, fetch, log),
		logger: log,
	}
}

// newFetcher builds the throttler's fetch capability: a plain GET with
// the headers BGG recommends, reading the full body.
func newFetcher(token string) throttle.Fetcher {
	client := httputil.NewHTTPClient(constants.RequestTimeout)

	return func(targetURL string) (*throttle.Response, error) {
		req, err := http.NewRequest(http.MethodGet, targetURL, nil)
		if err != nil {
			return nil, err
		}

		req.Header.Set("Accept", "application/xml")
		req.Header.Set("User-Agent", constants.UserAgent)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		return &throttle.Response{StatusCode: resp.StatusCode, Body: body}, nil
	}
}

// Search looks up games matching query. Cached results are returned
// without network traffic; otherwise one search request plus one detail
// request per hit are issued through the throttler. A failing detail
// fetch drops that hit rather than failing the search.
func (b *BGG) Search(query string, exact bool) ([]models.SearchResult, error) {
	if cached, ok := b.cache.Get(query, exact); ok {
		b.logger.Debugf("[BGG] cache hit for query %q (exact=%v)", query, exact)
		return cached, nil
	}

	exactParam := "0"
	if exact {
		exactParam = "1"
	}
	searchURL := fmt.Sprintf("%s/search?query=%s&type=boardgame&exact=%s",
		b.baseURL, url.QueryEscape(query), exactParam)

	resp, err := b.throttler.Enqueue(searchURL)
	if err != nil {
		return nil, wrapThrottleError("search", apperrors.NewSearchError("search request failed", err), err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewSearchError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var doc searchItems
	if err := xml.Unmarshal(resp.Body, &doc); err != nil {
		return nil, apperrors.NewSearchError("malformed search response", err)
	}

	b.logger.Debugf("[BGG] search %q returned %d items", query, len(doc.Items))

	// The search payload has no thumbnail or player info; join it in from
	// the detail endpoint. All fetches are enqueued up front but still
	// serialized by the throttler.
	enriched := make([]*models.SearchResult, len(doc.Items))
	var wg sync.WaitGroup
	for i, item := range doc.Items {
		result := models.SearchResult{
			ID:            item.ID,
			Name:          item.Name.Value,
			YearPublished: item.YearPublished.Value,
			Type:          item.Type,
		}

		wg.Add(1)
		go func(i int, result models.SearchResult) {
			defer wg.Done()

			details, err := b.GetGameDetails(result.ID)
			if err != nil {
				b.logger.Warnf("[BGG] dropping result %s from search %q: %v", result.ID, query, err)
				return
			}

			result.Thumbnail = details.Thumbnail
			result.MinPlayers = details.MinPlayers
			result.MaxPlayers = details.MaxPlayers
			result.PlayingTime = details.PlayingTime
			enriched[i] = &result
		}(i, result)
	}
	wg.Wait()

	results := make([]models.SearchResult, 0, len(enriched))
	for _, r := range enriched {
		if r != nil {
			results = append(results, *r)
		}
	}

	b.cache.Set(query, results, exact)
	return results, nil
}

// GetGameDetails fetches the full record for one game. The stats flag is
// required to receive rating, weight and poll data.
func (b *BGG) GetGameDetails(id string) (*models.GameDetails, error) {
	detailURL := fmt.Sprintf("%s/thing?id=%s&stats=1", b.baseURL, url.QueryEscape(id))

	resp, err := b.throttler.Enqueue(detailURL)
	if err != nil {
		return nil, wrapThrottleError("details fetch", apperrors.NewDetailsError("details request failed", err), err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewDetailsError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var doc thingItems
	if err := xml.Unmarshal(resp.Body, &doc); err != nil {
		return nil, apperrors.NewDetailsError("malformed details response", err)
	}
	if len(doc.Items) == 0 {
		return nil, apperrors.NewDetailsError(fmt.Sprintf("no item in response for game %s", id), nil)
	}

	item := doc.Items[0]
	details := &models.GameDetails{
		ID:                     id,
		Name:                   sanitizeText(primaryName(item.Names)),
		YearPublished:          item.YearPublished.Value,
		Description:            sanitizeText(item.Description),
		Image:                  item.Image,
		Thumbnail:              item.Thumbnail,
		MinPlayers:             parseIntOrZero(item.MinPlayers.Value),
		MaxPlayers:             parseIntOrZero(item.MaxPlayers.Value),
		PlayingTime:            parseIntOrZero(item.PlayingTime.Value),
		MinPlayTime:            parseIntOrZero(item.MinPlayTime.Value),
		MaxPlayTime:            parseIntOrZero(item.MaxPlayTime.Value),
		MinAge:                 parseIntOrZero(item.MinAge.Value),
		Rating:                 parseFloatOrZero(item.Statistics.Ratings.Average.Value),
		Weight:                 parseFloatOrZero(item.Statistics.Ratings.AverageWeight.Value),
		PlayerCountPoll:        []models.PlayerCountVote{},
		PlayerAgePoll:          models.Poll{Results: []models.PollResult{}},
		LanguageDependencePoll: models.Poll{Results: []models.PollResult{}},
	}

	for _, poll := range item.Polls {
		switch poll.Name {
		case pollNamePlayerCount:
			details.PlayerCountPoll = parsePlayerCountPoll(poll)
		case pollNamePlayerAge:
			details.PlayerAgePoll = parseFlatPoll(poll)
		case pollNameLanguage:
			details.LanguageDependencePoll = parseFlatPoll(poll)
		}
	}

	if len(item.PollSummaries) > 0 {
		details.SuggestedPlayerCount = parsePollSummary(item.PollSummaries[0])
	}

	return details, nil
}

// wrapThrottleError keeps exhausted-retry failures distinguishable so the
// caller layer can report "provider busy" instead of a generic failure.
func wrapThrottleError(operation string, fallback error, err error) error {
	var exhausted *throttle.RetryExhaustedError
	if stderrors.As(err, &exhausted) {
		return apperrors.NewProviderBusyError(operation, err)
	}
	return fallback
}
