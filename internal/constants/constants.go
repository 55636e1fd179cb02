// Package constants defines application-wide constants and default values.
package constants

const (
	// Application metadata
	AppName        = "boardgame-search"
	AppVersion     = "1.0.0"
	AppDescription = "BoardGameGeek search and catalog service with request throttling and caching"

	// Default configuration values
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Upstream provider
	DefaultBGGBaseURL = "https://api.geekdo.com/xmlapi2"

	// User agent sent with every upstream request, BGG asks for a
	// descriptive client identifier
	UserAgent = "boardgame-search/" + AppVersion + " (+https://github.com/Marlon154/boardgame-search)"

	// Search cache settings
	DefaultCacheSize       = 256
	DefaultCacheTTLMinutes = 15

	// Extra entries removed when the cache is pruned over capacity, keeps
	// prune from running on every subsequent insert
	CachePruneMargin = 10
)
