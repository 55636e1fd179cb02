// Package models defines the domain types exposed by the catalog service.
package models

import "time"

// SearchResult is a single entry from a BoardGameGeek search, enriched
// with a few detail fields the search payload itself does not carry.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	YearPublished string `json:"yearPublished,omitempty"`
	Type          string `json:"type"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	MinPlayers    int    `json:"minPlayers,omitempty"`
	MaxPlayers    int    `json:"maxPlayers,omitempty"`
	PlayingTime   int    `json:"playingTime,omitempty"`
}

// GameDetails is the full record for a single game. It is rebuilt from
// the provider payload on every fetch; absent numeric fields default to 0
// and absent text fields to the empty string.
type GameDetails struct {
	ID                     string                `json:"id"`
	Name                   string                `json:"name"`
	YearPublished          string                `json:"yearPublished,omitempty"`
	Description            string                `json:"description"`
	Image                  string                `json:"image"`
	Thumbnail              string                `json:"thumbnail"`
	MinPlayers             int                   `json:"minPlayers"`
	MaxPlayers             int                   `json:"maxPlayers"`
	PlayingTime            int                   `json:"playingTime"`
	MinPlayTime            int                   `json:"minPlayTime"`
	MaxPlayTime            int                   `json:"maxPlayTime"`
	MinAge                 int                   `json:"minAge"`
	Rating                 float64               `json:"rating"`
	Weight                 float64               `json:"weight"`
	SuggestedPlayerCount   *SuggestedPlayerCount `json:"suggestedPlayerCount,omitempty"`
	PlayerCountPoll        []PlayerCountVote     `json:"playerCountPoll"`
	PlayerAgePoll          Poll                  `json:"playerAgePoll"`
	LanguageDependencePoll Poll                  `json:"languageDependencePoll"`
}

// SuggestedPlayerCount is the provider's poll-summary pair.
type SuggestedPlayerCount struct {
	Best        string `json:"best"`
	Recommended string `json:"recommended"`
}

// PlayerCountVote aggregates the community votes for one player-count
// bucket. The vote labels are provider-supplied and not a closed set, so
// they are kept as map keys; missing labels read as 0.
type PlayerCountVote struct {
	// PlayerCount is kept verbatim, the provider uses values like "4" and "4+"
	PlayerCount string         `json:"playerCount"`
	Votes       map[string]int `json:"votes"`
	Total       int            `json:"total"`
}

// PollResult is one label/count pair in an age or language poll.
type PollResult struct {
	Value string `json:"value"`
	Votes int    `json:"votes"`
}

// Poll aggregates the results of an age or language-dependence poll.
// Results excludes zero-vote entries; TotalVotes counts them anyway.
type Poll struct {
	Results    []PollResult `json:"results"`
	TotalVotes int          `json:"totalVotes"`
}

// SavedGame is a GameDetails snapshot persisted to the local collection.
type SavedGame struct {
	GameDetails
	SavedAt time.Time `json:"savedAt"`
}
