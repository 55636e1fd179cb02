package services

import (
	"strconv"
	"strings"
)

// XML structures for parsing BGG API responses. Numeric attributes are
// kept as strings so an unparsable or absent value defaults to 0 instead
// of failing the whole decode.

// searchItems is the root element for search results.
type searchItems struct {
	Items []searchItem `xml:"item"`
}

// searchItem represents an item in search results.
type searchItem struct {
	ID            string    `xml:"id,attr"`
	Type          string    `xml:"type,attr"`
	Name          valueAttr `xml:"name"`
	YearPublished valueAttr `xml:"yearpublished"`
}

// valueAttr represents an element carrying its payload in a value attribute.
type valueAttr struct {
	Value string `xml:"value,attr"`
}

// nameElement represents a name element with type and value attributes.
type nameElement struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// thingItems is the root element for thing (game detail) responses.
type thingItems struct {
	Items []thingItem `xml:"item"`
}

// thingItem represents a detailed game item.
type thingItem struct {
	ID            string               `xml:"id,attr"`
	Type          string               `xml:"type,attr"`
	Thumbnail     string               `xml:"thumbnail"`
	Image         string               `xml:"image"`
	Names         []nameElement        `xml:"name"`
	Description   string               `xml:"description"`
	YearPublished valueAttr            `xml:"yearpublished"`
	MinPlayers    valueAttr            `xml:"minplayers"`
	MaxPlayers    valueAttr            `xml:"maxplayers"`
	PlayingTime   valueAttr            `xml:"playingtime"`
	MinPlayTime   valueAttr            `xml:"minplaytime"`
	MaxPlayTime   valueAttr            `xml:"maxplaytime"`
	MinAge        valueAttr            `xml:"minage"`
	Statistics    statisticsElement    `xml:"statistics"`
	Polls         []pollElement        `xml:"poll"`
	PollSummaries []pollSummaryElement `xml:"poll-summary"`
}

// statisticsElement contains game statistics, present when stats=1 is requested.
type statisticsElement struct {
	Ratings ratingsElement `xml:"ratings"`
}

// ratingsElement contains rating information.
type ratingsElement struct {
	Average       valueAttr `xml:"average"`
	AverageWeight valueAttr `xml:"averageweight"`
}

// pollElement represents a community poll.
type pollElement struct {
	Name    string             `xml:"name,attr"`
	Title   string             `xml:"title,attr"`
	Results []pollResultsBlock `xml:"results"`
}

// pollResultsBlock represents one results block. For the player-count
// poll there is one block per candidate count; age and language polls
// have a single block.
type pollResultsBlock struct {
	NumPlayers string       `xml:"numplayers,attr"`
	Results    []pollResult `xml:"result"`
}

// pollResult represents a single vote entry.
type pollResult struct {
	Value    string `xml:"value,attr"`
	NumVotes string `xml:"numvotes,attr"`
}

// pollSummaryElement represents the poll-summary block.
type pollSummaryElement struct {
	Name    string              `xml:"name,attr"`
	Results []pollSummaryResult `xml:"result"`
}

// pollSummaryResult represents a named result in a poll summary.
type pollSummaryResult struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// primaryName returns the primary name value, falling back to the first
// name when no primary is flagged.
func primaryName(names []nameElement) string {
	for _, n := range names {
		if n.Type == "primary" {
			return n.Value
		}
	}
	if len(names) > 0 {
		return names[0].Value
	}
	return ""
}

// parseIntOrZero converts a numeric attribute, defaulting to 0 on any
// parse failure. The provider occasionally omits or garbles numerics.
func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseFloatOrZero converts a float attribute, defaulting to 0 on any
// parse failure.
func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
