package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marlon154/boardgame-search/internal/models"
)

func TestParsePlayerCountPoll(t *testing.T) {
	poll := pollElement{
		Name: pollNamePlayerCount,
		Results: []pollResultsBlock{
			{
				NumPlayers: "3",
				Results: []pollResult{
					{Value: "Best", NumVotes: "10"},
					{Value: "Recommended", NumVotes: "25"},
					{Value: "Not Recommended", NumVotes: "4"},
				},
			},
			{
				NumPlayers: "4",
				Results: []pollResult{
					{Value: "Best", NumVotes: "42"},
					{Value: "Recommended", NumVotes: "8"},
					{Value: "Not Recommended", NumVotes: "0"},
				},
			},
			{
				NumPlayers: "4+",
				Results:    []pollResult{},
			},
		},
	}

	votes := parsePlayerCountPoll(poll)
	require.Len(t, votes, 3)

	assert.Equal(t, "3", votes[0].PlayerCount)
	assert.Equal(t, 39, votes[0].Total)
	assert.Equal(t, 10, votes[0].Votes["Best"])
	assert.Equal(t, 25, votes[0].Votes["Recommended"])
	assert.Equal(t, 4, votes[0].Votes["Not Recommended"])

	assert.Equal(t, "4", votes[1].PlayerCount)
	assert.Equal(t, 50, votes[1].Total)

	// Empty block still yields an entry with total 0 and an empty map
	assert.Equal(t, "4+", votes[2].PlayerCount)
	assert.Equal(t, 0, votes[2].Total)
	assert.Empty(t, votes[2].Votes)

	// Total always equals the sum of the vote map
	for _, v := range votes {
		sum := 0
		for _, n := range v.Votes {
			sum += n
		}
		assert.Equal(t, sum, v.Total)
	}
}

func TestParsePlayerCountPollDynamicLabels(t *testing.T) {
	poll := pollElement{
		Name: pollNamePlayerCount,
		Results: []pollResultsBlock{
			{
				NumPlayers: "2",
				Results: []pollResult{
					{Value: "Ideal", NumVotes: "7"},
				},
			},
		},
	}

	votes := parsePlayerCountPoll(poll)
	require.Len(t, votes, 1)
	// Labels come from the provider, unknown ones are kept as-is
	assert.Equal(t, 7, votes[0].Votes["Ideal"])
	assert.Equal(t, 0, votes[0].Votes["Best"])
}

func TestParseFlatPollFiltersZeroVotes(t *testing.T) {
	poll := pollElement{
		Name: pollNamePlayerAge,
		Results: []pollResultsBlock{
			{
				Results: []pollResult{
					{Value: "2", NumVotes: "0"},
					{Value: "3", NumVotes: "5"},
					{Value: "4", NumVotes: "2"},
				},
			},
		},
	}

	out := parseFlatPoll(poll)
	// Zero-vote entries are excluded from results but counted in the total
	assert.Equal(t, 7, out.TotalVotes)
	require.Len(t, out.Results, 2)
	assert.Equal(t, models.PollResult{Value: "3", Votes: 5}, out.Results[0])
	assert.Equal(t, models.PollResult{Value: "4", Votes: 2}, out.Results[1])
}

func TestParseFlatPollEmpty(t *testing.T) {
	out := parseFlatPoll(pollElement{Name: pollNameLanguage})
	assert.Equal(t, 0, out.TotalVotes)
	assert.Empty(t, out.Results)
	assert.NotNil(t, out.Results)
}

func TestParseFlatPollUnparsableVotesDefaultToZero(t *testing.T) {
	poll := pollElement{
		Results: []pollResultsBlock{
			{
				Results: []pollResult{
					{Value: "12", NumVotes: "not-a-number"},
					{Value: "14", NumVotes: "3"},
				},
			},
		},
	}

	out := parseFlatPoll(poll)
	assert.Equal(t, 3, out.TotalVotes)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "14", out.Results[0].Value)
}

func TestParsePollSummary(t *testing.T) {
	summary := pollSummaryElement{
		Name: "suggested_numplayers",
		Results: []pollSummaryResult{
			{Name: "bestwith", Value: "Best with 4 players"},
			// The provider really does spell it with three m's
			{Name: "recommmendedwith", Value: "Recommended with 3–5 players"},
		},
	}

	out := parsePollSummary(summary)
	assert.Equal(t, "Best with 4 players", out.Best)
	assert.Equal(t, "Recommended with 3–5 players", out.Recommended)
}
