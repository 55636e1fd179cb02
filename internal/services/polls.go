package services

import "github.com/Marlon154/boardgame-search/internal/models"

// Poll names used by the provider.
const (
	pollNamePlayerCount = "suggested_numplayers"
	pollNamePlayerAge   = "suggested_playerage"
	pollNameLanguage    = "language_dependence"

	summaryBestWith = "bestwith"
	// The provider's own attribute name is misspelled; it is part of the
	// upstream contract.
	summaryRecommendedWith = "recommmendedwith"
)

// parsePlayerCountPoll maps the suggested_numplayers poll into one
// PlayerCountVote per results block, in document order. Vote labels are
// provider-supplied and kept as map keys; total is the sum over the block.
func parsePlayerCountPoll(poll pollElement) []models.PlayerCountVote {
	votes := make([]models.PlayerCountVote, 0, len(poll.Results))

	for _, block := range poll.Results {
		voteMap := make(map[string]int, len(block.Results))
		total := 0
		for _, r := range block.Results {
			n := parseIntOrZero(r.NumVotes)
			voteMap[r.Value] = n
			total += n
		}

		votes = append(votes, models.PlayerCountVote{
			PlayerCount: block.NumPlayers,
			Votes:       voteMap,
			Total:       total,
		})
	}

	return votes
}

// parseFlatPoll maps an age or language-dependence poll. Zero-vote
// entries are excluded from the results list but still counted in
// TotalVotes.
func parseFlatPoll(poll pollElement) models.Poll {
	out := models.Poll{Results: []models.PollResult{}}
	if len(poll.Results) == 0 {
		return out
	}

	for _, r := range poll.Results[0].Results {
		n := parseIntOrZero(r.NumVotes)
		out.TotalVotes += n
		if n > 0 {
			out.Results = append(out.Results, models.PollResult{Value: r.Value, Votes: n})
		}
	}

	return out
}

// parsePollSummary extracts the best/recommended player-count pair.
func parsePollSummary(summary pollSummaryElement) *models.SuggestedPlayerCount {
	out := &models.SuggestedPlayerCount{}
	for _, r := range summary.Results {
		switch r.Name {
		case summaryBestWith:
			out.Best = r.Value
		case summaryRecommendedWith:
			out.Recommended = r.Value
		}
	}
	return out
}
