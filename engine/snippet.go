package engine

// LeagueEntry is one row of a session leaderboard, sorted descending by
// rating then Elo.
type LeagueEntry struct {
	MovieID string
	Title   string
	Rating  float64
	Elo     float64
}

// SnippetEntry is a leaderboard row annotated with its 1-based position;
// IsCurrent marks the movie being rated right now.
type SnippetEntry struct {
	LeagueEntry
	Position  int
	IsCurrent bool
}

// snippetSize caps how many rows the rating screen shows around the
// candidate.
const snippetSize = 3

// BuildLeagueSnippet places a provisionally-rated candidate into the
// leaderboard and returns a short context window around where it would
// land. The candidate's hypothetical Elo comes from its rating; its rank
// is one past the entries that beat it outright (higher rating, or same
// rating with higher Elo). An empty leaderboard yields just the
// candidate at position 1.
func BuildLeagueSnippet(candidate LeagueEntry, leaderboard []LeagueEntry) []SnippetEntry {
	candidate.Elo = RatingToElo(candidate.Rating)

	if len(leaderboard) == 0 {
		return []SnippetEntry{{LeagueEntry: candidate, Position: 1, IsCurrent: true}}
	}

	rank := 1
	for _, e := range leaderboard {
		if e.Rating > candidate.Rating || (e.Rating == candidate.Rating && e.Elo > candidate.Elo) {
			rank++
		}
	}

	// Merge the candidate into its slot, then cut a window centered on
	// it, clamped at the leaderboard edges.
	merged := make([]SnippetEntry, 0, len(leaderboard)+1)
	for _, e := range leaderboard {
		merged = append(merged, SnippetEntry{LeagueEntry: e})
	}
	idx := rank - 1
	merged = append(merged, SnippetEntry{})
	copy(merged[idx+1:], merged[idx:])
	merged[idx] = SnippetEntry{LeagueEntry: candidate, IsCurrent: true}
	for i := range merged {
		merged[i].Position = i + 1
	}

	lo := idx - (snippetSize-1)/2
	hi := lo + snippetSize
	if lo < 0 {
		lo, hi = 0, snippetSize
	}
	if hi > len(merged) {
		hi = len(merged)
		lo = hi - snippetSize
		if lo < 0 {
			lo = 0
		}
	}
	return merged[lo:hi]
}
