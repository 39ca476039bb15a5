package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(ratings ...float64) []LeagueEntry {
	entries := make([]LeagueEntry, len(ratings))
	for i, r := range ratings {
		entries[i] = LeagueEntry{
			MovieID: string(rune('a' + i)),
			Rating:  r,
			Elo:     RatingToElo(r),
		}
	}
	return entries
}

func currentEntry(t *testing.T, snippet []SnippetEntry) SnippetEntry {
	t.Helper()
	for _, e := range snippet {
		if e.IsCurrent {
			return e
		}
	}
	t.Fatal("snippet has no current entry")
	return SnippetEntry{}
}

func TestBuildLeagueSnippetEmptyLeaderboard(t *testing.T) {
	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 7.5}, nil)

	require.Len(t, snippet, 1)
	assert.True(t, snippet[0].IsCurrent)
	assert.Equal(t, 1, snippet[0].Position)
	assert.Equal(t, RatingToElo(7.5), snippet[0].Elo)
}

func TestBuildLeagueSnippetMidBoardWithTie(t *testing.T) {
	// Tie at 8.0: the incumbent's higher Elo keeps it ahead of the
	// candidate.
	leaderboard := board(9.0, 8.5, 8.0, 7.0, 6.0)
	leaderboard[2].Elo += 50

	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 8.0}, leaderboard)

	require.LessOrEqual(t, len(snippet), 3)
	cur := currentEntry(t, snippet)
	assert.Equal(t, 4, cur.Position, "ties keep the incumbent ahead")

	// Neighbours stay contiguous around the candidate.
	for i := 1; i < len(snippet); i++ {
		assert.Equal(t, snippet[i-1].Position+1, snippet[i].Position)
	}
}

func TestBuildLeagueSnippetTopOfBoard(t *testing.T) {
	leaderboard := board(8.0, 7.0, 6.0)

	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 9.5}, leaderboard)

	require.LessOrEqual(t, len(snippet), 3)
	cur := currentEntry(t, snippet)
	assert.Equal(t, 1, cur.Position)
	assert.True(t, snippet[0].IsCurrent, "candidate leads the window at the top")
}

func TestBuildLeagueSnippetBottomOfBoard(t *testing.T) {
	leaderboard := board(9.0, 8.0, 7.0)

	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 1.0}, leaderboard)

	require.LessOrEqual(t, len(snippet), 3)
	cur := currentEntry(t, snippet)
	assert.Equal(t, 4, cur.Position)
	assert.True(t, snippet[len(snippet)-1].IsCurrent, "candidate trails the window at the bottom")
}

func TestBuildLeagueSnippetTinyLeaderboard(t *testing.T) {
	leaderboard := board(6.0)

	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 7.0}, leaderboard)

	require.Len(t, snippet, 2)
	assert.True(t, snippet[0].IsCurrent)
	assert.Equal(t, 1, snippet[0].Position)
	assert.Equal(t, 2, snippet[1].Position)
}

func TestBuildLeagueSnippetWindowCentersCandidate(t *testing.T) {
	leaderboard := board(10, 9.5, 9, 8.5, 8, 7.5, 7, 6.5, 6)

	snippet := BuildLeagueSnippet(LeagueEntry{MovieID: "x", Rating: 8.2}, leaderboard)

	require.Len(t, snippet, 3)
	assert.True(t, snippet[1].IsCurrent, "candidate sits in the middle away from the edges")
}
