package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

func TestSessionPolicy(t *testing.T) {
	session := &models.RankingSession{
		BattleLimitType: "fixed",
		BattleLimit:     25,
	}

	policy := sessionPolicy(session)
	assert.Equal(t, engine.LimitFixed, policy.LimitType)
	assert.Equal(t, 25, policy.BattleLimit)
	assert.NoError(t, policy.Validate())
}

func TestLeagueEntryPrefersExplicitRating(t *testing.T) {
	rating := 8.5
	item := models.RankingItem{
		MovieID:    primitive.NewObjectID(),
		MovieTitle: "Heat",
		EloScore:   1500,
		Rating:     &rating,
	}

	entry := leagueEntry(item)
	assert.Equal(t, 8.5, entry.Rating)
	assert.Equal(t, 1500.0, entry.Elo)
}

func TestLeagueEntryDerivesRatingFromElo(t *testing.T) {
	item := models.RankingItem{
		MovieID:    primitive.NewObjectID(),
		MovieTitle: "Alien",
		EloScore:   engine.RatingToElo(7.0),
	}

	entry := leagueEntry(item)
	assert.InDelta(t, 7.0, entry.Rating, 0.05)
}

func TestSortLeaderboardRatingThenElo(t *testing.T) {
	entries := []engine.LeagueEntry{
		{MovieID: "low", Rating: 6.0, Elo: 1700},
		{MovieID: "tie-low-elo", Rating: 8.0, Elo: 1500},
		{MovieID: "tie-high-elo", Rating: 8.0, Elo: 1600},
		{MovieID: "top", Rating: 9.0, Elo: 1400},
	}

	sortLeaderboard(entries)

	order := []string{entries[0].MovieID, entries[1].MovieID, entries[2].MovieID, entries[3].MovieID}
	assert.Equal(t, []string{"top", "tie-high-elo", "tie-low-elo", "low"}, order)
}
