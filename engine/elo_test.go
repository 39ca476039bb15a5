package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedScoreComplement(t *testing.T) {
	m := NewEloModel()

	cases := []struct {
		name string
		a, b float64
	}{
		{"equal", 1500, 1500},
		{"small gap", 1520, 1480},
		{"large gap", 2200, 1100},
		{"reversed", 1100, 2200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum := m.ExpectedScore(tc.a, tc.b) + m.ExpectedScore(tc.b, tc.a)
			assert.InDelta(t, 1.0, sum, 1e-12)
		})
	}
}

func TestExpectedScoreEqualRatings(t *testing.T) {
	m := NewEloModel()
	assert.InDelta(t, 0.5, m.ExpectedScore(1500, 1500), 1e-12)
}

func TestUpdateEloZeroSum(t *testing.T) {
	m := NewEloModel()

	cases := []struct {
		name          string
		winner, loser float64
	}{
		{"equal", 1500, 1500},
		{"favourite wins", 1800, 1400},
		{"upset", 1200, 1900},
		{"fresh items", DefaultElo, DefaultElo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			newW, newL := m.UpdateElo(tc.winner, tc.loser)

			deltaW := newW - tc.winner
			deltaL := newL - tc.loser
			assert.InDelta(t, 0, deltaW+deltaL, 1e-9, "deltas must cancel")
			assert.Greater(t, newW, tc.winner, "winner must gain")
			assert.Less(t, newL, tc.loser, "loser must lose")
		})
	}
}

func TestDynamicKFactorBoundsAndMonotonicity(t *testing.T) {
	m := NewEloModel()

	prev := math.Inf(1)
	for _, gap := range []float64{0, 50, 100, 200, 400, 800, 2000} {
		k := m.DynamicKFactor(gap)
		require.GreaterOrEqual(t, k, m.KMin)
		require.LessOrEqual(t, k, m.KMax)
		require.LessOrEqual(t, k, prev, "K must not grow with the gap")
		prev = k
	}

	// Symmetric in the sign of the gap.
	assert.Equal(t, m.DynamicKFactor(-250), m.DynamicKFactor(250))
	// Close matches move at full speed, runaway gaps at the floor.
	assert.Equal(t, m.KMax, m.DynamicKFactor(0))
	assert.Equal(t, m.KMin, m.DynamicKFactor(1000))
}

func TestDynamicKFactorCustomCurveIsClamped(t *testing.T) {
	m := NewEloModel()
	m.KFactor = func(diff float64) float64 { return 1000 }
	assert.Equal(t, m.KMax, m.DynamicKFactor(0))

	m.KFactor = func(diff float64) float64 { return -5 }
	assert.Equal(t, m.KMin, m.DynamicKFactor(0))
}

func TestRatingEloRoundTrip(t *testing.T) {
	for r := 0.0; r <= 10.0; r += 0.25 {
		back := EloToRating(RatingToElo(r))
		require.InDelta(t, r, back, 0.05, "rating %.2f must round-trip", r)
	}
}

func TestRatingToEloAnchors(t *testing.T) {
	assert.Equal(t, DefaultElo, RatingToElo(5.0))
	assert.Greater(t, RatingToElo(9.0), RatingToElo(7.0))
	assert.Equal(t, 10.0, EloToRating(99999))
	assert.Equal(t, 0.0, EloToRating(-99999))
}
