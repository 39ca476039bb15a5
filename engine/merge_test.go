package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestMergeScoresAllSignals(t *testing.T) {
	calc := NewMergedScoreCalculator(DefaultMergeWeights)

	out := calc.MergeScores([]MergeCandidate{{
		MovieID:        "a",
		Elo:            1500,
		ExternalRating: floatPtr(8.0),
		Position:       intPtr(1),
		Popularity:     50,
	}, {
		MovieID: "b",
		Elo:     1500,
	}})
	require.Len(t, out, 2)

	// a: 0.4*0.5 + 0.3*0.8 + 0.2*(1-1/2) + 0.1*0.5 = 0.59 -> 1770
	assert.InDelta(t, 1770, out[0].MergedScore, 1e-9)
	// b: all fallbacks. 0.4*0.5 + 0.3*0.5 + 0.2*0.5 + 0.1*0 = 0.45 -> 1350
	assert.InDelta(t, 1350, out[1].MergedScore, 1e-9)
}

func TestMergeScoresClampsOutOfRangeSignals(t *testing.T) {
	calc := NewMergedScoreCalculator(DefaultMergeWeights)

	out := calc.MergeScores([]MergeCandidate{{
		MovieID:        "a",
		Elo:            9000,
		ExternalRating: floatPtr(10),
		Position:       intPtr(1),
		Popularity:     10000,
	}})
	// Every component saturates at 1 except position (1 - 1/1 = 0).
	assert.InDelta(t, (0.4+0.3+0.1)*mergedScale, out[0].MergedScore, 1e-9)
}

func TestMergeScoresDeterministic(t *testing.T) {
	calc := NewMergedScoreCalculator(DefaultMergeWeights)
	in := []MergeCandidate{
		{MovieID: "a", Elo: 1620, ExternalRating: floatPtr(7.4), Position: intPtr(2), Popularity: 31},
		{MovieID: "b", Elo: 1488, Popularity: 12},
		{MovieID: "c", Elo: 1711, ExternalRating: floatPtr(9.1)},
	}

	first := calc.MergeScores(in)
	second := calc.MergeScores(in)
	assert.Equal(t, first, second, "recomputing without mutation must be bit-identical")
}

func TestMergeScoresDoesNotMutateInput(t *testing.T) {
	calc := NewMergedScoreCalculator(DefaultMergeWeights)
	in := []MergeCandidate{{MovieID: "a", Elo: 1500}}

	calc.MergeScores(in)
	assert.Zero(t, in[0].MergedScore)
}

func TestMergeScoresEloDominatesWithDefaultWeights(t *testing.T) {
	calc := NewMergedScoreCalculator(DefaultMergeWeights)

	out := calc.MergeScores([]MergeCandidate{
		{MovieID: "strong", Elo: 2400},
		{MovieID: "weak", Elo: 900},
	})
	assert.Greater(t, out[0].MergedScore, out[1].MergedScore)
}
