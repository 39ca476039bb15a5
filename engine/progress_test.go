package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgressCompletionBoundary(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		items  int
		target int
	}{
		{"complete", Policy{LimitType: LimitComplete}, 4, 6},
		{"fixed", Policy{LimitType: LimitFixed, BattleLimit: 10}, 4, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			below, err := ComputeProgress(tc.policy, tc.target-1, nil, tc.items)
			require.NoError(t, err)
			assert.False(t, below.IsCompleted)

			at, err := ComputeProgress(tc.policy, tc.target, nil, tc.items)
			require.NoError(t, err)
			assert.True(t, at.IsCompleted)
			require.NotNil(t, at.TargetBattles)
			assert.Equal(t, tc.target, *at.TargetBattles)
			require.NotNil(t, at.CompletionPercent)
			assert.Equal(t, 100.0, *at.CompletionPercent)
		})
	}
}

func TestComputeProgressPerMovieBoundary(t *testing.T) {
	policy := Policy{LimitType: LimitPerMovie, BattleLimit: 2}

	// 3 items, 2 battles each -> 6 participations target.
	below, err := ComputeProgress(policy, 0, map[string]int{"a": 2, "b": 2, "c": 1}, 3)
	require.NoError(t, err)
	assert.False(t, below.IsCompleted)
	require.NotNil(t, below.TargetBattles)
	assert.Equal(t, 6, *below.TargetBattles)

	at, err := ComputeProgress(policy, 0, map[string]int{"a": 2, "b": 2, "c": 2}, 3)
	require.NoError(t, err)
	assert.True(t, at.IsCompleted)
}

func TestComputeProgressPerMovieRequiresEveryItem(t *testing.T) {
	policy := Policy{LimitType: LimitPerMovie, BattleLimit: 1}

	// The participation sum hits the 4-item target, but one movie never
	// battled: the session is not done and the generator would still
	// serve pairs for it.
	counts := map[string]int{"a": 2, "b": 1, "c": 1, "d": 0}
	prog, err := ComputeProgress(policy, 2, counts, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, prog.CompletedBattles)
	require.NotNil(t, prog.TargetBattles)
	assert.Equal(t, 4, *prog.TargetBattles)
	assert.False(t, prog.IsCompleted, "an unbattled item keeps the session open")

	counts["d"] = 1
	prog, err = ComputeProgress(policy, 3, counts, 4)
	require.NoError(t, err)
	assert.True(t, prog.IsCompleted)
}

func TestComputeProgressPerMoviePartialCountsStayOpen(t *testing.T) {
	policy := Policy{LimitType: LimitPerMovie, BattleLimit: 1}

	// A counts map missing items reads the absent ones as zero.
	prog, err := ComputeProgress(policy, 3, map[string]int{"a": 3, "b": 3}, 3)
	require.NoError(t, err)
	assert.False(t, prog.IsCompleted)
}

func TestComputeProgressInfiniteNeverCompletes(t *testing.T) {
	policy := Policy{LimitType: LimitInfinite}

	prog, err := ComputeProgress(policy, 100000, nil, 4)
	require.NoError(t, err)
	assert.False(t, prog.IsCompleted)
	assert.Nil(t, prog.TargetBattles)
	assert.Nil(t, prog.CompletionPercent)
	assert.Equal(t, 100000, prog.CompletedBattles)
}

func TestComputeProgressFixedScenario(t *testing.T) {
	// Four fresh items, fixed limit of three battles.
	policy := Policy{LimitType: LimitFixed, BattleLimit: 3}

	prog, err := ComputeProgress(policy, 3, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, prog.TotalMovies)
	assert.Equal(t, 3, prog.CompletedBattles)
	assert.True(t, prog.IsCompleted)
	require.NotNil(t, prog.CompletionPercent)
	assert.Equal(t, 100.0, *prog.CompletionPercent)
}

func TestComputeProgressPercentCapped(t *testing.T) {
	policy := Policy{LimitType: LimitFixed, BattleLimit: 3}
	prog, err := ComputeProgress(policy, 9, nil, 4)
	require.NoError(t, err)
	require.NotNil(t, prog.CompletionPercent)
	assert.Equal(t, 100.0, *prog.CompletionPercent)
}

func TestComputeProgressInvalidPolicy(t *testing.T) {
	_, err := ComputeProgress(Policy{LimitType: LimitFixed}, 0, nil, 4)
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = ComputeProgress(Policy{LimitType: "swiss"}, 0, nil, 4)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
