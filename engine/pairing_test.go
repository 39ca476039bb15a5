package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: "item-" + id, MovieID: id, Elo: DefaultElo}
	}
	return items
}

func seededGenerator(seed int64) *PairingGenerator {
	return NewPairingGenerator(rand.New(rand.NewSource(seed)))
}

func TestNextPairCompleteNeverRepeats(t *testing.T) {
	g := seededGenerator(1)
	items := testItems("a", "b", "c", "d")
	completed := PairSet{}
	policy := Policy{LimitType: LimitComplete}

	seen := map[Pair]bool{}
	for i := 0; i < 6; i++ {
		p, err := g.NextPair(items, completed, policy)
		require.NoError(t, err)
		require.NotNil(t, p, "call %d should still have a pair", i)
		require.False(t, seen[*p], "pair %v proposed twice", *p)
		seen[*p] = true
		completed.Add(*p)
	}

	// C(4,2) pairs exhausted: the session is done.
	p, err := g.NextPair(items, completed, policy)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNextPairInsufficientItems(t *testing.T) {
	g := seededGenerator(1)
	policy := Policy{LimitType: LimitComplete}

	_, err := g.NextPair(nil, PairSet{}, policy)
	assert.ErrorIs(t, err, ErrInsufficientItems)

	_, err = g.NextPair(testItems("a"), PairSet{}, policy)
	assert.ErrorIs(t, err, ErrInsufficientItems)
}

func TestNextPairInvalidPolicy(t *testing.T) {
	g := seededGenerator(1)
	items := testItems("a", "b")

	cases := []struct {
		name   string
		policy Policy
	}{
		{"unknown type", Policy{LimitType: "bracket"}},
		{"fixed without limit", Policy{LimitType: LimitFixed}},
		{"fixed negative limit", Policy{LimitType: LimitFixed, BattleLimit: -3}},
		{"per-movie zero limit", Policy{LimitType: LimitPerMovie}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.NextPair(items, PairSet{}, tc.policy)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

// recordBattle mimics a persisted battle: the pair is retired and both
// participants' counters advance.
func recordBattle(items []Item, completed PairSet, p Pair) {
	completed.Add(p)
	for i := range items {
		if items[i].MovieID == p.A || items[i].MovieID == p.B {
			items[i].Battles++
		}
	}
}

func TestNextPairFixedStopsAtLimit(t *testing.T) {
	g := seededGenerator(7)
	items := testItems("a", "b", "c", "d")
	policy := Policy{LimitType: LimitFixed, BattleLimit: 3}

	completed := PairSet{}
	for i := 0; i < 3; i++ {
		p, err := g.NextPair(items, completed, policy)
		require.NoError(t, err)
		require.NotNil(t, p)
		recordBattle(items, completed, *p)
	}

	p, err := g.NextPair(items, completed, policy)
	require.NoError(t, err)
	assert.Nil(t, p, "limit reached, no further pair")
}

func TestNextPairFixedSkipDoesNotConsumeQuota(t *testing.T) {
	g := seededGenerator(7)
	items := testItems("a", "b", "c", "d")
	policy := Policy{LimitType: LimitFixed, BattleLimit: 3}

	// Two battles recorded, one pair skipped. The completed set holds
	// three pairs, but only two battles count against the quota.
	completed := PairSet{}
	recordBattle(items, completed, NewPair("a", "b"))
	recordBattle(items, completed, NewPair("c", "d"))
	completed.Add(NewPair("a", "c"))

	p, err := g.NextPair(items, completed, policy)
	require.NoError(t, err)
	require.NotNil(t, p, "a skip must not shrink the session")
	assert.False(t, completed.Contains(*p))

	recordBattle(items, completed, *p)
	p, err = g.NextPair(items, completed, policy)
	require.NoError(t, err)
	assert.Nil(t, p, "third battle fills the quota")
}

func TestNextPairPerMovieTargetsUnderBattledItems(t *testing.T) {
	g := seededGenerator(11)
	items := testItems("a", "b", "c")
	// a and b already have their battle; only c still needs one.
	items[0].Battles = 1
	items[1].Battles = 1
	policy := Policy{LimitType: LimitPerMovie, BattleLimit: 1}
	completed := PairSet{NewPair("a", "b"): {}}

	for i := 0; i < 10; i++ {
		p, err := g.NextPair(items, completed, policy)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.True(t, p.A == "c" || p.B == "c", "pair %v must involve the under-battled item", *p)
	}
}

func TestNextPairPerMovieDoneWhenAllAtLimit(t *testing.T) {
	g := seededGenerator(11)
	items := testItems("a", "b")
	items[0].Battles = 2
	items[1].Battles = 2
	policy := Policy{LimitType: LimitPerMovie, BattleLimit: 2}

	p, err := g.NextPair(items, PairSet{}, policy)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNextPairInfiniteResamplesAfterExhaustion(t *testing.T) {
	g := seededGenerator(3)
	items := testItems("a", "b", "c")
	policy := Policy{LimitType: LimitInfinite}

	completed := PairSet{}
	for _, p := range allPairs(items) {
		completed.Add(p)
	}

	// Every unique pair is done, yet the session keeps serving pairs.
	for i := 0; i < 5; i++ {
		p, err := g.NextPair(items, completed, policy)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
}

func TestNextPairDeterministicWithSeed(t *testing.T) {
	items := testItems("a", "b", "c", "d")
	policy := Policy{LimitType: LimitComplete}

	first, err := seededGenerator(42).NextPair(items, PairSet{}, policy)
	require.NoError(t, err)
	second, err := seededGenerator(42).NextPair(items, PairSet{}, policy)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScheduleCoversRemainingPairs(t *testing.T) {
	g := seededGenerator(5)
	items := testItems("a", "b", "c", "d")
	completed := PairSet{NewPair("a", "b"): {}}

	schedule, err := g.Schedule(items, completed)
	require.NoError(t, err)
	require.Len(t, schedule, 5)

	seen := map[Pair]bool{}
	for _, p := range schedule {
		require.False(t, seen[p])
		require.NotEqual(t, NewPair("a", "b"), p)
		seen[p] = true
	}
}

func TestNewPairNormalizesOrder(t *testing.T) {
	assert.Equal(t, NewPair("a", "b"), NewPair("b", "a"))
}
