package engine

import (
	"math/rand"
	"time"
)

// PairingGenerator proposes the next head-to-head comparison for a
// session. Selection among candidate pairs is uniformly random (shuffle,
// not movie-id order) so early catalog entries get no positional bias.
type PairingGenerator struct {
	rng *rand.Rand
}

// NewPairingGenerator builds a generator around the given random source.
// Pass a seeded source in tests for deterministic sequences; nil falls
// back to a time-seeded one.
func NewPairingGenerator(rng *rand.Rand) *PairingGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PairingGenerator{rng: rng}
}

// NextPair returns the next unseen pair for the session, or nil when the
// policy says the session needs no further battles. The completed set
// must be read fresh (or inside the same transaction) by the caller so a
// concurrent battle cannot be proposed twice.
func (g *PairingGenerator) NextPair(items []Item, completed PairSet, policy Policy) (*Pair, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return nil, ErrInsufficientItems
	}

	switch policy.LimitType {
	case LimitFixed:
		// The quota counts recorded battles, not completed pairs: a
		// skip marks its pair seen but must not shrink the session.
		if recordedBattles(items) >= policy.BattleLimit {
			return nil, nil
		}
	case LimitPerMovie:
		if everyItemAtLimit(items, policy.BattleLimit) {
			return nil, nil
		}
	}

	remaining := g.remainingPairs(items, completed)

	if policy.LimitType == LimitPerMovie {
		// Only propose pairs that still help an under-battled item.
		remaining = filterUnderLimit(remaining, items, policy.BattleLimit)
	}

	if len(remaining) == 0 {
		if policy.LimitType == LimitInfinite {
			// Unique pairs exhausted: resample uniformly, repeats allowed.
			all := allPairs(items)
			p := all[g.rng.Intn(len(all))]
			return &p, nil
		}
		return nil, nil
	}

	p := remaining[g.rng.Intn(len(remaining))]
	return &p, nil
}

// Schedule returns every not-yet-compared pair in random order, for
// callers that want a whole pass up front instead of one pair at a time.
func (g *PairingGenerator) Schedule(items []Item, completed PairSet) ([]Pair, error) {
	if len(items) < 2 {
		return nil, ErrInsufficientItems
	}
	remaining := g.remainingPairs(items, completed)
	g.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	return remaining, nil
}

func (g *PairingGenerator) remainingPairs(items []Item, completed PairSet) []Pair {
	pairs := allPairs(items)
	out := pairs[:0]
	for _, p := range pairs {
		if !completed.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

func allPairs(items []Item) []Pair {
	n := len(items)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, NewPair(items[i].MovieID, items[j].MovieID))
		}
	}
	return pairs
}

// recordedBattles derives the session's battle total from the per-item
// counters. Every battle advances exactly two of them.
func recordedBattles(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Battles
	}
	return total / 2
}

func everyItemAtLimit(items []Item, limit int) bool {
	for _, it := range items {
		if it.Battles < limit {
			return false
		}
	}
	return true
}

func filterUnderLimit(pairs []Pair, items []Item, limit int) []Pair {
	counts := make(map[string]int, len(items))
	for _, it := range items {
		counts[it.MovieID] = it.Battles
	}
	out := pairs[:0]
	for _, p := range pairs {
		if counts[p.A] < limit || counts[p.B] < limit {
			out = append(out, p)
		}
	}
	return out
}
