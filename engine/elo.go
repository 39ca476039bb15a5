package engine

import "math"

// DefaultElo is the score every item starts from before any battle or
// rating has touched it.
const DefaultElo = 1500.0

// Rating <-> Elo mapping: a 0-10 star rating is placed on a straight line
// through (5.0, 1500) with eloPerStar points per rating unit, so a 10.0
// sits at 2400 and a 0.0 at 600.
const (
	eloMidpoint = 1500.0
	ratingMid   = 5.0
	eloPerStar  = 180.0
)

// KFactorFunc maps an Elo gap to the K used for that battle. The curve is
// a tuning knob, so it is replaceable on the model.
type KFactorFunc func(ratingDiff float64) float64

// EloModel holds the constants of the rating update rule. The zero value
// is not usable; build one with NewEloModel.
type EloModel struct {
	KMin float64
	KMax float64
	// KRange is the Elo gap beyond which K stays pinned at KMin.
	KRange float64
	// KFactor overrides the built-in linear decay when set.
	KFactor KFactorFunc
}

// NewEloModel returns a model with the default K window of [16, 48]
// decaying linearly over a 400-point gap.
func NewEloModel() *EloModel {
	return &EloModel{
		KMin:   16,
		KMax:   48,
		KRange: 400,
	}
}

// ExpectedScore is the standard logistic win expectation of a versus b.
// ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func (m *EloModel) ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// DynamicKFactor returns the K for a battle between two scores ratingDiff
// apart. Close matches move fast (KMax), established gaps move slowly
// (KMin); the default decay between the two is linear in |ratingDiff|.
func (m *EloModel) DynamicKFactor(ratingDiff float64) float64 {
	if m.KFactor != nil {
		return clamp(m.KFactor(ratingDiff), m.KMin, m.KMax)
	}
	gap := math.Abs(ratingDiff)
	if gap > m.KRange {
		gap = m.KRange
	}
	return m.KMax - (m.KMax-m.KMin)*(gap/m.KRange)
}

// UpdateElo applies one battle outcome and returns the new scores. The
// two deltas always sum to zero: points flow from loser to winner.
func (m *EloModel) UpdateElo(winnerElo, loserElo float64) (float64, float64) {
	k := m.DynamicKFactor(winnerElo - loserElo)
	expected := m.ExpectedScore(winnerElo, loserElo)
	delta := k * (1 - expected)
	return winnerElo + delta, loserElo - delta
}

// RatingToElo seeds an Elo score from a 0-10 star rating.
func RatingToElo(rating float64) float64 {
	return eloMidpoint + (rating-ratingMid)*eloPerStar
}

// EloToRating maps an Elo score back onto the 0-10 scale, clamped at the
// ends. Inverse of RatingToElo for any in-range rating.
func EloToRating(elo float64) float64 {
	return clamp(ratingMid+(elo-eloMidpoint)/eloPerStar, 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
