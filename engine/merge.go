package engine

// MergeWeights are the relative contributions of each signal to a merged
// score. They should sum to 1; the defaults favour the Elo signal since
// battles carry the most intent.
type MergeWeights struct {
	Elo        float64
	Rating     float64
	Position   float64
	Popularity float64
}

// DefaultMergeWeights is the fixed blend used by merged sessions.
var DefaultMergeWeights = MergeWeights{
	Elo:        0.4,
	Rating:     0.3,
	Position:   0.2,
	Popularity: 0.1,
}

// mergedScale rescales the blended [0,1] score back into Elo territory
// so merged scores stay comparable with raw Elo.
const mergedScale = 3000.0

// MergeCandidate carries the four ranking signals of one item.
// ExternalRating is the 0-10 public rating of the movie (IMDb-style);
// Popularity is an open-ended vote-volume style figure.
type MergeCandidate struct {
	MovieID        string
	Elo            float64
	ExternalRating *float64
	Position       *int
	Popularity     float64
	MergedScore    float64
}

// MergedScoreCalculator blends Elo, external rating, manual position and
// popularity into one comparable score.
type MergedScoreCalculator struct {
	weights MergeWeights
}

func NewMergedScoreCalculator(weights MergeWeights) *MergedScoreCalculator {
	return &MergedScoreCalculator{weights: weights}
}

// MergeScores fills MergedScore on every candidate. The computation is a
// pure function of the inputs: recomputing without other mutation yields
// identical output.
func (c *MergedScoreCalculator) MergeScores(candidates []MergeCandidate) []MergeCandidate {
	total := len(candidates)
	out := make([]MergeCandidate, total)
	for i, cand := range candidates {
		cand.MergedScore = c.score(cand, total)
		out[i] = cand
	}
	return out
}

func (c *MergedScoreCalculator) score(cand MergeCandidate, totalItems int) float64 {
	elo := clamp(cand.Elo/mergedScale, 0, 1)

	// Missing signals fall back to the midpoint so absence neither
	// rewards nor punishes.
	rating := 0.5
	if cand.ExternalRating != nil {
		rating = clamp(*cand.ExternalRating/10, 0, 1)
	}

	position := 0.5
	if cand.Position != nil && totalItems > 0 {
		position = clamp(1-float64(*cand.Position)/float64(totalItems), 0, 1)
	}

	popularity := clamp(cand.Popularity/100, 0, 1)

	blended := c.weights.Elo*elo +
		c.weights.Rating*rating +
		c.weights.Position*position +
		c.weights.Popularity*popularity

	return blended * mergedScale
}
