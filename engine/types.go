package engine

// RankingMethod selects how a session orders its movies.
type RankingMethod string

const (
	MethodVersus RankingMethod = "versus"
	MethodManual RankingMethod = "manual"
	MethodTier   RankingMethod = "tier"
	MethodMerged RankingMethod = "merged"
)

// EloHandling selects the scope battle deltas are applied to.
type EloHandling string

const (
	EloLocal  EloHandling = "local"
	EloGlobal EloHandling = "global"
)

// BattleLimitType is the rule deciding when a session has seen enough battles.
type BattleLimitType string

const (
	LimitComplete BattleLimitType = "complete"
	LimitFixed    BattleLimitType = "fixed"
	LimitPerMovie BattleLimitType = "per-movie"
	LimitInfinite BattleLimitType = "infinite"
)

// Policy is the battle-limit configuration of one session.
// BattleLimit is ignored for the complete and infinite types.
type Policy struct {
	LimitType   BattleLimitType
	BattleLimit int
}

// Validate reports whether the policy is usable for pairing and progress.
func (p Policy) Validate() error {
	switch p.LimitType {
	case LimitComplete, LimitInfinite:
		return nil
	case LimitFixed, LimitPerMovie:
		if p.BattleLimit <= 0 {
			return ErrInvalidPolicy
		}
		return nil
	default:
		return ErrInvalidPolicy
	}
}

// Item is the engine's view of one movie inside one ranking session.
// IDs are opaque strings; the storage layer decides what they look like.
type Item struct {
	ID       string
	MovieID  string
	Elo      float64
	Rating   *float64
	Position *int
	Tier     string
	Battles  int
}

// Pair is an unordered movie pair, normalized so A < B.
type Pair struct {
	A string
	B string
}

// NewPair builds the canonical form of an unordered pair.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// PairSet tracks which unordered pairs a session has already compared
// (battles plus explicit skips).
type PairSet map[Pair]struct{}

func (s PairSet) Contains(p Pair) bool {
	_, ok := s[p]
	return ok
}

func (s PairSet) Add(p Pair) {
	s[p] = struct{}{}
}

// Progress is the completion snapshot of a session.
// TargetBattles and CompletionPercent are nil for infinite sessions.
type Progress struct {
	TotalMovies       int      `json:"total_movies"`
	TargetBattles     *int     `json:"target_battles"`
	CompletedBattles  int      `json:"completed_battles"`
	IsCompleted       bool     `json:"is_completed"`
	CompletionPercent *float64 `json:"completion_percent"`
}

// BattleResult describes one applied (or replayed) battle.
// Duplicate is set when the pair was already completed and the update
// was skipped as an idempotent no-op.
type BattleResult struct {
	SessionID       string
	WinnerID        string
	LoserID         string
	WinnerEloBefore float64
	WinnerEloAfter  float64
	LoserEloBefore  float64
	LoserEloAfter   float64
	Duplicate       bool
}
