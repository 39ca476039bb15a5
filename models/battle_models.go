package models

// RegisterRequest / LoginRequest are the auth payloads.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateSessionRequest starts a ranking session over a set of movies.
type CreateSessionRequest struct {
	Name            string   `json:"name" binding:"required"`
	RankingMethod   string   `json:"ranking_method" binding:"required,oneof=versus manual tier merged"`
	EloHandling     string   `json:"elo_handling" binding:"omitempty,oneof=local global"`
	BattleLimitType string   `json:"battle_limit_type" binding:"required,oneof=complete fixed per-movie infinite"`
	BattleLimit     int      `json:"battle_limit" binding:"omitempty,gt=0"`
	MovieIDs        []string `json:"movie_ids" binding:"required,min=2"`
}

// BattlePairResponse is the next comparison served to the client.
// Done is set instead of movies when the policy needs no further battles.
type BattlePairResponse struct {
	MovieA *RankingItem `json:"movie_a,omitempty"`
	MovieB *RankingItem `json:"movie_b,omitempty"`
	Done   bool         `json:"done"`
}

// SubmitBattleRequest reports which movie of a served pair won.
type SubmitBattleRequest struct {
	WinnerID string `json:"winner_id" binding:"required"`
	LoserID  string `json:"loser_id" binding:"required"`
}

// SkipPairRequest declines a comparison without rating consequences.
type SkipPairRequest struct {
	MovieAID string `json:"movie_a_id" binding:"required"`
	MovieBID string `json:"movie_b_id" binding:"required"`
}

// RateMovieRequest attaches a 0-10 star rating to a session item.
type RateMovieRequest struct {
	MovieID string  `json:"movie_id" binding:"required"`
	Rating  float64 `json:"rating" binding:"min=0,max=10"`
}

// ReorderRequest sets the manual positions of a session's items, in
// ranked order.
type ReorderRequest struct {
	MovieIDs []string `json:"movie_ids" binding:"required,min=1"`
}

// AssignTierRequest places an item in a named tier.
type AssignTierRequest struct {
	MovieID string `json:"movie_id" binding:"required"`
	Tier    string `json:"tier" binding:"required"`
}

// HydrateMovieRequest refreshes a catalog movie's metadata from OMDB.
type HydrateMovieRequest struct {
	Title string `json:"title" binding:"required"`
}

// LeagueSnippetRequest previews where a provisional rating would land.
type LeagueSnippetRequest struct {
	MovieID string  `json:"movie_id" binding:"required"`
	Rating  float64 `json:"rating" binding:"min=0,max=10"`
}
