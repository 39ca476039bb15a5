package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Battle is one recorded head-to-head outcome with the scores before and
// after. History is append-only; records are never mutated. Skipped
// comparisons live in their own collection, not here.
type Battle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID       primitive.ObjectID `bson:"session_id" json:"session_id"`
	WinnerMovieID   primitive.ObjectID `bson:"winner_movie_id" json:"winner_movie_id"`
	LoserMovieID    primitive.ObjectID `bson:"loser_movie_id" json:"loser_movie_id"`
	WinnerEloBefore float64            `bson:"winner_elo_before" json:"winner_elo_before"`
	WinnerEloAfter  float64            `bson:"winner_elo_after" json:"winner_elo_after"`
	LoserEloBefore  float64            `bson:"loser_elo_before" json:"loser_elo_before"`
	LoserEloAfter   float64            `bson:"loser_elo_after" json:"loser_elo_after"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
