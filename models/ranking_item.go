package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RankingItem is one movie inside one ranking session: its Elo score,
// optional star rating, manual position and tier, plus the battle stats
// the pairing policies need.
type RankingItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID   primitive.ObjectID `bson:"session_id" json:"session_id"`
	MovieID     primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	MovieTitle  string             `bson:"movie_title" json:"movie_title"` // Denormalized for quick access
	EloScore    float64            `bson:"elo_score" json:"elo_score"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	Position    *int               `bson:"position,omitempty" json:"position,omitempty"`
	Tier        string             `bson:"tier,omitempty" json:"tier,omitempty"`
	BattleCount int                `bson:"battle_count" json:"battle_count"`
	WinCount    int                `bson:"win_count" json:"win_count"`
	LossCount   int                `bson:"loss_count" json:"loss_count"`
	MergedScore float64            `bson:"merged_score,omitempty" json:"merged_score,omitempty"`
	LastUpdated time.Time          `bson:"last_updated" json:"last_updated"`
}
