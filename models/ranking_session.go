package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session status values. Active sessions may pause and resume; completed
// is terminal and set automatically when progress reaches the target.
const (
	SessionActive    = "active"
	SessionPaused    = "paused"
	SessionCompleted = "completed"
)

// RankingSession is one user's ranking run over a set of movies. Its
// method and battle-limit policy drive pairing and progress.
type RankingSession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name            string             `bson:"name" json:"name"`
	RankingMethod   string             `bson:"ranking_method" json:"ranking_method"`
	EloHandling     string             `bson:"elo_handling" json:"elo_handling"`
	BattleLimitType string             `bson:"battle_limit_type" json:"battle_limit_type"`
	BattleLimit     int                `bson:"battle_limit,omitempty" json:"battle_limit,omitempty"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
