package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ollie-C/myvu-movies-sub000/models"
)

type SessionRepository struct {
	db *MongoDB
}

type RankingItemRepository struct {
	db *MongoDB
}

type BattleRepository struct {
	db *MongoDB
}

func NewSessionRepository(db *MongoDB) *SessionRepository {
	return &SessionRepository{db: db}
}

func NewRankingItemRepository(db *MongoDB) *RankingItemRepository {
	return &RankingItemRepository{db: db}
}

func NewBattleRepository(db *MongoDB) *BattleRepository {
	return &BattleRepository{db: db}
}

// SessionRepository methods
func (r *SessionRepository) Create(ctx context.Context, session *models.RankingSession) error {
	res, err := r.db.Collection("ranking_sessions").InsertOne(ctx, session)
	if err != nil {
		return err
	}
	session.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RankingSession, error) {
	var session models.RankingSession
	err := r.db.Collection("ranking_sessions").FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &session, err
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.RankingSession, error) {
	cursor, err := r.db.Collection("ranking_sessions").Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	var sessions []models.RankingSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.db.Collection("ranking_sessions").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	return err
}

// RankingItemRepository methods
func (r *RankingItemRepository) InsertMany(ctx context.Context, items []models.RankingItem) error {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := r.db.Collection("ranking_items").InsertMany(ctx, docs)
	return err
}

func (r *RankingItemRepository) FindBySession(ctx context.Context, sessionID primitive.ObjectID) ([]models.RankingItem, error) {
	cursor, err := r.db.Collection("ranking_items").Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	var items []models.RankingItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RankingItemRepository) FindBySessionAndMovie(ctx context.Context, sessionID, movieID primitive.ObjectID) (*models.RankingItem, error) {
	var item models.RankingItem
	err := r.db.Collection("ranking_items").
		FindOne(ctx, bson.M{"session_id": sessionID, "movie_id": movieID}).
		Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &item, err
}

// UpdateBattleOutcome moves one side of a battle: new Elo plus the
// battle/win/loss counters. Called twice inside the battle transaction.
func (r *RankingItemRepository) UpdateBattleOutcome(ctx context.Context, sessionID, movieID primitive.ObjectID, newElo float64, won bool) error {
	inc := bson.M{"battle_count": 1, "loss_count": 1}
	if won {
		inc = bson.M{"battle_count": 1, "win_count": 1}
	}
	_, err := r.db.Collection("ranking_items").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_id": movieID},
		bson.M{
			"$set": bson.M{"elo_score": newElo, "last_updated": time.Now()},
			"$inc": inc,
		})
	return err
}

func (r *RankingItemRepository) SetRating(ctx context.Context, sessionID, movieID primitive.ObjectID, rating, elo float64) error {
	_, err := r.db.Collection("ranking_items").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_id": movieID},
		bson.M{"$set": bson.M{"rating": rating, "elo_score": elo, "last_updated": time.Now()}})
	return err
}

func (r *RankingItemRepository) SetPosition(ctx context.Context, sessionID, movieID primitive.ObjectID, position int) error {
	_, err := r.db.Collection("ranking_items").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_id": movieID},
		bson.M{"$set": bson.M{"position": position, "last_updated": time.Now()}})
	return err
}

func (r *RankingItemRepository) SetTier(ctx context.Context, sessionID, movieID primitive.ObjectID, tier string) error {
	_, err := r.db.Collection("ranking_items").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_id": movieID},
		bson.M{"$set": bson.M{"tier": tier, "last_updated": time.Now()}})
	return err
}

func (r *RankingItemRepository) SetMergedScore(ctx context.Context, sessionID, movieID primitive.ObjectID, score float64) error {
	_, err := r.db.Collection("ranking_items").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_id": movieID},
		bson.M{"$set": bson.M{"merged_score": score}})
	return err
}

// BattleRepository methods
func (r *BattleRepository) Insert(ctx context.Context, battle *models.Battle) error {
	_, err := r.db.Collection("battles").InsertOne(ctx, battle)
	return err
}

func (r *BattleRepository) FindBySession(ctx context.Context, sessionID primitive.ObjectID) ([]models.Battle, error) {
	cursor, err := r.db.Collection("battles").Find(ctx, bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	var battles []models.Battle
	if err = cursor.All(ctx, &battles); err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *BattleRepository) CountBySession(ctx context.Context, sessionID primitive.ObjectID) (int64, error) {
	return r.db.Collection("battles").CountDocuments(ctx, bson.M{"session_id": sessionID})
}

// skippedPair is the storage shape of one declined comparison. The pair
// key is normalized (a < b) so the upsert is idempotent.
type skippedPair struct {
	SessionID primitive.ObjectID `bson:"session_id"`
	MovieA    string             `bson:"movie_a"`
	MovieB    string             `bson:"movie_b"`
	CreatedAt time.Time          `bson:"created_at"`
}

// UpsertSkip marks a pair as declined. Calling it twice leaves a single
// record; no Battle history and no Elo change is involved.
func (r *BattleRepository) UpsertSkip(ctx context.Context, sessionID primitive.ObjectID, movieA, movieB string) error {
	if movieB < movieA {
		movieA, movieB = movieB, movieA
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection("skipped_pairs").UpdateOne(ctx,
		bson.M{"session_id": sessionID, "movie_a": movieA, "movie_b": movieB},
		bson.M{"$setOnInsert": skippedPair{
			SessionID: sessionID,
			MovieA:    movieA,
			MovieB:    movieB,
			CreatedAt: time.Now(),
		}}, opts)
	return err
}

// FindSkipsBySession returns the normalized movie-id pairs the user has
// declined in this session.
func (r *BattleRepository) FindSkipsBySession(ctx context.Context, sessionID primitive.ObjectID) ([][2]string, error) {
	cursor, err := r.db.Collection("skipped_pairs").Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	var skips []skippedPair
	if err = cursor.All(ctx, &skips); err != nil {
		return nil, err
	}
	pairs := make([][2]string, len(skips))
	for i, s := range skips {
		pairs[i] = [2]string{s.MovieA, s.MovieB}
	}
	return pairs, nil
}
