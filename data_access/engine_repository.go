package data_access

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

// EngineRepository adapts the Mongo repositories to the engine's storage
// interface. Engine IDs are hex ObjectIDs; storage failures inside the
// battle transaction surface as engine.ErrPersistenceConflict so callers
// can retry.
type EngineRepository struct {
	db      *MongoDB
	items   *RankingItemRepository
	battles *BattleRepository
}

func NewEngineRepository(db *MongoDB, items *RankingItemRepository, battles *BattleRepository) *EngineRepository {
	return &EngineRepository{db: db, items: items, battles: battles}
}

func (r *EngineRepository) LoadItems(ctx context.Context, sessionID string) ([]engine.Item, error) {
	sid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad session id", engine.ErrInvalidPair)
	}
	stored, err := r.items.FindBySession(ctx, sid)
	if err != nil {
		return nil, err
	}
	items := make([]engine.Item, len(stored))
	for i, it := range stored {
		items[i] = engine.Item{
			ID:       it.ID.Hex(),
			MovieID:  it.MovieID.Hex(),
			Elo:      it.EloScore,
			Rating:   it.Rating,
			Position: it.Position,
			Tier:     it.Tier,
			Battles:  it.BattleCount,
		}
	}
	return items, nil
}

func (r *EngineRepository) LoadCompletedPairs(ctx context.Context, sessionID string) (engine.PairSet, error) {
	sid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad session id", engine.ErrInvalidPair)
	}

	set := engine.PairSet{}
	battles, err := r.battles.FindBySession(ctx, sid)
	if err != nil {
		return nil, err
	}
	for _, b := range battles {
		set.Add(engine.NewPair(b.WinnerMovieID.Hex(), b.LoserMovieID.Hex()))
	}

	skips, err := r.battles.FindSkipsBySession(ctx, sid)
	if err != nil {
		return nil, err
	}
	for _, s := range skips {
		set.Add(engine.NewPair(s[0], s[1]))
	}
	return set, nil
}

func (r *EngineRepository) SaveBattleAtomically(ctx context.Context, res engine.BattleResult) error {
	sid, err := primitive.ObjectIDFromHex(res.SessionID)
	if err != nil {
		return fmt.Errorf("%w: bad session id", engine.ErrInvalidPair)
	}
	winnerID, err := primitive.ObjectIDFromHex(res.WinnerID)
	if err != nil {
		return fmt.Errorf("%w: bad winner id", engine.ErrInvalidPair)
	}
	loserID, err := primitive.ObjectIDFromHex(res.LoserID)
	if err != nil {
		return fmt.Errorf("%w: bad loser id", engine.ErrInvalidPair)
	}

	err = r.db.WithTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.items.UpdateBattleOutcome(sc, sid, winnerID, res.WinnerEloAfter, true); err != nil {
			return err
		}
		if err := r.items.UpdateBattleOutcome(sc, sid, loserID, res.LoserEloAfter, false); err != nil {
			return err
		}
		return r.battles.Insert(sc, &models.Battle{
			SessionID:       sid,
			WinnerMovieID:   winnerID,
			LoserMovieID:    loserID,
			WinnerEloBefore: res.WinnerEloBefore,
			WinnerEloAfter:  res.WinnerEloAfter,
			LoserEloBefore:  res.LoserEloBefore,
			LoserEloAfter:   res.LoserEloAfter,
			CreatedAt:       time.Now(),
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrPersistenceConflict, err)
	}
	return nil
}

func (r *EngineRepository) MarkSkipped(ctx context.Context, sessionID string, pair engine.Pair) error {
	sid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return fmt.Errorf("%w: bad session id", engine.ErrInvalidPair)
	}
	return r.battles.UpsertSkip(ctx, sid, pair.A, pair.B)
}

// GlobalEloSink propagates battle deltas into each movie's cross-session
// baseline. Registered on the processor only for sessions with global
// Elo handling.
type GlobalEloSink struct {
	movies *MovieRepository
}

func NewGlobalEloSink(movies *MovieRepository) *GlobalEloSink {
	return &GlobalEloSink{movies: movies}
}

func (s *GlobalEloSink) ApplyDelta(ctx context.Context, movieID string, delta float64) error {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return fmt.Errorf("%w: bad movie id", engine.ErrInvalidPair)
	}
	return s.movies.ApplyGlobalEloDelta(ctx, id, delta)
}
