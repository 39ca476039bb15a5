package engine

import (
	"context"
	"fmt"
)

// Repository is the storage collaborator of the BattleProcessor. The
// engine never talks to a database directly; a Mongo-backed adapter (or
// an in-memory one in tests) sits behind this interface.
type Repository interface {
	// LoadItems returns every ranking item of the session.
	LoadItems(ctx context.Context, sessionID string) ([]Item, error)

	// LoadCompletedPairs returns the pairs the session has already
	// compared, battles and skips both.
	LoadCompletedPairs(ctx context.Context, sessionID string) (PairSet, error)

	// SaveBattleAtomically persists both score updates, the battle
	// history record and the completed-pair mark in one transaction.
	// A partial battle must never become visible.
	SaveBattleAtomically(ctx context.Context, res BattleResult) error

	// MarkSkipped records the pair as completed without any score
	// change or history record. Must be idempotent.
	MarkSkipped(ctx context.Context, sessionID string, pair Pair) error
}

// ScoreSink receives the Elo delta of one battle for a scope beyond the
// session itself. Wiring a sink per scope keeps the update rule free of
// local-versus-global branching.
type ScoreSink interface {
	ApplyDelta(ctx context.Context, movieID string, delta float64) error
}

// BattleProcessor applies battle outcomes: Elo math through the model,
// persistence through the repository, extra scopes through sinks.
type BattleProcessor struct {
	repo  Repository
	model *EloModel
	sinks []ScoreSink
}

func NewBattleProcessor(repo Repository, model *EloModel) *BattleProcessor {
	if model == nil {
		model = NewEloModel()
	}
	return &BattleProcessor{repo: repo, model: model}
}

// AddSink registers an additional score scope, e.g. the cross-session
// global baseline of each movie.
func (p *BattleProcessor) AddSink(sink ScoreSink) {
	p.sinks = append(p.sinks, sink)
}

// ProcessBattle records winner beating loser in the session. Replaying a
// pair that was already compared under a no-repeat policy returns the
// prior state with Duplicate set and touches nothing.
//
// The session transaction is authoritative; sinks run after it commits.
// When a sink fails, the persisted result is returned together with an
// error wrapping ErrScorePropagation so callers can keep the battle and
// reconcile the sink scope separately.
func (p *BattleProcessor) ProcessBattle(ctx context.Context, sessionID, winnerMovieID, loserMovieID string, policy Policy) (*BattleResult, error) {
	if winnerMovieID == loserMovieID {
		return nil, ErrInvalidPair
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	items, err := p.repo.LoadItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	winner, loser, err := findPair(items, winnerMovieID, loserMovieID)
	if err != nil {
		return nil, err
	}

	pair := NewPair(winnerMovieID, loserMovieID)
	completed, err := p.repo.LoadCompletedPairs(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if completed.Contains(pair) && policy.LimitType != LimitInfinite {
		return &BattleResult{
			SessionID:       sessionID,
			WinnerID:        winnerMovieID,
			LoserID:         loserMovieID,
			WinnerEloBefore: winner.Elo,
			WinnerEloAfter:  winner.Elo,
			LoserEloBefore:  loser.Elo,
			LoserEloAfter:   loser.Elo,
			Duplicate:       true,
		}, nil
	}

	newWinner, newLoser := p.model.UpdateElo(winner.Elo, loser.Elo)
	res := BattleResult{
		SessionID:       sessionID,
		WinnerID:        winnerMovieID,
		LoserID:         loserMovieID,
		WinnerEloBefore: winner.Elo,
		WinnerEloAfter:  newWinner,
		LoserEloBefore:  loser.Elo,
		LoserEloAfter:   newLoser,
	}

	if err := p.repo.SaveBattleAtomically(ctx, res); err != nil {
		return nil, err
	}

	for _, sink := range p.sinks {
		if err := sink.ApplyDelta(ctx, winnerMovieID, newWinner-winner.Elo); err != nil {
			return &res, fmt.Errorf("%w: %v", ErrScorePropagation, err)
		}
		if err := sink.ApplyDelta(ctx, loserMovieID, newLoser-loser.Elo); err != nil {
			return &res, fmt.Errorf("%w: %v", ErrScorePropagation, err)
		}
	}

	return &res, nil
}

// SkipPair marks the comparison as seen without rating consequences, so
// a user can decline a matchup they cannot judge. Safe to call twice.
func (p *BattleProcessor) SkipPair(ctx context.Context, sessionID, movieAID, movieBID string) error {
	if movieAID == movieBID {
		return ErrInvalidPair
	}
	items, err := p.repo.LoadItems(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, _, err := findPair(items, movieAID, movieBID); err != nil {
		return err
	}
	return p.repo.MarkSkipped(ctx, sessionID, NewPair(movieAID, movieBID))
}

func findPair(items []Item, aID, bID string) (*Item, *Item, error) {
	var a, b *Item
	for i := range items {
		switch items[i].MovieID {
		case aID:
			a = &items[i]
		case bID:
			b = &items[i]
		}
	}
	if a == nil || b == nil {
		return nil, nil, ErrInvalidPair
	}
	return a, b, nil
}
