package services

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Ollie-C/myvu-movies-sub000/data_access"
	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

// BattleService orchestrates the versus flow: serving pairs, applying
// results through the engine, tracking progress and building rankings.
type BattleService struct {
	sessionRepo *data_access.SessionRepository
	itemRepo    *data_access.RankingItemRepository
	battleRepo  *data_access.BattleRepository
	movieRepo   *data_access.MovieRepository
	engineRepo  *data_access.EngineRepository
	generator   *engine.PairingGenerator
	model       *engine.EloModel
	merger      *engine.MergedScoreCalculator
	logger      *zap.Logger
}

func NewBattleService(
	sessionRepo *data_access.SessionRepository,
	itemRepo *data_access.RankingItemRepository,
	battleRepo *data_access.BattleRepository,
	movieRepo *data_access.MovieRepository,
	engineRepo *data_access.EngineRepository,
	generator *engine.PairingGenerator,
	logger *zap.Logger,
) *BattleService {
	return &BattleService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		battleRepo:  battleRepo,
		movieRepo:   movieRepo,
		engineRepo:  engineRepo,
		generator:   generator,
		model:       engine.NewEloModel(),
		merger:      engine.NewMergedScoreCalculator(engine.DefaultMergeWeights),
		logger:      logger,
	}
}

// NextPair serves the next comparison of an active session. The
// completed-pair set is read fresh on every call so a battle applied a
// moment ago is never proposed again.
func (s *BattleService) NextPair(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.BattlePairResponse, error) {
	session, err := s.activeSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.engineRepo.LoadItems(ctx, sessionID.Hex())
	if err != nil {
		return nil, err
	}
	completed, err := s.engineRepo.LoadCompletedPairs(ctx, sessionID.Hex())
	if err != nil {
		return nil, err
	}

	pair, err := s.generator.NextPair(items, completed, sessionPolicy(session))
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return &models.BattlePairResponse{Done: true}, nil
	}

	stored, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp := &models.BattlePairResponse{}
	for i := range stored {
		switch stored[i].MovieID.Hex() {
		case pair.A:
			resp.MovieA = &stored[i]
		case pair.B:
			resp.MovieB = &stored[i]
		}
	}
	return resp, nil
}

// SubmitBattle applies one result and flips the session to completed
// when the battle pushes progress over its target.
func (s *BattleService) SubmitBattle(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.SubmitBattleRequest) (*engine.BattleResult, *engine.Progress, error) {
	session, err := s.activeSession(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	processor := engine.NewBattleProcessor(s.engineRepo, s.model)
	if session.EloHandling == string(engine.EloGlobal) {
		processor.AddSink(data_access.NewGlobalEloSink(s.movieRepo))
	}

	result, err := processor.ProcessBattle(ctx, sessionID.Hex(), req.WinnerID, req.LoserID, sessionPolicy(session))
	if err != nil {
		if !errors.Is(err, engine.ErrScorePropagation) {
			return nil, nil, err
		}
		// The battle committed; only the global baseline write failed.
		// Keep the result and let the baseline drift until reconciled
		// rather than fail a battle the session already counts.
		s.logger.Warn("global elo propagation failed",
			zap.String("session_id", sessionID.Hex()),
			zap.Error(err))
	}
	if result.Duplicate {
		s.logger.Debug("duplicate battle replayed",
			zap.String("session_id", sessionID.Hex()),
			zap.String("winner_id", req.WinnerID),
			zap.String("loser_id", req.LoserID))
	}

	progress, err := s.Progress(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if progress.IsCompleted && session.Status != models.SessionCompleted {
		if err := s.sessionRepo.UpdateStatus(ctx, sessionID, models.SessionCompleted); err != nil {
			return nil, nil, err
		}
		s.logger.Info("session completed", zap.String("session_id", sessionID.Hex()))
	}

	return result, progress, nil
}

// SkipPair declines a comparison: the pair is retired from pairing but
// no score moves and no history is written.
func (s *BattleService) SkipPair(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.SkipPairRequest) error {
	if _, err := s.activeSession(ctx, userID, sessionID); err != nil {
		return err
	}
	processor := engine.NewBattleProcessor(s.engineRepo, s.model)
	return processor.SkipPair(ctx, sessionID.Hex(), req.MovieAID, req.MovieBID)
}

// Progress recomputes the session's completion snapshot from history.
func (s *BattleService) Progress(ctx context.Context, userID, sessionID primitive.ObjectID) (*engine.Progress, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	count, err := s.battleRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	perItem := make(map[string]int, len(items))
	for _, item := range items {
		perItem[item.MovieID.Hex()] = item.BattleCount
	}

	progress, err := engine.ComputeProgress(sessionPolicy(session), int(count), perItem, len(items))
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Leaderboard returns the session's items best-first: rating before raw
// Elo, matching the rank rule the league snippet uses.
func (s *BattleService) Leaderboard(ctx context.Context, userID, sessionID primitive.ObjectID) ([]engine.LeagueEntry, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]engine.LeagueEntry, len(items))
	for i, item := range items {
		entries[i] = leagueEntry(item)
	}
	sortLeaderboard(entries)
	return entries, nil
}

// MergedRankings blends Elo, external rating, manual position and
// popularity into one score per item, persists it, and returns the
// items best-first.
func (s *BattleService) MergedRankings(ctx context.Context, userID, sessionID primitive.ObjectID) ([]engine.MergeCandidate, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	movieIDs := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		movieIDs[i] = item.MovieID
	}
	movies, err := s.movieRepo.FindByIDs(ctx, movieIDs)
	if err != nil {
		return nil, err
	}
	movieByID := make(map[primitive.ObjectID]models.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	candidates := make([]engine.MergeCandidate, len(items))
	for i, item := range items {
		cand := engine.MergeCandidate{
			MovieID:  item.MovieID.Hex(),
			Elo:      item.EloScore,
			Position: item.Position,
		}
		if movie, ok := movieByID[item.MovieID]; ok {
			cand.Popularity = movie.Popularity
			if rating, err := strconv.ParseFloat(movie.IMDBRating, 64); err == nil {
				cand.ExternalRating = &rating
			}
		}
		candidates[i] = cand
	}

	scored := s.merger.MergeScores(candidates)
	for _, cand := range scored {
		movieID, err := primitive.ObjectIDFromHex(cand.MovieID)
		if err != nil {
			continue
		}
		if err := s.itemRepo.SetMergedScore(ctx, sessionID, movieID, cand.MergedScore); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MergedScore > scored[j].MergedScore
	})
	return scored, nil
}

// History returns the session's battle log, oldest first.
func (s *BattleService) History(ctx context.Context, userID, sessionID primitive.ObjectID) ([]models.Battle, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.battleRepo.FindBySession(ctx, sessionID)
}

func (s *BattleService) ownedSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.RankingSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *BattleService) activeSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.RankingSession, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionActive {
		return nil, ErrSessionNotActive
	}
	return session, nil
}

func sessionPolicy(session *models.RankingSession) engine.Policy {
	return engine.Policy{
		LimitType:   engine.BattleLimitType(session.BattleLimitType),
		BattleLimit: session.BattleLimit,
	}
}

// leagueEntry converts a stored item to a leaderboard row. Unrated items
// borrow their display rating from the Elo score so they still sort.
func leagueEntry(item models.RankingItem) engine.LeagueEntry {
	rating := engine.EloToRating(item.EloScore)
	if item.Rating != nil {
		rating = *item.Rating
	}
	return engine.LeagueEntry{
		MovieID: item.MovieID.Hex(),
		Title:   item.MovieTitle,
		Rating:  rating,
		Elo:     item.EloScore,
	}
}

func sortLeaderboard(entries []engine.LeagueEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Elo > entries[j].Elo
	})
}
