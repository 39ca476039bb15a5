package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Ollie-C/myvu-movies-sub000/data_access"
	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotActive  = errors.New("session is not active")
	ErrMovieNotInSession = errors.New("movie is not part of the session")
)

// SessionService owns the ranking-session lifecycle: creation, pausing,
// rating, manual ordering and tier assignment. Battles live in
// BattleService.
type SessionService struct {
	sessionRepo *data_access.SessionRepository
	itemRepo    *data_access.RankingItemRepository
	movieRepo   *data_access.MovieRepository
	logger      *zap.Logger
}

func NewSessionService(
	sessionRepo *data_access.SessionRepository,
	itemRepo *data_access.RankingItemRepository,
	movieRepo *data_access.MovieRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		movieRepo:   movieRepo,
		logger:      logger,
	}
}

// CreateSession opens a new ranking session and seeds one ranking item
// per movie at the default Elo.
func (s *SessionService) CreateSession(ctx context.Context, userID primitive.ObjectID, req *models.CreateSessionRequest) (*models.RankingSession, error) {
	policy := engine.Policy{
		LimitType:   engine.BattleLimitType(req.BattleLimitType),
		BattleLimit: req.BattleLimit,
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(req.MovieIDs) < 2 {
		return nil, engine.ErrInsufficientItems
	}

	movieIDs := make([]primitive.ObjectID, 0, len(req.MovieIDs))
	for _, raw := range req.MovieIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id %q", raw)
		}
		movieIDs = append(movieIDs, id)
	}
	movies, err := s.movieRepo.FindByIDs(ctx, movieIDs)
	if err != nil {
		return nil, err
	}
	if len(movies) != len(movieIDs) {
		return nil, fmt.Errorf("unknown movie in selection")
	}

	eloHandling := req.EloHandling
	if eloHandling == "" {
		eloHandling = string(engine.EloLocal)
	}

	now := time.Now()
	session := &models.RankingSession{
		UserID:          userID,
		Name:            req.Name,
		RankingMethod:   req.RankingMethod,
		EloHandling:     eloHandling,
		BattleLimitType: req.BattleLimitType,
		BattleLimit:     req.BattleLimit,
		Status:          models.SessionActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	items := make([]models.RankingItem, len(movies))
	for i, movie := range movies {
		items[i] = models.RankingItem{
			ID:          primitive.NewObjectID(),
			SessionID:   session.ID,
			MovieID:     movie.ID,
			MovieTitle:  movie.Title,
			EloScore:    engine.DefaultElo,
			LastUpdated: now,
		}
	}
	if err := s.itemRepo.InsertMany(ctx, items); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		zap.String("session_id", session.ID.Hex()),
		zap.String("method", session.RankingMethod),
		zap.Int("movies", len(items)))

	return session, nil
}

func (s *SessionService) ListSessions(ctx context.Context, userID primitive.ObjectID) ([]models.RankingSession, error) {
	return s.sessionRepo.FindByUser(ctx, userID)
}

// GetSession returns an owned session with its items.
func (s *SessionService) GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.RankingSession, []models.RankingItem, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, items, nil
}

// Pause and Resume move a session between active and paused. Completed
// sessions stay completed.
func (s *SessionService) Pause(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	return s.transition(ctx, userID, sessionID, models.SessionActive, models.SessionPaused)
}

func (s *SessionService) Resume(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	return s.transition(ctx, userID, sessionID, models.SessionPaused, models.SessionActive)
}

func (s *SessionService) transition(ctx context.Context, userID, sessionID primitive.ObjectID, from, to string) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if session.Status != from {
		return fmt.Errorf("cannot move session from %s to %s", session.Status, to)
	}
	return s.sessionRepo.UpdateStatus(ctx, sessionID, to)
}

// RateMovie attaches a star rating to a session item, reseeds its Elo
// from the rating, and returns the league snippet showing where the
// movie now sits.
func (s *SessionService) RateMovie(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.RateMovieRequest) ([]engine.SnippetEntry, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	movieID, err := primitive.ObjectIDFromHex(req.MovieID)
	if err != nil {
		return nil, ErrMovieNotInSession
	}
	item, err := s.itemRepo.FindBySessionAndMovie(ctx, sessionID, movieID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMovieNotInSession
	}

	elo := engine.RatingToElo(req.Rating)
	if err := s.itemRepo.SetRating(ctx, sessionID, movieID, req.Rating, elo); err != nil {
		return nil, err
	}

	snippet, err := s.LeagueSnippet(ctx, userID, sessionID, &models.LeagueSnippetRequest{
		MovieID: req.MovieID,
		Rating:  req.Rating,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("movie rated",
		zap.String("session_id", sessionID.Hex()),
		zap.String("movie_id", req.MovieID),
		zap.Float64("rating", req.Rating))

	return snippet, nil
}

// LeagueSnippet previews where a provisional rating would place a movie
// among the session's other items, without committing anything.
func (s *SessionService) LeagueSnippet(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.LeagueSnippetRequest) ([]engine.SnippetEntry, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var candidate engine.LeagueEntry
	leaderboard := make([]engine.LeagueEntry, 0, len(items))
	found := false
	for _, item := range items {
		if item.MovieID.Hex() == req.MovieID {
			candidate = engine.LeagueEntry{
				MovieID: req.MovieID,
				Title:   item.MovieTitle,
				Rating:  req.Rating,
			}
			found = true
			continue
		}
		leaderboard = append(leaderboard, leagueEntry(item))
	}
	if !found {
		return nil, ErrMovieNotInSession
	}

	sortLeaderboard(leaderboard)
	return engine.BuildLeagueSnippet(candidate, leaderboard), nil
}

// Reorder stores manual positions in the order the client ranked them.
func (s *SessionService) Reorder(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.ReorderRequest) error {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	for pos, raw := range req.MovieIDs {
		movieID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return ErrMovieNotInSession
		}
		if err := s.itemRepo.SetPosition(ctx, sessionID, movieID, pos+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *SessionService) AssignTier(ctx context.Context, userID, sessionID primitive.ObjectID, req *models.AssignTierRequest) error {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	movieID, err := primitive.ObjectIDFromHex(req.MovieID)
	if err != nil {
		return ErrMovieNotInSession
	}
	return s.itemRepo.SetTier(ctx, sessionID, movieID, req.Tier)
}

func (s *SessionService) ownedSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.RankingSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
