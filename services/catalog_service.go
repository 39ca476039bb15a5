package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ollie-C/myvu-movies-sub000/data_access"
	"github.com/Ollie-C/myvu-movies-sub000/helper"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

// CatalogService maintains the movie catalog sessions draw from: CSV
// imports for bulk seeding and OMDB lookups for metadata and the
// popularity signals the merged ranking consumes.
type CatalogService struct {
	omdbClient *data_access.OMDBClient
	movieRepo  *data_access.MovieRepository
	logger     *zap.Logger
}

func NewCatalogService(omdbAPIKey, omdbBaseURL string, movieRepo *data_access.MovieRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		omdbClient: data_access.NewOMDBClient(omdbAPIKey, omdbBaseURL),
		movieRepo:  movieRepo,
		logger:     logger,
	}
}

// ImportCSV seeds the catalog from a CSV export. Returns how many rows
// were imported.
func (s *CatalogService) ImportCSV(ctx context.Context, path string) (int, error) {
	movies, err := helper.ReadMovieCSV(path)
	if err != nil {
		return 0, err
	}
	for i := range movies {
		if err := s.movieRepo.UpsertByTitle(ctx, &movies[i]); err != nil {
			return i, err
		}
	}
	s.logger.Info("catalog imported", zap.String("path", path), zap.Int("movies", len(movies)))
	return len(movies), nil
}

// Hydrate refreshes one catalog movie from OMDB, picking up poster,
// public rating and vote volume.
func (s *CatalogService) Hydrate(ctx context.Context, title string) (*models.Movie, error) {
	movie, err := s.omdbClient.FetchMovie(ctx, title)
	if err != nil {
		return nil, err
	}
	if err := s.movieRepo.UpsertByTitle(ctx, movie); err != nil {
		return nil, err
	}
	return s.movieRepo.FindMovieByTitle(ctx, movie.Title)
}

func (s *CatalogService) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.movieRepo.FindMovieByTitle(ctx, title)
}
