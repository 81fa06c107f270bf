package service

import (
	"context"
	"log/slog"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// GenreService orchestrates genre operations.
type GenreService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewGenreService creates a new genre service.
func NewGenreService(store store.Store, logger *slog.Logger) *GenreService {
	return &GenreService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// CreateGenreRequest contains fields for creating a genre.
type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateGenre creates a new genre. A duplicate name is a conflict.
func (s *GenreService) CreateGenre(ctx context.Context, req CreateGenreRequest) (*domain.Genre, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	g := &domain.Genre{Name: req.Name}
	if err := s.store.CreateGenre(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("genre created", "id", g.ID, "name", g.Name)
	return g, nil
}

// DeleteGenre removes a genre and returns the pre-deletion snapshot.
func (s *GenreService) DeleteGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	snapshot, err := s.store.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteGenre(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("genre deleted", "id", id, "name", snapshot.Name)
	return snapshot, nil
}
