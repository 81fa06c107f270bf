package service

import (
	"context"
	"log/slog"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// directorPatchFields are the only fields a director PATCH may touch.
var directorPatchFields = []string{"name", "photo_url", "nationality", "birth_date"}

// DirectorService orchestrates director operations.
type DirectorService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewDirectorService creates a new director service.
func NewDirectorService(store store.Store, logger *slog.Logger) *DirectorService {
	return &DirectorService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListDirectors returns all directors.
func (s *DirectorService) ListDirectors(ctx context.Context) ([]*domain.Director, error) {
	return s.store.ListDirectors(ctx)
}

// GetDirector returns a single director.
func (s *DirectorService) GetDirector(ctx context.Context, id int64) (*domain.Director, error) {
	return s.store.GetDirector(ctx, id)
}

// ListDirectorTitles returns the titles credited to a director. A missing
// director is NOT_FOUND; an empty filmography is an empty list.
func (s *DirectorService) ListDirectorTitles(ctx context.Context, id int64) ([]*domain.Title, error) {
	return s.store.ListDirectorTitles(ctx, id)
}

// CreateDirectorRequest contains fields for creating a director.
type CreateDirectorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Nationality string `json:"nationality"`
	BirthDate   string `json:"birth_date" validate:"required"`
}

// CreateDirector creates a new director.
func (s *DirectorService) CreateDirector(ctx context.Context, req CreateDirectorRequest) (*domain.Director, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	birthDate, err := parseRequestDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}

	d := &domain.Director{
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Nationality: req.Nationality,
		BirthDate:   birthDate,
	}
	if err := s.store.CreateDirector(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("director created", "id", d.ID, "name", d.Name)
	return d, nil
}

// PatchDirectorRequest carries a partial director update. Fields outside the
// allow-list never make it into this struct.
type PatchDirectorRequest struct {
	Name        *string `json:"name"`
	PhotoURL    *string `json:"photo_url"`
	Nationality *string `json:"nationality"`
	BirthDate   *string `json:"birth_date"`
}

// PatchDirector applies a partial update. A body with no allow-listed field
// is rejected with the list of accepted fields.
func (s *DirectorService) PatchDirector(ctx context.Context, id int64, req PatchDirectorRequest) (*domain.Director, error) {
	patch := store.DirectorPatch{
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Nationality: req.Nationality,
	}
	if req.BirthDate != nil {
		birthDate, err := parseRequestDate("birth_date", *req.BirthDate)
		if err != nil {
			return nil, err
		}
		patch.BirthDate = &birthDate
	}

	if patch.IsEmpty() {
		return nil, domainerrors.ValidationWithDetails(
			"no updatable fields provided",
			map[string][]string{"allowed_fields": directorPatchFields},
		)
	}
	if req.Name != nil && *req.Name == "" {
		return nil, domainerrors.Validation("name must not be empty")
	}

	if err := s.store.PatchDirector(ctx, id, patch); err != nil {
		return nil, err
	}

	s.logger.Info("director updated", "id", id)
	return s.store.GetDirector(ctx, id)
}
