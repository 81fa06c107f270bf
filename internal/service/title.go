package service

import (
	"context"
	"log/slog"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// TitleService orchestrates title operations.
type TitleService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewTitleService creates a new title service.
func NewTitleService(store store.Store, logger *slog.Logger) *TitleService {
	return &TitleService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListTitles returns all titles with aggregated genre names, newest first.
func (s *TitleService) ListTitles(ctx context.Context) ([]*domain.Title, error) {
	return s.store.ListTitles(ctx)
}

// GetTitle returns a single title.
func (s *TitleService) GetTitle(ctx context.Context, id int64) (*domain.Title, error) {
	return s.store.GetTitle(ctx, id)
}

// CreateTitleRequest contains fields for creating a title.
type CreateTitleRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	ReleaseDate string `json:"release_date" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Seasons     int    `json:"seasons" validate:"gte=0"`
}

// CreateTitle creates a new title. A name already in the catalog is a
// conflict.
func (s *TitleService) CreateTitle(ctx context.Context, req CreateTitleRequest) (*domain.Title, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	releaseDate, err := parseRequestDate("release_date", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	// Duplicate check before the insert; the UNIQUE constraint backstops the
	// race between the check and the write.
	if _, err := s.store.GetTitleByName(ctx, req.Name); err == nil {
		return nil, domainerrors.Conflictf("title %q already exists", req.Name)
	} else if !domainerrors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	t := &domain.Title{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		ImageURL:    req.ImageURL,
		Seasons:     req.Seasons,
	}
	if err := s.store.CreateTitle(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("title created", "id", t.ID, "name", t.Name, "kind", t.Kind())
	return t, nil
}

// UpsertTitleRequest contains fields for the create-or-update operation.
// A present id means update; absent means create.
type UpsertTitleRequest struct {
	ID *int64 `json:"id"`
	CreateTitleRequest
}

// UpsertTitle updates the title when the request carries an id and creates it
// otherwise.
func (s *TitleService) UpsertTitle(ctx context.Context, req UpsertTitleRequest) (*domain.Title, error) {
	if req.ID == nil {
		return s.CreateTitle(ctx, req.CreateTitleRequest)
	}

	if err := s.validator.Validate(req.CreateTitleRequest); err != nil {
		return nil, err
	}

	releaseDate, err := parseRequestDate("release_date", req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	t := &domain.Title{
		ID:          *req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		ImageURL:    req.ImageURL,
		Seasons:     req.Seasons,
	}
	if err := s.store.UpdateTitle(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("title updated", "id", t.ID, "name", t.Name)
	return t, nil
}

// DeleteTitle removes a title and everything referencing it, returning the
// pre-deletion snapshot.
func (s *TitleService) DeleteTitle(ctx context.Context, id int64) (*domain.Title, error) {
	snapshot, err := s.store.DeleteTitleCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("title deleted", "id", id, "name", snapshot.Name)
	return snapshot, nil
}
