package service

import (
	"context"
	"log/slog"

	"github.com/cinelog/cinelog-server/internal/domain"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// ActorService orchestrates actor operations.
type ActorService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewActorService creates a new actor service.
func NewActorService(store store.Store, logger *slog.Logger) *ActorService {
	return &ActorService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListActors returns all actors.
func (s *ActorService) ListActors(ctx context.Context) ([]*domain.Actor, error) {
	return s.store.ListActors(ctx)
}

// GetActor returns a single actor.
func (s *ActorService) GetActor(ctx context.Context, id int64) (*domain.Actor, error) {
	return s.store.GetActor(ctx, id)
}

// ActorRequest contains the fields for creating or fully updating an actor.
type ActorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Nationality string `json:"nationality"`
	BirthDate   string `json:"birth_date" validate:"required"`
}

// CreateActor creates a new actor.
func (s *ActorService) CreateActor(ctx context.Context, req ActorRequest) (*domain.Actor, error) {
	a, err := s.actorFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateActor(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("actor created", "id", a.ID, "name", a.Name)
	return a, nil
}

// UpdateActor fully updates an existing actor.
func (s *ActorService) UpdateActor(ctx context.Context, id int64, req ActorRequest) (*domain.Actor, error) {
	a, err := s.actorFromRequest(req)
	if err != nil {
		return nil, err
	}

	a.ID = id
	if err := s.store.UpdateActor(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("actor updated", "id", a.ID, "name", a.Name)
	return a, nil
}

// DeleteActor removes an actor and returns the pre-deletion snapshot.
func (s *ActorService) DeleteActor(ctx context.Context, id int64) (*domain.Actor, error) {
	snapshot, err := s.store.GetActor(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteActor(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("actor deleted", "id", id, "name", snapshot.Name)
	return snapshot, nil
}

func (s *ActorService) actorFromRequest(req ActorRequest) (*domain.Actor, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	birthDate, err := parseRequestDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}

	return &domain.Actor{
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Nationality: req.Nationality,
		BirthDate:   birthDate,
	}, nil
}
