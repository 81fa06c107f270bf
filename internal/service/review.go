package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/validation"
)

// ReviewService orchestrates review operations.
type ReviewService struct {
	store     store.Store
	logger    *slog.Logger
	validator *validation.Validator
	now       func() time.Time
}

// NewReviewService creates a new review service.
func NewReviewService(store store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
		now:       time.Now,
	}
}

// ListReviews returns all reviews, newest first.
func (s *ReviewService) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return s.store.ListReviews(ctx)
}

// GetReview returns a single review.
func (s *ReviewService) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	return s.store.GetReview(ctx, id)
}

// CreateReviewRequest contains fields for creating a review.
type CreateReviewRequest struct {
	TitleID int64   `json:"title_id" validate:"required"`
	UserID  int64   `json:"user_id" validate:"required"`
	Rating  *int    `json:"rating" validate:"required"`
	Comment *string `json:"comment"`
	Spoiler bool    `json:"spoiler"`
}

// CreateReview creates a review for a title. The title and user must exist,
// the rating must be within bounds, and the user must not have reviewed the
// title before. The review row and its two link rows are written atomically.
func (s *ReviewService) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkRating(*req.Rating); err != nil {
		return nil, err
	}

	if _, err := s.store.GetTitle(ctx, req.TitleID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	// One review per user per title, checked before the insert.
	if _, err := s.store.GetReviewByUserAndTitle(ctx, req.UserID, req.TitleID); err == nil {
		return nil, domainerrors.Conflict("user has already reviewed this title")
	} else if !domainerrors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	r := &domain.Review{
		Comment: req.Comment,
		Rating:  *req.Rating,
		Date:    s.now(),
		Spoiler: req.Spoiler,
		TitleID: req.TitleID,
		UserID:  req.UserID,
	}
	if err := s.store.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("review created", "id", r.ID, "title_id", r.TitleID, "user_id", r.UserID, "rating", r.Rating)
	return r, nil
}

// UpdateReviewRequest contains fields for a full review update.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"required"`
	Comment *string `json:"comment"`
	Spoiler bool    `json:"spoiler"`
}

// UpdateReview updates a review's rating, comment, and spoiler flag. The
// review's date, like count, and links never change.
func (s *ReviewService) UpdateReview(ctx context.Context, id int64, req UpdateReviewRequest) (*domain.Review, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkRating(*req.Rating); err != nil {
		return nil, err
	}

	r := &domain.Review{
		ID:      id,
		Comment: req.Comment,
		Rating:  *req.Rating,
		Spoiler: req.Spoiler,
	}
	if err := s.store.UpdateReview(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("review updated", "id", id, "rating", r.Rating)
	return s.store.GetReview(ctx, id)
}

// UpdateCommentRequest contains the replacement comment text.
type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// UpdateReviewComment replaces only the comment of a review.
func (s *ReviewService) UpdateReviewComment(ctx context.Context, id int64, req UpdateCommentRequest) (*domain.Review, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.store.UpdateReviewComment(ctx, id, req.Comment); err != nil {
		return nil, err
	}

	return s.store.GetReview(ctx, id)
}

// DeleteReview removes a review and its link rows atomically.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.store.DeleteReview(ctx, id); err != nil {
		return err
	}

	s.logger.Info("review deleted", "id", id)
	return nil
}

func checkRating(rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return domainerrors.Validationf("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	return nil
}
