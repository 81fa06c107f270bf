// Package store defines the data-access contract for the catalog.
//
// Implementations translate driver-specific failures into domain errors at
// this boundary: primary-key misses become NOT_FOUND, uniqueness and
// referential violations become CONFLICT. Handlers and services never see raw
// driver errors except wrapped inside an INTERNAL error.
package store

import (
	"context"
	"time"

	"github.com/cinelog/cinelog-server/internal/domain"
)

// DirectorPatch carries the allow-listed fields of a director partial update.
// Only non-nil fields are written; column names never come from request input.
type DirectorPatch struct {
	Name        *string
	PhotoURL    *string
	Nationality *string
	BirthDate   *time.Time
}

// IsEmpty reports whether the patch carries no fields.
func (p DirectorPatch) IsEmpty() bool {
	return p.Name == nil && p.PhotoURL == nil && p.Nationality == nil && p.BirthDate == nil
}

// TitleStore persists titles, their join rows, and the cascading delete.
type TitleStore interface {
	CreateTitle(ctx context.Context, t *domain.Title) error
	GetTitle(ctx context.Context, id int64) (*domain.Title, error)
	GetTitleByName(ctx context.Context, name string) (*domain.Title, error)
	ListTitles(ctx context.Context) ([]*domain.Title, error)
	UpdateTitle(ctx context.Context, t *domain.Title) error

	// DeleteTitleCascade atomically removes a title and every row that
	// references it, returning the pre-deletion snapshot. When the title does
	// not exist it returns NOT_FOUND without opening a transaction.
	DeleteTitleCascade(ctx context.Context, id int64) (*domain.Title, error)

	LinkTitleGenre(ctx context.Context, titleID, genreID int64) error
	LinkTitleActor(ctx context.Context, titleID, actorID int64) error
	LinkTitleDirector(ctx context.Context, titleID, directorID int64) error
	LinkUserTitle(ctx context.Context, userID, titleID int64) error
}

// GenreStore persists genres.
type GenreStore interface {
	CreateGenre(ctx context.Context, g *domain.Genre) error
	GetGenre(ctx context.Context, id int64) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id int64) error
}

// ActorStore persists actors.
type ActorStore interface {
	CreateActor(ctx context.Context, a *domain.Actor) error
	GetActor(ctx context.Context, id int64) (*domain.Actor, error)
	ListActors(ctx context.Context) ([]*domain.Actor, error)
	UpdateActor(ctx context.Context, a *domain.Actor) error
	DeleteActor(ctx context.Context, id int64) error
}

// DirectorStore persists directors.
type DirectorStore interface {
	CreateDirector(ctx context.Context, d *domain.Director) error
	GetDirector(ctx context.Context, id int64) (*domain.Director, error)
	ListDirectors(ctx context.Context) ([]*domain.Director, error)
	PatchDirector(ctx context.Context, id int64, patch DirectorPatch) error
	ListDirectorTitles(ctx context.Context, id int64) ([]*domain.Title, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UserExistsByAliasOrEmail(ctx context.Context, alias, email string) (bool, error)
	UpdateUserProfile(ctx context.Context, u *domain.User) error
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error
	UpdateUserAlias(ctx context.Context, id int64, alias string) error
}

// ReviewStore persists reviews and their link rows.
type ReviewStore interface {
	// CreateReview inserts the review row and both link rows (review-title,
	// user-review) in a single transaction, using r.TitleID and r.UserID.
	CreateReview(ctx context.Context, r *domain.Review) error
	GetReview(ctx context.Context, id int64) (*domain.Review, error)
	GetReviewByUserAndTitle(ctx context.Context, userID, titleID int64) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	// UpdateReview updates comment, rating, and spoiler; date and like_count
	// are fixed at creation. A missing id is NOT_FOUND via the affected-row
	// count.
	UpdateReview(ctx context.Context, r *domain.Review) error
	UpdateReviewComment(ctx context.Context, id int64, comment string) error
	// DeleteReview removes the review and its two link rows atomically.
	DeleteReview(ctx context.Context, id int64) error
}

// Store is the full data-access contract handed to services.
type Store interface {
	TitleStore
	GenreStore
	ActorStore
	DirectorStore
	UserStore
	ReviewStore
}
