package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

func TestCreateAndGetTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedTitle(t, s, "Arrival")
	require.NotZero(t, created.ID)

	got, err := s.GetTitle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arrival", got.Name)
	assert.Equal(t, "a test title", got.Description)
	assert.True(t, got.ReleaseDate.Equal(date(2020, time.March, 15)))
	assert.Equal(t, 0, got.Seasons)
	assert.Equal(t, domain.KindMovie, got.Kind())
}

func TestCreateTitleDuplicateName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedTitle(t, s, "Arrival")

	dup := &domain.Title{Name: "Arrival", ReleaseDate: date(2021, time.January, 1)}
	err := s.CreateTitle(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestGetTitleNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTitle(context.Background(), 9999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGetTitleByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedTitle(t, s, "Dune")

	got, err := s.GetTitleByName(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.GetTitleByName(ctx, "dune")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestListTitlesAggregatesGenres(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scifi := seedGenre(t, s, "sci-fi")
	drama := seedGenre(t, s, "drama")

	older := &domain.Title{Name: "Older", ReleaseDate: date(2010, time.April, 1)}
	require.NoError(t, s.CreateTitle(ctx, older))
	newer := &domain.Title{Name: "Newer", ReleaseDate: date(2023, time.April, 1)}
	require.NoError(t, s.CreateTitle(ctx, newer))

	require.NoError(t, s.LinkTitleGenre(ctx, newer.ID, scifi.ID))
	require.NoError(t, s.LinkTitleGenre(ctx, newer.ID, drama.ID))

	titles, err := s.ListTitles(ctx)
	require.NoError(t, err)
	require.Len(t, titles, 2)

	assert.Equal(t, "Newer", titles[0].Name)
	assert.ElementsMatch(t, []string{"sci-fi", "drama"}, titles[0].Genres)
	assert.Equal(t, "Older", titles[1].Name)
	assert.Empty(t, titles[1].Genres)
}

func TestUpdateTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedTitle(t, s, "Severance")
	created.Seasons = 2
	created.Description = "updated"
	require.NoError(t, s.UpdateTitle(ctx, created))

	got, err := s.GetTitle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Seasons)
	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, domain.KindSeries, got.Kind())
}

func TestUpdateTitleNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateTitle(context.Background(), &domain.Title{
		ID:          9999,
		Name:        "Nope",
		ReleaseDate: date(2020, time.January, 1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLinkTitleGenreDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	title := seedTitle(t, s, "Linked")
	genre := seedGenre(t, s, "thriller")

	require.NoError(t, s.LinkTitleGenre(ctx, title.ID, genre.ID))
	err := s.LinkTitleGenre(ctx, title.ID, genre.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeleteTitleCascadeRemovesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	title := seedTitle(t, s, "Doomed")
	other := seedTitle(t, s, "Survivor")
	genre := seedGenre(t, s, "horror")
	actor := seedActor(t, s, "Ann Actor")
	director := seedDirector(t, s, "Dan Director")
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	require.NoError(t, s.LinkTitleGenre(ctx, title.ID, genre.ID))
	require.NoError(t, s.LinkTitleActor(ctx, title.ID, actor.ID))
	require.NoError(t, s.LinkTitleDirector(ctx, title.ID, director.ID))
	require.NoError(t, s.LinkUserTitle(ctx, alice.ID, title.ID))

	seedReview(t, s, alice.ID, title.ID, 8)
	seedReview(t, s, bob.ID, title.ID, 3)

	// Rows attached to the other title must survive.
	require.NoError(t, s.LinkTitleGenre(ctx, other.ID, genre.ID))
	surviving := seedReview(t, s, alice.ID, other.ID, 9)

	snapshot, err := s.DeleteTitleCascade(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", snapshot.Name)

	_, err = s.GetTitle(ctx, title.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.Equal(t, 1, countRows(t, s, "title"))
	assert.Equal(t, 1, countRows(t, s, "title_genre"))
	assert.Equal(t, 0, countRows(t, s, "title_actor"))
	assert.Equal(t, 0, countRows(t, s, "title_director"))
	assert.Equal(t, 0, countRows(t, s, "user_title"))
	assert.Equal(t, 1, countRows(t, s, "review"))
	assert.Equal(t, 1, countRows(t, s, "review_title"))
	assert.Equal(t, 1, countRows(t, s, "user_review"))

	// Related entities themselves are untouched.
	assert.Equal(t, 1, countRows(t, s, "genre"))
	assert.Equal(t, 1, countRows(t, s, "actor"))
	assert.Equal(t, 1, countRows(t, s, "director"))
	assert.Equal(t, 2, countRows(t, s, "user"))

	got, err := s.GetReview(ctx, surviving.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.TitleID)
}

func TestDeleteTitleCascadeNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedTitle(t, s, "Untouched")

	_, err := s.DeleteTitleCascade(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, 1, countRows(t, s, "title"))
}

func TestDeleteTitleCascadeRollsBackOnFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	title := seedTitle(t, s, "Protected")
	genre := seedGenre(t, s, "comedy")
	user := seedUser(t, s, "carol")
	require.NoError(t, s.LinkTitleGenre(ctx, title.ID, genre.ID))
	seedReview(t, s, user.ID, title.ID, 7)

	// Force a failure partway through the transaction.
	_, err := s.db.Exec(`
		CREATE TRIGGER block_review_delete BEFORE DELETE ON review
		BEGIN SELECT RAISE(ABORT, 'review delete blocked'); END`)
	require.NoError(t, err)

	_, err = s.DeleteTitleCascade(ctx, title.ID)
	require.Error(t, err)

	// Nothing was deleted, including the rows removed before the failure.
	assert.Equal(t, 1, countRows(t, s, "title"))
	assert.Equal(t, 1, countRows(t, s, "title_genre"))
	assert.Equal(t, 1, countRows(t, s, "review"))
	assert.Equal(t, 1, countRows(t, s, "review_title"))
	assert.Equal(t, 1, countRows(t, s, "user_review"))
}
