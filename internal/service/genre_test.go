package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

func TestCreateGenre(t *testing.T) {
	st, logger := newTestStore(t)
	svc := NewGenreService(st, logger)

	g, err := svc.CreateGenre(context.Background(), CreateGenreRequest{Name: "animation"})
	require.NoError(t, err)
	assert.NotZero(t, g.ID)
}

func TestCreateGenreDuplicate(t *testing.T) {
	st, logger := newTestStore(t)
	svc := NewGenreService(st, logger)
	ctx := context.Background()

	_, err := svc.CreateGenre(ctx, CreateGenreRequest{Name: "animation"})
	require.NoError(t, err)

	_, err = svc.CreateGenre(ctx, CreateGenreRequest{Name: "animation"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCreateGenreMissingName(t *testing.T) {
	st, logger := newTestStore(t)
	svc := NewGenreService(st, logger)

	_, err := svc.CreateGenre(context.Background(), CreateGenreRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestDeleteGenreReturnsSnapshot(t *testing.T) {
	st, logger := newTestStore(t)
	svc := NewGenreService(st, logger)
	ctx := context.Background()

	g, err := svc.CreateGenre(ctx, CreateGenreRequest{Name: "short lived"})
	require.NoError(t, err)

	snapshot, err := svc.DeleteGenre(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "short lived", snapshot.Name)
}

func TestDeleteGenreNotFound(t *testing.T) {
	st, logger := newTestStore(t)
	svc := NewGenreService(st, logger)

	_, err := svc.DeleteGenre(context.Background(), 9999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
