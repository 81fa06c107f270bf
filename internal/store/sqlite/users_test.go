package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "alice")
	require.NotZero(t, created.ID)

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Alias)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, domain.RoleMember, got.Role)
	assert.Equal(t, "$argon2id$fake", got.PasswordHash)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "alice")
	seedUser(t, s, "bob")

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserExistsByAliasOrEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "alice")

	exists, err := s.UserExistsByAliasOrEmail(ctx, "alice", "new@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UserExistsByAliasOrEmail(ctx, "fresh", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UserExistsByAliasOrEmail(ctx, "fresh", "fresh@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateUserProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "alice")
	created.Name = "Alice Cooper"
	created.AvatarURL = "https://example.com/a.png"
	require.NoError(t, s.UpdateUserProfile(ctx, created))

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", got.Name)
	assert.Equal(t, "https://example.com/a.png", got.AvatarURL)
	// Alias and password hash are untouched by profile updates.
	assert.Equal(t, "alice", got.Alias)
	assert.Equal(t, "$argon2id$fake", got.PasswordHash)
}

func TestUpdateUserPassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "alice")
	require.NoError(t, s.UpdateUserPassword(ctx, created.ID, "$argon2id$newhash"))

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "$argon2id$newhash", got.PasswordHash)
}

func TestUpdateUserPasswordNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateUserPassword(context.Background(), 9999, "$argon2id$x")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUpdateUserAlias(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := seedUser(t, s, "alice")
	require.NoError(t, s.UpdateUserAlias(ctx, created.ID, "wonderland"))

	got, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "wonderland", got.Alias)
}

func TestUpdateUserAliasNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateUserAlias(context.Background(), 9999, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
