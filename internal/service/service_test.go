package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-server/internal/auth"
	"github.com/cinelog/cinelog-server/internal/store"
	"github.com/cinelog/cinelog-server/internal/store/sqlite"
)

func newTestStore(t *testing.T) (store.Store, *slog.Logger) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, logger
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func createTitle(t *testing.T, svc *TitleService, name string) int64 {
	t.Helper()

	title, err := svc.CreateTitle(context.Background(), CreateTitleRequest{
		Name:        name,
		ReleaseDate: "2021-06-01",
	})
	require.NoError(t, err)
	return title.ID
}

func registerUser(t *testing.T, svc *UserService, alias string) int64 {
	t.Helper()

	u, err := svc.Register(context.Background(), RegisterUserRequest{
		Name:     "Test User",
		Alias:    alias,
		Email:    alias + "@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return u.ID
}

func newTestUserServiceWith(t *testing.T, st store.Store, logger *slog.Logger) *UserService {
	t.Helper()

	return NewUserService(st, auth.NewArgon2Hasher(), logger)
}
