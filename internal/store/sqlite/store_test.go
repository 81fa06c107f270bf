package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-server/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTitle(t *testing.T, s *Store, name string) *domain.Title {
	t.Helper()

	title := &domain.Title{
		Name:        name,
		Description: "a test title",
		ReleaseDate: date(2020, time.March, 15),
		Seasons:     0,
	}
	require.NoError(t, s.CreateTitle(context.Background(), title))
	return title
}

func seedGenre(t *testing.T, s *Store, name string) *domain.Genre {
	t.Helper()

	g := &domain.Genre{Name: name}
	require.NoError(t, s.CreateGenre(context.Background(), g))
	return g
}

func seedActor(t *testing.T, s *Store, name string) *domain.Actor {
	t.Helper()

	a := &domain.Actor{
		Name:        name,
		Nationality: "British",
		BirthDate:   date(1975, time.June, 4),
	}
	require.NoError(t, s.CreateActor(context.Background(), a))
	return a
}

func seedDirector(t *testing.T, s *Store, name string) *domain.Director {
	t.Helper()

	d := &domain.Director{
		Name:        name,
		Nationality: "French",
		BirthDate:   date(1963, time.August, 21),
	}
	require.NoError(t, s.CreateDirector(context.Background(), d))
	return d
}

func seedUser(t *testing.T, s *Store, alias string) *domain.User {
	t.Helper()

	u := &domain.User{
		Role:         domain.RoleMember,
		Name:         "Test User",
		Alias:        alias,
		Email:        alias + "@example.com",
		PasswordHash: "$argon2id$fake",
		RegisteredAt: date(2024, time.January, 10),
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedReview(t *testing.T, s *Store, userID, titleID int64, rating int) *domain.Review {
	t.Helper()

	comment := "worth watching"
	r := &domain.Review{
		Comment: &comment,
		Rating:  rating,
		Date:    date(2024, time.May, 2),
		TitleID: titleID,
		UserID:  userID,
	}
	require.NoError(t, s.CreateReview(context.Background(), r))
	return r
}

func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()

	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
