package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// CreateGenre inserts a new genre and fills in the assigned id.
// Returns a conflict error if the name already exists.
func (s *Store) CreateGenre(ctx context.Context, g *domain.Genre) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO genre (name) VALUES (?)`, g.Name)
	if err != nil {
		return translateErr(err, fmt.Sprintf("genre %q already exists", g.Name))
	}

	g.ID, err = result.LastInsertId()
	return err
}

// GetGenre retrieves a genre by id.
func (s *Store) GetGenre(ctx context.Context, id int64) (*domain.Genre, error) {
	var g domain.Genre
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM genre WHERE id = ?`, id).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("genre not found")
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGenre removes a genre. A genre still linked to titles fails the
// foreign-key check and is reported as a conflict.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM genre WHERE id = ?`, id)
	if err != nil {
		return translateErr(err, "genre is in use by one or more titles")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("genre not found")
	}
	return nil
}
