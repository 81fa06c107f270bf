package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
	"github.com/cinelog/cinelog-server/internal/store"
)

const directorColumns = `id, name, photo_url, nationality, birth_date`

func scanDirector(scanner interface{ Scan(dest ...any) error }) (*domain.Director, error) {
	var d domain.Director

	var (
		photoURL    sql.NullString
		nationality sql.NullString
		birthDate   string
	)

	err := scanner.Scan(&d.ID, &d.Name, &photoURL, &nationality, &birthDate)
	if err != nil {
		return nil, err
	}

	d.BirthDate, err = parseDate(birthDate)
	if err != nil {
		return nil, err
	}

	if photoURL.Valid {
		d.PhotoURL = photoURL.String
	}
	if nationality.Valid {
		d.Nationality = nationality.String
	}

	return &d, nil
}

// CreateDirector inserts a new director and fills in the assigned id.
func (s *Store) CreateDirector(ctx context.Context, d *domain.Director) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO director (name, photo_url, nationality, birth_date)
		VALUES (?, ?, ?, ?)`,
		d.Name,
		nullString(d.PhotoURL),
		nullString(d.Nationality),
		formatDate(d.BirthDate),
	)
	if err != nil {
		return err
	}

	d.ID, err = result.LastInsertId()
	return err
}

// GetDirector retrieves a director by id.
func (s *Store) GetDirector(ctx context.Context, id int64) (*domain.Director, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+directorColumns+` FROM director WHERE id = ?`, id)

	d, err := scanDirector(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("director not found")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDirectors returns all directors.
func (s *Store) ListDirectors(ctx context.Context) ([]*domain.Director, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+directorColumns+` FROM director ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var directors []*domain.Director
	for rows.Next() {
		d, err := scanDirector(rows)
		if err != nil {
			return nil, err
		}
		directors = append(directors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return directors, nil
}

// PatchDirector writes only the fields present in the patch. Column names are
// fixed here; request field names never reach the query text.
func (s *Store) PatchDirector(ctx context.Context, id int64, patch store.DirectorPatch) error {
	if patch.IsEmpty() {
		return domainerrors.Validation("no updatable fields in patch")
	}

	var (
		assignments []string
		args        []any
	)
	if patch.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.PhotoURL != nil {
		assignments = append(assignments, "photo_url = ?")
		args = append(args, nullString(*patch.PhotoURL))
	}
	if patch.Nationality != nil {
		assignments = append(assignments, "nationality = ?")
		args = append(args, nullString(*patch.Nationality))
	}
	if patch.BirthDate != nil {
		assignments = append(assignments, "birth_date = ?")
		args = append(args, formatDate(*patch.BirthDate))
	}
	args = append(args, id)

	query := "UPDATE director SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("director not found")
	}
	return nil
}

// ListDirectorTitles returns all titles credited to a director, newest first.
// The director must exist; a missing director is NOT_FOUND even when the
// credit list would be empty.
func (s *Store) ListDirectorTitles(ctx context.Context, id int64) ([]*domain.Title, error) {
	if _, err := s.GetDirector(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.description, t.release_date, t.image_url, t.seasons
		FROM title t
		JOIN title_director td ON t.id = td.title_id
		WHERE td.director_id = ?
		ORDER BY t.release_date DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []*domain.Title
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}
