package sqlite

import (
	"context"
	"database/sql"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// actorColumns is the ordered list of columns selected in actor queries.
// Must match the scan order in scanActor.
const actorColumns = `id, name, photo_url, nationality, birth_date`

// scanActor scans a sql.Row (or sql.Rows via its Scan method) into a domain.Actor.
func scanActor(scanner interface{ Scan(dest ...any) error }) (*domain.Actor, error) {
	var a domain.Actor

	var (
		photoURL    sql.NullString
		nationality sql.NullString
		birthDate   string
	)

	err := scanner.Scan(&a.ID, &a.Name, &photoURL, &nationality, &birthDate)
	if err != nil {
		return nil, err
	}

	a.BirthDate, err = parseDate(birthDate)
	if err != nil {
		return nil, err
	}

	if photoURL.Valid {
		a.PhotoURL = photoURL.String
	}
	if nationality.Valid {
		a.Nationality = nationality.String
	}

	return &a, nil
}

// CreateActor inserts a new actor and fills in the assigned id.
func (s *Store) CreateActor(ctx context.Context, a *domain.Actor) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO actor (name, photo_url, nationality, birth_date)
		VALUES (?, ?, ?, ?)`,
		a.Name,
		nullString(a.PhotoURL),
		nullString(a.Nationality),
		formatDate(a.BirthDate),
	)
	if err != nil {
		return err
	}

	a.ID, err = result.LastInsertId()
	return err
}

// GetActor retrieves an actor by id.
func (s *Store) GetActor(ctx context.Context, id int64) (*domain.Actor, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+actorColumns+` FROM actor WHERE id = ?`, id)

	a, err := scanActor(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("actor not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListActors returns all actors.
func (s *Store) ListActors(ctx context.Context) ([]*domain.Actor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+actorColumns+` FROM actor ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actors []*domain.Actor
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return actors, nil
}

// UpdateActor performs a full row update on an existing actor.
func (s *Store) UpdateActor(ctx context.Context, a *domain.Actor) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE actor SET
			name = ?,
			photo_url = ?,
			nationality = ?,
			birth_date = ?
		WHERE id = ?`,
		a.Name,
		nullString(a.PhotoURL),
		nullString(a.Nationality),
		formatDate(a.BirthDate),
		a.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("actor not found")
	}
	return nil
}

// DeleteActor removes an actor. An actor still credited on titles fails the
// foreign-key check and is reported as a conflict.
func (s *Store) DeleteActor(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM actor WHERE id = ?`, id)
	if err != nil {
		return translateErr(err, "actor is credited on one or more titles")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("actor not found")
	}
	return nil
}
