package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

// titleColumns is the ordered list of columns selected in title queries.
// Must match the scan order in scanTitle.
const titleColumns = `id, name, description, release_date, image_url, seasons`

// scanTitle scans a sql.Row (or sql.Rows via its Scan method) into a domain.Title.
func scanTitle(scanner interface{ Scan(dest ...any) error }) (*domain.Title, error) {
	var t domain.Title

	var (
		description sql.NullString
		releaseDate string
		imageURL    sql.NullString
	)

	err := scanner.Scan(
		&t.ID,
		&t.Name,
		&description,
		&releaseDate,
		&imageURL,
		&t.Seasons,
	)
	if err != nil {
		return nil, err
	}

	t.ReleaseDate, err = parseDate(releaseDate)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		t.Description = description.String
	}
	if imageURL.Valid {
		t.ImageURL = imageURL.String
	}

	return &t, nil
}

// CreateTitle inserts a new title and fills in the assigned id.
// Returns a conflict error if the name is already taken.
func (s *Store) CreateTitle(ctx context.Context, t *domain.Title) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO title (name, description, release_date, image_url, seasons)
		VALUES (?, ?, ?, ?, ?)`,
		t.Name,
		nullString(t.Description),
		formatDate(t.ReleaseDate),
		nullString(t.ImageURL),
		t.Seasons,
	)
	if err != nil {
		return translateErr(err, fmt.Sprintf("title %q already exists", t.Name))
	}

	t.ID, err = result.LastInsertId()
	return err
}

// GetTitle retrieves a title by id.
func (s *Store) GetTitle(ctx context.Context, id int64) (*domain.Title, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+titleColumns+` FROM title WHERE id = ?`, id)

	t, err := scanTitle(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("title not found")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTitleByName retrieves a title by its exact name.
func (s *Store) GetTitleByName(ctx context.Context, name string) (*domain.Title, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+titleColumns+` FROM title WHERE name = ?`, name)

	t, err := scanTitle(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("title not found")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTitles returns all titles newest first, with genre names aggregated.
func (s *Store) ListTitles(ctx context.Context) ([]*domain.Title, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			t.id, t.name, t.description, t.release_date, t.image_url, t.seasons,
			GROUP_CONCAT(g.name)
		FROM title t
		LEFT JOIN title_genre tg ON t.id = tg.title_id
		LEFT JOIN genre g ON tg.genre_id = g.id
		GROUP BY t.id
		ORDER BY t.release_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []*domain.Title
	for rows.Next() {
		var t domain.Title
		var (
			description sql.NullString
			releaseDate string
			imageURL    sql.NullString
			genres      sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &description, &releaseDate, &imageURL, &t.Seasons, &genres); err != nil {
			return nil, err
		}
		if t.ReleaseDate, err = parseDate(releaseDate); err != nil {
			return nil, err
		}
		if description.Valid {
			t.Description = description.String
		}
		if imageURL.Valid {
			t.ImageURL = imageURL.String
		}
		if genres.Valid && genres.String != "" {
			t.Genres = strings.Split(genres.String, ",")
		}
		titles = append(titles, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// UpdateTitle performs a full row update on an existing title.
func (s *Store) UpdateTitle(ctx context.Context, t *domain.Title) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE title SET
			name = ?,
			description = ?,
			release_date = ?,
			image_url = ?,
			seasons = ?
		WHERE id = ?`,
		t.Name,
		nullString(t.Description),
		formatDate(t.ReleaseDate),
		nullString(t.ImageURL),
		t.Seasons,
		t.ID,
	)
	if err != nil {
		return translateErr(err, fmt.Sprintf("title %q already exists", t.Name))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("title not found")
	}
	return nil
}

// DeleteTitleCascade atomically removes a title and every row that references
// it. Join rows go first to satisfy foreign keys; review rows go last among
// dependents because they are two hops removed from the title. Any failure
// rolls the whole transaction back and surfaces the original error.
func (s *Store) DeleteTitleCascade(ctx context.Context, id int64) (*domain.Title, error) {
	// Existence check happens before any transaction is opened.
	snapshot, err := s.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM title_genre WHERE title_id = ?`,
		`DELETE FROM title_actor WHERE title_id = ?`,
		`DELETE FROM title_director WHERE title_id = ?`,
		`DELETE FROM user_title WHERE title_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return nil, err
		}
	}

	// Collect the ids of reviews attached to this title.
	rows, err := tx.QueryContext(ctx, `SELECT review_id FROM review_title WHERE title_id = ?`, id)
	if err != nil {
		return nil, err
	}
	var reviewIDs []int64
	for rows.Next() {
		var reviewID int64
		if err := rows.Scan(&reviewID); err != nil {
			rows.Close()
			return nil, err
		}
		reviewIDs = append(reviewIDs, reviewID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(reviewIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(reviewIDs)), ",")
		args := make([]any, len(reviewIDs))
		for i, reviewID := range reviewIDs {
			args[i] = reviewID
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM user_review WHERE review_id IN (`+placeholders+`)`, args...); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM review_title WHERE title_id = ?`, id); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM review WHERE id IN (`+placeholders+`)`, args...); err != nil {
			return nil, err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM title WHERE id = ?`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// LinkTitleGenre associates a genre with a title.
func (s *Store) LinkTitleGenre(ctx context.Context, titleID, genreID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO title_genre (title_id, genre_id) VALUES (?, ?)`, titleID, genreID)
	return translateErr(err, "title is already linked to this genre")
}

// LinkTitleActor associates an actor with a title.
func (s *Store) LinkTitleActor(ctx context.Context, titleID, actorID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO title_actor (title_id, actor_id) VALUES (?, ?)`, titleID, actorID)
	return translateErr(err, "title is already linked to this actor")
}

// LinkTitleDirector associates a director with a title.
func (s *Store) LinkTitleDirector(ctx context.Context, titleID, directorID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO title_director (title_id, director_id) VALUES (?, ?)`, titleID, directorID)
	return translateErr(err, "title is already linked to this director")
}

// LinkUserTitle adds a title to a user's library.
func (s *Store) LinkUserTitle(ctx context.Context, userID, titleID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_title (user_id, title_id) VALUES (?, ?)`, userID, titleID)
	return translateErr(err, "title is already in the user's library")
}
