package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cinelog/cinelog-server/internal/domain"
	domainerrors "github.com/cinelog/cinelog-server/internal/errors"
)

const userColumns = `id, role, avatar_url, name, alias, email, password_hash, registered_at`

func scanUser(scanner interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User

	var (
		avatarURL    sql.NullString
		registeredAt string
	)

	err := scanner.Scan(
		&u.ID,
		&u.Role,
		&avatarURL,
		&u.Name,
		&u.Alias,
		&u.Email,
		&u.PasswordHash,
		&registeredAt,
	)
	if err != nil {
		return nil, err
	}

	u.RegisteredAt, err = time.Parse(time.RFC3339, registeredAt)
	if err != nil {
		return nil, err
	}

	if avatarURL.Valid {
		u.AvatarURL = avatarURL.String
	}

	return &u, nil
}

// CreateUser inserts a new user and fills in the assigned id.
// Alias and email uniqueness is checked by the caller beforehand.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO user (role, avatar_url, name, alias, email, password_hash, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Role,
		nullString(u.AvatarURL),
		u.Name,
		u.Alias,
		u.Email,
		u.PasswordHash,
		u.RegisteredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	u.ID, err = result.LastInsertId()
	return err
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM user WHERE id = ?`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, domainerrors.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all registered users.
func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM user ORDER BY registered_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// UserExistsByAliasOrEmail reports whether any user already holds the given
// alias or email.
func (s *Store) UserExistsByAliasOrEmail(ctx context.Context, alias, email string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user WHERE alias = ? OR email = ?`, alias, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateUserProfile updates the mutable profile fields of a user. Alias and
// password have dedicated update paths and are not touched here.
func (s *Store) UpdateUserProfile(ctx context.Context, u *domain.User) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE user SET
			role = ?,
			avatar_url = ?,
			name = ?,
			email = ?
		WHERE id = ?`,
		u.Role,
		nullString(u.AvatarURL),
		u.Name,
		u.Email,
		u.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("user not found")
	}
	return nil
}

// UpdateUserPassword replaces the stored password hash.
func (s *Store) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE user SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("user not found")
	}
	return nil
}

// UpdateUserAlias replaces the user's alias.
func (s *Store) UpdateUserAlias(ctx context.Context, id int64, alias string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE user SET alias = ? WHERE id = ?`, alias, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.NotFound("user not found")
	}
	return nil
}
