package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const userColumns = `id, email, username, first_name, last_name, image_url, role, password_hash, created_at`

func scanUser(row scanner) (*models.User, error) {
	var u models.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.ImageURL,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	const op = "storage.postgres.CreateUser"

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}

	query := `
		INSERT INTO users (id, email, username, first_name, last_name, image_url, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := s.DB.QueryRowContext(ctx, query,
		u.ID,
		strings.ToLower(u.Email),
		u.Username,
		u.FirstName,
		u.LastName,
		u.ImageURL,
		u.Role,
		u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return storage.ErrUserExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.GetUserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(s.DB.QueryRowContext(ctx, query, strings.ToLower(email)))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.GetUser"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.ListUsers"

	rows, err := s.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan user: %w", op, err)
		}
		users = append(users, *u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *Storage) UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	const op = "storage.postgres.UpdateUserRole"

	query := `UPDATE users SET role = $2 WHERE id = $1 RETURNING ` + userColumns

	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id, role))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteUser"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// prefixed qualifies a comma separated column list with a table alias.
func prefixed(alias, columns string) string {
	cols := strings.Split(columns, ",")
	for i, c := range cols {
		c = strings.TrimSpace(c)
		cols[i] = alias + "." + c
	}

	return strings.Join(cols, ", ")
}
