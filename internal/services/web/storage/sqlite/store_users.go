package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// PutUser persists a user record, updating it in place when it exists.
func (s *Store) PutUser(ctx context.Context, record storage.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	record.Email = strings.ToLower(strings.TrimSpace(record.Email))
	if record.Email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(record.PasswordHash) == "" {
		return fmt.Errorf("password hash is required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	isSuperuser := 0
	if record.IsSuperuser {
		isSuperuser = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO users (id, email, password_hash, is_superuser, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	email = excluded.email,
	password_hash = excluded.password_hash,
	is_superuser = excluded.is_superuser,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.Email,
		record.PasswordHash,
		isSuperuser,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetUser fetches a user record by ID.
func (s *Store) GetUser(ctx context.Context, userID string) (storage.User, error) {
	if err := ctx.Err(); err != nil {
		return storage.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.User{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.User{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, email, password_hash, is_superuser, created_at, updated_at
FROM users
WHERE id = ?
`, userID)
	return scanUser(row, "get user")
}

// GetUserByEmail fetches a user record by its unique email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (storage.User, error) {
	if err := ctx.Err(); err != nil {
		return storage.User{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.User{}, fmt.Errorf("storage is not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return storage.User{}, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, email, password_hash, is_superuser, created_at, updated_at
FROM users
WHERE email = ?
`, email)
	return scanUser(row, "get user by email")
}

func scanUser(row *sql.Row, op string) (storage.User, error) {
	var record storage.User
	var isSuperuser int64
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.Email,
		&record.PasswordHash,
		&isSuperuser,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.User{}, storage.ErrNotFound
		}
		return storage.User{}, fmt.Errorf("%s: %w", op, err)
	}
	record.IsSuperuser = isSuperuser != 0
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutSchool persists a school record.
func (s *Store) PutSchool(ctx context.Context, record storage.School) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("school id is required")
	}
	if strings.TrimSpace(record.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO schools (id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	updated_at = excluded.updated_at
`,
		record.ID,
		record.UserID,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put school: %w", err)
	}
	return nil
}

// GetSchoolByUser fetches the school owned by a user.
func (s *Store) GetSchoolByUser(ctx context.Context, userID string) (storage.School, error) {
	if err := ctx.Err(); err != nil {
		return storage.School{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.School{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return storage.School{}, fmt.Errorf("user id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, user_id, created_at, updated_at
FROM schools
WHERE user_id = ?
`, userID)

	var record storage.School
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(&record.ID, &record.UserID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.School{}, storage.ErrNotFound
		}
		return storage.School{}, fmt.Errorf("get school by user: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
