package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// PutSchoolYear persists a school year record.
func (s *Store) PutSchoolYear(ctx context.Context, record storage.SchoolYear) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("school year id is required")
	}
	if strings.TrimSpace(record.SchoolID) == "" {
		return fmt.Errorf("school id is required")
	}
	if record.StartDate.IsZero() || record.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if record.EndDate.Before(record.StartDate) {
		return fmt.Errorf("end date precedes start date")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO school_years (id, school_id, start_date, end_date, days_of_week, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	start_date = excluded.start_date,
	end_date = excluded.end_date,
	days_of_week = excluded.days_of_week,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.SchoolID,
		toDate(record.StartDate),
		toDate(record.EndDate),
		int64(record.Days),
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put school year: %w", err)
	}
	return nil
}

// GetSchoolYear fetches a school year scoped to its owning school.
func (s *Store) GetSchoolYear(ctx context.Context, yearID string, schoolID string) (storage.SchoolYear, error) {
	if err := ctx.Err(); err != nil {
		return storage.SchoolYear{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SchoolYear{}, fmt.Errorf("storage is not configured")
	}
	yearID = strings.TrimSpace(yearID)
	schoolID = strings.TrimSpace(schoolID)
	if yearID == "" || schoolID == "" {
		return storage.SchoolYear{}, fmt.Errorf("school year id and school id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, school_id, start_date, end_date, days_of_week, created_at, updated_at
FROM school_years
WHERE id = ? AND school_id = ?
`, yearID, schoolID)
	record, err := scanSchoolYear(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SchoolYear{}, storage.ErrNotFound
		}
		return storage.SchoolYear{}, fmt.Errorf("get school year: %w", err)
	}
	return record, nil
}

// ListSchoolYears returns a school's years, most recent start date first.
func (s *Store) ListSchoolYears(ctx context.Context, schoolID string) ([]storage.SchoolYear, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	schoolID = strings.TrimSpace(schoolID)
	if schoolID == "" {
		return nil, fmt.Errorf("school id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, school_id, start_date, end_date, days_of_week, created_at, updated_at
FROM school_years
WHERE school_id = ?
ORDER BY start_date DESC
`, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list school years: %w", err)
	}
	defer rows.Close()

	var years []storage.SchoolYear
	for rows.Next() {
		record, err := scanSchoolYear(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list school years: %w", err)
		}
		years = append(years, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list school years: %w", err)
	}
	return years, nil
}

func scanSchoolYear(scan func(...any) error) (storage.SchoolYear, error) {
	var record storage.SchoolYear
	var startDate string
	var endDate string
	var days int64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.SchoolID,
		&startDate,
		&endDate,
		&days,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.SchoolYear{}, err
	}
	var err error
	if record.StartDate, err = fromDate(startDate); err != nil {
		return storage.SchoolYear{}, err
	}
	if record.EndDate, err = fromDate(endDate); err != nil {
		return storage.SchoolYear{}, err
	}
	record.Days = schedule.Days(days)
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutGradeLevel persists a grade level record.
func (s *Store) PutGradeLevel(ctx context.Context, record storage.GradeLevel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("grade level id is required")
	}
	if strings.TrimSpace(record.SchoolYearID) == "" {
		return fmt.Errorf("school year id is required")
	}
	record.Name = strings.TrimSpace(record.Name)
	if record.Name == "" {
		return fmt.Errorf("name is required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO grade_levels (id, school_year_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.SchoolYearID,
		record.Name,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put grade level: %w", err)
	}
	return nil
}

// GetGradeLevel fetches a grade level scoped to its owning school.
func (s *Store) GetGradeLevel(ctx context.Context, gradeLevelID string, schoolID string) (storage.GradeLevel, error) {
	if err := ctx.Err(); err != nil {
		return storage.GradeLevel{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GradeLevel{}, fmt.Errorf("storage is not configured")
	}
	gradeLevelID = strings.TrimSpace(gradeLevelID)
	schoolID = strings.TrimSpace(schoolID)
	if gradeLevelID == "" || schoolID == "" {
		return storage.GradeLevel{}, fmt.Errorf("grade level id and school id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT gl.id, gl.school_year_id, gl.name, gl.created_at, gl.updated_at
FROM grade_levels gl
JOIN school_years sy ON sy.id = gl.school_year_id
WHERE gl.id = ? AND sy.school_id = ?
`, gradeLevelID, schoolID)

	var record storage.GradeLevel
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(&record.ID, &record.SchoolYearID, &record.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.GradeLevel{}, storage.ErrNotFound
		}
		return storage.GradeLevel{}, fmt.Errorf("get grade level: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// ListGradeLevels returns a year's grade levels in creation order.
func (s *Store) ListGradeLevels(ctx context.Context, yearID string) ([]storage.GradeLevel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	yearID = strings.TrimSpace(yearID)
	if yearID == "" {
		return nil, fmt.Errorf("school year id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, school_year_id, name, created_at, updated_at
FROM grade_levels
WHERE school_year_id = ?
ORDER BY created_at, id
`, yearID)
	if err != nil {
		return nil, fmt.Errorf("list grade levels: %w", err)
	}
	defer rows.Close()

	var levels []storage.GradeLevel
	for rows.Next() {
		var record storage.GradeLevel
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(&record.ID, &record.SchoolYearID, &record.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("list grade levels: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		levels = append(levels, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list grade levels: %w", err)
	}
	return levels, nil
}

// PutSchoolBreak persists a school break record.
func (s *Store) PutSchoolBreak(ctx context.Context, record storage.SchoolBreak) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("school break id is required")
	}
	if strings.TrimSpace(record.SchoolYearID) == "" {
		return fmt.Errorf("school year id is required")
	}
	if record.StartDate.IsZero() || record.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if record.EndDate.Before(record.StartDate) {
		return fmt.Errorf("end date precedes start date")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO school_breaks (id, school_year_id, description, start_date, end_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	description = excluded.description,
	start_date = excluded.start_date,
	end_date = excluded.end_date,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.SchoolYearID,
		strings.TrimSpace(record.Description),
		toDate(record.StartDate),
		toDate(record.EndDate),
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put school break: %w", err)
	}
	return nil
}

// ListSchoolBreaks returns a year's breaks ordered by start date.
func (s *Store) ListSchoolBreaks(ctx context.Context, yearID string) ([]storage.SchoolBreak, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	yearID = strings.TrimSpace(yearID)
	if yearID == "" {
		return nil, fmt.Errorf("school year id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, school_year_id, description, start_date, end_date, created_at, updated_at
FROM school_breaks
WHERE school_year_id = ?
ORDER BY start_date, id
`, yearID)
	if err != nil {
		return nil, fmt.Errorf("list school breaks: %w", err)
	}
	defer rows.Close()

	var breaks []storage.SchoolBreak
	for rows.Next() {
		var record storage.SchoolBreak
		var startDate string
		var endDate string
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(
			&record.ID,
			&record.SchoolYearID,
			&record.Description,
			&startDate,
			&endDate,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("list school breaks: %w", err)
		}
		if record.StartDate, err = fromDate(startDate); err != nil {
			return nil, err
		}
		if record.EndDate, err = fromDate(endDate); err != nil {
			return nil, err
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		breaks = append(breaks, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list school breaks: %w", err)
	}
	return breaks, nil
}
