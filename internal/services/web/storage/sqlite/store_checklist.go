package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// ReplaceChecklistExclusions swaps the set of courses a school year's
// checklist leaves out.
func (s *Store) ReplaceChecklistExclusions(ctx context.Context, yearID string, courseIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	yearID = strings.TrimSpace(yearID)
	if yearID == "" {
		return fmt.Errorf("school year id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace checklist exclusions: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_exclusions WHERE school_year_id = ?`, yearID); err != nil {
		return fmt.Errorf("clear checklist exclusions: %w", err)
	}
	createdAt := toMillis(nowUTC())
	for _, courseID := range courseIDs {
		courseID = strings.TrimSpace(courseID)
		if courseID == "" {
			return fmt.Errorf("course id is required")
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO checklist_exclusions (school_year_id, course_id, created_at)
VALUES (?, ?, ?)
ON CONFLICT(school_year_id, course_id) DO NOTHING
`, yearID, courseID, createdAt); err != nil {
			return fmt.Errorf("add checklist exclusion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace checklist exclusions: %w", err)
	}
	return nil
}

// ListChecklistExclusions returns the excluded course IDs for a school year.
func (s *Store) ListChecklistExclusions(ctx context.Context, yearID string) ([]string, error) {
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
SELECT course_id
FROM checklist_exclusions
WHERE school_year_id = ?
ORDER BY course_id
`, yearID)
	if err != nil {
		return nil, fmt.Errorf("list checklist exclusions: %w", err)
	}
	defer rows.Close()

	var courseIDs []string
	for rows.Next() {
		var courseID string
		if err := rows.Scan(&courseID); err != nil {
			return nil, fmt.Errorf("list checklist exclusions: %w", err)
		}
		courseIDs = append(courseIDs, courseID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list checklist exclusions: %w", err)
	}
	return courseIDs, nil
}
