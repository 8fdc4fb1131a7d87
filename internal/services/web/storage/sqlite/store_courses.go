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

const courseColumns = "c.id, c.name, c.days_of_week, c.is_active, c.created_at, c.updated_at"

// PutCourse persists a course and replaces its grade level links atomically.
func (s *Store) PutCourse(ctx context.Context, record storage.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("course id is required")
	}
	record.Name = strings.TrimSpace(record.Name)
	if record.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(record.GradeLevelIDs) == 0 {
		return fmt.Errorf("at least one grade level is required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	isActive := 0
	if record.IsActive {
		isActive = 1
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put course: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO courses (id, name, days_of_week, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	days_of_week = excluded.days_of_week,
	is_active = excluded.is_active,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.Name,
		int64(record.Days),
		isActive,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	); err != nil {
		return fmt.Errorf("put course: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM course_grade_levels WHERE course_id = ?`, record.ID); err != nil {
		return fmt.Errorf("clear course grade levels: %w", err)
	}
	for _, gradeLevelID := range record.GradeLevelIDs {
		gradeLevelID = strings.TrimSpace(gradeLevelID)
		if gradeLevelID == "" {
			return fmt.Errorf("grade level id is required")
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO course_grade_levels (course_id, grade_level_id) VALUES (?, ?)
`, record.ID, gradeLevelID); err != nil {
			return fmt.Errorf("link course grade level: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put course: %w", err)
	}
	return nil
}

// GetCourse fetches a course scoped to a school through its grade levels.
func (s *Store) GetCourse(ctx context.Context, courseID string, schoolID string) (storage.Course, error) {
	if err := ctx.Err(); err != nil {
		return storage.Course{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Course{}, fmt.Errorf("storage is not configured")
	}
	courseID = strings.TrimSpace(courseID)
	schoolID = strings.TrimSpace(schoolID)
	if courseID == "" || schoolID == "" {
		return storage.Course{}, fmt.Errorf("course id and school id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+courseColumns+`
FROM courses c
WHERE c.id = ? AND EXISTS (
	SELECT 1
	FROM course_grade_levels cgl
	JOIN grade_levels gl ON gl.id = cgl.grade_level_id
	JOIN school_years sy ON sy.id = gl.school_year_id
	WHERE cgl.course_id = c.id AND sy.school_id = ?
)
`, courseID, schoolID)

	record, err := scanCourse(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Course{}, storage.ErrNotFound
		}
		return storage.Course{}, fmt.Errorf("get course: %w", err)
	}
	if err := s.attachCourseLinks(ctx, &record); err != nil {
		return storage.Course{}, err
	}
	return record, nil
}

// ListCoursesByGradeLevel returns the grade level's courses in creation order.
func (s *Store) ListCoursesByGradeLevel(ctx context.Context, gradeLevelID string) ([]storage.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	gradeLevelID = strings.TrimSpace(gradeLevelID)
	if gradeLevelID == "" {
		return nil, fmt.Errorf("grade level id is required")
	}

	return s.listCourses(ctx, `
SELECT `+courseColumns+`
FROM courses c
JOIN course_grade_levels cgl ON cgl.course_id = c.id
WHERE cgl.grade_level_id = ?
ORDER BY c.created_at, c.id
`, gradeLevelID)
}

// ListCoursesBySchoolYear returns every course linked to the year's grade levels.
func (s *Store) ListCoursesBySchoolYear(ctx context.Context, yearID string) ([]storage.Course, error) {
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

	return s.listCourses(ctx, `
SELECT DISTINCT `+courseColumns+`
FROM courses c
JOIN course_grade_levels cgl ON cgl.course_id = c.id
JOIN grade_levels gl ON gl.id = cgl.grade_level_id
WHERE gl.school_year_id = ?
ORDER BY c.created_at, c.id
`, yearID)
}

func (s *Store) listCourses(ctx context.Context, query string, args ...any) ([]storage.Course, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []storage.Course
	for rows.Next() {
		record, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list courses: %w", err)
		}
		courses = append(courses, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	for i := range courses {
		if err := s.attachCourseLinks(ctx, &courses[i]); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func scanCourse(scan func(...any) error) (storage.Course, error) {
	var record storage.Course
	var days int64
	var isActive int64
	var createdAt int64
	var updatedAt int64
	if err := scan(&record.ID, &record.Name, &days, &isActive, &createdAt, &updatedAt); err != nil {
		return storage.Course{}, err
	}
	record.Days = schedule.Days(days)
	record.IsActive = isActive != 0
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// attachCourseLinks loads grade level links and the owning school year.
func (s *Store) attachCourseLinks(ctx context.Context, record *storage.Course) error {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT cgl.grade_level_id, gl.school_year_id
FROM course_grade_levels cgl
JOIN grade_levels gl ON gl.id = cgl.grade_level_id
WHERE cgl.course_id = ?
ORDER BY gl.created_at, gl.id
`, record.ID)
	if err != nil {
		return fmt.Errorf("list course grade levels: %w", err)
	}
	defer rows.Close()

	record.GradeLevelIDs = nil
	record.SchoolYearID = ""
	for rows.Next() {
		var gradeLevelID string
		var yearID string
		if err := rows.Scan(&gradeLevelID, &yearID); err != nil {
			return fmt.Errorf("list course grade levels: %w", err)
		}
		record.GradeLevelIDs = append(record.GradeLevelIDs, gradeLevelID)
		if record.SchoolYearID == "" {
			record.SchoolYearID = yearID
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list course grade levels: %w", err)
	}
	return nil
}

// PutCourseTask persists a course task record.
func (s *Store) PutCourseTask(ctx context.Context, record storage.CourseTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("course task id is required")
	}
	if strings.TrimSpace(record.CourseID) == "" {
		return fmt.Errorf("course id is required")
	}
	record.Description = strings.TrimSpace(record.Description)
	if record.Description == "" {
		return fmt.Errorf("description is required")
	}
	if record.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	var gradeLevelID any
	if trimmed := strings.TrimSpace(record.GradeLevelID); trimmed != "" {
		gradeLevelID = trimmed
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO course_tasks (id, course_id, description, duration_minutes, position, grade_level_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	description = excluded.description,
	duration_minutes = excluded.duration_minutes,
	position = excluded.position,
	grade_level_id = excluded.grade_level_id,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.CourseID,
		record.Description,
		record.DurationMinutes,
		record.Position,
		gradeLevelID,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put course task: %w", err)
	}
	return nil
}

// GetCourseTask fetches a task scoped to a school through its course links.
func (s *Store) GetCourseTask(ctx context.Context, taskID string, schoolID string) (storage.CourseTask, error) {
	if err := ctx.Err(); err != nil {
		return storage.CourseTask{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CourseTask{}, fmt.Errorf("storage is not configured")
	}
	taskID = strings.TrimSpace(taskID)
	schoolID = strings.TrimSpace(schoolID)
	if taskID == "" || schoolID == "" {
		return storage.CourseTask{}, fmt.Errorf("course task id and school id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT ct.id, ct.course_id, ct.description, ct.duration_minutes, ct.position, ct.grade_level_id, ct.created_at, ct.updated_at
FROM course_tasks ct
WHERE ct.id = ? AND EXISTS (
	SELECT 1
	FROM course_grade_levels cgl
	JOIN grade_levels gl ON gl.id = cgl.grade_level_id
	JOIN school_years sy ON sy.id = gl.school_year_id
	WHERE cgl.course_id = ct.course_id AND sy.school_id = ?
)
`, taskID, schoolID)

	record, err := scanCourseTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CourseTask{}, storage.ErrNotFound
		}
		return storage.CourseTask{}, fmt.Errorf("get course task: %w", err)
	}
	return record, nil
}

// ListCourseTasks returns a course's tasks in position order.
func (s *Store) ListCourseTasks(ctx context.Context, courseID string) ([]storage.CourseTask, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, fmt.Errorf("course id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT ct.id, ct.course_id, ct.description, ct.duration_minutes, ct.position, ct.grade_level_id, ct.created_at, ct.updated_at
FROM course_tasks ct
WHERE ct.course_id = ?
ORDER BY ct.position, ct.created_at, ct.id
`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course tasks: %w", err)
	}
	defer rows.Close()

	var tasks []storage.CourseTask
	for rows.Next() {
		record, err := scanCourseTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list course tasks: %w", err)
		}
		tasks = append(tasks, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list course tasks: %w", err)
	}
	return tasks, nil
}

func scanCourseTask(scan func(...any) error) (storage.CourseTask, error) {
	var record storage.CourseTask
	var gradeLevelID sql.NullString
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.CourseID,
		&record.Description,
		&record.DurationMinutes,
		&record.Position,
		&gradeLevelID,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.CourseTask{}, err
	}
	if gradeLevelID.Valid {
		record.GradeLevelID = gradeLevelID.String
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutGradedWork marks a course task as graded.
func (s *Store) PutGradedWork(ctx context.Context, record storage.GradedWork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("graded work id is required")
	}
	if strings.TrimSpace(record.CourseTaskID) == "" {
		return fmt.Errorf("course task id is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = nowUTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO graded_work (id, course_task_id, created_at)
VALUES (?, ?, ?)
ON CONFLICT(course_task_id) DO NOTHING
`,
		record.ID,
		record.CourseTaskID,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put graded work: %w", err)
	}
	return nil
}

// GetGradedWorkByTask fetches the graded work attached to a task.
func (s *Store) GetGradedWorkByTask(ctx context.Context, taskID string) (storage.GradedWork, error) {
	if err := ctx.Err(); err != nil {
		return storage.GradedWork{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GradedWork{}, fmt.Errorf("storage is not configured")
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return storage.GradedWork{}, fmt.Errorf("course task id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, course_task_id, created_at
FROM graded_work
WHERE course_task_id = ?
`, taskID)

	var record storage.GradedWork
	var createdAt int64
	if err := row.Scan(&record.ID, &record.CourseTaskID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.GradedWork{}, storage.ErrNotFound
		}
		return storage.GradedWork{}, fmt.Errorf("get graded work: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// DeleteGradedWorkByTask removes the graded mark from a task.
func (s *Store) DeleteGradedWorkByTask(ctx context.Context, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return fmt.Errorf("course task id is required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM graded_work WHERE course_task_id = ?`, taskID); err != nil {
		return fmt.Errorf("delete graded work: %w", err)
	}
	return nil
}

// ListGradedWorkByCourse returns graded work for every task of a course.
func (s *Store) ListGradedWorkByCourse(ctx context.Context, courseID string) ([]storage.GradedWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, fmt.Errorf("course id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT gw.id, gw.course_task_id, gw.created_at
FROM graded_work gw
JOIN course_tasks ct ON ct.id = gw.course_task_id
WHERE ct.course_id = ?
ORDER BY ct.position, ct.id
`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list graded work: %w", err)
	}
	defer rows.Close()

	var work []storage.GradedWork
	for rows.Next() {
		var record storage.GradedWork
		var createdAt int64
		if err := rows.Scan(&record.ID, &record.CourseTaskID, &createdAt); err != nil {
			return nil, fmt.Errorf("list graded work: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		work = append(work, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list graded work: %w", err)
	}
	return work, nil
}
