package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
)

// PutStudent persists a student record.
func (s *Store) PutStudent(ctx context.Context, record storage.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("student id is required")
	}
	if strings.TrimSpace(record.SchoolID) == "" {
		return fmt.Errorf("school id is required")
	}
	record.FirstName = strings.TrimSpace(record.FirstName)
	record.LastName = strings.TrimSpace(record.LastName)
	if record.FirstName == "" || record.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO students (id, school_id, first_name, last_name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	first_name = excluded.first_name,
	last_name = excluded.last_name,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.SchoolID,
		record.FirstName,
		record.LastName,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put student: %w", err)
	}
	return nil
}

// GetStudent fetches a student scoped to a school.
func (s *Store) GetStudent(ctx context.Context, studentID string, schoolID string) (storage.Student, error) {
	if err := ctx.Err(); err != nil {
		return storage.Student{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Student{}, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	schoolID = strings.TrimSpace(schoolID)
	if studentID == "" || schoolID == "" {
		return storage.Student{}, fmt.Errorf("student id and school id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, school_id, first_name, last_name, created_at, updated_at
FROM students
WHERE id = ? AND school_id = ?
`, studentID, schoolID)

	record, err := scanStudent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Student{}, storage.ErrNotFound
		}
		return storage.Student{}, fmt.Errorf("get student: %w", err)
	}
	return record, nil
}

// ListStudents returns a school's students ordered by name.
func (s *Store) ListStudents(ctx context.Context, schoolID string) ([]storage.Student, error) {
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
SELECT id, school_id, first_name, last_name, created_at, updated_at
FROM students
WHERE school_id = ?
ORDER BY first_name, last_name, id
`, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []storage.Student
	for rows.Next() {
		record, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list students: %w", err)
		}
		students = append(students, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func scanStudent(scan func(...any) error) (storage.Student, error) {
	var record storage.Student
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.SchoolID,
		&record.FirstName,
		&record.LastName,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Student{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutEnrollment places a student in a grade level. A student already enrolled
// in that grade level triggers ErrConflict.
func (s *Store) PutEnrollment(ctx context.Context, record storage.Enrollment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("enrollment id is required")
	}
	if strings.TrimSpace(record.StudentID) == "" {
		return fmt.Errorf("student id is required")
	}
	if strings.TrimSpace(record.GradeLevelID) == "" {
		return fmt.Errorf("grade level id is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = nowUTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO enrollments (id, student_id, grade_level_id, created_at)
VALUES (?, ?, ?, ?)
`,
		record.ID,
		record.StudentID,
		record.GradeLevelID,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put enrollment: %w", err)
	}
	return nil
}

// GetEnrollmentByYear finds the student's enrollment inside a school year.
func (s *Store) GetEnrollmentByYear(ctx context.Context, studentID string, yearID string) (storage.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return storage.Enrollment{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Enrollment{}, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	yearID = strings.TrimSpace(yearID)
	if studentID == "" || yearID == "" {
		return storage.Enrollment{}, fmt.Errorf("student id and school year id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT e.id, e.student_id, e.grade_level_id, e.created_at
FROM enrollments e
JOIN grade_levels gl ON gl.id = e.grade_level_id
WHERE e.student_id = ? AND gl.school_year_id = ?
`, studentID, yearID)

	record, err := scanEnrollment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Enrollment{}, storage.ErrNotFound
		}
		return storage.Enrollment{}, fmt.Errorf("get enrollment: %w", err)
	}
	return record, nil
}

// ListEnrollmentsByYear returns every enrollment across a year's grade levels.
func (s *Store) ListEnrollmentsByYear(ctx context.Context, yearID string) ([]storage.Enrollment, error) {
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
SELECT e.id, e.student_id, e.grade_level_id, e.created_at
FROM enrollments e
JOIN grade_levels gl ON gl.id = e.grade_level_id
WHERE gl.school_year_id = ?
ORDER BY e.created_at, e.id
`, yearID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []storage.Enrollment
	for rows.Next() {
		record, err := scanEnrollment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list enrollments: %w", err)
		}
		enrollments = append(enrollments, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func scanEnrollment(scan func(...any) error) (storage.Enrollment, error) {
	var record storage.Enrollment
	var createdAt int64
	if err := scan(&record.ID, &record.StudentID, &record.GradeLevelID, &createdAt); err != nil {
		return storage.Enrollment{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// PutCoursework records task completion, updating the date on repeat saves.
func (s *Store) PutCoursework(ctx context.Context, record storage.Coursework) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("coursework id is required")
	}
	if strings.TrimSpace(record.StudentID) == "" {
		return fmt.Errorf("student id is required")
	}
	if strings.TrimSpace(record.CourseTaskID) == "" {
		return fmt.Errorf("course task id is required")
	}
	if record.CompletedDate.IsZero() {
		return fmt.Errorf("completed date is required")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO coursework (id, student_id, course_task_id, completed_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(student_id, course_task_id) DO UPDATE SET
	completed_date = excluded.completed_date,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.StudentID,
		record.CourseTaskID,
		toDate(record.CompletedDate),
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put coursework: %w", err)
	}
	return nil
}

// GetCoursework fetches a student's completion record for a task.
func (s *Store) GetCoursework(ctx context.Context, studentID string, taskID string) (storage.Coursework, error) {
	if err := ctx.Err(); err != nil {
		return storage.Coursework{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Coursework{}, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	taskID = strings.TrimSpace(taskID)
	if studentID == "" || taskID == "" {
		return storage.Coursework{}, fmt.Errorf("student id and course task id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, student_id, course_task_id, completed_date, created_at, updated_at
FROM coursework
WHERE student_id = ? AND course_task_id = ?
`, studentID, taskID)

	record, err := scanCoursework(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Coursework{}, storage.ErrNotFound
		}
		return storage.Coursework{}, fmt.Errorf("get coursework: %w", err)
	}
	return record, nil
}

// ListCourseworkByCourse returns a student's completions across one course.
func (s *Store) ListCourseworkByCourse(ctx context.Context, studentID string, courseID string) ([]storage.Coursework, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	courseID = strings.TrimSpace(courseID)
	if studentID == "" || courseID == "" {
		return nil, fmt.Errorf("student id and course id are required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT cw.id, cw.student_id, cw.course_task_id, cw.completed_date, cw.created_at, cw.updated_at
FROM coursework cw
JOIN course_tasks ct ON ct.id = cw.course_task_id
WHERE cw.student_id = ? AND ct.course_id = ?
ORDER BY cw.completed_date, ct.position, ct.id
`, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list coursework: %w", err)
	}
	defer rows.Close()

	var coursework []storage.Coursework
	for rows.Next() {
		record, err := scanCoursework(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list coursework: %w", err)
		}
		coursework = append(coursework, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list coursework: %w", err)
	}
	return coursework, nil
}

// DeleteCoursework removes a student's completion record for a task.
func (s *Store) DeleteCoursework(ctx context.Context, studentID string, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	taskID = strings.TrimSpace(taskID)
	if studentID == "" || taskID == "" {
		return fmt.Errorf("student id and course task id are required")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `
DELETE FROM coursework WHERE student_id = ? AND course_task_id = ?
`, studentID, taskID); err != nil {
		return fmt.Errorf("delete coursework: %w", err)
	}
	return nil
}

func scanCoursework(scan func(...any) error) (storage.Coursework, error) {
	var record storage.Coursework
	var completedDate string
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.StudentID,
		&record.CourseTaskID,
		&completedDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Coursework{}, err
	}
	var err error
	record.CompletedDate, err = fromDate(completedDate)
	if err != nil {
		return storage.Coursework{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutGrade scores graded work, replacing the score on repeat saves.
func (s *Store) PutGrade(ctx context.Context, record storage.Grade) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("grade id is required")
	}
	if strings.TrimSpace(record.StudentID) == "" {
		return fmt.Errorf("student id is required")
	}
	if strings.TrimSpace(record.GradedWorkID) == "" {
		return fmt.Errorf("graded work id is required")
	}
	if record.Score < 0 {
		return fmt.Errorf("score must not be negative")
	}
	ensureTimestamps(&record.CreatedAt, &record.UpdatedAt)

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO grades (id, student_id, graded_work_id, score, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(student_id, graded_work_id) DO UPDATE SET
	score = excluded.score,
	updated_at = excluded.updated_at
`,
		record.ID,
		record.StudentID,
		record.GradedWorkID,
		record.Score,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put grade: %w", err)
	}
	return nil
}

// GetGrade fetches a student's score for graded work.
func (s *Store) GetGrade(ctx context.Context, studentID string, gradedWorkID string) (storage.Grade, error) {
	if err := ctx.Err(); err != nil {
		return storage.Grade{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Grade{}, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	gradedWorkID = strings.TrimSpace(gradedWorkID)
	if studentID == "" || gradedWorkID == "" {
		return storage.Grade{}, fmt.Errorf("student id and graded work id are required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, student_id, graded_work_id, score, created_at, updated_at
FROM grades
WHERE student_id = ? AND graded_work_id = ?
`, studentID, gradedWorkID)

	var record storage.Grade
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.GradedWorkID,
		&record.Score,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Grade{}, storage.ErrNotFound
		}
		return storage.Grade{}, fmt.Errorf("get grade: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// ListPendingGradedWork returns graded work the student completed the task
// for without receiving a score yet.
func (s *Store) ListPendingGradedWork(ctx context.Context, studentID string) ([]storage.PendingGradedWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, fmt.Errorf("student id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT gw.id, gw.course_task_id, ct.description, c.id, c.name
FROM graded_work gw
JOIN course_tasks ct ON ct.id = gw.course_task_id
JOIN courses c ON c.id = ct.course_id
JOIN coursework cw ON cw.course_task_id = gw.course_task_id AND cw.student_id = ?
WHERE NOT EXISTS (
	SELECT 1 FROM grades g
	WHERE g.graded_work_id = gw.id AND g.student_id = ?
)
ORDER BY c.name, ct.position, ct.id
`, studentID, studentID)
	if err != nil {
		return nil, fmt.Errorf("list pending graded work: %w", err)
	}
	defer rows.Close()

	var pending []storage.PendingGradedWork
	for rows.Next() {
		var record storage.PendingGradedWork
		if err := rows.Scan(
			&record.GradedWorkID,
			&record.CourseTaskID,
			&record.TaskDescription,
			&record.CourseID,
			&record.CourseName,
		); err != nil {
			return nil, fmt.Errorf("list pending graded work: %w", err)
		}
		pending = append(pending, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending graded work: %w", err)
	}
	return pending, nil
}
