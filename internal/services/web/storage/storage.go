// Package storage defines the persistence contracts for the homeschool
// planner: accounts, school structure, courses, and per-student records.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrConflict indicates a uniqueness rule was violated.
var ErrConflict = errors.New("record conflict")

// User is an account holder. Every user owns exactly one school.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// School groups everything one family manages.
type School struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchoolYear is a date-bounded run of schooling with a weekday mask.
type SchoolYear struct {
	ID        string
	SchoolID  string
	StartDate time.Time
	EndDate   time.Time
	Days      schedule.Days
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Calendar converts the year and its breaks into a schedule calendar.
func (y SchoolYear) Calendar(breaks []SchoolBreak) schedule.Calendar {
	cal := schedule.Calendar{
		Start: y.StartDate,
		End:   y.EndDate,
		Days:  y.Days,
	}
	for _, b := range breaks {
		cal.Breaks = append(cal.Breaks, schedule.Break{Start: b.StartDate, End: b.EndDate})
	}
	return cal
}

// Contains reports whether day falls inside the school year.
func (y SchoolYear) Contains(day time.Time) bool {
	day = schedule.DateOf(day)
	return !day.Before(schedule.DateOf(y.StartDate)) && !day.After(schedule.DateOf(y.EndDate))
}

// GradeLevel is a named tier of a school year that students enroll into.
type GradeLevel struct {
	ID           string
	SchoolYearID string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SchoolBreak pauses a school year for a date range.
type SchoolBreak struct {
	ID           string
	SchoolYearID string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Course is a subject taught on a weekday mask to one or more grade levels
// of a single school year.
type Course struct {
	ID            string
	Name          string
	Days          schedule.Days
	IsActive      bool
	SchoolYearID  string
	GradeLevelIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CourseTask is one unit of work inside a course. A task restricted to a
// grade level is only visible to students enrolled in that grade level.
type CourseTask struct {
	ID              string
	CourseID        string
	Description     string
	DurationMinutes int
	Position        int
	GradeLevelID    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VisibleTo reports whether the task applies to a student enrolled in the
// given grade level.
func (t CourseTask) VisibleTo(gradeLevelID string) bool {
	return t.GradeLevelID == "" || t.GradeLevelID == gradeLevelID
}

// GradedWork marks a course task as producing a score.
type GradedWork struct {
	ID           string
	CourseTaskID string
	CreatedAt    time.Time
}

// Student is a child being schooled.
type Student struct {
	ID        string
	SchoolID  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins the student's names for display.
func (s Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// Enrollment places a student in a grade level for one school year.
type Enrollment struct {
	ID           string
	StudentID    string
	GradeLevelID string
	CreatedAt    time.Time
}

// Coursework records that a student completed a task on a date.
type Coursework struct {
	ID            string
	StudentID     string
	CourseTaskID  string
	CompletedDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Grade scores a student's graded work.
type Grade struct {
	ID           string
	StudentID    string
	GradedWorkID string
	Score        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingGradedWork is graded work a student finished but has no grade for.
type PendingGradedWork struct {
	GradedWorkID    string
	CourseTaskID    string
	TaskDescription string
	CourseID        string
	CourseName      string
}

// UserStore persists account records.
type UserStore interface {
	PutUser(ctx context.Context, record User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

// SchoolStore persists schools.
type SchoolStore interface {
	PutSchool(ctx context.Context, record School) error
	GetSchoolByUser(ctx context.Context, userID string) (School, error)
}

// SchoolYearStore persists school years and their structure. Reads that take
// a schoolID return ErrNotFound for records owned by another school.
type SchoolYearStore interface {
	PutSchoolYear(ctx context.Context, record SchoolYear) error
	GetSchoolYear(ctx context.Context, yearID string, schoolID string) (SchoolYear, error)
	ListSchoolYears(ctx context.Context, schoolID string) ([]SchoolYear, error)
	PutGradeLevel(ctx context.Context, record GradeLevel) error
	GetGradeLevel(ctx context.Context, gradeLevelID string, schoolID string) (GradeLevel, error)
	ListGradeLevels(ctx context.Context, yearID string) ([]GradeLevel, error)
	PutSchoolBreak(ctx context.Context, record SchoolBreak) error
	ListSchoolBreaks(ctx context.Context, yearID string) ([]SchoolBreak, error)
}

// CourseStore persists courses, their tasks, and graded work.
type CourseStore interface {
	PutCourse(ctx context.Context, record Course) error
	GetCourse(ctx context.Context, courseID string, schoolID string) (Course, error)
	ListCoursesByGradeLevel(ctx context.Context, gradeLevelID string) ([]Course, error)
	ListCoursesBySchoolYear(ctx context.Context, yearID string) ([]Course, error)
	PutCourseTask(ctx context.Context, record CourseTask) error
	GetCourseTask(ctx context.Context, taskID string, schoolID string) (CourseTask, error)
	ListCourseTasks(ctx context.Context, courseID string) ([]CourseTask, error)
	PutGradedWork(ctx context.Context, record GradedWork) error
	GetGradedWorkByTask(ctx context.Context, taskID string) (GradedWork, error)
	DeleteGradedWorkByTask(ctx context.Context, taskID string) error
	ListGradedWorkByCourse(ctx context.Context, courseID string) ([]GradedWork, error)
}

// StudentStore persists students and their school records.
type StudentStore interface {
	PutStudent(ctx context.Context, record Student) error
	GetStudent(ctx context.Context, studentID string, schoolID string) (Student, error)
	ListStudents(ctx context.Context, schoolID string) ([]Student, error)
	PutEnrollment(ctx context.Context, record Enrollment) error
	GetEnrollmentByYear(ctx context.Context, studentID string, yearID string) (Enrollment, error)
	ListEnrollmentsByYear(ctx context.Context, yearID string) ([]Enrollment, error)
	PutCoursework(ctx context.Context, record Coursework) error
	GetCoursework(ctx context.Context, studentID string, taskID string) (Coursework, error)
	ListCourseworkByCourse(ctx context.Context, studentID string, courseID string) ([]Coursework, error)
	DeleteCoursework(ctx context.Context, studentID string, taskID string) error
	PutGrade(ctx context.Context, record Grade) error
	GetGrade(ctx context.Context, studentID string, gradedWorkID string) (Grade, error)
	ListPendingGradedWork(ctx context.Context, studentID string) ([]PendingGradedWork, error)
}

// ChecklistStore persists which courses a school year's printable checklist
// leaves out.
type ChecklistStore interface {
	ReplaceChecklistExclusions(ctx context.Context, yearID string, courseIDs []string) error
	ListChecklistExclusions(ctx context.Context, yearID string) ([]string, error)
}

// Store is the full persistence surface the web service composes over.
type Store interface {
	UserStore
	SchoolStore
	SchoolYearStore
	CourseStore
	StudentStore
	ChecklistStore
	Close() error
}
