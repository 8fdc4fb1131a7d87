// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	Root         = "/"
	Login        = "/login"
	Logout       = "/logout"
	SignUp       = "/signup"
	Health       = "/healthz"
	StaticPrefix = "/static/"

	Daily = "/daily/"

	StudentsPrefix              = "/students/"
	StudentCreate               = "/students/create/"
	StudentsGrade               = "/students/grade/"
	StudentCoursePattern        = StudentsPrefix + "{studentID}/courses/{courseID}/{$}"
	StudentTaskPattern          = StudentsPrefix + "{studentID}/tasks/{taskID}/{$}"
	StudentTaskGradePattern     = StudentsPrefix + "{studentID}/tasks/{taskID}/grade/{$}"
	EnrollmentCreatePattern     = StudentsPrefix + "enroll/{yearID}/{$}"
	StudentEnrollCreatePattern  = StudentsPrefix + "{studentID}/enroll/{yearID}/{$}"
	GradeTaskNextParam          = "next"
	StudentCourseCompletedParam = "completed_tasks"

	SchoolsPrefix            = "/schools/"
	SchoolYears              = "/schools/school-years/"
	SchoolYearCreate         = "/schools/school-years/create/"
	SchoolYearPattern        = SchoolYears + "{yearID}/{$}"
	GradeLevelCreatePattern  = SchoolYears + "{yearID}/grade-levels/create/{$}"
	SchoolBreakCreatePattern = SchoolYears + "{yearID}/breaks/create/{$}"

	CoursesPrefix           = "/courses/"
	CourseCreate            = "/courses/create/"
	CoursePattern           = CoursesPrefix + "{courseID}/{$}"
	CourseTaskCreatePattern = CoursesPrefix + "{courseID}/tasks/create/{$}"
	CourseTaskGradedPattern = CoursesPrefix + "{courseID}/tasks/{taskID}/graded/{$}"
	CourseSchoolYearParam   = "school_year"

	TeachersPrefix       = "/teachers/"
	ChecklistIndex       = TeachersPrefix + "checklist/"
	ChecklistPattern     = TeachersPrefix + "checklist/{year}/{month}/{day}/{$}"
	ChecklistEditPattern = TeachersPrefix + "checklist/{year}/{month}/{day}/edit/{$}"

	SettingsPrefix        = "/settings/"
	SettingsLanguage      = "/settings/language"
	SettingsLanguageParam = "language"
)

// ProtectedPrefixes returns the mount prefixes that require a signed-in user.
func ProtectedPrefixes() []string {
	return []string{Daily, StudentsPrefix, SchoolsPrefix, CoursesPrefix, TeachersPrefix, SettingsPrefix}
}

// IsProtected reports whether the prefix belongs to the authenticated app surface.
func IsProtected(prefix string) bool {
	for _, protected := range ProtectedPrefixes() {
		if prefix == protected {
			return true
		}
	}
	return false
}

// StudentCourse returns the per-student course route.
func StudentCourse(studentID, courseID string) string {
	return StudentsPrefix + escapeSegment(studentID) + "/courses/" + escapeSegment(courseID) + "/"
}

// StudentTask returns the coursework form route for one task.
func StudentTask(studentID, taskID string) string {
	return StudentsPrefix + escapeSegment(studentID) + "/tasks/" + escapeSegment(taskID) + "/"
}

// StudentTaskGrade returns the single-task grade form route.
func StudentTaskGrade(studentID, taskID string) string {
	return StudentTask(studentID, taskID) + "grade/"
}

// EnrollmentCreate returns the school-year enrollment route.
func EnrollmentCreate(yearID string) string {
	return StudentsPrefix + "enroll/" + escapeSegment(yearID) + "/"
}

// StudentEnrollmentCreate returns the per-student enrollment route.
func StudentEnrollmentCreate(studentID, yearID string) string {
	return StudentsPrefix + escapeSegment(studentID) + "/enroll/" + escapeSegment(yearID) + "/"
}

// SchoolYear returns the school year detail route.
func SchoolYear(yearID string) string {
	return SchoolYears + escapeSegment(yearID) + "/"
}

// GradeLevelCreate returns the grade level form route for a school year.
func GradeLevelCreate(yearID string) string {
	return SchoolYear(yearID) + "grade-levels/create/"
}

// SchoolBreakCreate returns the break form route for a school year.
func SchoolBreakCreate(yearID string) string {
	return SchoolYear(yearID) + "breaks/create/"
}

// Course returns the course detail route.
func Course(courseID string) string {
	return CoursesPrefix + escapeSegment(courseID) + "/"
}

// CourseTaskCreate returns the task form route for a course.
func CourseTaskCreate(courseID string) string {
	return Course(courseID) + "tasks/create/"
}

// CourseTaskGraded returns the graded-work toggle route for a task.
func CourseTaskGraded(courseID, taskID string) string {
	return Course(courseID) + "tasks/" + escapeSegment(taskID) + "/graded/"
}

// Checklist returns the weekly checklist route for a date.
func Checklist(day time.Time) string {
	return fmt.Sprintf("%s%d/%d/%d/", ChecklistIndex, day.Year(), int(day.Month()), day.Day())
}

// ChecklistEdit returns the checklist exclusion form route for a date.
func ChecklistEdit(day time.Time) string {
	return Checklist(day) + "edit/"
}

func escapeSegment(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
