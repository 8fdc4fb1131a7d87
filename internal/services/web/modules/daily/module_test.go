package daily

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	module "github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage/sqlite"
)

type world struct {
	deps  module.Dependencies
	store *sqlite.Store
}

func newWorld(t *testing.T, today time.Time) world {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})

	ctx := context.Background()
	if err := store.PutUser(ctx, storage.User{ID: "user-1", Email: "parent@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := store.PutSchool(ctx, storage.School{ID: "school-1", UserID: "user-1"}); err != nil {
		t.Fatalf("put school: %v", err)
	}

	deps := module.Dependencies{
		Store: store,
		Clock: func() time.Time { return today },
		ResolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{UserID: "user-1", Email: "parent@example.com", SchoolID: "school-1"}
		},
	}
	return world{deps: deps, store: store}
}

func (w world) seedYear(t *testing.T) storage.SchoolYear {
	t.Helper()
	year := storage.SchoolYear{
		ID:        "year-1",
		SchoolID:  "school-1",
		StartDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC),
		Days:      schedule.WeekDays,
	}
	if err := w.store.PutSchoolYear(context.Background(), year); err != nil {
		t.Fatalf("put school year: %v", err)
	}
	return year
}

func (w world) seedEnrolledStudent(t *testing.T) (storage.Student, storage.GradeLevel) {
	t.Helper()
	ctx := context.Background()
	grade := storage.GradeLevel{ID: "grade-1", SchoolYearID: "year-1", Name: "3rd Grade"}
	if err := w.store.PutGradeLevel(ctx, grade); err != nil {
		t.Fatalf("put grade level: %v", err)
	}
	student := storage.Student{ID: "student-1", SchoolID: "school-1", FirstName: "Ada", LastName: "Jones"}
	if err := w.store.PutStudent(ctx, student); err != nil {
		t.Fatalf("put student: %v", err)
	}
	enrollment := storage.Enrollment{ID: "enroll-1", StudentID: "student-1", GradeLevelID: "grade-1"}
	if err := w.store.PutEnrollment(ctx, enrollment); err != nil {
		t.Fatalf("put enrollment: %v", err)
	}
	return student, grade
}

func (w world) seedCourseWithTasks(t *testing.T) storage.Course {
	t.Helper()
	ctx := context.Background()
	course := storage.Course{
		ID:            "course-1",
		Name:          "Math",
		Days:          schedule.WeekDays,
		IsActive:      true,
		SchoolYearID:  "year-1",
		GradeLevelIDs: []string{"grade-1"},
	}
	if err := w.store.PutCourse(ctx, course); err != nil {
		t.Fatalf("put course: %v", err)
	}
	tasks := []storage.CourseTask{
		{ID: "task-1", CourseID: "course-1", Description: "Lesson 1: Counting", DurationMinutes: 30, Position: 1},
		{ID: "task-2", CourseID: "course-1", Description: "Lesson 2: Adding", DurationMinutes: 30, Position: 2},
	}
	for _, task := range tasks {
		if err := w.store.PutCourseTask(ctx, task); err != nil {
			t.Fatalf("put course task: %v", err)
		}
	}
	return course
}

func getDaily(t *testing.T, deps module.Dependencies) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/daily/", nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestDailyWithoutYearPromptsCreate(t *testing.T) {
	t.Parallel()

	w := newWorld(t, time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC))
	rr := getDaily(t, w.deps)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "There is no school year that includes today.") {
		t.Fatal("body is missing the no-year prompt")
	}
}

func TestDailyWithoutStudentsPromptsAdd(t *testing.T) {
	t.Parallel()

	w := newWorld(t, time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC))
	w.seedYear(t)
	rr := getDaily(t, w.deps)

	if !strings.Contains(rr.Body.String(), "Add a student to start planning") {
		t.Fatal("body is missing the add-student prompt")
	}
}

func TestDailyShowsUpNextTaskPerCourse(t *testing.T) {
	t.Parallel()

	w := newWorld(t, time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC))
	w.seedYear(t)
	w.seedEnrolledStudent(t)
	w.seedCourseWithTasks(t)

	rr := getDaily(t, w.deps)
	body := rr.Body.String()

	if !strings.Contains(body, "Ada Jones") {
		t.Fatal("body is missing the student name")
	}
	if !strings.Contains(body, "Math") {
		t.Fatal("body is missing the course name")
	}
	if !strings.Contains(body, "Lesson 1: Counting") {
		t.Fatal("body is missing the up-next task")
	}
	if !strings.Contains(body, "30 minutes") {
		t.Fatal("body is missing the task duration")
	}
	if !strings.Contains(body, "/students/student-1/courses/course-1/") {
		t.Fatal("body is missing the course schedule link")
	}
}

func TestDailyMarksCourseCaughtUpAfterCompletingToday(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	w := newWorld(t, today)
	w.seedYear(t)
	w.seedEnrolledStudent(t)
	w.seedCourseWithTasks(t)

	err := w.store.PutCoursework(context.Background(), storage.Coursework{
		ID:            "work-1",
		StudentID:     "student-1",
		CourseTaskID:  "task-1",
		CompletedDate: today,
	})
	if err != nil {
		t.Fatalf("put coursework: %v", err)
	}

	rr := getDaily(t, w.deps)
	body := rr.Body.String()

	if !strings.Contains(body, "All caught up") {
		t.Fatal("course should show as caught up after completing today's task")
	}
	if strings.Contains(body, "Lesson 2: Adding") {
		t.Fatal("tomorrow's task should not appear today")
	}
}

func TestDailyOffDayShowsNextSchoolDay(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	w := newWorld(t, saturday)
	w.seedYear(t)
	w.seedEnrolledStudent(t)

	rr := getDaily(t, w.deps)
	body := rr.Body.String()

	if !strings.Contains(body, "No school today.") {
		t.Fatal("body is missing the off-day notice")
	}
	if !strings.Contains(body, "2026-03-09") {
		t.Fatal("body is missing the next school day date")
	}
}

func TestDailyUnenrolledStudentOffersEnroll(t *testing.T) {
	t.Parallel()

	w := newWorld(t, time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC))
	w.seedYear(t)
	if err := w.store.PutStudent(context.Background(), storage.Student{
		ID: "student-1", SchoolID: "school-1", FirstName: "Ada", LastName: "Jones",
	}); err != nil {
		t.Fatalf("put student: %v", err)
	}

	rr := getDaily(t, w.deps)
	body := rr.Body.String()

	if !strings.Contains(body, "Not enrolled in this school year.") {
		t.Fatal("body is missing the not-enrolled notice")
	}
	if !strings.Contains(body, "/students/student-1/enroll/year-1/") {
		t.Fatal("body is missing the enroll link")
	}
}

func TestDailyShowsGradeBannerWhenWorkPending(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	w := newWorld(t, today)
	w.seedYear(t)
	w.seedEnrolledStudent(t)
	w.seedCourseWithTasks(t)

	ctx := context.Background()
	if err := w.store.PutGradedWork(ctx, storage.GradedWork{ID: "graded-1", CourseTaskID: "task-1"}); err != nil {
		t.Fatalf("put graded work: %v", err)
	}
	err := w.store.PutCoursework(ctx, storage.Coursework{
		ID:            "work-1",
		StudentID:     "student-1",
		CourseTaskID:  "task-1",
		CompletedDate: today.AddDate(0, 0, -1),
	})
	if err != nil {
		t.Fatalf("put coursework: %v", err)
	}

	rr := getDaily(t, w.deps)
	if !strings.Contains(rr.Body.String(), "completed work waiting to be graded") {
		t.Fatal("body is missing the grade banner")
	}
}

func TestDailySlashlessPathRedirects(t *testing.T) {
	t.Parallel()

	w := newWorld(t, time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC))
	mount, err := New().Mount(w.deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/daily", nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMovedPermanently)
	}
	if got := rr.Header().Get("Location"); got != "/daily/" {
		t.Fatalf("Location = %q, want %q", got, "/daily/")
	}
}
