package templates

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/flash"
)

func signedInViewer() module.Viewer {
	return module.Viewer{UserID: "u1", Email: "parent@theschooldesk.app", SchoolID: "sch1"}
}

func TestRenderPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    string
		data    any
		markers []string
	}{
		{
			name:    "landing",
			page:    "landing.html",
			data:    nil,
			markers: []string{"Homeschool planning that stays out of the way.", "Create your school"},
		},
		{
			name:    "login",
			page:    "login.html",
			data:    LoginView{Email: "parent@theschooldesk.app"},
			markers: []string{`id="email"`, "parent@theschooldesk.app", `type="password"`},
		},
		{
			name:    "login errors",
			page:    "login.html",
			data:    LoginView{Errors: []string{"login.error.invalid"}},
			markers: []string{"Enter a correct email address and password."},
		},
		{
			name: "signup",
			page: "signup.html",
			data: SignupView{},
			markers: []string{
				"Create your account", `id="password_confirm"`,
			},
		},
		{
			name: "daily",
			page: "daily.html",
			data: DailyView{
				Date:        "Sep 7, 2026",
				HasYear:     true,
				HasStudents: true,
				Students: []DailyStudent{{
					Name:     "Alice Doe",
					Enrolled: true,
					Courses: []DailyCourse{{
						Name:        "Math",
						URL:         "/students/s1/courses/c1/",
						Task:        "Lesson 12",
						TaskMinutes: 30,
					}},
				}},
			},
			markers: []string{"Alice Doe", "Math", "Lesson 12", "Up next", "30 minutes"},
		},
		{
			name: "daily off day",
			page: "daily.html",
			data: DailyView{
				Date:        "Sep 8, 2026",
				IsOffDay:    true,
				HasYear:     true,
				HasStudents: true,
				Students:    []DailyStudent{{Name: "Alice Doe", Enrolled: true}},
			},
			markers: []string{"No school today.", "Showing the next school day, Sep 8, 2026."},
		},
		{
			name:    "daily without school year",
			page:    "daily.html",
			data:    DailyView{},
			markers: []string{"There is no school year that includes today."},
		},
		{
			name: "students",
			page: "students.html",
			data: StudentsView{Students: []StudentRow{
				{Name: "Alice Doe", YearName: "2026-2027"},
				{Name: "Bob Doe", EnrollURL: "/students/enroll/y1/"},
			}},
			markers: []string{"Enrolled in 2026-2027", "Not enrolled", "/students/enroll/y1/"},
		},
		{
			name:    "student form",
			page:    "student_form.html",
			data:    StudentFormView{FirstName: "Alice"},
			markers: []string{"Add a student", `value="Alice"`},
		},
		{
			name: "student course",
			page: "student_course.html",
			data: StudentCourseView{
				StudentName: "Alice Doe",
				CourseName:  "Math",
				ToggleURL:   "/students/s1/courses/c1/?completed_tasks=1",
				Items: []StudentCourseItem{
					{Description: "Lesson 12", Date: "Sep 7, 2026", Minutes: 30, URL: "/students/s1/tasks/t1/"},
				},
			},
			markers: []string{"Alice Doe: Math", "Lesson 12", "Planned", "Show completed tasks"},
		},
		{
			name: "coursework form",
			page: "coursework_form.html",
			data: CourseworkFormView{
				StudentName:     "Alice Doe",
				TaskDescription: "Lesson 12",
				Completed:       true,
				CompletedDate:   "2026-09-07",
			},
			markers: []string{"Lesson 12", `value="2026-09-07"`, "checked"},
		},
		{
			name:    "grade task",
			page:    "grade_task.html",
			data:    GradeTaskView{StudentName: "Alice Doe", TaskDescription: "Quiz 3", Score: "95"},
			markers: []string{"Grade task", "Quiz 3", `value="95"`},
		},
		{
			name: "grade",
			page: "grade.html",
			data: GradeView{Students: []GradeStudent{{
				ID:   "s1",
				Name: "Alice Doe",
				Work: []GradeWork{{ID: "gw1", Description: "Quiz 3", CourseName: "Math"}},
			}}},
			markers: []string{`name="graded_work-s1-gw1"`, "Math: Quiz 3", "Save grades"},
		},
		{
			name:    "grade empty",
			page:    "grade.html",
			data:    GradeView{},
			markers: []string{"There is no completed work to grade right now."},
		},
		{
			name: "enroll with student picker",
			page: "enroll.html",
			data: EnrollView{
				Students:    []Option{{ID: "s1", Label: "Alice Doe"}},
				GradeLevels: []Option{{ID: "gl1", Label: "3rd Grade"}},
			},
			markers: []string{"Enroll a student", `name="student"`, "3rd Grade"},
		},
		{
			name: "enroll fixed student",
			page: "enroll.html",
			data: EnrollView{
				StudentName: "Alice Doe",
				GradeLevels: []Option{{ID: "gl1", Label: "3rd Grade"}},
			},
			markers: []string{"Enroll Alice Doe"},
		},
		{
			name: "school years",
			page: "school_years.html",
			data: SchoolYearsView{Years: []SchoolYearRow{
				{Name: "2026-2027", URL: "/schools/school-years/y1/", Start: "Aug 31, 2026", End: "Jun 11, 2027"},
			}},
			markers: []string{"2026-2027", "Runs Aug 31, 2026 to Jun 11, 2027"},
		},
		{
			name:    "school year form",
			page:    "school_year_form.html",
			data:    SchoolYearFormView{Days: DayOptions(schedule.WeekDays)},
			markers: []string{"Add a school year", `value="2" checked`, "Monday"},
		},
		{
			name: "school year",
			page: "school_year.html",
			data: SchoolYearView{
				Name:         "2026-2027",
				Start:        "Aug 31, 2026",
				End:          "Jun 11, 2027",
				DayLabelKeys: DayLabelKeys(schedule.WeekDays),
				GradeLevels: []GradeLevelItem{{
					Name:    "3rd Grade",
					Courses: []CourseLink{{Name: "Math", URL: "/courses/c1/"}},
				}},
				Breaks:           []BreakItem{{Description: "Winter break", Start: "Dec 21, 2026", End: "Jan 1, 2027"}},
				AddGradeLevelURL: "/schools/school-years/y1/grade-levels/create/",
				AddBreakURL:      "/schools/school-years/y1/breaks/create/",
				AddCourseURL:     "/courses/create/?school_year=y1",
			},
			markers: []string{"3rd Grade", "Math", "Winter break", "Monday, Tuesday, Wednesday, Thursday, Friday"},
		},
		{
			name:    "grade level form",
			page:    "grade_level_form.html",
			data:    GradeLevelFormView{YearName: "2026-2027"},
			markers: []string{"Add a grade level", "2026-2027"},
		},
		{
			name:    "school break form",
			page:    "school_break_form.html",
			data:    BreakFormView{YearName: "2026-2027"},
			markers: []string{"Add a break", `id="start_date"`},
		},
		{
			name: "course form",
			page: "course_form.html",
			data: CourseFormView{
				YearName:    "2026-2027",
				Days:        DayOptions(schedule.Monday | schedule.Wednesday),
				GradeLevels: []CheckOption{{ID: "gl1", Label: "3rd Grade", Checked: true}},
			},
			markers: []string{"Add a course", `name="grade_levels" value="gl1" checked`},
		},
		{
			name: "course",
			page: "course.html",
			data: CourseView{
				Name:         "Math",
				DayLabelKeys: DayLabelKeys(schedule.Monday),
				YearName:     "2026-2027",
				YearURL:      "/schools/school-years/y1/",
				AddTaskURL:   "/courses/c1/tasks/create/",
				Tasks: []CourseTaskRow{{
					Description:     "Lesson 12",
					Minutes:         30,
					Graded:          true,
					ToggleGradedURL: "/courses/c1/tasks/t1/graded/",
				}},
			},
			markers: []string{"Lesson 12", "30 minutes", "Remove grade requirement"},
		},
		{
			name: "course task form",
			page: "course_task_form.html",
			data: CourseTaskFormView{
				CourseName:  "Math",
				GradeLevels: []Option{{ID: "gl1", Label: "3rd Grade"}},
			},
			markers: []string{"Add a task", "All grade levels", "3rd Grade"},
		},
		{
			name: "checklist",
			page: "checklist.html",
			data: ChecklistView{
				WeekStart:   "Sep 7, 2026",
				PrevURL:     "/teachers/checklist/2026/8/31/",
				NextURL:     "/teachers/checklist/2026/9/14/",
				ThisWeekURL: "/teachers/checklist/2026/9/7/",
				EditURL:     "/teachers/checklist/2026/9/7/edit/",
				HasYear:     true,
				Days: []ChecklistDay{{
					Date: "Monday, Sep 7",
					Students: []ChecklistStudent{{
						Name:    "Alice Doe",
						Courses: []ChecklistCourse{{Name: "Math", Task: "Lesson 12"}},
					}},
				}},
			},
			markers: []string{"Week of Sep 7, 2026", "Alice Doe", "Math: Lesson 12", "Edit checklist"},
		},
		{
			name: "checklist empty week",
			page: "checklist.html",
			data: ChecklistView{
				WeekStart:   "Sep 7, 2026",
				PrevURL:     "/teachers/checklist/2026/8/31/",
				NextURL:     "/teachers/checklist/2026/9/14/",
				ThisWeekURL: "/teachers/checklist/2026/9/7/",
			},
			markers: []string{"There is no school year that includes this week."},
		},
		{
			name: "checklist edit",
			page: "checklist_edit.html",
			data: ChecklistEditView{
				WeekStart: "Sep 7, 2026",
				ActionURL: "/teachers/checklist/2026/9/7/edit/",
				Students: []ChecklistEditStudent{{
					ID:      "s1",
					Name:    "Alice Doe",
					Courses: []CheckOption{{ID: "c1", Label: "Math", Checked: true}},
				}},
			},
			markers: []string{`name="courses-s1" value="c1" checked`, "Save checklist"},
		},
		{
			name: "settings",
			page: "settings.html",
			data: SettingsView{
				Email:     "parent@theschooldesk.app",
				Languages: LanguageOptions("en-US"),
			},
			markers: []string{"parent@theschooldesk.app", `value="pt-BR"`, `value="en-US" selected`},
		},
		{
			name:    "error",
			page:    "error.html",
			data:    ErrorView{Status: 404, TitleKey: "error.not_found.title", MessageKey: "error.not_found.message"},
			markers: []string{"Page not found", "We could not find the page you were looking for."},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := Render(&buf, tc.page, Page{
				Title:  "School Desk",
				Lang:   "en-US",
				Viewer: signedInViewer(),
				Data:   tc.data,
			})
			if err != nil {
				t.Fatalf("Render(%s) error: %v", tc.page, err)
			}
			html := buf.String()
			for _, marker := range tc.markers {
				if !strings.Contains(html, marker) {
					t.Fatalf("Render(%s) output missing %q\n%s", tc.page, marker, html)
				}
			}
		})
	}
}

func TestRenderLocalizesByLang(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, "daily.html", Page{
		Title: "School Desk",
		Lang:  "pt-BR",
		Data:  DailyView{},
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Plano diário") {
		t.Fatalf("expected pt-BR heading, got:\n%s", buf.String())
	}
}

func TestRenderUnknownLangFallsBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, "daily.html", Page{Lang: "fr", Data: DailyView{}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Daily plan") {
		t.Fatalf("expected default language heading, got:\n%s", buf.String())
	}
}

func TestRenderUnknownPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Render(&buf, "missing.html", Page{Lang: "en-US"}); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestLayoutNavByViewer(t *testing.T) {
	t.Parallel()

	var signedOut bytes.Buffer
	if err := Render(&signedOut, "landing.html", Page{Lang: "en-US"}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.Contains(signedOut.String(), "/daily/") {
		t.Fatal("signed-out layout should not link the daily plan")
	}
	if !strings.Contains(signedOut.String(), `href="/login"`) {
		t.Fatal("signed-out layout should link the login page")
	}

	var signedIn bytes.Buffer
	err := Render(&signedIn, "daily.html", Page{Lang: "en-US", Viewer: signedInViewer(), Data: DailyView{}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(signedIn.String(), `href="/daily/"`) {
		t.Fatal("signed-in layout should link the daily plan")
	}
	if !strings.Contains(signedIn.String(), `action="/logout"`) {
		t.Fatal("signed-in layout should carry the sign-out form")
	}
}

func TestLayoutNotice(t *testing.T) {
	t.Parallel()

	notice := flash.NoticeInfo("flash.enroll.no_students")
	var buf bytes.Buffer
	err := Render(&buf, "students.html", Page{
		Lang:   "en-US",
		Viewer: signedInViewer(),
		Notice: &notice,
		Data:   StudentsView{},
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "notice-info") {
		t.Fatal("expected notice kind class")
	}
	if !strings.Contains(buf.String(), "You need to add a student to enroll.") {
		t.Fatal("expected localized notice message")
	}
}

func TestWritePage(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	WritePage(recorder, http.StatusNotFound, "error.html", Page{
		Title: "School Desk",
		Lang:  "en-US",
		Data:  ErrorView{Status: 404, TitleKey: "error.not_found.title", MessageKey: "error.not_found.message"},
	})

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(recorder.Body.String(), "Page not found") {
		t.Fatal("expected rendered error body")
	}
}

func TestDayOptions(t *testing.T) {
	t.Parallel()

	options := DayOptions(schedule.Monday | schedule.Friday)
	if len(options) != 7 {
		t.Fatalf("len(options) = %d, want 7", len(options))
	}
	if options[0].LabelKey != "day.sunday" || options[0].Checked {
		t.Fatalf("unexpected sunday option: %+v", options[0])
	}
	if options[1].LabelKey != "day.monday" || !options[1].Checked {
		t.Fatalf("unexpected monday option: %+v", options[1])
	}
	if options[5].LabelKey != "day.friday" || !options[5].Checked {
		t.Fatalf("unexpected friday option: %+v", options[5])
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	options := LanguageOptions("pt-BR")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Tag != "en-US" || options[0].Active {
		t.Fatalf("unexpected en option: %+v", options[0])
	}
	if options[1].Tag != "pt-BR" || !options[1].Active {
		t.Fatalf("unexpected pt-BR option: %+v", options[1])
	}
}
