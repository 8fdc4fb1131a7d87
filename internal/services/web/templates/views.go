package templates

import (
	"fmt"
	"strconv"
	"time"

	"github.com/schooldesk/theschooldesk.app/internal/core/schedule"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	"golang.org/x/text/language"
)

// SchoolYearLabel names a school year by its calendar span, "2025-2026" or
// just "2026" when it opens and closes in the same year.
func SchoolYearLabel(start, end time.Time) string {
	if start.Year() == end.Year() {
		return strconv.Itoa(start.Year())
	}
	return fmt.Sprintf("%d-%d", start.Year(), end.Year())
}

// Option is a generic select or checkbox option.
type Option struct {
	ID    string
	Label string
}

// CheckOption is an Option with a checked state.
type CheckOption struct {
	ID      string
	Label   string
	Checked bool
}

// DayOption is a weekday checkbox in school year and course forms.
type DayOption struct {
	Value    int
	LabelKey string
	Checked  bool
}

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag      string
	LabelKey string
	Active   bool
}

var weekdayLabelKeys = map[schedule.Days]string{
	schedule.Sunday:    "day.sunday",
	schedule.Monday:    "day.monday",
	schedule.Tuesday:   "day.tuesday",
	schedule.Wednesday: "day.wednesday",
	schedule.Thursday:  "day.thursday",
	schedule.Friday:    "day.friday",
	schedule.Saturday:  "day.saturday",
}

var weekdayOrder = []schedule.Days{
	schedule.Sunday,
	schedule.Monday,
	schedule.Tuesday,
	schedule.Wednesday,
	schedule.Thursday,
	schedule.Friday,
	schedule.Saturday,
}

// DayOptions returns weekday checkboxes with the masked days checked.
func DayOptions(selected schedule.Days) []DayOption {
	options := make([]DayOption, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		options = append(options, DayOption{
			Value:    int(day),
			LabelKey: weekdayLabelKeys[day],
			Checked:  selected&day != 0,
		})
	}
	return options
}

// DayLabelKeys returns the label keys for the masked days in calendar order.
func DayLabelKeys(days schedule.Days) []string {
	var keys []string
	for _, day := range weekdayOrder {
		if days&day != 0 {
			keys = append(keys, weekdayLabelKeys[day])
		}
	}
	return keys
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(activeLang string) []LanguageOption {
	active := i18n.NormalizeTag(activeLang)
	options := make([]LanguageOption, 0, len(i18n.Supported()))
	for _, tag := range i18n.Supported() {
		options = append(options, LanguageOption{
			Tag:      tag.String(),
			LabelKey: languageLabelKey(tag),
			Active:   tag == active,
		})
	}
	return options
}

func languageLabelKey(tag language.Tag) string {
	switch tag.String() {
	case "pt-BR":
		return "nav.lang_pt_br"
	default:
		return "nav.lang_en"
	}
}

// LoginView backs the login page form.
type LoginView struct {
	Email  string
	Errors []string
}

// SignupView backs the signup page form.
type SignupView struct {
	Email  string
	Errors []string
}

// DailyView backs the daily plan page.
type DailyView struct {
	Date           string
	IsOffDay       bool
	HasYear        bool
	HasStudents    bool
	HasWorkToGrade bool
	Students       []DailyStudent
}

// DailyStudent is one student's slice of the daily plan.
type DailyStudent struct {
	Name      string
	Enrolled  bool
	EnrollURL string
	Courses   []DailyCourse
}

// DailyCourse is one course scheduled on the shown day.
type DailyCourse struct {
	Name        string
	URL         string
	Task        string
	TaskMinutes int
	Done        bool
}

// StudentsView backs the student index page.
type StudentsView struct {
	Students []StudentRow
}

// StudentRow is one student in the index listing.
type StudentRow struct {
	Name      string
	YearName  string
	EnrollURL string
}

// StudentFormView backs the add-student form.
type StudentFormView struct {
	FirstName string
	LastName  string
	Errors    []string
}

// StudentCourseView backs a student's course schedule page.
type StudentCourseView struct {
	StudentName   string
	CourseName    string
	ShowCompleted bool
	ToggleURL     string
	AddTaskURL    string
	Items         []StudentCourseItem
}

// StudentCourseItem is one task row on the course schedule. GradeURL is set
// when the task produces a score and the student already completed it.
type StudentCourseItem struct {
	Description string
	Date        string
	Minutes     int
	Completed   bool
	URL         string
	GradeURL    string
}

// CourseworkFormView backs the task completion form.
type CourseworkFormView struct {
	StudentName     string
	TaskDescription string
	Completed       bool
	CompletedDate   string
	Errors          []string
}

// GradeTaskView backs the single-task grading form.
type GradeTaskView struct {
	StudentName     string
	TaskDescription string
	Score           string
	Errors          []string
}

// GradeView backs the batch grading page.
type GradeView struct {
	Students []GradeStudent
}

// GradeStudent groups a student's ungraded completed work.
type GradeStudent struct {
	ID   string
	Name string
	Work []GradeWork
}

// GradeWork is one completed graded task awaiting a score.
type GradeWork struct {
	ID          string
	Description string
	CourseName  string
}

// EnrollView backs the enrollment form. StudentName is set when the
// student segment of the URL fixes the choice.
type EnrollView struct {
	StudentName        string
	Students           []Option
	SelectedStudent    string
	GradeLevels        []Option
	SelectedGradeLevel string
	Errors             []string
}

// SchoolYearsView backs the school year index page.
type SchoolYearsView struct {
	Years []SchoolYearRow
}

// SchoolYearRow is one school year in the index listing.
type SchoolYearRow struct {
	Name  string
	URL   string
	Start string
	End   string
}

// SchoolYearFormView backs the add-school-year form.
type SchoolYearFormView struct {
	Start  string
	End    string
	Days   []DayOption
	Errors []string
}

// SchoolYearView backs the school year detail page.
type SchoolYearView struct {
	Name             string
	Start            string
	End              string
	DayLabelKeys     []string
	GradeLevels      []GradeLevelItem
	Breaks           []BreakItem
	AddGradeLevelURL string
	AddBreakURL      string
	AddCourseURL     string
}

// GradeLevelItem is one grade level with its courses on the year page.
type GradeLevelItem struct {
	Name          string
	EnrolledCount int
	Courses       []CourseLink
}

// CourseLink points at a course detail page.
type CourseLink struct {
	Name     string
	URL      string
	Inactive bool
}

// BreakItem is one break row on the year page.
type BreakItem struct {
	Description string
	Start       string
	End         string
}

// GradeLevelFormView backs the add-grade-level form.
type GradeLevelFormView struct {
	YearName string
	Name     string
	Errors   []string
}

// BreakFormView backs the add-break form.
type BreakFormView struct {
	YearName    string
	Description string
	Start       string
	End         string
	Errors      []string
}

// CourseFormView backs the add-course form.
type CourseFormView struct {
	YearName    string
	Name        string
	Days        []DayOption
	GradeLevels []CheckOption
	Errors      []string
}

// CourseView backs the course detail page.
type CourseView struct {
	Name         string
	Inactive     bool
	DayLabelKeys []string
	YearName     string
	YearURL      string
	AddTaskURL   string
	Tasks        []CourseTaskRow
}

// CourseTaskRow is one task on the course detail page.
type CourseTaskRow struct {
	Description     string
	Minutes         int
	Graded          bool
	GradeLevel      string
	ToggleGradedURL string
}

// CourseTaskFormView backs the add-task form.
type CourseTaskFormView struct {
	CourseName         string
	Description        string
	Minutes            string
	Graded             bool
	GradeLevels        []Option
	SelectedGradeLevel string
	Errors             []string
}

// ChecklistView backs the weekly checklist page.
type ChecklistView struct {
	WeekStart   string
	PrevURL     string
	NextURL     string
	ThisWeekURL string
	EditURL     string
	HasYear     bool
	Days        []ChecklistDay
}

// ChecklistDay is one school day column on the checklist.
type ChecklistDay struct {
	Date     string
	Students []ChecklistStudent
}

// ChecklistStudent lists a student's scheduled courses for a day.
type ChecklistStudent struct {
	Name    string
	Courses []ChecklistCourse
}

// ChecklistCourse is one course slot on the checklist.
type ChecklistCourse struct {
	Name string
	Task string
}

// ChecklistEditView backs the checklist course picker.
type ChecklistEditView struct {
	WeekStart string
	ActionURL string
	Students  []ChecklistEditStudent
}

// ChecklistEditStudent lists a student's courses with excluded ones unchecked.
type ChecklistEditStudent struct {
	ID      string
	Name    string
	Courses []CheckOption
}

// SettingsView backs the settings page.
type SettingsView struct {
	Email     string
	Languages []LanguageOption
}

// ErrorView backs the shared error page.
type ErrorView struct {
	Status     int
	TitleKey   string
	MessageKey string
}
