package schools

import (
	"context"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

type service struct {
	store storage.Store
}

func (s service) yearsIndex(ctx context.Context, schoolID string) (templates.SchoolYearsView, error) {
	view := templates.SchoolYearsView{}

	years, err := s.store.ListSchoolYears(ctx, schoolID)
	if err != nil {
		return view, err
	}
	for _, year := range years {
		view.Years = append(view.Years, templates.SchoolYearRow{
			Name:  templates.SchoolYearLabel(year.StartDate, year.EndDate),
			URL:   routepath.SchoolYear(year.ID),
			Start: year.StartDate.Format(dateLayout),
			End:   year.EndDate.Format(dateLayout),
		})
	}
	return view, nil
}

// yearDetail assembles a year's grade levels, the courses each one takes,
// and the year's breaks.
func (s service) yearDetail(ctx context.Context, year storage.SchoolYear) (templates.SchoolYearView, error) {
	view := templates.SchoolYearView{
		Name:             templates.SchoolYearLabel(year.StartDate, year.EndDate),
		Start:            year.StartDate.Format(dateLayout),
		End:              year.EndDate.Format(dateLayout),
		DayLabelKeys:     templates.DayLabelKeys(year.Days),
		AddGradeLevelURL: routepath.GradeLevelCreate(year.ID),
		AddBreakURL:      routepath.SchoolBreakCreate(year.ID),
		AddCourseURL:     routepath.CourseCreate + "?" + routepath.CourseSchoolYearParam + "=" + year.ID,
	}

	levels, err := s.store.ListGradeLevels(ctx, year.ID)
	if err != nil {
		return view, err
	}
	enrollments, err := s.store.ListEnrollmentsByYear(ctx, year.ID)
	if err != nil {
		return view, err
	}
	enrolledByLevel := make(map[string]int, len(levels))
	for _, enrollment := range enrollments {
		enrolledByLevel[enrollment.GradeLevelID]++
	}

	for _, level := range levels {
		item := templates.GradeLevelItem{
			Name:          level.Name,
			EnrolledCount: enrolledByLevel[level.ID],
		}
		courses, err := s.store.ListCoursesByGradeLevel(ctx, level.ID)
		if err != nil {
			return view, err
		}
		for _, course := range courses {
			item.Courses = append(item.Courses, templates.CourseLink{
				Name:     course.Name,
				URL:      routepath.Course(course.ID),
				Inactive: !course.IsActive,
			})
		}
		view.GradeLevels = append(view.GradeLevels, item)
	}

	breaks, err := s.store.ListSchoolBreaks(ctx, year.ID)
	if err != nil {
		return view, err
	}
	for _, pause := range breaks {
		view.Breaks = append(view.Breaks, templates.BreakItem{
			Description: pause.Description,
			Start:       pause.StartDate.Format(dateLayout),
			End:         pause.EndDate.Format(dateLayout),
		})
	}
	return view, nil
}
