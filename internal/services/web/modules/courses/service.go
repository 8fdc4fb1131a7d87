package courses

import (
	"context"

	"github.com/schooldesk/theschooldesk.app/internal/services/web/routepath"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/storage"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/templates"
)

type service struct {
	store storage.Store
}

// detail assembles the course page: the year it belongs to and every task
// with its graded flag and grade-level restriction.
func (s service) detail(ctx context.Context, schoolID string, course storage.Course) (templates.CourseView, error) {
	year, err := s.store.GetSchoolYear(ctx, course.SchoolYearID, schoolID)
	if err != nil {
		return templates.CourseView{}, err
	}
	view := templates.CourseView{
		Name:         course.Name,
		Inactive:     !course.IsActive,
		DayLabelKeys: templates.DayLabelKeys(course.Days),
		YearName:     templates.SchoolYearLabel(year.StartDate, year.EndDate),
		YearURL:      routepath.SchoolYear(year.ID),
		AddTaskURL:   routepath.CourseTaskCreate(course.ID),
	}

	tasks, err := s.store.ListCourseTasks(ctx, course.ID)
	if err != nil {
		return view, err
	}
	gradedWork, err := s.store.ListGradedWorkByCourse(ctx, course.ID)
	if err != nil {
		return view, err
	}
	graded := make(map[string]bool, len(gradedWork))
	for _, work := range gradedWork {
		graded[work.CourseTaskID] = true
	}
	levels, err := s.store.ListGradeLevels(ctx, year.ID)
	if err != nil {
		return view, err
	}
	levelNames := make(map[string]string, len(levels))
	for _, level := range levels {
		levelNames[level.ID] = level.Name
	}

	for _, task := range tasks {
		view.Tasks = append(view.Tasks, templates.CourseTaskRow{
			Description:     task.Description,
			Minutes:         task.DurationMinutes,
			Graded:          graded[task.ID],
			GradeLevel:      levelNames[task.GradeLevelID],
			ToggleGradedURL: routepath.CourseTaskGraded(course.ID, task.ID),
		})
	}
	return view, nil
}

// levelOptions returns the year's grade levels as checkboxes, checking the
// ones named in selected, plus the selections that actually belong to the
// year. Forged selections are dropped.
func (s service) levelOptions(ctx context.Context, yearID string, selected []string) ([]templates.CheckOption, []string, error) {
	levels, err := s.store.ListGradeLevels(ctx, yearID)
	if err != nil {
		return nil, nil, err
	}
	wanted := make(map[string]bool, len(selected))
	for _, levelID := range selected {
		wanted[levelID] = true
	}

	var options []templates.CheckOption
	var known []string
	for _, level := range levels {
		checked := wanted[level.ID]
		options = append(options, templates.CheckOption{
			ID:      level.ID,
			Label:   level.Name,
			Checked: checked,
		})
		if checked {
			known = append(known, level.ID)
		}
	}
	return options, known, nil
}

// taskLevelOptions returns the grade levels a task restriction can point at:
// the ones the course is taught to.
func (s service) taskLevelOptions(ctx context.Context, course storage.Course) ([]templates.Option, error) {
	levels, err := s.store.ListGradeLevels(ctx, course.SchoolYearID)
	if err != nil {
		return nil, err
	}
	var options []templates.Option
	for _, level := range levels {
		if !taughtTo(course, level.ID) {
			continue
		}
		options = append(options, templates.Option{ID: level.ID, Label: level.Name})
	}
	return options, nil
}
