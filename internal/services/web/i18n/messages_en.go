package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Page titles. The argument is the app name.
	message.SetString(lang, "title.landing", "%s | Homeschool planning that stays out of the way")
	message.SetString(lang, "title.login", "%s | Sign In")
	message.SetString(lang, "title.signup", "%s | Create Account")
	message.SetString(lang, "title.daily", "%s | Daily")
	message.SetString(lang, "title.students", "%s | Students")
	message.SetString(lang, "title.student_create", "%s | Add Student")
	message.SetString(lang, "title.student_course", "%s | Course Schedule")
	message.SetString(lang, "title.coursework", "%s | Task")
	message.SetString(lang, "title.grade", "%s | Grade")
	message.SetString(lang, "title.enroll", "%s | Enroll")
	message.SetString(lang, "title.school_years", "%s | School Years")
	message.SetString(lang, "title.school_year_create", "%s | Add School Year")
	message.SetString(lang, "title.school_year", "%s | School Year")
	message.SetString(lang, "title.grade_level_create", "%s | Add Grade Level")
	message.SetString(lang, "title.school_break_create", "%s | Add Break")
	message.SetString(lang, "title.course_create", "%s | Add Course")
	message.SetString(lang, "title.course", "%s | Course")
	message.SetString(lang, "title.course_task_create", "%s | Add Task")
	message.SetString(lang, "title.checklist", "%s | Checklist")
	message.SetString(lang, "title.checklist_edit", "%s | Edit Checklist")
	message.SetString(lang, "title.settings", "%s | Settings")
	message.SetString(lang, "title.error", "%s | Error")

	// Navigation
	message.SetString(lang, "nav.daily", "Daily")
	message.SetString(lang, "nav.students", "Students")
	message.SetString(lang, "nav.school_years", "School Years")
	message.SetString(lang, "nav.checklist", "Checklist")
	message.SetString(lang, "nav.settings", "Settings")
	message.SetString(lang, "nav.sign_in", "Sign in")
	message.SetString(lang, "nav.sign_up", "Sign up")
	message.SetString(lang, "nav.sign_out", "Sign out")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Shared form labels
	message.SetString(lang, "form.name", "Name")
	message.SetString(lang, "form.description", "Description")
	message.SetString(lang, "form.start_date", "Start date")
	message.SetString(lang, "form.end_date", "End date")
	message.SetString(lang, "form.days", "Days of the week")
	message.SetString(lang, "form.save", "Save")
	message.SetString(lang, "form.cancel", "Cancel")
	message.SetString(lang, "form.error.name_required", "Name is required.")
	message.SetString(lang, "form.error.description_required", "Description is required.")
	message.SetString(lang, "form.error.start_required", "Start date is required.")
	message.SetString(lang, "form.error.end_required", "End date is required.")
	message.SetString(lang, "form.error.date_format", "Enter a valid date.")
	message.SetString(lang, "form.error.date_order", "The start date must be before the end date.")

	// Weekday labels
	message.SetString(lang, "day.sunday", "Sunday")
	message.SetString(lang, "day.monday", "Monday")
	message.SetString(lang, "day.tuesday", "Tuesday")
	message.SetString(lang, "day.wednesday", "Wednesday")
	message.SetString(lang, "day.thursday", "Thursday")
	message.SetString(lang, "day.friday", "Friday")
	message.SetString(lang, "day.saturday", "Saturday")

	// Landing page
	message.SetString(lang, "landing.tagline", "Homeschool planning that stays out of the way.")
	message.SetString(lang, "landing.lede", "Plan school years, schedule courses, and track your students' daily work without fighting your tools.")
	message.SetString(lang, "landing.cta_signup", "Create your school")
	message.SetString(lang, "landing.cta_login", "Sign in")
	message.SetString(lang, "landing.feature.planning.title", "Forecast the year")
	message.SetString(lang, "landing.feature.planning.body", "Set school days and breaks once. Every course schedules its tasks around them automatically.")
	message.SetString(lang, "landing.feature.grading.title", "Grade as you go")
	message.SetString(lang, "landing.feature.grading.body", "Mark work graded and score it in one batch whenever you are ready.")
	message.SetString(lang, "landing.feature.checklist.title", "Print the week")
	message.SetString(lang, "landing.feature.checklist.body", "A weekly checklist per student, trimmed to only the courses you pick.")
	message.SetString(lang, "meta.description", "Homeschool planning software for scheduling courses, tracking daily work, and grading.")

	// Login page
	message.SetString(lang, "login.heading", "Sign in")
	message.SetString(lang, "login.email", "Email address")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.signup_prompt", "Need an account?")
	message.SetString(lang, "login.signup_link", "Create one")
	message.SetString(lang, "login.error.invalid", "Enter a correct email address and password.")

	// Signup page
	message.SetString(lang, "signup.heading", "Create your account")
	message.SetString(lang, "signup.email", "Email address")
	message.SetString(lang, "signup.password", "Password")
	message.SetString(lang, "signup.password_confirm", "Confirm password")
	message.SetString(lang, "signup.submit", "Create account")
	message.SetString(lang, "signup.login_prompt", "Already have an account?")
	message.SetString(lang, "signup.login_link", "Sign in")
	message.SetString(lang, "signup.error.email_required", "Enter a valid email address.")
	message.SetString(lang, "signup.error.email_taken", "An account with that email already exists.")
	message.SetString(lang, "signup.error.password_length", "Password must be at least 8 characters.")
	message.SetString(lang, "signup.error.password_mismatch", "The passwords do not match.")

	// Daily plan
	message.SetString(lang, "daily.heading", "Daily plan")
	message.SetString(lang, "daily.no_school_year", "There is no school year that includes today.")
	message.SetString(lang, "daily.create_school_year", "Create a school year")
	message.SetString(lang, "daily.no_students", "Add a student to start planning their school days.")
	message.SetString(lang, "daily.add_student", "Add a student")
	message.SetString(lang, "daily.off_day", "No school today.")
	message.SetString(lang, "daily.next_school_day", "Showing the next school day, %s.")
	message.SetString(lang, "daily.no_courses", "No courses are scheduled for this day.")
	message.SetString(lang, "daily.not_enrolled", "Not enrolled in this school year.")
	message.SetString(lang, "daily.enroll", "Enroll")
	message.SetString(lang, "daily.up_next", "Up next")
	message.SetString(lang, "daily.all_done", "All caught up")
	message.SetString(lang, "daily.minutes", "%d minutes")
	message.SetString(lang, "daily.grade_banner", "You have completed work waiting to be graded.")
	message.SetString(lang, "daily.grade_link", "Grade now")

	// Students
	message.SetString(lang, "students.heading", "Students")
	message.SetString(lang, "students.add", "Add student")
	message.SetString(lang, "students.empty", "You have not added any students yet.")
	message.SetString(lang, "students.col.student", "Student")
	message.SetString(lang, "students.col.enrollment", "Enrollment")
	message.SetString(lang, "students.enrolled_in", "Enrolled in %s")
	message.SetString(lang, "students.not_enrolled", "Not enrolled")
	message.SetString(lang, "students.enroll", "Enroll")

	// Student create
	message.SetString(lang, "student_create.heading", "Add a student")
	message.SetString(lang, "student_create.first_name", "First name")
	message.SetString(lang, "student_create.last_name", "Last name")
	message.SetString(lang, "student_create.submit", "Add student")
	message.SetString(lang, "student_create.error.first_name_required", "First name is required.")
	message.SetString(lang, "student_create.error.last_name_required", "Last name is required.")

	// Student course schedule
	message.SetString(lang, "student_course.col.task", "Task")
	message.SetString(lang, "student_course.col.date", "Date")
	message.SetString(lang, "student_course.col.status", "Status")
	message.SetString(lang, "student_course.completed", "Completed")
	message.SetString(lang, "student_course.planned", "Planned")
	message.SetString(lang, "student_course.mark_done", "Mark done")
	message.SetString(lang, "student_course.undo", "Undo")
	message.SetString(lang, "student_course.show_completed", "Show completed tasks")
	message.SetString(lang, "student_course.hide_completed", "Hide completed tasks")
	message.SetString(lang, "student_course.empty", "This course has no tasks yet.")
	message.SetString(lang, "student_course.add_task", "Add a task")
	message.SetString(lang, "student_course.grade", "Grade")

	// Grade single task
	message.SetString(lang, "grade_task.heading", "Grade task")
	message.SetString(lang, "grade_task.score", "Score")
	message.SetString(lang, "grade_task.submit", "Save grade")
	message.SetString(lang, "grade_task.error.score_range", "Score must be between 0 and 100.")

	// Grade landing
	message.SetString(lang, "grade.heading", "Grade completed work")
	message.SetString(lang, "grade.empty", "There is no completed work to grade right now.")
	message.SetString(lang, "grade.skip_hint", "Leave a score blank to skip it for now.")
	message.SetString(lang, "grade.submit", "Save grades")
	message.SetString(lang, "flash.grades.saved", "Grades saved.")

	// Enrollment
	message.SetString(lang, "enroll.heading", "Enroll a student")
	message.SetString(lang, "enroll.heading_named", "Enroll %s")
	message.SetString(lang, "enroll.student", "Student")
	message.SetString(lang, "enroll.grade_level", "Grade level")
	message.SetString(lang, "enroll.submit", "Enroll")
	message.SetString(lang, "enroll.error.student_required", "Select a student.")
	message.SetString(lang, "enroll.error.grade_level_required", "Select a grade level.")
	message.SetString(lang, "enroll.error.foreign_student", "You may not enroll that student.")
	message.SetString(lang, "enroll.error.foreign_grade_level", "You may not enroll to that grade level.")
	message.SetString(lang, "enroll.error.already_enrolled", "That student is already enrolled in this school year.")
	message.SetString(lang, "flash.enroll.no_students", "You need to add a student to enroll.")
	message.SetString(lang, "flash.enroll.all_enrolled", "All students are enrolled in the school year.")
	message.SetString(lang, "flash.enroll.no_grade_levels", "You need to create a grade level for a student to enroll in.")

	// School years
	message.SetString(lang, "school_years.heading", "School years")
	message.SetString(lang, "school_years.add", "Add school year")
	message.SetString(lang, "school_years.empty", "You have not created any school years yet.")
	message.SetString(lang, "school_year_create.heading", "Add a school year")
	message.SetString(lang, "school_year_create.submit", "Add school year")
	message.SetString(lang, "school_year.runs", "Runs %s to %s")
	message.SetString(lang, "school_year.error.days_required", "Select at least one school day.")
	message.SetString(lang, "school_year.grade_levels", "Grade levels")
	message.SetString(lang, "school_year.enrolled_count", "%d enrolled")
	message.SetString(lang, "school_year.add_grade_level", "Add grade level")
	message.SetString(lang, "school_year.no_grade_levels", "No grade levels yet.")
	message.SetString(lang, "school_year.breaks", "Breaks")
	message.SetString(lang, "school_year.add_break", "Add break")
	message.SetString(lang, "school_year.no_breaks", "No breaks scheduled.")
	message.SetString(lang, "school_year.courses", "Courses")
	message.SetString(lang, "school_year.add_course", "Add course")
	message.SetString(lang, "school_year.no_courses", "No courses yet.")

	// Grade levels
	message.SetString(lang, "grade_level_create.heading", "Add a grade level")
	message.SetString(lang, "grade_level_create.submit", "Add grade level")

	// School breaks
	message.SetString(lang, "school_break_create.heading", "Add a break")
	message.SetString(lang, "school_break_create.submit", "Add break")
	message.SetString(lang, "school_break.error.outside_year", "A break must fall within its school year.")

	// Courses
	message.SetString(lang, "course_create.heading", "Add a course")
	message.SetString(lang, "course_create.submit", "Add course")
	message.SetString(lang, "course.error.grade_level_required", "Select at least one grade level.")
	message.SetString(lang, "course.grade_levels", "Grade levels")
	message.SetString(lang, "course.tasks", "Tasks")
	message.SetString(lang, "course.add_task", "Add task")
	message.SetString(lang, "course.no_tasks", "This course has no tasks yet.")
	message.SetString(lang, "course.badge.inactive", "Inactive")
	message.SetString(lang, "course.duration_minutes", "%d minutes")
	message.SetString(lang, "course.graded", "Graded")
	message.SetString(lang, "course.limited_to", "Limited to %s")
	message.SetString(lang, "course.make_graded", "Require a grade")
	message.SetString(lang, "course.remove_graded", "Remove grade requirement")

	// Course tasks
	message.SetString(lang, "course_task_create.heading", "Add a task")
	message.SetString(lang, "course_task.duration", "Length (minutes)")
	message.SetString(lang, "course_task.graded", "This task is graded")
	message.SetString(lang, "course_task.grade_level", "Limit to grade level")
	message.SetString(lang, "course_task.grade_level_any", "All grade levels")
	message.SetString(lang, "course_task_create.submit", "Add task")
	message.SetString(lang, "course_task.error.duration_positive", "Length must be a positive number of minutes.")

	// Weekly checklist
	message.SetString(lang, "checklist.heading", "Weekly checklist")
	message.SetString(lang, "checklist.week_of", "Week of %s")
	message.SetString(lang, "checklist.previous", "Previous week")
	message.SetString(lang, "checklist.next", "Next week")
	message.SetString(lang, "checklist.this_week", "This week")
	message.SetString(lang, "checklist.empty", "There is no school year that includes this week.")
	message.SetString(lang, "checklist.no_tasks", "Nothing is scheduled this week.")
	message.SetString(lang, "checklist.edit", "Edit checklist")
	message.SetString(lang, "checklist_edit.heading", "Edit checklist")
	message.SetString(lang, "checklist_edit.hint", "Uncheck a course to hide it from this week's checklist.")
	message.SetString(lang, "checklist_edit.submit", "Save checklist")

	// Settings
	message.SetString(lang, "settings.heading", "Settings")
	message.SetString(lang, "settings.account", "Account")
	message.SetString(lang, "settings.email", "Email address")
	message.SetString(lang, "settings.language", "Language")
	message.SetString(lang, "settings.save_language", "Save language")
	message.SetString(lang, "flash.settings.language_saved", "Language preference saved.")

	// Error pages
	message.SetString(lang, "error.not_found.title", "Page not found")
	message.SetString(lang, "error.not_found.message", "We could not find the page you were looking for.")
	message.SetString(lang, "error.server.title", "Something went wrong")
	message.SetString(lang, "error.server.message", "An unexpected error occurred. Please try again.")
	message.SetString(lang, "error.back_home", "Back to the home page")
	message.SetString(lang, "error.support", "If this keeps happening, write to")
	message.SetString(lang, "error.invalid_input", "The submitted form was invalid.")
	message.SetString(lang, "error.unauthorized", "You need to sign in to do that.")
	message.SetString(lang, "error.forbidden", "You are not allowed to do that.")
	message.SetString(lang, "error.unavailable", "The service is temporarily unavailable.")
}
