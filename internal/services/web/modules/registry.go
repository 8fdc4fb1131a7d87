package modules

import (
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/courses"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/daily"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/public"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/schools"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/settings"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/students"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/modules/teachers"
)

// DefaultPublicModules returns the modules mounted without authentication.
func DefaultPublicModules() []Module {
	return []Module{
		public.New(),
	}
}

// DefaultProtectedModules returns the modules mounted behind the signed-in gate.
func DefaultProtectedModules() []Module {
	return []Module{
		daily.New(),
		students.New(),
		schools.New(),
		courses.New(),
		teachers.New(),
		settings.New(),
	}
}
