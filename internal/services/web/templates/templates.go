// Package templates renders the server-side HTML pages for the web app.
//
// Every page shares layout.html. Page templates define the "content" block
// and are parsed once per supported language so the T function can resolve
// catalog messages without threading a localizer through every template.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/schooldesk/theschooldesk.app/internal/platform/branding"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/i18n"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/module"
	"github.com/schooldesk/theschooldesk.app/internal/services/web/platform/flash"
	"golang.org/x/text/message"
)

//go:embed *.html
var templateFS embed.FS

// Localizer provides translated strings for web templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// pageNames lists every page template that pairs with layout.html.
var pageNames = []string{
	"landing.html",
	"login.html",
	"signup.html",
	"daily.html",
	"students.html",
	"student_form.html",
	"student_course.html",
	"coursework_form.html",
	"grade_task.html",
	"grade.html",
	"enroll.html",
	"school_years.html",
	"school_year_form.html",
	"school_year.html",
	"grade_level_form.html",
	"school_break_form.html",
	"course_form.html",
	"course.html",
	"course_task_form.html",
	"checklist.html",
	"checklist_edit.html",
	"settings.html",
	"error.html",
}

// setsByLang maps a language tag string to its parsed page templates.
var setsByLang = buildSets()

func buildSets() map[string]map[string]*template.Template {
	sets := make(map[string]map[string]*template.Template)
	for _, tag := range i18n.Supported() {
		printer := i18n.Printer(tag)
		funcs := template.FuncMap{
			"T": func(key message.Reference, args ...any) string {
				return T(printer, key, args...)
			},
			"appName":      func() string { return branding.AppName },
			"supportEmail": func() string { return branding.SupportEmail },
		}
		pages := make(map[string]*template.Template, len(pageNames))
		for _, name := range pageNames {
			pages[name] = template.Must(
				template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "layout.html", name),
			)
		}
		sets[tag.String()] = pages
	}
	return sets
}

// Page carries the shared layout context plus page-specific view data.
type Page struct {
	Title  string
	Lang   string
	Path   string
	Viewer module.Viewer
	Notice *flash.Notice
	Data   any
}

// Render writes the named page into w using the language set for page.Lang.
func Render(w io.Writer, name string, page Page) error {
	pages, ok := setsByLang[page.Lang]
	if !ok {
		pages = setsByLang[i18n.Default().String()]
	}
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("render page %q: template not found", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		return fmt.Errorf("render page %q: %w", name, err)
	}
	return nil
}

// WritePage renders the named page and writes it as an HTML response.
// The page is buffered first so a render failure never emits a partial body.
func WritePage(w http.ResponseWriter, statusCode int, name string, page Page) {
	if w == nil {
		return
	}
	var buf bytes.Buffer
	if err := Render(&buf, name, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}
