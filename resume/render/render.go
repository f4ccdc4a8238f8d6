// Package render owns the embedded HTML templates and the template-variant
// registry used by the preview endpoints.
package render

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Tpupu/resume-builder/resume/model"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// Templates returns the parsed page set for installation into the engine.
func Templates() *template.Template {
	return pages
}

// Static returns the embedded static assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// ResultPage maps a template choice to a result page name. Unknown choices
// and variants missing from the embedded set both fall back to the classic
// page rather than erroring.
func ResultPage(choice string) string {
	name := "result_" + model.PickTemplate(choice) + ".html"
	if pages.Lookup(name) == nil {
		return "result_classic.html"
	}
	return name
}
