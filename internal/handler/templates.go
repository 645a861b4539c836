package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/wakunguma/site/internal/theme"
	"github.com/wakunguma/site/web"
)

// SiteInfo is the site-wide metadata shown in every layout.
type SiteInfo struct {
	URL         string
	Title       string
	Description string
}

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Theme       theme.Theme
	SiteTitle   string
	Description string
}

func newBasePage(r *http.Request, site SiteInfo) BasePage {
	return BasePage{
		Theme:       theme.Current(r),
		SiteTitle:   site.Title,
		Description: site.Description,
	}
}

var funcs = template.FuncMap{
	"formatDate": formatDate,
}

// formatDate renders a publication date as "January 02, 2006".
func formatDate(t time.Time) string {
	return t.Format("January 02, 2006")
}

// pageCache maps a page file name (e.g. "home.html") to a template set
// holding base.html, the partials and that one page, so each page's
// {{define "content"}} stays separate.
var pageCache map[string]*template.Template

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").Funcs(funcs).ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// render executes a full-page template (base layout + named page).
func render(w http.ResponseWriter, page string, data any) {
	t, ok := pageCache[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
