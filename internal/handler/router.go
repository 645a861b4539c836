package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wakunguma/site/internal/content"
	"github.com/wakunguma/site/internal/metrics"
	"github.com/wakunguma/site/internal/theme"
	"github.com/wakunguma/site/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Posts          *content.Index
	Site           SiteInfo
	ThemeCookie    theme.CookieOptions
}

// NewRouter assembles the chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)
	// Every response carries a theme cookie from the first visit on. A visitor
	// who lost the cookie gets it back from the form toggle's session record.
	r.Use(theme.Gate(deps.ThemeCookie, theme.WithLocalRecord(sessionRecord(deps.SessionManager))))

	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	home := NewHomeHandler(deps.Posts, deps.Site)
	blog := NewBlogHandler(deps.Posts, deps.Site)
	r.Get("/", home.Index)
	r.Get("/blog", blog.Index)
	r.Get("/rss.xml", blog.Feed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/blog", blog.List)
		r.Method(http.MethodPost, "/theme", theme.NewSyncHandler(deps.ThemeCookie))
	})

	themeForm := NewThemeHandler(deps.SessionManager, deps.ThemeCookie)
	r.Post("/theme", themeForm.Toggle)

	r.Handle("/metrics", metrics.Handler())

	return r
}
