package handler

import (
	"log"
	"net/http"
	"net/url"

	"github.com/alexedwards/scs/v2"

	"github.com/wakunguma/site/internal/metrics"
	"github.com/wakunguma/site/internal/session"
	"github.com/wakunguma/site/internal/theme"
)

// ThemeHandler handles the form-based theme toggle used when the page script
// is not running.
type ThemeHandler struct {
	sessions *scs.SessionManager
	cookie   theme.CookieOptions
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(sm *scs.SessionManager, opts theme.CookieOptions) *ThemeHandler {
	return &ThemeHandler{sessions: sm, cookie: opts}
}

// Toggle handles POST /theme. The visitor's session holds the local record a
// script would otherwise keep in localStorage. The "theme" form value selects
// the new theme; an empty value flips the local record, which starts out as
// the theme the page was rendered with. The cookie is updated to match and the
// visitor is sent back to the page they came from.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var requested theme.Theme
	if v := r.FormValue("theme"); v != "" {
		t, err := theme.Parse(v)
		if err != nil {
			metrics.ThemeSyncErrorsTotal.WithLabelValues("invalid_theme").Inc()
			http.Error(w, "invalid theme", http.StatusBadRequest)
			return
		}
		requested = t
	}

	store, err := theme.NewStore(theme.EnvBrowser, session.NewStorage(r.Context(), h.sessions),
		theme.WithInitial(theme.Current(r)))
	if err != nil {
		log.Printf("handler: theme store: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	next := store.Theme().Opposite()
	if requested != "" {
		next = requested
	}
	if err := store.Switch(next); err != nil {
		log.Printf("handler: switch theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	theme.SetCookie(w, store.Theme(), h.cookie)
	metrics.ThemeSwitchesTotal.WithLabelValues(string(store.Theme()), "form").Inc()
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// sessionRecord reads the local record the form toggle keeps in the session.
func sessionRecord(sm *scs.SessionManager) theme.LocalRecordFunc {
	return func(r *http.Request) (theme.Theme, bool) {
		return theme.ReadRecord(session.NewStorage(r.Context(), sm), theme.EncodingJSON)
	}
}

// backTo returns the same-site path of the Referer, or "/".
func backTo(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	if u.Path == "" || u.Path[0] != '/' {
		return "/"
	}
	return u.RequestURI()
}
