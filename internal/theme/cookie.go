package theme

import (
	"net/http"
	"strings"
)

const (
	// CookieName is shared with the browser script, which reads it directly.
	CookieName = "theme"

	// CookieMaxAge is roughly one hundred years, in seconds.
	CookieMaxAge = 3600 * 24 * 365 * 100
)

// CookieOptions holds the attributes that vary between deployments.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

// DefaultCookieOptions returns Secure + SameSite=Strict.
func DefaultCookieOptions() CookieOptions {
	return CookieOptions{Secure: true, SameSite: http.SameSiteStrictMode}
}

// SetCookie writes the preference cookie onto the response, replacing one set
// earlier in the same response. The cookie is not HttpOnly so the page script
// can read it before first paint.
func SetCookie(w http.ResponseWriter, t Theme, opts CookieOptions) {
	dropSetCookie(w.Header(), CookieName)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   CookieMaxAge,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
		HttpOnly: false,
	})
}

// FromRequest reads the preference cookie. ok is false when the cookie is
// missing or holds something other than "light" or "dark".
func FromRequest(r *http.Request) (Theme, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	t := Theme(c.Value)
	return t, t.Valid()
}

// hasCookie reports whether the request carries a preference cookie at all,
// regardless of its value.
func hasCookie(r *http.Request) bool {
	_, err := r.Cookie(CookieName)
	return err == nil
}

func dropSetCookie(h http.Header, name string) {
	prefix := name + "="
	values := h.Values("Set-Cookie")
	if len(values) == 0 {
		return
	}
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}
