package theme

import (
	"net/http"

	"github.com/wakunguma/site/internal/metrics"
)

// LocalRecordFunc looks up a visitor's local record for a request, for
// clients whose record lives on the server.
type LocalRecordFunc func(r *http.Request) (Theme, bool)

// GateOption configures Gate.
type GateOption func(*gateConfig)

type gateConfig struct {
	local LocalRecordFunc
}

// WithLocalRecord makes Gate seed a missing cookie from the visitor's local
// record instead of Default when one is found.
func WithLocalRecord(fn LocalRecordFunc) GateOption {
	return func(c *gateConfig) { c.local = fn }
}

// Gate returns middleware that guarantees a preference cookie exists before a
// page is rendered. A missing cookie is set to Default, or to the visitor's
// local record when WithLocalRecord finds one. An existing cookie is never
// overwritten, whatever it holds. The request is always passed on.
//
// The effective theme is stored on the request context so a page rendered in
// the same request sees the value that was just set.
func Gate(opts CookieOptions, gopts ...GateOption) func(http.Handler) http.Handler {
	var cfg gateConfig
	for _, o := range gopts {
		o(&cfg)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			effective := Default
			if hasCookie(r) {
				if t, ok := FromRequest(r); ok {
					effective = t
				}
			} else {
				if cfg.local != nil {
					if t, ok := cfg.local(r); ok {
						effective = t
					}
				}
				SetCookie(w, effective, opts)
				metrics.ThemeGateDefaultsTotal.Inc()
			}
			next.ServeHTTP(w, r.WithContext(WithTheme(r.Context(), effective)))
		})
	}
}

// Current resolves the theme a page should render with: the Gate's value when
// present, then the cookie, then Default.
func Current(r *http.Request) Theme {
	if t, ok := FromContext(r.Context()); ok {
		return t
	}
	if t, ok := FromRequest(r); ok {
		return t
	}
	return Default
}
