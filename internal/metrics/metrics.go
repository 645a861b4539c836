package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ThemeGateDefaultsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "site_theme_gate_defaults_total",
		Help: "Requests that arrived without a theme cookie and were given the default.",
	})

	ThemeSwitchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_theme_switches_total",
		Help: "Theme cookie updates, by theme and source (api, form).",
	}, []string{"theme", "source"})

	ThemeSyncErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_theme_sync_errors_total",
		Help: "Rejected theme sync requests, by reason.",
	}, []string{"reason"})

	PostsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "site_posts_total",
		Help: "Published posts currently in the content index.",
	})

	ContentReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "site_content_reloads_total",
		Help: "Content index reloads, by result.",
	}, []string{"result"})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
