package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Content struct {
		Dir   string
		Watch bool
	}
	Site struct {
		URL         string
		Title       string
		Description string
	}
	Client struct {
		ServerURL string
		StateFile string
	}
	SessionLifetime time.Duration
	InsecureCookies bool
	ThemeSameSite   http.SameSite
}

// Load reads config from environment (SITE_ prefix) and optional site.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("site")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":4321")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "site.db")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("content.dir", "content/blog")
	v.SetDefault("content.watch", true)
	v.SetDefault("site.url", "https://wakunguma.com")
	v.SetDefault("site.title", "Wakunguma Kalimukwa")
	v.SetDefault("site.description", "My personal blog")
	v.SetDefault("insecure_cookies", false)
	v.SetDefault("theme.same_site", "strict")
	v.SetDefault("client.server_url", "http://localhost:4321")
	v.SetDefault("client.state_file", "theme.json")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Content.Dir = v.GetString("content.dir")
	cfg.Content.Watch = v.GetBool("content.watch")
	cfg.Site.URL = strings.TrimRight(v.GetString("site.url"), "/")
	cfg.Site.Title = v.GetString("site.title")
	cfg.Site.Description = v.GetString("site.description")
	cfg.Client.ServerURL = strings.TrimRight(v.GetString("client.server_url"), "/")
	cfg.Client.StateFile = v.GetString("client.state_file")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	sameSite, err := parseSameSite(v.GetString("theme.same_site"))
	if err != nil {
		return nil, err
	}
	cfg.ThemeSameSite = sameSite
	// Browsers drop SameSite=None cookies that are not Secure.
	if sameSite == http.SameSiteNoneMode && cfg.InsecureCookies {
		return nil, fmt.Errorf("SITE_THEME_SAME_SITE=none requires secure cookies; unset SITE_INSECURE_COOKIES")
	}

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("SITE_DB_DRIVER must be sqlite3, mysql, or postgres, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("SITE_DB_DSN is required")
	}

	return cfg, nil
}

// parseSameSite maps the theme.same_site setting onto an http.SameSite mode.
// "none" exists for browser engines that refuse Strict cookies on localhost.
func parseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return http.SameSiteStrictMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("invalid SITE_THEME_SAME_SITE %q: must be strict, lax, or none", s)
	}
}
