package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wakunguma/site/internal/build"
	"github.com/wakunguma/site/internal/config"
	"github.com/wakunguma/site/internal/content"
	"github.com/wakunguma/site/internal/db"
	"github.com/wakunguma/site/internal/handler"
	"github.com/wakunguma/site/internal/session"
	"github.com/wakunguma/site/internal/theme"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			posts, err := content.NewIndex(cfg.Content.Dir)
			if err != nil {
				return err
			}
			log.Printf("loaded %d posts from %s", len(posts.Posts()), cfg.Content.Dir)
			if cfg.Content.Watch {
				go func() {
					if err := posts.Watch(ctx); err != nil {
						log.Printf("content watch stopped: %v", err)
					}
				}()
			}

			secure := !cfg.InsecureCookies
			router := handler.NewRouter(handler.Deps{
				SessionManager: session.NewManager(database, cfg.DB.Driver, cfg.SessionLifetime, secure),
				Posts:          posts,
				Site: handler.SiteInfo{
					URL:         cfg.Site.URL,
					Title:       cfg.Site.Title,
					Description: cfg.Site.Description,
				},
				ThemeCookie: theme.CookieOptions{Secure: secure, SameSite: cfg.ThemeSameSite},
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("site %s listening on %s", build.Version, cfg.HTTP.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
