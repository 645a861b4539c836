package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wakunguma/site/internal/config"
	"github.com/wakunguma/site/internal/db"
)

// newMigrateCmd brings the session database up to date. serve does the same
// on start; this is for deploys that migrate ahead of the rollout.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the session database schema",
		Args:  cobra.NoArgs,
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

			before, err := db.Version(database, cfg.DB.Driver)
			if err != nil {
				return err
			}
			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}
			after, err := db.Version(database, cfg.DB.Driver)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if before == after {
				fmt.Fprintf(out, "%s schema already at version %d\n", cfg.DB.Driver, after)
				return nil
			}
			fmt.Fprintf(out, "%s schema migrated from version %d to %d\n", cfg.DB.Driver, before, after)
			return nil
		},
	}
}
