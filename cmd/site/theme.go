package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wakunguma/site/internal/config"
	"github.com/wakunguma/site/internal/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the locally stored theme preference",
	}
	cmd.AddCommand(newThemeGetCmd(), newThemeSetCmd())
	return cmd
}

// openClientStore opens the local record named by client.state_file.
func openClientStore() (*config.Config, *theme.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	storage, err := theme.NewFileStorage(cfg.Client.StateFile)
	if err != nil {
		return nil, nil, err
	}
	store, err := theme.NewStore(theme.EnvBrowser, storage)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func newThemeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openClientStore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
			return nil
		},
	}
}

func newThemeSetCmd() *cobra.Command {
	var noSync bool
	cmd := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Switch the theme and sync it to the server",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			cfg, store, err := openClientStore()
			if err != nil {
				return err
			}
			if err := store.Switch(t); err != nil {
				return err
			}
			if noSync {
				fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
				return nil
			}

			server, err := theme.NewClient(cfg.Client.ServerURL, nil).Sync(cmd.Context(), t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (server cookie: %s)\n", store.Theme(), server)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "only update the local record")
	return cmd
}
