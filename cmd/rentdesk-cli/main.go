package main

import (
	"context"
	"fmt"
	"os"

	"rentdesk/internal/cli"
	"rentdesk/internal/database"
	"rentdesk/internal/i18n"
	"rentdesk/internal/store"
	"rentdesk/internal/views"
	"rentdesk/pkg/config"
	"rentdesk/pkg/kvstore"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:          "rentdesk-cli",
		Short:        "RentDesk admin tool",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		cli.PrefsCmd(func(ctx context.Context) (kvstore.Store, func(), error) {
			return openPreferences(ctx, cfg)
		}),
		cli.ReportCmd(store.SampleState, views.Options{
			NameMode:     cfg.Domain.NameMode,
			CurrentMonth: cfg.Domain.CurrentMonth,
		}),
		cli.I18nCmd(i18n.Default()),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openPreferences(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	if err := database.Initialize(cfg); err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(database.GetDB()); err != nil {
		database.Close()
		return nil, nil, err
	}
	storage, err := database.OpenPreferenceStorage(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return storage, func() {
		storage.Close()
		database.Close()
	}, nil
}
