package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"vartheme/internal/config"
	"vartheme/internal/db"
	"vartheme/internal/db/mock"
	"vartheme/internal/theme"
)

var (
	loadConfigFunc   = config.Load
	openDatabaseFunc = func(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.UseMock {
			return mock.New(ctx)
		}
		return db.Configure(cfg)
	}
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change a visitor's stored theme",
		Long: `Read or change the theme stored for a visitor token. The database is
taken from the server configuration (DATABASE_URL, or DATABASE_USE_MOCK
for the seeded in-memory database).`,
	}
	cmd.AddCommand(newPrefsGetCmd(), newPrefsSetCmd())
	return cmd
}

func newPrefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <visitor-token>",
		Short: "Print the stored theme for a visitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			store, err := openPreferences(ctx, args[0])
			if err != nil {
				return err
			}

			id := theme.DefaultIdentity()
			if v, ok, err := store.Get(ctx, theme.KeyName); err != nil {
				return err
			} else if ok {
				id.Name = theme.NormalizeName(v)
			}
			if v, ok, err := store.Get(ctx, theme.KeyMode); err != nil {
				return err
			} else if ok {
				id.Mode = theme.NormalizeMode(v)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", id.Name, id.Mode)
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	var name, mode string

	cmd := &cobra.Command{
		Use:   "set <visitor-token>",
		Short: "Store a theme for a visitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && mode == "" {
				return fmt.Errorf("nothing to set: pass --theme and/or --mode")
			}
			if name != "" {
				if parsed, ok := theme.ParseName(name); !ok || parsed == theme.NameCustom {
					return fmt.Errorf("unknown palette %q", name)
				}
			}
			if mode != "" {
				if _, ok := theme.ParseMode(mode); !ok {
					return fmt.Errorf("unknown mode %q (want light or dark)", mode)
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			store, err := openPreferences(ctx, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				if err := store.Set(ctx, theme.KeyName, name); err != nil {
					return err
				}
			}
			if mode != "" {
				if err := store.Set(ctx, theme.KeyMode, mode); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "theme", "", "Palette name")
	cmd.Flags().StringVar(&mode, "mode", "", "Mode (light or dark)")
	return cmd
}

func openPreferences(ctx context.Context, token string) (*db.PreferenceStore, error) {
	cfg, err := loadConfigFunc()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	database, err := openDatabaseFunc(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db.NewPreferenceStore(database, token), nil
}
