package main

import (
	"context"
	root "petregistry"
	"petregistry/internal/config"
	"petregistry/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the
// configured backend's schema up to date: goose migrations for postgres and
// index creation for mongo.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			switch cfg.Storage.Driver {
			case config.DriverMongo:
				strg, closeStrg := getMongo(ctx, cfg)
				defer closeStrg()

				if err := strg.EnsureIndexes(ctx); err != nil {
					logger.Fatal(ctx, "could not create mongo indexes", zap.Error(err))
				}
			case config.DriverMemory:
				logger.Info(ctx, "in-memory storage needs no migrations")
			default:
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				if err := strg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
					logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
				}
			}
			logger.Info(ctx, "database is up to date", zap.String("driver", cfg.Storage.Driver))
		},
	}

	return cmd
}
