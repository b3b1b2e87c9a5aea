package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pmarquez/stockbook/internal/backup"
	"github.com/pmarquez/stockbook/internal/cli"
	"github.com/pmarquez/stockbook/internal/importer"
	"github.com/pmarquez/stockbook/internal/inventory"
	"github.com/pmarquez/stockbook/pkg/config"
	"github.com/pmarquez/stockbook/pkg/db"
	"github.com/pmarquez/stockbook/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "stockbook"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Debug(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "stockbook",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to open the inventory store", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing the inventory store", err)
		}
	}()

	if err := dbClient.AutoMigrate(ctx); err != nil {
		logg.Error(ctx, "failed to prepare the product table", err)
		os.Exit(1)
	}

	repo := inventory.NewRepository(dbClient.DB())

	res, err := importer.New(dbClient, repo, logg).Run(ctx, cfg.Files.SeedPath)
	if err != nil {
		logg.Error(ctx, "failed to import the seed file", err)
		os.Exit(1)
	}
	if res.Skipped > 0 {
		logg.Warn(logg.WithField(ctx, "skipped", res.Skipped), "some seed rows could not be imported")
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"created": res.Created,
		"updated": res.Updated,
	}), "seed import finished")

	exporter := backup.NewExporter(repo, logg)
	session := cli.NewSession(os.Stdin, os.Stdout, repo, exporter, cfg.Files.BackupPath, logg)
	session.Run(ctx)

	fmt.Println("Goodbye!")
}
