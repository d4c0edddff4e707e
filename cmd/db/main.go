package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"seat-finder/internal/api"
	"seat-finder/internal/batch"
	"seat-finder/internal/config"
	"seat-finder/internal/logging"
)

func main() {
	configPath := flag.String("config", "seats.yaml", "Path to the YAML config file")
	seedFile := flag.String("seed", "", "Optional file of boarding passes to decode and store")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("setting up database", zap.String("path", cfg.Database.Path))

	db, err := api.InitDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Drop existing tables
	logger.Info("dropping existing tables")
	if _, err := db.Exec(api.DropSchema); err != nil {
		logger.Fatal("failed to drop tables", zap.Error(err))
	}

	// Create tables
	logger.Info("creating tables")
	if err := api.CreateSchema(db); err != nil {
		logger.Fatal("failed to create tables", zap.Error(err))
	}

	if *seedFile != "" {
		n, err := seed(db, cfg.Decode, logger, *seedFile)
		if err != nil {
			logger.Fatal("failed to seed passes", zap.Error(err))
		}
		fmt.Printf("\nSeeded %d passes from %s\n", n, *seedFile)
	}

	logger.Info("database setup completed successfully")
}

func seed(db *sql.DB, opts config.DecodeConfig, logger *zap.Logger, path string) (int, error) {
	codes, err := batch.LoadFile(path)
	if err != nil {
		return 0, err
	}

	report, err := batch.DecodeAll(context.Background(), codes, batch.Options{
		Workers:     opts.Workers,
		SkipInvalid: opts.SkipInvalid,
		Progress:    logging.Progress(logger),
	})
	if err != nil {
		return 0, err
	}

	stored := make([]api.StoredPass, len(report.Passes))
	for i, p := range report.Passes {
		stored[i] = api.NewStoredPass(p)
	}

	if _, err := api.SavePasses(db, stored); err != nil {
		return 0, err
	}
	return len(stored), nil
}
