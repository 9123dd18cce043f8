package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/config"
	"github.com/cityinfo-api/internal/pkg/logger"
	"github.com/cityinfo-api/internal/repository/postgres"
)

const usage = "usage: migrate [up|down|reset|status|version]"

func main() {
	command := postgres.MigrateUp
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if len(os.Args) == 2 {
		command = postgres.MigrationCommand(os.Args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(db.DB.DB, command, log); err != nil {
		log.Error("Migration failed", zap.String("command", string(command)), zap.Error(err))
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}
