package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/skillpath/internal/cli"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	// Wire repositories
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	roleRepo := repository.NewSQLiteUserRoleRepo(database)
	scoreRepo := repository.NewSQLiteScoreRepo(database)
	attemptRepo := repository.NewSQLiteAttemptRepo(database)
	roadmapRepo := repository.NewSQLiteRoadmapRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Catalog:     service.NewCatalogService(catalogRepo, uow, logger, observers...),
		Roadmap:     service.NewRoadmapService(catalogRepo, roleRepo, scoreRepo, roadmapRepo, uow, logger, observers...),
		Attempts:    service.NewAttemptService(catalogRepo, roleRepo, attemptRepo, roadmapRepo, uow, logger, observers...),
		Difficulty:  service.NewDifficultyService(attemptRepo, cfg.WindowFor, observers...),
		DefaultUser: cfg.User,
	}

	formatter.SetColorEnabled(!cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()))

	return cli.NewRootCmd(app).Execute()
}
