package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli"
	"github.com/vasco-fernandes21/starsoftflow/internal/config"
	"github.com/vasco-fernandes21/starsoftflow/internal/db"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/excel"
	"github.com/vasco-fernandes21/starsoftflow/internal/logger"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
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
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Environment)

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	draftRepo := repository.NewSQLiteDraftRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	allocationRepo := repository.NewSQLiteAllocationRepo(database)

	userID := domain.CoalesceStr(cfg.UserID, os.Getenv("USER"))

	app := &cli.App{
		Drafts:      service.NewDraftService(draftRepo, log),
		Submissions: service.NewSubmissionService(projectRepo, allocationRepo, log),
		Allocations: service.NewAllocationService(allocationRepo, log),
		Reports:     excel.NewGenerator(),
		UserID:      userID,
	}

	// The draft wizard needs a terminal; batch commands do not.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
