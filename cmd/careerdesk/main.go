package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/console"
	"github.com/careerdesk/careerdesk/internal/database"
	"github.com/careerdesk/careerdesk/internal/persist"
	"github.com/careerdesk/careerdesk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	// Menus own stdout; logs go to stderr.
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	db, err := database.OpenSQLite(cfg.SnapshotPath)
	if err != nil {
		log.Fatalf("failed to open snapshot database: %v", err)
	}

	manager := persist.NewManager(db, cfg.UsersTextPath, cfg.SeedUsers, logger)
	st := manager.Load(context.Background())

	validate := validator.New(validator.WithRequiredStructEnabled())

	menus := console.Menus{
		Auth:    service.NewAuthService(st, validate, logger),
		Student: service.NewStudentService(st, validate, logger),
		Company: service.NewCompanyService(st, validate, logger),
		Staff:   service.NewStaffService(st, logger),
		Report:  service.NewReportService(st, validate, logger),
	}
	ui := console.NewUI(console.NewPrompter(os.Stdin, os.Stdout), menus, logger)

	fmt.Println("================================================")
	fmt.Println("  INTERNSHIP PLACEMENT MANAGEMENT SYSTEM")
	fmt.Println("================================================")

	done := make(chan struct{})
	go func() {
		ui.Run()
		close(done)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-done:
	case <-ctx.Done():
		fmt.Println("\nInterrupted, saving data...")
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := manager.Save(saveCtx, st); err != nil {
		logger.Warn().Err(err).Msg("could not save data")
		fmt.Println("\nWarning: could not save data.")
		return
	}
	fmt.Println("\nData saved successfully. Goodbye!")
}
