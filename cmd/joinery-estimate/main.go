package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/joinery-estimator-go/internal/adapter/driven/aws"
	"github.com/diillson/joinery-estimator-go/internal/adapter/driven/config"
	"github.com/diillson/joinery-estimator-go/internal/adapter/driven/export"
	"github.com/diillson/joinery-estimator-go/internal/adapter/driven/store"
	"github.com/diillson/joinery-estimator-go/internal/adapter/driving/cli"
	"github.com/diillson/joinery-estimator-go/internal/application/estimation"
	"github.com/diillson/joinery-estimator-go/internal/application/usecase"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
	"github.com/diillson/joinery-estimator-go/pkg/console"
	"github.com/diillson/joinery-estimator-go/pkg/version"
)

func main() {
	// Inicializa os repositórios que não dependem das flags
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	artifactRepo := aws.NewArtifactRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo)

	// O banco só é aberto depois que as flags são conhecidas
	app.SetUseCaseFactory(func(args *types.CLIArgs) (*usecase.EstimateUseCase, func() error, error) {
		db, err := store.Connect(args.DBType, args.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := store.AutoMigrate(db); err != nil {
			_ = store.Close(db)
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		repo := store.NewRepository(db)
		engine := estimation.NewEngine(repo)

		uc := usecase.NewEstimateUseCase(
			repo,
			repo,
			engine,
			exportRepo,
			configRepo,
			artifactRepo,
			consoleImpl,
		)
		return uc, func() error { return store.Close(db) }, nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Executa o aplicativo
	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
