package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/joinery-estimator-go/internal/application/usecase"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

type stubConfigRepo struct {
	cfg *types.Config
}

func (s *stubConfigRepo) LoadConfigFile(string) (*types.Config, error) { return s.cfg, nil }

func (s *stubConfigRepo) LoadCatalogFile(string) (*types.CatalogFixture, error) {
	return nil, errors.New("not used")
}

func TestMergeConfigKeepsExplicitFlags(t *testing.T) {
	args := &types.CLIArgs{DBType: "sqlite", User: 3, ReportType: []string{"csv"}}
	cfg := &types.Config{
		DBType:     "postgres",
		DSN:        "host=db",
		User:       7,
		Projects:   []uint{1, 2},
		ReportType: []string{"json", "pdf"},
		S3Bucket:   "estimates",
	}

	changed := func(name string) bool { return name == "user" }
	mergeConfig(args, cfg, changed)

	if args.DBType != "postgres" || args.DSN != "host=db" {
		t.Fatalf("db settings not merged: %+v", args)
	}
	if args.User != 3 {
		t.Fatalf("explicit --user overwritten: %d", args.User)
	}
	if len(args.Projects) != 2 || len(args.ReportType) != 2 || args.S3Bucket != "estimates" {
		t.Fatalf("config values not merged: %+v", args)
	}
}

func TestParseArgsWithConfigFile(t *testing.T) {
	app := NewCLIApp("0.0.0-dev", &stubConfigRepo{cfg: &types.Config{User: 7, ReportName: "estimate", Dir: "out"}})

	var got *types.CLIArgs
	app.SetUseCaseFactory(func(args *types.CLIArgs) (*usecase.EstimateUseCase, func() error, error) {
		got = args
		return nil, nil, errors.New("stop")
	})

	app.rootCmd.SetArgs([]string{"--config-file", "cfg.yaml", "--project", "4,5", "--report-name", "mine"})
	err := app.Execute(context.Background())
	if err == nil || err.Error() != "stop" {
		t.Fatalf("expected factory error, got %v", err)
	}
	if got == nil {
		t.Fatal("factory was not called")
	}
	if got.User != 7 || got.ReportName != "mine" {
		t.Fatalf("unexpected merge result: %+v", got)
	}
	if len(got.Projects) != 2 || got.Projects[0] != 4 {
		t.Fatalf("projects = %v", got.Projects)
	}
	if got.Dir == "out" {
		t.Fatalf("dir should be made absolute, got %q", got.Dir)
	}
}

func TestImportRequiresFile(t *testing.T) {
	app := NewCLIApp("0.0.0-dev", &stubConfigRepo{})
	app.rootCmd.SetArgs([]string{"import"})
	if err := app.Execute(context.Background()); err == nil {
		t.Fatal("expected argument error")
	}
}
