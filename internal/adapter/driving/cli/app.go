package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/joinery-estimator-go/internal/application/usecase"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
	"github.com/diillson/joinery-estimator-go/pkg/version"
)

// UseCaseFactory abre o banco escolhido em args e monta o caso de uso de estimativa.
// A função retornada libera o banco.
type UseCaseFactory func(args *types.CLIArgs) (*usecase.EstimateUseCase, func() error, error)

// CLIApp representa a aplicação de linha de comando.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	factory    UseCaseFactory
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "joinery-estimate",
		Short:         "Itemized cost estimates for furniture projects",
		Version:       formattedVersion,
		RunE:          app.runEstimate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Joinery Estimator version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("db-type", "sqlite", "Database type: sqlite, postgres, mysql, sqlserver")
	rootCmd.PersistentFlags().String("dsn", "", "Database DSN (sqlite: file path, default joinery.db)")

	rootCmd.Flags().UintP("user", "u", 0, "Requesting user id; projects owned by someone else are rejected")
	rootCmd.Flags().UintSliceP("project", "p", nil, "Project ids to estimate (comma-separated)")
	rootCmd.Flags().BoolP("all", "a", false, "Estimate every project owned by --user")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	rootCmd.Flags().String("s3-prefix", "", "Key prefix for uploaded reports")
	rootCmd.Flags().String("aws-profile", "", "AWS profile used for the S3 upload")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import operations, materials, detail types and projects from a YAML, TOML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runImport,
	}
	rootCmd.AddCommand(importCmd)

	app.rootCmd = rootCmd
	return app
}

// SetUseCaseFactory define como a CLI obtém o caso de uso depois de ler as flags.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.factory = factory
}

// Execute executa a aplicação CLI.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs converte as flags em CLIArgs, mesclando o arquivo de configuração quando informado.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	args := &types.CLIArgs{}
	args.ConfigFile, _ = flags.GetString("config-file")
	args.DBType, _ = flags.GetString("db-type")
	args.DSN, _ = flags.GetString("dsn")

	// import só usa as flags persistentes
	if flags.Lookup("user") != nil {
		args.User, _ = flags.GetUint("user")
		args.Projects, _ = flags.GetUintSlice("project")
		args.All, _ = flags.GetBool("all")
		args.ReportName, _ = flags.GetString("report-name")
		args.ReportType, _ = flags.GetStringSlice("report-type")
		args.Dir, _ = flags.GetString("dir")
		args.S3Bucket, _ = flags.GetString("s3-bucket")
		args.S3Prefix, _ = flags.GetString("s3-prefix")
		args.AWSProfile, _ = flags.GetString("aws-profile")
	}

	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, flags.Changed)
	}

	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// mergeConfig copia os valores do arquivo de configuração para cada flag não informada explicitamente.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(name string) bool) {
	if cfg.DBType != "" && !changed("db-type") {
		args.DBType = cfg.DBType
	}
	if cfg.DSN != "" && !changed("dsn") {
		args.DSN = cfg.DSN
	}
	if cfg.User != 0 && !changed("user") {
		args.User = cfg.User
	}
	if len(cfg.Projects) > 0 && !changed("project") {
		args.Projects = cfg.Projects
	}
	if cfg.ReportName != "" && !changed("report-name") {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 && !changed("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && !changed("dir") {
		args.Dir = cfg.Dir
	}
	if cfg.S3Bucket != "" && !changed("s3-bucket") {
		args.S3Bucket = cfg.S3Bucket
	}
	if cfg.S3Prefix != "" && !changed("s3-prefix") {
		args.S3Prefix = cfg.S3Prefix
	}
	if cfg.AWSProfile != "" && !changed("aws-profile") {
		args.AWSProfile = cfg.AWSProfile
	}
}

func (app *CLIApp) useCase(args *types.CLIArgs) (*usecase.EstimateUseCase, func() error, error) {
	if app.factory == nil {
		return nil, nil, fmt.Errorf("estimate use case is not configured")
	}
	return app.factory(args)
}

// runEstimate é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runEstimate(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()

	go checkLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	uc, closeStore, err := app.useCase(cliArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	return uc.RunEstimate(cmd.Context(), cliArgs)
}

func (app *CLIApp) runImport(cmd *cobra.Command, positional []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	uc, closeStore, err := app.useCase(cliArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	_, err = uc.RunImport(cmd.Context(), positional[0])
	return err
}
