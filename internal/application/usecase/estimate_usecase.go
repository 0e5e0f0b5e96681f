package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// ReportBuilder turns a loaded project into its estimation report.
type ReportBuilder interface {
	BuildReport(ctx context.Context, project entity.Project) (*entity.EstimationReport, error)
}

// EstimateUseCase drives estimation runs and catalog imports from the CLI.
type EstimateUseCase struct {
	projectRepo  repository.ProjectRepository
	importer     repository.CatalogImporter
	builder      ReportBuilder
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	artifactRepo repository.ArtifactRepository
	console      types.ConsoleInterface
}

// NewEstimateUseCase creates a new estimate use case.
func NewEstimateUseCase(
	projectRepo repository.ProjectRepository,
	importer repository.CatalogImporter,
	builder ReportBuilder,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	artifactRepo repository.ArtifactRepository,
	console types.ConsoleInterface,
) *EstimateUseCase {
	return &EstimateUseCase{
		projectRepo:  projectRepo,
		importer:     importer,
		builder:      builder,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		artifactRepo: artifactRepo,
		console:      console,
	}
}

// SelectProjects determines which projects to estimate based on CLI args.
func (uc *EstimateUseCase) SelectProjects(ctx context.Context, args *types.CLIArgs) ([]uint, error) {
	if len(args.Projects) > 0 {
		seen := make(map[uint]bool, len(args.Projects))
		ids := make([]uint, 0, len(args.Projects))
		for _, id := range args.Projects {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		return ids, nil
	}

	if args.All && args.User != 0 {
		ids, err := uc.projectRepo.ListProjectIDs(ctx, args.User)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			uc.console.LogWarning("User %d has no projects", args.User)
			return nil, types.ErrNoProjectsSelected
		}
		return ids, nil
	}

	return nil, types.ErrNoProjectsSelected
}

type projectFailure struct {
	projectID uint
	err       error
}

// RunEstimate estimates every selected project and exports the resulting reports.
// A project that fails does not stop the others; the run still returns an error afterwards.
func (uc *EstimateUseCase) RunEstimate(ctx context.Context, args *types.CLIArgs) error {
	ids, err := uc.SelectProjects(ctx, args)
	if err != nil {
		return err
	}

	if args.User == 0 {
		uc.console.LogWarning("No --user given; estimating each project on behalf of its owner")
	}

	reports := make([]*entity.EstimationReport, 0, len(ids))
	var failures []projectFailure

	progress := uc.console.ProgressWithTotal(len(ids))
	for _, id := range ids {
		report, err := uc.estimateProject(ctx, id, args.User)
		if err != nil {
			failures = append(failures, projectFailure{projectID: id, err: err})
		} else {
			reports = append(reports, report)
		}
		progress.Increment()
	}
	progress.Stop()

	for _, f := range failures {
		uc.console.LogError("Failed to estimate project %d: %s", f.projectID, f.err)
	}

	var account, runID string
	if args.S3Bucket != "" && args.ReportName != "" && len(reports) > 0 {
		account, err = uc.artifactRepo.CallerAccount(ctx, args.AWSProfile)
		if err != nil {
			uc.console.LogError("Skipping S3 upload: %s", err)
		}
		runID = uuid.NewString()
	} else if args.S3Bucket != "" && args.ReportName == "" {
		uc.console.LogWarning("--s3-bucket is set but --report-name is not; nothing to upload")
	}

	for _, report := range reports {
		uc.displayReport(report)

		if args.ReportName == "" {
			continue
		}
		files := uc.exportReport(report, args)
		if account != "" {
			uc.publishFiles(ctx, args, account, runID, report.ProjectID, files)
		}
	}

	if len(failures) > 0 {
		errs := make([]error, 0, len(failures))
		for _, f := range failures {
			errs = append(errs, f.err)
		}
		return fmt.Errorf("%d of %d projects failed: %w", len(failures), len(ids), errors.Join(errs...))
	}

	uc.console.LogSuccess("Estimated %d project(s)", len(reports))
	return nil
}

func (uc *EstimateUseCase) estimateProject(ctx context.Context, projectID, userID uint) (*entity.EstimationReport, error) {
	project, err := uc.projectRepo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if userID != 0 && project.OwnerID != userID {
		return nil, types.NewReferenceError(types.KindProject, projectID, types.ErrForbidden)
	}
	return uc.builder.BuildReport(ctx, project)
}

func (uc *EstimateUseCase) displayReport(report *entity.EstimationReport) {
	uc.console.Println()
	uc.console.Println(pterm.FgLightCyan.Sprintf("Project #%d: %s", report.ProjectID, report.ProjectName))

	table := uc.console.CreateTable()
	table.AddColumn("Type")
	table.AddColumn("Label")
	table.AddColumn("Quantity")
	table.AddColumn("Unit cost")
	table.AddColumn("Line total")
	table.AddColumn("Note")

	for _, line := range report.Lines {
		table.AddRow(
			string(line.Type),
			line.Label,
			line.Quantity.String(),
			line.UnitCost.StringFixed(2),
			line.LineTotal.StringFixed(2),
			line.Note,
		)
	}
	table.AddRow(pterm.Bold.Sprint("Total"), "", "", "", pterm.Bold.Sprint(report.Total.StringFixed(2)), "")
	uc.console.Print(table.Render())

	shares := make([]types.CostShare, 0, len(report.Subtotals))
	for _, sub := range report.Subtotals {
		shares = append(shares, types.CostShare{
			Label: fmt.Sprintf("%s (%d)", sub.Type, sub.Lines),
			Cost:  sub.Total.InexactFloat64(),
		})
	}
	uc.console.DisplayCostBars("Cost by source", shares)
}

// exportReport writes the report in every requested format and returns the files written.
func (uc *EstimateUseCase) exportReport(report *entity.EstimationReport, args *types.CLIArgs) []string {
	filename := fmt.Sprintf("%s_%d", args.ReportName, report.ProjectID)
	var files []string

	for _, reportType := range args.ReportType {
		var (
			out string
			err error
		)
		switch reportType {
		case "csv":
			out, err = uc.exportRepo.ExportToCSV(report, filename, args.Dir)
		case "json":
			out, err = uc.exportRepo.ExportToJSON(report, filename, args.Dir)
		case "pdf":
			out, err = uc.exportRepo.ExportToPDF(report, filename, args.Dir)
		case "xlsx":
			out, err = uc.exportRepo.ExportToXLSX(report, filename, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type %q ignored", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export project %d to %s: %s", report.ProjectID, reportType, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported project %d to %s: %s", report.ProjectID, reportType, out)
		files = append(files, out)
	}

	return files
}

func (uc *EstimateUseCase) publishFiles(ctx context.Context, args *types.CLIArgs, account, runID string, projectID uint, files []string) {
	for _, file := range files {
		key := ObjectKey(args.S3Prefix, account, projectID, runID, file)
		uri, err := uc.artifactRepo.Publish(ctx, args.AWSProfile, args.S3Bucket, key, file)
		if err != nil {
			uc.console.LogError("Failed to upload %s: %s", filepath.Base(file), err)
			continue
		}
		uc.console.LogSuccess("Uploaded %s", uri)
	}
}

// ObjectKey builds <prefix>/<account>/<project-id>/<run-id>/<file name>.
func ObjectKey(prefix, account string, projectID uint, runID, file string) string {
	return path.Join(prefix, account, fmt.Sprint(projectID), runID, filepath.Base(file))
}

// RunImport loads a catalog file and writes it to the store.
func (uc *EstimateUseCase) RunImport(ctx context.Context, filePath string) (types.ImportStats, error) {
	fixture, err := uc.configRepo.LoadCatalogFile(filePath)
	if err != nil {
		return types.ImportStats{}, err
	}

	status := uc.console.Status(fmt.Sprintf("Importing %s...", filepath.Base(filePath)))
	stats, err := uc.importer.Import(ctx, fixture)
	status.Stop()
	if err != nil {
		return types.ImportStats{}, fmt.Errorf("import %s: %w", filePath, err)
	}

	uc.console.LogSuccess("Imported %d operations, %d materials, %d detail types and %d projects",
		stats.Operations, stats.Materials, stats.DetailTypes, stats.Projects)
	return stats, nil
}
