// Package estimation turns a project's declarations into an itemized cost report.
//
// The pipeline is strictly one-way: a Resolver prices catalog references,
// PieceUnitCost computes the cost of one detail, AggregateLines builds the
// ordered cost lines and Assemble folds them into the report.
package estimation

import (
	"context"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
)

// Engine builds estimation reports against a catalog.
type Engine struct {
	catalog repository.CatalogRepository
}

// NewEngine returns an Engine that prices against catalog.
func NewEngine(catalog repository.CatalogRepository) *Engine {
	return &Engine{catalog: catalog}
}

// BuildReport estimates a project on behalf of its owner.
// It either returns a complete report or an error; partial results are never returned.
func (e *Engine) BuildReport(ctx context.Context, project entity.Project) (*entity.EstimationReport, error) {
	res := NewResolver(e.catalog, project.OwnerID)

	lines, err := AggregateLines(ctx, res, project)
	if err != nil {
		return nil, err
	}

	return Assemble(project, lines)
}
