package repository

import (
	"context"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// ProjectRepository gives read access to declared projects.
type ProjectRepository interface {
	GetProject(ctx context.Context, id uint) (entity.Project, error)
	ListProjectIDs(ctx context.Context, ownerID uint) ([]uint, error)
}

// CatalogImporter writes a catalog fixture into storage.
type CatalogImporter interface {
	Import(ctx context.Context, fixture *types.CatalogFixture) (types.ImportStats, error)
}
