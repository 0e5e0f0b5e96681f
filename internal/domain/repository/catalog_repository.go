package repository

import (
	"context"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
)

// CatalogRepository looks up priced catalog records by identifier.
// Implementations return types.ErrNotFound when no record has the id;
// visibility is not their concern.
type CatalogRepository interface {
	FindOperation(ctx context.Context, id uint) (entity.Operation, error)
	FindMaterial(ctx context.Context, id uint) (entity.Material, error)
	FindDetailType(ctx context.Context, id uint) (entity.DetailType, error)
}
