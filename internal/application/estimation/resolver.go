package estimation

import (
	"context"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// Resolver turns catalog references into priced records on behalf of one user.
// A Resolver belongs to a single report build: every record it returns is
// memoized, so repeated lookups of an id observe the same value even if the
// backing catalog changes meanwhile.
type Resolver struct {
	catalog repository.CatalogRepository
	owner   uint

	operations map[uint]entity.Operation
	materials  map[uint]entity.Material
	details    map[uint]entity.DetailType
}

// NewResolver returns an empty Resolver acting for owner.
func NewResolver(catalog repository.CatalogRepository, owner uint) *Resolver {
	return &Resolver{
		catalog:    catalog,
		owner:      owner,
		operations: make(map[uint]entity.Operation),
		materials:  make(map[uint]entity.Material),
		details:    make(map[uint]entity.DetailType),
	}
}

// Operation resolves an operation id.
func (r *Resolver) Operation(ctx context.Context, id uint) (entity.Operation, error) {
	return resolve(ctx, r.operations, types.KindOperation, id, r.owner, r.catalog.FindOperation)
}

// Material resolves a material id.
func (r *Resolver) Material(ctx context.Context, id uint) (entity.Material, error) {
	return resolve(ctx, r.materials, types.KindMaterial, id, r.owner, r.catalog.FindMaterial)
}

// DetailType resolves a detail type id.
func (r *Resolver) DetailType(ctx context.Context, id uint) (entity.DetailType, error) {
	return resolve(ctx, r.details, types.KindDetailType, id, r.owner, r.catalog.FindDetailType)
}

func resolve[T entity.Owned](
	ctx context.Context,
	cache map[uint]T,
	kind types.ReferenceKind,
	id uint,
	owner uint,
	find func(context.Context, uint) (T, error),
) (T, error) {
	if rec, ok := cache[id]; ok {
		return rec, nil
	}

	var zero T
	rec, err := find(ctx, id)
	if err != nil {
		return zero, types.NewReferenceError(kind, id, err)
	}
	if !entity.IsVisible(rec, owner) {
		return zero, types.NewReferenceError(kind, id, types.ErrForbidden)
	}

	cache[id] = rec
	return rec, nil
}
