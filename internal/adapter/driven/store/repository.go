package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// Repository implements CatalogRepository, ProjectRepository and CatalogImporter on top of gorm.
type Repository struct {
	db *gorm.DB
}

var (
	_ repository.CatalogRepository = (*Repository)(nil)
	_ repository.ProjectRepository = (*Repository)(nil)
	_ repository.CatalogImporter   = (*Repository)(nil)
)

// NewRepository wraps an open gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// FindOperation retrieves an operation by ID
func (r *Repository) FindOperation(ctx context.Context, id uint) (entity.Operation, error) {
	var m OperationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return entity.Operation{}, lookupError("operation", err)
	}
	return m.toEntity(), nil
}

// FindMaterial retrieves a material by ID
func (r *Repository) FindMaterial(ctx context.Context, id uint) (entity.Material, error) {
	var m MaterialModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return entity.Material{}, lookupError("material", err)
	}
	return m.toEntity(), nil
}

// FindDetailType retrieves a detail type with its components and material usages in position order
func (r *Repository) FindDetailType(ctx context.Context, id uint) (entity.DetailType, error) {
	var m DetailTypeModel
	err := r.db.WithContext(ctx).
		Preload("Components", byPosition).
		Preload("Materials", byPosition).
		First(&m, id).Error
	if err != nil {
		return entity.DetailType{}, lookupError("detail type", err)
	}
	return m.toEntity(), nil
}

// GetProject retrieves a project with all of its declarations in entry order
func (r *Repository) GetProject(ctx context.Context, id uint) (entity.Project, error) {
	var m ProjectModel
	err := r.db.WithContext(ctx).
		Preload("Details", byPosition).
		Preload("ManualOperations", byPosition).
		Preload("Expenses", byPosition).
		First(&m, id).Error
	if err != nil {
		return entity.Project{}, types.NewReferenceError(types.KindProject, id, lookupError("project", err))
	}
	return m.toEntity(), nil
}

// ListProjectIDs returns the ids of every project owned by the user
func (r *Repository) ListProjectIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&ProjectModel{}).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return ids, nil
}

func lookupError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
