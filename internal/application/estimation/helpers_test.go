package estimation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// memCatalog is an in-memory CatalogRepository that counts lookups.
type memCatalog struct {
	operations map[uint]entity.Operation
	materials  map[uint]entity.Material
	details    map[uint]entity.DetailType
	calls      map[types.ReferenceKind]int
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		operations: map[uint]entity.Operation{},
		materials:  map[uint]entity.Material{},
		details:    map[uint]entity.DetailType{},
		calls:      map[types.ReferenceKind]int{},
	}
}

func (m *memCatalog) FindOperation(_ context.Context, id uint) (entity.Operation, error) {
	m.calls[types.KindOperation]++
	op, ok := m.operations[id]
	if !ok {
		return entity.Operation{}, types.ErrNotFound
	}
	return op, nil
}

func (m *memCatalog) FindMaterial(_ context.Context, id uint) (entity.Material, error) {
	m.calls[types.KindMaterial]++
	mat, ok := m.materials[id]
	if !ok {
		return entity.Material{}, types.ErrNotFound
	}
	return mat, nil
}

func (m *memCatalog) FindDetailType(_ context.Context, id uint) (entity.DetailType, error) {
	m.calls[types.KindDetailType]++
	d, ok := m.details[id]
	if !ok {
		return entity.DetailType{}, types.ErrNotFound
	}
	return d, nil
}

func (m *memCatalog) addOperation(id uint, name string, cat entity.OperationCategory, rate string) {
	m.operations[id] = entity.Operation{ID: id, Name: name, Category: cat, Rate: dec(rate), Origin: entity.OriginSystem}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}
