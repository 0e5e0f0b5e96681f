package entity

import "github.com/shopspring/decimal"

// Origin tells who provided a catalog record.
type Origin string

const (
	OriginSystem Origin = "system"
	OriginParser Origin = "parser"
	OriginUser   Origin = "user"
)

// Owned is implemented by every catalog record subject to visibility rules.
type Owned interface {
	RecordOrigin() Origin
	RecordOwner() uint
}

// IsVisible reports whether a record can be used by the given user.
// Shared records (system or parser) are visible to everyone; user records
// only to their owner.
func IsVisible(record Owned, userID uint) bool {
	switch record.RecordOrigin() {
	case OriginSystem, OriginParser:
		return true
	}
	return record.RecordOwner() == userID
}

// OperationCategory groups operations by the kind of labor they price.
type OperationCategory string

const (
	CategoryEdge     OperationCategory = "edge"
	CategoryCutting  OperationCategory = "cutting"
	CategoryDrilling OperationCategory = "drilling"
	CategoryAssembly OperationCategory = "assembly"
	CategoryOther    OperationCategory = "other"
)

// Valid reports whether the category belongs to the known set.
// Categories are case-sensitive: "Edge" is not edge banding.
func (c OperationCategory) Valid() bool {
	switch c {
	case CategoryEdge, CategoryCutting, CategoryDrilling, CategoryAssembly, CategoryOther:
		return true
	}
	return false
}

// Operation represents a priced unit of manufacturing labor.
type Operation struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Category OperationCategory `json:"category"`
	Unit     MeasureUnit       `json:"unit"`
	Rate     decimal.Decimal   `json:"rate"`
	Origin   Origin            `json:"origin"`
	OwnerID  uint              `json:"owner_id,omitempty"`
}

func (o Operation) RecordOrigin() Origin { return o.Origin }
func (o Operation) RecordOwner() uint    { return o.OwnerID }

// IsEdge reports whether the operation prices edge banding.
func (o Operation) IsEdge() bool {
	return o.Category == CategoryEdge
}

// MaterialKind classifies consumables.
type MaterialKind string

const (
	MaterialPlate   MaterialKind = "plate"
	MaterialEdge    MaterialKind = "edge"
	MaterialFitting MaterialKind = "fitting"
)

// MeasureUnit is the unit a price or a quantity refers to.
type MeasureUnit string

const (
	UnitArea   MeasureUnit = "m2"
	UnitLength MeasureUnit = "m"
	UnitCount  MeasureUnit = "pcs"
	UnitHour   MeasureUnit = "h"
)

// ExpectedUnit returns the only unit a material of this kind may be priced in.
func (k MaterialKind) ExpectedUnit() (MeasureUnit, bool) {
	switch k {
	case MaterialPlate:
		return UnitArea, true
	case MaterialEdge:
		return UnitLength, true
	case MaterialFitting:
		return UnitCount, true
	}
	return "", false
}

// Material is a priced consumable. System materials and user materials share
// this shape and differ only by Origin and OwnerID.
type Material struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Article      string          `json:"article,omitempty"`
	Kind         MaterialKind    `json:"kind"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Unit         MeasureUnit     `json:"unit"`
	Active       bool            `json:"active"`
	Supplier     string          `json:"supplier,omitempty"`
	SourceURL    string          `json:"source_url,omitempty"`
	Origin       Origin          `json:"origin"`
	OwnerID      uint            `json:"owner_id,omitempty"`
}

func (m Material) RecordOrigin() Origin { return m.Origin }
func (m Material) RecordOwner() uint    { return m.OwnerID }
