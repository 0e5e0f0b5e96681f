package entity

import "github.com/shopspring/decimal"

// EdgeProcessing is the geometry code describing which panel edges are banded.
type EdgeProcessing string

const (
	EdgeNone       EdgeProcessing = "none"
	EdgeAdjacent   EdgeProcessing = "L"
	EdgeParallel   EdgeProcessing = "||"
	EdgeThreeSides EdgeProcessing = "П"
	EdgeAround     EdgeProcessing = "O"
	EdgeDoublePass EdgeProcessing = "="
)

// edgeUnits maps each code to the number of edge units one piece carries.
var edgeUnits = map[EdgeProcessing]int64{
	EdgeNone:       0,
	EdgeAdjacent:   2,
	EdgeParallel:   2,
	EdgeThreeSides: 3,
	EdgeAround:     4,
	EdgeDoublePass: 4,
}

// Multiplier returns the edge-unit multiplier for the code.
// ok is false when the code is outside the known set.
func (e EdgeProcessing) Multiplier() (decimal.Decimal, bool) {
	n, ok := edgeUnits[e]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(n), true
}

// Valid reports whether the code belongs to the known set.
func (e EdgeProcessing) Valid() bool {
	_, ok := edgeUnits[e]
	return ok
}

// Component is one operation in a detail type's bill of operations.
type Component struct {
	OperationID uint            `json:"operation_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// MaterialUsage is the amount of a material one piece consumes.
type MaterialUsage struct {
	MaterialID uint            `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// DetailType is a template for one furnishing piece.
type DetailType struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	EdgeProcessing EdgeProcessing  `json:"edge_processing"`
	Components     []Component     `json:"components"`
	Materials      []MaterialUsage `json:"materials,omitempty"`
	Origin         Origin          `json:"origin"`
	OwnerID        uint            `json:"owner_id,omitempty"`
}

func (d DetailType) RecordOrigin() Origin { return d.Origin }
func (d DetailType) RecordOwner() uint    { return d.OwnerID }
