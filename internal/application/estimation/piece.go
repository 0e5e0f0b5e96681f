package estimation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// PieceCost is the cost of a single instance of a detail type.
type PieceCost struct {
	Labor    decimal.Decimal
	Material decimal.Decimal
}

// Unit returns the full per-piece cost.
func (p PieceCost) Unit() decimal.Decimal {
	return p.Labor.Add(p.Material)
}

// PieceUnitCost computes the cost of one piece of the given detail type.
//
// Each component costs operation.rate * quantity. Components whose operation
// is edge banding use quantity * edge multiplier instead, so the detail's edge
// code scales edge work only. Material usages follow the same rule, with edge
// tape scaled and plates or fittings taken as declared.
func PieceUnitCost(ctx context.Context, res *Resolver, detail entity.DetailType) (PieceCost, error) {
	multiplier, ok := detail.EdgeProcessing.Multiplier()
	if !ok {
		return PieceCost{}, invalidDetail(detail.ID, "unknown edge processing code %q", detail.EdgeProcessing)
	}

	var cost PieceCost
	for i, c := range detail.Components {
		if !c.Quantity.IsPositive() {
			return PieceCost{}, invalidDetail(detail.ID, "component %d has non-positive quantity %s", i+1, c.Quantity)
		}

		op, err := res.Operation(ctx, c.OperationID)
		if err != nil {
			return PieceCost{}, err
		}

		qty := c.Quantity
		if op.IsEdge() {
			qty = qty.Mul(multiplier)
		}
		cost.Labor = cost.Labor.Add(op.Rate.Mul(qty))
	}

	for i, u := range detail.Materials {
		if !u.Quantity.IsPositive() {
			return PieceCost{}, invalidDetail(detail.ID, "material usage %d has non-positive quantity %s", i+1, u.Quantity)
		}

		mat, err := res.Material(ctx, u.MaterialID)
		if err != nil {
			return PieceCost{}, err
		}

		qty := u.Quantity
		if mat.Kind == entity.MaterialEdge {
			qty = qty.Mul(multiplier)
		}
		cost.Material = cost.Material.Add(mat.PricePerUnit.Mul(qty))
	}

	return cost, nil
}

func invalidDetail(id uint, format string, a ...interface{}) error {
	reason := fmt.Sprintf(format, a...)
	return types.NewReferenceError(types.KindDetailType, id, fmt.Errorf("%w: %s", types.ErrInvalidDetailType, reason))
}
