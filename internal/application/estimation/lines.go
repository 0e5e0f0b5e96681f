package estimation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
)

// AggregateLines produces the cost lines of a project: detail lines in
// declaration order, then manual operations, then expenses, each in entry
// order. The order is part of the report contract.
func AggregateLines(ctx context.Context, res *Resolver, project entity.Project) ([]entity.CostLine, error) {
	lines := make([]entity.CostLine, 0, len(project.Details)+len(project.ManualOperations)+len(project.Expenses))

	details, err := detailLines(ctx, res, project.Details)
	if err != nil {
		return nil, err
	}
	lines = append(lines, details...)

	operations, err := operationLines(ctx, res, project.ManualOperations)
	if err != nil {
		return nil, err
	}
	lines = append(lines, operations...)

	lines = append(lines, expenseLines(project.Expenses)...)
	return lines, nil
}

func detailLines(ctx context.Context, res *Resolver, entries []entity.DetailEntry) ([]entity.CostLine, error) {
	// Each detail type is priced once per build.
	unitCosts := make(map[uint]decimal.Decimal, len(entries))

	lines := make([]entity.CostLine, 0, len(entries))
	for _, entry := range entries {
		detail, err := res.DetailType(ctx, entry.DetailTypeID)
		if err != nil {
			return nil, err
		}

		unit, ok := unitCosts[detail.ID]
		if !ok {
			piece, err := PieceUnitCost(ctx, res, detail)
			if err != nil {
				return nil, err
			}
			unit = piece.Unit()
			unitCosts[detail.ID] = unit
		}

		lines = append(lines, newLine(entity.SourceDetail, detail.Name, entry.Quantity, unit, ""))
	}
	return lines, nil
}

func operationLines(ctx context.Context, res *Resolver, entries []entity.ManualOperation) ([]entity.CostLine, error) {
	lines := make([]entity.CostLine, 0, len(entries))
	for _, entry := range entries {
		op, err := res.Operation(ctx, entry.OperationID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, newLine(entity.SourceOperation, op.Name, entry.Quantity, op.Rate, entry.Note))
	}
	return lines, nil
}

func expenseLines(entries []entity.Expense) []entity.CostLine {
	lines := make([]entity.CostLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, newLine(entity.SourceExpense, entry.Type, decimal.NewFromInt(1), entry.Cost, entry.Description))
	}
	return lines
}

func newLine(kind entity.SourceKind, label string, qty, unit decimal.Decimal, note string) entity.CostLine {
	return entity.CostLine{
		Type:      kind,
		Label:     label,
		Quantity:  qty,
		UnitCost:  unit,
		LineTotal: qty.Mul(unit),
		Note:      note,
	}
}
