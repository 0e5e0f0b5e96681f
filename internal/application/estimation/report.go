package estimation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// Assemble folds the cost lines of a project into its report.
// The total is the exact decimal sum of all line totals, taken in line order.
// A project declaring nothing of any kind is rejected rather than reported as zero.
func Assemble(project entity.Project, lines []entity.CostLine) (*entity.EstimationReport, error) {
	if project.IsEmpty() {
		return nil, fmt.Errorf("project %d: %w", project.ID, types.ErrEmptyProjectReport)
	}

	owned := make([]entity.CostLine, len(lines))
	copy(owned, lines)

	total := decimal.Zero
	sums := make(map[entity.SourceKind]decimal.Decimal, len(entity.SourceKinds))
	counts := make(map[entity.SourceKind]int, len(entity.SourceKinds))
	for _, line := range owned {
		total = total.Add(line.LineTotal)
		sums[line.Type] = sums[line.Type].Add(line.LineTotal)
		counts[line.Type]++
	}

	subtotals := make([]entity.Subtotal, 0, len(entity.SourceKinds))
	for _, kind := range entity.SourceKinds {
		if counts[kind] == 0 {
			continue
		}
		subtotals = append(subtotals, entity.Subtotal{Type: kind, Lines: counts[kind], Total: sums[kind]})
	}

	return &entity.EstimationReport{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		OwnerID:     project.OwnerID,
		Lines:       owned,
		Subtotals:   subtotals,
		Total:       total,
	}, nil
}
