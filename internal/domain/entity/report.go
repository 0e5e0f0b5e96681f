package entity

import "github.com/shopspring/decimal"

// SourceKind identifies where a cost line comes from.
type SourceKind string

const (
	SourceDetail    SourceKind = "detail"
	SourceOperation SourceKind = "operation"
	SourceExpense   SourceKind = "expense"
)

// SourceKinds lists the kinds in report order.
var SourceKinds = []SourceKind{SourceDetail, SourceOperation, SourceExpense}

// CostLine is one row of an estimation report.
type CostLine struct {
	Type      SourceKind      `json:"type"`
	Label     string          `json:"label"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
	Note      string          `json:"note,omitempty"`
}

// Subtotal is the sum of all lines of one kind.
type Subtotal struct {
	Type  SourceKind      `json:"type"`
	Lines int             `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// EstimationReport is the itemized cost of a project.
type EstimationReport struct {
	ProjectID   uint            `json:"project_id"`
	ProjectName string          `json:"project_name"`
	OwnerID     uint            `json:"owner_id"`
	Lines       []CostLine      `json:"lines"`
	Subtotals   []Subtotal      `json:"subtotals"`
	Total       decimal.Decimal `json:"total"`
}
