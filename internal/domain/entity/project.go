package entity

import "github.com/shopspring/decimal"

// Project is the estimation unit: everything a user declared for one job.
type Project struct {
	ID               uint              `json:"id"`
	OwnerID          uint              `json:"owner_id"`
	Name             string            `json:"name"`
	Details          []DetailEntry     `json:"details"`
	ManualOperations []ManualOperation `json:"manual_operations"`
	Expenses         []Expense         `json:"expenses"`
}

// IsEmpty reports whether the project declares nothing at all.
func (p Project) IsEmpty() bool {
	return len(p.Details) == 0 && len(p.ManualOperations) == 0 && len(p.Expenses) == 0
}

// DetailEntry declares Quantity pieces of a detail type.
type DetailEntry struct {
	DetailTypeID uint            `json:"detail_type_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ManualOperation is labor applied to the project directly, outside any detail type.
type ManualOperation struct {
	OperationID uint            `json:"operation_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Note        string          `json:"note,omitempty"`
}

// Expense is a flat cost line with no further structure.
type Expense struct {
	Type        string          `json:"type"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description,omitempty"`
}
