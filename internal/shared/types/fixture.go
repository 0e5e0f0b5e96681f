package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CatalogFixture is the on-disk shape of a catalog import file (yaml, toml or json).
// Money and quantities are Amounts here and become decimals on import.
type CatalogFixture struct {
	Operations  []OperationFixture  `json:"operations" yaml:"operations" toml:"operations"`
	Materials   []MaterialFixture   `json:"materials" yaml:"materials" toml:"materials"`
	DetailTypes []DetailTypeFixture `json:"detail_types" yaml:"detail_types" toml:"detail_types"`
	Projects    []ProjectFixture    `json:"projects" yaml:"projects" toml:"projects"`
}

type OperationFixture struct {
	ID       uint   `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Category string `json:"category" yaml:"category" toml:"category"`
	Unit     string `json:"unit" yaml:"unit" toml:"unit"`
	Rate     Amount `json:"rate" yaml:"rate" toml:"rate"`
	Origin   string `json:"origin" yaml:"origin" toml:"origin"`
	Owner    uint   `json:"owner" yaml:"owner" toml:"owner"`
}

type MaterialFixture struct {
	ID        uint   `json:"id" yaml:"id" toml:"id"`
	Name      string `json:"name" yaml:"name" toml:"name"`
	Article   string `json:"article" yaml:"article" toml:"article"`
	Kind      string `json:"kind" yaml:"kind" toml:"kind"`
	Price     Amount `json:"price" yaml:"price" toml:"price"`
	Unit      string `json:"unit" yaml:"unit" toml:"unit"`
	Inactive  bool   `json:"inactive" yaml:"inactive" toml:"inactive"`
	Supplier  string `json:"supplier" yaml:"supplier" toml:"supplier"`
	SourceURL string `json:"source_url" yaml:"source_url" toml:"source_url"`
	Origin    string `json:"origin" yaml:"origin" toml:"origin"`
	Owner     uint   `json:"owner" yaml:"owner" toml:"owner"`
}

type DetailTypeFixture struct {
	ID             uint              `json:"id" yaml:"id" toml:"id"`
	Name           string            `json:"name" yaml:"name" toml:"name"`
	EdgeProcessing string            `json:"edge_processing" yaml:"edge_processing" toml:"edge_processing"`
	Components     []QuantityFixture `json:"components" yaml:"components" toml:"components"`
	Materials      []QuantityFixture `json:"materials" yaml:"materials" toml:"materials"`
	Origin         string            `json:"origin" yaml:"origin" toml:"origin"`
	Owner          uint              `json:"owner" yaml:"owner" toml:"owner"`
}

// QuantityFixture references a catalog record (operation, material or detail type) with a quantity.
type QuantityFixture struct {
	Ref      uint   `json:"ref" yaml:"ref" toml:"ref"`
	Quantity Amount `json:"quantity" yaml:"quantity" toml:"quantity"`
}

// ManualOperationFixture is the only reference that carries a note.
type ManualOperationFixture struct {
	Ref      uint   `json:"ref" yaml:"ref" toml:"ref"`
	Quantity Amount `json:"quantity" yaml:"quantity" toml:"quantity"`
	Note     string `json:"note" yaml:"note" toml:"note"`
}

type ExpenseFixture struct {
	Type        string `json:"type" yaml:"type" toml:"type"`
	Cost        Amount `json:"cost" yaml:"cost" toml:"cost"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

type ProjectFixture struct {
	ID               uint                     `json:"id" yaml:"id" toml:"id"`
	Name             string                   `json:"name" yaml:"name" toml:"name"`
	Owner            uint                     `json:"owner" yaml:"owner" toml:"owner"`
	Details          []QuantityFixture        `json:"details" yaml:"details" toml:"details"`
	ManualOperations []ManualOperationFixture `json:"manual_operations" yaml:"manual_operations" toml:"manual_operations"`
	Expenses         []ExpenseFixture         `json:"expenses" yaml:"expenses" toml:"expenses"`
}

// ImportStats counts rows written by a catalog import.
type ImportStats struct {
	Operations  int
	Materials   int
	DetailTypes int
	Projects    int
}

// Amount is a fixture number. TOML tells integers from floats, so both
// `rate = 5` and `rate = 5.0` have to be accepted.
type Amount float64

// UnmarshalTOML accepts TOML integers as well as floats.
func (a *Amount) UnmarshalTOML(v interface{}) error {
	switch n := v.(type) {
	case int64:
		*a = Amount(n)
	case float64:
		*a = Amount(n)
	default:
		return fmt.Errorf("expected a number, got %T", v)
	}
	return nil
}

// Decimal converts the amount for storage.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a))
}
