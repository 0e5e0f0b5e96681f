package estimation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// sampleCatalog holds the catalog of the reference example:
// an "L" detail with one edge component (rate 10, qty 1) and a manual operation rate 5.
func sampleCatalog() *memCatalog {
	cat := newMemCatalog()
	cat.addOperation(1, "Edge banding", entity.CategoryEdge, "10")
	cat.addOperation(2, "Assembly on site", entity.CategoryAssembly, "5")
	cat.details[1] = entity.DetailType{
		ID:             1,
		Name:           "Side panel",
		EdgeProcessing: entity.EdgeAdjacent,
		Components:     []entity.Component{{OperationID: 1, Quantity: dec("1")}},
		Origin:         entity.OriginSystem,
	}
	return cat
}

func sampleProject() entity.Project {
	return entity.Project{
		ID:      42,
		OwnerID: 7,
		Name:    "Kitchen",
		Details: []entity.DetailEntry{
			{DetailTypeID: 1, Quantity: dec("3")},
		},
		ManualOperations: []entity.ManualOperation{
			{OperationID: 2, Quantity: dec("2"), Note: "setup"},
		},
		Expenses: []entity.Expense{
			{Type: "Delivery", Cost: dec("50")},
		},
	}
}

func TestBuildReport_EndToEnd(t *testing.T) {
	report, err := NewEngine(sampleCatalog()).BuildReport(context.Background(), sampleProject())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	want := []struct {
		kind                     entity.SourceKind
		label                    string
		qty, unitCost, lineTotal string
	}{
		{entity.SourceDetail, "Side panel", "3", "20", "60"},
		{entity.SourceOperation, "Assembly on site", "2", "5", "10"},
		{entity.SourceExpense, "Delivery", "1", "50", "50"},
	}

	if len(report.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(report.Lines), len(want))
	}
	for i, w := range want {
		line := report.Lines[i]
		if line.Type != w.kind || line.Label != w.label {
			t.Fatalf("line %d = %s/%s, want %s/%s", i, line.Type, line.Label, w.kind, w.label)
		}
		assertDecimal(t, "quantity", line.Quantity, w.qty)
		assertDecimal(t, "unit_cost", line.UnitCost, w.unitCost)
		assertDecimal(t, "line_total", line.LineTotal, w.lineTotal)
	}
	assertDecimal(t, "total", report.Total, "120")

	if report.ProjectID != 42 || report.OwnerID != 7 || report.ProjectName != "Kitchen" {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if len(report.Subtotals) != 3 {
		t.Fatalf("got %d subtotals, want 3", len(report.Subtotals))
	}
	assertDecimal(t, "detail subtotal", report.Subtotals[0].Total, "60")
}

func TestBuildReport_Reproducible(t *testing.T) {
	engine := NewEngine(sampleCatalog())
	project := sampleProject()

	first, err := engine.BuildReport(context.Background(), project)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := engine.BuildReport(context.Background(), project)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("reports differ:\n%s\n%s", a, b)
	}
}

func TestBuildReport_ExpenseOrderDoesNotChangeTotal(t *testing.T) {
	project := entity.Project{
		ID: 1,
		Expenses: []entity.Expense{
			{Type: "Delivery", Cost: dec("0.1")},
			{Type: "Packaging", Cost: dec("0.2")},
			{Type: "Parking", Cost: dec("17.35")},
		},
	}
	reversed := project
	reversed.Expenses = []entity.Expense{project.Expenses[2], project.Expenses[1], project.Expenses[0]}

	engine := NewEngine(newMemCatalog())
	a, err := engine.BuildReport(context.Background(), project)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	b, err := engine.BuildReport(context.Background(), reversed)
	if err != nil {
		t.Fatalf("BuildReport reversed: %v", err)
	}

	assertDecimal(t, "total", a.Total, "17.65")
	if !a.Total.Equal(b.Total) {
		t.Fatalf("totals differ: %s vs %s", a.Total, b.Total)
	}
	if a.Lines[0].Label != "Delivery" || b.Lines[0].Label != "Parking" {
		t.Fatalf("expense lines must keep entry order")
	}
}

func TestBuildReport_EmptyProject(t *testing.T) {
	_, err := NewEngine(newMemCatalog()).BuildReport(context.Background(), entity.Project{ID: 3})
	if !errors.Is(err, types.ErrEmptyProjectReport) {
		t.Fatalf("err = %v, want ErrEmptyProjectReport", err)
	}
}

func TestBuildReport_SingleExpense(t *testing.T) {
	project := entity.Project{ID: 3, Expenses: []entity.Expense{{Type: "Hardware run", Cost: dec("12.99")}}}

	report, err := NewEngine(newMemCatalog()).BuildReport(context.Background(), project)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(report.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(report.Lines))
	}
	assertDecimal(t, "quantity", report.Lines[0].Quantity, "1")
	assertDecimal(t, "total", report.Total, "12.99")
}

func TestBuildReport_FailsAtomically(t *testing.T) {
	cat := sampleCatalog()
	cat.operations[3] = entity.Operation{ID: 3, Name: "Private", Rate: dec("1"), Origin: entity.OriginUser, OwnerID: 100}

	project := sampleProject()
	project.ManualOperations = append(project.ManualOperations, entity.ManualOperation{OperationID: 3, Quantity: dec("1")})

	report, err := NewEngine(cat).BuildReport(context.Background(), project)
	if !errors.Is(err, types.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if report != nil {
		t.Fatalf("expected no report on failure, got %+v", report)
	}

	project.ManualOperations[1].OperationID = 404
	_, err = NewEngine(cat).BuildReport(context.Background(), project)
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBuildReport_RepeatedDetailResolvedOnce(t *testing.T) {
	cat := sampleCatalog()
	project := entity.Project{
		ID: 1,
		Details: []entity.DetailEntry{
			{DetailTypeID: 1, Quantity: dec("1")},
			{DetailTypeID: 1, Quantity: dec("4")},
		},
	}

	report, err := NewEngine(cat).BuildReport(context.Background(), project)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if cat.calls[types.KindDetailType] != 1 || cat.calls[types.KindOperation] != 1 {
		t.Fatalf("expected one lookup per record, got %v", cat.calls)
	}
	assertDecimal(t, "total", report.Total, "100")
}
