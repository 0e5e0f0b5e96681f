package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
)

const xlsxSheet = "Estimate"

// ExportToXLSX grava o relatório em uma única planilha "Estimate".
// Os valores são gravados como números; CSV e JSON mantêm o texto decimal exato.
func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.EstimationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), xlsxSheet); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}

	row := 1
	setRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(xlsxSheet, cell, &values)
	}

	if err := setRow([]interface{}{fmt.Sprintf("Project #%d", report.ProjectID), report.ProjectName}); err != nil {
		return "", fmt.Errorf("error writing XLSX title: %w", err)
	}
	row++

	header := make([]interface{}, 0, len(csvHeader)+1)
	for _, h := range csvHeader {
		header = append(header, h)
	}
	header = append(header, "note")
	if err := setRow(header); err != nil {
		return "", fmt.Errorf("error writing XLSX header: %w", err)
	}

	for _, line := range report.Lines {
		values := []interface{}{
			string(line.Type),
			line.Label,
			line.Quantity.InexactFloat64(),
			line.UnitCost.InexactFloat64(),
			line.LineTotal.InexactFloat64(),
			line.Note,
		}
		if err := setRow(values); err != nil {
			return "", fmt.Errorf("error writing XLSX line: %w", err)
		}
	}
	row++

	for _, sub := range report.Subtotals {
		if err := setRow([]interface{}{"subtotal", string(sub.Type), sub.Lines, nil, sub.Total.InexactFloat64()}); err != nil {
			return "", fmt.Errorf("error writing XLSX subtotal: %w", err)
		}
	}
	if err := setRow([]interface{}{"total", nil, nil, nil, report.Total.InexactFloat64()}); err != nil {
		return "", fmt.Errorf("error writing XLSX total: %w", err)
	}

	_ = f.SetColWidth(xlsxSheet, "B", "B", 40)
	_ = f.SetColWidth(xlsxSheet, "F", "F", 30)

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
