package export

import (
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

var csvHeader = []string{"type", "label", "quantity", "unit_cost", "line_total"}

// ExportToCSV grava uma linha por item de custo, depois uma por subtotal e por fim a linha de total.
func (r *ExportRepositoryImpl) ExportToCSV(report *entity.EstimationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(csvRecords(report)); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func csvRecords(report *entity.EstimationReport) [][]string {
	records := make([][]string, 0, len(report.Lines)+len(report.Subtotals)+2)
	records = append(records, csvHeader)

	for _, line := range report.Lines {
		records = append(records, []string{
			string(line.Type),
			line.Label,
			line.Quantity.String(),
			line.UnitCost.String(),
			line.LineTotal.String(),
		})
	}
	for _, sub := range report.Subtotals {
		records = append(records, []string{
			"subtotal",
			string(sub.Type),
			fmt.Sprintf("%d", sub.Lines),
			"",
			sub.Total.String(),
		})
	}
	records = append(records, []string{"total", report.ProjectName, "", "", report.Total.String()})

	return records
}

// ExportToJSON grava o relatório como JSON indentado. A saída depende apenas do relatório.
func (r *ExportRepositoryImpl) ExportToJSON(report *entity.EstimationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF gera o relatório em páginas A4 retrato.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.EstimationReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, err := renderPDF(report)
	if err != nil {
		return "", err
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

//go:embed fonts/DejaVuSansCondensed.ttf
var pdfFontRegular []byte

//go:embed fonts/DejaVuSansCondensed-Bold.ttf
var pdfFontBold []byte

// pdfFont cobre cirílico e latim, então nomes e notas vão para o PDF sem tradução de código de página.
const pdfFont = "DejaVu"

func renderPDF(report *entity.EstimationReport) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFont, "", pdfFontRegular)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", pdfFontBold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("error loading PDF fonts: %w", err)
	}

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generated := time.Now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(pdfFont, "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated by Joinery Estimator | %s", generated), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont(pdfFont, "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 12, "  "+truncateRunes(report.ProjectName, 80), "", 1, "L", true, 0, "")

	pdf.SetFont(pdfFont, "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, fmt.Sprintf("  Project #%d | Owner #%d", report.ProjectID, report.OwnerID), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Cost Lines")

	widths := []float64{25, 85, 25, 27.5, 27.5}
	pdf.SetFont(pdfFont, "B", 9)
	for i, h := range []string{"Type", "Label", "Quantity", "Unit cost", "Line total"} {
		align := "R"
		if i < 2 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 9)
	for _, line := range report.Lines {
		label := line.Label
		if line.Note != "" {
			label = fmt.Sprintf("%s (%s)", label, line.Note)
		}
		pdf.CellFormat(widths[0], 6, string(line.Type), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, truncateRunes(label, 55), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, line.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, line.UnitCost.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, line.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	sectionTitle("Subtotals")
	pdf.SetFont(pdfFont, "", 10)
	for _, sub := range report.Subtotals {
		pdf.CellFormat(110, 6, fmt.Sprintf("%s (%d lines)", sub.Type, sub.Lines), "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, sub.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 16)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.CellFormat(110, 12, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(80, 12, report.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	return pdf, nil
}

// truncateRunes corta s em no máximo limit caracteres, terminando com "...".
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
