package repository

import (
	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report *entity.EstimationReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.EstimationReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.EstimationReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.EstimationReport, filename string, outputDir string) (string, error)
}
