package repository

import (
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadCatalogFile(filePath string) (*types.CatalogFixture, error)
}
