package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/joinery-estimator-go/internal/domain/repository"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := decodeFile(filePath, "config", false, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadCatalogFile carrega um catálogo (operações, materiais, tipos de detalhe e projetos) para importação.
// Chaves desconhecidas, como uma nota fora de manual_operations, são rejeitadas.
func (r *ConfigRepositoryImpl) LoadCatalogFile(filePath string) (*types.CatalogFixture, error) {
	var fixture types.CatalogFixture
	if err := decodeFile(filePath, "catalog", true, &fixture); err != nil {
		return nil, err
	}
	return &fixture, nil
}

func decodeFile(filePath, what string, strict bool, out interface{}) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing %s file: %w", what, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading %s file: %w", what, err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(fileData)).Strict(strict).Decode(out); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(fileData))
		decoder.KnownFields(strict)
		// arquivo vazio ou só com comentários
		if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		if strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(out); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported %s file format: %s", what, fileExtension)
	}

	return nil
}
