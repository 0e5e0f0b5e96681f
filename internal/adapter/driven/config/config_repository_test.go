package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFileFormats(t *testing.T) {
	files := map[string]string{
		"config.toml": `
db_type = "sqlite"
dsn = "estimates.db"
user = 7
projects = [10, 11]
report_type = ["json", "pdf"]
s3_bucket = "estimates"
`,
		"config.yaml": `
db_type: sqlite
dsn: estimates.db
user: 7
projects: [10, 11]
report_type: [json, pdf]
s3_bucket: estimates
`,
		"config.json": `{
  "db_type": "sqlite",
  "dsn": "estimates.db",
  "user": 7,
  "projects": [10, 11],
  "report_type": ["json", "pdf"],
  "s3_bucket": "estimates"
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if cfg.DBType != "sqlite" || cfg.DSN != "estimates.db" || cfg.User != 7 {
				t.Fatalf("unexpected config: %+v", cfg)
			}
			if len(cfg.Projects) != 2 || cfg.Projects[1] != 11 {
				t.Fatalf("projects = %v", cfg.Projects)
			}
			if len(cfg.ReportType) != 2 || cfg.ReportType[0] != "json" {
				t.Fatalf("report types = %v", cfg.ReportType)
			}
			if cfg.S3Bucket != "estimates" {
				t.Fatalf("s3 bucket = %q", cfg.S3Bucket)
			}
		})
	}
}

func TestLoadCatalogFileYAML(t *testing.T) {
	path := writeFile(t, "catalog.yml", `
operations:
  - id: 1
    name: Edge banding
    category: edge
    unit: m
    rate: 10.5
materials:
  - id: 1
    name: Chipboard
    kind: plate
    price: 12.0
detail_types:
  - id: 1
    name: Shelf
    edge_processing: "П"
    components:
      - ref: 1
        quantity: 1.0
projects:
  - id: 10
    name: Kitchen
    owner: 7
    details:
      - ref: 1
        quantity: 2.0
    expenses:
      - type: Delivery
        cost: 50.0
        description: city
`)

	fixture, err := NewConfigRepository().LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if len(fixture.Operations) != 1 || fixture.Operations[0].Rate != 10.5 {
		t.Fatalf("operations = %+v", fixture.Operations)
	}
	if len(fixture.DetailTypes) != 1 || fixture.DetailTypes[0].EdgeProcessing != "П" {
		t.Fatalf("detail types = %+v", fixture.DetailTypes)
	}
	if len(fixture.Projects) != 1 || len(fixture.Projects[0].Expenses) != 1 {
		t.Fatalf("projects = %+v", fixture.Projects)
	}
	if fixture.Projects[0].Expenses[0].Cost != 50 {
		t.Fatalf("expense cost = %v", fixture.Projects[0].Expenses[0].Cost)
	}
}

func TestLoadCatalogFileTOML(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[operations]]
id = 1
name = "Cutting"
category = "cutting"
unit = "m"
rate = 5.0

[[projects]]
id = 10
name = "Kitchen"
owner = 7

  [[projects.manual_operations]]
  ref = 1
  quantity = 3.0
  note = "extra cut"
`)

	fixture, err := NewConfigRepository().LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if len(fixture.Operations) != 1 || fixture.Operations[0].Name != "Cutting" {
		t.Fatalf("operations = %+v", fixture.Operations)
	}
	if len(fixture.Projects) != 1 || len(fixture.Projects[0].ManualOperations) != 1 {
		t.Fatalf("projects = %+v", fixture.Projects)
	}
	if fixture.Projects[0].ManualOperations[0].Note != "extra cut" {
		t.Fatalf("note = %q", fixture.Projects[0].ManualOperations[0].Note)
	}
}

func TestLoadCatalogFileTOMLIntegerAmounts(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[operations]]
id = 1
name = "Cutting"
category = "cutting"
unit = "m"
rate = 5

[[materials]]
id = 1
name = "Chipboard"
kind = "plate"
price = 12

[[detail_types]]
id = 1
name = "Shelf"

  [[detail_types.components]]
  ref = 1
  quantity = 2

[[projects]]
id = 10
name = "Kitchen"
owner = 7

  [[projects.manual_operations]]
  ref = 1
  quantity = 3

  [[projects.expenses]]
  type = "Delivery"
  cost = 50
`)

	fixture, err := NewConfigRepository().LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if fixture.Operations[0].Rate != 5 || fixture.Materials[0].Price != 12 {
		t.Fatalf("rate = %v, price = %v", fixture.Operations[0].Rate, fixture.Materials[0].Price)
	}
	if fixture.DetailTypes[0].Components[0].Quantity != 2 {
		t.Fatalf("component quantity = %v", fixture.DetailTypes[0].Components[0].Quantity)
	}
	project := fixture.Projects[0]
	if project.ManualOperations[0].Quantity != 3 || project.Expenses[0].Cost != 50 {
		t.Fatalf("project = %+v", project)
	}
	if !project.Expenses[0].Cost.Decimal().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("cost decimal = %s", project.Expenses[0].Cost.Decimal())
	}

	path = writeFile(t, "bad.toml", `
[[operations]]
id = 1
rate = "five"
`)
	if _, err := NewConfigRepository().LoadCatalogFile(path); err == nil {
		t.Fatal("expected error for a non-numeric rate")
	}
}

func TestLoadCatalogFileRejectsMisplacedNote(t *testing.T) {
	files := map[string]string{
		"catalog.yaml": `
detail_types:
  - id: 1
    name: Shelf
    components:
      - ref: 1
        quantity: 1
        note: glue first
`,
		"catalog.toml": `
[[detail_types]]
id = 1
name = "Shelf"

  [[detail_types.components]]
  ref = 1
  quantity = 1
  note = "glue first"
`,
		"catalog.json": `{"detail_types": [{"id": 1, "name": "Shelf", "components": [{"ref": 1, "quantity": 1, "note": "glue first"}]}]}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, content)
			if _, err := NewConfigRepository().LoadCatalogFile(path); err == nil {
				t.Fatal("expected an error for a note on a detail component")
			}
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	if _, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	if _, err := repo.LoadConfigFile(t.TempDir()); err == nil || !strings.Contains(err.Error(), "directory") {
		t.Fatalf("expected directory error, got %v", err)
	}

	path := writeFile(t, "config.ini", "db_type=sqlite")
	if _, err := repo.LoadConfigFile(path); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}

	path = writeFile(t, "broken.json", "{")
	if _, err := repo.LoadCatalogFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
