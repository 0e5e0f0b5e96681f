package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
)

// OperationModel is a priced unit of labor.
type OperationModel struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"size:255;not null"`
	Category  string          `gorm:"size:32;not null;default:other"`
	Unit      string          `gorm:"size:16"`
	Rate      decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Origin    string          `gorm:"size:16;not null;index"`
	OwnerID   uint            `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OperationModel) TableName() string {
	return "operations"
}

// MaterialModel stores both system materials and user materials.
type MaterialModel struct {
	ID           uint            `gorm:"primaryKey"`
	Name         string          `gorm:"size:255;not null"`
	Article      string          `gorm:"size:64;index"`
	Kind         string          `gorm:"size:16;not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Unit         string          `gorm:"size:16;not null"`
	Active       bool            `gorm:"not null;default:true"`
	Supplier     string          `gorm:"size:255"`
	SourceURL    string          `gorm:"size:1024"`
	Origin       string          `gorm:"size:16;not null;index"`
	OwnerID      uint            `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MaterialModel) TableName() string {
	return "materials"
}

// DetailTypeModel is a furnishing piece template.
type DetailTypeModel struct {
	ID             uint                   `gorm:"primaryKey"`
	Name           string                 `gorm:"size:255;not null"`
	EdgeProcessing string                 `gorm:"size:8;not null;default:none"`
	Origin         string                 `gorm:"size:16;not null;index"`
	OwnerID        uint                   `gorm:"index"`
	Components     []DetailComponentModel `gorm:"foreignKey:DetailTypeID;constraint:OnDelete:CASCADE"`
	Materials      []DetailMaterialModel  `gorm:"foreignKey:DetailTypeID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DetailTypeModel) TableName() string {
	return "detail_types"
}

type DetailComponentModel struct {
	ID           uint            `gorm:"primaryKey"`
	DetailTypeID uint            `gorm:"not null;index"`
	Position     int             `gorm:"not null;default:0"`
	OperationID  uint            `gorm:"not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
}

func (DetailComponentModel) TableName() string {
	return "detail_components"
}

type DetailMaterialModel struct {
	ID           uint            `gorm:"primaryKey"`
	DetailTypeID uint            `gorm:"not null;index"`
	Position     int             `gorm:"not null;default:0"`
	MaterialID   uint            `gorm:"not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
}

func (DetailMaterialModel) TableName() string {
	return "detail_materials"
}

// ProjectModel is a user's estimation project with its declarations.
type ProjectModel struct {
	ID               uint                          `gorm:"primaryKey"`
	OwnerID          uint                          `gorm:"not null;index"`
	Name             string                        `gorm:"size:255;not null"`
	Details          []ProjectDetailModel          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ManualOperations []ProjectManualOperationModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Expenses         []ProjectExpenseModel         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ProjectModel) TableName() string {
	return "projects"
}

type ProjectDetailModel struct {
	ID           uint            `gorm:"primaryKey"`
	ProjectID    uint            `gorm:"not null;index"`
	Position     int             `gorm:"not null;default:0"`
	DetailTypeID uint            `gorm:"not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(14,4);not null"`
}

func (ProjectDetailModel) TableName() string {
	return "project_details"
}

type ProjectManualOperationModel struct {
	ID          uint            `gorm:"primaryKey"`
	ProjectID   uint            `gorm:"not null;index"`
	Position    int             `gorm:"not null;default:0"`
	OperationID uint            `gorm:"not null;index"`
	Quantity    decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Note        string          `gorm:"type:text"`
}

func (ProjectManualOperationModel) TableName() string {
	return "project_manual_operations"
}

type ProjectExpenseModel struct {
	ID          uint            `gorm:"primaryKey"`
	ProjectID   uint            `gorm:"not null;index"`
	Position    int             `gorm:"not null;default:0"`
	Type        string          `gorm:"size:255;not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Description string          `gorm:"type:text"`
}

func (ProjectExpenseModel) TableName() string {
	return "project_expenses"
}

func (m OperationModel) toEntity() entity.Operation {
	return entity.Operation{
		ID:       m.ID,
		Name:     m.Name,
		Category: entity.OperationCategory(m.Category),
		Unit:     entity.MeasureUnit(m.Unit),
		Rate:     m.Rate,
		Origin:   entity.Origin(m.Origin),
		OwnerID:  m.OwnerID,
	}
}

func (m MaterialModel) toEntity() entity.Material {
	return entity.Material{
		ID:           m.ID,
		Name:         m.Name,
		Article:      m.Article,
		Kind:         entity.MaterialKind(m.Kind),
		PricePerUnit: m.PricePerUnit,
		Unit:         entity.MeasureUnit(m.Unit),
		Active:       m.Active,
		Supplier:     m.Supplier,
		SourceURL:    m.SourceURL,
		Origin:       entity.Origin(m.Origin),
		OwnerID:      m.OwnerID,
	}
}

func (m DetailTypeModel) toEntity() entity.DetailType {
	d := entity.DetailType{
		ID:             m.ID,
		Name:           m.Name,
		EdgeProcessing: entity.EdgeProcessing(m.EdgeProcessing),
		Components:     make([]entity.Component, 0, len(m.Components)),
		Origin:         entity.Origin(m.Origin),
		OwnerID:        m.OwnerID,
	}
	for _, c := range m.Components {
		d.Components = append(d.Components, entity.Component{OperationID: c.OperationID, Quantity: c.Quantity})
	}
	for _, u := range m.Materials {
		d.Materials = append(d.Materials, entity.MaterialUsage{MaterialID: u.MaterialID, Quantity: u.Quantity})
	}
	return d
}

func (m ProjectModel) toEntity() entity.Project {
	p := entity.Project{
		ID:      m.ID,
		OwnerID: m.OwnerID,
		Name:    m.Name,
	}
	for _, d := range m.Details {
		p.Details = append(p.Details, entity.DetailEntry{DetailTypeID: d.DetailTypeID, Quantity: d.Quantity})
	}
	for _, o := range m.ManualOperations {
		p.ManualOperations = append(p.ManualOperations, entity.ManualOperation{OperationID: o.OperationID, Quantity: o.Quantity, Note: o.Note})
	}
	for _, e := range m.Expenses {
		p.Expenses = append(p.Expenses, entity.Expense{Type: e.Type, Cost: e.Cost, Description: e.Description})
	}
	return p
}
