package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diillson/joinery-estimator-go/internal/domain/entity"
	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// Import writes a catalog fixture in a single transaction.
// Records keep the ids declared in the fixture, so re-importing a file updates
// the same rows and replaces their child lists.
func (r *Repository) Import(ctx context.Context, fixture *types.CatalogFixture) (types.ImportStats, error) {
	ops, err := operationModels(fixture.Operations)
	if err != nil {
		return types.ImportStats{}, err
	}
	mats, err := materialModels(fixture.Materials)
	if err != nil {
		return types.ImportStats{}, err
	}
	details, err := detailTypeModels(fixture.DetailTypes)
	if err != nil {
		return types.ImportStats{}, err
	}
	projects, err := projectModels(fixture.Projects)
	if err != nil {
		return types.ImportStats{}, err
	}

	upsert := clause.OnConflict{UpdateAll: true}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range ops {
			if err := tx.Clauses(upsert).Create(&ops[i]).Error; err != nil {
				return fmt.Errorf("failed to import operation %d: %w", ops[i].ID, err)
			}
		}
		for i := range mats {
			if err := tx.Clauses(upsert).Create(&mats[i]).Error; err != nil {
				return fmt.Errorf("failed to import material %d: %w", mats[i].ID, err)
			}
		}

		for i := range details {
			d := &details[i]
			if err := tx.Omit(clause.Associations).Clauses(upsert).Create(d).Error; err != nil {
				return fmt.Errorf("failed to import detail type %d: %w", d.ID, err)
			}
			if err := replaceChildren(tx, "detail_type_id", d.ID, &DetailComponentModel{}, d.Components); err != nil {
				return err
			}
			if err := replaceChildren(tx, "detail_type_id", d.ID, &DetailMaterialModel{}, d.Materials); err != nil {
				return err
			}
		}

		for i := range projects {
			p := &projects[i]
			if err := tx.Omit(clause.Associations).Clauses(upsert).Create(p).Error; err != nil {
				return fmt.Errorf("failed to import project %d: %w", p.ID, err)
			}
			if err := replaceChildren(tx, "project_id", p.ID, &ProjectDetailModel{}, p.Details); err != nil {
				return err
			}
			if err := replaceChildren(tx, "project_id", p.ID, &ProjectManualOperationModel{}, p.ManualOperations); err != nil {
				return err
			}
			if err := replaceChildren(tx, "project_id", p.ID, &ProjectExpenseModel{}, p.Expenses); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return types.ImportStats{}, err
	}

	return types.ImportStats{
		Operations:  len(ops),
		Materials:   len(mats),
		DetailTypes: len(details),
		Projects:    len(projects),
	}, nil
}

func replaceChildren[T any](tx *gorm.DB, parentColumn string, parentID uint, model *T, rows []T) error {
	if err := tx.Where(parentColumn+" = ?", parentID).Delete(model).Error; err != nil {
		return fmt.Errorf("failed to clear %T rows: %w", model, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert %T rows: %w", model, err)
	}
	return nil
}

func invalidRecord(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", types.ErrInvalidCatalogRecord, fmt.Sprintf(format, a...))
}

func recordOrigin(origin string, owner uint) (string, error) {
	switch entity.Origin(origin) {
	case "":
		if owner != 0 {
			return string(entity.OriginUser), nil
		}
		return string(entity.OriginSystem), nil
	case entity.OriginSystem, entity.OriginParser:
		return origin, nil
	case entity.OriginUser:
		if owner == 0 {
			return "", fmt.Errorf("user record without owner")
		}
		return origin, nil
	}
	return "", fmt.Errorf("unknown origin %q", origin)
}

func positiveQuantity(q types.Amount) (decimal.Decimal, bool) {
	d := q.Decimal()
	return d, d.IsPositive()
}

func operationModels(in []types.OperationFixture) ([]OperationModel, error) {
	out := make([]OperationModel, 0, len(in))
	for _, f := range in {
		if f.ID == 0 {
			return nil, invalidRecord("operation %q has no id", f.Name)
		}
		origin, err := recordOrigin(f.Origin, f.Owner)
		if err != nil {
			return nil, invalidRecord("operation %d: %v", f.ID, err)
		}
		rate := f.Rate.Decimal()
		if rate.IsNegative() {
			return nil, invalidRecord("operation %d: negative rate %s", f.ID, rate)
		}
		category := entity.OperationCategory(f.Category)
		if category == "" {
			category = entity.CategoryOther
		}
		if !category.Valid() {
			return nil, invalidRecord("operation %d: unknown category %q", f.ID, f.Category)
		}
		out = append(out, OperationModel{
			ID:       f.ID,
			Name:     f.Name,
			Category: string(category),
			Unit:     f.Unit,
			Rate:     rate,
			Origin:   origin,
			OwnerID:  f.Owner,
		})
	}
	return out, nil
}

func materialModels(in []types.MaterialFixture) ([]MaterialModel, error) {
	out := make([]MaterialModel, 0, len(in))
	for _, f := range in {
		if f.ID == 0 {
			return nil, invalidRecord("material %q has no id", f.Name)
		}
		origin, err := recordOrigin(f.Origin, f.Owner)
		if err != nil {
			return nil, invalidRecord("material %d: %v", f.ID, err)
		}
		price := f.Price.Decimal()
		if price.IsNegative() {
			return nil, invalidRecord("material %d: negative price %s", f.ID, price)
		}

		kind := entity.MaterialKind(f.Kind)
		expected, ok := kind.ExpectedUnit()
		if !ok {
			return nil, invalidRecord("material %d: unknown kind %q", f.ID, f.Kind)
		}
		unit := entity.MeasureUnit(f.Unit)
		if unit == "" {
			unit = expected
		}
		if unit != expected {
			return nil, invalidRecord("material %d: %s must be priced per %s, got %s", f.ID, kind, expected, unit)
		}

		out = append(out, MaterialModel{
			ID:           f.ID,
			Name:         f.Name,
			Article:      f.Article,
			Kind:         string(kind),
			PricePerUnit: price,
			Unit:         string(unit),
			Active:       !f.Inactive,
			Supplier:     f.Supplier,
			SourceURL:    f.SourceURL,
			Origin:       origin,
			OwnerID:      f.Owner,
		})
	}
	return out, nil
}

func detailTypeModels(in []types.DetailTypeFixture) ([]DetailTypeModel, error) {
	out := make([]DetailTypeModel, 0, len(in))
	for _, f := range in {
		if f.ID == 0 {
			return nil, invalidRecord("detail type %q has no id", f.Name)
		}
		origin, err := recordOrigin(f.Origin, f.Owner)
		if err != nil {
			return nil, invalidRecord("detail type %d: %v", f.ID, err)
		}

		edge := entity.EdgeProcessing(f.EdgeProcessing)
		if edge == "" {
			edge = entity.EdgeNone
		}
		if !edge.Valid() {
			return nil, fmt.Errorf("detail type %d: %w: unknown edge processing code %q", f.ID, types.ErrInvalidDetailType, f.EdgeProcessing)
		}

		m := DetailTypeModel{
			ID:             f.ID,
			Name:           f.Name,
			EdgeProcessing: string(edge),
			Origin:         origin,
			OwnerID:        f.Owner,
		}
		for i, c := range f.Components {
			qty, ok := positiveQuantity(c.Quantity)
			if !ok {
				return nil, fmt.Errorf("detail type %d: %w: component %d has non-positive quantity", f.ID, types.ErrInvalidDetailType, i+1)
			}
			m.Components = append(m.Components, DetailComponentModel{DetailTypeID: f.ID, Position: i, OperationID: c.Ref, Quantity: qty})
		}
		for i, u := range f.Materials {
			qty, ok := positiveQuantity(u.Quantity)
			if !ok {
				return nil, fmt.Errorf("detail type %d: %w: material usage %d has non-positive quantity", f.ID, types.ErrInvalidDetailType, i+1)
			}
			m.Materials = append(m.Materials, DetailMaterialModel{DetailTypeID: f.ID, Position: i, MaterialID: u.Ref, Quantity: qty})
		}
		out = append(out, m)
	}
	return out, nil
}

func projectModels(in []types.ProjectFixture) ([]ProjectModel, error) {
	out := make([]ProjectModel, 0, len(in))
	for _, f := range in {
		if f.ID == 0 {
			return nil, invalidRecord("project %q has no id", f.Name)
		}
		if f.Owner == 0 {
			return nil, invalidRecord("project %d has no owner", f.ID)
		}

		m := ProjectModel{ID: f.ID, OwnerID: f.Owner, Name: f.Name}
		for i, d := range f.Details {
			qty, ok := positiveQuantity(d.Quantity)
			if !ok {
				return nil, invalidRecord("project %d: detail %d has non-positive quantity", f.ID, i+1)
			}
			m.Details = append(m.Details, ProjectDetailModel{ProjectID: f.ID, Position: i, DetailTypeID: d.Ref, Quantity: qty})
		}
		for i, o := range f.ManualOperations {
			qty, ok := positiveQuantity(o.Quantity)
			if !ok {
				return nil, invalidRecord("project %d: manual operation %d has non-positive quantity", f.ID, i+1)
			}
			m.ManualOperations = append(m.ManualOperations, ProjectManualOperationModel{ProjectID: f.ID, Position: i, OperationID: o.Ref, Quantity: qty, Note: o.Note})
		}
		for i, e := range f.Expenses {
			m.Expenses = append(m.Expenses, ProjectExpenseModel{ProjectID: f.ID, Position: i, Type: e.Type, Cost: e.Cost.Decimal(), Description: e.Description})
		}
		out = append(out, m)
	}
	return out, nil
}
