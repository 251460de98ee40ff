package editor

import (
	"strings"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

// AddColumnInput holds parameters for adding a column to the code table.
type AddColumnInput struct {
	Name     string
	DataType string
}

// Validate checks the column name against the identifier guard and
// normalizes DataType to its canonical form.
func (i *AddColumnInput) Validate() error {
	if i.Name == "" {
		return domain.NewMissingFieldError("columnName")
	}
	if err := domain.ValidateIdentifier(i.Name); err != nil {
		return err
	}

	dataType, err := domain.NormalizeDataType(i.DataType)
	if err != nil {
		return err
	}
	i.DataType = dataType
	return nil
}

// UpdateCellInput holds parameters for a single-cell update.
type UpdateCellInput struct {
	Code     string
	Column   string
	NewValue string
}

// Validate checks the input. Column is guarded before the code is checked
// so that an injection attempt is reported as such. The code column is the
// primary key and never accepts a blank value.
func (i UpdateCellInput) Validate() error {
	if i.Column == "" {
		return domain.NewMissingFieldError("columnName")
	}
	if err := domain.ValidateIdentifier(i.Column); err != nil {
		return err
	}
	if strings.TrimSpace(i.Code) == "" {
		return domain.NewMissingFieldError("id")
	}
	if i.Column == domain.ColumnCode && strings.TrimSpace(i.NewValue) == "" {
		return domain.NewMissingFieldError(domain.ColumnCode)
	}
	return nil
}

// AddRowInput holds the new row's column values in request order.
// Values are strings or nil.
type AddRowInput struct {
	Fields []domain.Field
}

// Validate guards every column name and requires a non-blank code.
func (i AddRowInput) Validate() error {
	seen := make(map[string]bool, len(i.Fields))
	for _, f := range i.Fields {
		if err := domain.ValidateIdentifier(f.Column); err != nil {
			return err
		}
		if seen[f.Column] {
			return domain.NewValidationError(f.Column, "duplicate column")
		}
		seen[f.Column] = true
	}

	rec := domain.CodeRecord{Fields: i.Fields}
	if strings.TrimSpace(rec.Code()) == "" {
		return domain.NewMissingFieldError(domain.ColumnCode)
	}
	return nil
}

// DeleteRowInput identifies the row to delete.
type DeleteRowInput struct {
	Code string
}

// Validate requires a non-blank code.
func (i DeleteRowInput) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return domain.NewMissingFieldError("id")
	}
	return nil
}
