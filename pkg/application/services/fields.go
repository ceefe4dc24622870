package services

import (
	"strings"

	"bomcalc/pkg/domain/entities"
)

// FieldSpec declares one logical input field and the header spellings
// accepted for it. Aliases are matched case-insensitively against
// trimmed headers; resolution happens once per table, before any row is
// touched.
type FieldSpec struct {
	Field    string
	Aliases  []string
	Required bool
}

// Logical field names for the BOM table.
const (
	FieldParent      = "Parent Material"
	FieldComponent   = "Component"
	FieldQuantity    = "Quantity"
	FieldDescription = "Component Description"
	FieldUnit        = "UoM"
)

// Logical field names for the controller table.
const (
	FieldMaterial   = "Material"
	FieldController = "Controller"
)

// DefaultBOMFields returns the header synonyms accepted for each logical
// BOM column.
func DefaultBOMFields() []FieldSpec {
	return []FieldSpec{
		{Field: FieldParent, Aliases: []string{"parent material", "parent", "parent code"}, Required: true},
		{Field: FieldComponent, Aliases: []string{"component", "component material", "child"}, Required: true},
		{Field: FieldQuantity, Aliases: []string{"component quantity", "component_quantity", "qty", "quantity"}, Required: true},
		{Field: FieldDescription, Aliases: []string{"component description", "comp description", "component desc", "description"}},
		{Field: FieldUnit, Aliases: []string{"component uom", "uom", "unit of measure", "unit"}},
	}
}

// DefaultControllerFields returns the header synonyms for the optional
// material master table.
func DefaultControllerFields() []FieldSpec {
	return []FieldSpec{
		{Field: FieldMaterial, Aliases: []string{"material", "material code", "code", "component"}, Required: true},
		{Field: FieldDescription, Aliases: []string{"description", "material description", "component description"}},
		{Field: FieldController, Aliases: []string{"controller", "mrp controller", "controller tag"}},
	}
}

// resolveColumns maps each logical field to a column index in the table
// header. Missing optional fields are simply absent from the result;
// missing required fields fail with a SchemaError naming all of them.
func resolveColumns(table entities.RawTable, fields []FieldSpec) (map[string]int, error) {
	byName := make(map[string]int, len(table.Columns))
	for i, col := range table.Columns {
		name := strings.ToLower(strings.TrimSpace(col))
		if _, ok := byName[name]; !ok {
			byName[name] = i
		}
	}

	cols := make(map[string]int, len(fields))
	var missing []string
	for _, f := range fields {
		found := false
		for _, alias := range f.Aliases {
			if i, ok := byName[alias]; ok {
				cols[f.Field] = i
				found = true
				break
			}
		}
		if !found && f.Required {
			missing = append(missing, f.Field)
		}
	}

	if len(missing) > 0 {
		return nil, &entities.SchemaError{Table: table.Name, Missing: missing}
	}
	return cols, nil
}
