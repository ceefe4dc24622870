package main

import (
	"fmt"

	"bomcalc/pkg/application/services"
	"bomcalc/pkg/domain/entities"
)

func main() {
	// A small chocolate bar BOM: finished good 3001 is built from
	// manufactured intermediate 2001, which consumes raw materials
	// 1001 (cocoa mass, grams per unit) and 1002 (foil wrap, pieces).
	bom := entities.RawTable{
		Name:    "BOM",
		Columns: []string{"Parent Material", "Component", "Component Quantity", "Component Description", "Component UoM"},
		Rows: [][]string{
			{"3001", "2001", "1", "Molded bar", "EA"},
			{"2001", "1001", "500", "Cocoa mass", "G"},
			{"2001", "1002", "1", "Foil wrap", "EA"},
		},
	}

	plan := entities.RawTable{
		Name:    "Plan",
		Columns: []string{"Material", "Jan", "Feb"},
		Rows: [][]string{
			{"3001", "1000", "1500"},
		},
	}

	engine := services.NewEngine(services.Config{})
	if err := engine.BuildRelations(bom); err != nil {
		fmt.Printf("failed to build relations: %v\n", err)
		return
	}

	perUnit, err := engine.Explode("3001")
	if err != nil {
		fmt.Printf("explosion failed: %v\n", err)
		return
	}
	fmt.Println("Per unit of 3001:")
	for code, qty := range perUnit {
		info, _ := engine.MaterialInfo(code)
		fmt.Printf("  %s (%s): %s %s\n", code, info.Description, qty, info.StandardizedUnit)
	}

	requirements, err := engine.Requirements(plan, services.RequirementsOptions{RawOnly: true})
	if err != nil {
		fmt.Printf("requirements failed: %v\n", err)
		return
	}

	fmt.Println("\nRaw material requirements:")
	table := requirements.Table("Raw Material Requirements")
	for _, row := range table.Rows {
		fmt.Printf("  %v\n", row)
	}
}
