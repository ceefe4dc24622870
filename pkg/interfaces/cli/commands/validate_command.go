package commands

import (
	"fmt"

	"bomcalc/pkg/application/services"
	domainservices "bomcalc/pkg/domain/services"
	"bomcalc/pkg/infrastructure/logging"
	csvrepo "bomcalc/pkg/infrastructure/repositories/csv"
)

// ValidateCommand checks a BOM file for structural problems without
// running a calculation.
type ValidateCommand struct {
	bomFile  string
	logLevel string
}

// NewValidateCommand creates a validate command for the given BOM file.
func NewValidateCommand(bomFile, logLevel string) *ValidateCommand {
	return &ValidateCommand{bomFile: bomFile, logLevel: logLevel}
}

// Execute loads the BOM, builds relations, and reports cycles.
func (c *ValidateCommand) Execute() error {
	logger, err := logging.NewLogger(logging.Config{Level: c.logLevel})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	loader := csvrepo.NewLoader()
	bom, err := loader.LoadTable("BOM", c.bomFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	engine := services.NewEngine(services.Config{Sink: logging.NewSink(logger, 100)})
	if err := engine.BuildRelations(bom); err != nil {
		return fmt.Errorf("error building BOM relations: %w", err)
	}

	stats := engine.Stats()
	fmt.Printf("BOM structure:\n")
	fmt.Printf("  Rows read:            %d\n", stats.RowsRead)
	fmt.Printf("  Empty rows dropped:   %d\n", stats.EmptyDropped)
	fmt.Printf("  Incomplete dropped:   %d\n", stats.MissingDropped)
	fmt.Printf("  Exact dups dropped:   %d\n", stats.ExactDupDropped)
	fmt.Printf("  Edge dups collapsed:  %d\n", stats.EdgeDupDropped)
	fmt.Printf("  Parse warnings:       %d\n", stats.ParseWarnings)
	fmt.Printf("  Edges built:          %d\n", stats.EdgesBuilt)

	validator := domainservices.NewBOMValidator()
	result := validator.ValidateRelations(engine.Relations())
	if result.HasCycles {
		fmt.Printf("\n❌ %d cycle(s) found:\n", len(result.CyclePaths))
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
		return fmt.Errorf("BOM validation failed: %d cycle(s)", len(result.CyclePaths))
	}

	fmt.Println("\n✅ No cycles found")
	return nil
}
