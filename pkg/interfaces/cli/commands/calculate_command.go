package commands

import (
	"errors"
	"fmt"
	"time"

	"bomcalc/pkg/application/services"
	"bomcalc/pkg/domain/entities"
	domainservices "bomcalc/pkg/domain/services"
	"bomcalc/pkg/infrastructure/logging"
	csvrepo "bomcalc/pkg/infrastructure/repositories/csv"
	"bomcalc/pkg/interfaces/cli/output"
)

// Config holds configuration for the calculate command
type Config struct {
	BOMFile        string
	PlanFile       string
	ControllerFile string
	Format         string
	OutputDir      string
	RawOnly        bool
	AllLevels      bool
	Rollup         bool
	LogLevel       string
	Verbose        bool
}

// CalculateCommand runs one full requirements computation: load, build
// relations, validate, aggregate, render.
type CalculateCommand struct {
	config Config
}

// NewCalculateCommand creates a calculate command with the given
// configuration.
func NewCalculateCommand(config Config) *CalculateCommand {
	return &CalculateCommand{config: config}
}

// Execute runs the calculation pipeline.
func (c *CalculateCommand) Execute() error {
	logger, err := logging.NewLogger(logging.Config{
		Level:       c.config.LogLevel,
		Development: c.config.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	sink := logging.NewSink(logger, 100)
	loader := csvrepo.NewLoader()

	bom, err := loader.LoadTable("BOM", c.config.BOMFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}

	plan, err := loader.LoadTable("Plan", c.config.PlanFile)
	if err != nil {
		return fmt.Errorf("error loading plan: %w", err)
	}

	engine := services.NewEngine(services.Config{Sink: sink})

	start := time.Now()
	if err := engine.BuildRelations(bom); err != nil {
		return fmt.Errorf("error building BOM relations: %w", err)
	}

	// The controller table is optional: a missing or unreadable file
	// degrades to BOM-derived metadata only.
	if c.config.ControllerFile != "" {
		controller, err := loader.LoadTable("Controller", c.config.ControllerFile)
		if err != nil {
			logger.Sugar().Warnf("skipping controller table: %v", err)
		} else if err := engine.ApplyControllerTable(controller); err != nil {
			logger.Sugar().Warnf("skipping controller table: %v", err)
		}
	}

	validator := domainservices.NewBOMValidator()
	if result := validator.ValidateRelations(engine.Relations()); result.HasCycles {
		for _, msg := range result.Errors {
			logger.Sugar().Errorf("%s", msg)
		}
		return &entities.CyclicBOMError{Chain: result.CyclePaths[0]}
	}

	outConfig := output.Config{Format: c.config.Format, OutputDir: c.config.OutputDir}

	requirements, err := engine.Requirements(plan, services.RequirementsOptions{RawOnly: c.config.RawOnly})
	if err != nil {
		return describeFailure("requirements calculation", err)
	}
	if err := output.Write(requirements.Table("Raw Material Requirements"), outConfig); err != nil {
		return fmt.Errorf("error writing requirements output: %w", err)
	}

	if c.config.AllLevels || c.config.Rollup {
		allLevels, err := engine.AllLevels(plan)
		if err != nil {
			return describeFailure("all-levels calculation", err)
		}
		if c.config.AllLevels {
			if err := output.Write(allLevels.Table("All Levels Requirements"), outConfig); err != nil {
				return fmt.Errorf("error writing all-levels output: %w", err)
			}
		}
		if c.config.Rollup {
			rollup := engine.ManufacturingRollup(allLevels)
			if err := output.Write(engine.RollupTable("Manufacturing Rollup", rollup), outConfig); err != nil {
				return fmt.Errorf("error writing rollup output: %w", err)
			}
		}
	}

	stats := engine.Stats()
	logger.Sugar().Infof(
		"run complete in %v: %d rows read, %d edges built, %d parse warnings",
		time.Since(start).Round(time.Millisecond),
		stats.RowsRead, stats.EdgesBuilt, stats.ParseWarnings,
	)
	return nil
}

// describeFailure keeps schema and cycle errors recognizable to callers
// while naming the stage that failed.
func describeFailure(stage string, err error) error {
	var schemaErr *entities.SchemaError
	var cycleErr *entities.CyclicBOMError
	if errors.As(err, &schemaErr) || errors.As(err, &cycleErr) {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return fmt.Errorf("unexpected error during %s: %w", stage, err)
}
