package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"bomcalc/pkg/domain/entities"
	domainservices "bomcalc/pkg/domain/services"
)

// Sink receives count-based progress updates and human-readable
// diagnostics from the engine. It is purely observational and never
// affects control flow.
type Sink interface {
	Progress(done, total int)
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopSink struct{}

func (nopSink) Progress(done, total int)                 {}
func (nopSink) Infof(format string, args ...interface{}) {}
func (nopSink) Warnf(format string, args ...interface{}) {}

// NopSink discards everything the engine reports.
var NopSink Sink = nopSink{}

// Config holds engine configuration.
type Config struct {
	// Classify assigns materials to Raw/Manufactured/Finished. Defaults
	// to the leading-digit plant convention.
	Classify domainservices.Classifier
	// Sink receives progress and diagnostics. Defaults to NopSink.
	Sink Sink
	// BOMFields overrides the logical-field-to-header-alias table used
	// to resolve BOM columns.
	BOMFields []FieldSpec
}

// BuildStats counts what happened to the input rows during the last
// BuildRelations call.
type BuildStats struct {
	RowsRead           int
	EmptyDropped       int
	MissingDropped     int
	ExactDupDropped    int
	EdgeDupDropped     int
	ParseWarnings      int
	NonPositiveDropped int
	EdgesBuilt         int
}

// Engine computes material requirements by exploding a BOM relation
// graph against a time-phased production plan.
//
// One instance owns all derived state (relations, metadata, traversal
// cache); create a fresh instance per independent input, or rebuild via
// BuildRelations which discards everything derived from the previous
// BOM. Public methods are serialized by a mutex.
type Engine struct {
	mu        sync.Mutex
	classify  domainservices.Classifier
	sink      Sink
	bomFields []FieldSpec

	relations entities.Relations
	parents   map[entities.MaterialCode][]entities.MaterialCode
	materials map[entities.MaterialCode]*entities.Material
	cache     map[entities.MaterialCode]map[entities.MaterialCode]decimal.Decimal
	stats     BuildStats
}

// NewEngine creates an engine with the provided configuration.
func NewEngine(config Config) *Engine {
	if config.Classify == nil {
		config.Classify = domainservices.DefaultClassifier
	}
	if config.Sink == nil {
		config.Sink = NopSink
	}
	if config.BOMFields == nil {
		config.BOMFields = DefaultBOMFields()
	}
	return &Engine{
		classify:  config.Classify,
		sink:      config.Sink,
		bomFields: config.BOMFields,
		relations: make(entities.Relations),
		parents:   make(map[entities.MaterialCode][]entities.MaterialCode),
		materials: make(map[entities.MaterialCode]*entities.Material),
		cache:     make(map[entities.MaterialCode]map[entities.MaterialCode]decimal.Decimal),
	}
}

// Stats returns the row-cleaning counts from the last BuildRelations call.
func (e *Engine) Stats() BuildStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Relations returns the current relation table. The caller must not
// mutate it.
func (e *Engine) Relations() entities.Relations {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.relations
}

// MaterialInfo returns the metadata recorded for one material code.
func (e *Engine) MaterialInfo(code entities.MaterialCode) (entities.Material, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.materials[code]
	if !ok {
		return entities.Material{}, false
	}
	return *m, true
}

// material returns the metadata entry for code, creating it on first
// sight with the classifier's verdict.
func (e *Engine) material(code entities.MaterialCode) *entities.Material {
	m, ok := e.materials[code]
	if !ok {
		m = &entities.Material{
			Code:  code,
			Type:  e.classify(code),
			Level: entities.UnknownLevel,
		}
		e.materials[code] = m
	}
	return m
}
