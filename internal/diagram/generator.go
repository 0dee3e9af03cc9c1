// =============================================================================
// EA Modeler - Diagram Generator
// =============================================================================
//
// This file orchestrates one generation run, from input loading to the
// written report:
//
//   1. Load and validate the three model input files
//   2. Filter entities by the requested data domains
//   3. Project attributes and relationships onto the filtered entity set
//   4. Assemble the Mermaid diagram body and summary
//   5. Write the Markdown report
//
// Each run is an independent, synchronous pipeline over read-only
// snapshots: nothing is mutated in place and no state survives the run, so
// separate runs may safely execute concurrently in separate goroutines or
// processes.
//
// =============================================================================

package diagram

import (
	"fmt"
	"os"
	"time"

	"github.com/umabot/eamodeler/internal/loader"
	"github.com/umabot/eamodeler/internal/model"
)

// =============================================================================
// LOGGING
// =============================================================================

// Logger is the logging interface the generator reports progress through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// StderrLogger is the default Logger. It writes level-prefixed lines to
// stderr; Debug output is suppressed unless Verbose is set.
type StderrLogger struct {
	Verbose bool
}

func (l *StderrLogger) Debug(msg string, args ...interface{}) {
	if l.Verbose {
		fmt.Fprintf(os.Stderr, "DEBUG "+msg+"\n", args...)
	}
}

func (l *StderrLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "INFO  "+msg+"\n", args...)
}

func (l *StderrLogger) Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "WARN  "+msg+"\n", args...)
}

func (l *StderrLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR "+msg+"\n", args...)
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one generation run.
type Result struct {
	// Request is the request the run was executed for.
	Request model.DiagramRequest

	// OutputFile is the path of the written report. Empty on failure.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the failure, nil on success.
	Error error

	// Stats contains run statistics.
	Stats Stats
}

// Stats contains statistics about one generation run.
type Stats struct {
	// EntityCount is the number of entities included in the diagram.
	EntityCount int

	// AttributeCount is the number of attribute lines rendered.
	AttributeCount int

	// RelationshipCount is the number of relationship lines rendered.
	RelationshipCount int

	// Elapsed is the total run time.
	Elapsed time.Duration
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator executes diagram generation runs.
type Generator struct {
	logger Logger
}

// NewGenerator creates a Generator reporting through the given logger.
// A nil logger falls back to the default stderr logger.
func NewGenerator(logger Logger) *Generator {
	if logger == nil {
		logger = &StderrLogger{}
	}
	return &Generator{logger: logger}
}

// Run executes one generation run and returns its Result. Run never
// panics and never writes a partial output file: either the report is
// written completely and its path returned, or the Result carries the
// error of the first failing stage.
func (g *Generator) Run(req model.DiagramRequest) Result {
	start := time.Now()
	result := Result{Request: req}

	fail := func(err error) Result {
		result.Error = err
		result.Stats.Elapsed = time.Since(start)
		g.logger.Error("generation failed: %v", err)
		return result
	}

	g.logger.Info("Loading model from %s, %s, %s", req.ClassesPath, req.AttributesPath, req.RelationshipsPath)
	ds, err := loader.LoadDataset(req.ClassesPath, req.AttributesPath, req.RelationshipsPath)
	if err != nil {
		return fail(err)
	}
	g.logger.Debug("Loaded %d entities, %d attributes, %d relationships",
		len(ds.Entities), len(ds.Attributes), len(ds.Relationships))

	g.logger.Info("Filtering by data domains: %v", req.DataDomains)
	subset, err := FilterByDomains(ds, req.DataDomains)
	if err != nil {
		return fail(err)
	}
	g.logger.Debug("Selected %d entities in requested domains", len(subset.Entities))

	doc := Assemble(subset, req.DataDomains, req.DiagramType)
	result.Stats.EntityCount = doc.EntityCount
	result.Stats.AttributeCount = doc.AttributeCount
	result.Stats.RelationshipCount = doc.RelationshipCount

	path, err := Write(doc, req.OutputDir)
	if err != nil {
		return fail(err)
	}

	result.OutputFile = path
	result.Success = true
	result.Stats.Elapsed = time.Since(start)
	g.logger.Info("Diagram written to %s", path)

	return result
}
