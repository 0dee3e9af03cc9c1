// =============================================================================
// EA Modeler - Shared Model Types
// =============================================================================
//
// This package contains the in-memory representation of a canonical logical
// data model. Types defined here are shared across multiple modules to avoid
// import cycles:
//   - loader    (builds a Dataset from tabular input files)
//   - diagram   (filters a Dataset and assembles diagram documents)
//   - cmd       (builds a DiagramRequest from CLI flags)
//
// Entities, attributes and relationships reference each other by entity name
// only (weak references). Entities are immutable snapshots for the duration
// of a run, so lookups are plain key lookups against an index built once.
//
// =============================================================================

package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// MODEL ROW TYPES
// =============================================================================

// Entity is a single class/entity row from the classes input file.
type Entity struct {
	// Name is the entity name ("Data Entity" column).
	Name string

	// Domain is the business data domain the entity belongs to
	// ("Data Domain" column). Domain matching is case-sensitive.
	Domain string

	// Description is optional free text carried through for reporting.
	Description string
}

// Attribute is a single attribute row from the attributes input file.
// It references its owning entity by name.
type Attribute struct {
	// EntityName is the name of the entity this attribute belongs to.
	EntityName string

	// Name is the attribute name ("Attribute" column).
	Name string

	// DataType is the declared data type, verbatim from the input.
	// Sanitization to a diagram-safe token happens during assembly.
	DataType string

	// IsPrimaryKey reports whether the "PK" column held a truthy value.
	IsPrimaryKey bool

	// Description is optional free text carried through for reporting.
	Description string
}

// Relationship is a single relationship row from the relationships input
// file. Both ends reference entities by name.
type Relationship struct {
	ParentEntity string
	ChildEntity  string

	// VerbPhrase is the parent-to-child verb phrase, verbatim.
	VerbPhrase string

	Cardinality Cardinality

	// Description is optional free text carried through for reporting.
	Description string
}

// Dataset is one loaded data model: the three row collections, in input
// order. A Dataset is read-only after loading.
type Dataset struct {
	Entities      []Entity
	Attributes    []Attribute
	Relationships []Relationship
}

// EntityNames returns the distinct entity names in input order.
func (d *Dataset) EntityNames() []string {
	seen := make(map[string]bool, len(d.Entities))
	names := make([]string, 0, len(d.Entities))
	for _, e := range d.Entities {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// =============================================================================
// CARDINALITY
// =============================================================================

// Cardinality is a closed enumeration of relationship cardinalities.
// Anything not recognized by ParseCardinality maps to CardinalityOther,
// which guarantees the fallback connector is reached deterministically.
type Cardinality int

const (
	CardinalityOther Cardinality = iota
	CardinalityOneToMany
	CardinalityOneToOne
	CardinalityManyToMany
)

// ParseCardinality maps a cardinality cell value to the closed enumeration.
// Matching is case-insensitive and ignores surrounding whitespace. Both the
// compact ("1:N") and spelled-out ("ONE_TO_MANY") notations are accepted.
func ParseCardinality(raw string) Cardinality {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1:N", "1:M", "ONE_TO_MANY":
		return CardinalityOneToMany
	case "1:1", "ONE_TO_ONE":
		return CardinalityOneToOne
	case "N:M", "M:N", "MANY_TO_MANY":
		return CardinalityManyToMany
	default:
		return CardinalityOther
	}
}

// String returns the canonical name of the cardinality.
func (c Cardinality) String() string {
	switch c {
	case CardinalityOneToMany:
		return "OneToMany"
	case CardinalityOneToOne:
		return "OneToOne"
	case CardinalityManyToMany:
		return "ManyToMany"
	default:
		return "Other"
	}
}

// =============================================================================
// DIAGRAM TYPE
// =============================================================================

// DiagramType selects the Mermaid dialect for the generated diagram.
type DiagramType string

const (
	// DiagramER is a Mermaid entity-relationship diagram.
	DiagramER DiagramType = "erDiagram"

	// DiagramClass is a Mermaid class diagram.
	DiagramClass DiagramType = "classDiagram"
)

// ParseDiagramType validates a diagram type string. The value must match a
// Mermaid block keyword exactly; anything else is an error so a typo never
// produces a document no renderer can parse.
func ParseDiagramType(raw string) (DiagramType, error) {
	switch DiagramType(raw) {
	case DiagramER, DiagramClass:
		return DiagramType(raw), nil
	default:
		return "", fmt.Errorf("invalid diagram type %q: must be %q or %q", raw, DiagramER, DiagramClass)
	}
}

// =============================================================================
// DIAGRAM REQUEST
// =============================================================================

// DiagramRequest holds the parameters of one generation run. It is created
// per invocation and discarded after the output file is written.
type DiagramRequest struct {
	// ClassesPath, AttributesPath and RelationshipsPath are the three
	// tabular input files (CSV or XLSX).
	ClassesPath       string
	AttributesPath    string
	RelationshipsPath string

	// DataDomains is the requested domain set, in the order supplied by the
	// caller. Order affects only the document title, summary and file name;
	// the diagram body is order-independent.
	DataDomains []string

	// DiagramType selects the Mermaid dialect.
	DiagramType DiagramType

	// OutputDir is the directory the document is written to.
	OutputDir string
}

// =============================================================================
// VALUE PARSING HELPERS
// =============================================================================

// ParseBoolFlag reports whether a cell value is truthy. The accepted truthy
// spellings are "yes", "true" and "1", case-insensitive; everything else,
// including an empty cell, is false.
func ParseBoolFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
