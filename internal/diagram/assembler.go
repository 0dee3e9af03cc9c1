// =============================================================================
// EA Modeler - Diagram Assembler
// =============================================================================
//
// This file turns a domain-filtered dataset into the body of a Mermaid
// diagram. Two dialects are supported:
//
//   erDiagram                          classDiagram
//   ---------                          ------------
//   Site {                             class Site {
//       string Site_ID PK                  string Site_ID PK
//   }                                  }
//   Site |o--o{ SDP : "contains"       Site "1" --> "0..*" SDP : contains
//
// The body is a pure function of the filtered dataset and the dialect:
// entity blocks are emitted in sorted entity-name order and relationships
// in input order, so the same inputs always produce byte-identical bodies
// regardless of the order the domains were requested in.
//
// =============================================================================

package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umabot/eamodeler/internal/model"
	"github.com/umabot/eamodeler/internal/sanitize"
)

// =============================================================================
// CARDINALITY CONNECTORS
// =============================================================================

// erConnectors is the fixed cardinality-to-connector table for the
// erDiagram dialect. CardinalityOther is absent on purpose: unrecognized
// cardinalities render as the plain "--" link.
var erConnectors = map[model.Cardinality]string{
	model.CardinalityOneToMany:  "|o--o{",
	model.CardinalityOneToOne:   "|o--||",
	model.CardinalityManyToMany: "}o--o{",
}

// erFallbackConnector is the link used for unrecognized cardinalities.
const erFallbackConnector = "--"

// classMultiplicities maps cardinalities to the classDiagram multiplicity
// pair (parent side, child side). CardinalityOther renders as a plain
// arrow with no multiplicities.
var classMultiplicities = map[model.Cardinality][2]string{
	model.CardinalityOneToMany:  {"1", "0..*"},
	model.CardinalityOneToOne:   {"1", "1"},
	model.CardinalityManyToMany: {"0..*", "0..*"},
}

// ERConnector returns the erDiagram connector for a cardinality. The
// mapping is total: every value outside the fixed table maps to the
// fallback link.
func ERConnector(c model.Cardinality) string {
	if conn, ok := erConnectors[c]; ok {
		return conn
	}
	return erFallbackConnector
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// Assemble builds a DiagramDocument from a domain-filtered dataset.
//
// PARAMETERS:
//   - subset:      the filtered dataset (see FilterByDomains).
//   - domains:     the requested domains in caller order. They appear in the
//     document title and summary only; the diagram body does not depend on
//     their order.
//   - diagramType: the Mermaid dialect to emit.
func Assemble(subset *model.Dataset, domains []string, diagramType model.DiagramType) *Document {
	entities := append([]model.Entity(nil), subset.Entities...)
	sort.Slice(entities, func(i, j int) bool { return entities[i].Name < entities[j].Name })

	attrsByEntity := groupAttributes(subset.Attributes)

	var body strings.Builder
	body.WriteString(string(diagramType))
	body.WriteByte('\n')

	summaries := make([]EntitySummary, 0, len(entities))
	attributeCount := 0

	for _, entity := range entities {
		attrs := attrsByEntity[entity.Name]
		attributeCount += len(attrs)
		writeEntityBlock(&body, entity, attrs, diagramType)

		summaries = append(summaries, EntitySummary{
			Name:           entity.Name,
			AttributeCount: len(attrs),
			Domain:         entity.Domain,
		})
	}

	if len(subset.Relationships) > 0 {
		body.WriteByte('\n')
	}
	for _, rel := range subset.Relationships {
		writeRelationship(&body, rel, diagramType)
	}

	return &Document{
		DiagramType:       diagramType,
		Domains:           append([]string(nil), domains...),
		Body:              body.String(),
		EntityCount:       len(entities),
		AttributeCount:    attributeCount,
		RelationshipCount: len(subset.Relationships),
		Entities:          summaries,
	}
}

// groupAttributes indexes attributes by entity name, preserving input order
// within each entity.
func groupAttributes(attrs []model.Attribute) map[string][]model.Attribute {
	grouped := make(map[string][]model.Attribute)
	for _, a := range attrs {
		grouped[a.EntityName] = append(grouped[a.EntityName], a)
	}
	return grouped
}

// writeEntityBlock emits one entity block. Primary-key attributes come
// first; within each key-status group the input order is preserved.
// An entity with zero attributes still renders an empty block.
func writeEntityBlock(body *strings.Builder, entity model.Entity, attrs []model.Attribute, diagramType model.DiagramType) {
	name := sanitize.Identifier(entity.Name)

	if diagramType == model.DiagramClass {
		fmt.Fprintf(body, "    class %s {\n", name)
	} else {
		fmt.Fprintf(body, "    %s {\n", name)
	}

	ordered := append([]model.Attribute(nil), attrs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IsPrimaryKey && !ordered[j].IsPrimaryKey
	})

	for _, attr := range ordered {
		pkSuffix := ""
		if attr.IsPrimaryKey {
			pkSuffix = " PK"
		}
		fmt.Fprintf(body, "        %s %s%s\n",
			sanitize.Identifier(attr.DataType), sanitize.Identifier(attr.Name), pkSuffix)
	}

	body.WriteString("    }\n")
}

// writeRelationship emits one relationship line. The verb phrase is emitted
// verbatim except that quote characters are escaped, so the quoted label
// can never terminate early and break the line.
func writeRelationship(body *strings.Builder, rel model.Relationship, diagramType model.DiagramType) {
	parent := sanitize.Identifier(rel.ParentEntity)
	child := sanitize.Identifier(rel.ChildEntity)
	verb := sanitize.Label(rel.VerbPhrase)

	if diagramType == model.DiagramClass {
		if mult, ok := classMultiplicities[rel.Cardinality]; ok {
			fmt.Fprintf(body, "    %s \"%s\" --> \"%s\" %s : \"%s\"\n", parent, mult[0], mult[1], child, verb)
		} else {
			fmt.Fprintf(body, "    %s --> %s : \"%s\"\n", parent, child, verb)
		}
		return
	}

	fmt.Fprintf(body, "    %s %s %s : \"%s\"\n", parent, ERConnector(rel.Cardinality), child, verb)
}
