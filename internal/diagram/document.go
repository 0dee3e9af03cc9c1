// =============================================================================
// EA Modeler - Diagram Document
// =============================================================================
//
// A DiagramDocument is the output artifact of one generation run: the
// Mermaid diagram body embedded in a Markdown report with a title, summary
// counts and an entity summary table.
//
// The fenced ```mermaid block must exactly match the grammar the renderer
// expects; everything inside the fence comes verbatim from the assembler.
//
// =============================================================================

package diagram

import (
	"fmt"
	"strings"

	"github.com/umabot/eamodeler/internal/model"
)

// EntitySummary is one row of the document's entity summary table.
type EntitySummary struct {
	// Name is the entity name as loaded (unsanitized, for human readers).
	Name string

	// AttributeCount is the number of attributes rendered for the entity.
	AttributeCount int

	// Domain is the data domain the entity was selected from.
	Domain string
}

// Document is an assembled diagram report, ready to be rendered to Markdown
// and written to disk.
type Document struct {
	DiagramType model.DiagramType

	// Domains is the requested domain list in caller order. It appears in
	// the title and summary for human readability only.
	Domains []string

	// Body is the Mermaid diagram text, starting with the dialect keyword.
	Body string

	EntityCount       int
	AttributeCount    int
	RelationshipCount int

	// Entities holds the summary table rows, in entity-name order.
	Entities []EntitySummary
}

// title returns the human-readable name of the diagram dialect.
func (d *Document) title() string {
	if d.DiagramType == model.DiagramClass {
		return "Class Diagram"
	}
	return "ER Diagram"
}

// Render produces the complete Markdown report.
func (d *Document) Render() string {
	domains := strings.Join(d.Domains, ", ")

	var md strings.Builder
	fmt.Fprintf(&md, "# %s for Data Domains: %s\n\n", d.title(), domains)
	md.WriteString("Generated from canonical data model input files.\n\n")
	fmt.Fprintf(&md, "**Entities included:** %d  \n", d.EntityCount)
	fmt.Fprintf(&md, "**Relationships included:** %d  \n", d.RelationshipCount)
	fmt.Fprintf(&md, "**Data Domains:** %s\n\n", domains)

	md.WriteString("```mermaid\n")
	md.WriteString(d.Body)
	md.WriteString("```\n\n")

	md.WriteString("## Entity Summary\n\n")
	md.WriteString("| Entity | Attributes | Domain |\n")
	md.WriteString("| ------ | ---------- | ------ |\n")
	for _, e := range d.Entities {
		fmt.Fprintf(&md, "| %s | %d | %s |\n", escapeCell(e.Name), e.AttributeCount, escapeCell(e.Domain))
	}

	return md.String()
}

// escapeCell keeps a value from breaking the Markdown table structure.
func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
