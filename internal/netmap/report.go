// =============================================================================
// EA Modeler - Integration Network Report
// =============================================================================
//
// This file renders a traversed interface subgraph as a Markdown report:
// a Mermaid flowchart of the integrations around the requested application,
// followed by a table of the interfaces involved. The start node is
// highlighted in the flowchart.
//
// =============================================================================

package netmap

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/umabot/eamodeler/internal/sanitize"
)

// Request holds the parameters of one network report run.
type Request struct {
	// InputPath is the interface inventory file (CSV or XLSX).
	InputPath string

	// AppName is the application (or application code fragment) to map.
	AppName string

	// Country optionally restricts the inventory to one country code.
	Country string

	// MaxDepth caps the traversal depth; zero or less means unlimited.
	MaxDepth int

	// OutputDir is the directory the report is written to.
	OutputDir string
}

// Result summarizes one network report run.
type Result struct {
	// OutputFile is the path of the written report. Empty when the
	// filtered inventory held no interfaces and nothing was generated.
	OutputFile string

	// NodeCount and InterfaceCount describe the extracted subgraph.
	NodeCount      int
	InterfaceCount int
}

// Generate builds the integration network report for one application.
func Generate(req Request) (*Result, error) {
	interfaces, err := LoadInterfaces(req.InputPath, req.Country)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 {
		// A valid country filter can legitimately select nothing.
		return &Result{}, nil
	}

	graph := BuildGraph(interfaces)
	startNode, err := graph.FindNode(req.AppName)
	if err != nil {
		return nil, err
	}

	visited, subgraph := graph.Traverse(startNode, req.MaxDepth)

	scope := "ALL"
	if req.Country != "" {
		scope = strings.ToUpper(req.Country)
	}

	report := renderReport(req.AppName, startNode, scope, req.MaxDepth, subgraph)

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(req.OutputDir, reportFilename(req.AppName, scope))
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return nil, fmt.Errorf("failed to write network report: %w", err)
	}

	return &Result{
		OutputFile:     path,
		NodeCount:      len(visited),
		InterfaceCount: len(subgraph),
	}, nil
}

// renderReport builds the Markdown report body.
func renderReport(appName, startNode, scope string, maxDepth int, subgraph []Interface) string {
	scopeDisplay := "Scope: " + scope
	if maxDepth > 0 {
		scopeDisplay += fmt.Sprintf(", Depth: %d", maxDepth)
	}

	var md strings.Builder
	md.WriteString("# Integration Network Analysis\n\n")
	fmt.Fprintf(&md, "## Integration Diagram for %s (%s)\n\n", appName, scopeDisplay)

	md.WriteString("```mermaid\n")
	md.WriteString("graph TD\n")
	for _, edge := range subgraph {
		fmt.Fprintf(&md, "  %s[\"%s\"] --\"%s\"--> %s[\"%s\"];\n",
			sanitize.Identifier(AppCode(edge.Source)), sanitize.Label(edge.Source),
			sanitize.Label(edge.ID),
			sanitize.Identifier(AppCode(edge.Target)), sanitize.Label(edge.Target))
	}
	fmt.Fprintf(&md, "  style %s fill:#007bff,stroke:#333,stroke-width:2px,color:#fff\n",
		sanitize.Identifier(AppCode(startNode)))
	md.WriteString("```\n\n")

	fmt.Fprintf(&md, "## Interfaces related to %s (%s)\n\n", appName, scopeDisplay)
	if len(subgraph) == 0 {
		md.WriteString("No interfaces were found for the specified application.\n")
		return md.String()
	}

	// Sort for consistent output.
	sorted := append([]Interface(nil), subgraph...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Source != sorted[j].Source {
			return sorted[i].Source < sorted[j].Source
		}
		return sorted[i].Target < sorted[j].Target
	})

	md.WriteString("| Country | INT ID | Interface short Description | Source | Target | Data Payload Description |\n")
	md.WriteString("|---|---|---|---|---|---|\n")
	for _, edge := range sorted {
		fmt.Fprintf(&md, "| %s | %s | %s | %s | %s | %s |\n",
			cell(edge.Country), cell(edge.ID), cell(edge.ShortDesc),
			cell(edge.Source), cell(edge.Target), cell(edge.PayloadDesc))
	}
	md.WriteByte('\n')

	return md.String()
}

// cell escapes a table cell and substitutes a placeholder for empty values.
func cell(value string) string {
	if value == "" {
		value = "N/A"
	}
	return strings.ReplaceAll(value, "|", `\|`)
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9_-]`)

// reportFilename builds the report file name: lowercase scope and app name,
// whitespace collapsed to underscores, other unsafe characters removed.
func reportFilename(appName, scope string) string {
	slug := strings.ToLower(appName)
	slug = strings.Join(strings.Fields(slug), "_")
	slug = filenameUnsafe.ReplaceAllString(slug, "")
	return fmt.Sprintf("%s_%s_network.md", strings.ToLower(scope), slug)
}
