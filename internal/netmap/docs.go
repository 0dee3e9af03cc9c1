// =============================================================================
// EA Modeler - Interface Documentation
// =============================================================================
//
// This file generates Level 1 interface documentation for one application:
// a one-hop slice of the interface inventory, filtered by the role the
// application plays in each interface (source, target, or either), rendered
// as a timestamped Markdown document with a flow diagram, a connected
// applications summary and a detail table.
//
// Unlike the network traversal in graph.go, matching here is a
// case-insensitive substring match against the FULL application name, and
// the slice never extends past the application's direct interfaces.
//
// =============================================================================

package netmap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/umabot/eamodeler/internal/loader"
	"github.com/umabot/eamodeler/internal/sanitize"
)

// Optional inventory columns carried into the detail table when present.
const (
	ColPattern   = "Integration Pattern"
	ColDirection = "Direction"
)

// docsColumns are the columns the documentation generator requires. The
// remaining inventory columns are optional here and default to a
// placeholder in the detail table.
var docsColumns = []string{ColInterfaceID, ColSource, ColTarget}

// Direction is the role an application plays in an interface.
type Direction string

const (
	// DirectionSource selects interfaces the application sends.
	DirectionSource Direction = "source"

	// DirectionTarget selects interfaces the application receives.
	DirectionTarget Direction = "target"

	// DirectionAll selects interfaces on either side.
	DirectionAll Direction = "all"
)

// ParseDirection parses a direction argument. Matching is case-insensitive.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(DirectionSource):
		return DirectionSource, nil
	case string(DirectionTarget):
		return DirectionTarget, nil
	case string(DirectionAll):
		return DirectionAll, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be \"source\", \"target\" or \"all\"", raw)
	}
}

// docRow is one inventory row selected for the documentation, including the
// optional columns the detail table reports.
type docRow struct {
	ID        string
	Source    string
	Target    string
	ShortDesc string
	Pattern   string
	Direction string
	Country   string
}

// DocsRequest holds the parameters of one documentation run.
type DocsRequest struct {
	// InputPath is the interface inventory file (CSV or XLSX).
	InputPath string

	// AppName is matched case-insensitively as a substring of the full
	// application name.
	AppName string

	// Direction selects the role AppName plays in the documented
	// interfaces.
	Direction Direction

	// Country optionally restricts the inventory to one country code.
	Country string

	// OutputDir is the directory the document is written to.
	OutputDir string
}

// DocsResult summarizes one documentation run.
type DocsResult struct {
	// OutputFile is the path of the written document.
	OutputFile string

	// InterfaceCount is the number of interfaces documented.
	InterfaceCount int
}

// GenerateDocs builds the interface documentation for one application.
// Unlike the network report, an empty selection is an error: asking for the
// documentation of an application with no matching interfaces is a lookup
// mistake, not a valid empty document.
func GenerateDocs(req DocsRequest) (*DocsResult, error) {
	rows, err := loadDocRows(req.InputPath, req.Country)
	if err != nil {
		return nil, err
	}

	selected := selectRows(rows, req.AppName, req.Direction)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no interfaces found for application %q as %s", req.AppName, req.Direction)
	}

	scope := "ALL"
	if req.Country != "" {
		scope = strings.ToUpper(req.Country)
	}

	doc := renderDocs(req.AppName, req.Direction, req.Country, time.Now(), selected)

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s_interfaces.md", sanitize.Identifier(req.AppName), scope, req.Direction)
	path := filepath.Join(req.OutputDir, name)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return nil, fmt.Errorf("failed to write interface documentation: %w", err)
	}

	return &DocsResult{
		OutputFile:     path,
		InterfaceCount: len(selected),
	}, nil
}

// loadDocRows reads the inventory and applies the country filter. A country
// filter that selects nothing is an error: the caller named a country the
// inventory does not cover.
func loadDocRows(path, country string) ([]docRow, error) {
	table, err := loader.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := loader.RequireColumns(table, docsColumns...); err != nil {
		return nil, err
	}
	if country != "" && !table.HasColumn(ColCountry) {
		return nil, fmt.Errorf("country filter %q given but column %q not found in %s", country, ColCountry, path)
	}

	var rows []docRow
	for _, row := range table.Rows {
		// Rows missing an endpoint or the interface id cannot be documented.
		if row[ColInterfaceID] == "" || row[ColSource] == "" || row[ColTarget] == "" {
			continue
		}
		if country != "" && !strings.EqualFold(row[ColCountry], country) {
			continue
		}
		rows = append(rows, docRow{
			ID:        row[ColInterfaceID],
			Source:    row[ColSource],
			Target:    row[ColTarget],
			ShortDesc: row[ColShortDesc],
			Pattern:   row[ColPattern],
			Direction: row[ColDirection],
			Country:   row[ColCountry],
		})
	}

	if country != "" && len(rows) == 0 {
		return nil, fmt.Errorf("no interface rows found for country %q", country)
	}
	return rows, nil
}

// selectRows keeps the rows where appName plays the requested role.
func selectRows(rows []docRow, appName string, direction Direction) []docRow {
	needle := strings.ToLower(appName)

	var selected []docRow
	for _, row := range rows {
		asSource := strings.Contains(strings.ToLower(row.Source), needle)
		asTarget := strings.Contains(strings.ToLower(row.Target), needle)

		switch direction {
		case DirectionSource:
			if asSource {
				selected = append(selected, row)
			}
		case DirectionTarget:
			if asTarget {
				selected = append(selected, row)
			}
		default:
			if asSource || asTarget {
				selected = append(selected, row)
			}
		}
	}
	return selected
}

// renderDocs builds the Markdown document body.
func renderDocs(appName string, direction Direction, country string, generatedAt time.Time, rows []docRow) string {
	directionText := string(direction)
	if direction == DirectionAll {
		directionText = "source and target"
	}

	countrySuffix := ""
	countryClause := ""
	countryDisplay := "All Countries"
	if country != "" {
		scope := strings.ToUpper(country)
		countrySuffix = fmt.Sprintf(" (%s)", scope)
		countryClause = " in " + scope
		countryDisplay = scope
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# Interface Documentation for: %s%s\n\n", appName, countrySuffix)
	fmt.Fprintf(&md, ">[!Important] Generated on: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&md, "This document outlines all interfaces where %s acts as the %s%s.\n\n",
		appName, directionText, countryClause)

	md.WriteString("## Visual Flow Diagram\n\n")
	md.WriteString("```mermaid\n")
	md.WriteString("graph LR;\n")
	fmt.Fprintf(&md, "    style %s fill:#007bff,stroke:#333,stroke-width:2px,color:#fff\n",
		sanitize.Identifier(appName))
	for _, row := range rows {
		fmt.Fprintf(&md, "    %s[\"%s\"] -- \"%s\" --> %s[\"%s\"];\n",
			sanitize.Identifier(row.Source), sanitize.Label(row.Source),
			sanitize.Label(row.ID),
			sanitize.Identifier(row.Target), sanitize.Label(row.Target))
	}
	md.WriteString("```\n\n")

	writeConnectedTables(&md, appName, direction, rows)

	md.WriteString("## Interface Details\n\n")
	fmt.Fprintf(&md, "**Country:** %s  \n", countryDisplay)
	fmt.Fprintf(&md, "**Application:** %s  \n", appName)
	fmt.Fprintf(&md, "**Role:** %s  \n", roleTitle(direction))
	fmt.Fprintf(&md, "**Total Interfaces:** %d\n\n", len(rows))

	md.WriteString("| INT ID | Source App | Target App | Interface Description | Integration Pattern | Direction | Country |\n")
	md.WriteString("| ------ | ---------- | ---------- | --------------------- | ------------------- | --------- | ------- |\n")
	for _, row := range rows {
		fmt.Fprintf(&md, "| %s | %s | %s | %s | %s | %s | %s |\n",
			docCell(row.ID), docCell(row.Source), docCell(row.Target),
			docCell(row.ShortDesc), docCell(row.Pattern), docCell(row.Direction), docCell(row.Country))
	}

	return md.String()
}

// writeConnectedTables emits the connected-application summary tables: the
// applications on the other side of the documented interfaces, with the
// number of interfaces each one shares with the documented application.
func writeConnectedTables(md *strings.Builder, appName string, direction Direction, rows []docRow) {
	switch direction {
	case DirectionSource:
		writeConnectedTable(md, "Connected Target Applications", countBy(rows, func(r docRow) string { return r.Target }))
	case DirectionTarget:
		writeConnectedTable(md, "Connected Source Applications", countBy(rows, func(r docRow) string { return r.Source }))
	default:
		needle := strings.ToLower(appName)
		outgoing := countBy(rows, func(r docRow) string {
			if strings.Contains(strings.ToLower(r.Source), needle) {
				return r.Target
			}
			return ""
		})
		incoming := countBy(rows, func(r docRow) string {
			if strings.Contains(strings.ToLower(r.Target), needle) {
				return r.Source
			}
			return ""
		})
		if len(outgoing) > 0 {
			writeConnectedTable(md, "Connected Target Applications (Outgoing)", outgoing)
		}
		if len(incoming) > 0 {
			writeConnectedTable(md, "Connected Source Applications (Incoming)", incoming)
		}
	}
}

// appCount is one connected-application table row.
type appCount struct {
	Name  string
	Count int
}

// countBy tallies rows per application name, skipping empty keys, and
// returns the tallies sorted by name.
func countBy(rows []docRow, key func(docRow) string) []appCount {
	tally := make(map[string]int)
	for _, row := range rows {
		if name := key(row); name != "" {
			tally[name]++
		}
	}

	counts := make([]appCount, 0, len(tally))
	for name, n := range tally {
		counts = append(counts, appCount{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
	return counts
}

// writeConnectedTable emits one connected-application summary table.
func writeConnectedTable(md *strings.Builder, title string, counts []appCount) {
	fmt.Fprintf(md, "## %s\n\n", title)
	md.WriteString("| Application | Number of Interfaces |\n")
	md.WriteString("| ----------- | -------------------- |\n")
	for _, c := range counts {
		fmt.Fprintf(md, "| %s | %d |\n", cell(c.Name), c.Count)
	}
	md.WriteByte('\n')
}

// roleTitle capitalizes the direction for the detail header.
func roleTitle(direction Direction) string {
	s := string(direction)
	return strings.ToUpper(s[:1]) + s[1:]
}

// docCell flattens line breaks, substitutes a placeholder for empty values
// and escapes pipes so a cell can never break the table.
func docCell(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return cell(strings.TrimSpace(value))
}
