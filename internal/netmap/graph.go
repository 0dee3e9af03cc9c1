// =============================================================================
// EA Modeler - Integration Network Graph
// =============================================================================
//
// This module builds a directed graph of system integrations from an
// interface inventory file and extracts the subgraph reachable from one
// application. Reachability is undirected: traversal follows interfaces
// both downstream (this system feeds others) and upstream (others feed it),
// optionally capped at a hop depth.
//
// Applications are identified by an application code, the prefix of the
// full name before " - " (e.g. "APP-0100 - SAP FICO" has code "APP-0100").
// The traversal start node is matched by case-insensitive substring against
// application codes.
//
// =============================================================================

package netmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umabot/eamodeler/internal/loader"
)

// Required columns in the interface inventory file.
const (
	ColInterfaceID = "INT ID"
	ColSource      = "Source System/ APP"
	ColTarget      = "Target System/APP"
	ColShortDesc   = "Interface short Description"
	ColPayloadDesc = "Data Payload Description"
	ColCountry     = "Country"
)

var interfaceColumns = []string{
	ColInterfaceID, ColSource, ColTarget, ColShortDesc, ColPayloadDesc, ColCountry,
}

// Interface is one system-to-system integration row.
type Interface struct {
	ID          string
	Source      string
	Target      string
	ShortDesc   string
	PayloadDesc string
	Country     string
}

// Graph is a directed interface graph. Nodes are full application names;
// a node with no outgoing interfaces is still present in Nodes.
type Graph struct {
	// Nodes is the set of all application names seen as source or target.
	Nodes map[string]bool

	// Outgoing and Incoming index the edges by their endpoint.
	Outgoing map[string][]Interface
	Incoming map[string][]Interface

	// Edges holds every interface with both endpoints, in input order.
	Edges []Interface
}

// AppCode extracts the application code from a full application name.
func AppCode(name string) string {
	if code, _, found := strings.Cut(name, " - "); found {
		return code
	}
	return name
}

// LoadInterfaces reads the interface inventory, optionally filtered to one
// country (case-insensitive). Rows naming no endpoint at all are skipped;
// rows with a single endpoint are kept so the named application still
// registers as a node.
func LoadInterfaces(path, country string) ([]Interface, error) {
	table, err := loader.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := loader.RequireColumns(table, interfaceColumns...); err != nil {
		return nil, err
	}

	var interfaces []Interface
	for _, row := range table.Rows {
		if country != "" && !strings.EqualFold(row[ColCountry], country) {
			continue
		}
		if row[ColSource] == "" && row[ColTarget] == "" {
			continue
		}
		interfaces = append(interfaces, Interface{
			ID:          row[ColInterfaceID],
			Source:      row[ColSource],
			Target:      row[ColTarget],
			ShortDesc:   row[ColShortDesc],
			PayloadDesc: row[ColPayloadDesc],
			Country:     row[ColCountry],
		})
	}

	return interfaces, nil
}

// BuildGraph indexes interfaces into a Graph. Every named endpoint becomes
// a node; only interfaces with both endpoints become edges, so an
// application seen solely on half-specified rows is still findable, as an
// isolated node.
func BuildGraph(interfaces []Interface) *Graph {
	g := &Graph{
		Nodes:    make(map[string]bool),
		Outgoing: make(map[string][]Interface),
		Incoming: make(map[string][]Interface),
	}

	for _, edge := range interfaces {
		if edge.Source != "" {
			g.Nodes[edge.Source] = true
		}
		if edge.Target != "" {
			g.Nodes[edge.Target] = true
		}
		if edge.Source == "" || edge.Target == "" {
			continue
		}
		g.Edges = append(g.Edges, edge)
		g.Outgoing[edge.Source] = append(g.Outgoing[edge.Source], edge)
		g.Incoming[edge.Target] = append(g.Incoming[edge.Target], edge)
	}

	return g
}

// FindNode returns the full name of the first node whose application code
// contains appName (case-insensitive). Nodes are scanned in sorted order so
// the match is deterministic.
func (g *Graph) FindNode(appName string) (string, error) {
	needle := strings.ToLower(appName)

	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(strings.ToLower(AppCode(name)), needle) {
			return name, nil
		}
	}

	return "", fmt.Errorf("application %q not found in interface data", appName)
}

// Traverse walks the graph from startNode in both directions and returns
// the visited node set plus every edge whose two endpoints were visited.
// A maxDepth of zero or less means unlimited depth.
func (g *Graph) Traverse(startNode string, maxDepth int) (map[string]bool, []Interface) {
	type queued struct {
		node  string
		level int
	}

	visited := map[string]bool{startNode: true}
	queue := []queued{{startNode, 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if maxDepth > 0 && current.level >= maxDepth {
			continue
		}

		for _, edge := range g.Outgoing[current.node] {
			if !visited[edge.Target] {
				visited[edge.Target] = true
				queue = append(queue, queued{edge.Target, current.level + 1})
			}
		}
		for _, edge := range g.Incoming[current.node] {
			if !visited[edge.Source] {
				visited[edge.Source] = true
				queue = append(queue, queued{edge.Source, current.level + 1})
			}
		}
	}

	var subgraph []Interface
	for _, edge := range g.Edges {
		if visited[edge.Source] && visited[edge.Target] {
			subgraph = append(subgraph, edge)
		}
	}

	return visited, subgraph
}
