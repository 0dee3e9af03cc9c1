// =============================================================================
// EA Modeler - Domain Filter
// =============================================================================
//
// This file restricts a loaded dataset to the entities belonging to a set of
// requested data domains, then projects attributes and relationships onto
// the surviving entity set:
//   - An attribute survives when its entity survives.
//   - A relationship survives only when BOTH its parent and child entities
//     survive. Relationships into out-of-scope entities are dropped
//     silently; that is filtering policy, not a failure.
//
// Domain names are compared case-sensitively. Every requested domain is
// validated individually: a domain matching zero entity rows is a typo from
// the caller's point of view and fails the run with UnknownDomainError,
// which is distinct from "valid domains that filter to an empty diagram".
//
// =============================================================================

package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umabot/eamodeler/internal/model"
)

// UnknownDomainError reports requested domain names that match no entity
// row. It is fatal for the run; no output file is written.
type UnknownDomainError struct {
	// Unmatched lists the requested domains with zero matching entities,
	// in the order they were supplied.
	Unmatched []string

	// Available lists the domains that exist in the dataset, sorted.
	Available []string
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("no entities found for data domain(s): %s (available domains: %s)",
		strings.Join(e.Unmatched, ", "), strings.Join(e.Available, ", "))
}

// FilterByDomains returns the subset of the dataset belonging to the given
// domains. The result preserves input row order.
//
// POLICY:
//   - An empty domain list yields an empty dataset without error; command
//     wiring is responsible for rejecting requests with no domains.
//   - Duplicate entity names collapse to their first occurrence, so an
//     entity listed under two matching domains renders exactly one block.
func FilterByDomains(ds *model.Dataset, domains []string) (*model.Dataset, error) {
	requested := make(map[string]bool, len(domains))
	for _, d := range domains {
		requested[d] = true
	}

	matched := make(map[string]bool, len(domains))
	included := make(map[string]bool)

	subset := &model.Dataset{}
	for _, e := range ds.Entities {
		if !requested[e.Domain] {
			continue
		}
		matched[e.Domain] = true
		if included[e.Name] {
			// First occurrence wins.
			continue
		}
		included[e.Name] = true
		subset.Entities = append(subset.Entities, e)
	}

	if unmatched := unmatchedDomains(domains, matched); len(unmatched) > 0 {
		return nil, &UnknownDomainError{
			Unmatched: unmatched,
			Available: availableDomains(ds),
		}
	}

	for _, a := range ds.Attributes {
		if included[a.EntityName] {
			subset.Attributes = append(subset.Attributes, a)
		}
	}

	for _, r := range ds.Relationships {
		if included[r.ParentEntity] && included[r.ChildEntity] {
			subset.Relationships = append(subset.Relationships, r)
		}
	}

	return subset, nil
}

// unmatchedDomains returns the requested domains that matched no entity,
// preserving the supplied order and skipping duplicates.
func unmatchedDomains(domains []string, matched map[string]bool) []string {
	var unmatched []string
	seen := make(map[string]bool, len(domains))
	for _, d := range domains {
		if seen[d] {
			continue
		}
		seen[d] = true
		if !matched[d] {
			unmatched = append(unmatched, d)
		}
	}
	return unmatched
}

// availableDomains returns the sorted distinct domains in the dataset.
func availableDomains(ds *model.Dataset) []string {
	seen := make(map[string]bool)
	var domains []string
	for _, e := range ds.Entities {
		if !seen[e.Domain] {
			seen[e.Domain] = true
			domains = append(domains, e.Domain)
		}
	}
	sort.Strings(domains)
	return domains
}
