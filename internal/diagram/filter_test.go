package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umabot/eamodeler/internal/model"
)

// testDataset builds the dataset used across the filter tests.
func testDataset() *model.Dataset {
	return &model.Dataset{
		Entities: []model.Entity{
			{Name: "Site", Domain: "Site"},
			{Name: "Service Delivery Point", Domain: "Site"},
			{Name: "Customer", Domain: "Customer & Contract"},
			{Name: "Invoice", Domain: "Finance"},
		},
		Attributes: []model.Attribute{
			{EntityName: "Site", Name: "Site ID", DataType: "Integer", IsPrimaryKey: true},
			{EntityName: "Customer", Name: "Customer ID", DataType: "Integer", IsPrimaryKey: true},
			{EntityName: "Invoice", Name: "Invoice ID", DataType: "Integer", IsPrimaryKey: true},
		},
		Relationships: []model.Relationship{
			{ParentEntity: "Site", ChildEntity: "Service Delivery Point", VerbPhrase: "contains", Cardinality: model.CardinalityOneToMany},
			{ParentEntity: "Site", ChildEntity: "Customer", VerbPhrase: "serves", Cardinality: model.CardinalityOneToMany},
			{ParentEntity: "Customer", ChildEntity: "Invoice", VerbPhrase: "receives", Cardinality: model.CardinalityOneToMany},
		},
	}
}

func TestFilterByDomains_SingleDomain(t *testing.T) {
	subset, err := FilterByDomains(testDataset(), []string{"Site"})
	require.NoError(t, err)

	require.Len(t, subset.Entities, 2)
	assert.Equal(t, "Site", subset.Entities[0].Name)
	assert.Equal(t, "Service Delivery Point", subset.Entities[1].Name)

	// Only Site's attribute survives.
	require.Len(t, subset.Attributes, 1)
	assert.Equal(t, "Site", subset.Attributes[0].EntityName)

	// Site->Customer and Customer->Invoice reference out-of-scope entities
	// and are dropped silently.
	require.Len(t, subset.Relationships, 1)
	assert.Equal(t, "Service Delivery Point", subset.Relationships[0].ChildEntity)
}

func TestFilterByDomains_CaseSensitive(t *testing.T) {
	_, err := FilterByDomains(testDataset(), []string{"site"})

	var unknown *UnknownDomainError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"site"}, unknown.Unmatched)
}

func TestFilterByDomains_UnknownDomain(t *testing.T) {
	_, err := FilterByDomains(testDataset(), []string{"Site", "Nonexistent"})

	var unknown *UnknownDomainError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"Nonexistent"}, unknown.Unmatched)
	assert.Equal(t, []string{"Customer & Contract", "Finance", "Site"}, unknown.Available)
	assert.Contains(t, unknown.Error(), "Nonexistent")
}

func TestFilterByDomains_EmptyDomainsYieldsEmptySubset(t *testing.T) {
	subset, err := FilterByDomains(testDataset(), nil)
	require.NoError(t, err)
	assert.Empty(t, subset.Entities)
	assert.Empty(t, subset.Attributes)
	assert.Empty(t, subset.Relationships)
}

func TestFilterByDomains_DuplicateEntityFirstOccurrenceWins(t *testing.T) {
	ds := &model.Dataset{
		Entities: []model.Entity{
			{Name: "Site", Domain: "Site"},
			{Name: "Site", Domain: "Finance"},
		},
	}

	subset, err := FilterByDomains(ds, []string{"Site", "Finance"})
	require.NoError(t, err)

	// One entry per entity name; the first matching row keeps its domain.
	require.Len(t, subset.Entities, 1)
	assert.Equal(t, "Site", subset.Entities[0].Domain)
}

func TestFilterByDomains_MultipleDomains(t *testing.T) {
	subset, err := FilterByDomains(testDataset(), []string{"Site", "Customer & Contract"})
	require.NoError(t, err)

	require.Len(t, subset.Entities, 3)
	require.Len(t, subset.Relationships, 2)
}
