package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umabot/eamodeler/internal/model"
)

func TestERConnector(t *testing.T) {
	assert.Equal(t, "|o--o{", ERConnector(model.CardinalityOneToMany))
	assert.Equal(t, "|o--||", ERConnector(model.CardinalityOneToOne))
	assert.Equal(t, "}o--o{", ERConnector(model.CardinalityManyToMany))
	assert.Equal(t, "--", ERConnector(model.CardinalityOther))
}

func TestAssemble_EREntityBlock(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{{Name: "Site", Domain: "Site"}},
		Attributes: []model.Attribute{
			{EntityName: "Site", Name: "Site Name", DataType: "Text"},
			{EntityName: "Site", Name: "Site ID", DataType: "Integer", IsPrimaryKey: true},
			{EntityName: "Site", Name: "Status", DataType: "Text"},
		},
	}

	doc := Assemble(subset, []string{"Site"}, model.DiagramER)

	expected := "erDiagram\n" +
		"    Site {\n" +
		"        Integer Site_ID PK\n" +
		"        Text Site_Name\n" +
		"        Text Status\n" +
		"    }\n"
	assert.Equal(t, expected, doc.Body)
	assert.Equal(t, 1, doc.EntityCount)
	assert.Equal(t, 3, doc.AttributeCount)
	assert.Equal(t, 0, doc.RelationshipCount)
}

func TestAssemble_RelationshipLine(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{
			{Name: "Site", Domain: "Site"},
			{Name: "Service Delivery Point", Domain: "Site"},
		},
		Relationships: []model.Relationship{
			{ParentEntity: "Site", ChildEntity: "Service Delivery Point", VerbPhrase: "contains", Cardinality: model.CardinalityOneToMany},
		},
	}

	doc := Assemble(subset, []string{"Site"}, model.DiagramER)
	assert.Contains(t, doc.Body, "    Site |o--o{ Service_Delivery_Point : \"contains\"\n")
}

func TestAssemble_VerbPhraseEscaping(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{
			{Name: "A", Domain: "D"},
			{Name: "B", Domain: "D"},
		},
		Relationships: []model.Relationship{
			{ParentEntity: "A", ChildEntity: "B", VerbPhrase: `is "parent" of`, Cardinality: model.CardinalityOther},
		},
	}

	doc := Assemble(subset, []string{"D"}, model.DiagramER)
	assert.Contains(t, doc.Body, `    A -- B : "is #quot;parent#quot; of"`)
	assert.NotContains(t, doc.Body, `"is "parent" of"`)
}

func TestAssemble_EmptyEntityBlock(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{{Name: "Meter", Domain: "Site"}},
	}

	doc := Assemble(subset, []string{"Site"}, model.DiagramER)
	assert.Contains(t, doc.Body, "    Meter {\n    }\n")
}

func TestAssemble_BodyIndependentOfDomainOrder(t *testing.T) {
	ds := testDataset()

	first, err := FilterByDomains(ds, []string{"Site", "Finance"})
	require.NoError(t, err)
	second, err := FilterByDomains(ds, []string{"Finance", "Site"})
	require.NoError(t, err)

	docA := Assemble(first, []string{"Site", "Finance"}, model.DiagramER)
	docB := Assemble(second, []string{"Finance", "Site"}, model.DiagramER)

	assert.Equal(t, docA.Body, docB.Body)
}

func TestAssemble_EntitiesSortedByName(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{
			{Name: "Zone", Domain: "D"},
			{Name: "Asset", Domain: "D"},
			{Name: "Meter", Domain: "D"},
		},
	}

	doc := Assemble(subset, []string{"D"}, model.DiagramER)

	asset := strings.Index(doc.Body, "Asset {")
	meter := strings.Index(doc.Body, "Meter {")
	zone := strings.Index(doc.Body, "Zone {")
	assert.True(t, asset < meter && meter < zone)

	require.Len(t, doc.Entities, 3)
	assert.Equal(t, "Asset", doc.Entities[0].Name)
	assert.Equal(t, "Zone", doc.Entities[2].Name)
}

func TestAssemble_ClassDialect(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{
			{Name: "Site", Domain: "Site"},
			{Name: "Customer", Domain: "Site"},
		},
		Attributes: []model.Attribute{
			{EntityName: "Site", Name: "Site ID", DataType: "Integer", IsPrimaryKey: true},
		},
		Relationships: []model.Relationship{
			{ParentEntity: "Site", ChildEntity: "Customer", VerbPhrase: "serves", Cardinality: model.CardinalityOneToMany},
			{ParentEntity: "Site", ChildEntity: "Customer", VerbPhrase: "relates to", Cardinality: model.CardinalityOther},
		},
	}

	doc := Assemble(subset, []string{"Site"}, model.DiagramClass)

	assert.True(t, strings.HasPrefix(doc.Body, "classDiagram\n"))
	assert.Contains(t, doc.Body, "    class Site {\n")
	assert.Contains(t, doc.Body, "        Integer Site_ID PK\n")
	assert.Contains(t, doc.Body, "    Site \"1\" --> \"0..*\" Customer : \"serves\"\n")
	assert.Contains(t, doc.Body, "    Site --> Customer : \"relates to\"\n")
}

func TestDocumentRender(t *testing.T) {
	subset := &model.Dataset{
		Entities: []model.Entity{{Name: "Site", Domain: "Site"}},
		Attributes: []model.Attribute{
			{EntityName: "Site", Name: "Site ID", DataType: "Integer", IsPrimaryKey: true},
		},
	}

	doc := Assemble(subset, []string{"Site"}, model.DiagramER)
	md := doc.Render()

	assert.True(t, strings.HasPrefix(md, "# ER Diagram for Data Domains: Site\n"))
	assert.Contains(t, md, "**Entities included:** 1  \n")
	assert.Contains(t, md, "**Relationships included:** 0  \n")
	assert.Contains(t, md, "```mermaid\nerDiagram\n")
	assert.Contains(t, md, "## Entity Summary\n\n| Entity | Attributes | Domain |\n")
	assert.Contains(t, md, "| Site | 1 | Site |\n")
}

func TestDocumentRender_EscapesTableCells(t *testing.T) {
	doc := &Document{
		DiagramType: model.DiagramER,
		Domains:     []string{"Ops"},
		Body:        "erDiagram\n",
		Entities:    []EntitySummary{{Name: "A|B", AttributeCount: 0, Domain: "Ops"}},
	}

	assert.Contains(t, doc.Render(), `| A\|B | 0 | Ops |`)
}
