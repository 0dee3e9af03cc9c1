package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umabot/eamodeler/internal/model"
)

// writeInputs writes a small but complete model export into dir and returns
// the three file paths.
func writeInputs(t *testing.T, dir string) (classes, attributes, relationships string) {
	t.Helper()

	classes = filepath.Join(dir, "classes.csv")
	attributes = filepath.Join(dir, "attributes.csv")
	relationships = filepath.Join(dir, "relationships.csv")

	classesCSV := "Data Domain,Data Entity\n" +
		"Site,Site\n" +
		"Site,Service Delivery Point\n" +
		"Finance,Invoice\n"
	attributesCSV := "Data Entity,Attribute,Data Type,PK\n" +
		"Site,Site ID,Integer,Yes\n" +
		"Site,Site Name,Text,No\n" +
		"Service Delivery Point,SDP ID,Integer,Yes\n" +
		"Invoice,Invoice ID,Integer,Yes\n"
	relationshipsCSV := "Parent Entity,Child Entity,Parent to Child Verb Phrase,Cardinality\n" +
		"Site,Service Delivery Point,contains,1:M\n" +
		"Site,Invoice,bills,1:M\n"

	require.NoError(t, os.WriteFile(classes, []byte(classesCSV), 0644))
	require.NoError(t, os.WriteFile(attributes, []byte(attributesCSV), 0644))
	require.NoError(t, os.WriteFile(relationships, []byte(relationshipsCSV), 0644))
	return classes, attributes, relationships
}

func TestGeneratorRun(t *testing.T) {
	dir := t.TempDir()
	classes, attributes, relationships := writeInputs(t, dir)
	outDir := filepath.Join(dir, "output")

	gen := NewGenerator(nil)
	result := gen.Run(model.DiagramRequest{
		ClassesPath:       classes,
		AttributesPath:    attributes,
		RelationshipsPath: relationships,
		DataDomains:       []string{"Site"},
		DiagramType:       model.DiagramER,
		OutputDir:         outDir,
	})

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(outDir, "Site_erDiagram.md"), result.OutputFile)
	assert.Equal(t, 2, result.Stats.EntityCount)
	assert.Equal(t, 3, result.Stats.AttributeCount)
	assert.Equal(t, 1, result.Stats.RelationshipCount)

	content, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	report := string(content)

	assert.Contains(t, report, "# ER Diagram for Data Domains: Site")
	assert.Contains(t, report, "    Site |o--o{ Service_Delivery_Point : \"contains\"")
	// The Site->Invoice relationship crosses out of the requested domain.
	assert.NotContains(t, report, "Invoice")
	assert.Contains(t, report, "        Integer Site_ID PK\n        Text Site_Name\n")
}

func TestGeneratorRun_UnknownDomainWritesNothing(t *testing.T) {
	dir := t.TempDir()
	classes, attributes, relationships := writeInputs(t, dir)
	outDir := filepath.Join(dir, "output")

	gen := NewGenerator(&StderrLogger{})
	result := gen.Run(model.DiagramRequest{
		ClassesPath:       classes,
		AttributesPath:    attributes,
		RelationshipsPath: relationships,
		DataDomains:       []string{"Nonexistent"},
		DiagramType:       model.DiagramER,
		OutputDir:         outDir,
	})

	assert.False(t, result.Success)
	assert.Empty(t, result.OutputFile)

	var unknown *UnknownDomainError
	require.ErrorAs(t, result.Error, &unknown)

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratorRun_MissingInputFile(t *testing.T) {
	dir := t.TempDir()

	gen := NewGenerator(nil)
	result := gen.Run(model.DiagramRequest{
		ClassesPath:       filepath.Join(dir, "absent.csv"),
		AttributesPath:    filepath.Join(dir, "absent.csv"),
		RelationshipsPath: filepath.Join(dir, "absent.csv"),
		DataDomains:       []string{"Site"},
		DiagramType:       model.DiagramER,
		OutputDir:         dir,
	})

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Error, os.ErrNotExist)
}
