// =============================================================================
// EA Modeler - Dataset Loading
// =============================================================================
//
// This file ties the three tabular inputs of a canonical data model together
// into a typed model.Dataset. Each file has a fixed set of required columns;
// the fixed names below are the contract with the upstream export and are
// matched exactly (case-sensitive).
//
// =============================================================================

package loader

import "github.com/umabot/eamodeler/internal/model"

// Column names required in each input file.
const (
	ColDataDomain  = "Data Domain"
	ColDataEntity  = "Data Entity"
	ColAttribute   = "Attribute"
	ColDataType    = "Data Type"
	ColPrimaryKey  = "PK"
	ColParent      = "Parent Entity"
	ColChild       = "Child Entity"
	ColVerbPhrase  = "Parent to Child Verb Phrase"
	ColCardinality = "Cardinality"

	// ColDescription is optional in every file; it is carried through for
	// reporting when present.
	ColDescription = "Description"
)

// Required column sets per input file.
var (
	classesColumns       = []string{ColDataDomain, ColDataEntity}
	attributesColumns    = []string{ColDataEntity, ColAttribute, ColDataType, ColPrimaryKey}
	relationshipsColumns = []string{ColParent, ColChild, ColVerbPhrase, ColCardinality}
)

// LoadDataset reads and validates the three model input files and returns
// the typed dataset, preserving input row order.
//
// PARAMETERS:
//   - classesPath:       entity definitions (Data Domain, Data Entity)
//   - attributesPath:    attribute definitions (Data Entity, Attribute, Data Type, PK)
//   - relationshipsPath: relationship definitions (Parent Entity, Child Entity,
//     Parent to Child Verb Phrase, Cardinality)
//
// RETURNS:
//   - The loaded dataset.
//   - A MissingColumnError if any required column is absent, or a read error
//     if a file is missing or cannot be decoded.
func LoadDataset(classesPath, attributesPath, relationshipsPath string) (*model.Dataset, error) {
	classes, err := readValidated(classesPath, classesColumns)
	if err != nil {
		return nil, err
	}
	attributes, err := readValidated(attributesPath, attributesColumns)
	if err != nil {
		return nil, err
	}
	relationships, err := readValidated(relationshipsPath, relationshipsColumns)
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		Entities:      make([]model.Entity, 0, classes.RowCount),
		Attributes:    make([]model.Attribute, 0, attributes.RowCount),
		Relationships: make([]model.Relationship, 0, relationships.RowCount),
	}

	for _, row := range classes.Rows {
		ds.Entities = append(ds.Entities, model.Entity{
			Name:        row[ColDataEntity],
			Domain:      row[ColDataDomain],
			Description: row[ColDescription],
		})
	}

	for _, row := range attributes.Rows {
		ds.Attributes = append(ds.Attributes, model.Attribute{
			EntityName:   row[ColDataEntity],
			Name:         row[ColAttribute],
			DataType:     row[ColDataType],
			IsPrimaryKey: model.ParseBoolFlag(row[ColPrimaryKey]),
			Description:  row[ColDescription],
		})
	}

	for _, row := range relationships.Rows {
		ds.Relationships = append(ds.Relationships, model.Relationship{
			ParentEntity: row[ColParent],
			ChildEntity:  row[ColChild],
			VerbPhrase:   row[ColVerbPhrase],
			Cardinality:  model.ParseCardinality(row[ColCardinality]),
			Description:  row[ColDescription],
		})
	}

	return ds, nil
}

// readValidated reads one table and checks its required columns.
func readValidated(path string, columns []string) (*Table, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := RequireColumns(table, columns...); err != nil {
		return nil, err
	}
	return table, nil
}
