// =============================================================================
// EA Modeler - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command for turning a
// canonical data model into a Mermaid diagram document.
//
// COMMAND USAGE:
//   eamodeler generate [domains...] [flags]
//
// FLAGS:
//   --classes       : Path to the classes/entities input file (required)
//   --attributes    : Path to the attributes input file (required)
//   --relationships : Path to the relationships input file (required)
//   --type          : Diagram dialect: erDiagram or classDiagram
//   --output-dir    : Directory for the generated report
//
// PIPELINE:
//   1. Load configuration
//   2. Load and validate the three model input files
//   3. Filter entities by the requested data domains
//   4. Assemble the diagram body and summary
//   5. Write the report and print a run summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/umabot/eamodeler/internal/diagram"
	"github.com/umabot/eamodeler/internal/model"
	"github.com/umabot/eamodeler/pkg/utils"
)

// Input file flags shared by 'generate' and 'validate'.
var (
	classesPath       string
	attributesPath    string
	relationshipsPath string
)

// diagramType selects the Mermaid dialect; empty means the config default.
var diagramType string

// outputDir overrides the configured output directory when set.
var outputDir string

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate [domains...]",
	Short: "Generate a Mermaid diagram document for one or more data domains",
	Long: `The generate command loads the three model input files, keeps the entities
belonging to the requested data domains, and writes a Markdown report with a
Mermaid diagram and an entity summary table.

Domain names are matched case-sensitively against the "Data Domain" column.
A requested domain that matches no entity fails the run; relationships whose
other end falls outside the requested domains are dropped silently.

Example Usage:
  eamodeler generate Site --classes classes.csv --attributes attributes.csv --relationships relationships.csv
  eamodeler generate Site "Customer & Contract" --type classDiagram ...`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&classesPath, "classes", "", "Path to the classes/entities input file")
	generateCmd.Flags().StringVar(&attributesPath, "attributes", "", "Path to the attributes input file")
	generateCmd.Flags().StringVar(&relationshipsPath, "relationships", "", "Path to the relationships input file")
	generateCmd.Flags().StringVar(&diagramType, "type", "", "Diagram dialect: erDiagram or classDiagram")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the generated report")

	generateCmd.MarkFlagRequired("classes")
	generateCmd.MarkFlagRequired("attributes")
	generateCmd.MarkFlagRequired("relationships")
}

// runGenerate executes one diagram generation run.
func runGenerate(cmd *cobra.Command, domains []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	typeValue := diagramType
	if typeValue == "" {
		typeValue = cfg.DefaultDiagramType
	}
	dt, err := model.ParseDiagramType(typeValue)
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	req := model.DiagramRequest{
		ClassesPath:       classesPath,
		AttributesPath:    attributesPath,
		RelationshipsPath: relationshipsPath,
		DataDomains:       domains,
		DiagramType:       dt,
		OutputDir:         dir,
	}

	gen := diagram.NewGenerator(newLogger(cfg))
	result := gen.Run(req)

	fm := utils.NewFileManager(cfg.ArchiveDir, cfg.LogsDir)

	if !result.Success {
		if logPath, logErr := fm.WriteErrorLog("generate", []string{result.Error.Error()}); logErr == nil {
			fmt.Fprintf(os.Stderr, "Error details logged to %s\n", logPath)
		}
		return result.Error
	}

	printRunSummary(result)

	if cfg.ArchiveOnSuccess {
		for _, input := range []string{classesPath, attributesPath, relationshipsPath} {
			if _, err := fm.ArchiveFile(input); err != nil {
				return fmt.Errorf("generated %s but archiving failed: %w", result.OutputFile, err)
			}
		}
	}

	return nil
}

// printRunSummary renders the run summary table to stdout.
func printRunSummary(result diagram.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Diagram generated")
	t.AppendRows([]table.Row{
		{"Output file", result.OutputFile},
		{"Diagram type", result.Request.DiagramType},
		{"Entities", result.Stats.EntityCount},
		{"Attributes", result.Stats.AttributeCount},
		{"Relationships", result.Stats.RelationshipCount},
		{"Elapsed", result.Stats.Elapsed.Round(time.Millisecond)},
	})
	t.Render()
}
