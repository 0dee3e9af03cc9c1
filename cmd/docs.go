// =============================================================================
// EA Modeler - Docs Command
// =============================================================================
//
// This file defines the 'docs' command, which generates Level 1 interface
// documentation for one application from a system-interface inventory.
//
// COMMAND USAGE:
//   eamodeler docs <app-name> [flags]
//
// FLAGS:
//   --input      : Path to the interface inventory file (required)
//   --direction  : Role of the application: source, target or all
//   --country    : Restrict the inventory to one country code
//   --output-dir : Directory for the generated document
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/umabot/eamodeler/internal/netmap"
	"github.com/umabot/eamodeler/pkg/utils"
)

var (
	docsInput     string
	docsDirection string
	docsCountry   string
)

// docsCmd represents the 'docs' command.
var docsCmd = &cobra.Command{
	Use:   "docs <app-name>",
	Short: "Generate interface documentation for one application",
	Long: `The docs command reads a system-interface inventory and documents the
interfaces where the given application appears, filtered by the role it
plays: source (interfaces it sends), target (interfaces it receives) or all.
The application name is matched case-insensitively as a substring of the
full application name.

The generated Markdown document contains a flow diagram of the selected
interfaces, a summary of the connected applications and a detail table.

Example Usage:
  eamodeler docs "APP-0100 - SAP FICO" --input interfaces.csv --direction target --country ES
  eamodeler docs APP-0100 --input interfaces.csv --direction all`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocs(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringVar(&docsInput, "input", "", "Path to the interface inventory file")
	docsCmd.Flags().StringVar(&docsDirection, "direction", "all", "Role of the application: source, target or all")
	docsCmd.Flags().StringVar(&docsCountry, "country", "", "Restrict the inventory to one country code")
	docsCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the generated document")

	docsCmd.MarkFlagRequired("input")
}

// runDocs executes one interface documentation run.
func runDocs(cmd *cobra.Command, appName string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	direction, err := netmap.ParseDirection(docsDirection)
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	logger := newLogger(cfg)
	logger.Info("Documenting interfaces for %q as %s from %s", appName, direction, docsInput)

	result, err := netmap.GenerateDocs(netmap.DocsRequest{
		InputPath: docsInput,
		AppName:   appName,
		Direction: direction,
		Country:   docsCountry,
		OutputDir: dir,
	})
	if err != nil {
		fm := utils.NewFileManager(cfg.ArchiveDir, cfg.LogsDir)
		if logPath, logErr := fm.WriteErrorLog("docs", []string{err.Error()}); logErr == nil {
			fmt.Fprintf(os.Stderr, "Error details logged to %s\n", logPath)
		}
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Interface documentation generated")
	t.AppendRows([]table.Row{
		{"Output file", result.OutputFile},
		{"Direction", direction},
		{"Interfaces", result.InterfaceCount},
	})
	t.Render()

	return nil
}
