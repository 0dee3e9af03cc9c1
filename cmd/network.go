// =============================================================================
// EA Modeler - Network Command
// =============================================================================
//
// This file defines the 'network' command, which maps the integration
// landscape around one application from a system-interface inventory.
//
// COMMAND USAGE:
//   eamodeler network <app-name> [flags]
//
// FLAGS:
//   --input      : Path to the interface inventory file (required)
//   --country    : Restrict the inventory to one country code
//   --depth      : Maximum traversal depth (0 = unlimited)
//   --output-dir : Directory for the generated report
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
	networkInput   string
	networkCountry string
	networkDepth   int
)

// networkCmd represents the 'network' command.
var networkCmd = &cobra.Command{
	Use:   "network <app-name>",
	Short: "Generate an integration network diagram around one application",
	Long: `The network command reads a system-interface inventory, finds the
application whose code contains the given name (case-insensitive), walks
its integrations upstream and downstream, and writes a Markdown report with
a Mermaid flowchart and an interface table.

Example Usage:
  eamodeler network APP-0100 --input interfaces.csv
  eamodeler network APP-0100 --input interfaces.csv --country ES --depth 2`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNetwork(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)

	networkCmd.Flags().StringVar(&networkInput, "input", "", "Path to the interface inventory file")
	networkCmd.Flags().StringVar(&networkCountry, "country", "", "Restrict the inventory to one country code")
	networkCmd.Flags().IntVar(&networkDepth, "depth", 0, "Maximum traversal depth (0 = unlimited)")
	networkCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the generated report")

	networkCmd.MarkFlagRequired("input")
}

// runNetwork executes one network report run.
func runNetwork(cmd *cobra.Command, appName string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	logger := newLogger(cfg)
	logger.Info("Mapping integration network for %q from %s", appName, networkInput)

	result, err := netmap.Generate(netmap.Request{
		InputPath: networkInput,
		AppName:   appName,
		Country:   networkCountry,
		MaxDepth:  networkDepth,
		OutputDir: dir,
	})
	if err != nil {
		fm := utils.NewFileManager(cfg.ArchiveDir, cfg.LogsDir)
		if logPath, logErr := fm.WriteErrorLog("network", []string{err.Error()}); logErr == nil {
			fmt.Fprintf(os.Stderr, "Error details logged to %s\n", logPath)
		}
		return err
	}

	if result.OutputFile == "" {
		logger.Warn("No interfaces matched the requested scope; no report generated")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Network report generated")
	t.AppendRows([]table.Row{
		{"Output file", result.OutputFile},
		{"Applications", result.NodeCount},
		{"Interfaces", result.InterfaceCount},
	})
	t.Render()

	return nil
}
