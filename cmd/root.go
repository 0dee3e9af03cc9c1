// =============================================================================
// EA Modeler - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('generate', 'network', 'docs', 'validate', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (eamodeler)
//   ├── generateCmd (eamodeler generate)
//   ├── networkCmd  (eamodeler network)
//   ├── docsCmd     (eamodeler docs)
//   ├── validateCmd (eamodeler validate)
//   └── versionCmd  (eamodeler version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umabot/eamodeler/internal/config"
	"github.com/umabot/eamodeler/internal/diagram"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "eamodeler",
	Short: "EA Modeler - Generate Mermaid diagrams from canonical data model files",
	Long: `EA Modeler is a CLI tool that reads tabular descriptions of a logical
data model (classes, attributes, relationships) and renders Mermaid.js
diagram documents filtered by business data domain.

Key Features:
  - Entity-relationship and class diagram dialects
  - Domain-filtered output with entity summary tables
  - CSV and XLSX inputs, with legacy text-encoding fallback
  - Integration network diagrams from a system-interface inventory
  - Per-application interface documentation with direction filtering

Example Usage:
  eamodeler generate Site --classes classes.csv --attributes attributes.csv --relationships relationships.csv
  eamodeler network APP-0100 --input interfaces.csv --country ES
  eamodeler docs APP-0100 --input interfaces.csv --direction target
  eamodeler validate --classes classes.csv --attributes attributes.csv --relationships relationships.csv`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig resolves the effective configuration. An explicitly passed
// --config path must exist; the default path is optional and falls back to
// the built-in defaults when absent.
func loadConfig(cmd *cobra.Command) (*config.MainConfig, error) {
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the run logger from the config and the --verbose flag.
func newLogger(cfg *config.MainConfig) diagram.Logger {
	return &diagram.StderrLogger{Verbose: verbose || cfg.LogLevel == "debug"}
}
