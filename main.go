// =============================================================================
// EA Modeler - Main Entry Point
// =============================================================================
//
// This is the main entry point for the EA Modeler CLI application. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   eamodeler generate   - Generate a Mermaid diagram for one or more data domains
//   eamodeler network    - Generate an integration network diagram for an application
//   eamodeler docs       - Generate interface documentation for an application
//   eamodeler validate   - Validate model input files without generating output
//   eamodeler version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core business logic (not for external import)
//   - pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/umabot/eamodeler/cmd"
)

func main() {
	cmd.Execute()
}
