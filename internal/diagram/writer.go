// =============================================================================
// EA Modeler - Document Writer
// =============================================================================
//
// This file serializes an assembled document to a named output file. The
// file name is deterministic: the sanitized, underscore-joined domain names
// followed by the diagram dialect keyword. Requesting the same domains and
// dialect always lands on the same path, so re-running a generation
// replaces the previous report instead of accumulating copies.
//
// =============================================================================

package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/umabot/eamodeler/internal/sanitize"
)

// Filename derives the deterministic output file name for a document.
// Example: domains ["Site", "Customer & Contract"] with the erDiagram
// dialect yield "Site_Customer_Contract_erDiagram.md".
func Filename(doc *Document) string {
	return fmt.Sprintf("%s_%s.md", sanitize.Filename(doc.Domains...), doc.DiagramType)
}

// Write renders the document and writes it under outputDir, creating the
// directory if needed.
//
// RETURNS:
//   - The path of the written file.
//   - A wrapped I/O error on any write failure (disk full, permission
//     denied, unusable path).
func Write(doc *Document, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, Filename(doc))
	if err := os.WriteFile(path, []byte(doc.Render()), 0644); err != nil {
		return "", fmt.Errorf("failed to write diagram file: %w", err)
	}

	return path, nil
}
