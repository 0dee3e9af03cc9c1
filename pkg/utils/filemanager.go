// =============================================================================
// EA Modeler - File Manager Utility
// =============================================================================
//
// This module provides file housekeeping around generation runs:
//   - Archiving processed input files into date-based subdirectories
//   - Writing error logs for failed runs
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive only after successful processing
//   - Failed files remain in their original location
//   - Error logs are created in the logs directory, one file per failure
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles file housekeeping for the CLI.
type FileManager struct {
	// ArchiveDir is the root directory archived inputs are moved to.
	ArchiveDir string

	// LogsDir is the directory error logs are written to.
	LogsDir string

	// UseTimestampSubdirs creates date-based subdirectories in the archive.
	// Example: input_archive/2026/08/26/classes.csv
	UseTimestampSubdirs bool
}

// NewFileManager creates a FileManager with date-based archive layout.
func NewFileManager(archiveDir, logsDir string) *FileManager {
	return &FileManager{
		ArchiveDir:          archiveDir,
		LogsDir:             logsDir,
		UseTimestampSubdirs: true,
	}
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// ArchiveFile moves a processed input file into the archive and returns its
// new path. If a file with the same name already exists in the archive, a
// timestamp suffix keeps the move from overwriting it.
func (fm *FileManager) ArchiveFile(path string) (string, error) {
	targetDir := fm.ArchiveDir
	if fm.UseTimestampSubdirs {
		now := time.Now()
		targetDir = filepath.Join(targetDir, now.Format("2006"), now.Format("01"), now.Format("02"))
	}
	if err := EnsureDir(targetDir); err != nil {
		return "", err
	}

	target := filepath.Join(targetDir, filepath.Base(path))
	if _, err := os.Stat(target); err == nil {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(filepath.Base(target), ext)
		target = filepath.Join(targetDir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("150405"), ext))
	}

	if err := moveFile(path, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return target, nil
}

// WriteErrorLog writes the messages of a failed run to a uniquely named log
// file and returns its path.
func (fm *FileManager) WriteErrorLog(runName string, messages []string) (string, error) {
	if err := EnsureDir(fm.LogsDir); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_error_%s.log", runName, uuid.NewString())
	path := filepath.Join(fm.LogsDir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "Run:  %s\n", runName)
	fmt.Fprintf(&b, "Time: %s\n\n", time.Now().Format(time.RFC3339))
	for _, msg := range messages {
		b.WriteString(msg)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return path, nil
}

// moveFile renames a file, falling back to copy-and-delete when source and
// target live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
