// =============================================================================
// Purchase Report Engine - File Manager Utility
// =============================================================================
//
// Output file management for the report writers: directory creation and
// expansion of the configured output-name pattern. Names are generated once
// per run so a single invocation's JSON, CSV, and workbook outputs share the
// same stem and timestamp.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager resolves output paths for generated reports.
type FileManager struct {
	// OutputDir is the directory generated files are placed in.
	OutputDir string

	// NameFormat is the output-name pattern. Supported placeholders:
	// {stem}, {file_no}, {timestamp}, {uuid}.
	NameFormat string

	// now is swappable for tests.
	now func() time.Time
}

// NewFileManager creates a FileManager for the given directory and pattern.
func NewFileManager(outputDir, nameFormat string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		NameFormat: nameFormat,
		now:        time.Now,
	}
}

// EnsureOutputDir creates the output directory when missing.
func (m *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(m.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", m.OutputDir, err)
	}
	return nil
}

// OutputPath expands the name pattern for one report file and joins it onto
// the output directory. stem identifies the report kind ("purchase_report",
// "purchase_summary", "purchase_analysis"); fileNo may be empty for reports
// that are not scoped to one file number.
func (m *FileManager) OutputPath(stem, fileNo, ext string) string {
	name := m.NameFormat
	// Analysis reports carry the file number even when the configured
	// pattern does not mention it.
	if fileNo != "" && !strings.Contains(name, "{file_no}") {
		name = strings.Replace(name, "{stem}", "{stem}_{file_no}", 1)
	}
	name = strings.ReplaceAll(name, "{stem}", stem)
	name = strings.ReplaceAll(name, "{file_no}", sanitizeComponent(fileNo))
	name = strings.ReplaceAll(name, "{timestamp}", m.now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())

	// Collapse separators left behind by an empty {file_no}.
	name = strings.ReplaceAll(name, "__", "_")
	name = strings.Trim(name, "_")

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(m.OutputDir, name+ext)
}

// sanitizeComponent strips characters that cannot appear in file names from
// a user-supplied path component.
func sanitizeComponent(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, s)
}
