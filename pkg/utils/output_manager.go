package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles report file organization and path management.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// FilePath returns the full path for a report file, stripping any path
// separators smuggled into the name.
func (om *OutputManager) FilePath(fileName string) string {
	return filepath.Join(om.BaseOutputDir, filepath.Base(fileName))
}

// DownloadURL generates the download URL for a report file.
func (om *OutputManager) DownloadURL(fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s", filepath.Base(fileName))
}

// FileType determines the report type based on extension.
func (om *OutputManager) FileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return "csv"
	case ".pdf":
		return "pdf"
	case ".xlsx":
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileSize returns the size of a report file in bytes.
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}

// EnsureOutputDirExists ensures the base output directory exists.
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
