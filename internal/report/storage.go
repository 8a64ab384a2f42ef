package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage persists a rendered report and returns its path.
type Storage interface {
	Save(report *Report, content, extension string) (string, error)
}

type FileStorage struct {
	OutputDir string
}

func NewFileStorage(outputDir string) *FileStorage {
	return &FileStorage{OutputDir: outputDir}
}

func sanitizeFilenameComponent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '.' || r == '_' || r == '-' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	out := strings.Trim(b.String(), "._-")
	if out == "" {
		return "unknown"
	}
	return out
}

// Save writes the report atomically: temp file first, then rename.
func (s *FileStorage) Save(report *Report, content, extension string) (string, error) {
	if s.OutputDir == "" {
		s.OutputDir = "reports"
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().UnixNano()
	mode := sanitizeFilenameComponent(report.Mode)
	filename := fmt.Sprintf("%s_report_%d.%s", mode, timestamp, extension)
	reportPath := filepath.Join(s.OutputDir, filename)

	tmpFile, err := os.CreateTemp(s.OutputDir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp report file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close report file: %w", err)
	}
	if err := os.Rename(tmpPath, reportPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to finalize report file: %w", err)
	}
	return reportPath, nil
}
