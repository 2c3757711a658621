package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/restmap-cli/restmap/core/cache"
	"github.com/restmap-cli/restmap/core/logger"
	"github.com/restmap-cli/restmap/core/models"
	"github.com/restmap-cli/restmap/core/parser"
)

// MaxFileSize caps how much of a controller file is read. Files over the cap
// are skipped entirely and never appear in the report.
const MaxFileSize = 8 * 1024 * 1024

// SkipFileError marks a per-file condition (too large, unreadable) that
// skips the file with a warning instead of failing the scan.
type SkipFileError struct {
	Path   string
	Reason string
}

func (e *SkipFileError) Error() string {
	return fmt.Sprintf("skipping %s: %s", e.Path, e.Reason)
}

// FileScanner reads one candidate controller file and collects its endpoint
// matches line by line.
type FileScanner struct {
	cache *cache.ReportCache
}

func NewFileScanner(useCache bool) *FileScanner {
	if useCache {
		return NewFileScannerWithCache(cache.GetCache())
	}
	return &FileScanner{}
}

// NewFileScannerWithCache uses a specific cache instead of the global one.
func NewFileScannerWithCache(c *cache.ReportCache) *FileScanner {
	return &FileScanner{cache: c}
}

// Scan produces the FileReport for the file at path. relPath is the display
// path relative to the scan root. Recoverable conditions come back as a
// *SkipFileError; an unknown annotation surfaces as a
// *parser.UnknownAnnotationError wrapped with the file position.
func (fs *FileScanner) Scan(path, relPath string) (*models.FileReport, error) {
	if fs.cache != nil {
		if report, ok := fs.cache.ValidateAndGet(path); ok {
			return report, nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &SkipFileError{Path: path, Reason: fmt.Sprintf("cannot stat: %v", err)}
	}

	if info.Size() > MaxFileSize {
		return nil, &SkipFileError{
			Path:   path,
			Reason: fmt.Sprintf("exceeds the buffer limit of %d bytes", MaxFileSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SkipFileError{Path: path, Reason: fmt.Sprintf("cannot read: %v", err)}
	}

	report := &models.FileReport{
		Name:    filepath.Base(path),
		Path:    path,
		RelPath: relPath,
	}

	// Invalid UTF-8 never fails the scan; bad sequences are replaced.
	content := strings.ToValidUTF8(string(data), "�")

	for i, line := range strings.Split(content, "\n") {
		match, ok, err := parser.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if !ok {
			continue
		}

		match.Line = i + 1
		report.Matches = append(report.Matches, match)
		logger.Debug("Found endpoint %s %s at %s:%d", match.Verb, match.Path, relPath, match.Line)
	}

	if fs.cache != nil {
		if err := fs.cache.Set(path, report); err != nil {
			logger.Debug("Failed to cache report for %s: %v", path, err)
		}
	}

	return report, nil
}
