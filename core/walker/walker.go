package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restmap-cli/restmap/core/config"
	"github.com/restmap-cli/restmap/core/logger"
	"github.com/restmap-cli/restmap/core/models"
	"github.com/restmap-cli/restmap/core/parser"
	"github.com/restmap-cli/restmap/core/scanner"
)

// ControllerSuffix selects the files worth scanning: Java sources following
// the *Controller naming convention.
const ControllerSuffix = "Controller.java"

type Options struct {
	// Exclude lists directory names skipped in addition to hidden ones.
	Exclude []string
	// Lenient collects unknown annotations as warnings instead of aborting.
	Lenient bool
	// UseCache consults the report cache before re-reading files.
	UseCache bool
}

// DirectoryWalker recursively enumerates a root directory, hands matching
// controller files to the scanner and gathers everything into one report.
// Entries from os.ReadDir come back sorted, so the traversal order is a
// deterministic lexicographic depth-first walk.
type DirectoryWalker struct {
	scanner *scanner.FileScanner
	exclude map[string]struct{}
	lenient bool
}

func NewDirectoryWalker(opts Options) *DirectoryWalker {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}
	return &DirectoryWalker{
		scanner: scanner.NewFileScanner(opts.UseCache),
		exclude: exclude,
		lenient: opts.Lenient,
	}
}

// FromConfig builds a walker from the loaded config.
func FromConfig(cfg *config.Config, useCache bool) *DirectoryWalker {
	return NewDirectoryWalker(Options{
		Exclude:  cfg.Scan.Exclude,
		Lenient:  cfg.Scan.Lenient,
		UseCache: useCache,
	})
}

// Walk scans the tree rooted at root. The root not existing or not being a
// readable directory is fatal; everything below it degrades to warnings,
// except unknown annotations in strict mode, which abort the run and discard
// partial results.
func (w *DirectoryWalker) Walk(root string) (*models.ScanReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot scan %s: not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", root, err)
	}

	report := &models.ScanReport{
		Root:        root,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
	}

	if err := w.walkEntries(root, root, entries, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (w *DirectoryWalker) walkEntries(root, dir string, entries []os.DirEntry, report *models.ScanReport) error {
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") {
				logger.Debug("Skipping hidden directory: %s", path)
				continue
			}
			if _, excluded := w.exclude[name]; excluded {
				logger.Debug("Skipping excluded directory: %s", path)
				continue
			}
			if err := w.walkDir(root, path, report); err != nil {
				return err
			}
			continue
		}

		// Symlinks are not followed, which also rules out link cycles.
		if !entry.Type().IsRegular() {
			continue
		}

		if !strings.HasSuffix(name, ControllerSuffix) {
			continue
		}

		if err := w.scanFile(root, path, report); err != nil {
			return err
		}
	}

	return nil
}

func (w *DirectoryWalker) walkDir(root, dir string, report *models.ScanReport) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable subdirectories (permissions, races) degrade to a
		// warning; only the root itself is fatal.
		logger.Warn("Cannot read directory %s: %v", dir, err)
		report.AddWarning(dir, fmt.Sprintf("cannot read directory: %v", err))
		return nil
	}

	return w.walkEntries(root, dir, entries, report)
}

func (w *DirectoryWalker) scanFile(root, path string, report *models.ScanReport) error {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}

	fileReport, err := w.scanner.Scan(path, relPath)
	if err != nil {
		var skip *scanner.SkipFileError
		if errors.As(err, &skip) {
			logger.Warn("Ignoring file %s: %s", path, skip.Reason)
			report.AddWarning(path, skip.Reason)
			return nil
		}

		var unknown *parser.UnknownAnnotationError
		if errors.As(err, &unknown) && w.lenient {
			logger.Warn("Ignoring file with %v", err)
			report.AddWarning(path, err.Error())
			return nil
		}

		return err
	}

	report.Files = append(report.Files, *fileReport)
	return nil
}
