package models

import "time"

// EndpointMatch is one recognized mapping annotation: the verb it declares,
// the path taken from its first quoted attribute, and the 1-based line it
// appeared on. At most one match is produced per source line.
type EndpointMatch struct {
	Verb Verb   `yaml:"verb"`
	Path string `yaml:"path"`
	Line int    `yaml:"line"`
}

// FileReport holds the matches found in a single controller file, in order
// of appearance. A controller file with no recognized annotations still
// produces a (empty) report.
type FileReport struct {
	Name    string          `yaml:"name"`
	Path    string          `yaml:"path"`
	RelPath string          `yaml:"rel_path"`
	Matches []EndpointMatch `yaml:"matches"`
}

// Warning records a file or directory that was skipped during a scan and why.
type Warning struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

// ScanReport is the full result of one scan run: every scanned controller
// file in traversal order, plus the skip diagnostics collected along the way.
type ScanReport struct {
	Root        string       `yaml:"root"`
	RunID       string       `yaml:"run_id"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	Files       []FileReport `yaml:"files"`
	Warnings    []Warning    `yaml:"warnings,omitempty"`
}

// TotalMatches counts endpoint matches across all files.
func (r *ScanReport) TotalMatches() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Matches)
	}
	return total
}

// AddWarning appends a skip diagnostic to the report.
func (r *ScanReport) AddWarning(path, reason string) {
	r.Warnings = append(r.Warnings, Warning{Path: path, Reason: reason})
}
