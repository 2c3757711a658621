package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/restmap-cli/restmap/core/models"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

// Render projects a ScanReport onto w in the requested format. The report is
// not modified; rendering the same report twice produces identical output.
func Render(report *models.ScanReport, format string, w io.Writer) error {
	switch format {
	case FormatText:
		return renderText(report, w)
	case FormatYAML:
		return renderYAML(report, w)
	case FormatTree:
		return renderTree(report, w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// renderText prints each file's name followed by its tab-indented matches,
// one "VERB path" pair per line, then any warnings.
func renderText(report *models.ScanReport, w io.Writer) error {
	fileColor := color.New(color.FgCyan, color.Bold)
	verbColor := color.New(color.FgGreen)

	for _, file := range report.Files {
		if _, err := fileColor.Fprintln(w, file.Name); err != nil {
			return err
		}
		for _, match := range file.Matches {
			if _, err := fmt.Fprintf(w, "\t%s %s\n", verbColor.Sprint(match.Verb), match.Path); err != nil {
				return err
			}
		}
	}

	if len(report.Warnings) > 0 {
		warnColor := color.New(color.FgYellow)
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, warning := range report.Warnings {
			if _, err := warnColor.Fprintf(w, "warning: %s: %s\n", warning.Path, warning.Reason); err != nil {
				return err
			}
		}
	}

	return nil
}

func renderYAML(report *models.ScanReport, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// renderTree prints the endpoint tree grouped by path segment, with the
// verbs declared at each node.
func renderTree(report *models.ScanReport, w io.Writer) error {
	tree := models.FromReport(report)

	if len(tree.Root.Verbs) > 0 {
		if _, err := fmt.Fprintf(w, "/ [%s]\n", strings.Join(tree.Root.Verbs, ", ")); err != nil {
			return err
		}
	}

	return renderNode(tree.Root, "", w)
}

func renderNode(node *models.EndpointNode, prefix string, w io.Writer) error {
	for _, child := range node.SortedChildren() {
		label := child.Segment.Name
		if child.Segment.IsParam {
			label = fmt.Sprintf("%s (param: %s)", child.Segment.Name, child.Segment.ParamName)
		}

		verbs := ""
		if len(child.Verbs) > 0 {
			verbs = fmt.Sprintf(" [%s]", strings.Join(child.Verbs, ", "))
		}

		if _, err := fmt.Fprintf(w, "%s%s -> %s%s\n", prefix, label, child.FullPath, verbs); err != nil {
			return err
		}

		if err := renderNode(child, prefix+"  ", w); err != nil {
			return err
		}
	}
	return nil
}
