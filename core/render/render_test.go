package render

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/restmap-cli/restmap/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *models.ScanReport {
	return &models.ScanReport{
		Root:  "/src/app",
		RunID: "test-run",
		Files: []models.FileReport{
			{
				Name:    "UserController.java",
				RelPath: "api/UserController.java",
				Matches: []models.EndpointMatch{
					{Verb: models.Get, Path: "/users", Line: 5},
					{Verb: models.Post, Path: "/users", Line: 9},
				},
			},
			{
				Name:    "QuietController.java",
				RelPath: "api/QuietController.java",
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	require.NoError(t, Render(sampleReport(), FormatText, &buf))

	want := "UserController.java\n" +
		"\tGET /users\n" +
		"\tPOST /users\n" +
		"QuietController.java\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTextWithWarnings(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	report := sampleReport()
	report.AddWarning("/src/app/BigController.java", "exceeds the buffer limit of 8388608 bytes")

	var buf bytes.Buffer
	require.NoError(t, Render(report, FormatText, &buf))

	assert.Contains(t, buf.String(), "warning: /src/app/BigController.java: exceeds the buffer limit")
}

func TestRenderYAMLRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(sampleReport(), FormatYAML, &buf))

	var decoded struct {
		Root  string `yaml:"root"`
		RunID string `yaml:"run_id"`
		Files []struct {
			Name    string `yaml:"name"`
			Matches []struct {
				Verb string `yaml:"verb"`
				Path string `yaml:"path"`
				Line int    `yaml:"line"`
			} `yaml:"matches"`
		} `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/src/app", decoded.Root)
	assert.Equal(t, "test-run", decoded.RunID)
	require.Len(t, decoded.Files, 2)
	require.Len(t, decoded.Files[0].Matches, 2)
	assert.Equal(t, "GET", decoded.Files[0].Matches[0].Verb)
	assert.Equal(t, "/users", decoded.Files[0].Matches[0].Path)
	assert.Equal(t, 5, decoded.Files[0].Matches[0].Line)
}

func TestRenderTree(t *testing.T) {
	report := &models.ScanReport{
		Files: []models.FileReport{
			{
				Name: "UserController.java",
				Matches: []models.EndpointMatch{
					{Verb: models.Get, Path: "/users"},
					{Verb: models.Get, Path: "/users/{id}"},
					{Verb: models.Post, Path: "/users"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(report, FormatTree, &buf))

	want := "users -> /users [GET, POST]\n" +
		"  {id} (param: id) -> /users/{id} [GET]\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(sampleReport(), "json", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRenderIsAPureProjection(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	report := sampleReport()
	var first, second bytes.Buffer
	require.NoError(t, Render(report, FormatText, &first))
	require.NoError(t, Render(report, FormatText, &second))
	assert.Equal(t, first.String(), second.String())
}
