package parser

import (
	"errors"
	"testing"

	"github.com/restmap-cli/restmap/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineMappings(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantVerb models.Verb
		wantPath string
	}{
		{
			name:     "get mapping with path",
			line:     `@GetMapping("/users/{id}")`,
			wantVerb: models.Get,
			wantPath: "/users/{id}",
		},
		{
			name:     "request mapping with named attribute",
			line:     `@RequestMapping(value = "/health")`,
			wantVerb: models.Any,
			wantPath: "/health",
		},
		{
			name:     "post mapping",
			line:     `@PostMapping("/orders")`,
			wantVerb: models.Post,
			wantPath: "/orders",
		},
		{
			name:     "put mapping",
			line:     `@PutMapping("/orders/{id}")`,
			wantVerb: models.Put,
			wantPath: "/orders/{id}",
		},
		{
			name:     "patch mapping",
			line:     `@PatchMapping("/orders/{id}")`,
			wantVerb: models.Patch,
			wantPath: "/orders/{id}",
		},
		{
			name:     "head mapping",
			line:     `@HeadMapping("/ping")`,
			wantVerb: models.Head,
			wantPath: "/ping",
		},
		{
			name:     "options mapping",
			line:     `@OptionsMapping("/ping")`,
			wantVerb: models.Options,
			wantPath: "/ping",
		},
		{
			name:     "delete mapping without parentheses",
			line:     `@DeleteMapping`,
			wantVerb: models.Delete,
			wantPath: "",
		},
		{
			name:     "leading whitespace",
			line:     `    @GetMapping("/indented")`,
			wantVerb: models.Get,
			wantPath: "/indented",
		},
		{
			name:     "trailing code is ignored after the path",
			line:     `@GetMapping("/done") // handles listing`,
			wantVerb: models.Get,
			wantPath: "/done",
		},
		{
			name:     "attributes without a quoted string give an empty path",
			line:     `@RequestMapping(method = RequestMethod.GET)`,
			wantVerb: models.Any,
			wantPath: "",
		},
		{
			name:     "first quoted string wins",
			line:     `@RequestMapping(value = "/first", produces = "/second")`,
			wantVerb: models.Any,
			wantPath: "/first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantVerb, match.Verb)
			assert.Equal(t, tt.wantPath, match.Path)
		})
	}
}

func TestParseLineRejectsNonMappingLines(t *testing.T) {
	lines := []string{
		"",
		"public class UserController {",
		`    return "ok";`,
		"@Override",
		"@Autowired",
		// Mapping word present but the line does not start with '@'.
		`String s = "@GetMapping(\"/x\")";`,
	}

	for _, line := range lines {
		match, ok, err := ParseLine(line)
		require.NoError(t, err, "line %q", line)
		assert.False(t, ok, "line %q", line)
		assert.Zero(t, match, "line %q", line)
	}
}

func TestParseLineEscapedQuote(t *testing.T) {
	// The backslash is consumed and the escaped quote lands in the path.
	match, ok, err := ParseLine(`@PostMapping("/a\"b")`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Post, match.Verb)
	assert.Equal(t, `/a"b`, match.Path)
}

func TestParseLineDoubleBackslash(t *testing.T) {
	// Escape tracking only looks at the immediately previous character, not
	// at backslash-run parity: the first backslash is consumed, the second
	// is copied, and the quote is judged escaped by the second.
	match, ok, err := ParseLine(`@PostMapping("/a\\"b")`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Post, match.Verb)
	assert.Equal(t, `/a\"b`, match.Path)
}

func TestParseLineUnknownAnnotation(t *testing.T) {
	_, _, err := ParseLine(`@FooMapping("/x")`)
	require.Error(t, err)

	var unknown *UnknownAnnotationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "@FooMapping", unknown.Name)
	assert.Contains(t, err.Error(), "@FooMapping")
}

func TestParseLineUnknownAnnotationWithoutParentheses(t *testing.T) {
	_, _, err := ParseLine(`@BogusMapping`)
	require.Error(t, err)

	var unknown *UnknownAnnotationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "@BogusMapping", unknown.Name)
}

func TestParseLineUnterminatedQuote(t *testing.T) {
	// The closing quote never arrives, so no path is committed.
	match, ok, err := ParseLine(`@GetMapping("/unfinished`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Get, match.Verb)
	assert.Equal(t, "", match.Path)
}

func TestParseLineWhitespaceBeforeParenthesis(t *testing.T) {
	match, ok, err := ParseLine(`@GetMapping ("/spaced")`)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Get, match.Verb)
	assert.Equal(t, "/spaced", match.Path)
}

func TestUnknownAnnotationErrorIs(t *testing.T) {
	err := error(&UnknownAnnotationError{Name: "@FooMapping"})
	var unknown *UnknownAnnotationError
	assert.True(t, errors.As(err, &unknown))
}
