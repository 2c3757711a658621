package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/restmap-cli/restmap/core/models"
)

// mappingLine is the coarse reject filter run before the automaton: a line is
// only worth parsing when it contains an @-word ending in "Mapping".
var mappingLine = regexp.MustCompile(`@\w+Mapping`)

// verbsByAnnotation is the fixed dictionary of recognized mapping
// annotations. Anything else that passes the coarse filter is an
// UnknownAnnotationError.
var verbsByAnnotation = map[string]models.Verb{
	"@RequestMapping": models.Any,
	"@DeleteMapping":  models.Delete,
	"@GetMapping":     models.Get,
	"@HeadMapping":    models.Head,
	"@OptionsMapping": models.Options,
	"@PatchMapping":   models.Patch,
	"@PostMapping":    models.Post,
	"@PutMapping":     models.Put,
}

// UnknownAnnotationError is returned when a line looks like a mapping
// annotation but its name is not in the dictionary. The caller decides
// whether that aborts the scan or is collected as a warning.
type UnknownAnnotationError struct {
	Name string
}

func (e *UnknownAnnotationError) Error() string {
	return fmt.Sprintf("unknown mapping annotation: %s", e.Name)
}

// state is the automaton position within a line. States are visited in
// strict forward order, never backward.
type state int

const (
	stateAnnotationName state = iota
	stateAttributes
	statePath
	stateEndOfCapture
)

// ParseLine runs the annotation automaton over a single line of source text.
// It reports whether the line declares an endpoint and, if so, the verb and
// path it declares.
//
// Escape handling in the path is deliberately shallow: a character counts as
// escaped iff the immediately preceding raw character was a backslash. There
// is no backslash-run parity. An unescaped backslash is consumed without
// being copied; everything else, including an escaped quote, is copied
// verbatim.
func ParseLine(line string) (models.EndpointMatch, bool, error) {
	if !strings.HasPrefix(strings.TrimSpace(line), "@") || !mappingLine.MatchString(line) {
		return models.EndpointMatch{}, false, nil
	}

	var (
		cur  = stateAnnotationName
		buf  strings.Builder
		prev rune

		verb models.Verb
		path string
	)

	for _, c := range line {
		escaped := prev == '\\'

		switch cur {
		case stateAnnotationName:
			if c == '(' {
				v, ok := verbsByAnnotation[buf.String()]
				if !ok {
					return models.EndpointMatch{}, false, &UnknownAnnotationError{Name: buf.String()}
				}
				verb = v
				buf.Reset()
				cur = stateAttributes
			} else if !unicode.IsSpace(c) {
				buf.WriteRune(c)
			}

		case stateAttributes:
			// Named attributes (value=, method=) are ignored; the first
			// quoted string is taken as the path.
			if c == '"' {
				cur = statePath
			}

		case statePath:
			switch {
			case c == '"' && !escaped:
				path = buf.String()
				buf.Reset()
				cur = stateEndOfCapture
			case c == '\\' && !escaped:
				// consumed, but still visible as prev to the next character
			default:
				buf.WriteRune(c)
			}

		case stateEndOfCapture:
			// rest of the line is ignored
		}

		prev = c
	}

	// Line ended while still reading the name: the annotation carries no
	// attribute section and the path is empty.
	if cur == stateAnnotationName {
		v, ok := verbsByAnnotation[buf.String()]
		if !ok {
			return models.EndpointMatch{}, false, &UnknownAnnotationError{Name: buf.String()}
		}
		verb = v
	}

	return models.EndpointMatch{Verb: verb, Path: path}, true, nil
}
