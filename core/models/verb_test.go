package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVerbString(t *testing.T) {
	tests := map[Verb]string{
		Any:     "ANY",
		Get:     "GET",
		Post:    "POST",
		Put:     "PUT",
		Patch:   "PATCH",
		Delete:  "DELETE",
		Options: "OPTIONS",
		Head:    "HEAD",
	}

	for verb, want := range tests {
		assert.Equal(t, want, verb.String())
	}

	assert.Equal(t, "UNKNOWN", Verb(99).String())
}

func TestVerbYAMLRendersMethodName(t *testing.T) {
	out, err := yaml.Marshal(EndpointMatch{Verb: Delete, Path: "/x", Line: 3})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "verb: DELETE"), "got: %s", out)
}
