package jsonschema_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

func keys(p *sequencedmap.Map[string, *jsonschema.Schema]) []string {
	var out []string
	for k := range p.All() {
		out = append(out, k)
	}
	return out
}

func TestParse_PreservesOrder(t *testing.T) {
	s, err := jsonschema.Parse([]byte(`{
	  "type": "object",
	  "properties": {"zeta": {"type": "string"}, "alpha": {"type": "integer"}, "mid": {"type": ["number", "null"]}},
	  "definitions": {"b": {"type": "object"}, "a": {"type": "string"}},
	  "$defs": {"c": {"type": "boolean"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys(s.Properties))
	assert.Equal(t, []string{"b", "a", "c"}, keys(s.Definitions))

	mid, ok := s.Property("mid")
	require.True(t, ok)
	assert.Equal(t, jsonschema.KindNumber, mid.Kind())
	assert.True(t, mid.Nullable)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate key":  `{"type": "object", "type": "string"}`,
		"trailing data":  `{"type": "object"} {}`,
		"not an object":  `[1, 2]`,
		"tuple items":    `{"type": "array", "items": [{"type": "string"}]}`,
		"bad enum":       `{"enum": "a"}`,
		"truncated":      `{"type": `,
		"non-string ref": `{"$ref": 3}`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := jsonschema.Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	s, err := jsonschema.ParseYAML([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
  size:
    type: integer
    enum: [1, 2]
definitions:
  shared: &shared
    type: string
  alias: *shared
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "size"}, keys(s.Properties))
	assert.True(t, s.IsRequired("name"))
	size, _ := s.Property("size")
	assert.Equal(t, jsonschema.KindEnum, size.Kind())
	assert.Equal(t, []string{"1", "2"}, size.EnumStrings())
	alias, ok := s.Definition("alias")
	require.True(t, ok)
	assert.Equal(t, jsonschema.KindString, alias.Kind())
}

func TestParseYAML_DuplicateKey(t *testing.T) {
	_, err := jsonschema.ParseYAML([]byte("type: object\nproperties:\n  a: {type: string}\n  a: {type: integer}\n"))
	var dup *jsonschema.DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "a", dup.Key)
	assert.Equal(t, 3, dup.FirstLine)
	assert.Equal(t, 4, dup.Line)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "s.json")
	yamlPath := filepath.Join(dir, "s.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"type": "object"}`), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("type: object\n"), 0o644))

	for _, p := range []string{jsonPath, yamlPath} {
		s, err := jsonschema.ReadFile(p)
		require.NoError(t, err, p)
		assert.Equal(t, jsonschema.KindObject, s.Kind())
	}
	_, err := jsonschema.ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestCollapse_InlinesRefs(t *testing.T) {
	raw, err := jsonschema.Parse([]byte(`{
	  "type": "object",
	  "properties": {
	    "child": {"$ref": "#/definitions/child", "description": "Local note."},
	    "list": {"type": "array", "items": {"$ref": "#/$defs/leaf"}}
	  },
	  "definitions": {
	    "child": {"type": "object", "description": "Child.", "properties": {"leaf": {"$ref": "#/$defs/leaf"}}}
	  },
	  "$defs": {"leaf": {"type": "string", "enum": ["x"]}}
	}`))
	require.NoError(t, err)
	before := raw.Clone()

	out, err := jsonschema.Collapse(raw)
	require.NoError(t, err)

	child, _ := out.Property("child")
	assert.Empty(t, child.Ref)
	assert.Equal(t, "child", child.Origin)
	assert.Equal(t, "Local note.", child.Description)
	leaf, _ := child.Property("leaf")
	assert.Equal(t, "leaf", leaf.Origin)
	assert.Equal(t, jsonschema.KindEnum, leaf.Kind())

	list, _ := out.Property("list")
	assert.Equal(t, "leaf", list.Items.Origin)

	def, ok := out.Definition("child")
	require.True(t, ok)
	assert.Equal(t, "child", def.Origin)
	assert.Equal(t, "Child.", def.Description)

	// The input is not modified.
	rawChild, _ := raw.Property("child")
	assert.Equal(t, "#/definitions/child", rawChild.Ref)
	assert.True(t, jsonschema.SameShape(before, raw))
}

func TestCollapse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
		code string
	}{
		{
			name: "cycle",
			src: `{"type": "object", "properties": {"a": {"$ref": "#/definitions/a"}},
			  "definitions": {"a": {"type": "object", "properties": {"b": {"$ref": "#/definitions/b"}}},
			                  "b": {"type": "object", "properties": {"a": {"$ref": "#/definitions/a"}}}}}`,
			kind: schemaerr.ErrSchemaCycle,
			code: schemaerr.CodeRefCycle,
		},
		{
			name: "remote ref",
			src:  `{"type": "object", "properties": {"a": {"$ref": "other.json#/x"}}}`,
			kind: schemaerr.ErrSchemaShape,
			code: schemaerr.CodeUnsupportedRef,
		},
		{
			name: "missing definition",
			src:  `{"type": "object", "properties": {"a": {"$ref": "#/definitions/none"}}}`,
			kind: schemaerr.ErrSchemaShape,
			code: schemaerr.CodeUnresolvedRef,
		},
		{
			name: "allOf conflict",
			src: `{"allOf": [
			  {"type": "object", "properties": {"a": {"type": "string"}}},
			  {"type": "object", "properties": {"a": {"type": "integer"}}}]}`,
			kind: schemaerr.ErrPropertyConflict,
			code: schemaerr.CodeAllOfConflict,
		},
		{
			name: "allOf of scalars",
			src:  `{"allOf": [{"type": "string"}]}`,
			kind: schemaerr.ErrSchemaShape,
			code: schemaerr.CodeInvalidSchema,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := jsonschema.Parse([]byte(tt.src))
			require.NoError(t, err)
			_, err = jsonschema.Collapse(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.True(t, schemaerr.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestCollapse_CycleNamesChain(t *testing.T) {
	raw, err := jsonschema.Parse([]byte(`{"type": "object",
	  "definitions": {"node": {"type": "object", "properties": {"next": {"$ref": "#/definitions/node"}}}}}`))
	require.NoError(t, err)
	_, err = jsonschema.Collapse(raw)
	e, ok := schemaerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "node -> node", e.Params["chain"])
}

func TestCollapse_MergesAllOf(t *testing.T) {
	raw, err := jsonschema.Parse([]byte(`{
	  "allOf": [
	    {"$ref": "#/definitions/base"},
	    {"type": "object", "required": ["extra"], "properties": {"id": {"type": "string"}, "extra": {"type": "boolean"}}}
	  ],
	  "definitions": {
	    "base": {"type": "object", "description": "Base.", "required": ["id"], "properties": {"id": {"type": "string"}}}
	  }
	}`))
	require.NoError(t, err)
	out, err := jsonschema.Collapse(raw)
	require.NoError(t, err)

	assert.Equal(t, jsonschema.KindObject, out.Kind())
	assert.Equal(t, []string{"id", "extra"}, keys(out.Properties))
	assert.Equal(t, []string{"id", "extra"}, out.Required)
	assert.Equal(t, "Base.", out.Description)
	assert.Empty(t, out.AllOf)
	assert.Empty(t, out.Origin)
}

func TestSchemaHelpers(t *testing.T) {
	s, err := jsonschema.Parse([]byte(`{
	  "type": "object",
	  "additionalProperties": {"type": "integer"},
	  "enum": [true, 1.5, "x"]
	}`))
	require.NoError(t, err)
	assert.Equal(t, jsonschema.KindInteger, s.AdditionalSchema().Kind())
	assert.Equal(t, []string{"true", "1.5", "x"}, s.EnumStrings())

	var nilSchema *jsonschema.Schema
	assert.Equal(t, jsonschema.KindUnknown, nilSchema.Kind())
	assert.False(t, nilSchema.IsRequired("a"))

	name, ok := jsonschema.RefName("#/definitions/a~1b")
	assert.True(t, ok)
	assert.Equal(t, "a/b", name)
	_, ok = jsonschema.RefName("#/definitions/")
	assert.False(t, ok)
}
