package schemagen_test

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemagen"
	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/jsonschema"
)

const documentSchema = `{
  "title": "Document",
  "description": "Document is the top-level record.",
  "type": "object",
  "required": ["name", "child"],
  "properties": {
    "name": {"type": "string"},
    "child": {"$ref": "#/definitions/child"},
    "children": {"type": "array", "items": {"$ref": "#/definitions/child"}},
    "mode": {"$ref": "#/definitions/mode"},
    "status": {"type": "string", "enum": ["open", "closed"]},
    "labels": {"type": "object"}
  },
  "definitions": {
    "child": {
      "type": "object",
      "properties": {
        "id": {"type": "integer"},
        "note": {"type": "string"}
      }
    },
    "mode": {"type": "string", "enum": ["fast", "slow"]}
  }
}`

const documentHints = `{
  "child": [{"kind": "InterfaceHint", "arguments": {"description": "IChild is the read-only view of Child."}}],
  "Root.status": [{"kind": "EnumHint", "arguments": {"typeName": "Status", "zeroValue": "Unknown"}}],
  "Root.labels": [{"kind": "DictionaryHint"}]
}`

func mustSchema(t *testing.T, src string) *jsonschema.Schema {
	t.Helper()
	s, err := jsonschema.Parse([]byte(src))
	require.NoError(t, err)
	return s
}

func mustHints(t *testing.T, src string) *hints.Registry {
	t.Helper()
	reg, err := hints.Parse([]byte(src))
	require.NoError(t, err)
	return reg
}

func testSettings(reg *hints.Registry) schemagen.Settings {
	s := schemagen.DefaultSettings()
	s.OutputDirectory = "out"
	s.RootClassName = "Root"
	s.SchemaName = "Sample"
	s.GenerateCloningCode = true
	s.Hints = reg
	return s
}

func compile(t *testing.T, settings schemagen.Settings, schema string) *schemagen.Result {
	t.Helper()
	g, err := schemagen.New(settings)
	require.NoError(t, err)
	res, err := g.Compile(mustSchema(t, schema))
	require.NoError(t, err)
	return res
}

func unitNames(res *schemagen.Result) []string {
	var out []string
	for _, u := range res.Types {
		out = append(out, u.Name)
	}
	return out
}

func TestCompile_UnitOrder(t *testing.T) {
	res := compile(t, testSettings(mustHints(t, documentHints)), documentSchema)

	assert.Equal(t, []string{
		"Root", "Child", "IChild", "Mode", "Status",
		"SampleNodeKind", "ISampleNode", "SampleRewritingVisitor",
	}, unitNames(res))

	for _, u := range res.Types {
		_, err := parser.ParseFile(token.NewFileSet(), u.FileName, u.Text, parser.ParseComments)
		require.NoError(t, err, "%s does not parse:\n%s", u.FileName, u.Text)
		assert.True(t, strings.HasPrefix(u.Text, "// Code generated by schemagen. DO NOT EDIT."), u.Name)
	}

	root, ok := res.Lookup("Root")
	require.True(t, ok)
	assert.Equal(t, root.Text, res.Root)
	assert.Equal(t, "root.go", root.FileName)
	vis, _ := res.Lookup("SampleRewritingVisitor")
	assert.Equal(t, "sample_rewriting_visitor.go", vis.FileName)
}

func TestCompile_RootProperties(t *testing.T) {
	res := compile(t, testSettings(mustHints(t, documentHints)), documentSchema)
	root, _ := res.Lookup("Root")

	byName := map[string]schemagen.Property{}
	for _, p := range root.Properties {
		byName[p.Name] = p
	}
	assert.Equal(t, "string", byName["name"].Type)
	assert.True(t, byName["name"].Required)
	assert.Equal(t, "class Child (IChild)", byName["child"].Type)
	assert.Equal(t, "reference_type", byName["child"].Comparison)
	assert.Equal(t, "enum Mode", byName["mode"].Type)
	assert.Equal(t, "enum Status", byName["status"].Type)
	assert.Equal(t, "map[string]string", byName["labels"].Type)
	assert.Equal(t, "unordered_map", byName["labels"].Comparison)
}

func TestCompile_InterfaceProjection(t *testing.T) {
	res := compile(t, testSettings(mustHints(t, documentHints)), documentSchema)

	child, _ := res.Lookup("Child")
	assert.True(t, child.InterfaceBacked)
	assert.Contains(t, child.Text, "var _ IChild = (*Child)(nil)")

	iface, ok := res.Lookup("IChild")
	require.True(t, ok)
	assert.Equal(t, schemagen.UnitInterface, iface.Kind)
	assert.Contains(t, iface.Text, "// IChild is the read-only view of Child.")
	assert.Contains(t, iface.Text, "GetId() *int64")
	assert.Contains(t, iface.Text, "GetNote() *string")

	root, _ := res.Lookup("Root")
	assert.False(t, root.InterfaceBacked)
	assert.NotContains(t, res.Files()["root.go"], "var _ IRoot")
}

func TestCompile_InterfaceDescription(t *testing.T) {
	schema := `{
	  "type": "object",
	  "properties": {"a": {"$ref": "#/definitions/a"}, "b": {"$ref": "#/definitions/b"}},
	  "definitions": {
	    "a": {"type": "object", "description": "Leaf holds one value.", "properties": {"v": {"type": "string"}}},
	    "b": {"type": "object", "properties": {"v": {"type": "string"}}}
	  }
	}`
	reg := mustHints(t, `{
	  "a": [{"kind": "InterfaceHint"}],
	  "b": [{"kind": "InterfaceHint"}]
	}`)
	res := compile(t, testSettings(reg), schema)

	ia, _ := res.Lookup("IA")
	assert.Contains(t, ia.Text, "// IA: Leaf holds one value.")
	ib, _ := res.Lookup("IB")
	assert.Contains(t, ib.Text, "// IB is the read-only view of B.")
}

func TestCompile_Sealed(t *testing.T) {
	s := testSettings(mustHints(t, documentHints))
	s.SealClasses = true
	res := compile(t, s, documentSchema)

	iface, _ := res.Lookup("IChild")
	assert.Contains(t, iface.Text, "isChild()")
	node, _ := res.Lookup("ISampleNode")
	assert.Contains(t, node.Text, "isSampleNode()")
}

func TestCompile_EnumPrecedence(t *testing.T) {
	schema := `{
	  "type": "object",
	  "properties": {
	    "level": {"type": "string", "enum": ["lo", "mid", "hi"]}
	  }
	}`
	hintsJSON := `{"Root.level": [{"kind": "EnumHint", "arguments": {"typeName": "Level", "enumValues": ["Low", "High"]}}]}`
	res := compile(t, testSettings(mustHints(t, hintsJSON)), schema)

	lvl, ok := res.Lookup("Level")
	require.True(t, ok)
	assert.Equal(t, schemagen.UnitEnum, lvl.Kind)
	assert.Contains(t, lvl.Text, `LevelLow`)
	assert.Contains(t, lvl.Text, `LevelHigh`)
	assert.NotContains(t, lvl.Text, `LevelMid`)
}

func TestCompile_EnumHintCountMismatch(t *testing.T) {
	schema := `{
	  "type": "object",
	  "properties": {
	    "level": {"type": "string", "enum": ["lo"]}
	  }
	}`
	hintsJSON := `{"Root.level": [{"kind": "EnumHint", "arguments": {"typeName": "Level", "enumValues": ["Low", "High"]}}]}`
	g, err := schemagen.New(testSettings(mustHints(t, hintsJSON)))
	require.NoError(t, err)

	_, err = g.Compile(mustSchema(t, schema))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemagen.ErrEnumHintCountMismatch))
	e, ok := schemagen.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Root.level", e.Path)
	assert.Equal(t, 2, e.Params["hint"])
	assert.Equal(t, 1, e.Params["schema"])
}

func TestCompile_AdditionalTypesAfterSchemaTypes(t *testing.T) {
	schema := `{
	  "type": "object",
	  "properties": {
	    "a": {"type": "string", "enum": ["x"]},
	    "b": {"type": "string", "enum": ["x"]},
	    "node": {"$ref": "#/definitions/node"}
	  },
	  "definitions": {
	    "node": {"type": "object", "properties": {"c": {"type": "string", "enum": ["y"]}}}
	  }
	}`
	hintsJSON := `{
	  "Root.a": [{"kind": "EnumHint", "arguments": {"typeName": "Shared"}}],
	  "Root.b": [{"kind": "EnumHint", "arguments": {"typeName": "Shared"}}],
	  "Node.c": [{"kind": "EnumHint", "arguments": {"typeName": "Other"}}]
	}`
	s := testSettings(mustHints(t, hintsJSON))
	s.GenerateCloningCode = false
	res := compile(t, s, schema)

	assert.Equal(t, []string{"Root", "Node", "Shared", "Other"}, unitNames(res))
}

func TestCompile_ScaffoldOrder(t *testing.T) {
	res := compile(t, testSettings(mustHints(t, documentHints)), documentSchema)
	kind, ok := res.Lookup("SampleNodeKind")
	require.True(t, ok)

	none := strings.Index(kind.Text, "SampleNodeKindNone")
	root := strings.Index(kind.Text, "SampleNodeKindRoot")
	child := strings.Index(kind.Text, "SampleNodeKindChild")
	require.True(t, none >= 0 && root >= 0 && child >= 0, kind.Text)
	assert.Less(t, none, root)
	assert.Less(t, root, child)
	assert.NotContains(t, kind.Text, "SampleNodeKindMode")

	vis, _ := res.Lookup("SampleRewritingVisitor")
	assert.Contains(t, vis.Text, "OnRoot")
	assert.Contains(t, vis.Text, "OnChild")
	assert.Contains(t, vis.Text, "func (v *SampleRewritingVisitor) DefaultRoot(")
}

func TestCompile_NoScaffoldWithoutCloning(t *testing.T) {
	s := testSettings(mustHints(t, documentHints))
	s.GenerateCloningCode = false
	s.GenerateOverrides = false
	res := compile(t, s, documentSchema)

	_, ok := res.Lookup("SampleNodeKind")
	assert.False(t, ok)
	assert.NotContains(t, res.Root, "func (o *Root) Equal(")
	assert.NotContains(t, res.Root, "DeepClone")
}

func TestCompile_Idempotent(t *testing.T) {
	s := testSettings(mustHints(t, documentHints))
	g, err := schemagen.New(s)
	require.NoError(t, err)

	first, err := g.Compile(mustSchema(t, documentSchema))
	require.NoError(t, err)
	second, err := g.Compile(mustSchema(t, documentSchema))
	require.NoError(t, err)
	assert.Equal(t, first.Files(), second.Files())
	assert.Equal(t, unitNames(first), unitNames(second))
}

func TestCompile_Concurrent(t *testing.T) {
	g, err := schemagen.New(testSettings(mustHints(t, documentHints)))
	require.NoError(t, err)
	want, err := g.Compile(mustSchema(t, documentSchema))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*schemagen.Result, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := jsonschema.Parse([]byte(documentSchema))
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = g.Compile(s)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Files(), results[i].Files())
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		hints  string
		want   error
		code   string
	}{
		{
			name:   "root not an object",
			schema: `{"type": "string"}`,
			want:   schemagen.ErrSchemaShape,
			code:   "not_an_object",
		},
		{
			name: "class name collides with scaffold",
			schema: `{"type": "object", "properties": {"x": {"$ref": "#/definitions/sampleNodeKind"}},
			  "definitions": {"sampleNodeKind": {"type": "object"}}}`,
			want: schemagen.ErrNameCollision,
			code: "duplicate_type",
		},
		{
			name:   "enum hint names the root",
			schema: `{"type": "object", "properties": {"x": {"type": "string", "enum": ["a"]}}}`,
			hints:  `{"Root.x": [{"kind": "EnumHint", "arguments": {"typeName": "Root"}}]}`,
			want:   schemagen.ErrNameCollision,
			code:   "duplicate_type",
		},
		{
			name: "conflicting enum hints for one type",
			schema: `{"type": "object", "properties": {
			  "a": {"type": "string", "enum": ["x", "y"]},
			  "b": {"type": "string", "enum": ["x", "y"]}}}`,
			hints: `{"Root.a": [{"kind": "EnumHint", "arguments": {"typeName": "Shared"}}],
			  "Root.b": [{"kind": "EnumHint", "arguments": {"typeName": "Shared", "zeroValue": "None"}}]}`,
			want: schemagen.ErrNameCollision,
			code: "duplicate_type",
		},
		{
			name:   "unresolved ref",
			schema: `{"type": "object", "properties": {"x": {"$ref": "#/definitions/missing"}}}`,
			want:   schemagen.ErrSchemaShape,
			code:   "unresolved_ref",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reg *hints.Registry
			if tt.hints != "" {
				reg = mustHints(t, tt.hints)
			}
			g, err := schemagen.New(testSettings(reg))
			require.NoError(t, err)
			_, err = g.Compile(mustSchema(t, tt.schema))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			e, ok := schemagen.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, string(e.Code))
		})
	}
}

func TestCompile_InlineObjectWarning(t *testing.T) {
	schema := `{"type": "object", "properties": {"meta": {"type": "object", "properties": {"a": {"type": "string"}}}}}`
	var logs bytes.Buffer
	g, err := schemagen.New(testSettings(nil), schemagen.WithLogger(schemagen.NewWriterLogger(&logs, false)))
	require.NoError(t, err)

	res, err := g.Compile(mustSchema(t, schema))
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Root.meta")
	assert.Contains(t, logs.String(), "[WARN] Root.meta")
	assert.Contains(t, res.Root, "Meta json.RawMessage")
}

func TestGenerate_WritesFiles(t *testing.T) {
	fs := schemagen.NewMemFS()
	g, err := schemagen.New(testSettings(mustHints(t, documentHints)), schemagen.WithFileSystem(fs))
	require.NoError(t, err)

	rootText, err := g.Generate(mustSchema(t, documentSchema))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("out", "child.go"),
		filepath.Join("out", "i_child.go"),
		filepath.Join("out", "i_sample_node.go"),
		filepath.Join("out", "mode.go"),
		filepath.Join("out", "root.go"),
		filepath.Join("out", "sample_node_kind.go"),
		filepath.Join("out", "sample_rewriting_visitor.go"),
		filepath.Join("out", "status.go"),
	}, fs.Paths())
	data, ok := fs.ReadFile(filepath.Join("out", "root.go"))
	require.True(t, ok)
	assert.Equal(t, rootText, string(data))
}

func TestGenerate_OutputConflict(t *testing.T) {
	fs := schemagen.NewMemFS()
	require.NoError(t, fs.WriteFile(filepath.Join("out", "keep.txt"), []byte("x")))
	g, err := schemagen.New(testSettings(mustHints(t, documentHints)), schemagen.WithFileSystem(fs))
	require.NoError(t, err)

	_, err = g.Generate(mustSchema(t, documentSchema))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemagen.ErrOutputConflict))
	assert.Equal(t, []string{filepath.Join("out", "keep.txt")}, fs.Paths())
}

func TestGenerate_ForceOverwrite(t *testing.T) {
	fs := schemagen.NewMemFS()
	require.NoError(t, fs.WriteFile(filepath.Join("out", "root.go"), []byte("stale")))
	s := testSettings(mustHints(t, documentHints))
	s.ForceOverwrite = true
	g, err := schemagen.New(s, schemagen.WithFileSystem(fs))
	require.NoError(t, err)

	_, err = g.Generate(mustSchema(t, documentSchema))
	require.NoError(t, err)
	data, _ := fs.ReadFile(filepath.Join("out", "root.go"))
	assert.NotEqual(t, "stale", string(data))
}

func TestGenerate_FailedRunWritesNothing(t *testing.T) {
	fs := schemagen.NewMemFS()
	g, err := schemagen.New(testSettings(nil), schemagen.WithFileSystem(fs))
	require.NoError(t, err)

	_, err = g.Generate(mustSchema(t, `{"type": "array", "items": {}}`))
	require.Error(t, err)
	assert.Empty(t, fs.Paths())
}

func TestGenerateFromFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	hintsPath := filepath.Join(dir, "hints.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(documentSchema), 0o644))
	require.NoError(t, os.WriteFile(hintsPath, []byte(`
child:
  - kind: InterfaceHint
Root.status:
  - kind: EnumHint
    arguments:
      typeName: Status
`), 0o644))

	s := testSettings(nil)
	s.OutputDirectory = filepath.Join(dir, "model")
	s.HintsPath = hintsPath
	var logs bytes.Buffer
	rootText, err := schemagen.GenerateFromFiles(s, schemaPath, schemagen.WithLogger(schemagen.NewWriterLogger(&logs, true)))
	require.NoError(t, err)
	assert.Contains(t, rootText, "type Root struct")

	for _, name := range []string{"root.go", "child.go", "i_child.go", "status.go", "mode.go"} {
		_, err := os.Stat(filepath.Join(dir, "model", name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, logs.String(), "[INFO] generation complete")
	assert.Contains(t, logs.String(), "[DEBUG] wrote file")
}

func TestNew_ValidatesSettings(t *testing.T) {
	s := testSettings(nil)
	s.RootClassName = "root"
	_, err := schemagen.New(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemagen.ErrSettings))
}
