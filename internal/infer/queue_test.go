package infer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/internal/infer"
	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

func enumReq(name, reason string) infer.AdditionalTypeRequest {
	return infer.AdditionalTypeRequest{Hint: &hints.EnumHint{TypeName: name}, Reason: reason}
}

func TestQueue_FIFOAndDedup(t *testing.T) {
	q := infer.NewQueue()
	for _, tc := range []struct {
		req   infer.AdditionalTypeRequest
		added bool
	}{
		{enumReq("B", "x.b"), true},
		{enumReq("A", "x.a"), true},
		{enumReq("B", "y.b"), false},
	} {
		added, err := q.Enqueue(tc.req)
		require.NoError(t, err)
		assert.Equal(t, tc.added, added, tc.req.Reason)
	}
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].TypeName())
	assert.Equal(t, "x.b", got[0].Reason)
	assert.Equal(t, "A", got[1].TypeName())
	assert.NoError(t, q.Err())
	assert.Empty(t, q.Drain())
}

func TestQueue_LateRequestIsAnError(t *testing.T) {
	q := infer.NewQueue()
	_, err := q.Enqueue(enumReq("A", "x.a"))
	require.NoError(t, err)
	q.Drain()
	added, err := q.Enqueue(enumReq("C", "A.c"))
	require.NoError(t, err)
	assert.False(t, added)
	err = q.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaerr.ErrHintConfig))
	assert.True(t, schemaerr.HasCode(err, schemaerr.CodeNestedAdditional))
}

func TestQueue_ConflictingEnumHints(t *testing.T) {
	schema := &jsonschema.Schema{Type: jsonschema.TypeString, Enum: []any{"r", "g"}}
	req := func(reason string, h *hints.EnumHint) infer.AdditionalTypeRequest {
		h.TypeName = "Color"
		return infer.AdditionalTypeRequest{Hint: h, Schema: schema, Reason: reason}
	}

	q := infer.NewQueue()
	_, err := q.Enqueue(req("Root.a", &hints.EnumHint{}))
	require.NoError(t, err)
	added, err := q.Enqueue(req("Root.b", &hints.EnumHint{Enum: []string{"r", "g"}}))
	require.NoError(t, err, "an explicit list equal to the schema literals agrees")
	assert.False(t, added)

	_, err = q.Enqueue(req("Root.c", &hints.EnumHint{Enum: []string{"r"}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemaerr.ErrNameCollision))
	e, _ := schemaerr.As(err)
	assert.Equal(t, "Root.c", e.Path)
	assert.Equal(t, "Root.a", e.Params["first"])

	_, err = q.Enqueue(req("Root.d", &hints.EnumHint{ZeroValue: "None"}))
	assert.True(t, schemaerr.HasCode(err, schemaerr.CodeDuplicateType))
	assert.Equal(t, 1, q.Len())
}

func TestRequestTypeName(t *testing.T) {
	assert.Equal(t, "K", infer.AdditionalTypeRequest{Hint: &hints.ClassNameHint{ClassName: "K"}}.TypeName())
	assert.Equal(t, "", infer.AdditionalTypeRequest{Hint: &hints.DictionaryHint{}}.TypeName())
}

func TestCatalog(t *testing.T) {
	raw, err := jsonschema.Parse([]byte(`{
	  "type": "object",
	  "definitions": {
	    "node": {"type": "object", "properties": {"a": {"type": "string"}}},
	    "mode": {"enum": ["x"]},
	    "flavor": {"type": "object"},
	    "id": {"type": "string"},
	    "old_name": {"type": "object"}
	  }
	}`))
	require.NoError(t, err)
	reg, err := hints.Parse([]byte(`{
	  "flavor": [{"kind": "EnumHint", "arguments": {"typeName": "Taste"}}],
	  "oldName": [{"kind": "ClassNameHint", "arguments": {"className": "NewName"}}],
	  "node": [{"kind": "InterfaceHint"}]
	}`))
	require.NoError(t, err)
	cat, err := infer.NewCatalog("Doc", raw, reg)
	require.NoError(t, err)

	var names []string
	var kinds []infer.TypeKind
	for _, ti := range cat.Types() {
		names = append(names, ti.Name)
		kinds = append(kinds, ti.Kind)
	}
	assert.Equal(t, []string{"Doc", "Node", "Mode", "Taste", "Id", "NewName"}, names)
	assert.Equal(t, []infer.TypeKind{infer.TypeClass, infer.TypeClass, infer.TypeEnum, infer.TypeEnum, infer.TypeAlias, infer.TypeClass}, kinds)
	assert.Equal(t, "Doc", cat.Root().Name)

	node, ok := cat.Def("node")
	require.True(t, ok)
	assert.Equal(t, "INode", node.InterfaceName())
	assert.NotNil(t, node.Interface)

	_, ok = cat.Named("Id")
	assert.False(t, ok, "aliases have no Go name")
	old, ok := cat.Named("NewName")
	require.True(t, ok)
	assert.Equal(t, "OldName", old.Key)
}

func TestCatalog_NameCollision(t *testing.T) {
	raw, err := jsonschema.Parse([]byte(`{"type": "object", "definitions": {"doc": {"type": "object"}}}`))
	require.NoError(t, err)
	_, err = infer.NewCatalog("Doc", raw, nil)
	assert.True(t, errors.Is(err, schemaerr.ErrNameCollision), "got %v", err)
}

func TestResolveEnum(t *testing.T) {
	s := &jsonschema.Schema{Enum: []any{"a", "b", "c"}, Description: "Letters."}
	spec, err := infer.ResolveEnum("L", nil, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, spec.Values)
	assert.Equal(t, "Letters.", spec.Description)

	spec, err = infer.ResolveEnum("L", &hints.EnumHint{TypeName: "L", ZeroValue: "none", Enum: []string{"x", "y"}, Description: "Hinted."}, s)
	require.NoError(t, err)
	assert.Equal(t, "none", spec.Zero)
	assert.Equal(t, []string{"x", "y"}, spec.Values)
	assert.Equal(t, "Hinted.", spec.Description)

	_, err = infer.ResolveEnum("L", &hints.EnumHint{TypeName: "L", Enum: []string{"1", "2", "3", "4"}}, s)
	assert.True(t, errors.Is(err, schemaerr.ErrEnumHintCountMismatch))
}
