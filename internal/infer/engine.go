// Package infer derives the property list of every generated struct from
// its collapsed schema and the hint registry.
package infer

import (
	"strings"

	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/internal/ir"
	"github.com/reoring/schemagen/internal/naming"
	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

// Engine infers property types. Catalog is required; Hints, Queue and Diag
// may be nil.
type Engine struct {
	Hints   *hints.Registry
	Catalog *Catalog
	Queue   *Queue
	Diag    *Diag
	// SchemaName is the prefix of the generated node-kind accessor, which
	// fields must not shadow.
	SchemaName string
}

// Infer returns one PropertyInfo per property of s, in declaration order.
// typeName is the schema-derived name used for hint paths.
func (e *Engine) Infer(typeName string, s *jsonschema.Schema) (ir.PropertyInfoList, error) {
	if s.Kind() != jsonschema.KindObject {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeNotAnObject, typeName,
			"a generated struct needs an object schema", "kind", s.Kind().String())
	}
	if s.Properties == nil {
		return nil, nil
	}
	out := make(ir.PropertyInfoList, 0, s.Properties.Len())
	owners := map[string]string{}
	for name, ps := range s.Properties.All() {
		path := hints.PropertyPath(typeName, name)
		hs := e.Hints.PropertyHints(typeName, name)
		field := e.fieldName(name, hs)
		if prev, dup := owners[field]; dup {
			return nil, schemaerr.New(schemaerr.KindPropertyNameCollision, schemaerr.CodeFieldCollision, path,
				"two properties map to the same field", "field", field, "properties", prev+", "+name)
		}
		owners[field] = name
		t, err := e.propertyType(path, ps, hs)
		if err != nil {
			return nil, err
		}
		desc := ps.Description
		if ps.Kind() == jsonschema.KindEnum && t.Kind() == ir.NodePrimitive {
			desc = withAllowedValues(desc, ps.EnumStrings())
		}
		out = append(out, ir.PropertyInfo{
			Name:        name,
			FieldName:   field,
			Type:        t,
			Comparison:  ir.ComparisonFor(t),
			Required:    s.IsRequired(name),
			Description: desc,
		})
	}
	return out, nil
}

func (e *Engine) fieldName(name string, hs []hints.Hint) string {
	field := naming.Pascal(name)
	if h, ok := hints.Find[*hints.PropertyNameHint](hs); ok {
		field = naming.Pascal(h.PropertyName)
	}
	if e.reserved(field) {
		field += "_"
	}
	return field
}

func (e *Engine) reserved(field string) bool {
	switch field {
	case "Equal", "Clone", "DeepClone":
		return true
	}
	return e.SchemaName != "" && field == e.SchemaName+"NodeKind"
}

func (e *Engine) propertyType(path string, s *jsonschema.Schema, hs []hints.Hint) (ir.TypeDescriptor, error) {
	if hints.Has[*hints.ClassNameHint](hs) {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeMisappliedHint, path,
			"ClassNameHint applies to types, not properties")
	}
	if hints.Has[*hints.DictionaryHint](hs) {
		return e.dictionary(path, s)
	}
	if eh, ok := hints.Find[*hints.EnumHint](hs); ok {
		return e.enumProperty(path, s, eh)
	}
	return e.shape(path, s)
}

// dictionary maps a bare object to map[string]T. T comes from a
// schema-valued additionalProperties and defaults to string.
func (e *Engine) dictionary(path string, s *jsonschema.Schema) (ir.TypeDescriptor, error) {
	bare := (s.Type == jsonschema.TypeObject || s.Type == "") && !s.HasProperties() && len(s.Enum) == 0
	if !bare {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeMisappliedHint, path,
			"DictionaryHint needs an object without fixed properties", "kind", s.Kind().String())
	}
	if as := s.AdditionalSchema(); as != nil {
		v, err := e.shape(path, as)
		if err != nil {
			return nil, err
		}
		return ir.Map(v), nil
	}
	return ir.Map(ir.Prim(ir.String)), nil
}

func (e *Engine) enumProperty(path string, s *jsonschema.Schema, eh *hints.EnumHint) (ir.TypeDescriptor, error) {
	target := s
	isArray := s.Kind() == jsonschema.KindArray
	if isArray {
		if s.Items == nil {
			return nil, missingItems(path)
		}
		target = s.Items
	}
	if err := checkEnumCount(path, eh, target); err != nil {
		return nil, err
	}
	name := naming.Pascal(eh.TypeName)
	if t, ok := e.Catalog.Named(name); ok {
		if t.Kind != TypeEnum {
			return nil, schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, path,
				"EnumHint names a type the schema defines as a "+t.Kind.String(), "type", name)
		}
	} else if e.Queue != nil {
		if _, err := e.Queue.Enqueue(AdditionalTypeRequest{Hint: eh, Schema: target, Reason: path}); err != nil {
			return nil, err
		}
	}
	var ref ir.TypeDescriptor = ir.Enum(name)
	if isArray {
		ref = ir.Array(ref)
	}
	return ref, nil
}

// shape infers the type of a node without property hints.
func (e *Engine) shape(path string, s *jsonschema.Schema) (ir.TypeDescriptor, error) {
	if s.Origin != "" {
		if t, ok := e.Catalog.Def(s.Origin); ok {
			switch t.Kind {
			case TypeEnum:
				return ir.Enum(t.Name), nil
			case TypeClass:
				if t.Interface != nil {
					return ir.IfaceClass(t.Name, t.InterfaceName()), nil
				}
				return ir.Class(t.Name), nil
			}
		}
	}
	switch s.Kind() {
	case jsonschema.KindArray:
		if s.Items == nil {
			return nil, missingItems(path)
		}
		item, err := e.shape(path, s.Items)
		if err != nil {
			return nil, err
		}
		return ir.Array(item), nil
	case jsonschema.KindString:
		return ir.Prim(ir.String), nil
	case jsonschema.KindInteger:
		return ir.Prim(ir.Integer), nil
	case jsonschema.KindNumber:
		return ir.Prim(ir.Number), nil
	case jsonschema.KindBoolean:
		return ir.Prim(ir.Boolean), nil
	case jsonschema.KindEnum:
		// Inline literals keep their scalar type; the values are documented.
		switch s.Type {
		case jsonschema.TypeInteger:
			return ir.Prim(ir.Integer), nil
		case jsonschema.TypeNumber:
			return ir.Prim(ir.Number), nil
		case jsonschema.TypeBoolean:
			return ir.Prim(ir.Boolean), nil
		}
		return ir.Prim(ir.String), nil
	case jsonschema.KindObject:
		if !s.HasProperties() {
			if as := s.AdditionalSchema(); as != nil {
				v, err := e.shape(path, as)
				if err != nil {
					return nil, err
				}
				return ir.Map(v), nil
			}
		} else {
			e.Diag.warnf("%s: inline object with properties is emitted as raw JSON; move it under definitions to get a struct", path)
		}
	}
	return ir.Prim(ir.Any), nil
}

func checkEnumCount(path string, eh *hints.EnumHint, s *jsonschema.Schema) error {
	if len(eh.Enum) == 0 || s == nil || len(s.Enum) == 0 || len(eh.Enum) <= len(s.Enum) {
		return nil
	}
	return schemaerr.New(schemaerr.KindEnumHintCountMismatch, schemaerr.CodeEnumCountMismatch, path,
		"EnumHint lists more values than the schema enum", "type", eh.TypeName,
		"hint", len(eh.Enum), "schema", len(s.Enum))
}

func missingItems(path string) error {
	return schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeMissingArrayItems, path,
		"array schema has no items")
}

func withAllowedValues(desc string, values []string) string {
	note := "Allowed values: " + strings.Join(values, ", ") + "."
	if desc == "" {
		return note
	}
	return strings.TrimRight(desc, "\n") + "\n\n" + note
}
