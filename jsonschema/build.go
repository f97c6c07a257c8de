package jsonschema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/reoring/schemagen/schemaerr"
)

// FromValue builds a Schema from the ordered value form produced by
// DecodeValue or DecodeYAMLValue. Unknown keywords are ignored.
func FromValue(v any) (*Schema, error) {
	return buildSchema(v, "#")
}

func buildSchema(v any, ptr string) (*Schema, error) {
	m, ok := v.(*object)
	if !ok {
		if b, isBool := v.(bool); isBool && b {
			// "true" accepts anything: an untyped node.
			return &Schema{}, nil
		}
		return nil, invalidf(ptr, "schema must be an object, got %s", describe(v))
	}
	s := &Schema{}
	for key, raw := range m.All() {
		at := ptr + "/" + escapePointer(key)
		var err error
		switch key {
		case "type":
			err = s.setType(raw, at)
		case "title":
			s.Title, err = stringValue(raw, at)
		case "description":
			s.Description, err = stringValue(raw, at)
		case "format":
			s.Format, err = stringValue(raw, at)
		case "default":
			s.Default = plainValue(raw)
		case "nullable":
			// OpenAPI 3.0 form used by Kubernetes CRDs.
			if b, isBool := raw.(bool); isBool && b {
				s.Nullable = true
			}
		case "$ref":
			s.Ref, err = stringValue(raw, at)
		case "required":
			s.Required, err = stringList(raw, at)
		case "enum":
			arr, isArr := raw.([]any)
			if !isArr {
				return nil, invalidf(at, "enum must be an array, got %s", describe(raw))
			}
			for _, e := range arr {
				s.Enum = append(s.Enum, plainValue(e))
			}
		case "properties":
			s.Properties, err = buildSchemaMap(raw, at, s.Properties)
		case "definitions", "$defs":
			s.Definitions, err = buildSchemaMap(raw, at, s.Definitions)
		case "items":
			if _, isArr := raw.([]any); isArr {
				return nil, invalidf(at, "tuple items are not supported")
			}
			s.Items, err = buildSchema(raw, at)
		case "additionalProperties":
			if b, isBool := raw.(bool); isBool {
				s.AdditionalProperties = &AdditionalProperties{Allowed: b}
				continue
			}
			var sub *Schema
			if sub, err = buildSchema(raw, at); err == nil {
				s.AdditionalProperties = &AdditionalProperties{Allowed: true, Schema: sub}
			}
		case "allOf":
			arr, isArr := raw.([]any)
			if !isArr {
				return nil, invalidf(at, "allOf must be an array, got %s", describe(raw))
			}
			for i, e := range arr {
				member, berr := buildSchema(e, at+"/"+strconv.Itoa(i))
				if berr != nil {
					return nil, berr
				}
				s.AllOf = append(s.AllOf, member)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Schema) setType(raw any, ptr string) error {
	switch t := raw.(type) {
	case string:
		s.Type = t
		return nil
	case []any:
		for _, e := range t {
			name, ok := e.(string)
			if !ok {
				return invalidf(ptr, "type entries must be strings, got %s", describe(e))
			}
			if name == TypeNull {
				s.Nullable = true
				continue
			}
			if s.Type != "" {
				return invalidf(ptr, "multiple non-null types (%s, %s) are not supported", s.Type, name)
			}
			s.Type = name
		}
		return nil
	default:
		return invalidf(ptr, "type must be a string or array, got %s", describe(raw))
	}
}

func buildSchemaMap(raw any, ptr string, into *sequencedmap.Map[string, *Schema]) (*sequencedmap.Map[string, *Schema], error) {
	m, ok := raw.(*object)
	if !ok {
		return nil, invalidf(ptr, "expected an object, got %s", describe(raw))
	}
	if into == nil {
		into = NewProperties()
	}
	for name, sub := range m.All() {
		at := ptr + "/" + escapePointer(name)
		if into.Has(name) {
			return nil, invalidf(at, "%q is defined twice", name)
		}
		s, err := buildSchema(sub, at)
		if err != nil {
			return nil, err
		}
		into.Set(name, s)
	}
	return into, nil
}

func stringValue(raw any, ptr string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", invalidf(ptr, "expected a string, got %s", describe(raw))
	}
	return s, nil
}

func stringList(raw any, ptr string) ([]string, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, invalidf(ptr, "expected an array of strings, got %s", describe(raw))
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, invalidf(ptr, "expected an array of strings, found %s", describe(e))
		}
		out = append(out, s)
	}
	return out, nil
}

// plainValue converts ordered mappings back to map[string]any so literal
// values (enum, default) are ordinary Go values.
func plainValue(v any) any {
	switch t := v.(type) {
	case *object:
		out := make(map[string]any, t.Len())
		for k, e := range t.All() {
			out[k] = plainValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *object:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func invalidf(ptr, format string, a ...any) error {
	return schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeInvalidSchema, ptr, fmt.Sprintf(format, a...))
}
