package jsonschema

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Type names as they appear in the "type" keyword.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// Kind is the shape of a node as seen by the compiler.
type Kind int

const (
	KindUnknown Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindEnum
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// NewProperties returns an empty map that keeps property schemas in
// declaration order.
func NewProperties() *sequencedmap.Map[string, *Schema] { return sequencedmap.New[string, *Schema]() }

// Schema is one parsed JSON Schema node. Only the keywords the compiler
// understands are kept; everything else is dropped by the readers.
type Schema struct {
	// Core
	Type        string
	Title       string
	Description string
	Format      string
	Default     any
	Nullable    bool // "type": ["x", "null"]

	// Object
	Properties           *sequencedmap.Map[string, *Schema]
	Required             []string
	AdditionalProperties *AdditionalProperties

	// Array
	Items *Schema

	// Enum literal values in declaration order.
	Enum []any

	// Definitions from "definitions" and "$defs", in document order.
	Definitions *sequencedmap.Map[string, *Schema]

	Ref   string
	AllOf []*Schema

	// Origin is the definition name this node was inlined from by Collapse.
	Origin string
}

// AdditionalProperties is either a boolean or a schema for extra members.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

// Kind reports the node's shape. Enum values win over "type" so that
// string enums are classified as enums.
func (s *Schema) Kind() Kind {
	if s == nil {
		return KindUnknown
	}
	if s.Ref != "" {
		return KindReference
	}
	if len(s.Enum) > 0 {
		return KindEnum
	}
	switch s.Type {
	case TypeObject:
		return KindObject
	case TypeArray:
		return KindArray
	case TypeString:
		return KindString
	case TypeNumber:
		return KindNumber
	case TypeInteger:
		return KindInteger
	case TypeBoolean:
		return KindBoolean
	case "":
		if s.Properties != nil && s.Properties.Len() > 0 {
			return KindObject
		}
	}
	return KindUnknown
}

// IsRequired reports whether name is listed under "required".
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// HasProperties reports whether the node declares a fixed property set.
func (s *Schema) HasProperties() bool {
	return s != nil && s.Properties != nil && s.Properties.Len() > 0
}

// Property returns the named property schema.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s == nil || s.Properties == nil {
		return nil, false
	}
	return s.Properties.Get(name)
}

// Definition returns the named definition schema.
func (s *Schema) Definition(name string) (*Schema, bool) {
	if s == nil || s.Definitions == nil {
		return nil, false
	}
	return s.Definitions.Get(name)
}

// AdditionalSchema returns the schema-valued additionalProperties, if any.
func (s *Schema) AdditionalSchema() *Schema {
	if s == nil || s.AdditionalProperties == nil {
		return nil
	}
	return s.AdditionalProperties.Schema
}

// EnumStrings renders the enum literals as strings in declaration order.
func (s *Schema) EnumStrings() []string {
	if s == nil || len(s.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// Clone returns a deep copy sharing no mutable storage with s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Properties = cloneProperties(s.Properties)
	out.Definitions = cloneProperties(s.Definitions)
	out.Required = slices.Clone(s.Required)
	out.Enum = slices.Clone(s.Enum)
	out.Items = s.Items.Clone()
	if s.AdditionalProperties != nil {
		out.AdditionalProperties = &AdditionalProperties{
			Allowed: s.AdditionalProperties.Allowed,
			Schema:  s.AdditionalProperties.Schema.Clone(),
		}
	}
	if s.AllOf != nil {
		out.AllOf = make([]*Schema, len(s.AllOf))
		for i, m := range s.AllOf {
			out.AllOf[i] = m.Clone()
		}
	}
	return &out
}

func cloneProperties(p *sequencedmap.Map[string, *Schema]) *sequencedmap.Map[string, *Schema] {
	if p == nil {
		return nil
	}
	out := NewProperties()
	for name, ps := range p.All() {
		out.Set(name, ps.Clone())
	}
	return out
}

// SameShape reports whether a and b describe the same shape. Title and
// description are documentation and are ignored.
func SameShape(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Format != b.Format || a.Nullable != b.Nullable ||
		a.Ref != b.Ref || a.Origin != b.Origin {
		return false
	}
	if !reflect.DeepEqual(a.Default, b.Default) || !slices.EqualFunc(a.Enum, b.Enum, func(x, y any) bool {
		return fmt.Sprint(x) == fmt.Sprint(y)
	}) {
		return false
	}
	if !sameStringSet(a.Required, b.Required) {
		return false
	}
	if !SameShape(a.Items, b.Items) {
		return false
	}
	if (a.AdditionalProperties == nil) != (b.AdditionalProperties == nil) {
		return false
	}
	if a.AdditionalProperties != nil {
		if a.AdditionalProperties.Allowed != b.AdditionalProperties.Allowed ||
			!SameShape(a.AdditionalProperties.Schema, b.AdditionalProperties.Schema) {
			return false
		}
	}
	if !sameProperties(a.Properties, b.Properties) {
		return false
	}
	return slices.EqualFunc(a.AllOf, b.AllOf, SameShape)
}

func sameProperties(a, b *sequencedmap.Map[string, *Schema]) bool {
	la, lb := 0, 0
	if a != nil {
		la = a.Len()
	}
	if b != nil {
		lb = b.Len()
	}
	if la != lb {
		return false
	}
	if la == 0 {
		return true
	}
	for name, ps := range a.All() {
		other, ok := b.Get(name)
		if !ok || !SameShape(ps, other) {
			return false
		}
	}
	return true
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}
