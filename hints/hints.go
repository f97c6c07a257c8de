// Package hints holds the per-node customizations that steer type inference
// and code generation.
//
// A hint file maps a node path to an ordered list of hints:
//
//	{
//	  "myType": [ { "kind": "InterfaceHint", "arguments": { "description": "..." } } ],
//	  "MyType.options": [ { "kind": "DictionaryHint" } ]
//	}
//
// Type-level paths are the lower-camel form of the type name. Property-level
// paths are "TypeName.propertyName".
package hints

// Kind is the discriminator written in the "kind" member of a hint.
type Kind string

const (
	KindEnum         Kind = "EnumHint"
	KindInterface    Kind = "InterfaceHint"
	KindDictionary   Kind = "DictionaryHint"
	KindClassName    Kind = "ClassNameHint"
	KindPropertyName Kind = "PropertyNameHint"
)

// Kinds lists every known discriminator.
var Kinds = []Kind{KindEnum, KindInterface, KindDictionary, KindClassName, KindPropertyName}

// Hint is one of the variants below. The set is closed: consumers switch on
// the concrete type.
type Hint interface {
	Kind() Kind
	hint()
}

// EnumHint turns a node into a reference to a generated enumeration.
// Enum, when set, replaces the schema's literal values and must not be longer
// than them. ZeroValue, when set, names a leading sentinel member.
type EnumHint struct {
	TypeName    string   `json:"typeName" yaml:"typeName"`
	ZeroValue   string   `json:"zeroValue,omitempty" yaml:"zeroValue,omitempty"`
	Enum        []string `json:"enumValues,omitempty" yaml:"enumValues,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// InterfaceHint makes a type also emit a read-only I<Name> interface.
type InterfaceHint struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DictionaryHint maps a bare object property to map[string]T.
type DictionaryHint struct{}

// ClassNameHint overrides the generated type name of a property's object.
type ClassNameHint struct {
	ClassName string `json:"className" yaml:"className"`
}

// PropertyNameHint overrides the generated Go field name of a property.
type PropertyNameHint struct {
	PropertyName string `json:"propertyName" yaml:"propertyName"`
}

func (*EnumHint) Kind() Kind         { return KindEnum }
func (*InterfaceHint) Kind() Kind    { return KindInterface }
func (*DictionaryHint) Kind() Kind   { return KindDictionary }
func (*ClassNameHint) Kind() Kind    { return KindClassName }
func (*PropertyNameHint) Kind() Kind { return KindPropertyName }

func (*EnumHint) hint()         {}
func (*InterfaceHint) hint()    {}
func (*DictionaryHint) hint()   {}
func (*ClassNameHint) hint()    {}
func (*PropertyNameHint) hint() {}

// newHint returns an empty variant for k, ready to receive its arguments.
func newHint(k Kind) (Hint, bool) {
	switch k {
	case KindEnum:
		return &EnumHint{}, true
	case KindInterface:
		return &InterfaceHint{}, true
	case KindDictionary:
		return &DictionaryHint{}, true
	case KindClassName:
		return &ClassNameHint{}, true
	case KindPropertyName:
		return &PropertyNameHint{}, true
	}
	return nil, false
}

// validate checks the arguments a variant cannot work without.
func validate(h Hint) string {
	switch v := h.(type) {
	case *EnumHint:
		if v.TypeName == "" {
			return "EnumHint requires typeName"
		}
	case *ClassNameHint:
		if v.ClassName == "" {
			return "ClassNameHint requires className"
		}
	case *PropertyNameHint:
		if v.PropertyName == "" {
			return "PropertyNameHint requires propertyName"
		}
	}
	return ""
}
