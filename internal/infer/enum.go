package infer

import (
	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/jsonschema"
)

// EnumSpec is a resolved enumeration ready for the enum backend.
type EnumSpec struct {
	Name        string
	Zero        string // sentinel member name; "" when none
	Values      []string
	Description string
}

// ResolveEnum picks the members of an enumeration. A hint list replaces the
// schema literals and may not be longer than them. eh may be nil.
func ResolveEnum(name string, eh *hints.EnumHint, s *jsonschema.Schema) (EnumSpec, error) {
	spec := EnumSpec{Name: name, Values: s.EnumStrings()}
	if s != nil {
		spec.Description = s.Description
	}
	if eh == nil {
		return spec, nil
	}
	if err := checkEnumCount(name, eh, s); err != nil {
		return EnumSpec{}, err
	}
	if len(eh.Enum) > 0 {
		spec.Values = append([]string(nil), eh.Enum...)
	}
	spec.Zero = eh.ZeroValue
	if eh.Description != "" {
		spec.Description = eh.Description
	}
	return spec, nil
}
