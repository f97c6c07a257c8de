package ir

// ComparisonKind selects how generated equality compares one property.
type ComparisonKind int

const (
	// Scalar compares with ==, dereferencing optional pointers.
	Scalar ComparisonKind = iota
	// Sequence compares element-wise in order.
	Sequence
	// UnorderedMap compares key sets and values, ignoring insertion order.
	UnorderedMap
	// ReferenceType delegates to the nested type's Equal.
	ReferenceType
)

func (c ComparisonKind) String() string {
	switch c {
	case Sequence:
		return "sequence"
	case UnorderedMap:
		return "unordered_map"
	case ReferenceType:
		return "reference_type"
	default:
		return "scalar"
	}
}

// ComparisonFor derives the comparison strategy from a target type.
func ComparisonFor(t TypeDescriptor) ComparisonKind {
	switch t.Kind() {
	case NodeArray:
		return Sequence
	case NodeMap:
		return UnorderedMap
	case NodeClassRef, NodeInterfaceClassRef:
		return ReferenceType
	}
	return Scalar
}

// PropertyInfo is the inferred shape of one property.
type PropertyInfo struct {
	Name        string // JSON member name
	FieldName   string // Go field name
	Type        TypeDescriptor
	Comparison  ComparisonKind
	Required    bool
	Description string
}

// PropertyInfoList keeps properties in schema declaration order.
type PropertyInfoList []PropertyInfo

// Get returns the property with the given JSON name.
func (l PropertyInfoList) Get(name string) (PropertyInfo, bool) {
	for _, p := range l {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyInfo{}, false
}

// ClassChildren returns the properties whose type involves a generated
// struct, in order. The rewriting visitor walks exactly these.
func (l PropertyInfoList) ClassChildren() PropertyInfoList {
	var out PropertyInfoList
	for _, p := range l {
		if _, ok := ClassName(p.Type); ok {
			out = append(out, p)
		}
	}
	return out
}
