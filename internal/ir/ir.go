// Package ir defines the intermediate representation shared by type
// inference and the code generators. This package is internal and not part
// of the public API.
package ir

import "fmt"

// NodeKind identifies a TypeDescriptor variant.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeArray
	NodeMap
	NodeEnumRef
	NodeClassRef
	NodeInterfaceClassRef
)

// TypeDescriptor is the target type of one property.
type TypeDescriptor interface {
	Kind() NodeKind
	String() string
}

// PrimitiveKind enumerates the scalar targets.
type PrimitiveKind int

const (
	String PrimitiveKind = iota
	Integer
	Number
	Boolean
	// Any is an opaque JSON value (json.RawMessage).
	Any
)

func (k PrimitiveKind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return "any"
	}
}

// Primitive is a scalar or an opaque value.
type Primitive struct {
	Prim PrimitiveKind
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }
func (p *Primitive) String() string { return p.Prim.String() }

// ArrayOf is an ordered sequence.
type ArrayOf struct {
	Item TypeDescriptor
}

func (a *ArrayOf) Kind() NodeKind { return NodeArray }
func (a *ArrayOf) String() string { return "[]" + a.Item.String() }

// MapOf is a string-keyed mapping. Key is always String today.
type MapOf struct {
	Key   PrimitiveKind
	Value TypeDescriptor
}

func (m *MapOf) Kind() NodeKind { return NodeMap }
func (m *MapOf) String() string { return fmt.Sprintf("map[%s]%s", m.Key, m.Value) }

// EnumRef names a generated enumeration.
type EnumRef struct {
	Name string
}

func (e *EnumRef) Kind() NodeKind { return NodeEnumRef }
func (e *EnumRef) String() string { return "enum " + e.Name }

// ClassRef names a generated struct.
type ClassRef struct {
	Name string
}

func (c *ClassRef) Kind() NodeKind { return NodeClassRef }
func (c *ClassRef) String() string { return "class " + c.Name }

// InterfaceAugmentedClassRef names a generated struct that also has a
// generated interface; accessors expose the interface type.
type InterfaceAugmentedClassRef struct {
	Class     string
	Interface string
}

func (c *InterfaceAugmentedClassRef) Kind() NodeKind { return NodeInterfaceClassRef }
func (c *InterfaceAugmentedClassRef) String() string {
	return "class " + c.Class + " (" + c.Interface + ")"
}

// Convenience constructors.
func Prim(k PrimitiveKind) *Primitive    { return &Primitive{Prim: k} }
func Array(item TypeDescriptor) *ArrayOf { return &ArrayOf{Item: item} }
func Map(value TypeDescriptor) *MapOf    { return &MapOf{Key: String, Value: value} }
func Enum(name string) *EnumRef          { return &EnumRef{Name: name} }
func Class(name string) *ClassRef        { return &ClassRef{Name: name} }
func IfaceClass(class, iface string) *InterfaceAugmentedClassRef {
	return &InterfaceAugmentedClassRef{Class: class, Interface: iface}
}

// Equal compares two descriptors structurally.
func Equal(a, b TypeDescriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Primitive:
		return x.Prim == b.(*Primitive).Prim
	case *ArrayOf:
		return Equal(x.Item, b.(*ArrayOf).Item)
	case *MapOf:
		y := b.(*MapOf)
		return x.Key == y.Key && Equal(x.Value, y.Value)
	case *EnumRef:
		return x.Name == b.(*EnumRef).Name
	case *ClassRef:
		return x.Name == b.(*ClassRef).Name
	case *InterfaceAugmentedClassRef:
		return *x == *b.(*InterfaceAugmentedClassRef)
	}
	return false
}

// ClassName returns the struct a descriptor refers to, looking through
// arrays and maps. ok is false when no generated struct is involved.
func ClassName(t TypeDescriptor) (name string, ok bool) {
	switch x := t.(type) {
	case *ClassRef:
		return x.Name, true
	case *InterfaceAugmentedClassRef:
		return x.Class, true
	case *ArrayOf:
		return ClassName(x.Item)
	case *MapOf:
		return ClassName(x.Value)
	}
	return "", false
}
