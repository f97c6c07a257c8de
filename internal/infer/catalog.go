package infer

import (
	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/internal/naming"
	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

// TypeKind says what a schema-defined type is generated as.
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeEnum
	// TypeAlias is a scalar or array definition. No type is emitted for it;
	// references take its shape inline.
	TypeAlias
)

func (k TypeKind) String() string {
	switch k {
	case TypeClass:
		return "class"
	case TypeEnum:
		return "enum"
	default:
		return "alias"
	}
}

// TypeInfo describes the root or one definition.
type TypeInfo struct {
	Key        string // schema-derived name; hint paths are built from it
	Name       string // Go identifier
	Definition string // definition name, "" for the root
	Kind       TypeKind
	Schema     *jsonschema.Schema
	Interface  *hints.InterfaceHint
	Enum       *hints.EnumHint
}

// InterfaceName is the generated interface of an interface-hinted type.
func (t *TypeInfo) InterfaceName() string { return "I" + t.Name }

// Catalog indexes the schema-defined types of one run in registration
// order: the root first, then definitions in document order.
type Catalog struct {
	types  []*TypeInfo
	byDef  map[string]*TypeInfo
	byName map[string]*TypeInfo
}

// NewCatalog classifies root and its definitions. root must be collapsed.
func NewCatalog(rootName string, root *jsonschema.Schema, reg *hints.Registry) (*Catalog, error) {
	c := &Catalog{byDef: map[string]*TypeInfo{}, byName: map[string]*TypeInfo{}}
	rt := describeType(rootName, "", root, reg)
	// The root is always a struct named by the caller.
	rt.Kind, rt.Name, rt.Enum = TypeClass, rootName, nil
	if err := c.add(rt); err != nil {
		return nil, err
	}
	if root.Definitions == nil {
		return c, nil
	}
	for name, def := range root.Definitions.All() {
		t := describeType(naming.Pascal(name), name, def, reg)
		if err := c.add(t); err != nil {
			return nil, err
		}
		c.byDef[name] = t
	}
	return c, nil
}

func describeType(key, def string, s *jsonschema.Schema, reg *hints.Registry) *TypeInfo {
	hs := reg.TypeHints(key)
	t := &TypeInfo{Key: key, Name: key, Definition: def, Schema: s, Kind: TypeAlias}
	t.Interface, _ = hints.Find[*hints.InterfaceHint](hs)
	t.Enum, _ = hints.Find[*hints.EnumHint](hs)
	switch {
	case t.Enum != nil:
		t.Kind = TypeEnum
		t.Name = naming.Pascal(t.Enum.TypeName)
	case s.Kind() == jsonschema.KindEnum:
		t.Kind = TypeEnum
	case s.Kind() == jsonschema.KindObject:
		t.Kind = TypeClass
	}
	if cn, ok := hints.Find[*hints.ClassNameHint](hs); ok {
		t.Name = naming.Pascal(cn.ClassName)
	}
	return t
}

func (c *Catalog) add(t *TypeInfo) error {
	if t.Kind != TypeAlias {
		if prev, dup := c.byName[t.Name]; dup {
			return schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, t.Name,
				"two schema types map to the same Go name", "first", prev.Key, "second", t.Key)
		}
		c.byName[t.Name] = t
	}
	c.types = append(c.types, t)
	return nil
}

// Root returns the root type.
func (c *Catalog) Root() *TypeInfo { return c.types[0] }

// Types returns every type in registration order, aliases included.
func (c *Catalog) Types() []*TypeInfo { return c.types }

// Def looks a type up by definition name.
func (c *Catalog) Def(name string) (*TypeInfo, bool) {
	t, ok := c.byDef[name]
	return t, ok
}

// Named looks a class or enum up by Go name.
func (c *Catalog) Named(name string) (*TypeInfo, bool) {
	t, ok := c.byName[name]
	return t, ok
}
