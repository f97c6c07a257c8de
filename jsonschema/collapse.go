package jsonschema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/reoring/schemagen/schemaerr"
)

// Local reference prefixes understood by Collapse.
const (
	DefinitionsPrefix = "#/definitions/"
	DefsPrefix        = "#/$defs/"
)

// Collapse returns a self-contained copy of root: every local $ref is
// replaced by a copy of its target and every allOf is merged into a single
// object node. The copy records the definition a node came from in Origin.
// root is left untouched.
func Collapse(root *Schema) (*Schema, error) {
	if root == nil {
		return nil, nil
	}
	c := &collapser{defs: root.Definitions}
	out, err := c.node(root, "#")
	if err != nil {
		return nil, err
	}
	if root.Definitions != nil {
		out.Definitions = NewProperties()
		for name, def := range root.Definitions.All() {
			c.stack = []string{name}
			d, err := c.node(def, DefinitionsPrefix+escapePointer(name))
			if err != nil {
				return nil, err
			}
			if d.Origin == "" {
				d.Origin = name
			}
			out.Definitions.Set(name, d)
		}
		c.stack = nil
	}
	return out, nil
}

// RefName extracts the definition name from a local reference.
func RefName(ref string) (string, bool) {
	for _, prefix := range []string{DefinitionsPrefix, DefsPrefix} {
		if name, ok := strings.CutPrefix(ref, prefix); ok && name != "" {
			return strings.ReplaceAll(strings.ReplaceAll(name, "~1", "/"), "~0", "~"), true
		}
	}
	return "", false
}

type collapser struct {
	defs  *sequencedmap.Map[string, *Schema]
	stack []string // definitions being expanded, outermost first
}

func (c *collapser) node(s *Schema, ptr string) (*Schema, error) {
	if s == nil {
		return nil, nil
	}
	if s.Ref != "" {
		return c.ref(s, ptr)
	}
	out := &Schema{
		Type:        s.Type,
		Title:       s.Title,
		Description: s.Description,
		Format:      s.Format,
		Default:     s.Default,
		Nullable:    s.Nullable,
		Required:    slices.Clone(s.Required),
		Enum:        slices.Clone(s.Enum),
		Origin:      s.Origin,
	}
	if s.Properties != nil {
		out.Properties = NewProperties()
		for name, ps := range s.Properties.All() {
			p, err := c.node(ps, ptr+"/properties/"+escapePointer(name))
			if err != nil {
				return nil, err
			}
			out.Properties.Set(name, p)
		}
	}
	if s.Items != nil {
		items, err := c.node(s.Items, ptr+"/items")
		if err != nil {
			return nil, err
		}
		out.Items = items
	}
	if ap := s.AdditionalProperties; ap != nil {
		sub, err := c.node(ap.Schema, ptr+"/additionalProperties")
		if err != nil {
			return nil, err
		}
		out.AdditionalProperties = &AdditionalProperties{Allowed: ap.Allowed, Schema: sub}
	}
	if len(s.AllOf) > 0 {
		return c.mergeAllOf(out, s.AllOf, ptr)
	}
	return out, nil
}

func (c *collapser) ref(s *Schema, ptr string) (*Schema, error) {
	name, ok := RefName(s.Ref)
	if !ok {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeUnsupportedRef, ptr,
			"only local #/definitions/ and #/$defs/ references are supported", "ref", s.Ref)
	}
	var target *Schema
	found := false
	if c.defs != nil {
		target, found = c.defs.Get(name)
	}
	if !found {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeUnresolvedRef, ptr,
			"reference to an unknown definition", "ref", s.Ref)
	}
	if slices.Contains(c.stack, name) {
		chain := append(slices.Clone(c.stack), name)
		return nil, schemaerr.New(schemaerr.KindSchemaCycle, schemaerr.CodeRefCycle, ptr,
			"circular reference", "chain", strings.Join(chain, " -> "))
	}
	c.stack = append(c.stack, name)
	resolved, err := c.node(target, DefinitionsPrefix+escapePointer(name))
	c.stack = c.stack[:len(c.stack)-1]
	if err != nil {
		return nil, err
	}
	resolved.Origin = name
	// Keywords written next to $ref refine the target.
	if s.Title != "" {
		resolved.Title = s.Title
	}
	if s.Description != "" {
		resolved.Description = s.Description
	}
	if s.Default != nil {
		resolved.Default = s.Default
	}
	if s.Nullable {
		resolved.Nullable = true
	}
	return resolved, nil
}

// mergeAllOf folds the collapsed allOf members into base, which already
// holds the node's own keywords.
func (c *collapser) mergeAllOf(base *Schema, members []*Schema, ptr string) (*Schema, error) {
	if base.Type != "" && base.Type != TypeObject {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeInvalidSchema, ptr,
			"allOf is only supported on object schemas", "type", base.Type)
	}
	base.Type = TypeObject
	base.Origin = ""
	if base.Properties == nil {
		base.Properties = NewProperties()
	}
	for i, m := range members {
		at := ptr + "/allOf/" + strconv.Itoa(i)
		cm, err := c.node(m, at)
		if err != nil {
			return nil, err
		}
		if cm.Type != "" && cm.Type != TypeObject {
			return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeInvalidSchema, at,
				"allOf members must be objects", "type", cm.Type)
		}
		if base.Description == "" {
			base.Description = cm.Description
		}
		if cm.Properties != nil {
			for name, ps := range cm.Properties.All() {
				if existing, dup := base.Properties.Get(name); dup {
					if !SameShape(existing, ps) {
						return nil, schemaerr.New(schemaerr.KindPropertyConflict, schemaerr.CodeAllOfConflict,
							at+"/properties/"+escapePointer(name), "allOf members define the property differently",
							"property", name)
					}
					continue
				}
				base.Properties.Set(name, ps)
			}
		}
		for _, r := range cm.Required {
			if !slices.Contains(base.Required, r) {
				base.Required = append(base.Required, r)
			}
		}
		if base.AdditionalProperties == nil {
			base.AdditionalProperties = cm.AdditionalProperties
		}
	}
	return base, nil
}
