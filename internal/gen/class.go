package gen

import (
	"fmt"

	j "github.com/dave/jennifer/jen"

	"github.com/reoring/schemagen/internal/ir"
)

// ClassSpec is one struct to generate.
type ClassSpec struct {
	Name        string
	Description string
	Properties  ir.PropertyInfoList
	// Interface is the name of the read-only interface the struct
	// implements, or "".
	Interface string
}

// Class renders a struct with its accessors, equality and clone members.
func Class(c ClassSpec, opts Options) (string, error) {
	f := newFile(opts)
	fileDoc(f, docFor(c.Name, c.Description, ""))
	f.Type().Id(c.Name).StructFunc(func(g *j.Group) {
		for _, p := range c.Properties {
			groupDoc(g, p.Description)
			g.Id(p.FieldName).Add(fieldType(p)).Tag(map[string]string{"json": jsonTag(p)})
		}
	})

	if c.Interface != "" {
		f.Line()
		f.Var().Id("_").Id(c.Interface).Op("=").Parens(j.Op("*").Id(c.Name)).Call(j.Nil())
		for _, p := range c.Properties {
			f.Line()
			writeAccessor(f, c.Name, p)
		}
		if opts.Sealed {
			f.Line()
			f.Func().Params(j.Op("*").Id(c.Name)).Id(marker(c.Interface)).Params().Block()
		}
	}
	if opts.GenerateEquality {
		f.Line()
		writeEqual(f, c)
	}
	if opts.GenerateCloning {
		f.Line()
		writeClone(f, c)
		writeNodeMembers(f, c, opts)
	}
	return render(f)
}

func jsonTag(p ir.PropertyInfo) string {
	if p.Required {
		return p.Name
	}
	return p.Name + ",omitempty"
}

func accessorName(p ir.PropertyInfo) string { return "Get" + p.FieldName }

// accessorType is the accessor result: the interface for interface-backed
// class references, the field type otherwise.
func accessorType(p ir.PropertyInfo) *j.Statement {
	if x, ok := p.Type.(*ir.InterfaceAugmentedClassRef); ok {
		return j.Id(x.Interface)
	}
	return fieldType(p)
}

func accessorDoc(p ir.PropertyInfo) string {
	return docFor(accessorName(p), p.Description, fmt.Sprintf("%s returns the %q member.", accessorName(p), p.Name))
}

func writeAccessor(f *j.File, class string, p ir.PropertyInfo) {
	fileDoc(f, accessorDoc(p))
	sig := f.Func().Params(j.Id("o").Op("*").Id(class)).Id(accessorName(p)).Params().Add(accessorType(p))
	if _, ok := p.Type.(*ir.InterfaceAugmentedClassRef); ok {
		// A nil *T must not become a non-nil interface.
		sig.Block(
			j.If(j.Id("o").Dot(p.FieldName).Op("==").Nil()).Block(j.Return(j.Nil())),
			j.Return(j.Id("o").Dot(p.FieldName)),
		)
		return
	}
	sig.Block(j.Return(j.Id("o").Dot(p.FieldName)))
}

func writeEqual(f *j.File, c ClassSpec) {
	f.Comment("Equal reports whether o and other hold equal values. Arrays compare")
	f.Comment("element by element; maps compare by key regardless of order.")
	f.Func().Params(j.Id("o").Op("*").Id(c.Name)).Id("Equal").
		Params(j.Id("other").Op("*").Id(c.Name)).Bool().
		BlockFunc(func(g *j.Group) {
			g.If(j.Id("o").Op("==").Nil().Op("||").Id("other").Op("==").Nil()).Block(
				j.Return(j.Id("o").Op("==").Id("other")),
			)
			for _, p := range c.Properties {
				a, b := field("o", p.FieldName), field("other", p.FieldName)
				if isPointer(p) {
					g.If(
						j.Parens(a().Op("==").Nil()).Op("!=").Parens(b().Op("==").Nil()).Op("||").
							Parens(a().Op("!=").Nil().Op("&&").Op("*").Add(a()).Op("!=").Op("*").Add(b())),
					).Block(j.Return(j.False()))
					continue
				}
				mismatch(g, a, b, p.Type, 0)
			}
			g.Return(j.True())
		})
}

// mismatch emits statements that return false when a and b differ.
func mismatch(g *j.Group, a, b expr, t ir.TypeDescriptor, depth int) {
	notEqual := j.Return(j.False())
	switch x := t.(type) {
	case *ir.Primitive:
		if x.Prim == ir.Any {
			g.If(j.Op("!").Qual(bytesPkg, "Equal").Call(a(), b())).Block(notEqual)
			return
		}
		g.If(a().Op("!=").Add(b())).Block(notEqual)
	case *ir.EnumRef:
		g.If(a().Op("!=").Add(b())).Block(notEqual)
	case *ir.ClassRef, *ir.InterfaceAugmentedClassRef:
		g.If(j.Op("!").Add(a()).Dot("Equal").Call(b())).Block(notEqual)
	case *ir.ArrayOf:
		if plainValue(x.Item) {
			g.If(j.Op("!").Qual(slicesPkg, "Equal").Call(a(), b())).Block(notEqual)
			return
		}
		i := loopVar("i", depth)
		g.If(j.Len(a()).Op("!=").Len(b())).Block(notEqual)
		g.For(j.Id(i).Op(":=").Range().Add(a())).BlockFunc(func(g *j.Group) {
			mismatch(g, a.index(i), b.index(i), x.Item, depth+1)
		})
	case *ir.MapOf:
		if plainValue(x.Value) {
			g.If(j.Op("!").Qual(mapsPkg, "Equal").Call(a(), b())).Block(notEqual)
			return
		}
		k, v, w, ok := loopVar("k", depth), loopVar("v", depth), loopVar("w", depth), loopVar("ok", depth)
		g.If(j.Len(a()).Op("!=").Len(b())).Block(notEqual)
		g.For(j.List(j.Id(k), j.Id(v)).Op(":=").Range().Add(a())).BlockFunc(func(g *j.Group) {
			g.List(j.Id(w), j.Id(ok)).Op(":=").Add(b()).Index(j.Id(k))
			g.If(j.Op("!").Id(ok)).Block(j.Return(j.False()))
			mismatch(g, ident(v), ident(w), x.Value, depth+1)
		})
	}
}

func writeClone(f *j.File, c ClassSpec) {
	f.Comment("Clone returns a deep copy of o. The copy shares no slices, maps or")
	f.Comment("nested structs with o.")
	f.Func().Params(j.Id("o").Op("*").Id(c.Name)).Id("Clone").Params().Op("*").Id(c.Name).
		BlockFunc(func(g *j.Group) {
			g.If(j.Id("o").Op("==").Nil()).Block(j.Return(j.Nil()))
			g.Id("c").Op(":=").Op("*").Id("o")
			for _, p := range c.Properties {
				dst, src := field("c", p.FieldName), field("o", p.FieldName)
				switch {
				case isPointer(p):
					g.If(src().Op("!=").Nil()).Block(
						j.Id("v").Op(":=").Op("*").Add(src()),
						dst().Op("=").Op("&").Id("v"),
					)
				case plainValue(p.Type):
					// copied with the struct
				default:
					copyInto(g, dst, src, p.Type, 0)
				}
			}
			g.Return(j.Op("&").Id("c"))
		})
}

// copyInto emits statements that set dst to a deep copy of src.
func copyInto(g *j.Group, dst, src expr, t ir.TypeDescriptor, depth int) {
	switch x := t.(type) {
	case *ir.Primitive:
		if x.Prim == ir.Any {
			g.Add(dst().Op("=").Qual(jsonPkg, "RawMessage").Call(j.Qual(bytesPkg, "Clone").Call(src())))
			return
		}
		g.Add(dst().Op("=").Add(src()))
	case *ir.EnumRef:
		g.Add(dst().Op("=").Add(src()))
	case *ir.ClassRef, *ir.InterfaceAugmentedClassRef:
		g.Add(dst().Op("=").Add(src()).Dot("Clone").Call())
	case *ir.ArrayOf:
		if plainValue(x.Item) {
			g.Add(dst().Op("=").Qual(slicesPkg, "Clone").Call(src()))
			return
		}
		i := loopVar("i", depth)
		g.If(src().Op("!=").Nil()).BlockFunc(func(g *j.Group) {
			g.Add(dst().Op("=").Make(typeExpr(x), j.Len(src())))
			g.For(j.Id(i).Op(":=").Range().Add(src())).BlockFunc(func(g *j.Group) {
				copyInto(g, dst.index(i), src.index(i), x.Item, depth+1)
			})
		})
	case *ir.MapOf:
		if plainValue(x.Value) {
			g.Add(dst().Op("=").Qual(mapsPkg, "Clone").Call(src()))
			return
		}
		k, v := loopVar("k", depth), loopVar("v", depth)
		g.If(src().Op("!=").Nil()).BlockFunc(func(g *j.Group) {
			g.Add(dst().Op("=").Make(typeExpr(x), j.Len(src())))
			g.For(j.List(j.Id(k), j.Id(v)).Op(":=").Range().Add(src())).BlockFunc(func(g *j.Group) {
				switch x.Value.(type) {
				case *ir.ArrayOf, *ir.MapOf:
					// Nil values keep their key.
					n := loopVar("n", depth)
					g.Var().Id(n).Add(typeExpr(x.Value))
					copyInto(g, ident(n), ident(v), x.Value, depth+1)
					g.Add(dst.index(k)().Op("=").Id(n))
				default:
					copyInto(g, dst.index(k), ident(v), x.Value, depth+1)
				}
			})
		})
	}
}

// writeNodeMembers makes the struct satisfy the node interface.
func writeNodeMembers(f *j.File, c ClassSpec, opts Options) {
	kind := opts.NodeKindConst(c.Name)
	f.Line()
	f.Commentf("%s reports %s.", opts.NodeKindType(), kind)
	f.Func().Params(j.Op("*").Id(c.Name)).Id(opts.NodeKindType()).Params().Id(opts.NodeKindType()).
		Block(j.Return(j.Id(kind)))
	f.Line()
	f.Commentf("DeepClone returns Clone as an %s.", opts.NodeInterface())
	f.Func().Params(j.Id("o").Op("*").Id(c.Name)).Id("DeepClone").Params().Id(opts.NodeInterface()).
		Block(
			j.If(j.Id("o").Op("==").Nil()).Block(j.Return(j.Nil())),
			j.Return(j.Id("o").Dot("Clone").Call()),
		)
	if opts.Sealed {
		f.Line()
		f.Func().Params(j.Op("*").Id(c.Name)).Id(marker(opts.NodeInterface())).Params().Block()
	}
}
