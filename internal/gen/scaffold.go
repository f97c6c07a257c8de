package gen

import (
	j "github.com/dave/jennifer/jen"

	"github.com/reoring/schemagen/internal/ir"
)

// Node is a registered struct as seen by the scaffold. The slice order
// passed to the scaffold functions is the registration order and fixes the
// order of constants, hooks and methods.
type Node struct {
	Name       string
	Properties ir.PropertyInfoList
}

// NodeKind renders the <Schema>NodeKind enumeration.
func NodeKind(nodes []Node, opts Options) (string, error) {
	kind := opts.NodeKindType()
	none := opts.NodeKindConst("None")
	f := newFile(opts)
	f.Commentf("%s identifies the concrete type behind an %s.", kind, opts.NodeInterface())
	f.Type().Id(kind).Int()
	f.Line()
	f.Const().DefsFunc(func(g *j.Group) {
		g.Commentf("%s is the zero value; no generated type reports it.", none)
		g.Id(none).Id(kind).Op("=").Iota()
		for _, n := range nodes {
			g.Id(opts.NodeKindConst(n.Name))
		}
	})
	f.Line()
	f.Func().Params(j.Id("k").Id(kind)).Id("String").Params().String().BlockFunc(func(g *j.Group) {
		g.Switch(j.Id("k")).BlockFunc(func(g *j.Group) {
			for _, n := range nodes {
				g.Case(j.Id(opts.NodeKindConst(n.Name))).Block(j.Return(j.Lit(n.Name)))
			}
		})
		g.Return(j.Lit("None"))
	})
	return render(f)
}

// NodeInterface renders the contract every generated struct implements.
func NodeInterface(opts Options) (string, error) {
	f := newFile(opts)
	f.Commentf("%s is implemented by every generated struct.", opts.NodeInterface())
	f.Type().Id(opts.NodeInterface()).InterfaceFunc(func(g *j.Group) {
		g.Commentf("%s reports the concrete type.", opts.NodeKindType())
		g.Id(opts.NodeKindType()).Params().Id(opts.NodeKindType())
		g.Comment("DeepClone returns a copy sharing no mutable state with the receiver.")
		g.Id("DeepClone").Params().Id(opts.NodeInterface())
		if opts.Sealed {
			g.Id(marker(opts.NodeInterface())).Params()
		}
	})
	return render(f)
}

// RewritingVisitor renders a dispatch table with one hook per struct. The
// default handling of a struct replaces each struct-typed child, array
// element and map value with the visitor's result and returns the node.
func RewritingVisitor(nodes []Node, opts Options) (string, error) {
	vt := opts.VisitorType()
	recv := func() *j.Statement { return j.Id("v").Op("*").Id(vt) }
	f := newFile(opts)
	f.Commentf("%s rewrites a tree of generated structs. Each On<Type> hook,", vt)
	f.Comment("when set, replaces the default handling of that type; hooks may call")
	f.Comment("the matching Default method to keep walking the children.")
	f.Type().Id(vt).StructFunc(func(g *j.Group) {
		for _, n := range nodes {
			g.Id("On"+n.Name).Func().Params(j.Id("v").Op("*").Id(vt), j.Id("node").Op("*").Id(n.Name)).Op("*").Id(n.Name)
		}
	})

	f.Line()
	f.Comment("Visit dispatches node on its kind and returns the rewritten node.")
	f.Func().Params(recv()).Id("Visit").Params(j.Id("node").Id(opts.NodeInterface())).Id(opts.NodeInterface()).
		BlockFunc(func(g *j.Group) {
			g.If(j.Id("node").Op("==").Nil()).Block(j.Return(j.Nil()))
			g.Switch(j.Id("node").Dot(opts.NodeKindType()).Call()).BlockFunc(func(g *j.Group) {
				for _, n := range nodes {
					g.Case(j.Id(opts.NodeKindConst(n.Name))).Block(
						j.Return(j.Id("v").Dot("Visit" + n.Name).Call(j.Id("node").Assert(j.Op("*").Id(n.Name)))),
					)
				}
			})
			g.Return(j.Id("node"))
		})

	for _, n := range nodes {
		f.Line()
		f.Commentf("Visit%s runs On%s, or Default%s when the hook is unset.", n.Name, n.Name, n.Name)
		f.Func().Params(recv()).Id("Visit"+n.Name).Params(j.Id("node").Op("*").Id(n.Name)).Op("*").Id(n.Name).Block(
			j.If(j.Id("v").Dot("On"+n.Name).Op("!=").Nil()).Block(
				j.Return(j.Id("v").Dot("On"+n.Name).Call(j.Id("v"), j.Id("node"))),
			),
			j.Return(j.Id("v").Dot("Default"+n.Name).Call(j.Id("node"))),
		)
		f.Line()
		f.Commentf("Default%s visits the children of node in place.", n.Name)
		f.Func().Params(recv()).Id("Default"+n.Name).Params(j.Id("node").Op("*").Id(n.Name)).Op("*").Id(n.Name).
			BlockFunc(func(g *j.Group) {
				g.If(j.Id("node").Op("==").Nil()).Block(j.Return(j.Nil()))
				for _, p := range n.Properties.ClassChildren() {
					rewrite(g, field("node", p.FieldName), p.Type, 0)
				}
				g.Return(j.Id("node"))
			})
	}
	return render(f)
}

// rewrite emits statements replacing every struct reachable through t at
// target with the visitor's result.
func rewrite(g *j.Group, target expr, t ir.TypeDescriptor, depth int) {
	switch x := t.(type) {
	case *ir.ClassRef:
		g.Add(target().Op("=").Id("v").Dot("Visit" + x.Name).Call(target()))
	case *ir.InterfaceAugmentedClassRef:
		g.Add(target().Op("=").Id("v").Dot("Visit" + x.Class).Call(target()))
	case *ir.ArrayOf:
		i := loopVar("i", depth)
		g.For(j.Id(i).Op(":=").Range().Add(target())).BlockFunc(func(g *j.Group) {
			rewrite(g, target.index(i), x.Item, depth+1)
		})
	case *ir.MapOf:
		k := loopVar("k", depth)
		g.For(j.Id(k).Op(":=").Range().Add(target())).BlockFunc(func(g *j.Group) {
			rewrite(g, target.index(k), x.Value, depth+1)
		})
	}
}
