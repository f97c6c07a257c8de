package gen

import (
	j "github.com/dave/jennifer/jen"

	"github.com/reoring/schemagen/internal/naming"
	"github.com/reoring/schemagen/schemaerr"
)

// EnumSpec is one string enumeration to generate.
type EnumSpec struct {
	Name        string
	Description string
	// Zero names a sentinel member whose value is "". Empty means none.
	Zero   string
	Values []string
}

// Enum renders a string type with one constant per member, a Values list
// and an IsValid check. The zero sentinel is not part of Values.
func Enum(e EnumSpec, opts Options) (string, error) {
	type member struct{ name, value string }
	var members []member
	seen := map[string]string{}
	add := func(label, value string) error {
		name := e.Name + naming.Pascal(label)
		if prev, dup := seen[name]; dup {
			return schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, e.Name,
				"two enum members map to the same constant", "constant", name, "values", prev+", "+label)
		}
		seen[name] = label
		members = append(members, member{name, value})
		return nil
	}
	if e.Zero != "" {
		if err := add(e.Zero, ""); err != nil {
			return "", err
		}
	}
	for _, v := range e.Values {
		if err := add(v, v); err != nil {
			return "", err
		}
	}

	f := newFile(opts)
	fileDoc(f, docFor(e.Name, e.Description, ""))
	f.Type().Id(e.Name).String()
	f.Line()
	f.Const().DefsFunc(func(g *j.Group) {
		for i, m := range members {
			if i == 0 && e.Zero != "" {
				g.Commentf("%s is the zero value; it is not a member of %s.", m.name, e.Name)
			}
			g.Id(m.name).Id(e.Name).Op("=").Lit(m.value)
		}
	})

	values := members
	if e.Zero != "" {
		values = members[1:]
	}
	f.Line()
	f.Commentf("%sValues lists the members of %s in declaration order.", e.Name, e.Name)
	f.Func().Id(e.Name+"Values").Params().Index().Id(e.Name).Block(
		j.Return(j.Index().Id(e.Name).ValuesFunc(func(g *j.Group) {
			for _, m := range values {
				g.Id(m.name)
			}
		})),
	)
	f.Line()
	f.Commentf("IsValid reports whether v is one of the %s members.", e.Name)
	f.Func().Params(j.Id("v").Id(e.Name)).Id("IsValid").Params().Bool().BlockFunc(func(g *j.Group) {
		if len(values) == 0 {
			g.Return(j.False())
			return
		}
		g.Switch(j.Id("v")).Block(
			j.CaseFunc(func(g *j.Group) {
				for _, m := range values {
					g.Id(m.name)
				}
			}).Block(j.Return(j.True())),
		)
		g.Return(j.False())
	})
	return render(f)
}
