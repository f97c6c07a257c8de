package gen

import (
	j "github.com/dave/jennifer/jen"

	"github.com/reoring/schemagen/internal/ir"
)

// InterfaceSpec is the read-only projection of a struct.
type InterfaceSpec struct {
	Name        string // I<Class>
	Class       string
	Description string
	Properties  ir.PropertyInfoList
}

// Interface renders one accessor per property of the projected struct.
func Interface(s InterfaceSpec, opts Options) (string, error) {
	f := newFile(opts)
	fileDoc(f, docFor(s.Name, s.Description, s.Name+" is the read-only view of "+s.Class+"."))
	f.Type().Id(s.Name).InterfaceFunc(func(g *j.Group) {
		for _, p := range s.Properties {
			groupDoc(g, accessorDoc(p))
			g.Id(accessorName(p)).Params().Add(accessorType(p))
		}
		if opts.Sealed {
			g.Id(marker(s.Name)).Params()
		}
	})
	return render(f)
}
