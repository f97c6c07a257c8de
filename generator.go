package schemagen

import (
	"fmt"
	"path/filepath"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/internal/gen"
	"github.com/reoring/schemagen/internal/infer"
	"github.com/reoring/schemagen/internal/ir"
	"github.com/reoring/schemagen/internal/naming"
	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

// UnitKind classifies a generated file.
type UnitKind int

const (
	UnitClass UnitKind = iota
	UnitInterface
	UnitEnum
	UnitNodeKind
	UnitNodeInterface
	UnitVisitor
)

func (k UnitKind) String() string {
	switch k {
	case UnitClass:
		return "class"
	case UnitInterface:
		return "interface"
	case UnitEnum:
		return "enum"
	case UnitNodeKind:
		return "node_kind"
	case UnitNodeInterface:
		return "node_interface"
	default:
		return "visitor"
	}
}

// Property describes one field of a generated struct.
type Property struct {
	Name        string // JSON member name
	FieldName   string
	Type        string // descriptor, e.g. "[]class Child"
	Comparison  string
	Required    bool
	Description string
}

// GeneratedType is one generated file.
type GeneratedType struct {
	Name            string
	Kind            UnitKind
	FileName        string
	Text            string
	Properties      []Property
	InterfaceBacked bool
}

// Result is the complete output of one run, in generation order.
type Result struct {
	Root     string // text of the root struct
	Types    []GeneratedType
	Warnings []string
}

// Lookup returns the unit with the given type name.
func (r *Result) Lookup(name string) (GeneratedType, bool) {
	for _, t := range r.Types {
		if t.Name == name {
			return t, true
		}
	}
	return GeneratedType{}, false
}

// Files maps file names to their text.
func (r *Result) Files() map[string]string {
	out := make(map[string]string, len(r.Types))
	for _, t := range r.Types {
		out[t.FileName] = t.Text
	}
	return out
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFileSystem sets the storage used by Generate. The default is OSFS.
func WithFileSystem(fs FileSystem) Option {
	return func(g *Generator) {
		if fs != nil {
			g.fs = fs
		}
	}
}

// Generator compiles schemas with fixed settings. It keeps no state between
// runs, so one Generator may serve concurrent runs.
type Generator struct {
	settings Settings
	log      Logger
	fs       FileSystem
}

// New validates settings and returns a Generator.
func New(settings Settings, opts ...Option) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{settings: settings, log: nopLogger{}, fs: OSFS{}}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate compiles root and writes every unit to the output directory. It
// returns the text of the root struct. Nothing is written unless the whole
// run succeeds.
func (g *Generator) Generate(root *jsonschema.Schema) (string, error) {
	dir := g.settings.OutputDirectory
	if !g.settings.ForceOverwrite {
		busy, err := g.fs.DirHasEntries(dir)
		if err != nil {
			return "", fmt.Errorf("schemagen: inspect %q: %w", dir, err)
		}
		if busy {
			return "", schemaerr.New(schemaerr.KindOutputConflict, schemaerr.CodeOutputExists, dir,
				"output directory is not empty; set ForceOverwrite to replace it")
		}
	}
	res, err := g.Compile(root)
	if err != nil {
		return "", err
	}
	if err := g.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("schemagen: create %q: %w", dir, err)
	}
	for _, t := range res.Types {
		path := filepath.Join(dir, t.FileName)
		if err := g.fs.WriteFile(path, []byte(t.Text)); err != nil {
			return "", fmt.Errorf("schemagen: write %q: %w", path, err)
		}
		g.log.Debug("wrote file", F("path", path), F("kind", t.Kind))
	}
	g.log.Info("generation complete", F("dir", dir), F("files", len(res.Types)))
	return res.Root, nil
}

// Compile runs the whole pipeline in memory.
func (g *Generator) Compile(root *jsonschema.Schema) (*Result, error) {
	if root == nil {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeNotAnObject, "#", "no schema")
	}
	r := &run{
		settings: g.settings,
		log:      g.log,
		units:    sequencedmap.New[string, GeneratedType](),
		files:    map[string]string{},
		queue:    infer.NewQueue(),
		diag:     &infer.Diag{},
		opts: gen.Options{
			Package:          g.settings.NamespaceName,
			Copyright:        g.settings.CopyrightNotice,
			GenerateEquality: g.settings.GenerateOverrides,
			GenerateCloning:  g.settings.GenerateCloningCode,
			Sealed:           g.settings.SealClasses,
			SchemaName:       g.settings.EffectiveSchemaName(),
		},
	}
	return r.compile(root)
}

// GenerateFromFiles reads the schema at schemaPath and, unless
// settings.Hints is set, the hint file at settings.HintsPath, then runs
// Generate.
func GenerateFromFiles(settings Settings, schemaPath string, opts ...Option) (string, error) {
	root, err := jsonschema.ReadFile(schemaPath)
	if err != nil {
		return "", err
	}
	if settings.Hints == nil && settings.HintsPath != "" {
		reg, err := hints.Load(settings.HintsPath)
		if err != nil {
			return "", err
		}
		settings.Hints = reg
	}
	g, err := New(settings, opts...)
	if err != nil {
		return "", err
	}
	return g.Generate(root)
}

// run is the state of one compilation. Units are kept in generation order.
type run struct {
	settings Settings
	log      Logger
	opts     gen.Options
	units    *sequencedmap.Map[string, GeneratedType]
	files    map[string]string // file name -> unit name
	catalog  *infer.Catalog
	engine   *infer.Engine
	queue    *infer.Queue
	diag     *infer.Diag
	nodes    []gen.Node
}

func (r *run) compile(raw *jsonschema.Schema) (*Result, error) {
	root, err := jsonschema.Collapse(raw)
	if err != nil {
		return nil, err
	}
	if root.Kind() != jsonschema.KindObject {
		return nil, schemaerr.New(schemaerr.KindSchemaShape, schemaerr.CodeNotAnObject, "#",
			"the schema root must be an object", "kind", root.Kind().String())
	}
	r.catalog, err = infer.NewCatalog(r.settings.RootClassName, root, r.settings.Hints)
	if err != nil {
		return nil, err
	}
	r.engine = &infer.Engine{
		Hints:      r.settings.Hints,
		Catalog:    r.catalog,
		Queue:      r.queue,
		Diag:       r.diag,
		SchemaName: r.opts.SchemaName,
	}

	for _, t := range r.catalog.Types() {
		switch t.Kind {
		case infer.TypeClass:
			err = r.class(t)
		case infer.TypeEnum:
			err = r.enum(t)
		default:
			r.log.Debug("definition inlined at each use", F("definition", t.Definition), F("kind", t.Schema.Kind()))
		}
		if err != nil {
			return nil, err
		}
	}

	for _, req := range r.queue.Drain() {
		if err := r.additional(req); err != nil {
			return nil, err
		}
	}
	if err := r.queue.Err(); err != nil {
		return nil, err
	}

	if r.opts.GenerateCloning {
		if err := r.scaffold(); err != nil {
			return nil, err
		}
	}

	res := &Result{Warnings: r.diag.Warnings()}
	for _, w := range res.Warnings {
		r.log.Warn(w)
	}
	for _, t := range r.units.All() {
		res.Types = append(res.Types, t)
	}
	rootUnit, _ := r.units.Get(r.catalog.Root().Name)
	res.Root = rootUnit.Text
	return res, nil
}

func (r *run) class(t *infer.TypeInfo) error {
	props, err := r.engine.Infer(t.Key, t.Schema)
	if err != nil {
		return err
	}
	spec := gen.ClassSpec{Name: t.Name, Description: t.Schema.Description, Properties: props}
	if t.Interface != nil {
		spec.Interface = t.InterfaceName()
	}
	text, err := gen.Class(spec, r.opts)
	if err != nil {
		return err
	}
	if err := r.add(GeneratedType{
		Name:            t.Name,
		Kind:            UnitClass,
		Text:            text,
		Properties:      publicProperties(props),
		InterfaceBacked: t.Interface != nil,
	}); err != nil {
		return err
	}
	r.nodes = append(r.nodes, gen.Node{Name: t.Name, Properties: props})

	if t.Interface == nil {
		return nil
	}
	desc := t.Interface.Description
	if desc == "" {
		desc = t.Schema.Description
	}
	text, err = gen.Interface(gen.InterfaceSpec{
		Name:        spec.Interface,
		Class:       t.Name,
		Description: desc,
		Properties:  props,
	}, r.opts)
	if err != nil {
		return err
	}
	return r.add(GeneratedType{Name: spec.Interface, Kind: UnitInterface, Text: text, Properties: publicProperties(props)})
}

func (r *run) enum(t *infer.TypeInfo) error {
	spec, err := infer.ResolveEnum(t.Name, t.Enum, t.Schema)
	if err != nil {
		return err
	}
	return r.emitEnum(spec)
}

// additional generates one queued type. Only enumerations can be
// synthesized.
func (r *run) additional(req infer.AdditionalTypeRequest) error {
	switch h := req.Hint.(type) {
	case *hints.EnumHint:
		spec, err := infer.ResolveEnum(naming.Pascal(h.TypeName), h, req.Schema)
		if err != nil {
			return err
		}
		r.log.Debug("generating additional type", F("type", spec.Name), F("requested_by", req.Reason))
		return r.emitEnum(spec)
	default:
		return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeUnsupportedAdditional, req.Reason,
			"this hint kind cannot generate an additional type", "kind", string(req.Hint.Kind()))
	}
}

func (r *run) emitEnum(spec infer.EnumSpec) error {
	text, err := gen.Enum(gen.EnumSpec{
		Name:        spec.Name,
		Description: spec.Description,
		Zero:        spec.Zero,
		Values:      spec.Values,
	}, r.opts)
	if err != nil {
		return err
	}
	return r.add(GeneratedType{Name: spec.Name, Kind: UnitEnum, Text: text})
}

func (r *run) scaffold() error {
	kind, err := gen.NodeKind(r.nodes, r.opts)
	if err != nil {
		return err
	}
	if err := r.add(GeneratedType{Name: r.opts.NodeKindType(), Kind: UnitNodeKind, Text: kind}); err != nil {
		return err
	}
	iface, err := gen.NodeInterface(r.opts)
	if err != nil {
		return err
	}
	if err := r.add(GeneratedType{Name: r.opts.NodeInterface(), Kind: UnitNodeInterface, Text: iface}); err != nil {
		return err
	}
	visitor, err := gen.RewritingVisitor(r.nodes, r.opts)
	if err != nil {
		return err
	}
	return r.add(GeneratedType{Name: r.opts.VisitorType(), Kind: UnitVisitor, Text: visitor})
}

// add records a unit. Type names and file names must be unique in a run.
func (r *run) add(t GeneratedType) error {
	t.FileName = naming.Snake(t.Name) + ".go"
	if r.units.Has(t.Name) {
		return schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, t.Name,
			"the type is generated twice", "kind", t.Kind.String())
	}
	if prev, dup := r.files[t.FileName]; dup {
		return schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, t.Name,
			"two types map to the same file", "file", t.FileName, "other", prev)
	}
	r.units.Set(t.Name, t)
	r.files[t.FileName] = t.Name
	return nil
}

func publicProperties(props ir.PropertyInfoList) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		out = append(out, Property{
			Name:        p.Name,
			FieldName:   p.FieldName,
			Type:        p.Type.String(),
			Comparison:  p.Comparison.String(),
			Required:    p.Required,
			Description: p.Description,
		})
	}
	return out
}
