package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/reoring/schemagen"
	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/jsonschema"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "hints":
		hintsCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "schemagen CLI\n\nUsage:\n  schemagen generate -schema schema.json -o ./model -root Root [-config settings.yaml] [-hints hints.json] [-crd-kind Kind]\n  schemagen check -schema schema.json -root Root [-hints hints.json]\n  schemagen hints -file hints.json\n\nEnvironment (also read from .env):\n  SCHEMAGEN_OUTPUT, SCHEMAGEN_ROOT, SCHEMAGEN_PACKAGE, SCHEMAGEN_HINTS, SCHEMAGEN_COPYRIGHT")
}

// runFlags are the flags shared by generate and check.
type runFlags struct {
	fs         *flag.FlagSet
	schema     string
	config     string
	out        string
	root       string
	schemaName string
	pkg        string
	hints      string
	copyright  string
	seal       bool
	noEqual    bool
	clone      bool
	force      bool
	verbose    bool
	crd        bool
	crdKind    string
}

func newRunFlags(name string) *runFlags {
	f := &runFlags{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	f.fs.StringVar(&f.schema, "schema", "", "JSON or YAML schema file")
	f.fs.StringVar(&f.config, "config", "", "settings file (JSON or YAML)")
	f.fs.StringVar(&f.out, "o", "", "output directory")
	f.fs.StringVar(&f.root, "root", "", "name of the root struct")
	f.fs.StringVar(&f.schemaName, "schema-name", "", "prefix of the visitor scaffold types (default: root name)")
	f.fs.StringVar(&f.pkg, "package", "", "package name of the generated files")
	f.fs.StringVar(&f.hints, "hints", "", "hint file (JSON or YAML)")
	f.fs.StringVar(&f.copyright, "copyright", "", "copyright notice placed above the generated header")
	f.fs.BoolVar(&f.seal, "seal", false, "seal generated interfaces")
	f.fs.BoolVar(&f.noEqual, "no-equal", false, "do not generate Equal methods")
	f.fs.BoolVar(&f.clone, "clone", false, "generate Clone methods and the visitor scaffold")
	f.fs.BoolVar(&f.force, "force", false, "write into a non-empty output directory")
	f.fs.BoolVar(&f.verbose, "v", false, "enable verbose logs")
	f.fs.BoolVar(&f.crd, "crd", false, "read the schema from a CustomResourceDefinition bundle")
	f.fs.StringVar(&f.crdKind, "crd-kind", "", "CRD spec.names.kind to pick from the bundle (implies -crd)")
	return f
}

// settings layers defaults, the config file, the environment and explicit
// flags, in that order.
func (f *runFlags) settings() (schemagen.Settings, error) {
	s := schemagen.DefaultSettings()
	if f.config != "" {
		loaded, err := schemagen.LoadSettings(f.config)
		if err != nil {
			return s, err
		}
		s = loaded
	}
	applyEnv(&s, os.Getenv)

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			s.OutputDirectory = f.out
		case "root":
			s.RootClassName = f.root
		case "schema-name":
			s.SchemaName = f.schemaName
		case "package":
			s.NamespaceName = f.pkg
		case "hints":
			s.HintsPath = f.hints
		case "copyright":
			s.CopyrightNotice = f.copyright
		case "seal":
			s.SealClasses = f.seal
		case "no-equal":
			s.GenerateOverrides = !f.noEqual
		case "clone":
			s.GenerateCloningCode = f.clone
		case "force":
			s.ForceOverwrite = f.force
		}
	})
	return s, nil
}

func applyEnv(s *schemagen.Settings, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&s.OutputDirectory, "SCHEMAGEN_OUTPUT")
	set(&s.RootClassName, "SCHEMAGEN_ROOT")
	set(&s.NamespaceName, "SCHEMAGEN_PACKAGE")
	set(&s.HintsPath, "SCHEMAGEN_HINTS")
	set(&s.CopyrightNotice, "SCHEMAGEN_COPYRIGHT")
}

func (f *runFlags) logger(w io.Writer) schemagen.Logger {
	return schemagen.NewWriterLogger(w, f.verbose)
}

// prepare builds the generator and reads the schema and hint files.
func (f *runFlags) prepare(s schemagen.Settings) (*schemagen.Generator, *jsonschema.Schema) {
	if s.Hints == nil && s.HintsPath != "" {
		reg, err := hints.Load(s.HintsPath)
		if err != nil {
			fatalf("hints: %v", err)
		}
		s.Hints = reg
	}
	var (
		root *jsonschema.Schema
		err  error
	)
	if f.crd || f.crdKind != "" {
		root, err = jsonschema.ReadCRDFile(f.schema, f.crdKind)
	} else {
		root, err = jsonschema.ReadFile(f.schema)
	}
	if err != nil {
		fatalf("schema: %v", err)
	}
	g, err := schemagen.New(s, schemagen.WithLogger(f.logger(os.Stderr)))
	if err != nil {
		fatalf("settings: %v", err)
	}
	return g, root
}

func generateCmd(args []string) {
	f := newRunFlags("generate")
	_ = f.fs.Parse(args)
	if f.schema == "" {
		f.fs.Usage()
		os.Exit(2)
	}
	s, err := f.settings()
	if err != nil {
		fatalf("settings: %v", err)
	}
	g, root := f.prepare(s)
	if _, err := g.Generate(root); err != nil {
		f.logger(os.Stderr).Error("generation failed", schemagen.F("schema", f.schema))
		fatalf("generate: %v", err)
	}
}

// checkCmd compiles in memory and lists the units without writing.
func checkCmd(args []string) {
	f := newRunFlags("check")
	_ = f.fs.Parse(args)
	if f.schema == "" {
		f.fs.Usage()
		os.Exit(2)
	}
	s, err := f.settings()
	if err != nil {
		fatalf("settings: %v", err)
	}
	if s.OutputDirectory == "" {
		s.OutputDirectory = "."
	}
	g, root := f.prepare(s)
	res, err := g.Compile(root)
	if err != nil {
		fatalf("check: %v", err)
	}
	for _, t := range res.Types {
		fmt.Printf("%-14s %-30s %s\n", t.Kind, t.Name, t.FileName)
	}
	if len(res.Warnings) > 0 {
		os.Exit(1)
	}
}

func hintsCmd(args []string) {
	fs := flag.NewFlagSet("hints", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "file", "", "hint file to validate (JSON or YAML)")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	reg, err := hints.Load(file)
	if err != nil {
		fatalf("%v", err)
	}
	for _, p := range reg.Paths() {
		kinds := make([]string, 0, 2)
		for _, h := range reg.Lookup(p) {
			kinds = append(kinds, string(h.Kind()))
		}
		fmt.Printf("%s: %s\n", p, strings.Join(kinds, ", "))
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
