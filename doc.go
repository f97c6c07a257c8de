// Package schemagen compiles a JSON Schema document into Go declarations:
//
// - one struct per object definition, with JSON tags, value equality and deep cloning
// - a read-only I<Name> interface for types carrying an InterfaceHint
// - string enumerations for enum definitions and EnumHint-synthesized types
// - optional visitor scaffolding: a node-kind enum, a node interface and a rewriting visitor
//
// Design policy:
// - Keep only the public entry points in the root package; the compiler stages live under internal/.
// - Schema reading and reference collapsing are in jsonschema/, hint configuration in hints/.
// - Every failure is a *schemaerr.Error; a failed run writes nothing.
//
// Typical usage:
//
//	root, err := jsonschema.ReadFile("schema.json")
//	g, err := schemagen.New(settings, schemagen.WithLogger(logger))
//	text, err := g.Generate(root)
package schemagen
