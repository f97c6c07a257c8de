// Package sample is a model generated from schema.json and hints.json. It is
// checked in so the generated Equal, Clone and visitor code is compiled and
// tested like hand-written code.
package sample

//go:generate go run ../../../cmd/schemagen generate -schema schema.json -hints hints.json -o . -root Document -schema-name Sample -package sample -clone -force
