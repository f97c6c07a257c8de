package hints

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/schemagen/schemaerr"
)

type rawHint struct {
	Kind      string          `json:"kind"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type yamlHint struct {
	Kind      string         `yaml:"kind"`
	Arguments map[string]any `yaml:"arguments,omitempty"`
}

// Parse reads a JSON hint configuration.
func Parse(data []byte) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raw map[string][]rawHint
	if err := dec.Decode(&raw); err != nil {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, "",
			"malformed hint configuration: "+err.Error())
	}
	r := New()
	for _, path := range sortedKeys(raw) {
		for _, rh := range raw[path] {
			h, err := build(path, rh.Kind, rh.Arguments)
			if err != nil {
				return nil, err
			}
			if err := r.Add(path, h); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// ParseYAML reads the YAML form of a hint configuration. The layout is the
// same as the JSON form.
func ParseYAML(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var raw map[string][]yamlHint
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, "",
			"malformed hint configuration: "+err.Error())
	}
	r := New()
	for _, path := range sortedKeys(raw) {
		for _, yh := range raw[path] {
			var args []byte
			if yh.Arguments != nil {
				b, err := json.Marshal(yh.Arguments)
				if err != nil {
					return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, path,
						"arguments are not representable as JSON: "+err.Error())
				}
				args = b
			}
			h, err := build(path, yh.Kind, args)
			if err != nil {
				return nil, err
			}
			if err := r.Add(path, h); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Load reads a hint file, choosing the YAML reader for .yaml/.yml.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hints: read %q: %w", path, err)
	}
	var r *Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		r, err = ParseYAML(data)
	default:
		r, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("hints: %s: %w", path, err)
	}
	return r, nil
}

func build(path, kind string, args []byte) (Hint, error) {
	h, ok := newHint(Kind(kind))
	if !ok {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeUnknownHintKind, path,
			"unknown hint kind", "kind", kind)
	}
	if len(args) == 0 || string(args) == "null" {
		return h, nil
	}
	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(h); err != nil {
		return nil, schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, path,
			"invalid arguments: "+err.Error(), "kind", kind)
	}
	return h, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
