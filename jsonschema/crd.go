package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrCRDNotFound is returned when a bundle holds no matching
// CustomResourceDefinition.
var ErrCRDNotFound = errors.New("jsonschema: CustomResourceDefinition not found")

// FromCRD scans a multi-document YAML (or JSON) bundle and returns the
// openAPIV3Schema of the first CustomResourceDefinition whose
// spec.names.kind equals kind. An empty kind matches the first CRD.
//
// The schema of the first served version wins; when no version is served
// the first version with a schema is used, then the legacy
// spec.validation.openAPIV3Schema.
func FromCRD(data []byte, kind string) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		v, err := yamlNodeValue(&node)
		if err != nil {
			return nil, err
		}
		doc, ok := v.(*object)
		if !ok || str(doc, "kind") != "CustomResourceDefinition" {
			continue
		}
		spec := obj(doc, "spec")
		if kind != "" && str(obj(spec, "names"), "kind") != kind {
			continue
		}
		oas := crdSchema(spec)
		if oas == nil {
			return nil, fmt.Errorf("jsonschema: CRD %q has no openAPIV3Schema", str(obj(doc, "metadata"), "name"))
		}
		return FromValue(oas)
	}
	if kind == "" {
		return nil, ErrCRDNotFound
	}
	return nil, fmt.Errorf("%w: kind %q", ErrCRDNotFound, kind)
}

// ReadCRDFile reads a CRD bundle from disk. See FromCRD.
func ReadCRDFile(path, kind string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: read %q: %w", path, err)
	}
	s, err := FromCRD(data, kind)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: %s: %w", path, err)
	}
	return s, nil
}

func crdSchema(spec *object) *object {
	var first *object
	if versions, ok := get(spec, "versions").([]any); ok {
		for _, v := range versions {
			vm, _ := v.(*object)
			oas := obj(obj(vm, "schema"), "openAPIV3Schema")
			if oas == nil {
				continue
			}
			served, isBool := get(vm, "served").(bool)
			if !isBool || served {
				return oas
			}
			if first == nil {
				first = oas
			}
		}
	}
	if first != nil {
		return first
	}
	return obj(obj(spec, "validation"), "openAPIV3Schema")
}

func get(m *object, key string) any {
	if m == nil {
		return nil
	}
	v, _ := m.Get(key)
	return v
}

func obj(m *object, key string) *object {
	o, _ := get(m, key).(*object)
	return o
}

func str(m *object, key string) string {
	s, _ := get(m, key).(string)
	return s
}
