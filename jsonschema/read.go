package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// object is the order-preserving decoded form of a JSON/YAML mapping.
type object = sequencedmap.Map[string, any]

// Parse reads a JSON schema document.
func Parse(data []byte) (*Schema, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a JSON schema document from r. Member order is preserved so
// that properties and definitions keep their declaration order.
func Decode(r io.Reader) (*Schema, error) {
	v, err := decodeJSON(r)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// ReadFile reads a schema from disk, picking the YAML reader for .yaml/.yml
// and the JSON reader otherwise.
func ReadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: read %q: %w", path, err)
	}
	var s *Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ParseYAML(data)
	default:
		s, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonschema: %s: %w", path, err)
	}
	return s, nil
}

// DecodeValue reads any JSON document into the ordered value form used by
// FromValue: mappings become ordered maps, numbers stay json.Number.
func DecodeValue(r io.Reader) (any, error) {
	return decodeJSON(r)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return nil, errors.New("invalid JSON: trailing data after document")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("invalid JSON: unexpected end of input")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			m := sequencedmap.New[string, any]()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("invalid JSON: %w", err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("invalid JSON: object key %v is not a string", kt)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				if m.Has(key) {
					return nil, fmt.Errorf("invalid JSON: duplicate key %q", key)
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return m, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("invalid JSON: unexpected delimiter %q", rune(v))
		}
	case string, bool, json.Number, nil:
		return v, nil
	case float64:
		return json.Number(fmt.Sprint(v)), nil
	default:
		return nil, fmt.Errorf("invalid JSON: unexpected token %T", tok)
	}
}
