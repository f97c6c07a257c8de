package hints

import (
	"slices"
	"strings"

	"github.com/reoring/schemagen/internal/naming"
	"github.com/reoring/schemagen/schemaerr"
)

// Registry maps node paths to hints. A nil *Registry is valid and empty.
// Registries are read-only once loaded and may be shared across runs.
type Registry struct {
	entries map[string][]Hint
	folded  map[string]string // lower-cased path -> path as written
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: map[string][]Hint{}, folded: map[string]string{}}
}

// Add appends hints under path. A path carries at most one hint of each kind.
func (r *Registry) Add(path string, hs ...Hint) error {
	if path == "" {
		return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, path, "empty hint path")
	}
	key := strings.ToLower(path)
	if prev, ok := r.folded[key]; ok && prev != path {
		return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeDuplicateHint, path,
			"path differs from an existing entry only by case", "existing", prev)
	}
	list := r.entries[path]
	for _, h := range hs {
		if msg := validate(h); msg != "" {
			return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeInvalidHint, path, msg)
		}
		if slices.ContainsFunc(list, func(x Hint) bool { return x.Kind() == h.Kind() }) {
			return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeDuplicateHint, path,
				"more than one hint of the same kind", "kind", string(h.Kind()))
		}
		list = append(list, h)
	}
	r.entries[path] = list
	r.folded[key] = path
	return nil
}

// Lookup returns the hints registered for path in configuration order, or
// nil. An exact match wins; otherwise the path is matched ignoring case.
func (r *Registry) Lookup(path string) []Hint {
	if r == nil {
		return nil
	}
	if hs, ok := r.entries[path]; ok {
		return hs
	}
	if p, ok := r.folded[strings.ToLower(path)]; ok {
		return r.entries[p]
	}
	return nil
}

// TypeHints returns the hints attached to a generated type.
func (r *Registry) TypeHints(typeName string) []Hint {
	return r.Lookup(TypePath(typeName))
}

// PropertyHints returns the hints attached to one property of a type.
func (r *Registry) PropertyHints(typeName, propertyName string) []Hint {
	return r.Lookup(PropertyPath(typeName, propertyName))
}

// Paths returns every registered path, sorted.
func (r *Registry) Paths() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.entries))
	for p := range r.entries {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Len reports the number of registered paths.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// TypePath is the registry key of a type-level hint.
func TypePath(typeName string) string { return naming.LowerCamel(typeName) }

// PropertyPath is the registry key of a property-level hint.
func PropertyPath(typeName, propertyName string) string { return typeName + "." + propertyName }

// Find returns the first hint of type T in hs.
func Find[T Hint](hs []Hint) (T, bool) {
	for _, h := range hs {
		if v, ok := h.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether hs contains a hint of type T.
func Has[T Hint](hs []Hint) bool {
	_, ok := Find[T](hs)
	return ok
}
