// Package schemaerr defines the error model shared by every stage of the
// schema compiler. All errors are fatal to a run; callers classify them with
// errors.Is against the Err* sentinels or inspect the *Error directly.
package schemaerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure. Each kind has a matching sentinel below.
type Kind string

const (
	KindSchemaShape           Kind = "schema_shape"
	KindSchemaCycle           Kind = "schema_cycle"
	KindPropertyConflict      Kind = "property_conflict"
	KindPropertyNameCollision Kind = "property_name_collision"
	KindHintConfig            Kind = "hint_config"
	KindEnumHintCountMismatch Kind = "enum_hint_count_mismatch"
	KindOutputConflict        Kind = "output_conflict"
	KindNameCollision         Kind = "name_collision"
	KindSettings              Kind = "settings"
)

// Fine-grained codes. A code always belongs to exactly one Kind.
const (
	CodeNotAnObject           = "not_an_object"
	CodeNotAType              = "not_a_type"
	CodeMissingArrayItems     = "missing_array_items"
	CodeUnresolvedRef         = "unresolved_ref"
	CodeUnsupportedRef        = "unsupported_ref"
	CodeInvalidSchema         = "invalid_schema"
	CodeRefCycle              = "ref_cycle"
	CodeAllOfConflict         = "allof_conflict"
	CodeFieldCollision        = "field_collision"
	CodeUnknownHintKind       = "unknown_hint_kind"
	CodeInvalidHint           = "invalid_hint"
	CodeDuplicateHint         = "duplicate_hint"
	CodeMisappliedHint        = "misapplied_hint"
	CodeUnsupportedAdditional = "unsupported_additional_type"
	CodeNestedAdditional      = "unsupported_nested_additional_type"
	CodeEnumCountMismatch     = "enum_count_mismatch"
	CodeOutputExists          = "output_exists"
	CodeDuplicateType         = "duplicate_type"
	CodeInvalidSetting        = "invalid_setting"
)

var (
	ErrSchemaShape           = errors.New("schema shape error")
	ErrSchemaCycle           = errors.New("schema cycle")
	ErrPropertyConflict      = errors.New("property conflict")
	ErrPropertyNameCollision = errors.New("property name collision")
	ErrHintConfig            = errors.New("hint configuration error")
	ErrEnumHintCountMismatch = errors.New("enum hint count mismatch")
	ErrOutputConflict        = errors.New("output conflict")
	ErrNameCollision         = errors.New("generated type name collision")
	ErrSettings              = errors.New("invalid settings")
)

var sentinels = map[Kind]error{
	KindSchemaShape:           ErrSchemaShape,
	KindSchemaCycle:           ErrSchemaCycle,
	KindPropertyConflict:      ErrPropertyConflict,
	KindPropertyNameCollision: ErrPropertyNameCollision,
	KindHintConfig:            ErrHintConfig,
	KindEnumHintCountMismatch: ErrEnumHintCountMismatch,
	KindOutputConflict:        ErrOutputConflict,
	KindNameCollision:         ErrNameCollision,
	KindSettings:              ErrSettings,
}

// Error is a single user-actionable failure.
type Error struct {
	Kind    Kind
	Code    string
	Path    string // type name, "Type.property", JSON pointer or file path
	Message string
	// Params carries the offending values (counts, names) for callers that
	// want to render their own message.
	Params map[string]any
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(string(e.Kind))
	if e.Code != "" {
		fmt.Fprintf(b, " (%s)", e.Code)
	}
	if e.Path != "" {
		fmt.Fprintf(b, " at %s", e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Params) > 0 {
		keys := make([]string, 0, len(e.Params))
		for k := range e.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(b, "%s=%v", k, e.Params[k])
		}
		b.WriteString("]")
	}
	return b.String()
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// New builds an *Error. kv is read as alternating key/value pairs.
func New(kind Kind, code, path, msg string, kv ...any) *Error {
	e := &Error{Kind: kind, Code: code, Path: path, Message: msg}
	for i := 0; i+1 < len(kv); i += 2 {
		if e.Params == nil {
			e.Params = map[string]any{}
		}
		e.Params[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return e
}

// Newf is New with a formatted message and no params.
func Newf(kind Kind, code, path, format string, a ...any) *Error {
	return &Error{Kind: kind, Code: code, Path: path, Message: fmt.Sprintf(format, a...)}
}

// As extracts an *Error from err using errors.As.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err carries the given fine-grained code.
func HasCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
