package infer

import (
	"slices"

	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/jsonschema"
	"github.com/reoring/schemagen/schemaerr"
)

// AdditionalTypeRequest asks for a type that no schema definition provides.
type AdditionalTypeRequest struct {
	Hint   hints.Hint
	Schema *jsonschema.Schema
	Reason string // hint path that raised the request
}

// TypeName is the name of the requested type, or "" when the hint does not
// name one.
func (r AdditionalTypeRequest) TypeName() string {
	switch h := r.Hint.(type) {
	case *hints.EnumHint:
		return h.TypeName
	case *hints.ClassNameHint:
		return h.ClassName
	}
	return ""
}

// Queue collects additional-type requests in FIFO order. It is drained once;
// requests arriving after that are recorded and reported by Err.
type Queue struct {
	reqs    []AdditionalTypeRequest
	seen    map[string]AdditionalTypeRequest
	drained bool
	late    []AdditionalTypeRequest
}

func NewQueue() *Queue { return &Queue{seen: map[string]AdditionalTypeRequest{}} }

// Enqueue adds req unless a request for the same type name is already
// known. It reports whether req was added. Two enum requests for one name
// must agree on members and zero value.
func (q *Queue) Enqueue(req AdditionalTypeRequest) (bool, error) {
	if q.drained {
		q.late = append(q.late, req)
		return false, nil
	}
	name := req.TypeName()
	if prev, dup := q.seen[name]; dup {
		if !sameEnum(prev, req) {
			return false, schemaerr.New(schemaerr.KindNameCollision, schemaerr.CodeDuplicateType, req.Reason,
				"EnumHint disagrees with an earlier EnumHint of the same type", "type", name, "first", prev.Reason)
		}
		return false, nil
	}
	q.seen[name] = req
	q.reqs = append(q.reqs, req)
	return true, nil
}

// sameEnum compares the members and zero value two enum requests resolve
// to. Requests that are not enums always agree.
func sameEnum(a, b AdditionalTypeRequest) bool {
	ah, aok := a.Hint.(*hints.EnumHint)
	bh, bok := b.Hint.(*hints.EnumHint)
	if !aok || !bok {
		return aok == bok
	}
	return ah.ZeroValue == bh.ZeroValue && slices.Equal(enumMembers(ah, a.Schema), enumMembers(bh, b.Schema))
}

func enumMembers(eh *hints.EnumHint, s *jsonschema.Schema) []string {
	if len(eh.Enum) > 0 {
		return eh.Enum
	}
	return s.EnumStrings()
}

// Len reports the number of pending requests.
func (q *Queue) Len() int { return len(q.reqs) }

// Drain returns the pending requests in arrival order and closes the queue.
func (q *Queue) Drain() []AdditionalTypeRequest {
	out := q.reqs
	q.reqs = nil
	q.drained = true
	return out
}

// Err reports a request that arrived after Drain. Additional types that
// require further additional types are not supported.
func (q *Queue) Err() error {
	if len(q.late) == 0 {
		return nil
	}
	r := q.late[0]
	return schemaerr.New(schemaerr.KindHintConfig, schemaerr.CodeNestedAdditional, r.Reason,
		"an additional type cannot request another additional type", "type", r.TypeName())
}
