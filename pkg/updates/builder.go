package updates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when no candidate survives allow-list filtering.
// Callers map it to a 400, never a 500.
var ErrNoFields = errors.New("no valid fields to update")

// Field is one surviving update entry. A nil Value persists as NULL; entries
// for keys absent from the request never exist in the first place, which is
// how "explicit null" and "omitted" stay distinguishable.
type Field struct {
	Name  string
	Value interface{}
}

// FieldList is an ordered set of surviving update entries
type FieldList []Field

// Builder filters caller-supplied field maps against a fixed allow-list and
// renders them as backend-appropriate mutations. Only allow-listed column
// names ever reach query text; values travel as parameters.
type Builder struct {
	allowed map[string]struct{}
}

// NewBuilder creates a builder scoped to the given allow-list
func NewBuilder(allowed ...string) *Builder {
	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}
	return &Builder{allowed: set}
}

// Filter keeps candidates whose key is allow-listed, preserving input order.
// Returns ErrNoFields when nothing survives.
func (b *Builder) Filter(candidates []Candidate) (FieldList, error) {
	fields := make(FieldList, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := b.allowed[c.Name]; !ok {
			continue
		}
		fields = append(fields, Field{Name: c.Name, Value: c.Value})
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return fields, nil
}

// SetClause renders the relational mutation: ordered "col = ?" fragments with
// a matching argument list, plus a timestamp touch. The caller appends the
// identifier as the final parameter.
func (fl FieldList) SetClause() (string, []interface{}) {
	fragments := make([]string, 0, len(fl)+1)
	args := make([]interface{}, 0, len(fl))
	for _, f := range fl {
		fragments = append(fragments, fmt.Sprintf("%s = ?", f.Name))
		args = append(args, f.Value)
	}
	fragments = append(fragments, "updated_at = CURRENT_TIMESTAMP")
	return strings.Join(fragments, ", "), args
}

// Document renders the document mutation: a plain field map merged into the
// stored record. No automatic timestamp on this backend.
func (fl FieldList) Document() map[string]interface{} {
	doc := make(map[string]interface{}, len(fl))
	for _, f := range fl {
		doc[f.Name] = f.Value
	}
	return doc
}
