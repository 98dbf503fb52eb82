package valueobject

import (
	"strings"

	"github.com/samber/lo"

	"github.com/shandysiswandi/govo/pkg/constraint"
)

// Violations collects violations per field. Fields keep the order in which
// they first received a violation. The zero value is ready to use.
type Violations struct {
	order  []string
	fields map[string][]constraint.Violation
}

// Add appends a custom violation message to field, creating its list if absent.
func (v *Violations) Add(field, message string) {
	v.append(field, constraint.Violation{Kind: constraint.KindCustom, Message: message})
}

func (v *Violations) append(field string, vs ...constraint.Violation) {
	if len(vs) == 0 {
		return
	}

	if v.fields == nil {
		v.fields = make(map[string][]constraint.Violation)
	}
	if _, ok := v.fields[field]; !ok {
		v.order = append(v.order, field)
	}
	v.fields[field] = append(v.fields[field], vs...)
}

// IsEmpty reports whether no field has a violation.
func (v *Violations) IsEmpty() bool {
	return len(v.order) == 0
}

// Len returns the number of fields with at least one violation.
func (v *Violations) Len() int {
	return len(v.order)
}

// Count returns the total number of violations across all fields.
func (v *Violations) Count() int {
	return lo.SumBy(v.order, func(field string) int {
		return len(v.fields[field])
	})
}

// Has reports whether field has at least one violation.
func (v *Violations) Has(field string) bool {
	_, ok := v.fields[field]
	return ok
}

// Fields returns the fields with violations in insertion order.
func (v *Violations) Fields() []string {
	return append([]string(nil), v.order...)
}

// Get returns a copy of the violations recorded for field.
func (v *Violations) Get(field string) []constraint.Violation {
	return append([]constraint.Violation(nil), v.fields[field]...)
}

// Messages returns field to ordered message list.
func (v *Violations) Messages() map[string][]string {
	out := make(map[string][]string, len(v.order))
	for _, field := range v.order {
		out[field] = lo.Map(v.fields[field], func(vi constraint.Violation, _ int) string {
			return vi.Message
		})
	}
	return out
}

// JoinedMessages returns field to its messages joined by a single space.
func (v *Violations) JoinedMessages() map[string]string {
	return lo.MapValues(v.Messages(), func(msgs []string, _ string) string {
		return strings.Join(msgs, " ")
	})
}

func (v *Violations) clone() Violations {
	out := Violations{order: v.Fields()}
	if v.fields != nil {
		out.fields = make(map[string][]constraint.Violation, len(v.fields))
		for field, vs := range v.fields {
			out.fields[field] = append([]constraint.Violation(nil), vs...)
		}
	}
	return out
}
