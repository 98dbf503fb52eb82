package valueobject

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/shandysiswandi/govo/internal/pkg/strcase"
	"github.com/shandysiswandi/govo/pkg/constraint"
	"github.com/shandysiswandi/govo/pkg/goerror"
)

// MessageRequired is the violation recorded for a declared field that is
// missing from the parameters or nil.
const MessageRequired = "This parameter is required."

// Record is an immutable set of validated fields. A *Record is only ever
// obtained from a successful construction.
type Record struct {
	name   string
	fields []string
	values map[string]any
}

// New validates params against rules and returns the record of every
// declared field, or a *ValidationError listing all violations.
//
// For each rule, in order, a missing (or nil) parameter yields
// MessageRequired; any other value is passed to the engine with the rule's
// constraints. The after-validation hook then runs with the raw parameters.
// Parameters without a rule are ignored.
func New(rules Rules, params map[string]any, opts ...Option) (*Record, error) {
	o := newOptions(opts)

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	engine := o.engine
	if engine == nil {
		e, err := constraint.Default()
		if err != nil {
			return nil, goerror.NewServer(fmt.Errorf("valueobject: default engine: %w", err))
		}
		engine = e
	}

	var violations Violations
	r := &Record{
		name:   o.name,
		fields: make([]string, 0, len(rules)),
		values: make(map[string]any, len(rules)),
	}

	for _, rule := range rules {
		value, ok := params[rule.Field]
		if !ok || value == nil {
			violations.Add(rule.Field, MessageRequired)
			continue
		}

		if vs := engine.Validate(value, rule.Constraints...); len(vs) > 0 {
			violations.append(rule.Field, vs...)
			continue
		}

		r.fields = append(r.fields, rule.Field)
		r.values[rule.Field] = value
	}

	if o.afterValidation != nil {
		o.afterValidation(maps.Clone(params), violations.Add)
	}

	o.metrics.record(o.name, violations.Count())

	if !violations.IsEmpty() {
		o.logger.Debug("value object validation failed",
			"record", o.name,
			"fields", violations.Fields(),
			"violations", violations.Count(),
		)
		return nil, newValidationError(&violations)
	}

	return r, nil
}

// TypeName returns the record type name given by WithName or a Schema.
func (r *Record) TypeName() string {
	return r.name
}

// Get returns the value of field and whether the record holds it.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the record holds field.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Value returns the value of field, or ErrFieldNotFound.
func (r *Record) Value(field string) (any, error) {
	v, ok := r.values[field]
	if !ok {
		return nil, goerror.NewNotFound(ErrFieldNotFound, field)
	}
	return v, nil
}

// Call resolves a getter name to a field and returns its value:
// "GetConfirmPassword" reads "confirmPassword".
func (r *Record) Call(accessor string) (any, error) {
	return r.Value(strcase.AccessorField(accessor))
}

// Fields returns the stored field names in declaration order.
func (r *Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Len returns the number of stored fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// ToMap returns a copy of the validated field to value mapping.
func (r *Record) ToMap() JSONMap {
	return JSONMap(maps.Clone(r.values))
}

// MarshalJSON encodes the record as a JSON object in declaration order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[field])
		if err != nil {
			return nil, fmt.Errorf("valueobject: marshal field %s: %w", field, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// As returns the value of field as T. It fails with ErrFieldNotFound when
// the record does not hold field and ErrFieldType when the value is not a T.
func As[T any](r *Record, field string) (T, error) {
	var zero T

	v, err := r.Value(field)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, goerror.NewInvalidType(ErrFieldType, fmt.Sprintf("%s is %T, not %T", field, v, zero))
	}
	return t, nil
}
