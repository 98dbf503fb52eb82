package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

var (
	// ErrUnknownConstraint indicates a declaration naming no known constraint.
	ErrUnknownConstraint = errors.New("constraint: unknown constraint")

	// ErrInvalidOptions indicates a declaration whose options cannot be decoded.
	ErrInvalidOptions = errors.New("constraint: invalid options")
)

// Parse resolves a declaration name and its options into a Constraint.
// Names are matched case-insensitively:
//
//	NotBlank, Email, Url, Uuid
//	Length  {min, max}
//	Type    {type}
//	Choice  {choices}
//	Range   {min, max}
func Parse(name string, options map[string]any) (Constraint, error) {
	var c Constraint

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "notblank":
		c = NotBlank()
	case "email":
		c = Email()
	case "url":
		c = URL()
	case "uuid":
		c = UUID()
	case "length":
		min, err := intOption(options, "min")
		if err != nil {
			return Constraint{}, err
		}
		max, err := intOption(options, "max")
		if err != nil {
			return Constraint{}, err
		}
		c = Length(min, max)
	case "type":
		typeName, err := cast.ToStringE(options["type"])
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: Type.type: %v", ErrInvalidOptions, err)
		}
		c = Type(typeName)
	case "choice":
		choices, err := cast.ToStringSliceE(options["choices"])
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: Choice.choices: %v", ErrInvalidOptions, err)
		}
		c = Choice(choices...)
	case "range":
		c = Constraint{kind: KindRange}
		if v, ok := options["min"]; ok {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return Constraint{}, fmt.Errorf("%w: Range.min: %v", ErrInvalidOptions, err)
			}
			c.lo, c.hasLo = f, true
		}
		if v, ok := options["max"]; ok {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return Constraint{}, fmt.Errorf("%w: Range.max: %v", ErrInvalidOptions, err)
			}
			c.hi, c.hasHi = f, true
		}
		if !c.hasLo && !c.hasHi {
			return Constraint{}, fmt.Errorf("%w: Range needs min or max", ErrInvalidOptions)
		}
	default:
		return Constraint{}, fmt.Errorf("%w: %q", ErrUnknownConstraint, name)
	}

	if err := c.Validate(); err != nil {
		return Constraint{}, err
	}

	return c, nil
}

// ParseDecl resolves one entry of a declarative rule list. An entry is either
// a bare name ("NotBlank") or a single-key map from name to options
// ({"Length": {"min": 5}}), which is what YAML and JSON decoders produce.
func ParseDecl(decl any) (Constraint, error) {
	switch d := decl.(type) {
	case string:
		return Parse(d, nil)
	case Constraint:
		return d, d.Validate()
	}

	m, err := cast.ToStringMapE(decl)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: unsupported declaration %T", ErrInvalidOptions, decl)
	}
	if len(m) != 1 {
		return Constraint{}, fmt.Errorf("%w: declaration must have exactly one name, got %d", ErrInvalidOptions, len(m))
	}

	for name, raw := range m {
		if raw == nil {
			return Parse(name, nil)
		}

		opts, err := cast.ToStringMapE(raw)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: %s options: %v", ErrInvalidOptions, name, err)
		}
		return Parse(name, lowerKeys(opts))
	}

	return Constraint{}, ErrInvalidOptions
}

// ParseDecls resolves an ordered list of declarations.
func ParseDecls(decls []any) ([]Constraint, error) {
	out := make([]Constraint, 0, len(decls))
	for i, d := range decls {
		c, err := ParseDecl(d)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func intOption(options map[string]any, key string) (int, error) {
	v, ok := options[key]
	if !ok || v == nil {
		return 0, nil
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, key, err)
	}
	return n, nil
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
