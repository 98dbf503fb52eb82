package constraint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConstraint indicates a constraint that cannot be evaluated, such
// as the zero Constraint or a Length whose max is below its min.
var ErrInvalidConstraint = errors.New("constraint: invalid constraint")

// Kind identifies which check a Constraint performs.
type Kind uint8

const (
	// KindCustom marks violations that were not produced by a constraint,
	// for example a missing parameter or a cross-field check.
	KindCustom Kind = iota
	KindNotBlank
	KindEmail
	KindLength
	KindType
	KindURL
	KindUUID
	KindChoice
	KindRange
)

// String returns the declaration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotBlank:
		return "NotBlank"
	case KindEmail:
		return "Email"
	case KindLength:
		return "Length"
	case KindType:
		return "Type"
	case KindURL:
		return "Url"
	case KindUUID:
		return "Uuid"
	case KindChoice:
		return "Choice"
	case KindRange:
		return "Range"
	default:
		return "Custom"
	}
}

// Type names accepted by Type. Any other name never matches.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeNumber = "number"
	TypeBool   = "bool"
	TypeSlice  = "slice"
	TypeMap    = "map"
)

// Constraint is a single checkable condition on a field value.
//
// The zero value is not a valid constraint; use the constructors.
type Constraint struct {
	kind Kind

	// Length bounds in characters (or items for slices and maps); 0 means unbounded.
	minLen, maxLen int

	// Range bounds.
	lo, hi       float64
	hasLo, hasHi bool

	typeName string
	choices  []string
}

// NotBlank requires a value that is neither nil, zero, nor a whitespace-only string.
func NotBlank() Constraint {
	return Constraint{kind: KindNotBlank}
}

// Email requires a valid email address. Empty strings are skipped.
func Email() Constraint {
	return Constraint{kind: KindEmail}
}

// Length bounds the length of a value. A bound of 0 is not checked. Empty
// strings are skipped; combine with NotBlank to require a value.
func Length(min, max int) Constraint {
	return Constraint{kind: KindLength, minLen: min, maxLen: max}
}

// MinLength is Length(min, 0).
func MinLength(min int) Constraint {
	return Length(min, 0)
}

// MaxLength is Length(0, max).
func MaxLength(max int) Constraint {
	return Length(0, max)
}

// ExactLength is Length(n, n).
func ExactLength(n int) Constraint {
	return Length(n, n)
}

// Type requires the value to be of the named type. See the Type* constants.
func Type(name string) Constraint {
	return Constraint{kind: KindType, typeName: strings.ToLower(strings.TrimSpace(name))}
}

// URL requires an absolute URL. Empty strings are skipped.
func URL() Constraint {
	return Constraint{kind: KindURL}
}

// UUID requires a UUID in canonical textual form. Empty strings are skipped.
func UUID() Constraint {
	return Constraint{kind: KindUUID}
}

// Choice requires the value, in its string form, to equal one of values.
func Choice(values ...string) Constraint {
	return Constraint{kind: KindChoice, choices: append([]string(nil), values...)}
}

// Range requires a number (or numeric string) between min and max inclusive.
func Range(min, max float64) Constraint {
	return Constraint{kind: KindRange, lo: min, hi: max, hasLo: true, hasHi: true}
}

// Min requires a number (or numeric string) greater than or equal to min.
func Min(min float64) Constraint {
	return Constraint{kind: KindRange, lo: min, hasLo: true}
}

// Max requires a number (or numeric string) less than or equal to max.
func Max(max float64) Constraint {
	return Constraint{kind: KindRange, hi: max, hasHi: true}
}

// Kind returns the constraint kind.
func (c Constraint) Kind() Kind {
	return c.kind
}

// Validate reports whether the constraint is well formed.
func (c Constraint) Validate() error {
	switch c.kind {
	case KindNotBlank, KindEmail, KindURL, KindUUID:
		return nil
	case KindLength:
		if c.minLen < 0 || c.maxLen < 0 {
			return fmt.Errorf("%w: Length bounds must not be negative", ErrInvalidConstraint)
		}
		if c.minLen == 0 && c.maxLen == 0 {
			return fmt.Errorf("%w: Length needs min or max", ErrInvalidConstraint)
		}
		if c.maxLen > 0 && c.maxLen < c.minLen {
			return fmt.Errorf("%w: Length max %d is below min %d", ErrInvalidConstraint, c.maxLen, c.minLen)
		}
		return nil
	case KindType:
		if c.typeName == "" {
			return fmt.Errorf("%w: Type needs a type name", ErrInvalidConstraint)
		}
		return nil
	case KindChoice:
		if len(c.choices) == 0 {
			return fmt.Errorf("%w: Choice needs at least one value", ErrInvalidConstraint)
		}
		return nil
	case KindRange:
		if c.hasLo && c.hasHi && c.hi < c.lo {
			return fmt.Errorf("%w: Range max %s is below min %s", ErrInvalidConstraint, formatFloat(c.hi), formatFloat(c.lo))
		}
		return nil
	default:
		return fmt.Errorf("%w: zero constraint", ErrInvalidConstraint)
	}
}

// String renders the constraint in declaration form, e.g. Length(min=5).
func (c Constraint) String() string {
	var opts []string
	switch c.kind {
	case KindLength:
		if c.minLen > 0 {
			opts = append(opts, "min="+strconv.Itoa(c.minLen))
		}
		if c.maxLen > 0 {
			opts = append(opts, "max="+strconv.Itoa(c.maxLen))
		}
	case KindType:
		opts = append(opts, "type="+c.typeName)
	case KindChoice:
		opts = append(opts, "choices="+strings.Join(c.choices, "|"))
	case KindRange:
		if c.hasLo {
			opts = append(opts, "min="+formatFloat(c.lo))
		}
		if c.hasHi {
			opts = append(opts, "max="+formatFloat(c.hi))
		}
	}

	if len(opts) == 0 {
		return c.kind.String()
	}
	return c.kind.String() + "(" + strings.Join(opts, ", ") + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
