package constraint

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	// ErrTranslatorNotFound indicates the requested translator is unavailable.
	ErrTranslatorNotFound = errors.New("translator not found")

	// ErrUndefinedTag indicates a validator tag the engine never registered.
	ErrUndefinedTag = errors.New("constraint: undefined validator tag")
)

// undefinedValidation is the prefix of the panic validator raises for an
// unregistered tag.
const undefinedValidation = "Undefined validation function"

const (
	tagNotBlank = "notblank"
	tagTypeOf   = "typeof"
	tagChoice  = "choice"
	tagNumeric = "numeric_value"
	tagRange   = "num_range"

	// paramSep separates list items inside a tag parameter. The validator tag
	// parser only reserves ',', '|' and '='.
	paramSep = "\x1f"
)

// V10Engine implements Engine using go-playground/validator v10.
type V10Engine struct {
	validate   *validator.Validate
	translator ut.Translator
	logger     *slog.Logger
}

// EngineOption configures a V10Engine.
type EngineOption func(*V10Engine)

// WithLogger sets the logger used to report recovered validator panics and
// missing translations. Defaults to slog.Default().
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *V10Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewV10Engine constructs a V10Engine with English messages and the custom
// checks used by Type, Choice and Range.
func NewV10Engine(opts ...EngineOption) (*V10Engine, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := registerEnMessages(enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate); err != nil {
		return nil, err
	}

	if err := checkTags(validate); err != nil {
		return nil, err
	}

	e := &V10Engine{
		validate:   validate,
		translator: enTrans,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Validate evaluates value against each constraint in order and returns one
// violation per failing constraint.
func (e *V10Engine) Validate(value any, constraints ...Constraint) []Violation {
	violations := make([]Violation, 0)
	for _, c := range constraints {
		if v, failed := e.Check(value, c); failed {
			violations = append(violations, v)
		}
	}

	return violations
}

// Check evaluates value against a single constraint. It returns the
// violation and true when the value breaks the constraint.
func (e *V10Engine) Check(value any, c Constraint) (Violation, bool) {
	if err := c.Validate(); err != nil {
		e.logger.Warn("constraint: invalid constraint evaluated", "constraint", c.String(), "error", err)
		return e.violation(c.kind, msgInvalid), true
	}

	switch c.kind {
	case KindNotBlank:
		return e.checkTag(value, tagNotBlank, c.kind, msgNotBlank)
	case KindEmail:
		return e.checkTag(value, "omitempty,email", c.kind, msgEmail)
	case KindURL:
		return e.checkTag(value, "omitempty,url", c.kind, msgURL)
	case KindUUID:
		return e.checkTag(value, "omitempty,uuid", c.kind, msgUUID)
	case KindType:
		return e.checkTag(value, tagTypeOf+"="+escapeParam(c.typeName), c.kind, msgType, c.typeName)
	case KindChoice:
		return e.checkTag(value, tagChoice+"="+escapeParam(strings.Join(c.choices, paramSep)), c.kind, msgChoice)
	case KindLength:
		return e.checkLength(value, c)
	case KindRange:
		return e.checkRange(value, c)
	}

	return Violation{}, false
}

func (e *V10Engine) checkLength(value any, c Constraint) (Violation, bool) {
	if c.minLen > 0 && c.minLen == c.maxLen {
		n := strconv.Itoa(c.minLen)
		return e.checkTag(value, "omitempty,len="+n, c.kind, msgLengthExact, e.characters(c.minLen))
	}

	if c.minLen > 0 && !e.pass(value, "omitempty,min="+strconv.Itoa(c.minLen)) {
		return e.violation(c.kind, msgLengthMin, e.characters(c.minLen)), true
	}

	if c.maxLen > 0 && !e.pass(value, "omitempty,max="+strconv.Itoa(c.maxLen)) {
		return e.violation(c.kind, msgLengthMax, e.characters(c.maxLen)), true
	}

	return Violation{}, false
}

func (e *V10Engine) checkRange(value any, c Constraint) (Violation, bool) {
	if !e.pass(value, tagNumeric) {
		return e.violation(c.kind, msgRangeNotValid), true
	}

	var lo, hi string
	if c.hasLo {
		lo = formatFloat(c.lo)
	}
	if c.hasHi {
		hi = formatFloat(c.hi)
	}

	if e.pass(value, tagRange+"="+escapeParam(lo+paramSep+hi)) {
		return Violation{}, false
	}

	switch {
	case c.hasLo && c.hasHi:
		return e.violation(c.kind, msgRangeBetween, lo, hi), true
	case c.hasLo:
		return e.violation(c.kind, msgRangeMin, lo), true
	default:
		return e.violation(c.kind, msgRangeMax, hi), true
	}
}

func (e *V10Engine) checkTag(value any, tag string, kind Kind, key string, params ...string) (Violation, bool) {
	if e.pass(value, tag) {
		return Violation{}, false
	}

	return e.violation(kind, key, params...), true
}

// pass runs a single validator tag. Some baked-in validators panic on kinds
// they do not support (url on an int, min on a bool); those count as failures.
// An unregistered tag is a programming error and keeps panicking.
func (e *V10Engine) pass(value any, tag string) (ok bool) {
	defer func() {
		if rvr := recover(); rvr != nil {
			if isUndefinedTag(rvr) {
				panic(rvr)
			}
			e.logger.Debug("constraint: validator rejected value kind",
				"tag", tag, "value_type", fmt.Sprintf("%T", value), "panic", rvr)
			ok = false
		}
	}()

	return e.validate.Var(value, tag) == nil
}

func (e *V10Engine) violation(kind Kind, key string, params ...string) Violation {
	msg, err := e.translator.T(key, params...)
	if err != nil {
		e.logger.Warn("warning: error translating", "key", key, "error", err)
		msg = key
	}

	return Violation{Kind: kind, Message: msg}
}

func (e *V10Engine) characters(n int) string {
	f := float64(n)
	s, err := e.translator.C(msgCharacter, f, 0, e.translator.FmtNumber(f, 0))
	if err != nil {
		e.logger.Warn("warning: error translating", "key", msgCharacter, "error", err)
		return strconv.Itoa(n) + " characters"
	}

	return s
}

func isUndefinedTag(rvr any) bool {
	msg, ok := rvr.(string)
	return ok && strings.HasPrefix(msg, undefinedValidation)
}

// checkTags runs every tag the engine emits once so a missing registration
// fails construction instead of the first Validate call.
func checkTags(validate *validator.Validate) (err error) {
	tags := []string{
		tagNotBlank,
		"omitempty,email",
		"omitempty,url",
		"omitempty,uuid",
		"omitempty,len=1",
		"omitempty,min=1",
		"omitempty,max=1",
		tagTypeOf + "=" + TypeString,
		tagChoice + "=x",
		tagNumeric,
		tagRange + "=0" + paramSep + "1",
	}

	for _, tag := range tags {
		func() {
			defer func() {
				if rvr := recover(); rvr != nil && isUndefinedTag(rvr) {
					err = fmt.Errorf("%w: %s", ErrUndefinedTag, tag)
				}
			}()
			_ = validate.Var("x", tag)
		}()
		if err != nil {
			return err
		}
	}

	return nil
}

func escapeParam(p string) string {
	p = strings.ReplaceAll(p, ",", "0x2C")
	return strings.ReplaceAll(p, "|", "0x7C")
}

func v10CustomValidation(validate *validator.Validate) error {
	if err := validate.RegisterValidation(tagNotBlank, validators.NotBlank); err != nil {
		return err
	}

	if err := validate.RegisterValidation(tagTypeOf, isTypeOf); err != nil {
		return err
	}

	if err := validate.RegisterValidation(tagChoice, func(fl validator.FieldLevel) bool {
		got := fmt.Sprint(fl.Field().Interface())
		for _, want := range strings.Split(fl.Param(), paramSep) {
			if got == want {
				return true
			}
		}
		return false
	}); err != nil {
		return err
	}

	if err := validate.RegisterValidation(tagNumeric, func(fl validator.FieldLevel) bool {
		_, ok := numericValue(fl.Field())
		return ok
	}); err != nil {
		return err
	}

	return validate.RegisterValidation(tagRange, func(fl validator.FieldLevel) bool {
		n, ok := numericValue(fl.Field())
		if !ok {
			return false
		}

		lo, hi, _ := strings.Cut(fl.Param(), paramSep)
		if lo != "" {
			if min, err := strconv.ParseFloat(lo, 64); err != nil || n < min {
				return false
			}
		}
		if hi != "" {
			if max, err := strconv.ParseFloat(hi, 64); err != nil || n > max {
				return false
			}
		}
		return true
	})
}

func isTypeOf(fl validator.FieldLevel) bool {
	kind := fl.Field().Kind()

	switch fl.Param() {
	case TypeString:
		return kind == reflect.String
	case TypeInt:
		return isIntKind(kind)
	case TypeFloat:
		return kind == reflect.Float32 || kind == reflect.Float64
	case TypeNumber:
		return isIntKind(kind) || kind == reflect.Float32 || kind == reflect.Float64
	case TypeBool:
		return kind == reflect.Bool
	case TypeSlice:
		return kind == reflect.Slice || kind == reflect.Array
	case TypeMap:
		return kind == reflect.Map
	default:
		return false
	}
}

func isIntKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func numericValue(field reflect.Value) (float64, bool) {
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(field.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(field.Uint()), true
	case reflect.Float32, reflect.Float64:
		return field.Float(), true
	case reflect.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(field.String()), 64)
		return n, err == nil
	default:
		return 0, false
	}
}
