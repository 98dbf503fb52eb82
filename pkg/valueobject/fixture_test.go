package valueobject_test

import (
	"reflect"

	"github.com/shandysiswandi/govo/pkg/constraint"
	"github.com/shandysiswandi/govo/pkg/valueobject"
)

const msgPasswordsDiffer = "This value must be equal to password value."

func passwordConstraints() []constraint.Constraint {
	return []constraint.Constraint{
		constraint.NotBlank(),
		constraint.Type(constraint.TypeString),
		constraint.MinLength(8),
	}
}

func passwordsMatch(params map[string]any, addError func(field, message string)) {
	password, hasPassword := params["password"]
	confirm, hasConfirm := params["confirmPassword"]
	if hasPassword && hasConfirm && !reflect.DeepEqual(password, confirm) {
		addError("confirmPassword", msgPasswordsDiffer)
	}
}

var signupSchema = valueobject.Schema{
	Name: "signup",
	Rules: valueobject.Rules{
		valueobject.Field("name", constraint.NotBlank(), constraint.MinLength(5)),
		valueobject.Field("email", constraint.NotBlank(), constraint.Email(), constraint.MinLength(10)),
		valueobject.Field("password", passwordConstraints()...),
		valueobject.Field("confirmPassword", passwordConstraints()...),
	},
	AfterValidation: passwordsMatch,
}

// signup is a concrete record type with compile-time checked getters.
type signup struct{ *valueobject.Record }

func newSignup(params map[string]any) (signup, error) {
	r, err := signupSchema.New(params)
	if err != nil {
		return signup{}, err
	}
	return signup{r}, nil
}

func (s signup) Name() string {
	v, _ := valueobject.As[string](s.Record, "name")
	return v
}

func (s signup) Email() string {
	v, _ := valueobject.As[string](s.Record, "email")
	return v
}

func (s signup) Password() string {
	v, _ := valueobject.As[string](s.Record, "password")
	return v
}

var messageSchema = valueobject.Schema{
	Name: "message",
	Rules: valueobject.Rules{
		valueobject.Field("message", constraint.NotBlank()),
	},
}

func validSignupParams() map[string]any {
	return map[string]any{
		"name":            "Mister Q",
		"email":           "mister.q@mi6.com",
		"password":        "11112222",
		"confirmPassword": "11112222",
	}
}
