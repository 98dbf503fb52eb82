// Package valueobject builds immutable records from loosely typed parameter
// maps after validating every declared field.
//
// A concrete record type declares its fields once, as an ordered Rules value
// (usually inside a Schema), and embeds *Record:
//
//	var signupSchema = valueobject.Schema{
//	    Name: "signup",
//	    Rules: valueobject.Rules{
//	        valueobject.Field("name", constraint.NotBlank(), constraint.MinLength(5)),
//	        valueobject.Field("email", constraint.NotBlank(), constraint.Email()),
//	    },
//	}
//
//	type Signup struct{ *valueobject.Record }
//
//	func NewSignup(params map[string]any) (Signup, error) {
//	    r, err := signupSchema.New(params)
//	    if err != nil {
//	        return Signup{}, err
//	    }
//	    return Signup{r}, nil
//	}
//
//	func (s Signup) Name() string { v, _ := valueobject.As[string](s.Record, "name"); return v }
//
// Construction either returns a fully valid record or a *ValidationError that
// carries every violation, keyed by field, in declaration order. Missing
// fields are reported as "This parameter is required."; everything else is
// reported with the constraint engine's message. An optional
// AfterValidationFunc adds cross-field violations through its addError
// callback.
package valueobject
