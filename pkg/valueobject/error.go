package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shandysiswandi/govo/pkg/goerror"
)

var (
	// ErrFieldNotFound is returned by accessors for a field the record does not hold.
	ErrFieldNotFound = fmt.Errorf("valueobject: field not found (%w)", goerror.ErrNotFound)

	// ErrFieldType is returned by As when the stored value has another type.
	ErrFieldType = fmt.Errorf("valueobject: field type mismatch (%w)", goerror.ErrInvalidType)
)

// ValidationError is returned when constructing a record fails. It carries
// every violation, keyed by field.
type ValidationError struct {
	violations Violations
}

func newValidationError(v *Violations) *ValidationError {
	return &ValidationError{violations: v.clone()}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	b, err := json.Marshal(e.JoinedMessages())
	if err != nil {
		return fmt.Sprintf("value object validation failed (failed to marshal: %v)", err)
	}
	return "value object validation failed: " + string(b)
}

// Messages returns field to ordered message list for every invalid field.
func (e *ValidationError) Messages() map[string][]string {
	return e.violations.Messages()
}

// JoinedMessages returns field to its messages joined by a single space.
func (e *ValidationError) JoinedMessages() map[string]string {
	return e.violations.JoinedMessages()
}

// Fields returns the invalid fields in the order they were reported.
func (e *ValidationError) Fields() []string {
	return e.violations.Fields()
}

// Violations returns a copy of the violation collection.
func (e *ValidationError) Violations() *Violations {
	v := e.violations.clone()
	return &v
}

// Unwrap exposes the failure as a validation-typed *goerror.Error whose
// fields are the joined messages.
func (e *ValidationError) Unwrap() error {
	return goerror.NewInvalidFields(e.JoinedMessages())
}

// AsValidationError returns the *ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidationError reports whether err's chain holds a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
