package valueobject

import (
	"fmt"

	"github.com/shandysiswandi/govo/internal/pkg/strcase"
	"github.com/shandysiswandi/govo/pkg/config"
)

// Schema bundles the rule set and cross-field hook of one concrete record type.
type Schema struct {
	Name            string
	Rules           Rules
	AfterValidation AfterValidationFunc
}

// New constructs a record of this schema. Options given here apply after
// the schema's own name and hook, so they can override them.
func (s Schema) New(params map[string]any, opts ...Option) (*Record, error) {
	base := make([]Option, 0, len(opts)+2)
	base = append(base, WithName(s.Name))
	if s.AfterValidation != nil {
		base = append(base, WithAfterValidation(s.AfterValidation))
	}

	return New(s.Rules, params, append(base, opts...)...)
}

// Validate reports whether the schema's rule set is well formed.
func (s Schema) Validate() error {
	if err := s.Rules.Validate(); err != nil {
		return fmt.Errorf("schema %s: %w", s.Name, err)
	}
	return nil
}

// SchemaFromConfig builds a schema named name from the declarations under
// "rules.<name>", with name in snake_case: "SignUp" reads "rules.sign_up".
// The hook, if any, is attached by the caller.
func SchemaFromConfig(cfg config.Config, name string) (Schema, error) {
	rules, err := RulesFromConfig(cfg, "rules."+strcase.ConfigKey(name))
	if err != nil {
		return Schema{}, err
	}

	return Schema{Name: name, Rules: rules}, nil
}
