package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/shandysiswandi/govo/pkg/config"
	"github.com/shandysiswandi/govo/pkg/constraint"
)

var (
	// ErrEmptyField indicates a rule without a field name.
	ErrEmptyField = errors.New("valueobject: rule has an empty field name")

	// ErrDuplicateField indicates two rules for the same field.
	ErrDuplicateField = errors.New("valueobject: duplicate field in rules")

	// ErrRulesNotFound indicates a config key holding no rule declarations.
	ErrRulesNotFound = errors.New("valueobject: rules not found")
)

// Rule declares the constraints of one required field.
type Rule struct {
	Field       string
	Constraints []constraint.Constraint
}

// Field declares a required field and its constraints, checked in order.
func Field(name string, constraints ...constraint.Constraint) Rule {
	return Rule{Field: name, Constraints: constraints}
}

// Rules is an ordered rule set. Every field in it is required; optional
// parameters are resolved by the caller before construction.
type Rules []Rule

// Validate reports whether the rule set is well formed: non-empty, unique
// field names and valid constraints.
func (rs Rules) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		if strings.TrimSpace(r.Field) == "" {
			return fmt.Errorf("%w (rule %d)", ErrEmptyField, i)
		}
		if _, dup := seen[r.Field]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateField, r.Field)
		}
		seen[r.Field] = struct{}{}

		for _, c := range r.Constraints {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("field %s: %w", r.Field, err)
			}
		}
	}

	return nil
}

// Fields returns the declared field names in order.
func (rs Rules) Fields() []string {
	return lo.Map(rs, func(r Rule, _ int) string { return r.Field })
}

// RuleDecl is the declarative form of a Rule as found in config files:
//
//	- field: name
//	  constraints: [NotBlank, {Length: {min: 5}}]
type RuleDecl struct {
	Field       string `mapstructure:"field" json:"field" yaml:"field"`
	Constraints []any  `mapstructure:"constraints" json:"constraints" yaml:"constraints"`
}

// ParseRules resolves declarations into a validated rule set.
func ParseRules(decls []RuleDecl) (Rules, error) {
	rules := make(Rules, 0, len(decls))
	for _, d := range decls {
		cs, err := constraint.ParseDecls(d.Constraints)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Field, err)
		}
		rules = append(rules, Field(d.Field, cs...))
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return rules, nil
}

// RulesFromConfig decodes and parses the rule declarations stored under key.
func RulesFromConfig(cfg config.Config, key string) (Rules, error) {
	if !cfg.IsSet(key) {
		return nil, fmt.Errorf("%w: %s", ErrRulesNotFound, key)
	}

	var decls []RuleDecl
	if err := cfg.UnmarshalKey(key, &decls); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRulesNotFound, key)
	}

	rules, err := ParseRules(decls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return rules, nil
}
