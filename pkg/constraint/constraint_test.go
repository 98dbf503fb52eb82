package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/govo/pkg/constraint"
)

func TestConstraint_Validate(t *testing.T) {
	valid := []constraint.Constraint{
		constraint.NotBlank(),
		constraint.Email(),
		constraint.MinLength(1),
		constraint.Length(2, 2),
		constraint.Type("string"),
		constraint.URL(),
		constraint.UUID(),
		constraint.Choice("a"),
		constraint.Range(1, 1),
		constraint.Max(-3),
	}
	for _, c := range valid {
		assert.NoError(t, c.Validate(), c.String())
	}

	invalid := []constraint.Constraint{
		{},
		constraint.Length(0, 0),
		constraint.Length(-1, 3),
		constraint.Length(5, 3),
		constraint.Type(" "),
		constraint.Choice(),
		constraint.Range(10, 1),
	}
	for _, c := range invalid {
		assert.ErrorIs(t, c.Validate(), constraint.ErrInvalidConstraint, c.String())
	}
}

func TestConstraint_String(t *testing.T) {
	assert.Equal(t, "NotBlank", constraint.NotBlank().String())
	assert.Equal(t, "Length(min=5)", constraint.MinLength(5).String())
	assert.Equal(t, "Length(min=2, max=8)", constraint.Length(2, 8).String())
	assert.Equal(t, "Type(type=string)", constraint.Type("String").String())
	assert.Equal(t, "Choice(choices=a|b)", constraint.Choice("a", "b").String())
	assert.Equal(t, "Range(min=0.5, max=2)", constraint.Range(0.5, 2).String())
	assert.Equal(t, "Custom", constraint.Constraint{}.String())
}

func TestChoice_CopiesValues(t *testing.T) {
	values := []string{"a", "b"}
	c := constraint.Choice(values...)
	values[0] = "z"

	assert.Equal(t, "Choice(choices=a|b)", c.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		decl    string
		options map[string]any
		want    constraint.Constraint
	}{
		{"not blank", "NotBlank", nil, constraint.NotBlank()},
		{"case insensitive", "EMAIL", nil, constraint.Email()},
		{"url", "Url", nil, constraint.URL()},
		{"uuid", "uuid", nil, constraint.UUID()},
		{"length min", "Length", map[string]any{"min": 5}, constraint.MinLength(5)},
		{"length from json numbers", "Length", map[string]any{"min": 2.0, "max": "8"}, constraint.Length(2, 8)},
		{"type", "Type", map[string]any{"type": "string"}, constraint.Type("string")},
		{"choice", "Choice", map[string]any{"choices": []any{"a", "b"}}, constraint.Choice("a", "b")},
		{"range", "Range", map[string]any{"min": 1, "max": "10"}, constraint.Range(1, 10)},
		{"range min only", "Range", map[string]any{"min": 3}, constraint.Min(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := constraint.Parse(tt.decl, tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := constraint.Parse("Regex", nil)
	assert.ErrorIs(t, err, constraint.ErrUnknownConstraint)

	_, err = constraint.Parse("Length", map[string]any{"min": "five"})
	assert.ErrorIs(t, err, constraint.ErrInvalidOptions)

	_, err = constraint.Parse("Length", nil)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)

	_, err = constraint.Parse("Range", map[string]any{})
	assert.ErrorIs(t, err, constraint.ErrInvalidOptions)

	_, err = constraint.Parse("Range", map[string]any{"max": []int{1}})
	assert.ErrorIs(t, err, constraint.ErrInvalidOptions)
}

func TestParseDecls(t *testing.T) {
	t.Run("mixed bare and option declarations", func(t *testing.T) {
		got, err := constraint.ParseDecls([]any{
			"NotBlank",
			map[string]any{"Type": map[string]any{"type": "string"}},
			map[any]any{"Length": map[any]any{"Min": 8}},
			map[string]any{"Email": nil},
			constraint.UUID(),
		})
		require.NoError(t, err)
		assert.Equal(t, []constraint.Constraint{
			constraint.NotBlank(),
			constraint.Type("string"),
			constraint.MinLength(8),
			constraint.Email(),
			constraint.UUID(),
		}, got)
	})

	t.Run("multi-key map is rejected", func(t *testing.T) {
		_, err := constraint.ParseDecls([]any{
			map[string]any{"Email": nil, "NotBlank": nil},
		})
		assert.ErrorIs(t, err, constraint.ErrInvalidOptions)
		assert.Contains(t, err.Error(), "declaration 0")
	})

	t.Run("unsupported entry type", func(t *testing.T) {
		_, err := constraint.ParseDecls([]any{42})
		assert.ErrorIs(t, err, constraint.ErrInvalidOptions)
	})

	t.Run("unknown name surfaces", func(t *testing.T) {
		_, err := constraint.ParseDecls([]any{"NotBlank", "Ip"})
		assert.ErrorIs(t, err, constraint.ErrUnknownConstraint)
		assert.Contains(t, err.Error(), "declaration 1")
	})
}
