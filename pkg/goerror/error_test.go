package goerror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/govo/pkg/goerror"
)

func TestError_Defaults(t *testing.T) {
	t.Run("server error wraps the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := goerror.NewServer(cause)

		assert.Equal(t, "boom", err.Error())
		assert.ErrorIs(t, err, cause)

		ge, ok := goerror.As(err)
		require.True(t, ok)
		assert.Equal(t, goerror.TypeServer, ge.Type())
		assert.Equal(t, goerror.CodeInternal, ge.Code())
		assert.Equal(t, http.StatusInternalServerError, ge.StatusCode())
	})

	t.Run("not found matches the sentinel", func(t *testing.T) {
		err := goerror.NewNotFound(nil, "field code")

		assert.ErrorIs(t, err, goerror.ErrNotFound)
		ge, ok := goerror.As(err)
		require.True(t, ok)
		assert.Equal(t, "field code", ge.Msg())
		assert.Equal(t, goerror.CodeNotFound, ge.Code())
		assert.Equal(t, http.StatusNotFound, ge.StatusCode())
	})

	t.Run("not found keeps a domain cause", func(t *testing.T) {
		errMissing := fmt.Errorf("missing field (%w)", goerror.ErrNotFound)
		err := goerror.NewNotFound(errMissing, "code")

		assert.ErrorIs(t, err, errMissing)
		assert.ErrorIs(t, err, goerror.ErrNotFound)
		assert.Equal(t, "missing field (resource not found): code", err.Error())
	})

	t.Run("invalid type matches the sentinel", func(t *testing.T) {
		err := goerror.NewInvalidType(nil, "field age is string")
		assert.ErrorIs(t, err, goerror.ErrInvalidType)

		ge, ok := goerror.As(err)
		require.True(t, ok)
		assert.Equal(t, goerror.TypeBusiness, ge.Type())
	})
}

func TestNewInvalidFields(t *testing.T) {
	err := goerror.NewInvalidFields(map[string]string{"email": "bad", "name": "short"})

	ge, ok := goerror.As(err)
	require.True(t, ok)
	assert.Equal(t, goerror.TypeValidation, ge.Type())
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
	assert.Equal(t, map[string]string{"email": "bad", "name": "short"}, ge.Fields())
	assert.Equal(t, http.StatusUnprocessableEntity, ge.StatusCode())
	assert.Equal(t, "Validation error", ge.Error())

	ge, _ = goerror.As(goerror.NewInvalidFields(nil))
	assert.Nil(t, ge.Fields())
}

func TestError_FieldsIsCopy(t *testing.T) {
	src := map[string]string{"name": "too short"}
	ge, ok := goerror.As(goerror.NewInvalidFields(src))
	require.True(t, ok)

	src["name"] = "mutated"
	fields := ge.Fields()
	fields["email"] = "added"

	assert.Equal(t, map[string]string{"name": "too short"}, ge.Fields())
}

func TestAs_WrappedChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", goerror.NewInvalidFields(nil))

	ge, ok := goerror.As(err)
	require.True(t, ok)
	assert.Equal(t, goerror.TypeValidation, ge.Type())
	assert.Equal(t, "Internal error", (&goerror.Error{}).Error())

	_, ok = goerror.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestTypeAndCode_String(t *testing.T) {
	assert.Equal(t, "ERROR_TYPE_VALIDATION", goerror.TypeValidation.String())
	assert.Equal(t, "ERROR_TYPE_UNKNOWN", goerror.Type(42).String())
	assert.Equal(t, "ERROR_CODE_NOT_FOUND", goerror.CodeNotFound.String())
	assert.Equal(t, "ERROR_CODE_INTERNAL", goerror.Code(42).String())
}
