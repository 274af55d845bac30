package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"notblank,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
	Kind  string `json:"kind" validate:"oneof=a b"`
}

func TestStructUsesJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Struct(sample{Name: "   ", Email: "nope", Phone: "12", Kind: "c"})
	require.Error(t, err)

	msgs := Messages(v.ValidationErrors(err))
	assert.Equal(t, "name is required", msgs["name"])
	assert.Equal(t, "email must be a valid email address", msgs["email"])
	assert.Equal(t, "phone must be a valid phone number", msgs["phone"])
	assert.Equal(t, "kind must be one of: a b", msgs["kind"])
}

func TestStructAcceptsValidInput(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(sample{Name: "ok", Phone: "+49 170 1234567", Kind: "a"}))
}

func TestMaxCountsCharactersNotBytes(t *testing.T) {
	v := New()
	assert.NoError(t, v.Var("äöüßé", "max=5"))
	assert.Error(t, v.Var("äöüßéx", "max=5"))
}

func TestValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := New()
	assert.Nil(t, v.ValidationErrors(nil))
	assert.Nil(t, v.ValidationErrors(assert.AnError))
}
