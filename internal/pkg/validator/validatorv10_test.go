package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContactEmail(t *testing.T) {
	tests := map[string]bool{
		"a@b.com":          true,
		"asha.k@kavach.in": true,
		"not-an-email":     false,
		"a@b":              false,
		"a b@c.com":        false,
		"a@b@c.com":        false,
		"":                 false,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, IsContactEmail(in))
		})
	}
}

func TestV10ValidatorValidate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type input struct {
		FullName     string `json:"full_name" validate:"required"`
		ContactEmail string `json:"email,omitempty" validate:"required,contact_email"`
		Phone        string `validate:"required"`
	}

	require.NoError(t, v.Validate(input{FullName: "Asha", ContactEmail: "a@b.com", Phone: "123"}))

	err = v.Validate(input{ContactEmail: "nope"})
	var verr V10ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "full_name is a required field", verr.Values()["full_name"])
	assert.Equal(t, "email must be a valid email address", verr.Values()["email"])
	assert.Equal(t, "Phone is a required field", verr.Values()["Phone"])
	assert.Contains(t, err.Error(), "full_name")
}
