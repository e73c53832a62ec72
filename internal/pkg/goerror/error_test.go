package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"format", NewInvalidFormat(), http.StatusBadRequest, "Invalid request body"},
		{"format custom", NewInvalidFormat("bad json"), http.StatusBadRequest, "bad json"},
		{"input", NewInvalidInput(nil, "Please fill in all required fields."), http.StatusBadRequest, "Please fill in all required fields."},
		{"input default", NewInvalidInput(nil, ""), http.StatusBadRequest, "Validation error"},
		{"rejected", NewBusiness("Spam detected.", CodeRejected), http.StatusBadRequest, "Spam detected."},
		{"server", NewServer(errors.New("dial tcp: refused")), http.StatusInternalServerError, "Internal server error"},
		{"server custom", NewServer(errors.New("dial tcp: refused"), "call us"), http.StatusInternalServerError, "call us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.True(t, errors.As(tt.err, &gerr))
			assert.Equal(t, tt.status, gerr.StatusCode())
			assert.Equal(t, tt.msg, gerr.Msg())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("535 authentication failed")
	err := NewServer(cause, "call us")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "535 authentication failed", err.Error())

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, CodeInternal, gerr.Code())
	assert.Contains(t, gerr.String(), "ERROR_TYPE_SERVER")
}
