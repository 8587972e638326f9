package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidInput(t *testing.T) {
	t.Parallel()

	cause := errors.New("email is invalid")

	err := NewInvalidInput(cause)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, CodeInvalidInput, gerr.Code())
	assert.Equal(t, "Validation error", gerr.Msg())
	assert.Equal(t, "email is invalid", gerr.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, CodeInvalidInput))
}

func TestNewInvalidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msgs []string
		want string
	}{
		{name: "default message", msgs: nil, want: "Invalid request body"},
		{name: "custom message", msgs: []string{"payload must be a JSON object"}, want: "payload must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewInvalidFormat(tt.msgs...)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tt.want, gerr.Error())
			assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
		})
	}
}

func TestNewBusinessAndServer(t *testing.T) {
	t.Parallel()

	notFound := NewBusiness("unknown schema", CodeNotFound)
	assert.True(t, Is(notFound, CodeNotFound))
	assert.False(t, Is(notFound, CodeInvalidInput))
	assert.Equal(t, "unknown schema", notFound.Error())

	server := NewServer(errors.New("boom"))
	var gerr *Error
	require.True(t, errors.As(server, &gerr))
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	assert.Contains(t, gerr.String(), "ERROR_CODE_INTERNAL")

	assert.False(t, Is(errors.New("plain"), CodeInternal))
}
