package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.True(t, errors.Is(appErr, cause))
	assert.True(t, appErr.IsServerError())
	assert.Contains(t, appErr.Error(), "throttled")

	body := appErr.WithCorrelationID("01HX").ToHTTPError()
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "01HX", body.CorrelationID)
	assert.NotContains(t, body.Message, "throttled")
	assert.Empty(t, appErr.CorrelationID, "WithCorrelationID must not mutate the receiver")
}

func TestNewDomainErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("NOT_FOUND", "Booking not found", http.StatusNotFound)

	assert.Nil(t, appErr.Unwrap())
	assert.False(t, appErr.IsServerError())
	assert.Equal(t, "NOT_FOUND: Booking not found", appErr.Error())
}
