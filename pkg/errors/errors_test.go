package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesTemplate(t *testing.T) {
	err := fmt.Errorf("register student: %w", Clone(ErrRejected, "already registered"))

	assert.True(t, errors.Is(err, ErrRejected))
	assert.True(t, IsRejection(err))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Nil(t, FromError(nil))
}

func TestValidationCarriesDetails(t *testing.T) {
	appErr := Validation([]FieldError{{Field: "email", Message: "invalid"}})

	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Len(t, appErr.Details, 1)
	assert.Empty(t, ErrValidation.Details)
}

func TestRejectionKeepsOwnIdentity(t *testing.T) {
	registered := Rejection("ALREADY_REGISTERED", "already registered")
	attending := Rejection("ATTENDING", "attending")

	assert.True(t, IsRejection(registered))
	assert.True(t, errors.Is(registered, registered))
	assert.False(t, errors.Is(registered, attending))
	assert.Equal(t, http.StatusOK, registered.Status)
}
