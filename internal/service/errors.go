package service

import (
	"errors"

	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

// internalError keeps typed errors intact and wraps anything else as an internal failure.
func internalError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
