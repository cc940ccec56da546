package service

import (
	"fmt"

	"sbl-onboarding-be/internal/pkg/serverutils"
)

var (
	ErrSessionNotFound    = serverutils.NewAppError(404, "session not found or expired")
	ErrContactRequired    = serverutils.NewAppError(409, "contact details must be registered first")
	ErrContactStepBlocked = serverutils.NewAppError(409, "the contact step must be submitted through the contact endpoint")
	ErrNotReady           = serverutils.NewAppError(409, "application is not ready to be finalized")
)

// NewSequenceError reports a save against the wrong step. The flow only
// accepts the step the candidate is currently on.
func NewSequenceError(expected, attempted int) *serverutils.AppError {
	return serverutils.NewAppError(409, fmt.Sprintf("out of sequence: expected step %d, got step %d", expected, attempted))
}

func NewUploadError(message string) *serverutils.AppError {
	return serverutils.NewAppError(400, message)
}
