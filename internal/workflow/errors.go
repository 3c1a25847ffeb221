package workflow

import (
	"log/slog"

	"github.com/google/uuid"
)

// SystemError is an unexpected defect in the workflow's own bookkeeping.
// UserMessage is the only text that reaches user-visible history; the cause
// stays in the operator log, correlated by ID.
type SystemError struct {
	UserMessage string
	Cause       error
	ID          string
}

func NewSystemError(userMessage string, cause error) *SystemError {
	return &SystemError{
		UserMessage: userMessage,
		Cause:       cause,
		ID:          uuid.NewString(),
	}
}

func (e *SystemError) Error() string {
	if e.Cause == nil {
		return e.UserMessage
	}
	return e.Cause.Error()
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

func (e *SystemError) LogError(logger *slog.Logger) {
	var cause string
	if e.Cause == nil {
		cause = "none"
	} else {
		cause = e.Cause.Error()
	}
	logger.Error(e.UserMessage,
		slog.Group("error",
			slog.String("id", e.ID),
			slog.Any("cause", cause),
		),
	)
}
