package workflow_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/publab/publication-service/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemError(t *testing.T) {
	cause := errors.New("nil map write")
	sysErr := workflow.NewSystemError(workflow.SystemErrorMessage, cause)

	assert.Equal(t, cause.Error(), sysErr.Error())
	assert.ErrorIs(t, sysErr, cause)
	_, err := uuid.Parse(sysErr.ID)
	require.NoError(t, err, "system errors carry a uuid correlation id")
}

func TestNewSystemError_NoCause(t *testing.T) {
	sysErr := workflow.NewSystemError(workflow.SystemErrorMessage, nil)
	assert.Equal(t, workflow.SystemErrorMessage, sysErr.Error())
	assert.Nil(t, sysErr.Unwrap())
}
