package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/publab/publication-service/internal/publication"
	"github.com/publab/publication-service/internal/shared/logging"
	"github.com/publab/publication-service/internal/test/pubtest"
	"github.com/publab/publication-service/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runnerStep(name string, outcome publication.Outcome) workflow.Step {
	return workflow.Step{
		Name: name,
		Operation: func(_ context.Context) publication.Outcome {
			return outcome
		},
	}
}

func applyAll(t *testing.T, transitions []workflow.Transition[publication.State], start publication.State) []publication.State {
	t.Helper()
	states := make([]publication.State, 0, len(transitions))
	current := start
	for _, transition := range transitions {
		current = transition(context.Background(), current)
		states = append(states, current)
	}
	return states
}

func TestRunner_TwoPhaseNotification(t *testing.T) {
	runner := workflow.NewRunner(logging.Default)
	step := runnerStep("publish", publication.OKOutcome("The document has been published."))

	transitions := runner.Transitions(step)
	require.Len(t, transitions, 2)

	states := applyAll(t, transitions, publication.NewState(pubtest.NewRequest()))

	pending, ok := states[0].Job("publish")
	require.True(t, ok)
	assert.Equal(t, publication.JobPending, pending.Status)
	assert.Equal(t, publication.StartedStatus, states[0].Status())
	assert.Empty(t, states[0].History())

	settled, ok := states[1].Job("publish")
	require.True(t, ok)
	assert.Equal(t, publication.JobOK, settled.Status)
	assert.Equal(t, publication.StartedStatus, states[1].Status())
	assert.Equal(t, []string{"The document has been published."}, states[1].History())
}

func TestRunner_FailureOutcomeHaltsRun(t *testing.T) {
	runner := workflow.NewRunner(logging.Default)
	step := runnerStep("validate-document",
		publication.FailureOutcome("The document failed validation.", "missing abstract"))

	states := applyAll(t, runner.Transitions(step), publication.NewState(pubtest.NewRequest()))
	final := states[len(states)-1]

	assert.Equal(t, publication.FailureStatus, final.Status())
	job, ok := final.Job("validate-document")
	require.True(t, ok)
	assert.Equal(t, publication.JobFailure, job.Status)
	assert.Equal(t, []string{"missing abstract"}, job.Errors)
}

func TestRunner_ErrorOutcome(t *testing.T) {
	runner := workflow.NewRunner(logging.Default)
	step := runnerStep("retrieve-resources",
		publication.ErrorOutcome("An error occurred while retrieving the documents.", errors.New("connection refused")))

	states := applyAll(t, runner.Transitions(step), publication.NewState(pubtest.NewRequest()))
	final := states[len(states)-1]

	assert.Equal(t, publication.ErrorStatus, final.Status())
	job, ok := final.Job("retrieve-resources")
	require.True(t, ok)
	assert.Equal(t, publication.JobError, job.Status)
	assert.Equal(t, []string{"connection refused"}, job.Errors)
}

func TestRunner_MetadataReplacedWholesale(t *testing.T) {
	runner := workflow.NewRunner(logging.Default)
	step := runnerStep("validate-document",
		publication.OKOutcomeWithMetadata("The document is valid.", pubtest.Metadata()))

	start := publication.NewState(pubtest.NewRequest()).
		WithMetadata(map[string]string{"stale": "value"})
	states := applyAll(t, runner.Transitions(step), start)
	final := states[len(states)-1]

	assert.Equal(t, pubtest.Metadata(), final.Metadata())
	assert.Empty(t, final.MetadataValue("stale"))
}

func TestRunner_PanicBecomesSystemError(t *testing.T) {
	runner := workflow.NewRunner(logging.Default)
	step := workflow.Step{
		Name: "publish",
		Operation: func(_ context.Context) publication.Outcome {
			panic("bookkeeping defect")
		},
	}

	states := applyAll(t, runner.Transitions(step), publication.NewState(pubtest.NewRequest()))
	final := states[len(states)-1]

	assert.Equal(t, publication.ErrorStatus, final.Status())
	job, ok := final.Job("publish")
	require.True(t, ok)
	assert.Equal(t, publication.JobError, job.Status)
	// only the generic message reaches user-visible history
	assert.Equal(t, []string{workflow.SystemErrorMessage}, final.History())
}
