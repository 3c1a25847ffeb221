package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/publab/publication-service/internal/publication"
)

// SystemErrorMessage is the only text a bookkeeping defect contributes to
// user-visible history.
const SystemErrorMessage = "A system error occurred during the publication process."

// Runner executes one step against the current state. For every step it
// produces exactly two ordered notifications: the pending transition, then
// the settling transition that merges the operation's outcome.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

func (r *Runner) Transitions(step Step) []Transition[publication.State] {
	pending := func(_ context.Context, state publication.State) publication.State {
		return state.WithJobStatus(step.Name, publication.JobPending)
	}
	settle := func(ctx context.Context, state publication.State) publication.State {
		return r.settle(ctx, state, step)
	}
	return []Transition[publication.State]{pending, settle}
}

// settle runs the operation and merges its outcome into state. The operation
// is trusted to normalize its own collaborator's errors; the recover here is
// a second net under the runner's bookkeeping, so a defect still yields a
// terminal state instead of escaping the driver.
func (r *Runner) settle(ctx context.Context, state publication.State, step Step) (settled publication.State) {
	defer func() {
		if cause := recover(); cause != nil {
			sysErr := NewSystemError(SystemErrorMessage, fmt.Errorf("step %s panicked: %v", step.Name, cause))
			sysErr.LogError(r.logger)
			settled = state.
				WithJobStatus(step.Name, publication.JobError).
				WithStatus(publication.ErrorStatus).
				WithHistory(sysErr.UserMessage)
		}
	}()

	outcome := step.Operation(ctx)
	settled = state.WithJob(step.Name, publication.Job{
		Status: outcome.Status,
		Errors: outcome.Errors,
	})
	switch outcome.Status {
	case publication.JobFailure:
		settled = settled.WithStatus(publication.FailureStatus)
	case publication.JobError:
		settled = settled.WithStatus(publication.ErrorStatus)
		r.logger.Error("step reported an unexpected error",
			slog.String("step", step.Name),
			slog.Any("errors", outcome.Errors))
	}
	if outcome.History != "" {
		settled = settled.WithHistory(outcome.History)
	}
	if outcome.Metadata != nil {
		settled = settled.WithMetadata(outcome.Metadata)
	}
	r.logger.Info("step settled",
		slog.String("step", step.Name),
		slog.String("jobStatus", string(outcome.Status)),
		slog.String("overallStatus", string(settled.Status())))
	return settled
}
