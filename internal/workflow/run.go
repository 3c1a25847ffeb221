package workflow

import (
	"context"

	"github.com/publab/publication-service/internal/publication"
)

// ProgressHandler observes every notification of a run: the pending state of
// each step, the settled state of each step, and the completion state.
type ProgressHandler func(publication.State)

// Run drives state until its overall status is terminal, reporting every
// intermediate state to progress. A state that is already terminal is
// returned unchanged without invoking any collaborator.
func Run(ctx context.Context, dispatcher *Dispatcher, progress ProgressHandler, start publication.State) publication.State {
	return Iterate(ctx, dispatcher.Next, publication.State.Terminal, progress, start)
}
