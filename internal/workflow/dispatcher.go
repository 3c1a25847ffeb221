package workflow

import (
	"context"
	"fmt"

	"github.com/publab/publication-service/internal/publication"
)

// stepBuilder parameterizes one pipeline step from the current state.
type stepBuilder struct {
	name  string
	build func(Collaborators, publication.State) Operation
}

// pipeline is the static, ordered table of steps. The dispatcher scans it by
// absence from the state's job map, which is what makes a run resumable from
// any externally supplied partial state.
var pipeline = []stepBuilder{
	{StepRetrieveResources, retrieveOperation},
	{StepValidateDocument, validateOperation},
	{StepCheckAuthorization, checkAuthorizationOperation},
	{StepCheckResources, checkResourcesOperation},
	{StepPublish, publishOperation},
	{StepInstall, installOperation},
	{StepUpdateShortlink, updateShortlinkOperation},
}

// StepNames returns the pipeline's step names in execution order.
func StepNames() []string {
	names := make([]string, len(pipeline))
	for i, builder := range pipeline {
		names[i] = builder.name
	}
	return names
}

// Dispatcher selects and parameterizes the next step for a state. It
// performs no I/O itself.
type Dispatcher struct {
	deps   Collaborators
	runner *Runner
}

func NewDispatcher(deps Collaborators, runner *Runner) *Dispatcher {
	return &Dispatcher{deps: deps, runner: runner}
}

// Next returns the transitions for the first step not yet attempted in
// state. When every step has been attempted it returns the single completion
// transition instead: overall success plus a final history entry naming the
// published location.
func (d *Dispatcher) Next(state publication.State) []Transition[publication.State] {
	for _, builder := range pipeline {
		if !state.Attempted(builder.name) {
			step := Step{Name: builder.name, Operation: builder.build(d.deps, state)}
			return d.runner.Transitions(step)
		}
	}
	return []Transition[publication.State]{complete}
}

func complete(_ context.Context, state publication.State) publication.State {
	return state.
		WithStatus(publication.SuccessStatus).
		WithHistory(fmt.Sprintf("The document has been published at %s.", publishedLocation(state)))
}

func publishedLocation(state publication.State) string {
	if thisVersion := state.MetadataValue(publication.MetadataThisVersion); thisVersion != "" {
		return thisVersion
	}
	return state.Request().HTTPLocation
}
