package workflow

import (
	"context"

	"github.com/publab/publication-service/internal/publication"
)

// Step names, in pipeline order. Each name keys the step's entry in the
// state's job map.
const (
	StepRetrieveResources  = "retrieve-resources"
	StepValidateDocument   = "validate-document"
	StepCheckAuthorization = "check-authorization"
	StepCheckResources     = "check-third-party-resources"
	StepPublish            = "publish"
	StepInstall            = "install-in-result-location"
	StepUpdateShortlink    = "update-shortlink"
)

// Operation invokes one collaborator call and reports its normalized
// outcome. Implementations convert every collaborator error into an error
// outcome and every business rejection into a failure outcome; they never
// return anything else and never panic on a collaborator's account.
type Operation func(ctx context.Context) publication.Outcome

// Step pairs a stable step name with the operation that advances it.
type Step struct {
	Name      string
	Operation Operation
}
