package workflow

import (
	"context"
	"net/url"
	"path/filepath"

	"github.com/publab/publication-service/internal/command"
	"github.com/publab/publication-service/internal/publication"
	"github.com/publab/publication-service/internal/service"
)

// Collaborators are the external services and commands the steps call.
// All of them are supplied at construction and read-only for the lifetime
// of a run.
type Collaborators struct {
	Retriever       service.Retriever
	Validator       service.Validator
	TokenChecker    service.TokenChecker
	ResourceChecker service.ResourceChecker
	Publisher       service.Publisher
	Executor        command.Executor
}

func retrieveOperation(deps Collaborators, state publication.State) Operation {
	request := state.Request()
	return func(ctx context.Context) publication.Outcome {
		if err := deps.Retriever.Fetch(ctx, request.SourceURL, request.TempLocation); err != nil {
			return publication.ErrorOutcome("An error occurred while retrieving the documents.", err)
		}
		return publication.OKOutcome("The documents have been retrieved.")
	}
}

func validateOperation(deps Collaborators, state publication.State) Operation {
	request := state.Request()
	return func(ctx context.Context) publication.Outcome {
		report, err := deps.Validator.Validate(ctx, request.HTTPLocation)
		if err != nil {
			return publication.ErrorOutcome("An error occurred while validating the document.", err)
		}
		if len(report.Errors) > 0 {
			return publication.FailureOutcome("The document failed validation.", report.Errors...)
		}
		return publication.OKOutcomeWithMetadata("The document is valid.", report.Metadata)
	}
}

func checkAuthorizationOperation(deps Collaborators, state publication.State) Operation {
	request := state.Request()
	versionURL := state.MetadataValue(publication.MetadataLatestVersion)
	return func(ctx context.Context) publication.Outcome {
		decision, err := deps.TokenChecker.Check(ctx, versionURL, request.AuthToken)
		if err != nil {
			return publication.ErrorOutcome("An error occurred while verifying the authorization token.", err)
		}
		if !decision.Authorizes(versionURL) {
			return publication.FailureOutcome(
				"You are not authorized to publish this document.",
				"the token is not valid for "+versionURL)
		}
		return publication.OKOutcome("The token is authorized to publish this document.")
	}
}

func checkResourcesOperation(deps Collaborators, state publication.State) Operation {
	request := state.Request()
	return func(ctx context.Context) publication.Outcome {
		violations, err := deps.ResourceChecker.Check(ctx, request.HTTPLocation)
		if err != nil {
			return publication.ErrorOutcome("An error occurred while checking for third-party resources.", err)
		}
		if len(violations) > 0 {
			reasons := make([]string, len(violations))
			for i, violation := range violations {
				reasons[i] = violation.String()
			}
			return publication.FailureOutcome("The document loads disallowed third-party resources.", reasons...)
		}
		return publication.OKOutcome("The document does not load disallowed third-party resources.")
	}
}

func publishOperation(deps Collaborators, state publication.State) Operation {
	metadata := state.Metadata()
	return func(ctx context.Context) publication.Outcome {
		publishErrors, err := deps.Publisher.Publish(ctx, metadata)
		if err != nil {
			return publication.ErrorOutcome("An error occurred while publishing the document.", err)
		}
		if len(publishErrors) > 0 {
			reasons := make([]string, len(publishErrors))
			for i, publishError := range publishErrors {
				reasons[i] = publishError.String()
			}
			return publication.FailureOutcome("The publishing service rejected the document.", reasons...)
		}
		return publication.OKOutcome("The document has been published.")
	}
}

func installOperation(deps Collaborators, state publication.State) Operation {
	request := state.Request()
	destination := installDestination(request.ResultLocation, state.MetadataValue(publication.MetadataThisVersion))
	return func(ctx context.Context) publication.Outcome {
		if err := deps.Executor.InstallDocument(ctx, request.TempLocation, destination); err != nil {
			return publication.ErrorOutcome("An error occurred while installing the documents.", err)
		}
		return publication.OKOutcome("The documents have been installed.")
	}
}

func updateShortlinkOperation(deps Collaborators, state publication.State) Operation {
	versionURI := state.MetadataValue(publication.MetadataThisVersion)
	return func(ctx context.Context) publication.Outcome {
		if err := deps.Executor.UpdateShortlink(ctx, versionURI); err != nil {
			return publication.ErrorOutcome("An error occurred while updating the shortlink.", err)
		}
		return publication.OKOutcome("The shortlink has been updated.")
	}
}

// installDestination maps a dated version URI onto the result location: the
// URI's path is re-rooted under resultLocation. A missing or unparseable URI
// installs at the result location itself.
func installDestination(resultLocation, versionURL string) string {
	parsed, err := url.Parse(versionURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return resultLocation
	}
	return filepath.Join(resultLocation, filepath.FromSlash(parsed.Path))
}
