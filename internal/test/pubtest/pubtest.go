package pubtest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/publab/publication-service/internal/publication"
	"github.com/publab/publication-service/internal/service"
	"github.com/publab/publication-service/internal/test/mocks"
	"github.com/publab/publication-service/internal/workflow"
)

const ThisVersion = "https://example.org/docs/doc-widgets-20260831/"
const LatestVersion = "https://example.org/docs/doc-widgets/"

// NewRequest builds a publication request with plausible values and a fresh
// token.
func NewRequest() publication.Request {
	build := uuid.NewString()
	return publication.Request{
		SourceURL:      fmt.Sprintf("https://builds.example.org/%s/Overview.html", build),
		AuthToken:      uuid.NewString(),
		TempLocation:   fmt.Sprintf("/tmp/publication/%s", build),
		HTTPLocation:   fmt.Sprintf("http://localhost:8080/%s/", build),
		ResultLocation: "/var/www/docs",
	}
}

// Metadata returns the facts a passing validation would resolve.
func Metadata() map[string]string {
	return map[string]string{
		publication.MetadataThisVersion:   ThisVersion,
		publication.MetadataLatestVersion: LatestVersion,
	}
}

// AllOKCollaborators wires every collaborator mock to succeed, with the
// validator resolving Metadata() and the token checker authorizing
// LatestVersion.
func AllOKCollaborators() workflow.Collaborators {
	return workflow.Collaborators{
		Retriever: mocks.NewMockRetriever().WithFetchFunc(
			func(_ context.Context, _, _ string) error {
				return nil
			}),
		Validator: mocks.NewMockValidator().WithValidateFunc(
			func(_ context.Context, _ string) (service.ValidationReport, error) {
				return service.ValidationReport{Metadata: Metadata()}, nil
			}),
		TokenChecker: mocks.NewMockTokenChecker().WithCheckTokenFunc(
			func(_ context.Context, _, _ string) (service.TokenDecision, error) {
				return service.TokenDecision{Authorized: true, Source: LatestVersion}, nil
			}),
		ResourceChecker: mocks.NewMockResourceChecker().WithCheckResourcesFunc(
			func(_ context.Context, _ string) ([]service.Violation, error) {
				return nil, nil
			}),
		Publisher: mocks.NewMockPublisher().WithPublishFunc(
			func(_ context.Context, _ map[string]string) ([]service.PublishError, error) {
				return nil, nil
			}),
		Executor: mocks.NewMockExecutor().
			WithInstallDocumentFunc(func(_ context.Context, _, _ string) error {
				return nil
			}).
			WithUpdateShortlinkFunc(func(_ context.Context, _ string) error {
				return nil
			}),
	}
}

// StateRecorder collects every state a run reports to its progress handler.
type StateRecorder struct {
	States []publication.State
}

func (r *StateRecorder) Observe(state publication.State) {
	r.States = append(r.States, state)
}
