package publication_test

import (
	"errors"
	"testing"

	"github.com/publab/publication-service/internal/publication"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeConstructors(t *testing.T) {
	ok := publication.OKOutcome("The documents have been retrieved.")
	assert.Equal(t, publication.JobOK, ok.Status)
	assert.Empty(t, ok.Errors)
	assert.Nil(t, ok.Metadata)

	metadata := map[string]string{publication.MetadataThisVersion: "https://example.org/docs/x-20260831/"}
	okWithMetadata := publication.OKOutcomeWithMetadata("The document is valid.", metadata)
	assert.Equal(t, publication.JobOK, okWithMetadata.Status)
	assert.Equal(t, metadata, okWithMetadata.Metadata)

	failure := publication.FailureOutcome("The document failed validation.", "missing abstract", "broken style sheet")
	assert.Equal(t, publication.JobFailure, failure.Status)
	assert.Equal(t, []string{"missing abstract", "broken style sheet"}, failure.Errors)

	cause := errors.New("connection refused")
	errOutcome := publication.ErrorOutcome("An error occurred while retrieving the documents.", cause)
	assert.Equal(t, publication.JobError, errOutcome.Status)
	assert.Equal(t, []string{"connection refused"}, errOutcome.Errors)
	assert.Equal(t, "An error occurred while retrieving the documents.", errOutcome.History)
}
