package service_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/publab/publication-service/internal/service"
	"github.com/publab/publication-service/internal/shared/logging"
	"github.com/publab/publication-service/internal/test/mocks"
	"github.com/publab/publication-service/internal/test/pubtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPValidator_Validate(t *testing.T) {
	ctx := context.Background()
	expectedReport := service.ValidationReport{Metadata: pubtest.Metadata()}
	validatorServer := httptest.NewServer(mocks.ToValidatorHandlerFunc(ctx, t,
		func(_ context.Context, httpLocation string) (service.ValidationReport, error) {
			assert.Equal(t, "http://localhost:8080/build-1/", httpLocation)
			return expectedReport, nil
		}))
	defer validatorServer.Close()

	validator := service.NewHTTPValidator(validatorServer.URL, logging.Default)

	report, err := validator.Validate(ctx, "http://localhost:8080/build-1/")
	require.NoError(t, err)
	assert.Equal(t, expectedReport, report)
}

func TestHTTPValidator_ReportsDefects(t *testing.T) {
	ctx := context.Background()
	validatorServer := httptest.NewServer(mocks.ToValidatorHandlerFunc(ctx, t,
		func(_ context.Context, _ string) (service.ValidationReport, error) {
			return service.ValidationReport{Errors: []string{"missing abstract", "broken style sheet"}}, nil
		}))
	defer validatorServer.Close()

	validator := service.NewHTTPValidator(validatorServer.URL, logging.Default)

	report, err := validator.Validate(ctx, "http://localhost:8080/build-1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"missing abstract", "broken style sheet"}, report.Errors)
	assert.Empty(t, report.Metadata)
}

func TestHTTPValidator_ServerError(t *testing.T) {
	validatorServer := httptest.NewServer(mocks.InternalServerErrorHandler())
	defer validatorServer.Close()

	validator := service.NewHTTPValidator(validatorServer.URL, logging.Default)

	_, err := validator.Validate(context.Background(), "http://localhost:8080/build-1/")
	require.Error(t, err)
}
