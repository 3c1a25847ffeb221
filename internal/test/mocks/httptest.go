package mocks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/publab/publication-service/internal/service"
	"github.com/publab/publication-service/internal/test"
	"github.com/stretchr/testify/require"
)

// ToValidatorHandlerFunc serves a mocked conformance checker for one
// httptest.Server.
func ToValidatorHandlerFunc(ctx context.Context, t require.TestingT, f ValidateFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		require.Equal(t, http.MethodGet, request.Method)
		require.Equal(t, "/validate", request.URL.Path)
		query := request.URL.Query()
		require.Contains(t, query, "url")
		report, err := f(ctx, query.Get("url"))
		require.NoError(t, err)
		writeJSON(t, writer, report)
	}
}

func ToTokenCheckerHandlerFunc(ctx context.Context, t require.TestingT, f CheckTokenFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		require.Equal(t, http.MethodGet, request.Method)
		require.Equal(t, "/authorize", request.URL.Path)
		query := request.URL.Query()
		require.Contains(t, query, "url")
		require.Contains(t, query, "token")
		decision, err := f(ctx, query.Get("url"), query.Get("token"))
		require.NoError(t, err)
		writeJSON(t, writer, decision)
	}
}

func ToResourceCheckerHandlerFunc(ctx context.Context, t require.TestingT, f CheckResourcesFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		require.Equal(t, http.MethodGet, request.Method)
		require.Equal(t, "/checks", request.URL.Path)
		query := request.URL.Query()
		require.Contains(t, query, "url")
		violations, err := f(ctx, query.Get("url"))
		require.NoError(t, err)
		writeJSON(t, writer, struct {
			Violations []service.Violation `json:"violations"`
		}{Violations: violations})
	}
}

// ToPublisherHandlerFunc serves a mocked publishing backend. It requires the
// expected basic-auth credentials on every request.
func ToPublisherHandlerFunc(ctx context.Context, t require.TestingT, expectedUsername, expectedPassword string, f PublishFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		require.Equal(t, http.MethodPost, request.Method)
		require.Equal(t, "/publish", request.URL.Path)
		username, password, ok := request.BasicAuth()
		require.True(t, ok, "missing basic auth")
		require.Equal(t, expectedUsername, username)
		require.Equal(t, expectedPassword, password)
		var body struct {
			Metadata map[string]string `json:"metadata"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		publishErrors, err := f(ctx, body.Metadata)
		require.NoError(t, err)
		writeJSON(t, writer, struct {
			Errors []service.PublishError `json:"errors"`
		}{Errors: publishErrors})
	}
}

// InternalServerErrorHandler always responds 500, for exercising client
// error paths.
func InternalServerErrorHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		http.Error(writer, `{"message":"internal server error"}`, http.StatusInternalServerError)
	}
}

func writeJSON(t require.TestingT, writer http.ResponseWriter, response any) {
	test.Helper(t)
	resBytes, err := json.Marshal(response)
	require.NoError(t, err)
	_, err = writer.Write(resBytes)
	require.NoError(t, err)
}
