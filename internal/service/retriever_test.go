package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/publab/publication-service/internal/service"
	"github.com/publab/publication-service/internal/shared/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRetriever_Fetch(t *testing.T) {
	const document = "<!doctype html><title>Widgets</title>"
	sourceServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, http.MethodGet, request.Method)
		require.Equal(t, "/build-1/Overview.html", request.URL.Path)
		_, err := writer.Write([]byte(document))
		require.NoError(t, err)
	}))
	defer sourceServer.Close()

	tempLocation := filepath.Join(t.TempDir(), "build-1")
	retriever := service.NewHTTPRetriever(logging.Default)

	err := retriever.Fetch(context.Background(), sourceServer.URL+"/build-1/Overview.html", tempLocation)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(tempLocation, "Overview.html"))
	require.NoError(t, err)
	assert.Equal(t, document, string(contents))
}

func TestHTTPRetriever_DefaultDocumentName(t *testing.T) {
	sourceServer := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, err := writer.Write([]byte("contents"))
		require.NoError(t, err)
	}))
	defer sourceServer.Close()

	tempLocation := t.TempDir()
	retriever := service.NewHTTPRetriever(logging.Default)

	require.NoError(t, retriever.Fetch(context.Background(), sourceServer.URL+"/", tempLocation))

	_, err := os.Stat(filepath.Join(tempLocation, service.DefaultDocumentName))
	assert.NoError(t, err)
}

func TestHTTPRetriever_SourceNotFound(t *testing.T) {
	sourceServer := httptest.NewServer(http.NotFoundHandler())
	defer sourceServer.Close()

	retriever := service.NewHTTPRetriever(logging.Default)

	err := retriever.Fetch(context.Background(), sourceServer.URL+"/missing.html", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
