package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/publab/publication-service/internal/shared/util"
)

// DefaultDocumentName is used when the source URL does not name a file.
const DefaultDocumentName = "Overview.html"

// Retriever fetches the submitted document into the run's temporary location.
type Retriever interface {
	Fetch(ctx context.Context, sourceURL, tempLocation string) error
}

type HTTPRetriever struct {
	logger *slog.Logger
}

func NewHTTPRetriever(logger *slog.Logger) *HTTPRetriever {
	return &HTTPRetriever{logger: logger}
}

func (r *HTTPRetriever) Fetch(ctx context.Context, sourceURL, tempLocation string) error {
	requestParams := requestParameters{
		method: http.MethodGet,
		url:    sourceURL,
	}
	request, err := http.NewRequestWithContext(ctx, requestParams.method, requestParams.url, nil)
	if err != nil {
		return fmt.Errorf("error creating %s request: %w", requestParams, err)
	}
	response, err := util.Invoke(request, r.logger)
	if err != nil {
		return err
	}
	defer util.CloseAndWarn(response, r.logger)

	if err := os.MkdirAll(tempLocation, 0o755); err != nil {
		return fmt.Errorf("error creating temporary location %s: %w", tempLocation, err)
	}
	destination := filepath.Join(tempLocation, documentName(sourceURL))
	file, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", destination, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			r.logger.Warn("error closing retrieved document",
				slog.String("path", destination),
				slog.Any("error", closeErr))
		}
	}()
	if _, err := io.Copy(file, response.Body); err != nil {
		return fmt.Errorf("error writing %s: %w", destination, err)
	}
	r.logger.Info("retrieved document",
		slog.String("sourceUrl", sourceURL),
		slog.String("path", destination))
	return nil
}

func documentName(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return DefaultDocumentName
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return DefaultDocumentName
	}
	return name
}
