package util

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const ApplicationJSON = "application/json"

// Invoke sends the request and returns the response if its status is 2xx.
// Non-2xx responses are converted to errors that include the response body.
func Invoke(request *http.Request, logger *slog.Logger) (*http.Response, error) {
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error invoking %s %s: %w", request.Method, request.URL, err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		defer CloseAndWarn(response, logger)
		body, readErr := io.ReadAll(response.Body)
		if readErr != nil {
			return nil, fmt.Errorf("%s %s returned status %s (error reading response body: %w)",
				request.Method, request.URL, response.Status, readErr)
		}
		return nil, fmt.Errorf("%s %s returned status %s: %s",
			request.Method, request.URL, response.Status, body)
	}
	return response, nil
}

func UnmarshallResponse(response *http.Response, target any) error {
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("error decoding response body: %w", err)
	}
	return nil
}

// CloseAndWarn closes the response body, logging a warning rather than
// returning an error since callers invoke it with defer.
func CloseAndWarn(response *http.Response, logger *slog.Logger) {
	if err := response.Body.Close(); err != nil {
		logger.Warn("error closing response body",
			slog.String("method", response.Request.Method),
			slog.Any("url", response.Request.URL),
			slog.Any("error", err))
	}
}
