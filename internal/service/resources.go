package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/publab/publication-service/internal/shared/util"
)

// Violation is one disallowed third-party resource found in a document.
type Violation struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Type, v.URL)
}

// ResourceChecker scans a document for disallowed third-party resources.
// An empty violation list means the document is clean.
type ResourceChecker interface {
	Check(ctx context.Context, httpLocation string) ([]Violation, error)
}

type HTTPResourceChecker struct {
	url    string
	logger *slog.Logger
}

func NewHTTPResourceChecker(checkerURL string, logger *slog.Logger) *HTTPResourceChecker {
	return &HTTPResourceChecker{url: checkerURL, logger: logger}
}

type resourceCheckResponse struct {
	Violations []Violation `json:"violations"`
}

func (c *HTTPResourceChecker) Check(ctx context.Context, httpLocation string) ([]Violation, error) {
	query := url.Values{}
	query.Add("url", httpLocation)
	requestParams := requestParameters{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/checks?%s", c.url, query.Encode()),
	}
	request, err := newJSONRequest(ctx, requestParams)
	if err != nil {
		return nil, err
	}
	response, err := util.Invoke(request, c.logger)
	if err != nil {
		return nil, err
	}
	defer util.CloseAndWarn(response, c.logger)

	var responseDTO resourceCheckResponse
	if err := util.UnmarshallResponse(response, &responseDTO); err != nil {
		return nil, fmt.Errorf(
			"error unmarshalling response to %s: %w",
			requestParams,
			err)
	}
	return responseDTO.Violations, nil
}
