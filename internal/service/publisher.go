package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/publab/publication-service/internal/shared/util"
)

// PublishError is one reason the publishing backend rejected a request.
type PublishError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e PublishError) String() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Publisher registers the validated document with the publishing backend.
// A non-empty error list is a rejection, not a transport failure.
type Publisher interface {
	Publish(ctx context.Context, metadata map[string]string) ([]PublishError, error)
}

type HTTPPublisher struct {
	url      string
	username string
	password string
	logger   *slog.Logger
}

func NewHTTPPublisher(publisherURL, username, password string, logger *slog.Logger) *HTTPPublisher {
	return &HTTPPublisher{
		url:      publisherURL,
		username: username,
		password: password,
		logger:   logger,
	}
}

type publishRequest struct {
	Metadata map[string]string `json:"metadata"`
}

type publishResponse struct {
	Errors []PublishError `json:"errors"`
}

func (p *HTTPPublisher) Publish(ctx context.Context, metadata map[string]string) ([]PublishError, error) {
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/publish", p.url),
		body:   publishRequest{Metadata: metadata},
	}
	request, err := newJSONRequest(ctx, requestParams)
	if err != nil {
		return nil, err
	}
	request.SetBasicAuth(p.username, p.password)
	response, err := util.Invoke(request, p.logger)
	if err != nil {
		return nil, err
	}
	defer util.CloseAndWarn(response, p.logger)

	var responseDTO publishResponse
	if err := util.UnmarshallResponse(response, &responseDTO); err != nil {
		return nil, fmt.Errorf(
			"error unmarshalling response to %s: %w",
			requestParams,
			err)
	}
	return responseDTO.Errors, nil
}
