package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/publab/publication-service/internal/shared/util"
)

// ValidationReport is the conformance checker's verdict on a document.
// An empty Errors list means the document passed; Metadata holds the facts
// the checker resolved while validating (version URIs among them).
type ValidationReport struct {
	Errors   []string          `json:"errors"`
	Metadata map[string]string `json:"metadata"`
}

// Validator runs the submitted document through the conformance checker.
type Validator interface {
	Validate(ctx context.Context, httpLocation string) (ValidationReport, error)
}

type HTTPValidator struct {
	url    string
	logger *slog.Logger
}

func NewHTTPValidator(validatorURL string, logger *slog.Logger) *HTTPValidator {
	return &HTTPValidator{url: validatorURL, logger: logger}
}

func (v *HTTPValidator) Validate(ctx context.Context, httpLocation string) (ValidationReport, error) {
	query := url.Values{}
	query.Add("url", httpLocation)
	requestParams := requestParameters{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/validate?%s", v.url, query.Encode()),
	}
	request, err := newJSONRequest(ctx, requestParams)
	if err != nil {
		return ValidationReport{}, err
	}
	response, err := util.Invoke(request, v.logger)
	if err != nil {
		return ValidationReport{}, err
	}
	defer util.CloseAndWarn(response, v.logger)

	var report ValidationReport
	if err := util.UnmarshallResponse(response, &report); err != nil {
		return ValidationReport{}, fmt.Errorf(
			"error unmarshalling response to %s: %w",
			requestParams,
			err)
	}
	return report, nil
}
