package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/publab/publication-service/internal/shared/util"
)

// TokenDecision is the token service's answer for one version URL.
// Source is the canonical URL the presented token grants publication under.
type TokenDecision struct {
	Authorized bool   `json:"authorized"`
	Source     string `json:"source"`
}

// Authorizes reports whether this decision authorizes publication at
// requestURL: the token service must have accepted the token and requestURL
// must begin with the canonical source, with http: and https: treated as the
// same scheme.
func (d TokenDecision) Authorizes(requestURL string) bool {
	return d.Authorized && d.Source != "" &&
		strings.HasPrefix(canonicalScheme(requestURL), canonicalScheme(d.Source))
}

func canonicalScheme(u string) string {
	if rest, found := strings.CutPrefix(u, "https:"); found {
		return "http:" + rest
	}
	return u
}

// TokenChecker verifies a publication token against the version URL it is
// being used to publish.
type TokenChecker interface {
	Check(ctx context.Context, versionURL, token string) (TokenDecision, error)
}

type HTTPTokenChecker struct {
	url    string
	logger *slog.Logger
}

func NewHTTPTokenChecker(tokenServiceURL string, logger *slog.Logger) *HTTPTokenChecker {
	return &HTTPTokenChecker{url: tokenServiceURL, logger: logger}
}

func (c *HTTPTokenChecker) Check(ctx context.Context, versionURL, token string) (TokenDecision, error) {
	query := url.Values{}
	query.Add("url", versionURL)
	query.Add("token", token)
	requestParams := requestParameters{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/authorize?%s", c.url, query.Encode()),
	}
	request, err := newJSONRequest(ctx, requestParams)
	if err != nil {
		return TokenDecision{}, err
	}
	response, err := util.Invoke(request, c.logger)
	if err != nil {
		return TokenDecision{}, err
	}
	defer util.CloseAndWarn(response, c.logger)

	var decision TokenDecision
	if err := util.UnmarshallResponse(response, &decision); err != nil {
		return TokenDecision{}, fmt.Errorf(
			"error unmarshalling response to %s: %w",
			requestParams,
			err)
	}
	return decision, nil
}
