package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/publab/publication-service/internal/shared/util"
)

type requestParameters struct {
	method string
	url    string
	body   any
}

func (p requestParameters) String() string {
	return fmt.Sprintf("%s %s", p.method, p.url)
}

func newJSONRequest(ctx context.Context, requestParams requestParameters) (*http.Request, error) {
	body, err := makeJSONBody(requestParams.body)
	if err != nil {
		return nil, fmt.Errorf("error for %s request: %w",
			requestParams, err)
	}
	request, err := http.NewRequestWithContext(ctx, requestParams.method, requestParams.url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", requestParams, err)
	}
	request.Header.Add("accept", util.ApplicationJSON)
	request.Header.Add("Content-Type", util.ApplicationJSON)
	return request, nil
}

func makeJSONBody(structBody any) (io.Reader, error) {
	if structBody == nil {
		return nil, nil
	}
	var buffer bytes.Buffer
	if err := json.NewEncoder(&buffer).Encode(structBody); err != nil {
		return nil, fmt.Errorf("error encoding body: %w", err)
	}
	return &buffer, nil
}
