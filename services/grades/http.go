// Package gradessvc implements grades.Service against the external grading
// service, a pass-through: one GET per lookup, body relayed verbatim.
package gradessvc

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core/grades"
)

type httpService struct {
	baseURL string
	client  *http.Client
}

var _ grades.Service = (*httpService)(nil)

// NewHTTPService targets the grading service at baseURL. An empty baseURL is
// tolerated; every lookup then degrades like an unreachable upstream.
func NewHTTPService(baseURL string) *httpService {
	return &httpService{
		baseURL: baseURL,
		// transport defaults only: a lookup is a single attempt, no retries,
		// no deadline beyond what the transport enforces
		client: http.DefaultClient,
	}
}

func (svc *httpService) FetchRenderedGrades(ctx context.Context, apogee string) (string, error) {
	if svc.baseURL == "" {
		return "", errors.Wrap(grades.ErrUpstreamUnavailable, "grading service not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+"?apogee="+url.QueryEscape(apogee), nil)
	if err != nil {
		return "", errors.Wrapf(grades.ErrUpstreamUnavailable, "building request: %v", err)
	}

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(grades.ErrUpstreamUnavailable, "calling grading service: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", errors.Wrapf(grades.ErrUpstreamUnavailable, "grading service status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrapf(grades.ErrUpstreamUnavailable, "reading grading service response: %v", err)
	}
	return string(body), nil
}
