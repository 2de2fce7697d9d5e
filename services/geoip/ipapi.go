// Package geoipsvc resolves client addresses against the ip-api.com JSON API.
package geoipsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core/visitor"
)

const defaultBaseURL = "http://ip-api.com/json"

type ipAPIService struct {
	baseURL string
	client  *http.Client
}

var _ visitor.GeoResolver = (*ipAPIService)(nil)

// NewIPAPIService returns a resolver backed by ip-api.com. baseURL overrides
// the endpoint for tests; pass nothing for the real service.
func NewIPAPIService(baseURL ...string) *ipAPIService {
	base := defaultBaseURL
	if len(baseURL) > 0 && baseURL[0] != "" {
		base = baseURL[0]
	}
	return &ipAPIService{
		baseURL: base,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type ipAPIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Country string `json:"country"`
	City    string `json:"city"`
}

func (svc *ipAPIService) Resolve(ctx context.Context, ip string) (visitor.Location, error) {
	if parsed := net.ParseIP(ip); parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() {
		// nothing useful to look up; caller keeps its Unknown defaults
		return visitor.Location{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+"/"+url.PathEscape(ip), nil)
	if err != nil {
		return visitor.Location{}, errors.Wrap(err, "building geolocation request")
	}

	res, err := svc.client.Do(req)
	if err != nil {
		return visitor.Location{}, errors.Wrap(err, "querying ip-api")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return visitor.Location{}, errors.Errorf("ip-api status %d", res.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return visitor.Location{}, errors.Wrap(err, "decoding ip-api response")
	}
	if body.Status != "success" {
		return visitor.Location{}, errors.New(fmt.Sprintf("ip-api failure: %s", body.Message))
	}
	return visitor.Location{Country: body.Country, City: body.City}, nil
}
