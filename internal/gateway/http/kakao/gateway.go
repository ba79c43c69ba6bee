package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"laundry/internal/entities"
	"laundry/internal/service/geo"
)

const (
	providerName     = "kakao"
	searchAddressURI = "/v2/local/search/address.json"
	maxErrorBodySize = 4 << 10
)

// UpstreamStatusError - Kakao ответил не 2xx.
type UpstreamStatusError struct {
	StatusCode int
	ErrorType  string
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("kakao local api status %d: %s %s", e.StatusCode, e.ErrorType, e.Message)
}

func (e *UpstreamStatusError) Unwrap() error {
	return geo.ErrUpstream
}

type Gateway struct {
	client  httpClient
	baseURL string
	apiKey  string
}

func New(client httpClient, baseURL, apiKey string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Search вызывает поиск адреса Kakao Local. Повторов нет, таймаут задает ctx.
func (g *Gateway) Search(ctx context.Context, query string) ([]entities.GeocodeResult, error) {
	start := time.Now()
	results, err := g.search(ctx, query)
	GeocoderRequestDuration.WithLabelValues(providerName, outcome(err)).Observe(time.Since(start).Seconds())
	return results, err
}

func (g *Gateway) search(ctx context.Context, query string) ([]entities.GeocodeResult, error) {
	endpoint := g.baseURL + searchAddressURI + "?" + url.Values{"query": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("kakao gateway, build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+g.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao gateway, search address: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newUpstreamStatusError(resp)
	}

	var body searchAddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kakao gateway, decode response: %w: %w", geo.ErrUpstream, err)
	}

	return toDomainList(&body), nil
}

func newUpstreamStatusError(resp *http.Response) *UpstreamStatusError {
	statusErr := &UpstreamStatusError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return statusErr
	}
	var body errorResponse
	if json.Unmarshal(raw, &body) == nil {
		statusErr.ErrorType = body.ErrorType
		statusErr.Message = body.Message
	}
	return statusErr
}

func outcome(err error) string {
	var statusErr *UpstreamStatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("http_%d", statusErr.StatusCode)
	default:
		return "error"
	}
}
