// Package ratefetch provides the outbound HTTP client for retrieving a live
// USD to INR exchange rate from a public rate API.
package ratefetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/priceworks/price_calculator_app/internal/apperrors"
	portssvc "github.com/priceworks/price_calculator_app/internal/core/ports/services"
)

// DefaultRateAPIURL is the public endpoint queried when no override is configured.
const DefaultRateAPIURL = "https://api.exchangerate-api.com/v4/latest/USD"

// DefaultTimeout bounds a single fetch attempt.
const DefaultTimeout = 10 * time.Second

// ratesPayload matches the relevant part of the rate API response body.
type ratesPayload struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ExchangeRateClient fetches USD to INR rates over HTTP. One attempt per call,
// no retries; callers decide the fallback policy.
type ExchangeRateClient struct {
	url        string
	httpClient *http.Client
}

// NewExchangeRateClient creates a client for the given endpoint. Empty url or
// non-positive timeout fall back to the package defaults.
func NewExchangeRateClient(url string, timeout time.Duration) *ExchangeRateClient {
	if url == "" {
		url = DefaultRateAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExchangeRateClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portssvc.RateFetcher = (*ExchangeRateClient)(nil)

// FetchUSDToINR queries the rate API and extracts the INR rate.
func (c *ExchangeRateClient) FetchUSDToINR(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to build rate API request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(502, "rate API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, apperrors.NewAppError(502,
			fmt.Sprintf("rate API returned status %d", resp.StatusCode), nil)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, apperrors.NewAppError(502, "failed to decode rate API response", err)
	}

	rate, ok := payload.Rates["INR"]
	if !ok {
		return decimal.Zero, apperrors.NewAppError(502, "rate API response missing INR rate", nil)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, apperrors.NewAppError(502, "rate API returned non-positive INR rate", apperrors.ErrInvalidRate)
	}

	return rate, nil
}
