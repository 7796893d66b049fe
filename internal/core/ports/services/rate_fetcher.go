package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateFetcher is the outbound capability for retrieving a live USD to INR rate
// from an external source. One attempt, no retries; any failure is an error.
// Fallback policy (keep the last stored rate) belongs to the caller.
type RateFetcher interface {
	FetchUSDToINR(ctx context.Context) (decimal.Decimal, error)
}
