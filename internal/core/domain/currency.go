package domain

// Currency identifies one of the two supported currencies.
type Currency string

const (
	USD Currency = "USD"
	INR Currency = "INR"
)

// IsSupported reports whether the currency is one the pricing engine understands.
func (c Currency) IsSupported() bool {
	return c == USD || c == INR
}
