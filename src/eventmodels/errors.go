package eventmodels

import (
	"fmt"
	"strings"
)

// NoExpiriesError indicates the ticker has no listed option expirations,
// either because options do not trade on it or the ticker is invalid.
type NoExpiriesError struct {
	Ticker StockSymbol
}

func (e *NoExpiriesError) Error() string {
	return fmt.Sprintf("no option expiries found for ticker '%s'", e.Ticker)
}

// InvalidExpiryError indicates a caller-supplied expiry is not in the
// provider's available set. The message lists every valid alternative so
// the caller can retry.
type InvalidExpiryError struct {
	Ticker    StockSymbol
	Expiry    ExpirationDate
	Available []ExpirationDate
}

func (e *InvalidExpiryError) Error() string {
	available := make([]string, 0, len(e.Available))
	for _, expiry := range e.Available {
		available = append(available, string(expiry))
	}

	return fmt.Sprintf("expiry '%s' is not available for '%s'. Available expiries: %s", e.Expiry, e.Ticker, strings.Join(available, ", "))
}
