package eventmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoExpiriesError(t *testing.T) {
	err := &NoExpiriesError{Ticker: "ZZZZ"}

	assert.Contains(t, err.Error(), "ZZZZ")
}

func TestInvalidExpiryError(t *testing.T) {
	err := &InvalidExpiryError{
		Ticker:    "SPY",
		Expiry:    "2026-03-20",
		Available: []ExpirationDate{"2026-01-16", "2026-02-20"},
	}

	msg := err.Error()

	assert.Contains(t, msg, "2026-03-20")
	assert.Contains(t, msg, "2026-01-16, 2026-02-20")
}
