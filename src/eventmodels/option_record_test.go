package eventmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionRecordsString(t *testing.T) {
	records := OptionRecords{
		{
			ContractSymbol:    "SPY260116C00500000",
			OptionType:        OptionTypeCall,
			Expiry:            "2026-01-16",
			Strike:            500,
			LastPrice:         2.5,
			Volume:            12500,
			OpenInterest:      340,
			PremiumPaid:       3125000,
			ImpliedVolatility: 0.1925,
			InTheMoney:        false,
		},
	}

	display := records.String()

	assert.Contains(t, display, "SPY260116C00500000")
	assert.Contains(t, display, "call")
	assert.Contains(t, display, "2026-01-16")
	assert.Contains(t, display, "12,500")
	assert.Contains(t, display, "$3,125,000.00")
	assert.Contains(t, display, "0.1925")
	assert.Contains(t, display, "false")
}

func TestOptionRecordsStringEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = OptionRecords{}.String()
	})
}
