package eventservices

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/top-options-contracts/src/eventmodels"
)

// FetchOptionsChain retrieves the full chain (calls then puts, provider
// order) for ticker at the given expiry. An empty expiry selects the first
// available expiration. Every record is tagged with its option type and
// the resolved expiry, with the estimated traded premium derived.
func FetchOptionsChain(requestID uuid.UUID, provider eventmodels.OptionsChainProvider, ticker eventmodels.StockSymbol, expiry eventmodels.ExpirationDate) ([]*eventmodels.OptionRecord, error) {
	expirations, err := provider.FetchExpirations(ticker)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionsChain: failed to fetch expirations: %w", err)
	}

	if len(expirations) == 0 {
		return nil, &eventmodels.NoExpiriesError{Ticker: ticker}
	}

	selectedExpiry := expiry
	if selectedExpiry == "" {
		selectedExpiry = expirations[0]
	} else {
		found := false
		for _, e := range expirations {
			if e == selectedExpiry {
				found = true
				break
			}
		}

		if !found {
			return nil, &eventmodels.InvalidExpiryError{Ticker: ticker, Expiry: selectedExpiry, Available: expirations}
		}
	}

	log.Infof("FetchOptionsChain [%s]: resolved expiry %s for %s", requestID, selectedExpiry, ticker)

	calls, puts, err := provider.FetchChain(ticker, selectedExpiry)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionsChain: failed to fetch chain: %w", err)
	}

	records := make([]*eventmodels.OptionRecord, 0, len(calls)+len(puts))

	for _, dto := range calls {
		records = append(records, dto.ToModel(eventmodels.OptionTypeCall, selectedExpiry))
	}

	for _, dto := range puts {
		records = append(records, dto.ToModel(eventmodels.OptionTypePut, selectedExpiry))
	}

	log.Infof("FetchOptionsChain [%s]: fetched %d calls and %d puts", requestID, len(calls), len(puts))

	return records, nil
}
