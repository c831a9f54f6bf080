package eventmodels

import "fmt"

// Envelope returned by Yahoo Finance's /v7/finance/options endpoint.
// Expirations are unix seconds at midnight UTC.

type YahooOptionChainResponseDTO struct {
	OptionChain YahooOptionChainDTO `json:"optionChain"`
}

type YahooOptionChainDTO struct {
	Result []YahooOptionChainResultDTO `json:"result"`
	Error  *YahooErrorDTO              `json:"error"`
}

type YahooOptionChainResultDTO struct {
	UnderlyingSymbol string            `json:"underlyingSymbol"`
	ExpirationDates  []int64           `json:"expirationDates"`
	Options          []YahooOptionsDTO `json:"options"`
}

type YahooOptionsDTO struct {
	ExpirationDate int64                `json:"expirationDate"`
	Calls          []*OptionContractDTO `json:"calls"`
	Puts           []*OptionContractDTO `json:"puts"`
}

type YahooErrorDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *YahooErrorDTO) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}
