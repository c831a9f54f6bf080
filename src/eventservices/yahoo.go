package eventservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jiaming2012/top-options-contracts/src/eventmodels"
)

const DefaultYahooBaseURL = "https://query2.finance.yahoo.com"

// YahooOptionsClient fetches option chains from Yahoo Finance's public
// options endpoint. It implements eventmodels.OptionsChainProvider.
type YahooOptionsClient struct {
	BaseURL string
	client  http.Client
}

func NewYahooOptionsClient(baseURL string) *YahooOptionsClient {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}

	return &YahooOptionsClient{
		BaseURL: baseURL,
		client: http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *YahooOptionsClient) fetchOptionChainResult(ticker eventmodels.StockSymbol, expiryUnix int64) (*eventmodels.YahooOptionChainResultDTO, error) {
	url := fmt.Sprintf("%s/v7/finance/options/%s", c.BaseURL, ticker)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetchOptionChainResult: failed to create request: %w", err)
	}

	if expiryUnix > 0 {
		q := req.URL.Query()
		q.Add("date", strconv.FormatInt(expiryUnix, 10))
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Add("Accept", "application/json")
	// Yahoo rejects Go's default user agent
	req.Header.Add("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetchOptionChainResult: failed to fetch option chain: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchOptionChainResult: failed to fetch option chain, http code %v", res.Status)
	}

	var dto eventmodels.YahooOptionChainResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("fetchOptionChainResult: failed to decode json: %w", err)
	}

	if dto.OptionChain.Error != nil {
		return nil, fmt.Errorf("fetchOptionChainResult: provider returned error: %w", dto.OptionChain.Error)
	}

	if len(dto.OptionChain.Result) == 0 {
		return &eventmodels.YahooOptionChainResultDTO{}, nil
	}

	return &dto.OptionChain.Result[0], nil
}

// FetchExpirations returns the available expirations for ticker in
// provider order, soonest first.
func (c *YahooOptionsClient) FetchExpirations(ticker eventmodels.StockSymbol) ([]eventmodels.ExpirationDate, error) {
	result, err := c.fetchOptionChainResult(ticker, 0)
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: %w", err)
	}

	expirations := make([]eventmodels.ExpirationDate, 0, len(result.ExpirationDates))
	for _, ts := range result.ExpirationDates {
		expirations = append(expirations, eventmodels.ExpirationDate(time.Unix(ts, 0).UTC().Format("2006-01-02")))
	}

	return expirations, nil
}

// FetchChain returns the call and put sides of the chain for one expiry,
// each in provider order.
func (c *YahooOptionsClient) FetchChain(ticker eventmodels.StockSymbol, expiry eventmodels.ExpirationDate) ([]*eventmodels.OptionContractDTO, []*eventmodels.OptionContractDTO, error) {
	expiryDate, err := time.Parse("2006-01-02", string(expiry))
	if err != nil {
		return nil, nil, fmt.Errorf("FetchChain: failed to parse expiry %s: %w", expiry, err)
	}

	result, err := c.fetchOptionChainResult(ticker, expiryDate.UTC().Unix())
	if err != nil {
		return nil, nil, fmt.Errorf("FetchChain: %w", err)
	}

	if len(result.Options) == 0 {
		return nil, nil, nil
	}

	return result.Options[0].Calls, result.Options[0].Puts, nil
}
