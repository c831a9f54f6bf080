package eventmodels

// OptionsChainProvider is an interface for enumerating option expirations
// and retrieving the call/put sides of a chain for one ticker+expiry.
type OptionsChainProvider interface {
	FetchExpirations(ticker StockSymbol) ([]ExpirationDate, error)
	FetchChain(ticker StockSymbol, expiry ExpirationDate) (calls []*OptionContractDTO, puts []*OptionContractDTO, err error)
}
