package eventmodels

type StockSymbol string

type OptionSymbol string

// ExpirationDate is an option expiration in YYYY-MM-DD form.
type ExpirationDate string
