package eventmodels

// OptionContractDTO is one contract as returned by the options provider.
// Volume, OpenInterest and LastPrice are frequently omitted for illiquid
// contracts, hence the pointers. ImpliedVolatility and InTheMoney are
// passed through to the model unmodified.
type OptionContractDTO struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            float64  `json:"strike"`
	LastPrice         *float64 `json:"lastPrice"`
	Volume            *int     `json:"volume"`
	OpenInterest      *int     `json:"openInterest"`
	ImpliedVolatility float64  `json:"impliedVolatility"`
	InTheMoney        bool     `json:"inTheMoney"`
}

// ToModel tags the contract with its option type and expiration and derives
// the estimated premium traded today. Missing volume or last price count
// as zero, so the premium is never negative.
func (dto *OptionContractDTO) ToModel(optionType OptionType, expiry ExpirationDate) *OptionRecord {
	var volume int
	if dto.Volume != nil {
		volume = *dto.Volume
	}

	var openInterest int
	if dto.OpenInterest != nil {
		openInterest = *dto.OpenInterest
	}

	var lastPrice float64
	if dto.LastPrice != nil {
		lastPrice = *dto.LastPrice
	}

	return &OptionRecord{
		ContractSymbol:    OptionSymbol(dto.ContractSymbol),
		OptionType:        optionType,
		Expiry:            expiry,
		Strike:            dto.Strike,
		LastPrice:         lastPrice,
		Volume:            volume,
		OpenInterest:      openInterest,
		PremiumPaid:       float64(volume) * lastPrice * ContractMultiplier,
		ImpliedVolatility: dto.ImpliedVolatility,
		InTheMoney:        dto.InTheMoney,
	}
}
