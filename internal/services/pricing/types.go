package pricing

// FeeConfig holds the platform fee configuration read from the settings
// store. Both values are non-negative; PercentageFee is expressed in percent
// (10 means 10%).
type FeeConfig struct {
	FlatFee       float64
	PercentageFee float64
}

// Quote is the outcome of a price calculation. Amount is 0 when the quantity
// matched no tier or the tier data was malformed; that is a recovered result,
// not an error. UsedFallbackRate reports that currency conversion fell back
// to a hard-coded default instead of a stored market rate.
type Quote struct {
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	UsedFallbackRate bool    `json:"used_fallback_rate"`
}
