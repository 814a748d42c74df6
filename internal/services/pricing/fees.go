package pricing

type FeeCalculator struct{}

func NewFeeCalculator() *FeeCalculator {
	return &FeeCalculator{}
}

// Apply adds the flat fee, then charges the percentage fee on the flat-fee
// adjusted cost. The ordering is a contract with the existing storefront:
// (base + flat) * (1 + pct/100), never base*(1+pct/100) + flat.
func (f *FeeCalculator) Apply(baseCost float64, cfg FeeConfig) float64 {
	withFlat := baseCost + cfg.FlatFee
	final := withFlat + withFlat*cfg.PercentageFee/100
	if final < 0 {
		return 0
	}
	return final
}
