package catalog

// PayAsYouGoRates is the a la carte price list for capacity bought outside
// a package's base grant. It is deliberately kept separate from the package
// table: paygo pricing is flat per unit and does not vary by tier.
type PayAsYouGoRates struct {
	FormUnitPrice      int64 `json:"form_unit_price" yaml:"form_unit_price"`
	DashboardUnitPrice int64 `json:"dashboard_unit_price" yaml:"dashboard_unit_price"`
	UserUnitPrice      int64 `json:"user_unit_price" yaml:"user_unit_price"`

	// TokenUnitPriceMicros prices a single token in millionths of a
	// currency unit. Token overage is the only fractional price in the
	// system; everything else stays integer.
	TokenUnitPriceMicros int64 `json:"token_unit_price_micros" yaml:"token_unit_price_micros"`
}

// DefaultPayAsYouGoRates is the production price list.
var DefaultPayAsYouGoRates = PayAsYouGoRates{
	FormUnitPrice:        1500,
	DashboardUnitPrice:   2500,
	UserUnitPrice:        7000,
	TokenUnitPriceMicros: 500, // 0.0005 currency units per token
}

// UnitPrice returns the flat per-unit price for a countable resource.
// Token pricing is fractional and handled by TokenCost instead.
func (r PayAsYouGoRates) UnitPrice(res Resource) int64 {
	switch res {
	case ResourceForms:
		return r.FormUnitPrice
	case ResourceDashboards:
		return r.DashboardUnitPrice
	case ResourceUsers:
		return r.UserUnitPrice
	}
	return 0
}

// TokenCost returns the rounded cost of a token quantity.
// Rounding is half-up at the point the value is derived.
func (r PayAsYouGoRates) TokenCost(tokens int64) int64 {
	if tokens <= 0 {
		return 0
	}
	return roundHalfUpDiv(tokens*r.TokenUnitPriceMicros, 1_000_000)
}

// roundHalfUpDiv divides num by den rounding half up.
// Both arguments must be non-negative; den must be positive.
func roundHalfUpDiv(num, den int64) int64 {
	return (num + den/2) / den
}
