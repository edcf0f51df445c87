package report

// TokenRateUSD is the flat per-token rate used for cost estimates.
const TokenRateUSD = 0.00001

// EstimateCostUSD converts a token count into an estimated USD cost.
func EstimateCostUSD(tokens int) float64 {
	return float64(tokens) * TokenRateUSD
}
