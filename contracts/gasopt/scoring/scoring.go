/*
Package scoring converts gas usage deltas into optimization scores.

Functions of the package are used both by the GasOpt contract and by
off-chain clients, so they stick to integer arithmetic only: percentages are
truncated the same way NeoVM DIV truncates.
*/
package scoring

// Score thresholds in percents of saved gas, highest first.
const (
	ExcellentThreshold = 50
	GoodThreshold      = 30
	FairThreshold      = 15
	MinorThreshold     = 5
)

// Valid reports whether the pair can be scored: optimized gas must be
// non-negative and strictly less than the original one.
func Valid(original, optimized int) bool {
	return optimized >= 0 && original > optimized
}

// SavingsPercent returns the truncated share of saved gas in percents.
// The pair must be Valid.
func SavingsPercent(original, optimized int) int {
	return (original - optimized) * 100 / original
}

// Score maps the saved gas share to one of 20, 40, 60, 80 or 100.
// The pair must be Valid.
func Score(original, optimized int) int {
	pct := SavingsPercent(original, optimized)

	switch {
	case pct >= ExcellentThreshold:
		return 100
	case pct >= GoodThreshold:
		return 80
	case pct >= FairThreshold:
		return 60
	case pct >= MinorThreshold:
		return 40
	default:
		return 20
	}
}
