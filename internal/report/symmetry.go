package report

// BalanceShare splits left/right mass into percentages for the two-segment
// balance bar. Both sides reporting zero mass is physically implausible but
// must not divide by zero; it renders as an even 50/50 split.
func BalanceShare(left, right float64) (leftPct, rightPct float64) {
	total := left + right
	if total == 0 {
		return 50, 50
	}
	leftPct = left / total * 100
	return leftPct, 100 - leftPct
}
