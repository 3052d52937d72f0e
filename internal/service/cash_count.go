package service

import (
	"github.com/madouyatt95/laserpark/internal/dto"

	"github.com/shopspring/decimal"
)

// XOF denominations accepted at the till, largest first.
var Denominations = []int64{10000, 5000, 2000, 1000, 500, 250, 200, 100, 50, 25}

// TallyCount computes the physically counted total from a denomination tally:
// Σ face value × count. Negative counts are clamped to 0; a denomination with
// no line counts as 0. No upper bound is enforced.
func TallyCount(lines []dto.DenominationLine) int64 {
	var total int64
	for _, line := range lines {
		count := line.Count
		if count < 0 {
			count = 0
		}
		total += line.Value * int64(count)
	}
	return total
}

// ReconcileCash compares a counted total against the expected cash revenue.
// Expected is the day's revenue received via the cash method only — cash-paid
// expenses are NOT netted against the till: the count validates cash revenue
// capture, not the till's net physical balance.
//
// A non-zero difference is flagged, never blocking: the operator may proceed
// and the discrepancy is carried onto the closure record.
func ReconcileCash(counted, expected int64) dto.CashCountResponse {
	difference := counted - expected
	pct := decimal.Zero
	if expected != 0 {
		pct = decimal.NewFromInt(difference).
			Div(decimal.NewFromInt(expected)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return dto.CashCountResponse{
		TotalCounted:   counted,
		ExpectedAmount: expected,
		Difference:     difference,
		Reconciled:     difference == 0,
		DifferencePct:  pct,
		Classification: classifyDifference(pct),
	}
}

// classifyDifference grades a deviation percentage for the closure report.
// normal: |pct| <= 1, warning: <= 5, critical: > 5. Informational only.
func classifyDifference(pct decimal.Decimal) string {
	abs := pct.Abs()
	switch {
	case abs.LessThanOrEqual(decimal.NewFromInt(1)):
		return "normal"
	case abs.LessThanOrEqual(decimal.NewFromInt(5)):
		return "warning"
	default:
		return "critical"
	}
}
