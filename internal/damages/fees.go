package damages

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
)

// AttorneyFees estimates recoverable fees under a fee-shifting statute.
// The estimate is a step function over total mid (lodestar heuristic), not a formula.
func (e *Estimator) AttorneyFees(totalMid decimal.Decimal, profile rules.ClaimProfile) (decimal.Decimal, []string) {
	if !profile.FeeShifting() {
		return decimal.Zero, []string{"⚠️ No fee-shifting statute - contingency fee typical (33-40% of recovery)"}
	}

	schedule := e.book.Damages.AttorneyFees
	notes := []string{
		fmt.Sprintf("Attorney's fees available under %s", profile.FeeStatute),
		"Fees calculated using lodestar method (hours × rate)",
	}

	fees := schedule.Baseline
	var tierNote string
	for _, tier := range schedule.Tiers {
		if totalMid.GreaterThan(tier.Above) {
			fees = tier.Amount
			tierNote = tier.Note
		}
	}
	if tierNote != "" {
		notes = append(notes, tierNote)
	}

	notes = append(notes,
		fmt.Sprintf("Estimated attorney's fees: %s", model.FormatUSD(fees)),
		"Actual fees depend on hours worked and complexity",
	)

	return fees, notes
}
