package damages

import (
	"github.com/shopspring/decimal"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/validate"
)

// Economic sums the documented losses and spreads them into tiers.
// Economic damages are never capped.
func (e *Estimator) Economic(in model.EconomicInput) (model.Range, error) {
	total := decimal.Zero
	for _, a := range in.Amounts() {
		if a.Amount.IsNegative() {
			return model.Range{}, &validate.ValidationError{Field: a.Name, Message: "must not be negative"}
		}
		total = total.Add(a.Amount)
	}

	spread := e.book.Damages.EconomicSpread
	return model.Scale(total, spread.Low, spread.Mid, spread.High), nil
}
