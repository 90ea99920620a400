package damages

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
)

// Punitive estimates punitive damages over the compensatory mid.
//
// Order matters: the constitutional ratio guard runs before the jurisdiction
// ceiling, and every clamp is a min so no tier is ever raised.
func (e *Estimator) Punitive(compensatoryMid decimal.Decimal, conduct model.Conduct, jurisdiction string, profile rules.ClaimProfile) (model.Range, []string) {
	var notes []string

	if !profile.PunitiveAvailable {
		if profile.PunitiveNote != "" {
			notes = append(notes, profile.PunitiveNote)
		}
		return model.ZeroRange(), notes
	}
	if profile.PunitiveNote != "" {
		notes = append(notes, profile.PunitiveNote)
	}

	mult, ok := e.book.ConductMultipliers(string(conduct))
	if !ok {
		notes = append(notes, fmt.Sprintf("Unrecognized conduct severity %q - treated as %s", conduct, rules.FallbackConduct))
		mult, _ = e.book.ConductMultipliers(rules.FallbackConduct)
	}

	r := model.Scale(compensatoryMid, mult.Low, mult.Mid, mult.High)

	r, guardNotes := e.ratioGuard(r, compensatoryMid)
	notes = append(notes, guardNotes...)

	if rule, ok := e.book.PunitiveCap(jurisdiction); ok {
		ceiling := rule.Ceiling(compensatoryMid)
		notes = append(notes, rule.Description)
		r = r.Clamp(ceiling)
		e.logger.Debug("punitive ceiling applied", "jurisdiction", rule.Code, "kind", string(rule.Kind), "ceiling", ceiling.String())
	}

	return r, notes
}

// ratioGuard caps the punitive-to-compensatory ratio (BMW v. Gore, State Farm
// v. Campbell). It triggers only when the ratio strictly exceeds the maximum
// and the compensatory base exceeds the configured floor.
func (e *Estimator) ratioGuard(r model.Range, compensatoryMid decimal.Decimal) (model.Range, []string) {
	g := e.book.Damages.RatioGuard

	// Floor check first: it also rules out a zero compensatory base.
	if !compensatoryMid.GreaterThan(g.MinCompensatory) || !compensatoryMid.IsPositive() {
		return r, nil
	}
	if !r.High.Div(compensatoryMid).GreaterThan(g.MaxRatio) {
		return r, nil
	}

	notes := []string{
		fmt.Sprintf("⚠️ Ratio exceeds %s:1 - constitutional limits may apply", g.MaxRatio),
		fmt.Sprintf("Consider %s:1 ratio as conservative estimate", g.MidRatio),
	}

	r.High = compensatoryMid.Mul(g.HighRatio)
	r.Mid = decimal.Min(r.Mid, compensatoryMid.Mul(g.MidRatio))
	r.Low = decimal.Min(r.Low, r.Mid)

	return r, notes
}
