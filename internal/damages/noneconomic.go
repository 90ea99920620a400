package damages

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ppiankov/casecalc/internal/model"
)

// NonEconomic estimates pain and suffering from economic mid, injury severity
// and plaintiff age, then applies any non-economic or malpractice cap.
//
// The cap triggers on the high tier only, but once triggered every tier is
// clamped to min(tier, cap).
func (e *Estimator) NonEconomic(severity model.InjurySeverity, age int, economicMid decimal.Decimal, jurisdiction string) (model.Range, []string, error) {
	var notes []string

	mult, ok := e.book.SeverityMultipliers(string(severity))
	if !ok {
		return model.Range{}, nil, fmt.Errorf("no multipliers for injury severity %q", severity)
	}

	band := e.book.AgeBand(age)
	if band.Note != "" {
		notes = append(notes, band.Note)
	}

	base := economicMid.Mul(band.Factor)
	r := model.Scale(base, mult.Low, mult.Mid, mult.High)

	if limit, ok := e.book.DamagesCap(jurisdiction); ok && limit.Category.LimitsNonEconomic() {
		if r.High.GreaterThan(limit.Limit) {
			notes = append(notes,
				fmt.Sprintf("⚠️ %s has %s", limit.Code, limit.Description),
				fmt.Sprintf("High estimate capped at %s", model.FormatUSD(limit.Limit)),
			)
			r = r.Clamp(limit.Limit)
			e.logger.Debug("non-economic cap applied", "jurisdiction", limit.Code, "cap", limit.Limit.String())
		}
	}

	return r, notes, nil
}
