package sol

import (
	"fmt"
	"time"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
)

// Phase derives the administrative-exhaustion phase from the charge flag and
// the right-to-sue date. A right-to-sue date without a filed charge is ignored.
func Phase(chargeFiled bool, rightToSue *time.Time) model.ExhaustionPhase {
	switch {
	case !chargeFiled:
		return model.PhaseAwaitingCharge
	case rightToSue == nil:
		return model.PhaseAwaitingRightToSue
	default:
		return model.PhaseFinal
	}
}

// exhaustion handles claims that must go through an agency charge before suit
func (c *Calculator) exhaustion(in model.SOLInput, p rules.ClaimProfile, now time.Time) (*model.SOLResult, error) {
	if !c.book.IsKnownJurisdiction(in.Jurisdiction) {
		return nil, unknownJurisdiction(in.Jurisdiction)
	}

	fed := c.book.Federal
	phase := Phase(in.ChargeFiled, in.RightToSue)

	var res *model.SOLResult
	switch phase {
	case model.PhaseAwaitingCharge:
		window := fed.AdministrativeDays
		agency := c.book.HasStateAgency(in.Jurisdiction)
		if agency {
			window = fed.AdministrativeStateDays
		}

		deadline := addDays(in.EventDate, window)
		days := DaysRemaining(deadline, now)

		notes := []string{fmt.Sprintf("Must file EEOC charge within %d days of adverse action", window)}
		if agency {
			notes = append(notes, fmt.Sprintf("%s has state FEPA - %d day deadline applies", in.Jurisdiction, window))
		} else {
			notes = append(notes, fmt.Sprintf("%s does not have state FEPA - %d day deadline applies", in.Jurisdiction, window))
		}
		notes = append(notes,
			"After EEOC investigation, will receive right-to-sue letter",
			fmt.Sprintf("Then %d days to file lawsuit from right-to-sue letter", fed.LawsuitDays),
		)

		res = newResult(in, p, fmt.Sprintf("%d days (EEOC charge)", window), &deadline, days, notes, chargeWarnings.For(days), p.TollingFactors)

	case model.PhaseAwaitingRightToSue:
		notes := []string{
			"EEOC charge filed - awaiting right-to-sue letter",
			fmt.Sprintf("After receiving right-to-sue letter, you have %d days to file lawsuit", fed.LawsuitDays),
		}
		res = newResult(in, p, "Awaiting right-to-sue letter", nil, 0, notes, nil, nil)

	case model.PhaseFinal:
		deadline := addDays(*in.RightToSue, fed.LawsuitDays)
		days := DaysRemaining(deadline, now)

		notes := []string{
			"Right-to-sue letter received",
			fmt.Sprintf("%d days from right-to-sue letter to file lawsuit", fed.LawsuitDays),
		}
		res = newResult(in, p, fmt.Sprintf("%d days from right-to-sue", fed.LawsuitDays), &deadline, days, notes, lawsuitWarnings.For(days), nil)
	}

	res.Phase = phase
	return res, nil
}
