// Package sol computes statute of limitations filing deadlines, days remaining
// and urgency for each supported claim type.
package sol

import (
	"fmt"
	"time"

	"github.com/ppiankov/casecalc/internal/logging"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
	"github.com/ppiankov/casecalc/internal/validate"
)

const daysPerYear = 365

// Calculator computes filing deadlines from a rule book
type Calculator struct {
	book   *rules.Book
	logger logging.Logger
}

// NewCalculator creates a calculator over book. A nil book selects the embedded rules.
func NewCalculator(book *rules.Book, logger logging.Logger) *Calculator {
	if book == nil {
		book = rules.MustDefault()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Calculator{book: book, logger: logger}
}

// Calculate computes the deadline for in as seen from now.
// The result is never mutated after it is returned.
func (c *Calculator) Calculate(in model.SOLInput, now time.Time) (*model.SOLResult, error) {
	profile, ok := rules.Profile(in.ClaimType)
	if !ok {
		return nil, fmt.Errorf("no rules profile for claim type %q", in.ClaimType)
	}

	var (
		res *model.SOLResult
		err error
	)
	switch profile.Shape {
	case rules.ShapeBorrowing:
		res, err = c.borrowing(in, profile, now)
	case rules.ShapeWrongfulDeath:
		res, err = c.wrongfulDeath(in, profile, now)
	case rules.ShapeFederal:
		res, err = c.federal(in, profile, now)
	case rules.ShapeExhaustion:
		res, err = c.exhaustion(in, profile, now)
	default:
		return nil, &validate.ValidationError{
			Field:   "claim-type",
			Message: fmt.Sprintf("'%s' has no deadline rule", in.ClaimType),
		}
	}
	if err != nil {
		return nil, err
	}

	c.logger.Debug("deadline calculated",
		"claim_type", in.ClaimType,
		"jurisdiction", res.Jurisdiction,
		"phase", string(res.Phase),
		"days_remaining", res.DaysRemaining,
		"status", string(res.Urgency),
	)
	return res, nil
}

// borrowing applies the state personal-injury period to a federal or state claim
func (c *Calculator) borrowing(in model.SOLInput, p rules.ClaimProfile, now time.Time) (*model.SOLResult, error) {
	rule, ok := c.book.PersonalInjury(in.Jurisdiction)
	if !ok {
		return nil, unknownJurisdiction(in.Jurisdiction)
	}
	return c.fixedPeriod(in, p, rule, fmt.Sprintf("%d years", rule.Years), now), nil
}

// wrongfulDeath applies the wrongful-death period from the date of death
func (c *Calculator) wrongfulDeath(in model.SOLInput, p rules.ClaimProfile, now time.Time) (*model.SOLResult, error) {
	rule, ok := c.book.WrongfulDeath(in.Jurisdiction)
	if !ok {
		return nil, unknownJurisdiction(in.Jurisdiction)
	}
	return c.fixedPeriod(in, p, rule, fmt.Sprintf("%d years from death", rule.Years), now), nil
}

func (c *Calculator) fixedPeriod(in model.SOLInput, p rules.ClaimProfile, rule rules.SOLRule, period string, now time.Time) *model.SOLResult {
	in.Jurisdiction = rule.Code
	deadline := addDays(in.EventDate, rule.Years*daysPerYear)
	days := DaysRemaining(deadline, now)

	notes := make([]string, 0, len(p.TrailingNotes)+2)
	if p.LeadNote != "" {
		notes = append(notes, p.LeadNote)
	}
	notes = append(notes, rule.Description)
	notes = append(notes, p.TrailingNotes...)

	return newResult(in, p, period, &deadline, days, notes, standardWarnings.For(days), p.TollingFactors)
}

// federal applies a fixed federal period with a willful-violation extension
func (c *Calculator) federal(in model.SOLInput, p rules.ClaimProfile, now time.Time) (*model.SOLResult, error) {
	if !c.book.IsKnownJurisdiction(in.Jurisdiction) {
		return nil, unknownJurisdiction(in.Jurisdiction)
	}

	var fp rules.FederalPeriod
	switch in.ClaimType {
	case model.ClaimFMLA:
		fp = c.book.Federal.FMLA
	case model.ClaimFLSA:
		fp = c.book.Federal.FLSA
	default:
		return nil, fmt.Errorf("no federal period for claim type %q", in.ClaimType)
	}

	years := fp.DefaultYears
	period := fmt.Sprintf("%d years", years)
	if in.Willful {
		years = fp.WillfulYears
		period = fmt.Sprintf("%d years (willful violation)", years)
	}
	if years <= 0 {
		return nil, fmt.Errorf("federal period for %s is not configured", in.ClaimType)
	}

	deadline := addDays(in.EventDate, years*daysPerYear)
	days := DaysRemaining(deadline, now)

	notes := append([]string{"Federal statute of limitations applies in every jurisdiction"}, fp.Notes...)

	return newResult(in, p, period, &deadline, days, notes, standardWarnings.For(days), p.TollingFactors), nil
}

func newResult(in model.SOLInput, p rules.ClaimProfile, period string, deadline *time.Time, days int, notes, warnings, tolling []string) *model.SOLResult {
	res := &model.SOLResult{
		ClaimType:      p.Label,
		Jurisdiction:   in.Jurisdiction,
		EventDate:      in.EventDate,
		Period:         period,
		Deadline:       deadline,
		Notes:          nonNil(notes),
		Warnings:       nonNil(warnings),
		TollingFactors: nonNil(append([]string(nil), tolling...)),
		Urgency:        model.UrgencyPending,
	}
	if deadline != nil {
		res.DaysRemaining = days
		res.Expired = days < 0
		res.Urgency = Classify(days)
	}
	return res
}

func unknownJurisdiction(code string) error {
	return &validate.ValidationError{Field: "state", Message: fmt.Sprintf("unknown state: %s", code)}
}

// addDays adds whole calendar days; a year is always 365 of them
func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaysRemaining is the whole number of days from now until deadline,
// floored so that any time past the deadline is negative.
func DaysRemaining(deadline, now time.Time) int {
	d := deadline.Sub(now)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
