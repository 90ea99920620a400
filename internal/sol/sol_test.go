package sol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
	"github.com/ppiankov/casecalc/internal/validate"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}

func datePtr(t *testing.T, s string) *time.Time {
	d := date(t, s)
	return &d
}

func newCalculator() *Calculator {
	return NewCalculator(nil, nil)
}

func TestCalculate_Section1983(t *testing.T) {
	res, err := newCalculator().Calculate(model.SOLInput{
		ClaimType:    model.ClaimSection1983,
		Jurisdiction: "CA",
		EventDate:    date(t, "2024-01-15"),
	}, date(t, "2025-06-01"))
	require.NoError(t, err)

	require.NotNil(t, res.Deadline)
	assert.Equal(t, date(t, "2026-01-14"), *res.Deadline)
	assert.Equal(t, 227, res.DaysRemaining)
	assert.False(t, res.Expired)
	assert.Equal(t, model.UrgencyActive, res.Urgency)
	assert.Equal(t, "2 years", res.Period)
	assert.Equal(t, "42 U.S.C. § 1983", res.ClaimType)
	assert.Equal(t, model.PhaseNone, res.Phase)
	assert.Empty(t, res.Warnings)

	require.Len(t, res.Notes, 4)
	assert.Equal(t, "§ 1983 borrows state personal injury statute of limitations", res.Notes[0])
	assert.Equal(t, "California - 2 years", res.Notes[1])
	assert.Len(t, res.TollingFactors, 4)
}

func TestCalculate_BorrowingClaimTypesShareTable(t *testing.T) {
	c := newCalculator()
	now := date(t, "2025-06-01")

	for _, ct := range []model.ClaimType{
		model.ClaimSection1983,
		model.ClaimADATitleII,
		model.ClaimADATitleIII,
		model.ClaimStateTort,
		model.ClaimMedicalMalpractice,
	} {
		res, err := c.Calculate(model.SOLInput{ClaimType: ct, Jurisdiction: "ny", EventDate: date(t, "2024-06-01")}, now)
		require.NoError(t, err, ct)
		assert.Equal(t, date(t, "2027-06-01"), *res.Deadline, ct)
		assert.Equal(t, "3 years", res.Period, ct)
		assert.Contains(t, res.Notes, "New York - 3 years", ct)
	}
}

func TestCalculate_WrongfulDeath(t *testing.T) {
	res, err := newCalculator().Calculate(model.SOLInput{
		ClaimType:    model.ClaimWrongfulDeath,
		Jurisdiction: "TX",
		EventDate:    date(t, "2025-03-10"),
	}, date(t, "2025-06-01"))
	require.NoError(t, err)

	assert.Equal(t, date(t, "2027-03-10"), *res.Deadline)
	assert.Equal(t, "2 years from death", res.Period)
	assert.Equal(t, "Wrongful Death", res.ClaimType)
	assert.Equal(t, "Wrongful death accrues from DATE OF DEATH (not date of injury)", res.Notes[0])
	assert.Contains(t, res.Notes, "Survival action may have different SOL (from date of injury)")
}

func TestCalculate_Expired(t *testing.T) {
	res, err := newCalculator().Calculate(model.SOLInput{
		ClaimType:    model.ClaimStateTort,
		Jurisdiction: "CA",
		EventDate:    date(t, "2020-01-01"),
	}, date(t, "2025-06-01"))
	require.NoError(t, err)

	assert.True(t, res.Expired)
	assert.Less(t, res.DaysRemaining, 0)
	assert.Equal(t, model.UrgencyExpired, res.Urgency)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "EXPIRED")
}

func TestCalculate_BorrowingWarnings(t *testing.T) {
	c := newCalculator()
	in := model.SOLInput{ClaimType: model.ClaimSection1983, Jurisdiction: "CA", EventDate: date(t, "2024-01-15")}
	deadline := date(t, "2026-01-14")

	tests := []struct {
		days    int
		urgency model.Urgency
		warning string
	}{
		{200, model.UrgencyActive, ""},
		{179, model.UrgencyWarning, "⚠️ WARNING: Less than 180 days remaining"},
		{100, model.UrgencyWarning, "⚠️ WARNING: Less than 180 days remaining"},
		{89, model.UrgencyUrgent, "⚠️ URGENT: Less than 90 days remaining!"},
		{10, model.UrgencyCritical, "⚠️ URGENT: Less than 90 days remaining!"},
		{0, model.UrgencyCritical, "⚠️ URGENT: Less than 90 days remaining!"},
		{-1, model.UrgencyExpired, expiredWarning},
	}

	for _, tt := range tests {
		now := deadline.AddDate(0, 0, -tt.days)
		res, err := c.Calculate(in, now)
		require.NoError(t, err)

		assert.Equal(t, tt.days, res.DaysRemaining)
		assert.Equal(t, tt.urgency, res.Urgency, "days %d", tt.days)
		if tt.warning == "" {
			assert.Empty(t, res.Warnings)
		} else {
			assert.Equal(t, []string{tt.warning}, res.Warnings, "days %d", tt.days)
		}
	}
}

func TestPhase(t *testing.T) {
	rts := date(t, "2025-11-01")

	tests := []struct {
		name        string
		chargeFiled bool
		rightToSue  *time.Time
		want        model.ExhaustionPhase
	}{
		{"nothing filed", false, nil, model.PhaseAwaitingCharge},
		{"rts without charge is ignored", false, &rts, model.PhaseAwaitingCharge},
		{"charge filed", true, nil, model.PhaseAwaitingRightToSue},
		{"rts received", true, &rts, model.PhaseFinal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phase(tt.chargeFiled, tt.rightToSue))
		})
	}
}

func TestCalculate_ExhaustionAwaitingCharge(t *testing.T) {
	c := newCalculator()

	tests := []struct {
		state    string
		deadline string
		window   string
		fepa     string
	}{
		{"CA", "2025-11-11", "300 days (EEOC charge)", "CA has state FEPA - 300 day deadline applies"},
		{"GA", "2025-07-14", "180 days (EEOC charge)", "GA does not have state FEPA - 180 day deadline applies"},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			res, err := c.Calculate(model.SOLInput{
				ClaimType:    model.ClaimADATitleI,
				Jurisdiction: tt.state,
				EventDate:    date(t, "2025-01-15"),
			}, date(t, "2025-02-01"))
			require.NoError(t, err)

			assert.Equal(t, model.PhaseAwaitingCharge, res.Phase)
			assert.Equal(t, date(t, tt.deadline), *res.Deadline)
			assert.Equal(t, tt.window, res.Period)
			assert.Equal(t, tt.fepa, res.Notes[1])
			assert.Equal(t, "Then 90 days to file lawsuit from right-to-sue letter", res.Notes[3])
			assert.Equal(t, []string{"Continuing violation doctrine may extend deadline"}, res.TollingFactors)
		})
	}
}

func TestCalculate_ExhaustionChargeWarnings(t *testing.T) {
	c := newCalculator()
	in := model.SOLInput{ClaimType: model.ClaimTitleVII, Jurisdiction: "CA", EventDate: date(t, "2025-01-15")}
	deadline := date(t, "2025-11-11")

	tests := []struct {
		days    int
		warning string
	}{
		{90, ""},
		{59, "⚠️ URGENT: EEOC charge deadline approaching"},
		{29, "🚨 CRITICAL: File EEOC charge immediately!"},
		{-3, expiredWarning},
	}

	for _, tt := range tests {
		res, err := c.Calculate(in, deadline.AddDate(0, 0, -tt.days))
		require.NoError(t, err)
		assert.Equal(t, "Title VII (Employment Discrimination)", res.ClaimType)
		if tt.warning == "" {
			assert.Empty(t, res.Warnings)
			continue
		}
		assert.Equal(t, []string{tt.warning}, res.Warnings, "days %d", tt.days)
	}
}

func TestCalculate_ExhaustionAwaitingRightToSue(t *testing.T) {
	res, err := newCalculator().Calculate(model.SOLInput{
		ClaimType:    model.ClaimADATitleI,
		Jurisdiction: "CA",
		EventDate:    date(t, "2020-01-15"),
		ChargeFiled:  true,
	}, date(t, "2025-06-01"))
	require.NoError(t, err)

	assert.Equal(t, model.PhaseAwaitingRightToSue, res.Phase)
	assert.False(t, res.HasDeadline())
	assert.False(t, res.Expired)
	assert.Equal(t, 0, res.DaysRemaining)
	assert.Equal(t, model.UrgencyPending, res.Urgency)
	assert.Equal(t, "Awaiting right-to-sue letter", res.Period)
	assert.Equal(t, []string{
		"EEOC charge filed - awaiting right-to-sue letter",
		"After receiving right-to-sue letter, you have 90 days to file lawsuit",
	}, res.Notes)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.TollingFactors)
}

func TestCalculate_ExhaustionFinal(t *testing.T) {
	c := newCalculator()
	in := model.SOLInput{
		ClaimType:    model.ClaimADATitleI,
		Jurisdiction: "CA",
		EventDate:    date(t, "2025-01-15"),
		ChargeFiled:  true,
		RightToSue:   datePtr(t, "2025-11-01"),
	}

	tests := []struct {
		now     string
		days    int
		warning string
	}{
		{"2025-11-15", 76, ""},
		{"2026-01-05", 25, "⚠️ URGENT: Lawsuit deadline approaching"},
		{"2026-01-20", 10, "🚨 CRITICAL: File lawsuit immediately!"},
		{"2026-02-02", -3, expiredWarning},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			res, err := c.Calculate(in, date(t, tt.now))
			require.NoError(t, err)

			assert.Equal(t, model.PhaseFinal, res.Phase)
			assert.Equal(t, date(t, "2026-01-30"), *res.Deadline)
			assert.Equal(t, tt.days, res.DaysRemaining)
			assert.Equal(t, tt.days < 0, res.Expired)
			assert.Equal(t, "90 days from right-to-sue", res.Period)
			assert.Equal(t, []string{"Right-to-sue letter received", "90 days from right-to-sue letter to file lawsuit"}, res.Notes)
			assert.Empty(t, res.TollingFactors)
			if tt.warning == "" {
				assert.Empty(t, res.Warnings)
			} else {
				assert.Equal(t, []string{tt.warning}, res.Warnings)
			}
		})
	}
}

func TestCalculate_Federal(t *testing.T) {
	c := newCalculator()
	now := date(t, "2025-06-01")

	res, err := c.Calculate(model.SOLInput{ClaimType: model.ClaimFMLA, Jurisdiction: "WY", EventDate: date(t, "2024-03-01")}, now)
	require.NoError(t, err)
	assert.Equal(t, date(t, "2026-03-01"), *res.Deadline)
	assert.Equal(t, "2 years", res.Period)
	assert.Contains(t, res.Notes, "3 years for willful violations")

	res, err = c.Calculate(model.SOLInput{ClaimType: model.ClaimFLSA, Jurisdiction: "WY", EventDate: date(t, "2024-03-01"), Willful: true}, now)
	require.NoError(t, err)
	assert.Equal(t, date(t, "2027-03-01"), *res.Deadline)
	assert.Equal(t, "3 years (willful violation)", res.Period)
	assert.Equal(t, "Fair Labor Standards Act (FLSA)", res.ClaimType)
}

func TestCalculate_Errors(t *testing.T) {
	c := newCalculator()
	now := date(t, "2025-06-01")

	tests := []struct {
		name string
		in   model.SOLInput
	}{
		{"unknown jurisdiction borrowing", model.SOLInput{ClaimType: model.ClaimSection1983, Jurisdiction: "ZZ", EventDate: now}},
		{"unknown jurisdiction wrongful death", model.SOLInput{ClaimType: model.ClaimWrongfulDeath, Jurisdiction: "ZZ", EventDate: now}},
		{"unknown jurisdiction exhaustion", model.SOLInput{ClaimType: model.ClaimTitleVII, Jurisdiction: "ZZ", EventDate: now}},
		{"unknown jurisdiction federal", model.SOLInput{ClaimType: model.ClaimFMLA, Jurisdiction: "ZZ", EventDate: now}},
		{"generic ada", model.SOLInput{ClaimType: model.ClaimADA, Jurisdiction: "CA", EventDate: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Calculate(tt.in, now)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, validate.IsValidationError(err))
		})
	}

	_, err := c.Calculate(model.SOLInput{ClaimType: "bogus", Jurisdiction: "CA", EventDate: now}, now)
	require.Error(t, err)
}

func TestCalculate_DeadlineInvariants(t *testing.T) {
	c := newCalculator()
	book := rules.MustDefault()
	event := date(t, "2023-07-04")
	now := date(t, "2025-06-01")

	for _, code := range book.Jurisdictions() {
		rule, _ := book.PersonalInjury(code)
		res, err := c.Calculate(model.SOLInput{ClaimType: model.ClaimStateTort, Jurisdiction: code, EventDate: event}, now)
		require.NoError(t, err, code)

		want := event.Add(time.Duration(rule.Years*365) * 24 * time.Hour)
		assert.Equal(t, want, *res.Deadline, code)
		assert.Equal(t, res.DaysRemaining < 0, res.Expired, code)
		assert.Equal(t, Classify(res.DaysRemaining), res.Urgency, code)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		days int
		want model.Urgency
	}{
		{-400, model.UrgencyExpired},
		{-1, model.UrgencyExpired},
		{0, model.UrgencyCritical},
		{29, model.UrgencyCritical},
		{30, model.UrgencyUrgent},
		{89, model.UrgencyUrgent},
		{90, model.UrgencyWarning},
		{179, model.UrgencyWarning},
		{180, model.UrgencyActive},
		{3000, model.UrgencyActive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.days), "days %d", tt.days)
	}
}

func TestDaysRemaining(t *testing.T) {
	deadline := date(t, "2026-01-14")

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", deadline, 0},
		{"one hour before", deadline.Add(-time.Hour), 0},
		{"one day before", deadline.Add(-24 * time.Hour), 1},
		{"one hour after", deadline.Add(time.Hour), -1},
		{"exactly one day after", deadline.Add(24 * time.Hour), -1},
		{"25 hours after", deadline.Add(25 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemaining(deadline, tt.now))
		})
	}
}
