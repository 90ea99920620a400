// Package validate turns raw user input into the typed inputs consumed by the
// damages and statute of limitations engines.
package validate

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
)

// DateLayout is the only accepted date format
const DateLayout = "2006-01-02"

const (
	minAge = 0
	maxAge = 120
)

// DamagesRequest is raw damages input as supplied by flags or a batch file
type DamagesRequest struct {
	State              string  `yaml:"state"`
	Age                int     `yaml:"age"`
	ClaimType          string  `yaml:"claim_type"`
	InjurySeverity     string  `yaml:"injury_severity"`
	ConductSeverity    string  `yaml:"conduct_severity"`
	MedicalExpenses    float64 `yaml:"medical_expenses"`
	FutureMedical      float64 `yaml:"future_medical"`
	LostWages          float64 `yaml:"lost_wages"`
	FutureLostEarnings float64 `yaml:"future_lost_earnings"`
	PropertyDamage     float64 `yaml:"property_damage"`
}

// SOLRequest is raw deadline input as supplied by flags or a batch file
type SOLRequest struct {
	ClaimType   string `yaml:"claim_type"`
	State       string `yaml:"state"`
	InjuryDate  string `yaml:"injury_date"`
	DeathDate   string `yaml:"death_date"`
	EEOCFiled   bool   `yaml:"eeoc_filed"`
	EEOCRTSDate string `yaml:"eeoc_rts_date"`
	Willful     bool   `yaml:"willful"`
}

// Jurisdiction normalizes a two-letter code and checks it against the book
func Jurisdiction(book *rules.Book, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", invalid("state", "required")
	}
	if !book.IsKnownJurisdiction(code) {
		return "", invalid("state", "unknown state code '%s' (valid codes: %s)", code, strings.Join(book.Jurisdictions(), ", "))
	}
	return code, nil
}

// Date parses a YYYY-MM-DD date as midnight UTC
func Date(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid(field, "required (YYYY-MM-DD)")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   field,
			Message: "error parsing date " + s + "; use format YYYY-MM-DD (e.g., 2025-01-15)",
			Err:     err,
		}
	}
	return t, nil
}

// Age checks the plaintiff age range
func Age(age int) error {
	if age < minAge || age > maxAge {
		return invalid("age", "must be between %d and %d", minAge, maxAge)
	}
	return nil
}

// Amount converts a finite, non-negative money amount
func Amount(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, invalid(field, "must be a finite number")
	}
	if v < 0 {
		return decimal.Zero, invalid(field, "must not be negative")
	}
	return decimal.NewFromFloat(v), nil
}

// ClaimType resolves a claim type name
func ClaimType(s string) (model.ClaimType, error) {
	ct, ok := model.ParseClaimType(s)
	if !ok {
		names := make([]string, len(model.AllClaimTypes))
		for i, c := range model.AllClaimTypes {
			names[i] = string(c)
		}
		return "", invalid("claim-type", "unsupported claim type '%s' (choose from %s)", s, strings.Join(names, ", "))
	}
	return ct, nil
}

// Damages validates a damages request against the rule book
func Damages(book *rules.Book, req DamagesRequest) (model.DamagesInput, error) {
	var in model.DamagesInput

	code, err := Jurisdiction(book, req.State)
	if err != nil {
		return in, err
	}
	if err := Age(req.Age); err != nil {
		return in, err
	}
	ct, err := ClaimType(req.ClaimType)
	if err != nil {
		return in, err
	}
	sev, ok := model.ParseInjurySeverity(req.InjurySeverity)
	if !ok {
		return in, invalid("injury-severity", "unsupported severity '%s' (choose from minor, moderate, serious, catastrophic, death)", req.InjurySeverity)
	}

	conduct := req.ConductSeverity
	if strings.TrimSpace(conduct) == "" {
		conduct = rules.FallbackConduct
	}
	// Unknown conduct passes through; the engine applies and reports the fallback.
	c, _ := model.ParseConduct(conduct)

	amounts := []struct {
		field string
		value float64
		dst   *decimal.Decimal
	}{
		{"medical-expenses", req.MedicalExpenses, &in.Economic.MedicalExpenses},
		{"future-medical", req.FutureMedical, &in.Economic.FutureMedical},
		{"lost-wages", req.LostWages, &in.Economic.LostWages},
		{"future-lost-earnings", req.FutureLostEarnings, &in.Economic.FutureLostEarnings},
		{"property-damage", req.PropertyDamage, &in.Economic.PropertyDamage},
	}
	for _, a := range amounts {
		v, err := Amount(a.field, a.value)
		if err != nil {
			return in, err
		}
		*a.dst = v
	}

	in.Jurisdiction = code
	in.Age = req.Age
	in.ClaimType = ct
	in.Severity = sev
	in.Conduct = c
	return in, nil
}

// SOL validates a deadline request against the rule book
func SOL(book *rules.Book, req SOLRequest) (model.SOLInput, error) {
	var in model.SOLInput

	ct, err := ClaimType(req.ClaimType)
	if err != nil {
		return in, err
	}
	profile, _ := rules.Profile(ct)
	if profile.Shape == rules.ShapeUnsupported {
		return in, invalid("claim-type", "'%s' has no deadline rule; use ada-title-i, ada-title-ii or ada-title-iii", ct)
	}

	code, err := Jurisdiction(book, req.State)
	if err != nil {
		return in, err
	}

	var event time.Time
	if ct == model.ClaimWrongfulDeath {
		if strings.TrimSpace(req.DeathDate) == "" {
			return in, invalid("death-date", "required for wrongful death claims")
		}
		event, err = Date("death-date", req.DeathDate)
	} else {
		if strings.TrimSpace(req.InjuryDate) == "" {
			return in, invalid("injury-date", "required")
		}
		event, err = Date("injury-date", req.InjuryDate)
	}
	if err != nil {
		return in, err
	}

	if strings.TrimSpace(req.EEOCRTSDate) != "" {
		rts, err := Date("eeoc-rts-date", req.EEOCRTSDate)
		if err != nil {
			return in, err
		}
		in.RightToSue = &rts
	}

	in.ClaimType = ct
	in.Jurisdiction = code
	in.EventDate = event
	in.ChargeFiled = req.EEOCFiled
	in.Willful = req.Willful
	return in, nil
}
