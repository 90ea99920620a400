// Package rules holds the jurisdiction and claim-type tables consumed by the
// damages and statute of limitations engines. A Book is immutable once loaded
// and safe for concurrent reads.
package rules

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CapCategory classifies a jurisdiction damages cap
type CapCategory string

const (
	CapNonEconomic        CapCategory = "non_economic"
	CapMedicalMalpractice CapCategory = "medical_malpractice"
	CapPunitiveRatio      CapCategory = "punitive_ratio"
)

// LimitsNonEconomic reports whether the cap clamps non-economic damages
func (c CapCategory) LimitsNonEconomic() bool {
	return c == CapNonEconomic || c == CapMedicalMalpractice
}

// JurisdictionRule is a statutory damages cap for one jurisdiction
type JurisdictionRule struct {
	Code        string          `json:"code" yaml:"-"`
	Category    CapCategory     `json:"category" yaml:"category"`
	Limit       decimal.Decimal `json:"limit" yaml:"limit"`
	Description string          `json:"description" yaml:"description"`
}

// SOLRule is a limitations period for one jurisdiction
type SOLRule struct {
	Code        string `json:"code" yaml:"-"`
	Years       int    `json:"years" yaml:"years"`
	Description string `json:"description" yaml:"description"`
}

// PunitiveKind selects how a punitive ceiling is computed
type PunitiveKind string

const (
	PunitiveFlat         PunitiveKind = "flat"           // ceiling = amount
	PunitiveRatio        PunitiveKind = "ratio"          // ceiling = ratio x compensatory
	PunitiveRatioOrFloor PunitiveKind = "ratio_or_floor" // ceiling = max(ratio x compensatory, amount)
)

// PunitiveRule is a jurisdiction-specific punitive damages ceiling
type PunitiveRule struct {
	Code        string          `json:"code" yaml:"-"`
	Kind        PunitiveKind    `json:"kind" yaml:"kind"`
	Ratio       decimal.Decimal `json:"ratio" yaml:"ratio"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
}

// Ceiling returns the punitive ceiling for the given compensatory base
func (r PunitiveRule) Ceiling(compensatory decimal.Decimal) decimal.Decimal {
	switch r.Kind {
	case PunitiveRatio:
		return compensatory.Mul(r.Ratio)
	case PunitiveRatioOrFloor:
		return decimal.Max(compensatory.Mul(r.Ratio), r.Amount)
	default:
		return r.Amount
	}
}

// Multipliers is a low/mid/high factor triple
type Multipliers struct {
	Low  decimal.Decimal `yaml:"low"`
	Mid  decimal.Decimal `yaml:"mid"`
	High decimal.Decimal `yaml:"high"`
}

// AgeBand maps ages below Under to Factor. Under == 0 matches any age.
type AgeBand struct {
	Under  int             `yaml:"under"`
	Factor decimal.Decimal `yaml:"factor"`
	Note   string          `yaml:"note,omitempty"`
}

// RatioGuard is the constitutional punitive-to-compensatory guard
type RatioGuard struct {
	MaxRatio        decimal.Decimal `yaml:"max_ratio"`
	MinCompensatory decimal.Decimal `yaml:"min_compensatory"`
	HighRatio       decimal.Decimal `yaml:"high_ratio"`
	MidRatio        decimal.Decimal `yaml:"mid_ratio"`
}

// FeeTier raises the fee estimate when total mid exceeds Above
type FeeTier struct {
	Above  decimal.Decimal `yaml:"above"`
	Amount decimal.Decimal `yaml:"amount"`
	Note   string          `yaml:"note,omitempty"`
}

// FeeSchedule is the step-function attorney's fee heuristic
type FeeSchedule struct {
	Baseline decimal.Decimal `yaml:"baseline"`
	Tiers    []FeeTier       `yaml:"tiers"`
}

// DamagesTables holds the numeric policy of the damages engine
type DamagesTables struct {
	EconomicSpread      Multipliers            `yaml:"economic_spread"`
	SeverityMultipliers map[string]Multipliers `yaml:"severity_multipliers"`
	AgeFactors          []AgeBand              `yaml:"age_factors"`
	ConductMultipliers  map[string]Multipliers `yaml:"conduct_multipliers"`
	RatioGuard          RatioGuard             `yaml:"ratio_guard"`
	AttorneyFees        FeeSchedule            `yaml:"attorney_fees"`
}

// FederalPeriod is a fixed federal limitations period with a willful extension
type FederalPeriod struct {
	DefaultYears int      `yaml:"default_years"`
	WillfulYears int      `yaml:"willful_years"`
	Notes        []string `yaml:"notes"`
}

// FederalRules holds claim-type-specific federal windows
type FederalRules struct {
	AdministrativeDays      int           `yaml:"administrative_days"`
	AdministrativeStateDays int           `yaml:"administrative_state_days"`
	LawsuitDays             int           `yaml:"lawsuit_days"`
	FMLA                    FederalPeriod `yaml:"fmla"`
	FLSA                    FederalPeriod `yaml:"flsa"`
}

// Book is a complete, validated rule set
type Book struct {
	Version           string                      `yaml:"version"`
	Updated           string                      `yaml:"updated"`
	PersonalInjurySOL map[string]SOLRule          `yaml:"personal_injury_sol"`
	WrongfulDeathSOL  map[string]SOLRule          `yaml:"wrongful_death_sol"`
	DamagesCaps       map[string]JurisdictionRule `yaml:"damages_caps"`
	PunitiveCaps      map[string]PunitiveRule     `yaml:"punitive_caps"`
	StateAgencies     []string                    `yaml:"state_agency_jurisdictions"`
	Federal           FederalRules                `yaml:"federal"`
	Damages           DamagesTables               `yaml:"damages"`

	agencies map[string]bool
}

// normalize uppercases a jurisdiction code for lookup
func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PersonalInjury returns the personal-injury limitations rule for a jurisdiction
func (b *Book) PersonalInjury(code string) (SOLRule, bool) {
	r, ok := b.PersonalInjurySOL[normalize(code)]
	return r, ok
}

// WrongfulDeath returns the wrongful-death limitations rule for a jurisdiction
func (b *Book) WrongfulDeath(code string) (SOLRule, bool) {
	r, ok := b.WrongfulDeathSOL[normalize(code)]
	return r, ok
}

// DamagesCap returns the damages cap for a jurisdiction, if any
func (b *Book) DamagesCap(code string) (JurisdictionRule, bool) {
	r, ok := b.DamagesCaps[normalize(code)]
	return r, ok
}

// PunitiveCap returns the punitive ceiling rule for a jurisdiction, if any
func (b *Book) PunitiveCap(code string) (PunitiveRule, bool) {
	r, ok := b.PunitiveCaps[normalize(code)]
	return r, ok
}

// HasStateAgency reports whether the jurisdiction has a fair employment practices agency
func (b *Book) HasStateAgency(code string) bool {
	return b.agencies[normalize(code)]
}

// IsKnownJurisdiction reports whether the code appears in the personal-injury table
func (b *Book) IsKnownJurisdiction(code string) bool {
	_, ok := b.PersonalInjury(code)
	return ok
}

// Jurisdictions returns all known jurisdiction codes, sorted
func (b *Book) Jurisdictions() []string {
	codes := make([]string, 0, len(b.PersonalInjurySOL))
	for code := range b.PersonalInjurySOL {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SeverityMultipliers returns the non-economic multipliers for a severity
func (b *Book) SeverityMultipliers(severity string) (Multipliers, bool) {
	m, ok := b.Damages.SeverityMultipliers[severity]
	return m, ok
}

// ConductMultipliers returns the punitive multipliers for a conduct level
func (b *Book) ConductMultipliers(conduct string) (Multipliers, bool) {
	m, ok := b.Damages.ConductMultipliers[conduct]
	return m, ok
}

// AgeBand returns the first age band matching age
func (b *Book) AgeBand(age int) AgeBand {
	for _, band := range b.Damages.AgeFactors {
		if band.Under == 0 || age < band.Under {
			return band
		}
	}
	return AgeBand{Factor: decimal.NewFromInt(1)}
}
