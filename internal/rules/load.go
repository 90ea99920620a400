package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// FallbackConduct is applied when a conduct level has no multiplier entry
const FallbackConduct = "reckless"

//go:embed data/rules.yaml
var embeddedRules []byte

var (
	defaultOnce sync.Once
	defaultBook *Book
	defaultErr  error
)

// Default returns the embedded rule book, parsed once per process
func Default() (*Book, error) {
	defaultOnce.Do(func() {
		defaultBook, defaultErr = Parse(embeddedRules)
	})
	return defaultBook, defaultErr
}

// MustDefault returns the embedded rule book and panics if it is invalid
func MustDefault() *Book {
	b, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded rule book: %v", err))
	}
	return b
}

// Embedded returns the raw embedded rule book YAML
func Embedded() []byte {
	return embeddedRules
}

// LoadFile parses a rule book from a YAML file
func LoadFile(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule book: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a rule book
func Parse(data []byte) (*Book, error) {
	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse rule book: %w", err)
	}
	if err := b.finalize(); err != nil {
		return nil, err
	}
	return &b, nil
}

// finalize stamps codes onto entries and checks the book is usable
func (b *Book) finalize() error {
	if len(b.PersonalInjurySOL) == 0 {
		return fmt.Errorf("rule book has no personal_injury_sol table")
	}

	pi := make(map[string]SOLRule, len(b.PersonalInjurySOL))
	for code, r := range b.PersonalInjurySOL {
		if r.Years <= 0 {
			return fmt.Errorf("personal_injury_sol %s: years must be positive", code)
		}
		r.Code = normalize(code)
		pi[r.Code] = r
	}
	b.PersonalInjurySOL = pi

	wd := make(map[string]SOLRule, len(b.WrongfulDeathSOL))
	for code, r := range b.WrongfulDeathSOL {
		if r.Years <= 0 {
			return fmt.Errorf("wrongful_death_sol %s: years must be positive", code)
		}
		r.Code = normalize(code)
		wd[r.Code] = r
	}
	b.WrongfulDeathSOL = wd

	caps := make(map[string]JurisdictionRule, len(b.DamagesCaps))
	for code, r := range b.DamagesCaps {
		switch r.Category {
		case CapNonEconomic, CapMedicalMalpractice, CapPunitiveRatio:
		default:
			return fmt.Errorf("damages_caps %s: unknown category %q", code, r.Category)
		}
		if !r.Limit.IsPositive() {
			return fmt.Errorf("damages_caps %s: limit must be positive", code)
		}
		r.Code = normalize(code)
		caps[r.Code] = r
	}
	b.DamagesCaps = caps

	punitive := make(map[string]PunitiveRule, len(b.PunitiveCaps))
	for code, r := range b.PunitiveCaps {
		switch r.Kind {
		case PunitiveFlat, PunitiveRatio, PunitiveRatioOrFloor:
		default:
			return fmt.Errorf("punitive_caps %s: unknown kind %q", code, r.Kind)
		}
		r.Code = normalize(code)
		punitive[r.Code] = r
	}
	b.PunitiveCaps = punitive

	b.agencies = make(map[string]bool, len(b.StateAgencies))
	for _, code := range b.StateAgencies {
		b.agencies[normalize(code)] = true
	}

	if b.Federal.AdministrativeDays <= 0 || b.Federal.AdministrativeStateDays <= 0 || b.Federal.LawsuitDays <= 0 {
		return fmt.Errorf("federal: administrative and lawsuit windows must be positive")
	}

	return b.Damages.validate()
}

func (d *DamagesTables) validate() error {
	for _, sev := range []string{"minor", "moderate", "serious", "catastrophic", "death"} {
		m, ok := d.SeverityMultipliers[sev]
		if !ok {
			return fmt.Errorf("damages.severity_multipliers: missing %q", sev)
		}
		if !m.ordered() {
			return fmt.Errorf("damages.severity_multipliers %s: low <= mid <= high required", sev)
		}
	}
	if _, ok := d.ConductMultipliers[FallbackConduct]; !ok {
		return fmt.Errorf("damages.conduct_multipliers: fallback %q missing", FallbackConduct)
	}
	for conduct, m := range d.ConductMultipliers {
		if !m.ordered() {
			return fmt.Errorf("damages.conduct_multipliers %s: low <= mid <= high required", conduct)
		}
	}
	if !d.EconomicSpread.ordered() {
		return fmt.Errorf("damages.economic_spread: low <= mid <= high required")
	}
	if len(d.AgeFactors) == 0 {
		return fmt.Errorf("damages.age_factors: at least one band required")
	}
	if !d.RatioGuard.MaxRatio.IsPositive() || !d.RatioGuard.HighRatio.IsPositive() || !d.RatioGuard.MidRatio.IsPositive() {
		return fmt.Errorf("damages.ratio_guard: ratios must be positive")
	}
	if d.RatioGuard.MidRatio.GreaterThan(d.RatioGuard.HighRatio) {
		return fmt.Errorf("damages.ratio_guard: mid_ratio must not exceed high_ratio")
	}
	for i := 1; i < len(d.AttorneyFees.Tiers); i++ {
		if !d.AttorneyFees.Tiers[i].Above.GreaterThan(d.AttorneyFees.Tiers[i-1].Above) {
			return fmt.Errorf("damages.attorney_fees.tiers: thresholds must be ascending")
		}
	}
	return nil
}

func (m Multipliers) ordered() bool {
	return !m.Low.IsNegative() && m.Low.LessThanOrEqual(m.Mid) && m.Mid.LessThanOrEqual(m.High)
}
