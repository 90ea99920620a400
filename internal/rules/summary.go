package rules

// JurisdictionSummary collects every rule that applies in one jurisdiction
type JurisdictionSummary struct {
	Code             string            `json:"code" yaml:"code"`
	PersonalInjury   SOLRule           `json:"personal_injury_sol" yaml:"personal_injury_sol"`
	WrongfulDeath    *SOLRule          `json:"wrongful_death_sol,omitempty" yaml:"wrongful_death_sol,omitempty"`
	DamagesCap       *JurisdictionRule `json:"damages_cap,omitempty" yaml:"damages_cap,omitempty"`
	PunitiveCap      *PunitiveRule     `json:"punitive_cap,omitempty" yaml:"punitive_cap,omitempty"`
	StateAgency      bool              `json:"state_agency" yaml:"state_agency"`
	ChargeWindowDays int               `json:"charge_window_days" yaml:"charge_window_days"`
}

// Summary returns the rules for one jurisdiction
func (b *Book) Summary(code string) (JurisdictionSummary, bool) {
	pi, ok := b.PersonalInjury(code)
	if !ok {
		return JurisdictionSummary{}, false
	}

	s := JurisdictionSummary{
		Code:             pi.Code,
		PersonalInjury:   pi,
		StateAgency:      b.HasStateAgency(code),
		ChargeWindowDays: b.Federal.AdministrativeDays,
	}
	if s.StateAgency {
		s.ChargeWindowDays = b.Federal.AdministrativeStateDays
	}
	if wd, ok := b.WrongfulDeath(code); ok {
		s.WrongfulDeath = &wd
	}
	if c, ok := b.DamagesCap(code); ok {
		s.DamagesCap = &c
	}
	if p, ok := b.PunitiveCap(code); ok {
		s.PunitiveCap = &p
	}
	return s, true
}

// Summaries returns a summary for every known jurisdiction, sorted by code
func (b *Book) Summaries() []JurisdictionSummary {
	codes := b.Jurisdictions()
	out := make([]JurisdictionSummary, 0, len(codes))
	for _, code := range codes {
		s, _ := b.Summary(code)
		out = append(out, s)
	}
	return out
}
