package model

import "github.com/shopspring/decimal"

// Range is a low/mid/high estimate tier triple
type Range struct {
	Low  decimal.Decimal `json:"low" yaml:"low"`
	Mid  decimal.Decimal `json:"mid" yaml:"mid"`
	High decimal.Decimal `json:"high" yaml:"high"`
}

// ZeroRange returns a range with all tiers at zero
func ZeroRange() Range {
	return Range{Low: decimal.Zero, Mid: decimal.Zero, High: decimal.Zero}
}

// Scale multiplies each tier of base by the matching factor
func Scale(base decimal.Decimal, low, mid, high decimal.Decimal) Range {
	return Range{
		Low:  base.Mul(low),
		Mid:  base.Mul(mid),
		High: base.Mul(high),
	}
}

// Add sums two ranges tier by tier
func (r Range) Add(o Range) Range {
	return Range{
		Low:  r.Low.Add(o.Low),
		Mid:  r.Mid.Add(o.Mid),
		High: r.High.Add(o.High),
	}
}

// Clamp lowers every tier to at most ceiling. It never raises a tier.
func (r Range) Clamp(ceiling decimal.Decimal) Range {
	return Range{
		Low:  decimal.Min(r.Low, ceiling),
		Mid:  decimal.Min(r.Mid, ceiling),
		High: decimal.Min(r.High, ceiling),
	}
}

// Ordered reports whether low <= mid <= high
func (r Range) Ordered() bool {
	return r.Low.LessThanOrEqual(r.Mid) && r.Mid.LessThanOrEqual(r.High)
}

// IsZero reports whether every tier is zero
func (r Range) IsZero() bool {
	return r.Low.IsZero() && r.Mid.IsZero() && r.High.IsZero()
}

// DamagesInput carries validated inputs for a damages estimate
type DamagesInput struct {
	Jurisdiction string         `json:"jurisdiction" yaml:"jurisdiction"`
	ClaimType    ClaimType      `json:"claim_type" yaml:"claim_type"`
	Severity     InjurySeverity `json:"injury_severity" yaml:"injury_severity"`
	Conduct      Conduct        `json:"conduct_severity" yaml:"conduct_severity"`
	Age          int            `json:"age" yaml:"age"`
	Economic     EconomicInput  `json:"economic" yaml:"economic"`
}

// EconomicInput holds the five documented economic loss amounts
type EconomicInput struct {
	MedicalExpenses    decimal.Decimal `json:"medical_expenses" yaml:"medical_expenses"`
	FutureMedical      decimal.Decimal `json:"future_medical" yaml:"future_medical"`
	LostWages          decimal.Decimal `json:"lost_wages" yaml:"lost_wages"`
	FutureLostEarnings decimal.Decimal `json:"future_lost_earnings" yaml:"future_lost_earnings"`
	PropertyDamage     decimal.Decimal `json:"property_damage" yaml:"property_damage"`
}

// Amounts returns the economic inputs in a fixed order with their names
func (e EconomicInput) Amounts() []NamedAmount {
	return []NamedAmount{
		{Name: "medical_expenses", Amount: e.MedicalExpenses},
		{Name: "future_medical", Amount: e.FutureMedical},
		{Name: "lost_wages", Amount: e.LostWages},
		{Name: "future_lost_earnings", Amount: e.FutureLostEarnings},
		{Name: "property_damage", Amount: e.PropertyDamage},
	}
}

// NamedAmount pairs a money amount with its input name
type NamedAmount struct {
	Name   string
	Amount decimal.Decimal
}

// DamagesEstimate is the damages engine output
type DamagesEstimate struct {
	Input        DamagesInput    `json:"input" yaml:"input"`
	Economic     Range           `json:"economic" yaml:"economic"`
	NonEconomic  Range           `json:"non_economic" yaml:"non_economic"`
	Punitive     Range           `json:"punitive" yaml:"punitive"`
	Total        Range           `json:"total" yaml:"total"`
	AttorneyFees decimal.Decimal `json:"attorney_fees_estimate" yaml:"attorney_fees_estimate"`
	Notes        []string        `json:"notes" yaml:"notes"`
	Limitations  []string        `json:"limitations" yaml:"limitations"`
}
