package model

import "time"

// ReportKind identifies which engine produced a report
type ReportKind string

const (
	ReportDamages ReportKind = "damages"
	ReportSOL     ReportKind = "statute_of_limitations"
)

// Report wraps an engine result for rendering and batch output
type Report struct {
	ID          string           `json:"id,omitempty" yaml:"id,omitempty"`
	Kind        ReportKind       `json:"kind" yaml:"kind"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Damages     *DamagesEstimate `json:"damages,omitempty" yaml:"damages,omitempty"`
	SOL         *SOLResult       `json:"sol,omitempty" yaml:"sol,omitempty"`
	Principles  Principles       `json:"principles" yaml:"principles"`
	Disclaimer  []string         `json:"disclaimer" yaml:"disclaimer"`
}

// Principles documents the non-binding nature of every report
type Principles struct {
	Estimate   bool `json:"estimate" yaml:"estimate"`       // Figures are heuristics, not predictions
	NonBinding bool `json:"non_binding" yaml:"non_binding"` // Not a legal determination
	RuleBased  bool `json:"rule_based" yaml:"rule_based"`   // Every figure traces to a table rule
}

// DefaultPrinciples returns the standard casecalc principles
func DefaultPrinciples() Principles {
	return Principles{
		Estimate:   true,
		NonBinding: true,
		RuleBased:  true,
	}
}

// Disclaimer is printed with every report regardless of outcome
var Disclaimer = []string{
	"DISCLAIMER: This is a general calculation. Consult controlling law in",
	"your jurisdiction. Exceptions and tolling may apply.",
}

// NewDamagesReport wraps a damages estimate
func NewDamagesReport(est *DamagesEstimate, at time.Time) *Report {
	return &Report{
		Kind:        ReportDamages,
		GeneratedAt: at.UTC(),
		Damages:     est,
		Principles:  DefaultPrinciples(),
		Disclaimer:  Disclaimer,
	}
}

// NewSOLReport wraps a deadline result
func NewSOLReport(res *SOLResult, at time.Time) *Report {
	return &Report{
		Kind:        ReportSOL,
		GeneratedAt: at.UTC(),
		SOL:         res,
		Principles:  DefaultPrinciples(),
		Disclaimer:  Disclaimer,
	}
}
