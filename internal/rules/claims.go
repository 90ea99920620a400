package rules

import "github.com/ppiankov/casecalc/internal/model"

// SOLShape selects how the deadline engine computes a claim's deadline
type SOLShape int

const (
	ShapeUnsupported   SOLShape = iota // claim type has no deadline calculation
	ShapeBorrowing                     // borrows the personal-injury period
	ShapeWrongfulDeath                 // wrongful-death table, accrues at death
	ShapeExhaustion                    // agency charge, then right-to-sue window
	ShapeFederal                       // fixed federal period, willful extension
)

// ClaimProfile describes the per-claim-type legal rules
type ClaimProfile struct {
	Type  model.ClaimType
	Label string
	Shape SOLShape

	// LeadNote precedes the period description; TrailingNotes follow it.
	LeadNote      string
	TrailingNotes []string

	TollingFactors []string

	PunitiveAvailable bool
	PunitiveNote      string

	// FeeStatute cites the fee-shifting provision; empty means none.
	FeeStatute string
}

// FeeShifting reports whether the claim type carries a fee-shifting statute
func (p ClaimProfile) FeeShifting() bool {
	return p.FeeStatute != ""
}

var standardTolling = []string{
	"Plaintiff was minor at time of injury",
	"Plaintiff was mentally incompetent",
	"Defendant fraudulently concealed claim",
	"Continuing violation doctrine may apply",
}

var profiles = map[model.ClaimType]ClaimProfile{
	model.ClaimSection1983: {
		Type:     model.ClaimSection1983,
		Label:    "42 U.S.C. § 1983",
		Shape:    ShapeBorrowing,
		LeadNote: "§ 1983 borrows state personal injury statute of limitations",
		TrailingNotes: []string{
			"Accrues when plaintiff knows (or should know) of injury",
			"Tolling may apply for minors or mental incompetency",
		},
		TollingFactors:    standardTolling,
		PunitiveAvailable: true,
		PunitiveNote:      "Punitive damages available against individual officers only (not municipality)",
		FeeStatute:        "42 U.S.C. § 1988 (§ 1983)",
	},
	model.ClaimADA: {
		Type:         model.ClaimADA,
		Label:        "Americans with Disabilities Act",
		Shape:        ShapeUnsupported,
		PunitiveNote: "⚠️ Punitive damages NOT available in ADA cases",
		FeeStatute:   "42 U.S.C. § 12205 (ADA)",
	},
	model.ClaimADATitleI: {
		Type:           model.ClaimADATitleI,
		Label:          "ADA Title I (Employment)",
		Shape:          ShapeExhaustion,
		TollingFactors: []string{"Continuing violation doctrine may extend deadline"},
		PunitiveNote:   "⚠️ Punitive damages NOT available in ADA cases",
		FeeStatute:     "42 U.S.C. § 12205 (ADA)",
	},
	model.ClaimADATitleII: {
		Type:     model.ClaimADATitleII,
		Label:    "ADA Title II (State/Local Government)",
		Shape:    ShapeBorrowing,
		LeadNote: "ADA Title II borrows state personal injury statute of limitations",
		TrailingNotes: []string{
			"No administrative exhaustion required (unlike Title I)",
			"Can sue directly in federal court",
		},
		TollingFactors: []string{
			"Plaintiff was minor at time of injury",
			"Plaintiff was mentally incompetent",
			"Equitable tolling for extraordinary circumstances",
		},
		PunitiveNote: "⚠️ Punitive damages NOT available in ADA cases",
		FeeStatute:   "42 U.S.C. § 12205 (ADA)",
	},
	model.ClaimADATitleIII: {
		Type:     model.ClaimADATitleIII,
		Label:    "ADA Title III (Public Accommodations)",
		Shape:    ShapeBorrowing,
		LeadNote: "No specific federal statute of limitations",
		TrailingNotes: []string{
			"Courts typically apply state personal injury SOL",
			"2-4 years depending on jurisdiction",
		},
		TollingFactors: []string{
			"Continuing violation doctrine may apply to ongoing barriers",
			"Equitable tolling for extraordinary circumstances",
		},
		PunitiveNote: "⚠️ Punitive damages NOT available in ADA cases",
		FeeStatute:   "42 U.S.C. § 12205 (ADA)",
	},
	model.ClaimTitleVII: {
		Type:              model.ClaimTitleVII,
		Label:             "Title VII (Employment Discrimination)",
		Shape:             ShapeExhaustion,
		TollingFactors:    []string{"Continuing violation doctrine may extend deadline"},
		PunitiveAvailable: true,
		PunitiveNote:      "Title VII punitive damages are subject to employer-size caps (42 U.S.C. § 1981a)",
		FeeStatute:        "42 U.S.C. § 2000e-5(k) (Title VII)",
	},
	model.ClaimFMLA: {
		Type:  model.ClaimFMLA,
		Label: "Family and Medical Leave Act (FMLA)",
		Shape: ShapeFederal,
		TollingFactors: []string{
			"Equitable tolling for extraordinary circumstances",
		},
		PunitiveNote: "⚠️ Punitive damages NOT available under FMLA (liquidated damages instead)",
		FeeStatute:   "29 U.S.C. § 2617(a)(3) (FMLA)",
	},
	model.ClaimFLSA: {
		Type:  model.ClaimFLSA,
		Label: "Fair Labor Standards Act (FLSA)",
		Shape: ShapeFederal,
		TollingFactors: []string{
			"Each paycheck may start a new limitations period",
			"Equitable tolling for extraordinary circumstances",
		},
		PunitiveNote: "⚠️ Punitive damages NOT available under FLSA (liquidated damages instead)",
		FeeStatute:   "29 U.S.C. § 216(b) (FLSA)",
	},
	model.ClaimStateTort: {
		Type:     model.ClaimStateTort,
		Label:    "State Tort",
		Shape:    ShapeBorrowing,
		LeadNote: "State tort claims use the state personal injury statute of limitations",
		TrailingNotes: []string{
			"Accrues when plaintiff knows (or should know) of injury",
			"Claims against public entities may require a notice of claim within months",
		},
		TollingFactors:    standardTolling,
		PunitiveAvailable: true,
	},
	model.ClaimWrongfulDeath: {
		Type:     model.ClaimWrongfulDeath,
		Label:    "Wrongful Death",
		Shape:    ShapeWrongfulDeath,
		LeadNote: "Wrongful death accrues from DATE OF DEATH (not date of injury)",
		TrailingNotes: []string{
			"Survival action may have different SOL (from date of injury)",
			"Can plead both wrongful death and survival action",
		},
		TollingFactors: []string{
			"Beneficiaries were minors at time of death",
			"Discovery rule generally does NOT apply (death is obvious event)",
		},
		PunitiveAvailable: true,
	},
	model.ClaimMedicalMalpractice: {
		Type:     model.ClaimMedicalMalpractice,
		Label:    "Medical Malpractice",
		Shape:    ShapeBorrowing,
		LeadNote: "Medical malpractice estimated from the state personal injury period",
		TrailingNotes: []string{
			"Many states set shorter malpractice periods and statutes of repose",
			"Pre-suit notice or expert affidavit may be required",
		},
		TollingFactors: []string{
			"Discovery rule may delay accrual",
			"Plaintiff was minor at time of treatment",
			"Defendant fraudulently concealed claim",
			"Continuous treatment doctrine may apply",
		},
		PunitiveAvailable: true,
	},
}

// Profile returns the rules profile for a claim type
func Profile(ct model.ClaimType) (ClaimProfile, bool) {
	p, ok := profiles[ct]
	return p, ok
}
