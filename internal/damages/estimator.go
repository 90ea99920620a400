// Package damages estimates economic, non-economic and punitive damages as
// low/mid/high tiers, applies jurisdictional caps and estimates fee-shifting
// attorney's fees.
package damages

import (
	"fmt"

	"github.com/ppiankov/casecalc/internal/logging"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
)

// Limitations are appended to every estimate
var Limitations = []string{
	"⚠️ This is an ESTIMATE only - actual damages depend on evidence and jury",
	"⚠️ Consult controlling case law in your jurisdiction",
	"⚠️ Economic damages require documentation (medical records, wage statements)",
	"⚠️ Non-economic damages highly variable based on jury sympathy",
	"⚠️ Punitive damages require clear and convincing evidence of malice/recklessness",
}

// Estimator computes damages estimates from a rule book
type Estimator struct {
	book   *rules.Book
	logger logging.Logger
}

// NewEstimator creates an estimator over book. A nil book selects the embedded rules.
func NewEstimator(book *rules.Book, logger logging.Logger) *Estimator {
	if book == nil {
		book = rules.MustDefault()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Estimator{book: book, logger: logger}
}

// Estimate runs the full pipeline: economic, non-economic, punitive, totals, fees
func (e *Estimator) Estimate(in model.DamagesInput) (*model.DamagesEstimate, error) {
	profile, ok := rules.Profile(in.ClaimType)
	if !ok {
		return nil, fmt.Errorf("no rules profile for claim type %q", in.ClaimType)
	}

	economic, err := e.Economic(in.Economic)
	if err != nil {
		return nil, fmt.Errorf("economic damages: %w", err)
	}

	nonEconomic, nonEconNotes, err := e.NonEconomic(in.Severity, in.Age, economic.Mid, in.Jurisdiction)
	if err != nil {
		return nil, fmt.Errorf("non-economic damages: %w", err)
	}

	compensatoryMid := economic.Mid.Add(nonEconomic.Mid)
	punitive, punitiveNotes := e.Punitive(compensatoryMid, in.Conduct, in.Jurisdiction, profile)

	total := economic.Add(nonEconomic).Add(punitive)
	for _, c := range []struct {
		name string
		r    model.Range
	}{
		{"economic", economic},
		{"non-economic", nonEconomic},
		{"punitive", punitive},
		{"total", total},
	} {
		if !c.r.Ordered() {
			return nil, fmt.Errorf("%s damages tiers out of order: low %s, mid %s, high %s", c.name, c.r.Low, c.r.Mid, c.r.High)
		}
	}

	fees, feeNotes := e.AttorneyFees(total.Mid, profile)

	notes := make([]string, 0, len(nonEconNotes)+len(punitiveNotes)+len(feeNotes))
	notes = append(notes, nonEconNotes...)
	notes = append(notes, punitiveNotes...)
	notes = append(notes, feeNotes...)

	limitations := make([]string, len(Limitations))
	copy(limitations, Limitations)

	e.logger.Debug("damages estimated",
		"jurisdiction", in.Jurisdiction,
		"claim_type", in.ClaimType,
		"economic_mid", economic.Mid.String(),
		"non_economic_mid", nonEconomic.Mid.String(),
		"punitive_mid", punitive.Mid.String(),
		"total_mid", total.Mid.String(),
	)

	return &model.DamagesEstimate{
		Input:        in,
		Economic:     economic,
		NonEconomic:  nonEconomic,
		Punitive:     punitive,
		Total:        total,
		AttorneyFees: fees,
		Notes:        notes,
		Limitations:  limitations,
	}, nil
}
