package batch

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ppiankov/casecalc/internal/damages"
	"github.com/ppiankov/casecalc/internal/logging"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/rules"
	"github.com/ppiankov/casecalc/internal/sol"
	"github.com/ppiankov/casecalc/internal/validate"
)

// engines is the estimator and calculator bound to one rule book
type engines struct {
	book       *rules.Book
	estimator  *damages.Estimator
	calculator *sol.Calculator
}

// CaseEvaluator runs both engines for each case. A case's rules_file selects
// its rule book through the registry; cases without one use the default
// rules file. Every case in a batch is evaluated against the same now.
//
// CaseEvaluator is not safe for concurrent use.
type CaseEvaluator struct {
	registry  *rules.Registry
	rulesFile string
	logger    logging.Logger
	now       time.Time
	engines   map[*rules.Book]*engines
}

// NewCaseEvaluator creates an evaluator resolving rule books through registry
// as of now. An empty rulesFile selects the embedded rules.
func NewCaseEvaluator(registry *rules.Registry, rulesFile string, logger logging.Logger, now time.Time) *CaseEvaluator {
	if registry == nil {
		registry = rules.NewRegistry(nil, logger)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &CaseEvaluator{
		registry:  registry,
		rulesFile: rulesFile,
		logger:    logger,
		now:       now,
		engines:   make(map[*rules.Book]*engines),
	}
}

// enginesFor returns the engines for c's rule book, building them the first
// time a book is seen
func (e *CaseEvaluator) enginesFor(c Case) (*engines, error) {
	path := c.RulesFile
	if path == "" {
		path = e.rulesFile
	}
	book, err := e.registry.Book(path)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	if eng, ok := e.engines[book]; ok {
		return eng, nil
	}
	eng := &engines{
		book:       book,
		estimator:  damages.NewEstimator(book, e.logger),
		calculator: sol.NewCalculator(book, e.logger),
	}
	e.engines[book] = eng
	e.logger.Debug("engines built", "case", c.Name, "rules_version", book.Version)
	return eng, nil
}

// Evaluate validates and computes the case's damages and deadline reports
func (e *CaseEvaluator) Evaluate(c Case) ([]*model.Report, error) {
	eng, err := e.enginesFor(c)
	if err != nil {
		return nil, err
	}

	var reports []*model.Report

	if c.Damages != nil {
		in, err := validate.Damages(eng.book, *c.Damages)
		if err != nil {
			return nil, fmt.Errorf("damages: %w", err)
		}
		est, err := eng.estimator.Estimate(in)
		if err != nil {
			return nil, fmt.Errorf("damages: %w", err)
		}
		r := model.NewDamagesReport(est, e.now)
		if r.ID, err = NewReportID("DMG"); err != nil {
			return nil, err
		}
		r.Name = c.Name
		reports = append(reports, r)
	}

	if c.SOL != nil {
		in, err := validate.SOL(eng.book, *c.SOL)
		if err != nil {
			return nil, fmt.Errorf("sol: %w", err)
		}
		res, err := eng.calculator.Calculate(in, e.now)
		if err != nil {
			return nil, fmt.Errorf("sol: %w", err)
		}
		r := model.NewSOLReport(res, e.now)
		if r.ID, err = NewReportID("SOL"); err != nil {
			return nil, err
		}
		r.Name = c.Name
		reports = append(reports, r)
	}

	return reports, nil
}

// NewReportID generates a report ID in format {PREFIX}-{nanoid(10)}
func NewReportID(prefix string) (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", fmt.Errorf("generate report id: %w", err)
	}
	return fmt.Sprintf("%s-%s", prefix, id), nil
}
