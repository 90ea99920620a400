// Package batch evaluates a YAML file of cases one after another and collects
// a report per engine run.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/casecalc/internal/logging"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/validate"
)

// Case is one entry of a batch file. A case may carry a damages request,
// a deadline request or both. RulesFile overrides the rule book for this case;
// a relative path is resolved against the batch file's directory.
type Case struct {
	Name      string                   `yaml:"name"`
	RulesFile string                   `yaml:"rules_file,omitempty"`
	Damages   *validate.DamagesRequest `yaml:"damages,omitempty"`
	SOL       *validate.SOLRequest     `yaml:"sol,omitempty"`
}

// File is the batch file layout
type File struct {
	Cases []Case `yaml:"cases"`
}

// Evaluator turns a case into reports
type Evaluator interface {
	Evaluate(c Case) ([]*model.Report, error)
}

// Result is the outcome of evaluating one case
type Result struct {
	Case    Case
	Reports []*model.Report
	Error   error
}

// GetError returns the error from the case evaluation
func (r *Result) GetError() error {
	return r.Error
}

// Processor evaluates cases sequentially
type Processor struct {
	evaluator Evaluator
	logger    logging.Logger
}

// NewProcessor creates a new batch processor
func NewProcessor(evaluator Evaluator, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Processor{evaluator: evaluator, logger: logger}
}

// ProcessCases evaluates every case in order. A failing case does not stop
// the batch; cancellation does.
func (p *Processor) ProcessCases(ctx context.Context, cases []Case) ([]*Result, error) {
	results := make([]*Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("batch interrupted after %d of %d cases: %w", len(results), len(cases), err)
		}

		reports, err := p.evaluator.Evaluate(c)
		switch {
		case validate.IsValidationError(err):
			p.logger.Warn("case rejected", "case", c.Name, "error", err)
		case err != nil:
			p.logger.Error("case failed", "case", c.Name, "error", err)
		default:
			p.logger.Debug("case evaluated", "case", c.Name, "reports", len(reports))
		}
		results = append(results, &Result{Case: c, Reports: reports, Error: err})
	}
	return results, nil
}

// ProcessFile reads cases from a file and evaluates them
func (p *Processor) ProcessFile(ctx context.Context, path string) ([]*Result, error) {
	cases, err := ReadCasesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}
	return p.ProcessCases(ctx, cases)
}

// ReadCasesFromFile reads a batch file
func ReadCasesFromFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cases, err := ParseCases(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i := range cases {
		if f := cases[i].RulesFile; f != "" && !filepath.IsAbs(f) {
			cases[i].RulesFile = filepath.Join(dir, f)
		}
	}
	return cases, nil
}

// ParseCases decodes batch YAML. Unknown keys are rejected so that a typo in
// a field name does not silently fall back to a zero value.
func ParseCases(data []byte) ([]Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse cases: %w", err)
	}

	seen := make(map[string]bool, len(f.Cases))
	for i := range f.Cases {
		c := &f.Cases[i]
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("case %d: duplicate name %q", i+1, c.Name)
		}
		seen[c.Name] = true

		if c.Damages == nil && c.SOL == nil {
			return nil, fmt.Errorf("case %q: needs a damages or sol section", c.Name)
		}
	}

	return f.Cases, nil
}
