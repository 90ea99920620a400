package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/casecalc/internal/batch"
	"github.com/ppiankov/casecalc/internal/model"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <cases.yaml>",
	Short: "Evaluate every case in a YAML file",
	Long: `Batch evaluates a file of cases one after another:
- Each case may carry a damages section, a sol section, or both
- Every case is evaluated against the same current date
- One report per engine run is written to the output directory
- A failing case is reported and the batch continues
- A case may name its own rules_file; each distinct book is parsed once

Exit status: 1 if any case failed, otherwise the most urgent deadline
(2 expired, 1 urgent/critical, 0 otherwise).

Example cases.yaml:
  cases:
    - name: Smith v. City
      damages: {state: CA, age: 35, claim_type: "1983", injury_severity: moderate,
                conduct_severity: malicious, medical_expenses: 50000, lost_wages: 25000}
      sol: {claim_type: "1983", state: CA, injury_date: "2024-01-15"}
    - name: Doe v. County
      rules_file: ./rules-2025.yaml
      sol: {claim_type: state-tort, state: AL, injury_date: "2024-03-01"}

Example:
  casecalc batch cases.yaml
  casecalc batch cases.yaml --output-dir ./reports --format markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("output-dir", "./casecalc-reports", "output directory for reports")
	_ = viper.BindPFlag("output.dir", batchCmd.Flags().Lookup("output-dir"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	stderr := cmd.ErrOrStderr()

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	// Fail before the banner if the configured rule book is unusable.
	if _, err := s.book(); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  casecalc Batch Processing\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(stderr, "  Output dir:   %s\n", s.cfg.Output.Dir)
	fmt.Fprintf(stderr, "  Format:       %s\n", s.renderer.Format())
	fmt.Fprintf(stderr, "  As of:        %s\n", s.now.Format("2006-01-02"))
	fmt.Fprintf(stderr, "\n")

	evaluator := batch.NewCaseEvaluator(s.registry, s.cfg.RulesFile, s.logger, s.now)
	processor := batch.NewProcessor(evaluator, s.logger)

	results, err := processor.ProcessFile(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0
	worst := ExitOK

	for _, result := range results {
		if err := result.GetError(); err != nil {
			failureCount++
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Case.Name, err)
			continue
		}

		successCount++
		for _, report := range result.Reports {
			path, err := s.renderer.WriteFile(report, s.cfg.Output.Dir, reportFileName(report))
			if err != nil {
				return fmt.Errorf("write report for %s: %w", result.Case.Name, err)
			}
			fmt.Fprintf(stderr, "✓ %s: %s\n", result.Case.Name, summarize(report))
			if verbose {
				fmt.Fprintf(stderr, "    → %s\n", path)
			}
			if report.SOL != nil {
				worst = worse(worst, UrgencyExitCode(report.SOL.Urgency))
			}
		}
	}

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Batch Complete\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Total:     %d\n", len(results))
	fmt.Fprintf(stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(stderr, "  Failed:    %d\n", failureCount)
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  %s\n", strings.Join(model.Disclaimer, " "))
	fmt.Fprintf(stderr, "\n")

	return batchExit(failureCount, worst)
}

// batchExit is 1 when any case failed, otherwise the worst deadline urgency
func batchExit(failures, worst int) error {
	code := worst
	if failures > 0 {
		code = ExitUrgent
	}
	if code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

// summarize is the one-line console summary of a report
func summarize(r *model.Report) string {
	switch {
	case r.Damages != nil:
		return fmt.Sprintf("damages total mid %s", model.FormatUSD(r.Damages.Total.Mid))
	case r.SOL != nil && r.SOL.HasDeadline():
		return fmt.Sprintf("deadline %s (%s, %d days)", r.SOL.Deadline.Format("2006-01-02"), r.SOL.Urgency, r.SOL.DaysRemaining)
	case r.SOL != nil:
		return fmt.Sprintf("no deadline yet (%s)", r.SOL.Urgency)
	default:
		return string(r.Kind)
	}
}

// reportFileName builds "<case-slug>_<report-id>"
func reportFileName(r *model.Report) string {
	return slug(r.Name) + "_" + r.ID
}

// slug lowercases s and collapses anything but letters and digits into "-"
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "case"
	}
	return out
}

// worse returns the more severe of two exit codes
func worse(a, b int) int {
	if b > a {
		return b
	}
	return a
}
