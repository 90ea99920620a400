package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/casecalc/internal/damages"
	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/validate"
)

var damagesReq validate.DamagesRequest

// damagesCmd represents the damages command
var damagesCmd = &cobra.Command{
	Use:   "damages",
	Short: "Estimate a low/mid/high damages range",
	Long: `Damages estimates economic, non-economic and punitive damages as
low/mid/high tiers, applies the jurisdiction's statutory caps and estimates
attorney's fees where a fee-shifting statute applies.

Examples:
  # Moderate injury, § 1983 case (California)
  casecalc damages --state CA --age 35 --claim-type 1983 \
      --medical-expenses 50000 --lost-wages 25000 --injury-severity moderate \
      --conduct-severity malicious

  # Wrongful death (Texas)
  casecalc damages --state TX --age 45 --claim-type wrongful-death \
      --medical-expenses 100000 --lost-wages 50000 --future-lost-earnings 2000000 \
      --injury-severity death --conduct-severity egregious

  # ADA case (New York), JSON output
  casecalc damages --state NY --age 50 --claim-type ada \
      --medical-expenses 10000 --injury-severity minor --format json`,
	Args: cobra.NoArgs,
	RunE: runDamages,
}

func init() {
	rootCmd.AddCommand(damagesCmd)

	f := damagesCmd.Flags()
	f.StringVar(&damagesReq.State, "state", "", "two-letter state code (e.g., CA, NY, TX)")
	f.IntVar(&damagesReq.Age, "age", 0, "plaintiff age (0-120)")
	f.StringVar(&damagesReq.ClaimType, "claim-type", "", "claim type (1983, ada, ada-title-i, ada-title-ii, ada-title-iii, title-vii, fmla, flsa, state-tort, wrongful-death, medical-malpractice)")
	f.StringVar(&damagesReq.InjurySeverity, "injury-severity", "", "injury severity (minor, moderate, serious, catastrophic, death)")
	f.StringVar(&damagesReq.ConductSeverity, "conduct-severity", "reckless", "defendant conduct (negligent, reckless, malicious, egregious)")

	// Economic damages
	f.Float64Var(&damagesReq.MedicalExpenses, "medical-expenses", 0, "past medical expenses")
	f.Float64Var(&damagesReq.FutureMedical, "future-medical", 0, "future medical expenses")
	f.Float64Var(&damagesReq.LostWages, "lost-wages", 0, "past lost wages")
	f.Float64Var(&damagesReq.FutureLostEarnings, "future-lost-earnings", 0, "future lost earning capacity")
	f.Float64Var(&damagesReq.PropertyDamage, "property-damage", 0, "property damage")

	for _, name := range []string{"state", "age", "claim-type", "injury-severity"} {
		_ = damagesCmd.MarkFlagRequired(name)
	}
}

func runDamages(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	book, err := s.book()
	if err != nil {
		return err
	}

	in, err := validate.Damages(book, damagesReq)
	if err != nil {
		return err
	}

	est, err := damages.NewEstimator(book, s.logger).Estimate(in)
	if err != nil {
		return err
	}

	return s.print(cmd, model.NewDamagesReport(est, s.now))
}
