package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/sol"
	"github.com/ppiankov/casecalc/internal/validate"
)

var solReq validate.SOLRequest

// solCmd represents the sol command
var solCmd = &cobra.Command{
	Use:   "sol",
	Short: "Calculate a statute of limitations filing deadline",
	Long: `Sol calculates the filing deadline for a claim, the days remaining
and an urgency status. Administrative-exhaustion claims (ADA Title I,
Title VII) track the EEOC charge and right-to-sue letter.

Exit status: 0 active/warning/pending, 1 urgent/critical or input error,
2 expired.

Examples:
  # § 1983 excessive force (California)
  casecalc sol --claim-type 1983 --state CA --injury-date 2025-01-15

  # ADA Title II (New York)
  casecalc sol --claim-type ada-title-ii --state NY --injury-date 2024-06-01

  # Wrongful death (Texas)
  casecalc sol --claim-type wrongful-death --state TX --death-date 2025-03-10

  # ADA Title I with EEOC filed and right-to-sue letter received
  casecalc sol --claim-type ada-title-i --state CA --injury-date 2025-01-15 \
      --eeoc-filed --eeoc-rts-date 2025-11-01

  # FLSA willful violation
  casecalc sol --claim-type flsa --state WA --injury-date 2024-03-01 --willful`,
	Args: cobra.NoArgs,
	RunE: runSOL,
}

func init() {
	rootCmd.AddCommand(solCmd)

	f := solCmd.Flags()
	f.StringVar(&solReq.ClaimType, "claim-type", "", "claim type (1983, ada-title-i, ada-title-ii, ada-title-iii, title-vii, fmla, flsa, state-tort, wrongful-death, medical-malpractice)")
	f.StringVar(&solReq.State, "state", "", "two-letter state code (e.g., CA, NY, TX)")
	f.StringVar(&solReq.InjuryDate, "injury-date", "", "date of injury or adverse action (YYYY-MM-DD)")
	f.StringVar(&solReq.DeathDate, "death-date", "", "date of death, for wrongful death claims (YYYY-MM-DD)")
	f.BoolVar(&solReq.EEOCFiled, "eeoc-filed", false, "EEOC charge already filed (ADA Title I, Title VII)")
	f.StringVar(&solReq.EEOCRTSDate, "eeoc-rts-date", "", "date of EEOC right-to-sue letter (YYYY-MM-DD)")
	f.BoolVar(&solReq.Willful, "willful", false, "willful violation (FMLA, FLSA)")

	_ = solCmd.MarkFlagRequired("claim-type")
	_ = solCmd.MarkFlagRequired("state")
}

func runSOL(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	book, err := s.book()
	if err != nil {
		return err
	}

	in, err := validate.SOL(book, solReq)
	if err != nil {
		return err
	}

	res, err := sol.NewCalculator(book, s.logger).Calculate(in, s.now)
	if err != nil {
		return err
	}

	if err := s.print(cmd, model.NewSOLReport(res, s.now)); err != nil {
		return err
	}
	return statusError(res.Urgency)
}
