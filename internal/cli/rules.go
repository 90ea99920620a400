package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/casecalc/internal/model"
	"github.com/ppiankov/casecalc/internal/render"
	"github.com/ppiankov/casecalc/internal/rules"
	"github.com/ppiankov/casecalc/internal/validate"
)

var (
	rulesState string
	rulesRaw   bool
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the loaded jurisdiction rule tables",
	Long: `Rules prints the limitations periods, damages caps, punitive ceilings
and EEOC charge window for one jurisdiction, or an overview of all of them.

Example:
  casecalc rules
  casecalc rules --state TX
  casecalc rules --state FL --format yaml
  casecalc rules --rules ./my-rules.yaml --state CA

  # Start a custom rule book from the built-in one
  casecalc rules --raw > my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVar(&rulesState, "state", "", "two-letter state code (default: all jurisdictions)")
	rulesCmd.Flags().BoolVar(&rulesRaw, "raw", false, "print the built-in rule book YAML, loadable as rules_file")
}

func runRules(cmd *cobra.Command, args []string) error {
	if rulesRaw {
		_, err := cmd.OutOrStdout().Write(rules.Embedded())
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	book, err := s.book()
	if err != nil {
		return err
	}

	var summaries []rules.JurisdictionSummary
	if rulesState != "" {
		code, err := validate.Jurisdiction(book, rulesState)
		if err != nil {
			return err
		}
		sum, _ := book.Summary(code)
		summaries = append(summaries, sum)
	} else {
		summaries = book.Summaries()
	}

	out := cmd.OutOrStdout()
	switch s.renderer.Format() {
	case render.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case render.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "Rule book version %s (updated %s)\n\n", book.Version, book.Updated)
	if len(summaries) == 1 {
		writeSummary(out, summaries[0])
		return nil
	}

	fmt.Fprintf(out, "%-6s %-8s %-8s %-12s %-14s %s\n", "CODE", "PI SOL", "WD SOL", "DAMAGES CAP", "PUNITIVE CAP", "EEOC WINDOW")
	fmt.Fprintln(out, strings.Repeat("-", 66))
	for _, sum := range summaries {
		wd := "-"
		if sum.WrongfulDeath != nil {
			wd = fmt.Sprintf("%dy", sum.WrongfulDeath.Years)
		}
		damagesCap := "-"
		if sum.DamagesCap != nil {
			damagesCap = capLabel(*sum.DamagesCap)
		}
		punitiveCap := "-"
		if sum.PunitiveCap != nil {
			punitiveCap = string(sum.PunitiveCap.Kind)
		}
		fmt.Fprintf(out, "%-6s %-8s %-8s %-12s %-14s %d days\n",
			sum.Code, fmt.Sprintf("%dy", sum.PersonalInjury.Years), wd, damagesCap, punitiveCap, sum.ChargeWindowDays)
	}
	return nil
}

func writeSummary(w io.Writer, sum rules.JurisdictionSummary) {
	fmt.Fprintf(w, "Jurisdiction: %s\n\n", sum.Code)
	fmt.Fprintf(w, "  Personal injury SOL:  %s\n", sum.PersonalInjury.Description)
	if sum.WrongfulDeath != nil {
		fmt.Fprintf(w, "  Wrongful death SOL:   %s\n", sum.WrongfulDeath.Description)
	}
	if sum.DamagesCap != nil {
		fmt.Fprintf(w, "  Damages cap:          %s (%s)\n", sum.DamagesCap.Description, sum.DamagesCap.Category)
	} else {
		fmt.Fprintf(w, "  Damages cap:          none\n")
	}
	if sum.PunitiveCap != nil {
		fmt.Fprintf(w, "  Punitive ceiling:     %s\n", sum.PunitiveCap.Description)
	} else {
		fmt.Fprintf(w, "  Punitive ceiling:     none (constitutional ratio guard only)\n")
	}
	if sum.StateAgency {
		fmt.Fprintf(w, "  EEOC charge window:   %d days (state FEPA)\n", sum.ChargeWindowDays)
	} else {
		fmt.Fprintf(w, "  EEOC charge window:   %d days\n", sum.ChargeWindowDays)
	}
}

func capLabel(c rules.JurisdictionRule) string {
	if c.Category == rules.CapPunitiveRatio {
		return c.Limit.String() + "x pun."
	}
	return model.FormatUSD(c.Limit)
}
