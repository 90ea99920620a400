package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ppiankov/casecalc/internal/model"
)

const (
	ruleWidth      = 80
	labelWidth     = 30
	cellWidth      = 15
	deadlineLayout = "2006-01-02 Monday"
)

// title capitalizes an enum value for display. Casers keep state, so each
// call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Text renders a report as a console table
func Text(report *model.Report) string {
	var b strings.Builder

	switch {
	case report.Damages != nil:
		writeDamagesText(&b, report)
	case report.SOL != nil:
		writeSOLText(&b, report)
	}

	b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	for i, line := range report.Disclaimer {
		if i == 0 {
			b.WriteString("⚠️  " + line + "\n")
		} else {
			b.WriteString("   " + line + "\n")
		}
	}
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	return b.String()
}

func writeDamagesText(b *strings.Builder, report *model.Report) {
	est := report.Damages
	in := est.Input

	header(b, "DAMAGES ESTIMATE")
	if report.Name != "" {
		fmt.Fprintf(b, "Case: %s\n", report.Name)
	}
	fmt.Fprintf(b, "\nClaim Type: %s\n", strings.ToUpper(string(in.ClaimType)))
	fmt.Fprintf(b, "State: %s\n", in.Jurisdiction)
	fmt.Fprintf(b, "Injury Severity: %s\n", title(string(in.Severity)))
	fmt.Fprintf(b, "Plaintiff Age: %d\n", in.Age)
	fmt.Fprintf(b, "Conduct Severity: %s\n", title(string(in.Conduct)))

	section(b, "ECONOMIC DAMAGES", "-")
	rangeRow(b, "Documented Losses", est.Economic)

	section(b, "NON-ECONOMIC DAMAGES", "-")
	rangeRow(b, "Pain & Suffering", est.NonEconomic)

	section(b, "PUNITIVE DAMAGES", "-")
	if !est.Punitive.IsZero() {
		rangeRow(b, "Punitive (if proven)", est.Punitive)
	} else {
		na := "Not Available"
		fmt.Fprintf(b, "%-*s %*s %*s %*s\n", labelWidth, "Punitive", cellWidth, na, cellWidth, na, cellWidth, na)
	}

	section(b, "TOTAL DAMAGES", "=")
	rangeRow(b, "TOTAL ESTIMATE", est.Total)

	if est.AttorneyFees.IsPositive() {
		fmt.Fprintf(b, "\n%-*s %s\n", labelWidth, "Attorney's Fees (if prevail)", money(est.AttorneyFees))
	}

	list(b, "NOTES:", "  ", est.Notes)
	list(b, "LIMITATIONS:", "  ", est.Limitations)
}

func writeSOLText(b *strings.Builder, report *model.Report) {
	res := report.SOL

	header(b, "STATUTE OF LIMITATIONS ANALYSIS")
	if report.Name != "" {
		fmt.Fprintf(b, "Case: %s\n", report.Name)
	}
	fmt.Fprintf(b, "\nClaim Type: %s\n", res.ClaimType)
	fmt.Fprintf(b, "Jurisdiction: %s\n", res.Jurisdiction)
	fmt.Fprintf(b, "Injury/Event Date: %s\n", res.EventDate.Format("2006-01-02"))
	fmt.Fprintf(b, "SOL Period: %s\n", res.Period)

	if res.HasDeadline() {
		fmt.Fprintf(b, "\n%-20s %s\n", "FILING DEADLINE:", res.Deadline.Format(deadlineLayout))
		fmt.Fprintf(b, "%-20s %d days\n", "Days Remaining:", res.DaysRemaining)
	}
	fmt.Fprintf(b, "\n%-20s %s\n", "STATUS:", StatusLine(res))

	list(b, "WARNINGS:", "  ", res.Warnings)
	list(b, "NOTES:", "  • ", res.Notes)
	list(b, "POTENTIAL TOLLING FACTORS:", "  • ", res.TollingFactors)
}

// StatusLine describes a deadline result's urgency for humans
func StatusLine(res *model.SOLResult) string {
	switch res.Urgency {
	case model.UrgencyExpired:
		return "🚨 EXPIRED - Claim likely time-barred"
	case model.UrgencyCritical:
		return "🚨 CRITICAL - File immediately!"
	case model.UrgencyUrgent:
		return "⚠️ URGENT - Deadline approaching"
	case model.UrgencyWarning:
		return "⚠️ WARNING - Less than 6 months"
	case model.UrgencyPending:
		return "⏳ PENDING - No deadline until right-to-sue letter is received"
	default:
		return fmt.Sprintf("✓ Active - %d days remaining", res.DaysRemaining)
	}
}

func header(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
}

func section(b *strings.Builder, title, rule string) {
	fmt.Fprintf(b, "\n%-*s %-*s %-*s %-*s\n", labelWidth, title, cellWidth, "Low", cellWidth, "Mid", cellWidth, "High")
	b.WriteString(strings.Repeat(rule, ruleWidth) + "\n")
}

func rangeRow(b *strings.Builder, label string, r model.Range) {
	fmt.Fprintf(b, "%-*s %s %s %s\n", labelWidth, label, money(r.Low), money(r.Mid), money(r.High))
}

func money(d decimal.Decimal) string {
	return fmt.Sprintf("%*s", cellWidth, model.FormatUSD(d))
}

func list(b *strings.Builder, title, bullet string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + title + "\n")
	for _, item := range items {
		b.WriteString(bullet + item + "\n")
	}
}
