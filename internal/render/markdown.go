package render

import (
	"fmt"
	"strings"

	"github.com/ppiankov/casecalc/internal/model"
)

// Markdown renders a report as a Markdown document
func Markdown(report *model.Report) string {
	var b strings.Builder

	switch {
	case report.Damages != nil:
		writeDamagesMarkdown(&b, report)
	case report.SOL != nil:
		writeSOLMarkdown(&b, report)
	}

	b.WriteString("---\n\n")
	b.WriteString("> **" + strings.Join(report.Disclaimer, " ") + "**\n")
	b.WriteString(">\n")
	fmt.Fprintf(&b, "> Generated %s. Estimates only, not a legal determination.\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	return b.String()
}

func writeDamagesMarkdown(b *strings.Builder, report *model.Report) {
	est := report.Damages
	in := est.Input

	b.WriteString("# Damages Estimate\n\n")
	if report.Name != "" {
		fmt.Fprintf(b, "**Case:** %s\n\n", report.Name)
	}

	b.WriteString("| Input | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Claim Type | %s |\n", in.ClaimType)
	fmt.Fprintf(b, "| State | %s |\n", in.Jurisdiction)
	fmt.Fprintf(b, "| Injury Severity | %s |\n", title(string(in.Severity)))
	fmt.Fprintf(b, "| Plaintiff Age | %d |\n", in.Age)
	fmt.Fprintf(b, "| Conduct Severity | %s |\n\n", title(string(in.Conduct)))

	b.WriteString("## Estimate\n\n")
	b.WriteString("| Category | Low | Mid | High |\n|---|---:|---:|---:|\n")
	mdRow(b, "Economic", est.Economic)
	mdRow(b, "Non-Economic", est.NonEconomic)
	if !est.Punitive.IsZero() {
		mdRow(b, "Punitive (if proven)", est.Punitive)
	} else {
		b.WriteString("| Punitive | Not Available | Not Available | Not Available |\n")
	}
	fmt.Fprintf(b, "| **Total** | **%s** | **%s** | **%s** |\n\n",
		model.FormatUSD(est.Total.Low), model.FormatUSD(est.Total.Mid), model.FormatUSD(est.Total.High))

	if est.AttorneyFees.IsPositive() {
		fmt.Fprintf(b, "**Attorney's fees (if prevail):** %s\n\n", model.FormatUSD(est.AttorneyFees))
	}

	mdList(b, "Notes", est.Notes)
	mdList(b, "Limitations", est.Limitations)
}

func writeSOLMarkdown(b *strings.Builder, report *model.Report) {
	res := report.SOL

	b.WriteString("# Statute of Limitations Analysis\n\n")
	if report.Name != "" {
		fmt.Fprintf(b, "**Case:** %s\n\n", report.Name)
	}

	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Claim Type | %s |\n", res.ClaimType)
	fmt.Fprintf(b, "| Jurisdiction | %s |\n", res.Jurisdiction)
	fmt.Fprintf(b, "| Injury/Event Date | %s |\n", res.EventDate.Format("2006-01-02"))
	fmt.Fprintf(b, "| SOL Period | %s |\n", res.Period)
	if res.Phase != model.PhaseNone {
		fmt.Fprintf(b, "| Exhaustion Phase | %s |\n", res.Phase)
	}
	if res.HasDeadline() {
		fmt.Fprintf(b, "| Filing Deadline | %s |\n", res.Deadline.Format(deadlineLayout))
		fmt.Fprintf(b, "| Days Remaining | %d |\n", res.DaysRemaining)
	}
	fmt.Fprintf(b, "| Status | %s |\n\n", StatusLine(res))

	mdList(b, "Warnings", res.Warnings)
	mdList(b, "Notes", res.Notes)
	mdList(b, "Potential Tolling Factors", res.TollingFactors)
}

func mdRow(b *strings.Builder, label string, r model.Range) {
	fmt.Fprintf(b, "| %s | %s | %s | %s |\n", label, model.FormatUSD(r.Low), model.FormatUSD(r.Mid), model.FormatUSD(r.High))
}

func mdList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}
