package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/casecalc/internal/model"
)

var generatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func rng(low, mid, high int64) model.Range {
	return model.Range{Low: decimal.NewFromInt(low), Mid: decimal.NewFromInt(mid), High: decimal.NewFromInt(high)}
}

func damagesReport(punitive model.Range, fees int64) *model.Report {
	est := &model.DamagesEstimate{
		Input: model.DamagesInput{
			Jurisdiction: "CA",
			ClaimType:    model.ClaimSection1983,
			Severity:     model.SeverityModerate,
			Conduct:      model.ConductMalicious,
			Age:          35,
		},
		Economic:     rng(60000, 75000, 90000),
		NonEconomic:  rng(135000, 225000, 250000),
		Punitive:     punitive,
		AttorneyFees: decimal.NewFromInt(fees),
		Notes:        []string{"High estimate capped at $250,000"},
		Limitations:  []string{"⚠️ This is an ESTIMATE only - actual damages depend on evidence and jury"},
	}
	est.Total = est.Economic.Add(est.NonEconomic).Add(est.Punitive)
	return model.NewDamagesReport(est, generatedAt)
}

func solReport(deadline *time.Time, days int, urgency model.Urgency) *model.Report {
	res := &model.SOLResult{
		ClaimType:      "42 U.S.C. § 1983",
		Jurisdiction:   "CA",
		EventDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Period:         "2 years",
		Deadline:       deadline,
		DaysRemaining:  days,
		Expired:        days < 0,
		Urgency:        urgency,
		Notes:          []string{"California - 2 years"},
		Warnings:       []string{},
		TollingFactors: []string{"Plaintiff was minor at time of injury"},
	}
	return model.NewSOLReport(res, generatedAt)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".txt", FormatText.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
	assert.Equal(t, ".md", FormatMarkdown.Extension())
}

func TestText_Damages(t *testing.T) {
	out := Text(damagesReport(rng(300000, 600000, 1200000), 200000))

	assert.Contains(t, out, "DAMAGES ESTIMATE")
	assert.Contains(t, out, "Claim Type: 1983")
	assert.Contains(t, out, "Injury Severity: Moderate")
	assert.Contains(t, out, "Conduct Severity: Malicious")
	assert.Contains(t, out, "$1,200,000")
	assert.Contains(t, out, "Punitive (if proven)")
	assert.Contains(t, out, "TOTAL ESTIMATE")
	assert.Contains(t, out, "$1,540,000")
	assert.Contains(t, out, "Attorney's Fees (if prevail)")
	assert.Contains(t, out, "High estimate capped at $250,000")
	assert.Contains(t, out, model.Disclaimer[0])
	assert.Contains(t, out, model.Disclaimer[1])
}

func TestText_DamagesWithoutPunitiveOrFees(t *testing.T) {
	out := Text(damagesReport(model.ZeroRange(), 0))

	assert.Contains(t, out, "Not Available")
	assert.NotContains(t, out, "Punitive (if proven)")
	assert.NotContains(t, out, "Attorney's Fees")
}

func TestText_SOL(t *testing.T) {
	deadline := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	out := Text(solReport(&deadline, 227, model.UrgencyActive))

	assert.Contains(t, out, "STATUTE OF LIMITATIONS ANALYSIS")
	assert.Contains(t, out, "Injury/Event Date: 2024-01-15")
	assert.Contains(t, out, "2026-01-14 Wednesday")
	assert.Contains(t, out, "227 days")
	assert.Contains(t, out, "✓ Active - 227 days remaining")
	assert.Contains(t, out, "POTENTIAL TOLLING FACTORS:")
	assert.NotContains(t, out, "WARNINGS:")
	assert.Contains(t, out, model.Disclaimer[0])
}

func TestText_SOLPending(t *testing.T) {
	out := Text(solReport(nil, 0, model.UrgencyPending))

	assert.NotContains(t, out, "FILING DEADLINE")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, model.Disclaimer[1])
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		urgency model.Urgency
		want    string
	}{
		{model.UrgencyExpired, "EXPIRED"},
		{model.UrgencyCritical, "CRITICAL"},
		{model.UrgencyUrgent, "URGENT"},
		{model.UrgencyWarning, "Less than 6 months"},
		{model.UrgencyActive, "Active - 400 days"},
		{model.UrgencyPending, "PENDING"},
	}

	for _, tt := range tests {
		res := &model.SOLResult{Urgency: tt.urgency, DaysRemaining: 400}
		assert.Contains(t, StatusLine(res), tt.want)
	}
}

func TestMarkdown(t *testing.T) {
	report := damagesReport(rng(300000, 600000, 1200000), 200000)
	report.Name = "Smith v. City"
	md := Markdown(report)

	assert.True(t, strings.HasPrefix(md, "# Damages Estimate"))
	assert.Contains(t, md, "**Case:** Smith v. City")
	assert.Contains(t, md, "| Non-Economic | $135,000 | $225,000 | $250,000 |")
	assert.Contains(t, md, "**$1,540,000**")
	assert.Contains(t, md, "## Notes")
	assert.Contains(t, md, "## Limitations")
	assert.Contains(t, md, "Consult controlling law")

	deadline := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	md = Markdown(solReport(&deadline, 20, model.UrgencyCritical))
	assert.Contains(t, md, "# Statute of Limitations Analysis")
	assert.Contains(t, md, "| Days Remaining | 20 |")
	assert.NotContains(t, md, "## Warnings")
}

func TestRender_JSON(t *testing.T) {
	deadline := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatJSON).Render(&buf, solReport(&deadline, 227, model.UrgencyActive)))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "statute_of_limitations", got["kind"])
	sol := got["sol"].(map[string]interface{})
	assert.Equal(t, "ACTIVE", sol["status"])
	assert.Equal(t, float64(227), sol["days_remaining"])
	assert.Equal(t, "2026-01-14T00:00:00Z", sol["deadline"])
	assert.Len(t, got["disclaimer"], 2)
}

func TestRender_JSONDamagesMoneyIsExact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatJSON).Render(&buf, damagesReport(rng(300000, 600000, 1200000), 200000)))

	var got struct {
		Damages struct {
			Total struct {
				Mid string `json:"mid"`
			} `json:"total"`
		} `json:"damages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "900000", got.Damages.Total.Mid)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatYAML).Render(&buf, solReport(nil, 0, model.UrgencyPending)))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "statute_of_limitations", got["kind"])
	sol := got["sol"].(map[string]interface{})
	assert.Equal(t, "PENDING", sol["status"])
	_, hasDeadline := sol["deadline"]
	assert.False(t, hasDeadline)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := NewRenderer(FormatMarkdown).WriteFile(damagesReport(model.ZeroRange(), 0), dir, "case-1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "case-1.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Damages Estimate")
}
