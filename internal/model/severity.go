package model

import "strings"

// InjurySeverity grades the plaintiff's injury for non-economic damages
type InjurySeverity string

const (
	SeverityMinor        InjurySeverity = "minor"        // Bruises, minor cuts, temporary pain
	SeverityModerate     InjurySeverity = "moderate"     // Fractures, short-term disability
	SeveritySerious      InjurySeverity = "serious"      // Permanent injury, long-term disability
	SeverityCatastrophic InjurySeverity = "catastrophic" // Paralysis, brain injury, loss of limb
	SeverityDeath        InjurySeverity = "death"        // Wrongful death
)

// AllSeverities lists injury severities from least to most severe
var AllSeverities = []InjurySeverity{
	SeverityMinor,
	SeverityModerate,
	SeveritySerious,
	SeverityCatastrophic,
	SeverityDeath,
}

// ParseInjurySeverity resolves a user-supplied severity string
func ParseInjurySeverity(s string) (InjurySeverity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sev := range AllSeverities {
		if string(sev) == s {
			return sev, true
		}
	}
	return "", false
}

// Conduct grades the defendant's conduct for punitive damages
type Conduct string

const (
	ConductNegligent Conduct = "negligent"
	ConductReckless  Conduct = "reckless"
	ConductMalicious Conduct = "malicious"
	ConductEgregious Conduct = "egregious"
)

// AllConducts lists conduct levels from least to most culpable
var AllConducts = []Conduct{
	ConductNegligent,
	ConductReckless,
	ConductMalicious,
	ConductEgregious,
}

// ParseConduct resolves a user-supplied conduct string.
// Unknown values are returned as-is so the engine can apply its fallback rule.
func ParseConduct(s string) (Conduct, bool) {
	c := Conduct(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllConducts {
		if c == known {
			return c, true
		}
	}
	return c, false
}
