package sol

import "github.com/ppiankov/casecalc/internal/model"

// Classify maps days remaining to an urgency tier
func Classify(days int) model.Urgency {
	switch {
	case days < 0:
		return model.UrgencyExpired
	case days < 30:
		return model.UrgencyCritical
	case days < 90:
		return model.UrgencyUrgent
	case days < 180:
		return model.UrgencyWarning
	default:
		return model.UrgencyActive
	}
}

const expiredWarning = "🚨 EXPIRED: Filing deadline has passed - claim likely time-barred"

// warningTiers emits at most one warning: the first tier whose threshold
// days remaining falls under.
type warningTiers struct {
	firstBelow  int
	first       string
	secondBelow int
	second      string
}

var (
	standardWarnings = warningTiers{
		firstBelow:  90,
		first:       "⚠️ URGENT: Less than 90 days remaining!",
		secondBelow: 180,
		second:      "⚠️ WARNING: Less than 180 days remaining",
	}
	chargeWarnings = warningTiers{
		firstBelow:  30,
		first:       "🚨 CRITICAL: File EEOC charge immediately!",
		secondBelow: 60,
		second:      "⚠️ URGENT: EEOC charge deadline approaching",
	}
	lawsuitWarnings = warningTiers{
		firstBelow:  14,
		first:       "🚨 CRITICAL: File lawsuit immediately!",
		secondBelow: 30,
		second:      "⚠️ URGENT: Lawsuit deadline approaching",
	}
)

// For returns the warnings for days remaining
func (w warningTiers) For(days int) []string {
	switch {
	case days < 0:
		return []string{expiredWarning}
	case days < w.firstBelow:
		return []string{w.first}
	case days < w.secondBelow:
		return []string{w.second}
	default:
		return nil
	}
}
