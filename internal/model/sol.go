package model

import "time"

// Urgency classifies how close a filing deadline is
type Urgency string

const (
	UrgencyExpired  Urgency = "EXPIRED"  // days remaining < 0
	UrgencyCritical Urgency = "CRITICAL" // < 30 days
	UrgencyUrgent   Urgency = "URGENT"   // < 90 days
	UrgencyWarning  Urgency = "WARNING"  // < 180 days
	UrgencyActive   Urgency = "ACTIVE"   // >= 180 days
	UrgencyPending  Urgency = "PENDING"  // no deadline yet (awaiting right-to-sue)
)

// ExhaustionPhase is the state of an administrative-exhaustion claim
type ExhaustionPhase string

const (
	PhaseNone               ExhaustionPhase = ""                      // claim does not require exhaustion
	PhaseAwaitingCharge     ExhaustionPhase = "awaiting_charge"       // agency charge not yet filed
	PhaseAwaitingRightToSue ExhaustionPhase = "awaiting_right_to_sue" // charge filed, no right-to-sue letter
	PhaseFinal              ExhaustionPhase = "final"                 // right-to-sue letter received
)

// SOLInput carries validated inputs for a deadline calculation
type SOLInput struct {
	ClaimType    ClaimType  `json:"claim_type" yaml:"claim_type"`
	Jurisdiction string     `json:"jurisdiction" yaml:"jurisdiction"`
	EventDate    time.Time  `json:"event_date" yaml:"event_date"`
	ChargeFiled  bool       `json:"charge_filed,omitempty" yaml:"charge_filed,omitempty"`
	RightToSue   *time.Time `json:"right_to_sue_date,omitempty" yaml:"right_to_sue_date,omitempty"`
	Willful      bool       `json:"willful,omitempty" yaml:"willful,omitempty"`
}

// SOLResult is the deadline engine output
type SOLResult struct {
	ClaimType      string          `json:"claim_type" yaml:"claim_type"`
	Jurisdiction   string          `json:"jurisdiction" yaml:"jurisdiction"`
	EventDate      time.Time       `json:"event_date" yaml:"event_date"`
	Period         string          `json:"sol_period" yaml:"sol_period"`
	Deadline       *time.Time      `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	DaysRemaining  int             `json:"days_remaining" yaml:"days_remaining"`
	Expired        bool            `json:"expired" yaml:"expired"`
	Urgency        Urgency         `json:"status" yaml:"status"`
	Phase          ExhaustionPhase `json:"exhaustion_phase,omitempty" yaml:"exhaustion_phase,omitempty"`
	Notes          []string        `json:"notes" yaml:"notes"`
	Warnings       []string        `json:"warnings" yaml:"warnings"`
	TollingFactors []string        `json:"tolling_factors" yaml:"tolling_factors"`
}

// HasDeadline reports whether a filing deadline was computed
func (r *SOLResult) HasDeadline() bool {
	return r.Deadline != nil
}
