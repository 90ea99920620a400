package model

import "strings"

// ClaimType identifies the legal theory a claim is brought under
type ClaimType string

const (
	ClaimSection1983        ClaimType = "1983"                // 42 U.S.C. § 1983 civil rights
	ClaimADA                ClaimType = "ada"                 // Disability rights, generic (damages only)
	ClaimADATitleI          ClaimType = "ada-title-i"         // ADA employment
	ClaimADATitleII         ClaimType = "ada-title-ii"        // ADA state/local government
	ClaimADATitleIII        ClaimType = "ada-title-iii"       // ADA public accommodations
	ClaimTitleVII           ClaimType = "title-vii"           // Employment discrimination
	ClaimFMLA               ClaimType = "fmla"                // Family and Medical Leave Act
	ClaimFLSA               ClaimType = "flsa"                // Fair Labor Standards Act
	ClaimStateTort          ClaimType = "state-tort"          // Generic state tort
	ClaimWrongfulDeath      ClaimType = "wrongful-death"      // Wrongful death
	ClaimMedicalMalpractice ClaimType = "medical-malpractice" // Medical malpractice
)

// AllClaimTypes lists every claim type in display order
var AllClaimTypes = []ClaimType{
	ClaimSection1983,
	ClaimADA,
	ClaimADATitleI,
	ClaimADATitleII,
	ClaimADATitleIII,
	ClaimTitleVII,
	ClaimFMLA,
	ClaimFLSA,
	ClaimStateTort,
	ClaimWrongfulDeath,
	ClaimMedicalMalpractice,
}

// ParseClaimType resolves a user-supplied claim type string
func ParseClaimType(s string) (ClaimType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, ct := range AllClaimTypes {
		if string(ct) == s {
			return ct, true
		}
	}
	return "", false
}

// IsDisabilityRights reports whether the claim belongs to the ADA family
func (c ClaimType) IsDisabilityRights() bool {
	switch c {
	case ClaimADA, ClaimADATitleI, ClaimADATitleII, ClaimADATitleIII:
		return true
	default:
		return false
	}
}
