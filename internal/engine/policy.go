package engine

import "strings"

// ToggleOffPolicy decides what un-checking a habit does to the XP it granted.
type ToggleOffPolicy string

const (
	// KeepReward leaves XP untouched when a completion is removed. Repeated
	// on/off cycles therefore keep adding XP.
	KeepReward ToggleOffPolicy = "keep"

	// RevokeReward subtracts the habit's XP (never below zero) and records a
	// negative log entry.
	RevokeReward ToggleOffPolicy = "revoke"
)

func (p ToggleOffPolicy) IsValid() bool {
	switch p {
	case KeepReward, RevokeReward:
		return true
	default:
		return false
	}
}

// ParseToggleOffPolicy maps config input to a policy. Empty means KeepReward.
func ParseToggleOffPolicy(input string) (ToggleOffPolicy, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return KeepReward, nil
	}
	p := ToggleOffPolicy(s)
	if !p.IsValid() {
		return "", PolicyError{Name: input}
	}
	return p, nil
}
