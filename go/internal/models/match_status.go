package models

import "fmt"

// MatchStatus is the lifecycle state of a match. The set is closed: only the
// constants below are valid.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusInPlay    MatchStatus = "in_play"
	MatchStatusPaused    MatchStatus = "paused"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusPostponed MatchStatus = "postponed"
	MatchStatusSuspended MatchStatus = "suspended"
	MatchStatusCanceled  MatchStatus = "canceled"
	MatchStatusAwarded   MatchStatus = "awarded"
	MatchStatusDelayed   MatchStatus = "delayed"
	MatchStatusUnknown   MatchStatus = "unknown"
)

// AllMatchStatuses returns every status in declaration order.
func AllMatchStatuses() []MatchStatus {
	return []MatchStatus{
		MatchStatusScheduled,
		MatchStatusInPlay,
		MatchStatusPaused,
		MatchStatusFinished,
		MatchStatusPostponed,
		MatchStatusSuspended,
		MatchStatusCanceled,
		MatchStatusAwarded,
		MatchStatusDelayed,
		MatchStatusUnknown,
	}
}

// ParseMatchStatus converts a stored value into a MatchStatus.
func ParseMatchStatus(s string) (MatchStatus, error) {
	status := MatchStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid match status %q", s)
	}
	return status, nil
}

func (s MatchStatus) Valid() bool {
	//exhaustive:enforce
	switch s {
	case MatchStatusScheduled, MatchStatusInPlay, MatchStatusPaused,
		MatchStatusFinished, MatchStatusPostponed, MatchStatusSuspended,
		MatchStatusCanceled, MatchStatusAwarded, MatchStatusDelayed,
		MatchStatusUnknown:
		return true
	}
	return false
}

// IsLive reports whether the match is currently being played.
func (s MatchStatus) IsLive() bool {
	//exhaustive:enforce
	switch s {
	case MatchStatusInPlay, MatchStatusPaused:
		return true
	case MatchStatusScheduled, MatchStatusFinished, MatchStatusPostponed,
		MatchStatusSuspended, MatchStatusCanceled, MatchStatusAwarded,
		MatchStatusDelayed, MatchStatusUnknown:
		return false
	default:
		panic(fmt.Sprintf("unhandled match status %q", string(s)))
	}
}

// IsFinal reports whether the result of the match can no longer change.
func (s MatchStatus) IsFinal() bool {
	//exhaustive:enforce
	switch s {
	case MatchStatusFinished, MatchStatusCanceled, MatchStatusAwarded:
		return true
	case MatchStatusScheduled, MatchStatusInPlay, MatchStatusPaused,
		MatchStatusPostponed, MatchStatusSuspended, MatchStatusDelayed,
		MatchStatusUnknown:
		return false
	default:
		panic(fmt.Sprintf("unhandled match status %q", string(s)))
	}
}
