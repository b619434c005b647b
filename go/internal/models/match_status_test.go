package models

import (
	"testing"
)

func TestAllMatchStatusesHasTenDistinctValidValues(t *testing.T) {
	all := AllMatchStatuses()
	if len(all) != 10 {
		t.Fatalf("expected 10 statuses, got %d", len(all))
	}
	seen := make(map[MatchStatus]bool, len(all))
	for _, s := range all {
		if seen[s] {
			t.Fatalf("duplicate status %q", s)
		}
		seen[s] = true
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
}

func TestParseMatchStatus(t *testing.T) {
	got, err := ParseMatchStatus("in_play")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != MatchStatusInPlay {
		t.Fatalf("expected in_play, got %q", got)
	}

	for _, bad := range []string{"", "IN_PLAY", "live", "cancelled"} {
		if _, err := ParseMatchStatus(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestStatusBranchesCoverEveryValue(t *testing.T) {
	for _, s := range AllMatchStatuses() {
		// Both helpers panic on an unhandled value.
		live := s.IsLive()
		final := s.IsFinal()
		if live && final {
			t.Fatalf("status %q cannot be both live and final", s)
		}
	}
}

func TestStatusBranchesPanicOnUnknownValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unlisted status")
		}
	}()
	MatchStatus("half_time").IsLive()
}

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status MatchStatus
		live   bool
		final  bool
	}{
		{MatchStatusScheduled, false, false},
		{MatchStatusInPlay, true, false},
		{MatchStatusPaused, true, false},
		{MatchStatusFinished, false, true},
		{MatchStatusAwarded, false, true},
		{MatchStatusCanceled, false, true},
		{MatchStatusPostponed, false, false},
	}
	for _, tc := range cases {
		if tc.status.IsLive() != tc.live {
			t.Fatalf("%s: expected live=%v", tc.status, tc.live)
		}
		if tc.status.IsFinal() != tc.final {
			t.Fatalf("%s: expected final=%v", tc.status, tc.final)
		}
	}
}
