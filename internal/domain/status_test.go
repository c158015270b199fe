package domain

import "testing"

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("  Confirmed ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusConfirmed {
		t.Fatalf("unexpected status %s", s)
	}

	if _, err := ParseBookingStatus("parked"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := ParseBookingStatus(""); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusRejected},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusRejected},
		{StatusInProgress, StatusCompleted},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusConfirmed},
		{StatusCompleted, StatusInProgress},
		{StatusInProgress, StatusRejected},
		{StatusConfirmed, StatusPending},
	}
	for _, tc := range denied {
		if tc.from.CanTransition(tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !StatusRejected.IsTerminal() || !StatusCompleted.IsTerminal() {
		t.Fatalf("rejected and completed must be terminal")
	}
	if StatusPending.IsTerminal() || StatusConfirmed.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Fatalf("active statuses must not be terminal")
	}
}
