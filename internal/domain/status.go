package domain

import "strings"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusRejected   BookingStatus = "rejected"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
)

// transitions is the allowed-move table. rejected and completed are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusRejected},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusRejected},
	StatusInProgress: {StatusCompleted},
	StatusRejected:   {},
	StatusCompleted:  {},
}

// ParseBookingStatus normalizes and validates a status string.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := transitions[s]; !ok {
		return "", ValidationError{Field: "status", Msg: "unknown status " + strings.TrimSpace(raw)}
	}
	return s, nil
}

// CanTransition reports whether moving from -> to is allowed.
func (from BookingStatus) CanTransition(to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s BookingStatus) String() string { return string(s) }
