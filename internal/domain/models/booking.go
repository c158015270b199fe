package models

import (
	"strings"
	"time"

	"ridebook/internal/domain"
)

// Journey types accepted on booking creation.
const (
	JourneyPrivate = "private"
	JourneyShared  = "shared"
	JourneyOneWay  = "one_way"
	JourneyReturn  = "return"
	JourneyCustom  = "custom"
)

type Booking struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"booking_code"`
	CustomerID  *int64 `json:"customer_id,omitempty"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`

	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`

	JourneyType          string   `json:"journey_type"`
	CustomRate           *float64 `json:"custom_rate,omitempty"`
	CustomUnit           string   `json:"custom_unit,omitempty"`
	CustomJourneyDetails string   `json:"custom_journey_details,omitempty"`

	RideDate string `json:"ride_date,omitempty"`
	DepartAt string `json:"depart_at,omitempty"`
	ReturnAt string `json:"return_at,omitempty"`

	VehicleID   *int64 `json:"vehicle_id,omitempty"`
	VehicleName string `json:"vehicle_name,omitempty"`
	CouponCode  string `json:"coupon_code,omitempty"`

	Status       domain.BookingStatus `json:"status"`
	AdminComment *string              `json:"admin_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCustomJourney reports whether any of the custom-journey fields is set.
// The admin dashboard's "custom" filter uses the same predicate.
func (b Booking) IsCustomJourney() bool {
	return strings.TrimSpace(b.CustomJourneyDetails) != "" ||
		b.CustomRate != nil ||
		strings.TrimSpace(b.CustomUnit) != ""
}

// ValidJourneyType checks the enumerated journey kinds.
func ValidJourneyType(t string) bool {
	switch t {
	case JourneyPrivate, JourneyShared, JourneyOneWay, JourneyReturn, JourneyCustom:
		return true
	}
	return false
}
