package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "ridebook/internal/config"
	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/google/uuid"
)

// BookingService owns the booking lifecycle: creation always starts pending,
// transitions follow the allowed-move table, and confirming a booking that
// carries a coupon consumes the coupon in the same transaction.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	CouponRepo  repositories.CouponRepository
	DB          *sql.DB
	RequestID   string

	// injectable for tests
	Now     func() time.Time
	NewCode func() string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) newCode() string {
	if s.NewCode != nil {
		return s.NewCode()
	}
	return GenerateBookingCode()
}

// GenerateBookingCode builds the human-shareable booking code.
func GenerateBookingCode() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(id.String()[:8])
}

// CreateBookingInput carries the customer submission. Numeric fields use the
// tolerant wire shapes.
type CreateBookingInput struct {
	CustomerID *int64 `json:"customer_id"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`

	JourneyType          string          `json:"journey_type"`
	CustomRate           utils.FlexFloat `json:"custom_rate"`
	CustomUnit           string          `json:"custom_unit"`
	CustomJourneyDetails string          `json:"custom_journey_details"`

	RideDate string `json:"ride_date"`
	DepartAt string `json:"depart_at"`
	ReturnAt string `json:"return_at"`

	VehicleID  *int64 `json:"vehicle_id"`
	CouponCode string `json:"coupon_code"`
}

// Create validates the submission and stores a pending booking.
func (s BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	pickup := strings.TrimSpace(input.PickupLocation)
	dropoff := strings.TrimSpace(input.DropoffLocation)
	journey := strings.ToLower(strings.TrimSpace(input.JourneyType))

	switch {
	case name == "":
		return models.Booking{}, domain.ValidationError{Field: "name", Msg: "is required"}
	case phone == "":
		return models.Booking{}, domain.ValidationError{Field: "phone", Msg: "is required"}
	case pickup == "":
		return models.Booking{}, domain.ValidationError{Field: "pickup_location", Msg: "is required"}
	case dropoff == "":
		return models.Booking{}, domain.ValidationError{Field: "dropoff_location", Msg: "is required"}
	}
	if !models.ValidJourneyType(journey) {
		return models.Booking{}, domain.ValidationError{Field: "journey_type", Msg: "unknown journey type " + journey}
	}

	now := s.now()
	b := models.Booking{
		BookingCode:          s.newCode(),
		CustomerID:           input.CustomerID,
		Name:                 name,
		Phone:                phone,
		Email:                strings.TrimSpace(input.Email),
		PickupLocation:       pickup,
		DropoffLocation:      dropoff,
		JourneyType:          journey,
		CustomRate:           input.CustomRate.Value,
		CustomUnit:           strings.TrimSpace(input.CustomUnit),
		CustomJourneyDetails: strings.TrimSpace(input.CustomJourneyDetails),
		RideDate:             utils.DateOnly(input.RideDate),
		DepartAt:             strings.TrimSpace(input.DepartAt),
		ReturnAt:             strings.TrimSpace(input.ReturnAt),
		VehicleID:            input.VehicleID,
		CouponCode:           utils.NormalizeCouponCode(input.CouponCode),
		Status:               domain.StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.BookingRepo.Insert(b)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", "booking_code="+created.BookingCode)
	return created, nil
}

// Transition moves a booking to the target status. Both code and status are
// required and checked before any store access; the allowed-move table guards
// the write. The optional reason lands in admin_comment (NULL when omitted).
func (s BookingService) Transition(code, rawStatus, reason string) (models.Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Booking{}, domain.ValidationError{Field: "booking_code", Msg: "is required"}
	}
	if strings.TrimSpace(rawStatus) == "" {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "is required"}
	}
	target, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := s.BookingRepo.GetByCode(code)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, err
	}

	if !booking.Status.CanTransition(target) {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot move from %s to %s", booking.Status, target),
		}
	}

	var comment *string
	if r := strings.TrimSpace(reason); r != "" {
		comment = &r
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, err
	}

	if err := s.BookingRepo.UpdateStatusTx(tx, code, target, comment, s.now()); err != nil {
		_ = tx.Rollback()
		return models.Booking{}, err
	}

	// coupon consumption is tied to confirmation, atomically
	if target == domain.StatusConfirmed && booking.CouponCode != "" {
		if err := s.CouponRepo.ConsumeTx(tx, booking.CouponCode); err != nil {
			_ = tx.Rollback()
			return models.Booking{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "transition",
		fmt.Sprintf("booking_code=%s status=%s", code, target))
	return s.BookingRepo.GetByCode(code)
}
