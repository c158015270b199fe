package services

import (
	"testing"
	"time"

	"ridebook/internal/domain"
	"ridebook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingColumns = []string{
	"id", "booking_code", "customer_id", "name", "phone", "email",
	"pickup_location", "dropoff_location",
	"journey_type", "custom_rate", "custom_unit", "custom_journey_details",
	"ride_date", "depart_at", "return_at",
	"vehicle_id", "coupon_code", "status", "admin_comment",
	"created_at", "updated_at", "vehicle_name",
}

func bookingRow(code, status, coupon string) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).AddRow(
		1, code, nil, "John Doe", "0800", "john@example.com",
		"Airport", "Downtown",
		"private", nil, "", "",
		"2025-07-01", nil, nil,
		nil, coupon, status, nil,
		now, now, "",
	)
}

func bookingTestService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CouponRepo:  repositories.CouponRepository{DB: db},
		DB:          db,
		Now:         func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		NewCode:     func() string { return "BK-TEST0001" },
	}
	return svc, mock, func() { db.Close() }
}

func TestTransitionMissingCodeFailsBeforeStore(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	_, err := svc.Transition("", "confirmed", "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestTransitionMissingStatusFailsBeforeStore(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	_, err := svc.Transition("BK-ABC", "", "late reply")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestTransitionUnknownStatusFailsBeforeStore(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	_, err := svc.Transition("BK-ABC", "parked", "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestTransitionUnknownBookingIsNotFound(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs("BK-GONE").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := svc.Transition("BK-GONE", "confirmed", "")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTransitionGuardRejectsDisallowedMove(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs("BK-DONE").
		WillReturnRows(bookingRow("BK-DONE", "completed", ""))

	_, err := svc.Transition("BK-DONE", "confirmed", "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	// no UPDATE must have run
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmWithoutCouponWritesStatusOnly(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs("BK-PLAIN").
		WillReturnRows(bookingRow("BK-PLAIN", "pending", ""))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WithArgs("confirmed", nil, svc.Now(), "BK-PLAIN").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings b").WithArgs("BK-PLAIN").
		WillReturnRows(bookingRow("BK-PLAIN", "confirmed", ""))

	booking, err := svc.Transition("BK-PLAIN", "confirmed", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.Status != domain.StatusConfirmed {
		t.Fatalf("unexpected status %s", booking.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmWithCouponConsumesAtomically(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs("BK-COUP").
		WillReturnRows(bookingRow("BK-COUP", "pending", "SUMMER10"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE coupons").
		WithArgs("SUMMER10").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings b").WithArgs("BK-COUP").
		WillReturnRows(bookingRow("BK-COUP", "confirmed", "SUMMER10"))

	_, err := svc.Transition("BK-COUP", "confirmed", "driver assigned")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmRollsBackWhenCouponCapped(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs("BK-CAP").
		WillReturnRows(bookingRow("BK-CAP", "pending", "CAPPED"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE coupons").
		WithArgs("CAPPED").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Transition("BK-CAP", "confirmed", "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectStoresReasonAsComment(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	reason := "no driver available"
	mock.ExpectQuery("FROM bookings b").WithArgs("BK-REJ").
		WillReturnRows(bookingRow("BK-REJ", "pending", ""))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WithArgs("rejected", &reason, svc.Now(), "BK-REJ").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings b").WithArgs("BK-REJ").
		WillReturnRows(bookingRow("BK-REJ", "rejected", ""))

	_, err := svc.Transition("BK-REJ", "rejected", reason)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	cases := []CreateBookingInput{
		{Phone: "0800", PickupLocation: "A", DropoffLocation: "B", JourneyType: "private"},
		{Name: "Jane", PickupLocation: "A", DropoffLocation: "B", JourneyType: "private"},
		{Name: "Jane", Phone: "0800", DropoffLocation: "B", JourneyType: "private"},
		{Name: "Jane", Phone: "0800", PickupLocation: "A", JourneyType: "private"},
		{Name: "Jane", Phone: "0800", PickupLocation: "A", DropoffLocation: "B", JourneyType: "teleport"},
	}
	for i, input := range cases {
		if _, err := svc.Create(input); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestCreateStartsPendingWithGeneratedCode(t *testing.T) {
	svc, mock, done := bookingTestService(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM bookings b").WithArgs("BK-TEST0001").
		WillReturnRows(bookingRow("BK-TEST0001", "pending", ""))

	booking, err := svc.Create(CreateBookingInput{
		Name:            "John Doe",
		Phone:           "0800",
		PickupLocation:  "Airport",
		DropoffLocation: "Downtown",
		JourneyType:     "Private",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.Status != domain.StatusPending {
		t.Fatalf("unexpected status %s", booking.Status)
	}
	if booking.BookingCode != "BK-TEST0001" {
		t.Fatalf("unexpected code %s", booking.BookingCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
