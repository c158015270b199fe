package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "ridebook/internal/config"
	intdb "ridebook/internal/db"
	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
)

// BookingRepository wraps DB access for the bookings table. Every lookup is
// exact equality; vehicle names come from a LEFT JOIN expansion.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT
		b.id,
		b.booking_code,
		b.customer_id,
		b.name,
		b.phone,
		COALESCE(b.email,''),
		b.pickup_location,
		b.dropoff_location,
		b.journey_type,
		b.custom_rate,
		COALESCE(b.custom_unit,''),
		COALESCE(b.custom_journey_details,''),
		DATE_FORMAT(b.ride_date, '%Y-%m-%d'),
		DATE_FORMAT(b.depart_at, '%Y-%m-%d %H:%i:%s'),
		DATE_FORMAT(b.return_at, '%Y-%m-%d %H:%i:%s'),
		b.vehicle_id,
		COALESCE(b.coupon_code,''),
		b.status,
		b.admin_comment,
		b.created_at,
		b.updated_at,
		COALESCE(v.name,'')
	FROM bookings b
	LEFT JOIN vehicles v ON v.id = b.vehicle_id`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var (
		b          models.Booking
		customerID sql.NullInt64
		customRate sql.NullFloat64
		rideDate   sql.NullString
		departAt   sql.NullString
		returnAt   sql.NullString
		vehicleID  sql.NullInt64
		comment    sql.NullString
		status     string
	)

	err := row.Scan(
		&b.ID,
		&b.BookingCode,
		&customerID,
		&b.Name,
		&b.Phone,
		&b.Email,
		&b.PickupLocation,
		&b.DropoffLocation,
		&b.JourneyType,
		&customRate,
		&b.CustomUnit,
		&b.CustomJourneyDetails,
		&rideDate,
		&departAt,
		&returnAt,
		&vehicleID,
		&b.CouponCode,
		&status,
		&comment,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.VehicleName,
	)
	if err != nil {
		return models.Booking{}, err
	}

	if customerID.Valid {
		b.CustomerID = &customerID.Int64
	}
	if customRate.Valid {
		b.CustomRate = &customRate.Float64
	}
	b.RideDate = strings.TrimSpace(rideDate.String)
	b.DepartAt = strings.TrimSpace(departAt.String)
	b.ReturnAt = strings.TrimSpace(returnAt.String)
	if vehicleID.Valid {
		b.VehicleID = &vehicleID.Int64
	}
	if comment.Valid {
		b.AdminComment = &comment.String
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

// Insert creates a booking row and returns the stored row.
func (r BookingRepository) Insert(b models.Booking) (models.Booking, error) {
	db := r.db()

	_, err := db.Exec(`
		INSERT INTO bookings (
			booking_code, customer_id, name, phone, email,
			pickup_location, dropoff_location,
			journey_type, custom_rate, custom_unit, custom_journey_details,
			ride_date, depart_at, return_at,
			vehicle_id, coupon_code,
			status, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.BookingCode,
		b.CustomerID,
		b.Name,
		b.Phone,
		intdb.NullIfEmpty(b.Email),
		b.PickupLocation,
		b.DropoffLocation,
		b.JourneyType,
		b.CustomRate,
		intdb.NullIfEmpty(b.CustomUnit),
		intdb.NullIfEmpty(b.CustomJourneyDetails),
		intdb.NullIfEmpty(b.RideDate),
		intdb.NullIfEmpty(b.DepartAt),
		intdb.NullIfEmpty(b.ReturnAt),
		b.VehicleID,
		intdb.NullIfEmpty(b.CouponCode),
		string(b.Status),
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	return r.GetByCode(b.BookingCode)
}

// GetByCode loads a booking by its shareable code.
func (r BookingRepository) GetByCode(code string) (models.Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Booking{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(bookingSelect+` WHERE b.booking_code = ? LIMIT 1`, code)
	return scanBooking(row)
}

// GetByID loads a booking by primary key.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(bookingSelect+` WHERE b.id = ? LIMIT 1`, id)
	return scanBooking(row)
}

// ListAll returns every booking, newest first.
func (r BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect + ` ORDER BY b.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListByCustomer returns a customer's bookings, newest first.
func (r BookingRepository) ListByCustomer(customerID int64) ([]models.Booking, error) {
	if customerID <= 0 {
		return []models.Booking{}, nil
	}
	rows, err := r.db().Query(bookingSelect+` WHERE b.customer_id = ? ORDER BY b.id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]models.Booking, error) {
	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatusTx writes the status transition inside the caller's transaction
// so coupon consumption can ride along atomically.
func (r BookingRepository) UpdateStatusTx(tx *sql.Tx, code string, status domain.BookingStatus, comment *string, now time.Time) error {
	res, err := tx.Exec(`
		UPDATE bookings
		SET status = ?, admin_comment = ?, updated_at = ?
		WHERE booking_code = ?`,
		string(status), comment, now, code,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
