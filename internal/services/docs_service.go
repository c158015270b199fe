package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking confirmation PDF handed to customers.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string

	Loader func(code string) (models.Booking, error)
}

// GenerateTicket renders the confirmation for one booking code.
func (s DocsService) GenerateTicket(code string) ([]byte, string, error) {
	booking, err := s.loadBooking(code)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", "booking_code="+booking.BookingCode)
	return buildTicketPDF(booking)
}

func (s DocsService) loadBooking(code string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(code)
	}
	booking, err := s.BookingRepo.GetByCode(code)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func buildTicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	when := utils.FirstNonEmpty(b.RideDate, b.DepartAt)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code : %s", safe(b.BookingCode, "-")),
		fmt.Sprintf("Name         : %s", safe(b.Name, "-")),
		fmt.Sprintf("Phone        : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Journey      : %s", safe(b.JourneyType, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(b.PickupLocation, "-"), safe(b.DropoffLocation, "-")),
		fmt.Sprintf("Date         : %s", safe(when, "-")),
		fmt.Sprintf("Vehicle      : %s", safe(b.VehicleName, "-")),
		fmt.Sprintf("Status       : %s", safe(string(b.Status), "-")),
	}
	if b.CouponCode != "" {
		lines = append(lines, fmt.Sprintf("Coupon       : %s", b.CouponCode))
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	if b.ReturnAt != "" {
		pdf.Ln(2)
		pdf.Cell(0, 8, fmt.Sprintf("Return       : %s", b.ReturnAt))
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("booking-%s.pdf", strings.ToLower(b.BookingCode))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
