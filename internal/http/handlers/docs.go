package handlers

import (
	"net/http"
	"strings"

	"ridebook/internal/http/middleware"
	"ridebook/internal/repositories"
	"ridebook/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingTicket streams the booking confirmation PDF.
// GET /get-booking-ticket?code=   |   GET /api/admin/bookings/:code/ticket
func GetBookingTicket(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		code = strings.TrimSpace(c.Param("code"))
	}
	if code == "" {
		RespondError(c, http.StatusBadRequest, "code is required", nil)
		return
	}

	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateTicket(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
