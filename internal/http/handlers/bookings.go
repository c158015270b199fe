package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"ridebook/internal/dashboard"
	"ridebook/internal/http/middleware"
	"ridebook/internal/repositories"
	"ridebook/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{},
		CouponRepo:  repositories.CouponRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// CreateBooking accepts a customer submission; the booking always starts
// pending.
// POST /create-booking
func CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if !BindJSONOrError(c, &input) {
		return
	}

	booking, err := bookingService(c).Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBookingByCode is the public lookup by shareable code.
// GET /get-booking?code=   |   GET /api/bookings/:code
func GetBookingByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		code = strings.TrimSpace(c.Param("code"))
	}
	if code == "" {
		RespondError(c, http.StatusBadRequest, "code is required", nil)
		return
	}

	booking, err := repositories.BookingRepository{}.GetByCode(code)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "booking not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetBookings is the admin list. With q/status/page params it applies the
// dashboard view over the full fetched list; without them it returns
// everything.
// GET /get-bookings
func GetBookings(c *gin.Context) {
	all, err := repositories.BookingRepository{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}

	q := strings.TrimSpace(c.Query("q"))
	status := strings.TrimSpace(c.Query("status"))
	pageStr := strings.TrimSpace(c.Query("page"))

	if q == "" && status == "" && pageStr == "" {
		c.JSON(http.StatusOK, gin.H{"bookings": all, "total": len(all)})
		return
	}

	pageSize := dashboard.DefaultPageSize
	if limitStr := strings.TrimSpace(c.Query("limit")); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 200 {
			pageSize = n
		}
	}

	view := dashboard.NewList(all, pageSize)
	if q != "" {
		view.SetSearch(q)
	}
	if status != "" {
		view.SetStatusFilter(status)
	}
	if pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil {
			view.SetPage(n)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":   view.Visible(),
		"page":       view.Page(),
		"page_count": view.PageCount(),
		"total":      len(view.Filtered()),
	})
}

// GetCustomerBookings lists one customer's bookings.
// GET /get-customer-bookings?customer_id=   |   GET /api/customers/:id/bookings
func GetCustomerBookings(c *gin.Context) {
	idStr := strings.TrimSpace(c.Query("customer_id"))
	if idStr == "" {
		idStr = strings.TrimSpace(c.Param("id"))
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "customer_id is required", nil)
		return
	}

	list, err := repositories.BookingRepository{}.ListByCustomer(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list, "total": len(list)})
}

type updateBookingRequest struct {
	BookingCode string `json:"booking_code"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

// UpdateBooking is the admin status transition.
// POST /update-booking
func UpdateBooking(c *gin.Context) {
	var req updateBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).Transition(req.BookingCode, req.Status, req.Reason)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
