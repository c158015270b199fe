package handlers

import (
	"net/http"

	"ridebook/internal/http/middleware"
	"ridebook/internal/repositories"
	"ridebook/internal/services"

	"github.com/gin-gonic/gin"
)

type validateCouponRequest struct {
	Code string `json:"code"`
}

// ValidateCoupon evaluates a coupon code. A missing or unusable coupon is a
// negative business result with a 200, not an error.
// POST /validate-coupon
func ValidateCoupon(c *gin.Context) {
	var req validateCouponRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CouponService{
		CouponRepo: repositories.CouponRepository{},
		RequestID:  middleware.GetRequestID(c),
	}

	result, err := svc.Validate(req.Code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
