package services

import (
	"database/sql"
	"time"

	"ridebook/internal/domain"
	"ridebook/internal/domain/models"
	"ridebook/internal/repositories"
	"ridebook/internal/utils"
)

// CouponService evaluates a coupon code against its activity window, usage
// cap, and discount shape. Validation never consumes the coupon.
type CouponService struct {
	CouponRepo repositories.CouponRepository
	RequestID  string

	Now func() time.Time
}

func (s CouponService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// CouponResult is the business outcome of a validation. A missing or
// unusable coupon is a negative result, not an error.
type CouponResult struct {
	Valid    bool             `json:"valid"`
	Code     string           `json:"code,omitempty"`
	Message  string           `json:"message,omitempty"`
	Discount *models.Discount `json:"discount,omitempty"`
}

func rejected(message string) CouponResult {
	return CouponResult{Valid: false, Message: message}
}

// Validate runs the checks in strict order, short-circuiting on the first
// failure. Only an empty code is an error; everything else is a result.
func (s CouponService) Validate(rawCode string) (CouponResult, error) {
	code := utils.NormalizeCouponCode(rawCode)
	if code == "" {
		return CouponResult{}, domain.ValidationError{Field: "code", Msg: "is required"}
	}

	coupon, err := s.CouponRepo.GetByCode(code)
	if err != nil {
		if err == sql.ErrNoRows {
			return rejected("Invalid coupon"), nil
		}
		return CouponResult{}, err
	}

	now := s.now()
	switch {
	// a past valid_to wins over every other flag
	case coupon.ValidTo != nil && coupon.ValidTo.Before(now):
		return rejected("Coupon expired"), nil
	case !coupon.Active:
		return rejected("Coupon inactive"), nil
	case coupon.ValidFrom != nil && coupon.ValidFrom.After(now):
		return rejected("Coupon not yet valid"), nil
	case coupon.UsageLimit != nil && coupon.UsesCount >= *coupon.UsageLimit:
		return rejected("Coupon usage limit reached"), nil
	}

	// flat takes precedence when both discount kinds are set
	discount := &models.Discount{}
	switch {
	case coupon.DiscountFlat != nil:
		discount.Type = "flat"
		discount.Value = *coupon.DiscountFlat
	case coupon.DiscountPercent != nil:
		discount.Type = "percent"
		discount.Value = *coupon.DiscountPercent
	default:
		// a coupon with no discount shape is not usable
		return rejected("Invalid coupon"), nil
	}

	utils.LogEvent(s.RequestID, "coupon", "validate", "code="+code)
	return CouponResult{Valid: true, Code: coupon.Code, Discount: discount}, nil
}
