package models

import "time"

// Coupon is read and consumed here, never created: coupon rows are managed
// outside this service's write path.
type Coupon struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Active bool   `json:"active"`

	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`

	UsageLimit *int `json:"usage_limit,omitempty"`
	UsesCount  int  `json:"uses_count"`

	// Exactly one discount kind is honored; flat takes precedence.
	DiscountFlat    *float64 `json:"discount_flat,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
}

// Discount is the evaluated discount shape returned to clients.
type Discount struct {
	Type  string  `json:"type"` // "flat" or "percent"
	Value float64 `json:"value"`
}
