package models

import "time"

type Vehicle struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	VehicleType string   `json:"vehicle_type,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	PerKmRate   *float64 `json:"per_km_rate,omitempty"`
	BaseRate    *float64 `json:"base_rate,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Available   bool     `json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
