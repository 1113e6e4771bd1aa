package domain

import (
	"math"
	"time"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Destination describes where a travel goes.
type Destination struct {
	Name        string       `json:"name"    validate:"required"`
	City        string       `json:"city"    validate:"required"`
	Country     string       `json:"country" validate:"required"`
	Description string       `json:"description,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Travel is a travel record belonging to a tourist.
type Travel struct {
	ID          string      `json:"id"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Destination Destination `json:"destination"`
	TouristID   string      `json:"touristId"`
	Tourist     *Tourist    `json:"tourist,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Duration returns the trip length in whole days, rounding partial days up.
func (t Travel) Duration() int {
	return durationDays(t.StartDate, t.EndDate)
}

// CreateTravelRequest is the payload for POST /travels.
type CreateTravelRequest struct {
	StartDate   time.Time   `json:"startDate" validate:"required"`
	EndDate     time.Time   `json:"endDate"   validate:"required"`
	Destination Destination `json:"destination" validate:"required"`
	TouristID   string      `json:"touristId" validate:"required"`
}

// Validate enforces the invariants the backend will reject anyway, so the
// round trip is saved: the end date must come strictly after the start date.
func (r CreateTravelRequest) Validate() error {
	if !r.EndDate.After(r.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// UpdateTravelRequest is the payload for PATCH /travels/:id.
type UpdateTravelRequest struct {
	StartDate   *time.Time   `json:"startDate,omitempty"`
	EndDate     *time.Time   `json:"endDate,omitempty"`
	Destination *Destination `json:"destination,omitempty"`
}

// Validate rejects a date pair that would invert the range. When only one
// bound is sent the backend validates against the stored record.
func (r UpdateTravelRequest) Validate() error {
	if r.StartDate != nil && r.EndDate != nil && !r.EndDate.After(*r.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

func durationDays(start, end time.Time) int {
	if end.Before(start) {
		start, end = end, start
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
