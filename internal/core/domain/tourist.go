package domain

import "time"

// Tourist is a managed tourist profile. Employees see and edit every
// profile; tourists only their own (enforced by the backend).
type Tourist struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Nationality    string    `json:"nationality"`
	PassportNumber string    `json:"passportNumber,omitempty"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	Email          string    `json:"email,omitempty"`
	UserID         string    `json:"userId"`
	Travels        []Travel  `json:"travels,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateTouristRequest is the payload for POST /tourists.
type CreateTouristRequest struct {
	Name           string `json:"name"        validate:"required"`
	Nationality    string `json:"nationality" validate:"required"`
	PassportNumber string `json:"passportNumber,omitempty" validate:"omitempty,min=5"`
	PhoneNumber    string `json:"phoneNumber,omitempty"    validate:"omitempty,phone"`
	Email          string `json:"email,omitempty"          validate:"omitempty,email"`
	UserID         string `json:"userId"      validate:"required"`
}

// UpdateTouristRequest is the payload for PATCH /tourists/:id. Pointer
// fields so that absent and empty are distinguishable on the wire.
type UpdateTouristRequest struct {
	Name           *string `json:"name,omitempty"           validate:"omitempty,min=1"`
	Nationality    *string `json:"nationality,omitempty"    validate:"omitempty,min=1"`
	PassportNumber *string `json:"passportNumber,omitempty" validate:"omitempty,min=5"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"    validate:"omitempty,phone"`
	Email          *string `json:"email,omitempty"          validate:"omitempty,email"`
}
