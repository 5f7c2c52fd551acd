package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	DocumentNumber string `json:"document_number" validate:"required"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty"`
}

// UpdatePatientRequest allows partial updates of contact data only.
// The document number is immutable once registered.
type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DocumentNumber string    `json:"document_number"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Active         bool      `json:"active"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
