package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	CRMNumber string `json:"crm_number" validate:"required"`
	Specialty string `json:"specialty" validate:"required,oneof=orthopedics cardiology gynecology dermatology"`
}

// UpdateDoctorRequest allows partial updates of contact data only.
// CRM number and specialty are immutable once registered.
type UpdateDoctorRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CRMNumber string    `json:"crm_number"`
	Specialty string    `json:"specialty"`
	Active    bool      `json:"active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
