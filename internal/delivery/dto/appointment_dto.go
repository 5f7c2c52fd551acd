package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleAppointmentRequest struct {
	PatientID   uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID    *uuid.UUID `json:"doctor_id" validate:"omitempty"`
	Specialty   string     `json:"specialty" validate:"required_without=DoctorID,omitempty,oneof=orthopedics cardiology gynecology dermatology"`
	ScheduledAt time.Time  `json:"scheduled_at" validate:"required"`
}

type CancelAppointmentRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Reason        string    `json:"reason" validate:"required,oneof=patient_withdrew doctor_cancelled other"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Doctor             *DoctorResponse  `json:"doctor,omitempty"`
	Patient            *PatientResponse `json:"patient,omitempty"`
	DoctorID           uuid.UUID        `json:"doctor_id"`
	PatientID          uuid.UUID        `json:"patient_id"`
	ScheduledAt        time.Time        `json:"scheduled_at"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
