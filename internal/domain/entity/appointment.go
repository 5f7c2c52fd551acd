package entity

import (
	"time"

	"github.com/google/uuid"
)

// CancellationReason represents why an appointment was cancelled
type CancellationReason string

const (
	CancellationPatientWithdrew CancellationReason = "patient_withdrew"
	CancellationDoctorCancelled CancellationReason = "doctor_cancelled"
	CancellationOther           CancellationReason = "other"
)

// Appointment represents a booked consultation between a patient and a doctor.
// An appointment is never physically deleted: cancelling sets the reason,
// and an appointment with no reason is considered active.
type Appointment struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID           uuid.UUID           `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	ScheduledAt        time.Time           `gorm:"not null;index" json:"scheduled_at"`
	CancellationReason *CancellationReason `gorm:"type:varchar(30)" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment has not been cancelled
func (a *Appointment) IsActive() bool {
	return a.CancellationReason == nil
}

// Cancel marks the appointment as cancelled with the given reason
func (a *Appointment) Cancel(reason CancellationReason) {
	a.CancellationReason = &reason
}
