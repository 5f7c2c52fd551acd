package scheduling

import (
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleRequest is the transient input to the scheduling rule chain.
// Built by the delivery layer, never persisted. Either DoctorID or
// Specialty must be present.
type ScheduleRequest struct {
	PatientID   uuid.UUID
	DoctorID    *uuid.UUID
	Specialty   entity.Specialty
	ScheduledAt time.Time
}

// CancelRequest is the transient input to the cancellation rule chain.
type CancelRequest struct {
	AppointmentID uuid.UUID
	Reason        entity.CancellationReason
}
