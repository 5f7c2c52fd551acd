package repository

import (
	"context"
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentRepository is the persistence contract consumed by the
// scheduling core. Find methods return nil (not an error) when no row matches.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindByDoctorInRange returns all appointments of the doctor whose
	// scheduled time falls inside [start, end], cancelled ones included.
	FindByDoctorInRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)

	// ExistsActiveForPatientInRange reports whether the patient holds an
	// active (non-cancelled) appointment inside [start, end].
	ExistsActiveForPatientInRange(ctx context.Context, patientID uuid.UUID, start, end time.Time) (bool, error)

	FindAll(ctx context.Context, offset, limit int) ([]entity.Appointment, error)
	Count(ctx context.Context) (int64, error)
}
