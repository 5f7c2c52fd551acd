package repository

import (
	"context"
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindAllActive(ctx context.Context, offset, limit int) ([]entity.Doctor, error)
	CountActive(ctx context.Context) (int64, error)

	// FindActiveByID returns the doctor only when it exists and is active.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)

	// FindActiveBySpecialtyWithFreeSlot returns the first active doctor of the
	// specialty with no active appointment at exactly the given time, in the
	// store's natural ordering. Nil when none is available.
	FindActiveBySpecialtyWithFreeSlot(ctx context.Context, specialty entity.Specialty, at time.Time) (*entity.Doctor, error)
}
