package repository

import (
	"context"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	Update(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindAllActive(ctx context.Context, offset, limit int) ([]entity.Patient, error)
	CountActive(ctx context.Context) (int64, error)

	// FindActiveByID returns the patient only when it exists and is active.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
}
