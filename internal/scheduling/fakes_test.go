package scheduling

import (
	"context"
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
)

type fakeAppointmentRepo struct {
	createFn              func(ctx context.Context, appointment *entity.Appointment) error
	updateFn              func(ctx context.Context, appointment *entity.Appointment) error
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findByDoctorInRangeFn func(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
	existsForPatientFn    func(ctx context.Context, patientID uuid.UUID, start, end time.Time) (bool, error)
	findAllFn             func(ctx context.Context, offset, limit int) ([]entity.Appointment, error)
	countFn               func(ctx context.Context) (int64, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appointment)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, appointment)
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) FindByDoctorInRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	if f.findByDoctorInRangeFn == nil {
		panic("FindByDoctorInRange not configured")
	}
	return f.findByDoctorInRangeFn(ctx, doctorID, start, end)
}

func (f *fakeAppointmentRepo) ExistsActiveForPatientInRange(ctx context.Context, patientID uuid.UUID, start, end time.Time) (bool, error) {
	if f.existsForPatientFn == nil {
		panic("ExistsActiveForPatientInRange not configured")
	}
	return f.existsForPatientFn(ctx, patientID, start, end)
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context, offset, limit int) ([]entity.Appointment, error) {
	if f.findAllFn == nil {
		panic("FindAll not configured")
	}
	return f.findAllFn(ctx, offset, limit)
}

func (f *fakeAppointmentRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		panic("Count not configured")
	}
	return f.countFn(ctx)
}
