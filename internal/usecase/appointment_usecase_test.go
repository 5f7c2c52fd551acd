package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-appointments-api/config"
	"clinic-appointments-api/internal/delivery/dto"
	"clinic-appointments-api/internal/domain/entity"
	"clinic-appointments-api/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

type fakeDoctorRepo struct {
	findActiveByIDFn  func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	findBySpecialtyFn func(ctx context.Context, specialty entity.Specialty, at time.Time) (*entity.Doctor, error)
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) FindAllActive(ctx context.Context, offset, limit int) ([]entity.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeDoctorRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if f.findActiveByIDFn == nil {
		panic("FindActiveByID not configured")
	}
	return f.findActiveByIDFn(ctx, id)
}

func (f *fakeDoctorRepo) FindActiveBySpecialtyWithFreeSlot(ctx context.Context, specialty entity.Specialty, at time.Time) (*entity.Doctor, error) {
	if f.findBySpecialtyFn == nil {
		panic("FindActiveBySpecialtyWithFreeSlot not configured")
	}
	return f.findBySpecialtyFn(ctx, specialty, at)
}

type fakePatientRepo struct {
	findActiveByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error { return nil }
func (f *fakePatientRepo) Update(ctx context.Context, patient *entity.Patient) error { return nil }
func (f *fakePatientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) FindAllActive(ctx context.Context, offset, limit int) ([]entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakePatientRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if f.findActiveByIDFn == nil {
		panic("FindActiveByID not configured")
	}
	return f.findActiveByIDFn(ctx, id)
}

type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return nil
}
func (noopAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return nil
}
func (noopAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	return nil
}

func testClinicConfig() config.ClinicConfig {
	return config.ClinicConfig{
		OpenHour:              7,
		CloseHour:             18,
		ClosedWeekday:         time.Sunday,
		MinSchedulingNotice:   30 * time.Minute,
		MinCancellationNotice: 24 * time.Hour,
		DailyLimitStartHour:   7,
		DailyLimitEndHour:     18,
	}
}

// nextBookableTime picks a slot far enough ahead to clear the notice rule,
// at mid-morning on a day the clinic is open.
func nextBookableTime() time.Time {
	t := time.Now().UTC().Add(72 * time.Hour)
	t = time.Date(t.Year(), t.Month(), t.Day(), 10, 0, 0, 0, time.UTC)
	if t.Weekday() == time.Sunday {
		t = t.Add(24 * time.Hour)
	}
	return t
}

func newTestAppointmentUsecase(apptRepo *fakeAppointmentRepo, doctorRepo *fakeDoctorRepo, patientRepo *fakePatientRepo) AppointmentUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := testClinicConfig()
	return NewAppointmentUsecase(
		log,
		apptRepo,
		doctorRepo,
		patientRepo,
		scheduling.NewSchedulingRules(cfg, apptRepo),
		scheduling.NewCancellationRules(cfg, apptRepo),
		noopAuditService{},
	)
}

func TestSchedule_WithExplicitDoctor(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()
	at := nextBookableTime()

	var created *entity.Appointment
	apptRepo := &fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			return nil, nil
		},
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, appointment *entity.Appointment) error {
			appointment.ID = uuid.New()
			created = appointment
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return created, nil
		},
	}
	doctorRepo := &fakeDoctorRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: doctorID, Name: "Dr. Souza", Specialty: entity.SpecialtyCardiology, Active: true}, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: patientID, Name: "Ana Lima", Active: true}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, doctorRepo, patientRepo)
	resp, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   patientID,
		DoctorID:    &doctorID,
		ScheduledAt: at,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, patientID, resp.PatientID)
	assert.Equal(t, at, resp.ScheduledAt)
	assert.Empty(t, resp.CancellationReason)
}

func TestSchedule_RuleViolationStopsChain(t *testing.T) {
	// Pick the next Sunday; the business-hours rule must reject it before
	// any repository lookup happens.
	at := nextBookableTime()
	for at.Weekday() != time.Sunday {
		at = at.Add(24 * time.Hour)
	}

	apptRepo := &fakeAppointmentRepo{}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			t.Fatal("patient lookup should not happen after a rule violation")
			return nil, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, patientRepo)
	_, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   uuid.New(),
		Specialty:   string(entity.SpecialtyCardiology),
		ScheduledAt: at,
	})

	var violation *scheduling.ViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestSchedule_InactivePatient(t *testing.T) {
	doctorID := uuid.New()
	apptRepo := &fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			return nil, nil
		},
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return nil, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, patientRepo)
	_, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   uuid.New(),
		DoctorID:    &doctorID,
		ScheduledAt: nextBookableTime(),
	})

	var notFound *scheduling.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "patient is inactive or not found", err.Error())
}

func TestSchedule_InactiveDoctor(t *testing.T) {
	doctorID := uuid.New()
	apptRepo := &fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			return nil, nil
		},
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
	}
	doctorRepo := &fakeDoctorRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			return nil, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Active: true}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, doctorRepo, patientRepo)
	_, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   uuid.New(),
		DoctorID:    &doctorID,
		ScheduledAt: nextBookableTime(),
	})

	var notFound *scheduling.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "doctor is inactive or not found", err.Error())
}

func TestSchedule_BySpecialtyPicksAvailableDoctor(t *testing.T) {
	selectedDoctorID := uuid.New()
	patientID := uuid.New()
	at := nextBookableTime()

	var created *entity.Appointment
	apptRepo := &fakeAppointmentRepo{
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, appointment *entity.Appointment) error {
			appointment.ID = uuid.New()
			created = appointment
			return nil
		},
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return created, nil
		},
	}
	doctorRepo := &fakeDoctorRepo{
		findBySpecialtyFn: func(ctx context.Context, specialty entity.Specialty, slot time.Time) (*entity.Doctor, error) {
			assert.Equal(t, entity.SpecialtyDermatology, specialty)
			assert.Equal(t, at, slot)
			return &entity.Doctor{ID: selectedDoctorID, Specialty: specialty, Active: true}, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: patientID, Active: true}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, doctorRepo, patientRepo)
	resp, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   patientID,
		Specialty:   string(entity.SpecialtyDermatology),
		ScheduledAt: at,
	})

	require.NoError(t, err)
	assert.Equal(t, selectedDoctorID, resp.DoctorID)
}

func TestSchedule_SpecialtyRequiredWithoutDoctor(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Active: true}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, patientRepo)
	_, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   uuid.New(),
		ScheduledAt: nextBookableTime(),
	})

	var violation *scheduling.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "specialty is required when doctor is not specified", err.Error())
}

func TestSchedule_NoDoctorAvailableForSpecialty(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		existsForPatientFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (bool, error) {
			return false, nil
		},
	}
	doctorRepo := &fakeDoctorRepo{
		findBySpecialtyFn: func(ctx context.Context, specialty entity.Specialty, slot time.Time) (*entity.Doctor, error) {
			return nil, nil
		},
	}
	patientRepo := &fakePatientRepo{
		findActiveByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Active: true}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, doctorRepo, patientRepo)
	_, err := uc.Schedule(context.Background(), &dto.ScheduleAppointmentRequest{
		PatientID:   uuid.New(),
		Specialty:   string(entity.SpecialtyOrthopedics),
		ScheduledAt: nextBookableTime(),
	})

	var violation *scheduling.ViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestCancel_Success(t *testing.T) {
	appointmentID := uuid.New()
	stored := &entity.Appointment{
		ID:          appointmentID,
		DoctorID:    uuid.New(),
		PatientID:   uuid.New(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	var updated *entity.Appointment
	apptRepo := &fakeAppointmentRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, appointment *entity.Appointment) error {
			updated = appointment
			return nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, &fakePatientRepo{})
	err := uc.Cancel(context.Background(), &dto.CancelAppointmentRequest{
		AppointmentID: appointmentID,
		Reason:        string(entity.CancellationPatientWithdrew),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.CancellationReason)
	assert.Equal(t, entity.CancellationPatientWithdrew, *updated.CancellationReason)
	assert.False(t, updated.IsActive())
}

func TestCancel_InsufficientNotice(t *testing.T) {
	appointmentID := uuid.New()
	apptRepo := &fakeAppointmentRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: appointmentID, ScheduledAt: time.Now().Add(2 * time.Hour)}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, &fakePatientRepo{})
	err := uc.Cancel(context.Background(), &dto.CancelAppointmentRequest{
		AppointmentID: appointmentID,
		Reason:        string(entity.CancellationOther),
	})

	var violation *scheduling.ViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	appointmentID := uuid.New()
	reason := entity.CancellationDoctorCancelled
	apptRepo := &fakeAppointmentRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:                 appointmentID,
				ScheduledAt:        time.Now().Add(48 * time.Hour),
				CancellationReason: &reason,
			}, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, &fakePatientRepo{})
	err := uc.Cancel(context.Background(), &dto.CancelAppointmentRequest{
		AppointmentID: appointmentID,
		Reason:        string(entity.CancellationOther),
	})

	var violation *scheduling.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "appointment is already cancelled", err.Error())
}

func TestCancel_NotFound(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, nil
		},
	}

	uc := newTestAppointmentUsecase(apptRepo, &fakeDoctorRepo{}, &fakePatientRepo{})
	err := uc.Cancel(context.Background(), &dto.CancelAppointmentRequest{
		AppointmentID: uuid.New(),
		Reason:        string(entity.CancellationOther),
	})

	var notFound *scheduling.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
