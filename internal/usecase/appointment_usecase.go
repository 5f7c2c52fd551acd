package usecase

import (
	"context"

	"clinic-appointments-api/internal/converter"
	"clinic-appointments-api/internal/delivery/dto"
	"clinic-appointments-api/internal/delivery/http/middleware"
	"clinic-appointments-api/internal/domain/entity"
	"clinic-appointments-api/internal/domain/repository"
	"clinic-appointments-api/internal/scheduling"
	"clinic-appointments-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, page, limit int) (*dto.AppointmentListResponse, error)
}

// appointmentUsecase orchestrates scheduling and cancellation: it runs the
// rule chains, resolves the doctor and patient, and commits the result.
// Rules are assembled once at startup and run in order, failing fast.
type appointmentUsecase struct {
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorRepo        repository.DoctorRepository
	patientRepo       repository.PatientRepository
	schedulingRules   []scheduling.SchedulingRule
	cancellationRules []scheduling.CancellationRule
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	schedulingRules []scheduling.SchedulingRule,
	cancellationRules []scheduling.CancellationRule,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorRepo:        doctorRepo,
		patientRepo:       patientRepo,
		schedulingRules:   schedulingRules,
		cancellationRules: cancellationRules,
		auditService:      auditService,
	}
}

// Schedule validates a scheduling request through the rule chain, resolves
// the patient and doctor, and persists the new appointment.
func (u *appointmentUsecase) Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	schedReq := &scheduling.ScheduleRequest{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Specialty:   entity.Specialty(req.Specialty),
		ScheduledAt: req.ScheduledAt,
	}

	for _, rule := range u.schedulingRules {
		if err := rule.Validate(ctx, schedReq); err != nil {
			return nil, err
		}
	}

	patient, err := u.patientRepo.FindActiveByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, scheduling.NotFound("patient is inactive or not found")
	}

	doctor, err := u.selectDoctor(ctx, schedReq)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		ScheduledAt: req.ScheduledAt,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionAppointmentSchedule, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	// Reload with doctor and patient for the response
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment scheduled: id=%s, doctor=%s, patient=%s, at=%s",
		full.ID, full.DoctorID, full.PatientID, full.ScheduledAt)
	return converter.AppointmentToResponse(full), nil
}

// Cancel validates a cancellation request through the rule chain and marks
// the appointment cancelled with the supplied reason. Appointments are never
// physically deleted.
func (u *appointmentUsecase) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) error {
	cancelReq := &scheduling.CancelRequest{
		AppointmentID: req.AppointmentID,
		Reason:        entity.CancellationReason(req.Reason),
	}

	for _, rule := range u.cancellationRules {
		if err := rule.Validate(ctx, cancelReq); err != nil {
			return err
		}
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return err
	}
	if appointment == nil {
		return scheduling.NotFound("appointment not found")
	}
	if !appointment.IsActive() {
		return scheduling.Violation("appointment is already cancelled")
	}

	oldValue := converter.AppointmentToResponse(appointment)
	appointment.Cancel(cancelReq.Reason)

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", req.AppointmentID, err)
		return err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment cancelled: id=%s, reason=%s", appointment.ID, req.Reason)
	return nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, scheduling.NotFound("appointment not found")
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, page, limit int) (*dto.AppointmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	total, err := u.appointmentRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

// selectDoctor resolves which doctor serves the request: the explicitly
// named one (required to be active), or the first doctor of the requested
// specialty with a free slot at the requested time.
func (u *appointmentUsecase) selectDoctor(ctx context.Context, req *scheduling.ScheduleRequest) (*entity.Doctor, error) {
	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindActiveByID(ctx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, scheduling.NotFound("doctor is inactive or not found")
		}
		return doctor, nil
	}

	if req.Specialty == "" {
		return nil, scheduling.Violation("specialty is required when doctor is not specified")
	}

	doctor, err := u.doctorRepo.FindActiveBySpecialtyWithFreeSlot(ctx, req.Specialty, req.ScheduledAt)
	if err != nil {
		u.log.Warnf("Failed to find available doctor for specialty %s: %+v", req.Specialty, err)
		return nil, err
	}
	if doctor == nil {
		return nil, scheduling.Violation("no doctor of the requested specialty is available at this time")
	}
	return doctor, nil
}
