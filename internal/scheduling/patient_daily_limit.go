package scheduling

import (
	"context"
	"time"

	"clinic-appointments-api/config"
	"clinic-appointments-api/internal/domain/repository"
)

// PatientDailyLimitRule rejects a request when the patient already holds an
// active appointment on the same clinic day. "Same day" is the inclusive
// window [DailyLimitStartHour, DailyLimitEndHour] of the requested date,
// configured independently of the operating hours.
type PatientDailyLimitRule struct {
	clinic          config.ClinicConfig
	appointmentRepo repository.AppointmentRepository
}

func NewPatientDailyLimitRule(clinic config.ClinicConfig, appointmentRepo repository.AppointmentRepository) *PatientDailyLimitRule {
	return &PatientDailyLimitRule{clinic: clinic, appointmentRepo: appointmentRepo}
}

func (r *PatientDailyLimitRule) Validate(ctx context.Context, req *ScheduleRequest) error {
	t := req.ScheduledAt
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), r.clinic.DailyLimitStartHour, 0, 0, 0, t.Location())
	dayEnd := time.Date(t.Year(), t.Month(), t.Day(), r.clinic.DailyLimitEndHour, 0, 0, 0, t.Location())

	booked, err := r.appointmentRepo.ExistsActiveForPatientInRange(ctx, req.PatientID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if booked {
		return Violation("patient already has an appointment scheduled on this day")
	}
	return nil
}
