package scheduling

import (
	"context"

	"clinic-appointments-api/config"
	"clinic-appointments-api/internal/domain/repository"
)

// SchedulingRule is one business constraint checked before an appointment is
// scheduled. Rules are pure checks: they never mutate state.
type SchedulingRule interface {
	Validate(ctx context.Context, req *ScheduleRequest) error
}

// CancellationRule is one business constraint checked before an appointment
// is cancelled.
type CancellationRule interface {
	Validate(ctx context.Context, req *CancelRequest) error
}

// NewSchedulingRules assembles the scheduling chain. The list is built once
// at startup; the orchestrator runs it in order and stops at the first
// violation.
func NewSchedulingRules(clinic config.ClinicConfig, appointmentRepo repository.AppointmentRepository) []SchedulingRule {
	return []SchedulingRule{
		NewBusinessHoursRule(clinic),
		NewSchedulingNoticeRule(clinic.MinSchedulingNotice),
		NewDoctorConflictRule(appointmentRepo),
		NewPatientDailyLimitRule(clinic, appointmentRepo),
	}
}

// NewCancellationRules assembles the cancellation chain.
func NewCancellationRules(clinic config.ClinicConfig, appointmentRepo repository.AppointmentRepository) []CancellationRule {
	return []CancellationRule{
		NewCancellationNoticeRule(clinic.MinCancellationNotice, appointmentRepo),
	}
}
