package scheduling

import (
	"context"
	"fmt"
	"time"

	"clinic-appointments-api/internal/domain/repository"
)

// CancellationNoticeRule rejects a cancellation requested with less than the
// minimum notice before the appointment's scheduled time. Appointments
// already in the past cannot be cancelled either.
type CancellationNoticeRule struct {
	minNotice       time.Duration
	appointmentRepo repository.AppointmentRepository
}

func NewCancellationNoticeRule(minNotice time.Duration, appointmentRepo repository.AppointmentRepository) *CancellationNoticeRule {
	return &CancellationNoticeRule{minNotice: minNotice, appointmentRepo: appointmentRepo}
}

func (r *CancellationNoticeRule) Validate(ctx context.Context, req *CancelRequest) error {
	appointment, err := r.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return NotFound("appointment not found")
	}

	if time.Until(appointment.ScheduledAt) < r.minNotice {
		return Violation(fmt.Sprintf("appointment can only be cancelled at least %s in advance", r.minNotice))
	}
	return nil
}
