package scheduling

import (
	"context"

	"clinic-appointments-api/internal/domain/repository"
)

// DoctorConflictRule rejects a request when the chosen doctor already has an
// active appointment within the occupancy window of the requested time.
// It only applies when the request names a doctor explicitly; selection by
// specialty filters out busy doctors in the availability query itself.
type DoctorConflictRule struct {
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorConflictRule(appointmentRepo repository.AppointmentRepository) *DoctorConflictRule {
	return &DoctorConflictRule{appointmentRepo: appointmentRepo}
}

func (r *DoctorConflictRule) Validate(ctx context.Context, req *ScheduleRequest) error {
	if req.DoctorID == nil {
		return nil
	}

	start := req.ScheduledAt.Add(-OccupancyWindow)
	end := req.ScheduledAt.Add(OccupancyWindow)
	existing, err := r.appointmentRepo.FindByDoctorInRange(ctx, *req.DoctorID, start, end)
	if err != nil {
		return err
	}

	for i := range existing {
		if existing[i].IsActive() && Overlaps(req.ScheduledAt, existing[i].ScheduledAt) {
			return Violation("doctor already has an appointment within this time slot")
		}
	}
	return nil
}
