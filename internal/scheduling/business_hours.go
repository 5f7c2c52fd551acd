package scheduling

import (
	"context"

	"clinic-appointments-api/config"
)

// BusinessHoursRule rejects requests falling on the clinic's closed weekday
// or outside the operating window [open, close) in clinic-local hours.
// The close hour itself is already outside the window.
type BusinessHoursRule struct {
	clinic config.ClinicConfig
}

func NewBusinessHoursRule(clinic config.ClinicConfig) *BusinessHoursRule {
	return &BusinessHoursRule{clinic: clinic}
}

func (r *BusinessHoursRule) Validate(ctx context.Context, req *ScheduleRequest) error {
	t := req.ScheduledAt
	closedDay := t.Weekday() == r.clinic.ClosedWeekday
	beforeOpening := t.Hour() < r.clinic.OpenHour
	afterClosing := t.Hour() >= r.clinic.CloseHour

	if closedDay || beforeOpening || afterClosing {
		return Violation("appointment is outside clinic operating hours")
	}
	return nil
}
