package scheduling

import (
	"context"
	"testing"
	"time"

	"clinic-appointments-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clinicConfig() config.ClinicConfig {
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

func TestBusinessHoursRule(t *testing.T) {
	// 2026-03-09 is a Monday, 2026-03-08 a Sunday
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	require.Equal(t, time.Sunday, sunday.Weekday())

	rule := NewBusinessHoursRule(clinicConfig())

	tests := []struct {
		name        string
		scheduledAt time.Time
		wantErr     bool
	}{
		{"sunday mid-morning", sunday.Add(10 * time.Hour), true},
		{"monday before opening", monday.Add(6*time.Hour + 59*time.Minute), true},
		{"monday at opening", monday.Add(7 * time.Hour), false},
		{"monday mid-day", monday.Add(12 * time.Hour), false},
		{"monday last bookable hour", monday.Add(17*time.Hour + 59*time.Minute), false},
		{"monday at closing", monday.Add(18 * time.Hour), true},
		{"monday evening", monday.Add(20 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(context.Background(), &ScheduleRequest{
				PatientID:   uuid.New(),
				ScheduledAt: tt.scheduledAt,
			})
			if tt.wantErr {
				var violation *ViolationError
				assert.ErrorAs(t, err, &violation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
