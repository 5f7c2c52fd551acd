package scheduling

import (
	"context"
	"testing"
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCancellationNoticeRule(t *testing.T) {
	appointmentID := uuid.New()

	tests := []struct {
		name    string
		lead    time.Duration
		wantErr bool
	}{
		{"already started", -time.Hour, true},
		{"one hour ahead", time.Hour, true},
		{"23 hours ahead", 23 * time.Hour, true},
		{"25 hours ahead", 25 * time.Hour, false},
		{"a week ahead", 7 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewCancellationNoticeRule(24*time.Hour, &fakeAppointmentRepo{
				findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
					return &entity.Appointment{
						ID:          appointmentID,
						ScheduledAt: time.Now().Add(tt.lead),
					}, nil
				},
			})

			err := rule.Validate(context.Background(), &CancelRequest{
				AppointmentID: appointmentID,
				Reason:        entity.CancellationPatientWithdrew,
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

func TestCancellationNoticeRule_MissingAppointment(t *testing.T) {
	rule := NewCancellationNoticeRule(24*time.Hour, &fakeAppointmentRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, nil
		},
	})

	err := rule.Validate(context.Background(), &CancelRequest{
		AppointmentID: uuid.New(),
		Reason:        entity.CancellationOther,
	})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
