package scheduling

import (
	"context"
	"testing"
	"time"

	"clinic-appointments-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorConflictRule_NoDoctorSkipsCheck(t *testing.T) {
	rule := NewDoctorConflictRule(&fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			t.Fatal("repository should not be queried without an explicit doctor")
			return nil, nil
		},
	})

	err := rule.Validate(context.Background(), &ScheduleRequest{
		PatientID:   uuid.New(),
		Specialty:   entity.SpecialtyCardiology,
		ScheduledAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestDoctorConflictRule_QueriesOccupancyWindow(t *testing.T) {
	doctorID := uuid.New()
	at := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	var gotStart, gotEnd time.Time
	rule := NewDoctorConflictRule(&fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			require.Equal(t, doctorID, id)
			gotStart, gotEnd = start, end
			return nil, nil
		},
	})

	err := rule.Validate(context.Background(), &ScheduleRequest{
		PatientID:   uuid.New(),
		DoctorID:    &doctorID,
		ScheduledAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, at.Add(-time.Hour), gotStart)
	assert.Equal(t, at.Add(time.Hour), gotEnd)
}

func TestDoctorConflictRule_ActiveOverlapRejected(t *testing.T) {
	doctorID := uuid.New()
	at := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing time.Time
		wantErr  bool
	}{
		{"exactly one hour before", at.Add(-time.Hour), true},
		{"same slot", at, true},
		{"exactly one hour after", at.Add(time.Hour), true},
		{"half hour after", at.Add(30 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewDoctorConflictRule(&fakeAppointmentRepo{
				findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
					return []entity.Appointment{{DoctorID: doctorID, ScheduledAt: tt.existing}}, nil
				},
			})

			err := rule.Validate(context.Background(), &ScheduleRequest{
				PatientID:   uuid.New(),
				DoctorID:    &doctorID,
				ScheduledAt: at,
			})
			var violation *ViolationError
			assert.ErrorAs(t, err, &violation)
		})
	}
}

func TestDoctorConflictRule_CancelledAppointmentIgnored(t *testing.T) {
	doctorID := uuid.New()
	at := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	reason := entity.CancellationPatientWithdrew

	rule := NewDoctorConflictRule(&fakeAppointmentRepo{
		findByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{{
				DoctorID:           doctorID,
				ScheduledAt:        at,
				CancellationReason: &reason,
			}}, nil
		},
	})

	err := rule.Validate(context.Background(), &ScheduleRequest{
		PatientID:   uuid.New(),
		DoctorID:    &doctorID,
		ScheduledAt: at,
	})
	assert.NoError(t, err)
}
