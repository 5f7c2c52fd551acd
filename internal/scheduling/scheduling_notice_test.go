package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSchedulingNoticeRule(t *testing.T) {
	rule := NewSchedulingNoticeRule(30 * time.Minute)

	tests := []struct {
		name    string
		lead    time.Duration
		wantErr bool
	}{
		{"in the past", -time.Hour, true},
		{"29 minutes ahead", 29 * time.Minute, true},
		{"exactly at the threshold", 30 * time.Minute, true},
		{"31 minutes ahead", 31 * time.Minute, false},
		{"next week", 7 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(context.Background(), &ScheduleRequest{
				PatientID:   uuid.New(),
				ScheduledAt: time.Now().Add(tt.lead),
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
