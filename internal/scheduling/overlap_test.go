package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	existing := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"61 minutes before", -61 * time.Minute, false},
		{"exactly one hour before", -60 * time.Minute, true},
		{"59 minutes before", -59 * time.Minute, true},
		{"same time", 0, true},
		{"59 minutes after", 59 * time.Minute, true},
		{"exactly one hour after", 60 * time.Minute, true},
		{"61 minutes after", 61 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := existing.Add(tt.offset)
			assert.Equal(t, tt.want, Overlaps(candidate, existing))
		})
	}
}
