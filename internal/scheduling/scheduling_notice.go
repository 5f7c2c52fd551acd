package scheduling

import (
	"context"
	"fmt"
	"time"
)

// SchedulingNoticeRule rejects appointments requested with less than the
// minimum advance notice. The boundary is exclusive on the early side: a
// request exactly at the threshold is rejected, since the wall clock keeps
// advancing between validation and commit.
type SchedulingNoticeRule struct {
	minNotice time.Duration
}

func NewSchedulingNoticeRule(minNotice time.Duration) *SchedulingNoticeRule {
	return &SchedulingNoticeRule{minNotice: minNotice}
}

func (r *SchedulingNoticeRule) Validate(ctx context.Context, req *ScheduleRequest) error {
	if time.Until(req.ScheduledAt) < r.minNotice {
		return Violation(fmt.Sprintf("appointment must be scheduled at least %s in advance", r.minNotice))
	}
	return nil
}
