package scheduling

import "time"

// OccupancyWindow is how long an existing appointment blocks the doctor's
// agenda on each side of its scheduled time.
const OccupancyWindow = time.Hour

// Overlaps reports whether a candidate time conflicts with an existing
// appointment time. An appointment occupies the closed interval
// [existing-1h, existing+1h]: a candidate exactly one hour before or after
// still conflicts.
func Overlaps(candidate, existing time.Time) bool {
	return !candidate.After(existing.Add(OccupancyWindow)) &&
		!candidate.Before(existing.Add(-OccupancyWindow))
}
