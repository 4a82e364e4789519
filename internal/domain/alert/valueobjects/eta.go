package valueobjects

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"vigia/internal/shared/biztime"
)

// etaPattern accepts a 24h clock reading with no seconds, e.g. "15:30".
var etaPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// ParseETA builds the deadline instant from a leader's reply.
//
// The reply names only a clock time. The calendar date comes from the
// message's own send timestamp converted to the civil timezone. If the
// resulting instant is not strictly after now, the leader means tomorrow,
// so the date advances by one civil day.
func ParseETA(text string, sentAt time.Time, now time.Time) (time.Time, error) {
	m := etaPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, fmt.Errorf("reply %q does not match HH:MM", text)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("reply %q is not a valid clock time", text)
	}

	eta := biztime.AtClock(sentAt, hour, minute)
	if !eta.After(now) {
		eta = biztime.NextDay(eta)
	}
	return eta, nil
}
