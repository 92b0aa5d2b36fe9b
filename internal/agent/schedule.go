package agent

import (
	"strings"
	"time"

	"automaxbot/internal/dealership"
)

// parseSlotRequest extracts a bookable date and hour from a message.
// The hour must be one of the dealership's fixed slots; the date comes from
// "hoy"/"mañana" and defaults to today when only the hour is given. A
// message naming no slot is not a booking request.
func parseSlotRequest(text string, now time.Time) (date, slot string, ok bool) {
	q := strings.ToLower(text)

	for _, s := range dealership.TimeSlots {
		if containsHour(q, s) {
			slot = s
			break
		}
	}
	if slot == "" {
		return "", "", false
	}

	day := now
	if strings.Contains(q, "mañana") || strings.Contains(q, "manana") {
		day = now.AddDate(0, 0, 1)
	}
	return day.Format("2006-01-02"), slot, true
}

// containsHour finds hour as a whole token, so "19:00" never matches the
// "9:00" slot.
func containsHour(q, hour string) bool {
	for from := 0; ; {
		i := strings.Index(q[from:], hour)
		if i < 0 {
			return false
		}
		i += from
		if i == 0 || !isDigit(q[i-1]) {
			return true
		}
		from = i + len(hour)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
