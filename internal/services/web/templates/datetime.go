package templates

import (
	"time"

	strftime "github.com/ncruces/go-strftime"
)

// DefaultDatetimeLayout renders like "Jan 02, 2006 03:04 PM".
const DefaultDatetimeLayout = "%b %d, %Y %I:%M %p"

// Relative timestamps are only produced for ages below thirty days.
const (
	secondsThreshold   = 45
	minuteThreshold    = 90
	minutesThreshold   = 45 * 60
	hourThreshold      = 90 * 60
	hoursThreshold     = 22 * 60 * 60
	dayThreshold       = 36 * 60 * 60
	relativeTimeCutoff = 30 * 24 * 60 * 60
)

// FormatDatetime formats t with a strftime layout, using
// DefaultDatetimeLayout when layout is empty.
func FormatDatetime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDatetimeLayout
	}
	return strftime.Format(layout, t)
}

// RelativeTimestamp describes how long before now t happened, such as
// "5 minutes" or "a day". It reports false once t is thirty days old or more.
func RelativeTimestamp(loc Localizer, now, t time.Time) (string, bool) {
	if loc == nil {
		loc = DefaultLocalizer()
	}
	diff := now.Sub(t).Seconds()
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < secondsThreshold:
		return T(loc, keyTimeSeconds, int(diff)), true
	case diff < minuteThreshold:
		return T(loc, keyTimeMinute), true
	case diff < minutesThreshold:
		return T(loc, keyTimeMinutes, atLeastTwo(diff/60)), true
	case diff < hourThreshold:
		return T(loc, keyTimeHour), true
	case diff < hoursThreshold:
		return T(loc, keyTimeHours, atLeastTwo(diff/3600)), true
	case diff < dayThreshold:
		return T(loc, keyTimeDay), true
	case diff < relativeTimeCutoff:
		return T(loc, keyTimeDays, atLeastTwo(diff/86400)), true
	default:
		return "", false
	}
}

// DatetimeFormat renders t as "<relative> ago" when relative is set and t is
// recent enough, otherwise as an absolute strftime layout.
func DatetimeFormat(loc Localizer, now, t time.Time, layout string, relative bool) string {
	if relative {
		if loc == nil {
			loc = DefaultLocalizer()
		}
		if ago, ok := RelativeTimestamp(loc, now, t); ok {
			return T(loc, keyTimeAgo, ago)
		}
	}
	return FormatDatetime(t, layout)
}

func atLeastTwo(units float64) int {
	if units < 2 {
		return 2
	}
	return int(units)
}
