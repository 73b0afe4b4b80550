// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the calendar-date wire format (ISO 8601).
const DateLayout = "2006-01-02"

// ParseDate parses "YYYY-MM-DD" into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// ToDate drops the clock part and pins the day to UTC so every driver
// stores the same value for the same calendar day.
func ToDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// FormatDate renders a stored date as "YYYY-MM-DD".
func FormatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
