// Package timezone converts UTC instants into business-local wall-clock
// strings and parses calendar dates without timezone drift. All formatting
// resolves against an explicit IANA zone, never the process-local zone.
package timezone

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"

	timeFormat     = "3:04 PM"
	dateFormat     = "Monday, January 2, 2006"
	dateTimeFormat = "Monday, January 2, 2006 at 3:04 PM"
)

// ErrInvalidTimezone возвращается при неизвестном идентификаторе IANA зоны.
// Это configuration error: вызывающий код не должен подменять зону.
var ErrInvalidTimezone = errors.New("timezone: invalid timezone identifier")

// ErrInvalidDate возвращается при некорректной календарной дате.
var ErrInvalidDate = errors.New("timezone: invalid calendar date")

// LoadZone resolves an IANA zone name. Unknown names are a configuration
// defect and are reported as ErrInvalidTimezone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty zone name", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// FormatTimeInZone renders the time-of-day portion of a UTC instant as it
// reads on a wall clock in the given zone, e.g. "12:00 PM".
func FormatTimeInZone(utc time.Time, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return utc.In(loc).Format(timeFormat), nil
}

// FormatDateInZone renders the calendar date portion of a UTC instant in the
// given zone, e.g. "Monday, March 10, 2025".
func FormatDateInZone(utc time.Time, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return utc.In(loc).Format(dateFormat), nil
}

// FormatDateTimeInZone renders the combined fixed date+time format used on
// confirmation screens.
func FormatDateTimeInZone(utc time.Time, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return utc.In(loc).Format(dateTimeFormat), nil
}

// ParseLocalDate parses a bare YYYY-MM-DD string as midnight of that
// calendar day in loc. A bare date must never go through UTC ISO parsing:
// in any zone with a negative UTC offset that shifts the date backward by
// one day.
func ParseLocalDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatLocalDate is the inverse of ParseLocalDate:
// FormatLocalDate(ParseLocalDate(s, loc)) == s for every valid s and loc.
func FormatLocalDate(t time.Time) string {
	return t.Format(DateFormat)
}
