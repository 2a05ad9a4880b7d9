package utils

import (
	"fmt"
	"time"
)

// ConvertToDate truncates t to the start of its calendar day in the given
// IANA timezone. The returned value carries the store-local location so that
// day-window arithmetic stays DST-correct.
func ConvertToDate(t time.Time, timezone string) (time.Time, error) {
	if timezone == "" {
		timezone = "Asia/Tokyo"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		fmt.Println("Error loading location:", err)
		return t, err
	}
	localTime := t.In(location)

	dateOnly := time.Date(localTime.Year(), localTime.Month(), localTime.Day(), 0, 0, 0, 0, location)
	return dateOnly, nil
}

// DayWindow returns the half-open interval [start, start+24h) for the
// normalized day. AddDate is used instead of Add(24h) so DST transition days
// keep their calendar boundary.
func DayWindow(day time.Time) (time.Time, time.Time) {
	return day, day.AddDate(0, 0, 1)
}
