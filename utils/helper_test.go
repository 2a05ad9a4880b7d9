package utils

import (
	"testing"
	"time"
)

func TestConvertToDate_StoreLocalBoundary(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}

	// 23:59:59 on Aug 31 and 00:00:01 on Sep 1 store-local both fall on
	// Aug 31 in UTC; the day boundary must follow the store clock.
	lateAug := time.Date(2026, 8, 31, 23, 59, 59, 0, tokyo)
	earlySep := time.Date(2026, 9, 1, 0, 0, 1, 0, tokyo)
	if lateAug.UTC().Day() != earlySep.UTC().Day() {
		t.Fatal("fixture broken: times should share a UTC calendar day")
	}

	d1, err := ConvertToDate(lateAug, "Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := ConvertToDate(earlySep, "Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}

	if d1.Day() != 31 || d1.Month() != time.August {
		t.Errorf("ConvertToDate(lateAug) = %s", d1)
	}
	if d2.Day() != 1 || d2.Month() != time.September {
		t.Errorf("ConvertToDate(earlySep) = %s", d2)
	}

	start, end := DayWindow(d1)
	if lateAug.Before(start) || !lateAug.Before(end) {
		t.Error("23:59:59 store-local should be inside its day window")
	}
	if earlySep.Before(end) {
		t.Error("00:00:01 next day store-local should be outside the window")
	}
}

func TestConvertToDate_NormalizesUTCInput(t *testing.T) {
	// A UTC instant late on Aug 31 is already Sep 1 in Tokyo.
	utcEvening := time.Date(2026, 8, 31, 16, 30, 0, 0, time.UTC)
	d, err := ConvertToDate(utcEvening, "Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if d.Month() != time.September || d.Day() != 1 {
		t.Errorf("ConvertToDate = %s, want 2026-09-01 local", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("not truncated to start of day: %s", d)
	}
}

func TestConvertToDate_InvalidTimezone(t *testing.T) {
	if _, err := ConvertToDate(time.Now(), "Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestDayWindow_CoversFullDay(t *testing.T) {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, tokyo)
	start, end := DayWindow(day)
	if !start.Equal(day) {
		t.Errorf("start = %s", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("window length = %s", end.Sub(start))
	}
}
