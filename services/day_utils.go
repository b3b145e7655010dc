package services

import "time"

// All date truncation in the app goes through these two helpers so every call
// site agrees on where a day starts and ends.

func DayStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func DayEnd(t time.Time, loc *time.Location) time.Time {
	start := DayStart(t, loc)
	return start.Add(24*time.Hour - time.Nanosecond)
}
