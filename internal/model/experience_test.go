package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarDelta(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		years      int
		months     int
	}{
		{"exact years", date(2020, 3, 1), date(2023, 3, 1), 3, 0},
		{"years and months", date(2020, 1, 15), date(2022, 4, 15), 2, 3},
		{"day of month not reached", date(2020, 1, 31), date(2020, 3, 1), 0, 1},
		{"borrows a year", date(2020, 11, 1), date(2021, 2, 1), 0, 3},
		{"same day", date(2024, 6, 10), date(2024, 6, 10), 0, 0},
		{"under a month", date(2024, 6, 1), date(2024, 6, 20), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, months := CalendarDelta(tt.start, tt.end)
			if years != tt.years || months != tt.months {
				t.Errorf("CalendarDelta = %d yr %d mo, want %d yr %d mo",
					years, months, tt.years, tt.months)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"years and months", date(2020, 1, 1), date(2022, 4, 1), "2 yrs 3 mos"},
		{"single year", date(2020, 1, 1), date(2021, 1, 1), "1 yr"},
		{"single month", date(2024, 1, 1), date(2024, 2, 1), "1 mo"},
		{"months only", date(2024, 1, 1), date(2024, 8, 1), "7 mos"},
		{"under a month", date(2024, 1, 1), date(2024, 1, 20), "Less than 1 month"},
		{"one year one month", date(2020, 1, 1), date(2021, 2, 1), "1 yr 1 mo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.start, tt.end); got != tt.want {
				t.Errorf("Duration = %q, want %q", got, tt.want)
			}
		})
	}
}
