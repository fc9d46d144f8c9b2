package rules

import (
	"testing"
	"time"
)

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		weekday  time.Weekday
		n        int
		expected Date
	}{
		{"MLK 2024", 2024, time.January, time.Monday, 3, NewDate(2024, time.January, 15)},
		{"Presidents 2025", 2025, time.February, time.Monday, 3, NewDate(2025, time.February, 17)},
		{"Labor 2025", 2025, time.September, time.Monday, 1, NewDate(2025, time.September, 1)},
		{"Thanksgiving 2024", 2024, time.November, time.Thursday, 4, NewDate(2024, time.November, 28)},
		{"Coming of Age 2024", 2024, time.January, time.Monday, 2, NewDate(2024, time.January, 8)},
		{"Sports Day 2022", 2022, time.October, time.Monday, 2, NewDate(2022, time.October, 10)},
		{"Memorial 2024", 2024, time.May, time.Monday, -1, NewDate(2024, time.May, 27)},
		{"Memorial 2021 month ends Monday", 2021, time.May, time.Monday, -1, NewDate(2021, time.May, 31)},
		{"last Sunday of February leap", 2024, time.February, time.Sunday, -1, NewDate(2024, time.February, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NthWeekday(tt.year, tt.month, tt.weekday, tt.n)
			if result != tt.expected {
				t.Errorf("NthWeekday() = %v, want %v", result, tt.expected)
			}
			if result.Weekday() != tt.weekday {
				t.Errorf("weekday = %v, want %v", result.Weekday(), tt.weekday)
			}
			if result.Month != tt.month {
				t.Errorf("month = %v, want %v", result.Month, tt.month)
			}
		})
	}
}
