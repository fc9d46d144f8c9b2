package rules

import (
	"errors"
	"testing"
	"time"
)

func TestNewDate_Normalizes(t *testing.T) {
	tests := []struct {
		got  Date
		want Date
	}{
		{NewDate(2024, time.January, 32), Date{2024, time.February, 1}},
		{NewDate(2024, time.January, 0), Date{2023, time.December, 31}},
		{NewDate(2024, time.March, 0), Date{2024, time.February, 29}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("NewDate = %v, want %v", tt.got, tt.want)
		}
	}
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2021, time.December, 31)
	if got, want := d.AddDays(1), NewDate(2022, time.January, 1); got != want {
		t.Errorf("AddDays(1) = %v, want %v", got, want)
	}
	if got, want := d.AddDays(-7), NewDate(2021, time.December, 24); got != want {
		t.Errorf("AddDays(-7) = %v, want %v", got, want)
	}
	if got := d.AddDays(0); got != d {
		t.Errorf("AddDays(0) = %v, want %v", got, d)
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.March, 29)
	b := NewDate(2024, time.March, 31)
	c := NewDate(2025, time.January, 1)

	if !a.Before(b) {
		t.Errorf("%v.Before(%v) = false", a, b)
	}
	if !c.After(b) {
		t.Errorf("%v.After(%v) = false", c, b)
	}
	if a.After(a) {
		t.Errorf("%v.After(itself) = true", a)
	}
	if got := a.Compare(a); got != 0 {
		t.Errorf("Compare(self) = %d, want 0", got)
	}
	if got := b.Compare(c); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if got := c.Compare(a); got != 1 {
		t.Errorf("Compare = %d, want 1", got)
	}
}

func TestDate_Weekday(t *testing.T) {
	if got := NewDate(2022, time.January, 1).Weekday(); got != time.Saturday {
		t.Errorf("2022-01-01 weekday = %v, want Saturday", got)
	}
	if got := NewDate(2024, time.February, 11).Weekday(); got != time.Sunday {
		t.Errorf("2024-02-11 weekday = %v, want Sunday", got)
	}
	if !NewDate(2024, time.November, 23).IsWeekend() {
		t.Error("2024-11-23 should be a weekend")
	}
	if NewDate(2024, time.March, 29).IsWeekend() {
		t.Error("2024-03-29 should not be a weekend")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-30")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if want := NewDate(2024, time.May, 30); d != want {
		t.Errorf("ParseDate() = %v, want %v", d, want)
	}
	if got := d.String(); got != "2024-05-30" {
		t.Errorf("String() = %q, want %q", got, "2024-05-30")
	}

	for _, in := range []string{"2024-13-01", "yesterday"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, time.March, 19, 20, 0, 0, 0, time.UTC)

	if got, want := DateOf(instant), NewDate(2024, time.March, 19); got != want {
		t.Errorf("DateOf(UTC) = %v, want %v", got, want)
	}
	if got, want := DateOf(instant.In(tokyo)), NewDate(2024, time.March, 20); got != want {
		t.Errorf("DateOf(JST) = %v, want %v", got, want)
	}
}

func TestDate_IsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if NewDate(2020, time.January, 1).IsZero() {
		t.Error("2020-01-01 should not report IsZero")
	}
}
