package tradingdays

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonwraymond/tradingdays/exchange"
)

func TestHolidays_Handle(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	jpx, err := s.Exchange("jpx")
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}
	if jpx.Calendar().ID() != exchange.JPX {
		t.Errorf("Calendar().ID() = %s, want %s", jpx.Calendar().ID(), exchange.JPX)
	}

	for _, d := range []struct {
		month time.Month
		day   int
		want  bool
	}{
		{time.January, 2, true},
		{time.January, 3, true},
		{time.February, 23, true},
		{time.March, 1, false},
		{time.May, 6, true},
		{time.August, 12, true},
		{time.September, 23, true},
		{time.November, 4, true},
	} {
		got, err := jpx.IsDateHoliday(ctx, date(2024, d.month, d.day))
		if err != nil {
			t.Fatal(err)
		}
		if got != d.want {
			t.Errorf("2024-%02d-%02d holiday = %v, want %v", int(d.month), d.day, got, d.want)
		}
	}

	year, err := jpx.GetHolidaysByYear(ctx, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(year) != 24 {
		t.Errorf("GetHolidaysByYear(2024) returned %d, want 24", len(year))
	}

	all, err := jpx.GetHolidays(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) <= len(year) {
		t.Errorf("GetHolidays() returned %d, want more than one year's %d", len(all), len(year))
	}
}

func TestHolidays_SharesStoreCache(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	ctx := context.Background()

	b3, err := s.Exchange("BVMF")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b3.GetHolidaysByYear(ctx, 2024); err != nil {
		t.Fatal(err)
	}
	if _, err := s.HolidaysForYear(ctx, "B3", 2024); err != nil {
		t.Fatal(err)
	}

	if got := s.Stats(); got.Builds != 1 || got.Hits != 1 {
		t.Errorf("Stats() = %+v, want 1 build and 1 hit", got)
	}
}

func TestHolidays_OutOfRange(t *testing.T) {
	s := newTestStore(t, DefaultConfig())
	nyse, err := s.Exchange("NYSE")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := nyse.GetHolidaysByYear(context.Background(), 2026); !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("GetHolidaysByYear(2026) error = %v, want ErrYearOutOfRange", err)
	}
	if _, err := nyse.IsDateHoliday(context.Background(), date(2019, time.December, 25)); !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("IsDateHoliday(2019) error = %v, want ErrYearOutOfRange", err)
	}
}
