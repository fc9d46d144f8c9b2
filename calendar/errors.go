package calendar

import "errors"

var (
	// ErrYearOutOfRange indicates a year outside the configured window.
	ErrYearOutOfRange = errors.New("calendar: year out of range")

	// ErrInvalidWindow indicates a window that is empty or exceeds the
	// validated year range.
	ErrInvalidWindow = errors.New("calendar: invalid window")

	// ErrNilCalendar indicates Build was called without a calendar.
	ErrNilCalendar = errors.New("calendar: calendar is nil")
)
