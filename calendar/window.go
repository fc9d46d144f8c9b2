package calendar

import "fmt"

// Bounds of the year range the rule tables are validated for.
const (
	MinSupportedYear = 2020
	MaxSupportedYear = 2025
)

// Window is an inclusive range of years.
type Window struct {
	Min int
	Max int
}

// DefaultWindow returns [MinSupportedYear, MaxSupportedYear].
func DefaultWindow() Window {
	return Window{Min: MinSupportedYear, Max: MaxSupportedYear}
}

// Validate checks that the window is non-empty and inside the validated range.
func (w Window) Validate() error {
	if w.Min > w.Max {
		return fmt.Errorf("%w: min %d after max %d", ErrInvalidWindow, w.Min, w.Max)
	}
	if w.Min < MinSupportedYear || w.Max > MaxSupportedYear {
		return fmt.Errorf("%w: [%d, %d] exceeds validated range [%d, %d]",
			ErrInvalidWindow, w.Min, w.Max, MinSupportedYear, MaxSupportedYear)
	}
	return nil
}

// Contains reports whether year lies in the window.
func (w Window) Contains(year int) bool {
	return year >= w.Min && year <= w.Max
}

// Len returns the number of years in the window.
func (w Window) Len() int {
	if w.Max < w.Min {
		return 0
	}
	return w.Max - w.Min + 1
}

// Years returns every year of the window in ascending order.
func (w Window) Years() []int {
	years := make([]int, 0, w.Len())
	for y := w.Min; y <= w.Max; y++ {
		years = append(years, y)
	}
	return years
}

// String returns the window as "[min, max]".
func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Min, w.Max)
}
