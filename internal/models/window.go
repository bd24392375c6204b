package models

import (
	"fmt"
	"time"
)

// Window is the time range used to filter queried expenses.
type Window string

const (
	WindowWeek    Window = "7"
	WindowMonth   Window = "30"
	WindowQuarter Window = "90"
	WindowAll     Window = "all"
)

// ParseWindow validates a raw window string from the client
func ParseWindow(raw string) (Window, error) {
	switch Window(raw) {
	case WindowWeek, WindowMonth, WindowQuarter, WindowAll:
		return Window(raw), nil
	case "":
		return WindowMonth, nil
	default:
		return "", fmt.Errorf("invalid window %q", raw)
	}
}

// Days returns the window length in days; ok is false for the unbounded window
func (w Window) Days() (days int, ok bool) {
	switch w {
	case WindowWeek:
		return 7, true
	case WindowMonth:
		return 30, true
	case WindowQuarter:
		return 90, true
	default:
		return 0, false
	}
}

// StartDate returns the inclusive lower bound for the window as a stored
// date string, relative to now; ok is false when the window is unbounded.
func (w Window) StartDate(now time.Time) (string, bool) {
	days, ok := w.Days()
	if !ok {
		return "", false
	}
	return now.AddDate(0, 0, -days).Format(DateLayout), true
}
