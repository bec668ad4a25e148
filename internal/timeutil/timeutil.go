// ABOUTME: Pure time, date-key, and ID helpers shared across the app
// ABOUTME: Maps wall-clock hours onto time containers with fixed boundaries
package timeutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hollis/tend/internal/models"
)

// DateKeyLayout is the calendar-day key format used everywhere a date is a
// lookup key (completions, journal grouping, synthesis cache).
const DateKeyLayout = "2006-01-02"

// ContainerAt maps an instant onto its time container using the local hour:
// [5,12) morning, [12,17) afternoon, [17,22) evening, everything else late.
func ContainerAt(t time.Time) models.Container {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return models.ContainerMorning
	case hour >= 12 && hour < 17:
		return models.ContainerAfternoon
	case hour >= 17 && hour < 22:
		return models.ContainerEvening
	default:
		return models.ContainerLate
	}
}

// CurrentContainer returns the container for the local time right now.
func CurrentContainer() models.Container {
	return ContainerAt(time.Now())
}

// DateKey formats t as a YYYY-MM-DD calendar-day key in local time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// TodayKey returns the date key for the local calendar day.
func TodayKey() string {
	return DateKey(time.Now())
}

// NewID returns an opaque record ID: a sortable time prefix plus a random
// suffix. Collisions are negligible for a single-user dataset; the IDs carry
// no cryptographic guarantee.
func NewID() string {
	return fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), uuid.New().String()[:8])
}

// LongDate formats t like "Thursday, October 23".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2")
}

// ClockTime formats t like "3:04 PM".
func ClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
