// ABOUTME: Container is the time-of-day bucket used to file and filter content
// ABOUTME: Four fixed buckets: morning, afternoon, evening, late
package models

// Container identifies a time-of-day bucket.
type Container string

const (
	ContainerMorning   Container = "morning"
	ContainerAfternoon Container = "afternoon"
	ContainerEvening   Container = "evening"
	ContainerLate      Container = "late"
)

// Containers lists all buckets in day order.
var Containers = []Container{
	ContainerMorning,
	ContainerAfternoon,
	ContainerEvening,
	ContainerLate,
}

// Valid reports whether c is one of the four known buckets.
func (c Container) Valid() bool {
	switch c {
	case ContainerMorning, ContainerAfternoon, ContainerEvening, ContainerLate:
		return true
	}
	return false
}
