package models

import "fmt"

// Manageable is the shared activate/deactivate capability of Venue,
// Activity, Event and Participant.
type Manageable interface {
	Active() bool
	Activate()
	Deactivate()
}

// Registrable is the capacity capability of Event.
type Registrable interface {
	CanRegister() bool
	AvailableSpots() int
}

// ToggleStatus flips the active flag and returns the new state.
func ToggleStatus(m Manageable) bool {
	if m.Active() {
		m.Deactivate()
	} else {
		m.Activate()
	}
	return m.Active()
}

// CountActive counts entities whose active flag is set.
func CountActive[T Manageable](entities []T) int {
	n := 0
	for _, e := range entities {
		if e.Active() {
			n++
		}
	}
	return n
}

// AvailabilityStatus renders a short display string for remaining capacity.
func AvailabilityStatus(r Registrable) string {
	if !r.CanRegister() {
		return "Unavailable"
	}
	spots := r.AvailableSpots()
	switch {
	case spots <= 5:
		return fmt.Sprintf("Only %d spots left!", spots)
	case spots <= 20:
		return fmt.Sprintf("%d spots available", spots)
	default:
		return "Available"
	}
}
