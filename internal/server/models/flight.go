package models

import "fmt"

// FlightStatus is the operational state shown on the flights board.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "Scheduled"
	StatusOnTime    FlightStatus = "On Time"
	StatusDelayed   FlightStatus = "Delayed"
	StatusDeparted  FlightStatus = "Departed"
	StatusArrived   FlightStatus = "Arrived"
)

var flightStatuses = []FlightStatus{
	StatusScheduled,
	StatusOnTime,
	StatusDelayed,
	StatusDeparted,
	StatusArrived,
}

// FlightStatuses returns all statuses in display order.
func FlightStatuses() []FlightStatus {
	out := make([]FlightStatus, len(flightStatuses))
	copy(out, flightStatuses)
	return out
}

// ParseFlightStatus matches s exactly against the known statuses.
// An empty string yields StatusScheduled.
func ParseFlightStatus(s string) (FlightStatus, error) {
	if s == "" {
		return StatusScheduled, nil
	}
	for _, st := range flightStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown flight status %q", s)
}

func (s FlightStatus) Valid() bool {
	_, err := ParseFlightStatus(string(s))
	return err == nil && s != ""
}

// transitions lists the statuses reachable from each status. Every
// status may move to any other one; operators correct boards by hand.
var transitions = func() map[FlightStatus][]FlightStatus {
	m := make(map[FlightStatus][]FlightStatus, len(flightStatuses))
	for _, from := range flightStatuses {
		m[from] = flightStatuses
	}
	return m
}()

// CanTransition reports whether a flight in status from may be set to to.
func CanTransition(from, to FlightStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Flight struct {
	FlightNo string
	From     string
	To       string
	DepDate  string
	DepTime  string
	ArrDate  string
	ArrTime  string
	Status   FlightStatus
}
