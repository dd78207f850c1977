package models

type Passenger struct {
	PID     int64
	Name    string
	Age     int
	Sex     string
	Address string
	Contact string
	Email   string
}
