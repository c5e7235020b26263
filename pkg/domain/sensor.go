package domain

import (
	"time"

	"github.com/google/uuid"
)

// SensorID uniquely identifies a sensor.
type SensorID uuid.UUID

// String returns the canonical textual form of the ID.
func (id SensorID) String() string { return uuid.UUID(id).String() }

// SensorStatus is the declared rental state of a sensor. No operation
// transitions it after registration.
type SensorStatus string

const (
	SensorStatusAvailable   SensorStatus = "available"
	SensorStatusRented      SensorStatus = "rented"
	SensorStatusReturned    SensorStatus = "returned"
	SensorStatusMaintenance SensorStatus = "maintenance"
)

// Valid reports whether s is one of the known statuses.
func (s SensorStatus) Valid() bool {
	switch s {
	case SensorStatusAvailable, SensorStatusRented, SensorStatusReturned, SensorStatusMaintenance:
		return true
	default:
		return false
	}
}

// Sensor is a trackable piece of equipment identified by a unique reference.
type Sensor struct {
	ID SensorID `json:"id"`

	Reference string       `json:"reference"`
	Type      string       `json:"type"`
	Subtype   string       `json:"subtype"`
	Status    SensorStatus `json:"status"`
	// Chantier is the job site the sensor is currently deployed to, if any.
	Chantier string `json:"chantier,omitempty"`
	// CreatedBy is a weak reference to the registering user; zero when unknown.
	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewSensor is the input of sensor registration.
type NewSensor struct {
	Reference string
	Type      string
	Subtype   string
	// Status defaults to SensorStatusAvailable when empty.
	Status   SensorStatus
	Chantier string
}
