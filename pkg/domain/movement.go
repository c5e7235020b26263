package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovementID uniquely identifies a sensor movement.
type MovementID uuid.UUID

// String returns the canonical textual form of the ID.
func (id MovementID) String() string { return uuid.UUID(id).String() }

// Movement records a sensor leaving for or coming back from a job site.
// Zero DepartedAt/ReturnedAt mean the date is unknown.
type Movement struct {
	ID       MovementID `json:"id"`
	SensorID SensorID   `json:"sensorId"`

	Chantier   string    `json:"chantier"`
	DepartedAt time.Time `json:"departedAt"`
	ReturnedAt time.Time `json:"returnedAt"`
	Comment    string    `json:"comment,omitempty"`
}

// SensorReturn is the input of the sensor return workflow.
type SensorReturn struct {
	SensorID SensorID
	Chantier string
	// ReturnedAt defaults to the current time when zero.
	ReturnedAt time.Time
}
