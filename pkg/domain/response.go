package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResponseID uniquely identifies a checklist response.
type ResponseID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ResponseID) String() string { return uuid.UUID(id).String() }

// ChecklistResponse is a technician's check or uncheck of one item for one
// sensor at one point in time. Responses are append-only.
type ChecklistResponse struct {
	ID ResponseID `json:"id"`

	SensorID SensorID        `json:"sensorId"`
	ItemID   ChecklistItemID `json:"itemId"`
	UserID   UserID          `json:"userId"`

	IsChecked bool `json:"isChecked"`
	// IsBefore is supplied by the caller and stored as is; it is not
	// reconciled with the referenced item's flag.
	IsBefore bool `json:"isBefore"`

	CheckedAt time.Time `json:"checkedAt"`
}

// ResponseDetail is a response enriched with the item label and the
// respondent, as shown in a sensor history.
type ResponseDetail struct {
	ItemID    ChecklistItemID `json:"itemId"`
	Label     string          `json:"label"`
	IsChecked bool            `json:"isChecked"`
	IsBefore  bool            `json:"isBefore"`
	User      User            `json:"user"`
	CheckedAt time.Time       `json:"checkedAt"`
}
